package ports

import (
	"context"

	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// Transactor runs a unit of work atomically. Every repository call made with
// the context passed to fn participates in the same transaction; fn's error
// rolls everything back.
type Transactor interface {
	// WithinTx runs fn in a transaction. It commits when fn returns nil and
	// rolls back otherwise, returning fn's error unchanged.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository persists users. Find* methods return domain.ErrNotFound
// (as a *domain.Error) when nothing matches.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByUUID(ctx context.Context, uuid string) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByTaxID(ctx context.Context, taxID string) (*user.User, error)
	FindByPhone(ctx context.Context, phone string) (*user.User, error)

	// ExistsByUsername reports whether any user has the login identifier.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// List returns users matching the filter ordered by id.
	List(ctx context.Context, filter user.Filter) ([]user.User, error)

	// Save inserts u when u.ID is zero and updates it otherwise. It stamps
	// timestamps and assigns the id on insert. A unique-key violation is
	// reported as domain.ErrAlreadyExists.
	Save(ctx context.Context, u *user.User) error

	// Delete removes the user. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error
}

// TeamRepository persists teams.
type TeamRepository interface {
	FindByID(ctx context.Context, id int64) (*team.Team, error)
	FindByName(ctx context.Context, name string) (*team.Team, error)

	// FindByManager returns the team managed by userID.
	FindByManager(ctx context.Context, userID int64) (*team.Team, error)

	// ExistsByName reports whether a team has exactly this name.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// List returns all teams ordered by id.
	List(ctx context.Context) ([]team.Team, error)

	// Save inserts or updates the team (see UserRepository.Save).
	Save(ctx context.Context, t *team.Team) error

	// Delete removes the team. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error
}

// TaskRepository persists tasks.
type TaskRepository interface {
	FindByID(ctx context.Context, id int64) (*task.Task, error)

	// List returns tasks matching the filter ordered by id.
	List(ctx context.Context, filter task.Filter) ([]task.Task, error)

	// Save inserts or updates the task (see UserRepository.Save).
	Save(ctx context.Context, t *task.Task) error

	// Delete removes the task. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error
}

// Store bundles the repositories and the transactor of one backend.
type Store interface {
	Transactor
	Users() UserRepository
	Teams() TeamRepository
	Tasks() TaskRepository
}
