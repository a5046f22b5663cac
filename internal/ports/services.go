package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// Every service method takes the id of the already-authenticated actor as an
// explicit argument. Methods return domain.ErrNotFound when the actor does
// not exist and domain.ErrNotAuthorized when the actor is inactive or the
// policy denies the operation.

// TaskService defines the service port for task operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TaskService interface {
	// CreateTask creates a TODO task owned by the actor.
	// Returns domain.ErrNotFound if the assignee or team does not exist.
	CreateTask(ctx context.Context, actorID int64, in CreateTaskInput) (*TaskView, error)

	// UpdateTask applies the non-nil fields of in. Changing the assignee or
	// team additionally requires the assign permission.
	// Returns domain.ErrInvalidArgument when changing a completed task's status.
	UpdateTask(ctx context.Context, actorID, taskID int64, in UpdateTaskInput) (*TaskView, error)

	// GetTask returns a single task.
	GetTask(ctx context.Context, actorID, taskID int64) (*TaskView, error)

	// AssignTask sets the task's assignee to userID.
	AssignTask(ctx context.Context, actorID, taskID, userID int64) (*TaskView, error)

	// CompleteTask moves the task to COMPLETED.
	// Returns domain.ErrInvalidArgument if it is already completed, for every
	// actor, before authorization is considered.
	CompleteTask(ctx context.Context, actorID, taskID int64) (*TaskView, error)

	// DeleteTask removes the task.
	DeleteTask(ctx context.Context, actorID, taskID int64) error

	// ListTasks returns every task the actor's role scope covers.
	ListTasks(ctx context.Context, actorID int64) ([]TaskView, error)

	// ListTasksByAssignee returns the tasks assigned to userID.
	ListTasksByAssignee(ctx context.Context, actorID, userID int64) ([]TaskView, error)

	// ListTasksByCreator returns the tasks created by the user with the
	// given login identifier.
	ListTasksByCreator(ctx context.Context, actorID int64, username string) ([]TaskView, error)

	// ListTasksByStatus returns the tasks in the actor's scope with the
	// given status.
	ListTasksByStatus(ctx context.Context, actorID int64, status task.Status) ([]TaskView, error)

	// ListTasksByCompletion returns the tasks in the actor's scope whose
	// completion flag equals completed.
	ListTasksByCompletion(ctx context.Context, actorID int64, completed bool) ([]TaskView, error)
}

// CreateTaskInput carries the fields of a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    task.Priority
	DueDate     *time.Time
	AssigneeID  *int64
	TeamID      *int64
}

// UpdateTaskInput carries an update; nil fields are left unchanged.
// ClearAssignee and ClearTeam unset the relation.
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	Priority      *task.Priority
	Status        *task.Status
	DueDate       *time.Time
	AssigneeID    *int64
	ClearAssignee bool
	TeamID        *int64
	ClearTeam     bool
}

// TeamService defines the service port for team operations.
type TeamService interface {
	// CreateTeam creates a team managed by in.ManagerID with the given
	// initial members.
	// Returns domain.ErrAlreadyExists for a duplicate name or when the
	// manager already manages another team, domain.ErrNotFound for an
	// unknown manager and domain.ErrInvalidArgument for unknown members.
	CreateTeam(ctx context.Context, actorID int64, in CreateTeamInput) (*TeamView, error)

	// UpdateTeam renames the team, changes its manager, and adds members.
	// Users that are already members are skipped.
	UpdateTeam(ctx context.Context, actorID, teamID int64, in UpdateTeamInput) (*TeamView, error)

	// DeleteTeam removes the team, detaching its members and tasks.
	DeleteTeam(ctx context.Context, actorID, teamID int64) error

	// GetTeam returns a single team.
	GetTeam(ctx context.Context, actorID, teamID int64) (*TeamView, error)

	// ListTeams returns every team the actor's role scope covers.
	ListTeams(ctx context.Context, actorID int64) ([]TeamView, error)

	// MyTeam returns the actor's team as a one-element list. A MEMBER or
	// TEAM_LEADER without a team gets an empty list; ADMIN and MANAGER get
	// domain.ErrNotFound instead.
	MyTeam(ctx context.Context, actorID int64) ([]TeamView, error)

	// AddMember links userID to the team.
	// Returns domain.ErrInvalidArgument if the user is already a member.
	AddMember(ctx context.Context, actorID, teamID, userID int64) (*TeamView, error)

	// RemoveMember unlinks userID from the team.
	// Returns domain.ErrInvalidArgument if the user is not a member.
	RemoveMember(ctx context.Context, actorID, teamID, userID int64) (*TeamView, error)
}

// CreateTeamInput carries the fields of a new team.
type CreateTeamInput struct {
	Name      string
	ManagerID int64
	MemberIDs []int64
}

// UpdateTeamInput carries a team update; nil fields are left unchanged.
type UpdateTeamInput struct {
	Name      *string
	ManagerID *int64
	MemberIDs []int64
}

// UserService defines the service port for user operations.
type UserService interface {
	// Register creates an active MEMBER without an actor. It is the public
	// sign-up path.
	// Returns domain.ErrInvalidArgument when the passwords differ and
	// domain.ErrAlreadyExists for a duplicate username, tax id or phone.
	Register(ctx context.Context, in RegisterInput) (*UserView, error)

	// CreateUser is the privileged creation path. Role defaults to MEMBER.
	CreateUser(ctx context.Context, actorID int64, in CreateUserInput) (*UserView, error)

	// UpdateUser applies the non-nil fields of in.
	UpdateUser(ctx context.Context, actorID, userID int64, in UpdateUserInput) (*UserView, error)

	// DeleteUser removes the user and unassigns their tasks.
	// Returns domain.ErrInvalidArgument if the user manages a team or
	// created tasks.
	DeleteUser(ctx context.Context, actorID, userID int64) error

	// GetUser returns a single user.
	GetUser(ctx context.Context, actorID, userID int64) (*UserView, error)

	// GetUserByUUID returns a single user by public id.
	GetUserByUUID(ctx context.Context, actorID int64, uuid string) (*UserView, error)

	// ListUsers returns every user the actor's role scope covers.
	ListUsers(ctx context.Context, actorID int64) ([]UserView, error)

	// ListTeamUsers returns the members of a team.
	ListTeamUsers(ctx context.Context, actorID, teamID int64) ([]UserView, error)
}

// RegisterInput carries a self-registration request.
type RegisterInput struct {
	Firstname       string
	Lastname        string
	Username        string
	Password        string
	ConfirmPassword string
	TaxID           string
	Phone           string
}

// CreateUserInput carries a privileged user creation.
type CreateUserInput struct {
	RegisterInput
	Role   user.Role
	TeamID *int64
}

// UpdateUserInput carries a user update; nil fields are left unchanged.
type UpdateUserInput struct {
	Firstname *string
	Lastname  *string
	Phone     *string
	TaxID     *string
	Password  *string
	Role      *user.Role
	Active    *bool
	TeamID    *int64
	ClearTeam bool
}

// AuthService authenticates credentials and issues access tokens.
type AuthService interface {
	// Authenticate verifies the credentials of an active user.
	// Returns domain.ErrNotAuthorized for unknown users, wrong passwords
	// and inactive accounts alike.
	Authenticate(ctx context.Context, username, password string) (*AuthToken, error)
}
