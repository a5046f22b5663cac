package ports

import (
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// TaskView is the read projection of a task with related names resolved.
// Pointer fields are nil when the relation is unset.
type TaskView struct {
	ID               int64
	Title            string
	Description      string
	Priority         task.Priority
	Status           task.Status
	DueDate          *time.Time
	Completed        bool
	CreatorID        int64
	CreatorUsername  string
	AssigneeID       *int64
	AssigneeUsername *string
	TeamID           *int64
	TeamName         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// MemberView is a team member as listed on a TeamView.
type MemberView struct {
	ID       int64
	Username string
	FullName string
	Role     user.Role
}

// TeamView is the read projection of a team with its manager and members
// resolved.
type TeamView struct {
	ID              int64
	Name            string
	ManagerID       int64
	ManagerUsername string
	ManagerName     string
	Members         []MemberView
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserView is the read projection of a user. The password hash is never
// projected.
type UserView struct {
	ID        int64
	UUID      string
	Firstname string
	Lastname  string
	Username  string
	TaxID     string
	Phone     string
	Role      user.Role
	Active    bool
	TeamID    *int64
	TeamName  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthToken is the result of a successful authentication.
type AuthToken struct {
	Token     string
	ExpiresAt time.Time
	User      UserView
}
