package policy

import (
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// Scope describes which entities a list operation may return. Empty means
// the actor may see nothing; All means no restriction beyond the filter.
type Scope struct {
	All    bool
	Empty  bool
	TeamID *int64
	UserID *int64
}

// TaskScope returns the slice of tasks actor may list. managedTeamID is the
// team the actor manages, or nil.
//
//	ADMIN        every task
//	MANAGER      tasks of the managed team (none when managing no team)
//	TEAM_LEADER  tasks assigned to the actor
//	MEMBER       tasks assigned to the actor
func TaskScope(a Actor, managedTeamID *int64) Scope {
	switch a.Role {
	case user.RoleAdmin:
		return Scope{All: true}
	case user.RoleManager:
		if managedTeamID == nil {
			return Scope{Empty: true}
		}
		return Scope{TeamID: managedTeamID}
	case user.RoleTeamLeader, user.RoleMember:
		id := a.ID
		return Scope{UserID: &id}
	default:
		return Scope{Empty: true}
	}
}

// Apply narrows f to the scope. It returns false when the scope is empty and
// no query should be made.
func (s Scope) Apply(f task.Filter) (task.Filter, bool) {
	switch {
	case s.Empty:
		return f, false
	case s.All:
		return f, true
	case s.TeamID != nil:
		if f.TeamID != nil && *f.TeamID != *s.TeamID {
			return f, false
		}
		f.TeamID = s.TeamID
		return f, true
	case s.UserID != nil:
		if f.AssigneeID != nil && *f.AssigneeID != *s.UserID {
			return f, false
		}
		f.AssigneeID = s.UserID
		return f, true
	default:
		return f, false
	}
}

// UserScope returns the users actor may list.
//
//	ADMIN        every user
//	MANAGER      members of the managed team (none when managing no team)
//	TEAM_LEADER  the actor only
//	MEMBER       the actor only
func UserScope(a Actor, managedTeamID *int64) Scope {
	switch a.Role {
	case user.RoleAdmin:
		return Scope{All: true}
	case user.RoleManager:
		if managedTeamID == nil {
			return Scope{Empty: true}
		}
		return Scope{TeamID: managedTeamID}
	case user.RoleTeamLeader, user.RoleMember:
		id := a.ID
		return Scope{UserID: &id}
	default:
		return Scope{Empty: true}
	}
}

// TeamScope returns the teams actor may list. ADMIN and MANAGER see every
// team; everyone else sees the team they belong to.
func TeamScope(a Actor) Scope {
	switch a.Role {
	case user.RoleAdmin, user.RoleManager:
		return Scope{All: true}
	case user.RoleTeamLeader, user.RoleMember:
		if a.TeamID == nil {
			return Scope{Empty: true}
		}
		return Scope{TeamID: a.TeamID}
	default:
		return Scope{Empty: true}
	}
}
