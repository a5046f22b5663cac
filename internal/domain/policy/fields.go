package policy

import (
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// ElevatedChange lists the privileged user fields a create or update
// request touches. Nil means the field is not being changed.
type ElevatedChange struct {
	Role   *user.Role
	Active *bool
	// TeamID is the destination team. ClearTeam removes the user from their
	// team instead.
	TeamID    *int64
	ClearTeam bool
}

// Touched reports whether any elevated field is present.
func (c ElevatedChange) Touched() bool {
	return c.Role != nil || c.Active != nil || c.TeamID != nil || c.ClearTeam
}

// CheckElevated gates changes to role, active flag and team membership.
// Only ADMIN and MANAGER may change them; a MANAGER may not grant a role
// above their own and may only move users into, or out of, the team they
// manage. currentTeamID is the subject's team before the change.
func CheckElevated(a Actor, managedTeamID, currentTeamID *int64, c ElevatedChange) error {
	if !c.Touched() {
		return nil
	}

	switch a.Role {
	case user.RoleAdmin:
		return nil
	case user.RoleManager:
	default:
		return domain.NotAuthorized(user.Entity, "role %s may not change role, active flag or team", a.Role)
	}

	if c.Role != nil && c.Role.Outranks(a.Role) {
		return domain.NotAuthorized(user.Entity, "role %s may not grant role %s", a.Role, *c.Role)
	}
	if c.TeamID != nil && !sameTeam(c.TeamID, managedTeamID) {
		return domain.NotAuthorized(user.Entity, "managers may only move users into the team they manage")
	}
	if c.ClearTeam && currentTeamID != nil && !sameTeam(currentTeamID, managedTeamID) {
		return domain.NotAuthorized(user.Entity, "managers may only remove users from the team they manage")
	}
	return nil
}

func sameTeam(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}
