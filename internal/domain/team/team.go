// Package team defines the Team entity and the membership rules that keep
// the user/team association consistent.
package team

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// Entity is the name used in error codes for team failures.
const Entity = "Team"

// Team is a named group of users with exactly one manager. Membership is not
// stored on the team; see user.User.TeamID.
type Team struct {
	ID        int64
	Name      string
	ManagerID int64
	domain.Timestamps
}

// Validate checks structural rules for the Team entity.
func (t *Team) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if t.ManagerID <= 0 {
		fields["manager_id"] = fmt.Sprintf("must be positive, got %d", t.ManagerID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// AddMember links u to t. It fails with InvalidArgument when u is already a
// member, leaving u untouched. The team must already be persisted.
func AddMember(t *Team, u *user.User) error {
	if u.InTeam(t.ID) {
		return domain.InvalidArgument(Entity, "user %d is already a member of team %q", u.ID, t.Name)
	}
	id := t.ID
	u.TeamID = &id
	return nil
}

// RemoveMember unlinks u from t. It fails with InvalidArgument when u is not
// a member.
func RemoveMember(t *Team, u *user.User) error {
	if !u.InTeam(t.ID) {
		return domain.InvalidArgument(Entity, "user %d is not a member of team %q", u.ID, t.Name)
	}
	u.TeamID = nil
	return nil
}
