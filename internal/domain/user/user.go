// Package user defines the User entity and its role model.
package user

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// Entity is the name used in error codes for user failures.
const Entity = "User"

// User is a person in the organization. Team membership is stored here and
// only here: a team's members are the users whose TeamID points at it.
type User struct {
	ID           int64
	UUID         string
	Firstname    string
	Lastname     string
	Username     string
	PasswordHash string
	TaxID        string
	Phone        string
	Role         Role
	Active       bool
	TeamID       *int64
	domain.Timestamps
}

// New returns an active user with a fresh public UUID. The role defaults to
// MEMBER when empty.
func New(firstname, lastname, username, passwordHash, taxID, phone string, role Role) *User {
	if role == "" {
		role = RoleMember
	}
	return &User{
		UUID:         uuid.NewString(),
		Firstname:    firstname,
		Lastname:     lastname,
		Username:     username,
		PasswordHash: passwordHash,
		TaxID:        taxID,
		Phone:        phone,
		Role:         role,
		Active:       true,
	}
}

// FullName returns "Firstname Lastname".
func (u *User) FullName() string {
	return strings.TrimSpace(u.Firstname + " " + u.Lastname)
}

// InTeam reports whether the user belongs to the given team.
func (u *User) InTeam(teamID int64) bool {
	return u.TeamID != nil && *u.TeamID == teamID
}

// Validate checks structural rules for the User entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (u *User) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(u.Firstname) == "" {
		fields["firstname"] = domain.MsgRequired
	}
	if strings.TrimSpace(u.Lastname) == "" {
		fields["lastname"] = domain.MsgRequired
	}
	if strings.TrimSpace(u.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if u.PasswordHash == "" {
		fields["password"] = domain.MsgRequired
	}
	if strings.TrimSpace(u.TaxID) == "" {
		fields["tax_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(u.Phone) == "" {
		fields["phone"] = domain.MsgRequired
	}
	if !u.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", u.Role)
	}
	if u.UUID != "" {
		if _, err := uuid.Parse(u.UUID); err != nil {
			fields["uuid"] = fmt.Sprintf("invalid: %q", u.UUID)
		}
	}
	if u.TeamID != nil && *u.TeamID <= 0 {
		fields["team_id"] = fmt.Sprintf("must be positive, got %d", *u.TeamID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Filter narrows a user listing. A nil TeamID matches every user.
type Filter struct {
	TeamID *int64
}

// Matches reports whether u satisfies the filter.
func (f Filter) Matches(u *User) bool {
	if f.TeamID != nil && !u.InTeam(*f.TeamID) {
		return false
	}
	return true
}
