package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/policy"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService.
type UserService struct {
	base
	hasher ports.PasswordHasher
}

// NewUserService creates a UserService. The hasher turns plaintext passwords
// into the opaque hashes stored on users. The recorder may be nil.
func NewUserService(store ports.Store, hasher ports.PasswordHasher, recorder DecisionRecorder, logger *slog.Logger) *UserService {
	return &UserService{
		base:   newBase(store, recorder, logger),
		hasher: hasher,
	}
}

// Register creates an active MEMBER from a public sign-up.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*ports.UserView, error) {
	s.logger.InfoContext(ctx, "registering user", slog.String("username", in.Username))

	if err := checkPasswords(in); err != nil {
		s.fail(ctx, "failed to register user", "Register", err)
		return nil, err
	}

	var view *ports.UserView
	err := s.inTx(ctx, func(u *unit) error {
		created, err := s.create(u, in, user.RoleMember, nil)
		if err != nil {
			return err
		}
		view, err = u.userView(created)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to register user", "Register", err, slog.String("username", in.Username))
		return nil, err
	}
	return view, nil
}

// CreateUser is the privileged creation path. The role defaults to MEMBER;
// setting another role or a team is gated like an update.
func (s *UserService) CreateUser(ctx context.Context, actorID int64, in ports.CreateUserInput) (*ports.UserView, error) {
	s.logger.InfoContext(ctx, "creating user", slog.Int64("actor_id", actorID), slog.String("username", in.Username))

	if err := checkPasswords(in.RegisterInput); err != nil {
		s.fail(ctx, "failed to create user", "CreateUser", err)
		return nil, err
	}

	var view *ports.UserView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		if err := u.authorize(policy.OpCreateUser, policy.Target{}); err != nil {
			return err
		}

		role := in.Role
		if role == "" {
			role = user.RoleMember
		}
		if !role.IsValid() {
			return &domain.ValidationError{Fields: map[string]string{"role": fmt.Sprintf("invalid: %q", role)}}
		}

		change := policy.ElevatedChange{TeamID: in.TeamID}
		if role != user.RoleMember {
			change.Role = &role
		}
		managed, err := u.managedTeamID()
		if err != nil {
			return err
		}
		if err := policy.CheckElevated(u.policyActor(), managed, nil, change); err != nil {
			return err
		}
		if in.TeamID != nil {
			if _, err := u.team(*in.TeamID); err != nil {
				return refNotFound(err, team.Entity, "team %d not found", *in.TeamID)
			}
		}

		created, err := s.create(u, in.RegisterInput, role, in.TeamID)
		if err != nil {
			return err
		}
		view, err = u.userView(created)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to create user", "CreateUser", err, slog.String("username", in.Username))
		return nil, err
	}
	return view, nil
}

// checkPasswords rejects a mismatched confirmation before anything is looked
// up or written.
func checkPasswords(in ports.RegisterInput) error {
	if in.Password != in.ConfirmPassword {
		return domain.InvalidArgument(user.Entity, "password and confirmation do not match")
	}
	return nil
}

// create runs the uniqueness checks in order (username, tax id, phone),
// hashes the password and stores the new user.
func (s *UserService) create(u *unit, in ports.RegisterInput, role user.Role, teamID *int64) (*user.User, error) {
	exists, err := u.users().ExistsByUsername(u.ctx(), in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.FieldAlreadyExists(user.Entity, "Username", "username %q is already taken", in.Username)
	}
	if err := u.checkUnique(u.users().FindByTaxID, in.TaxID, 0, "TaxID", "tax id"); err != nil {
		return nil, err
	}
	if err := u.checkUnique(u.users().FindByPhone, in.Phone, 0, "Phone", "phone number"); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	created := user.New(in.Firstname, in.Lastname, in.Username, hash, in.TaxID, in.Phone, role)
	created.TeamID = teamID
	if err := created.Validate(); err != nil {
		return nil, err
	}
	if err := u.saveUser(created); err != nil {
		return nil, err
	}
	return created, nil
}

// checkUnique fails with a per-field AlreadyExists when a user other than
// selfID already holds value.
func (u *unit) checkUnique(
	find func(context.Context, string) (*user.User, error),
	value string,
	selfID int64,
	field, label string,
) error {
	holder, err := find(u.ctx(), value)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if holder.ID != selfID {
		return domain.FieldAlreadyExists(user.Entity, field, "%s %q is already in use", label, value)
	}
	return nil
}

// UpdateUser applies the non-nil fields of in.
func (s *UserService) UpdateUser(ctx context.Context, actorID, userID int64, in ports.UpdateUserInput) (*ports.UserView, error) {
	s.logger.InfoContext(ctx, "updating user", slog.Int64("actor_id", actorID), slog.Int64("id", userID))

	var view *ports.UserView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		subject, tm, err := u.loadUser(userID)
		if err != nil {
			return err
		}
		if err := u.authorize(policy.OpUpdateUser, policy.UserTarget(subject, tm)); err != nil {
			return err
		}

		managed, err := u.managedTeamID()
		if err != nil {
			return err
		}
		if err := policy.CheckElevated(u.policyActor(), managed, subject.TeamID, elevatedChange(subject, in)); err != nil {
			return err
		}

		if err := s.applyUserUpdate(u, subject, in); err != nil {
			return err
		}
		if err := subject.Validate(); err != nil {
			return err
		}
		if err := u.saveUser(subject); err != nil {
			return err
		}

		view, err = u.userView(subject)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to update user", "UpdateUser", err, slog.Int64("id", userID))
		return nil, err
	}
	return view, nil
}

// elevatedChange extracts the privileged fields that in actually changes.
func elevatedChange(subject *user.User, in ports.UpdateUserInput) policy.ElevatedChange {
	var c policy.ElevatedChange
	if in.Role != nil && *in.Role != subject.Role {
		c.Role = in.Role
	}
	if in.Active != nil && *in.Active != subject.Active {
		c.Active = in.Active
	}
	if in.TeamID != nil && !subject.InTeam(*in.TeamID) {
		c.TeamID = in.TeamID
	}
	if in.ClearTeam && subject.TeamID != nil {
		c.ClearTeam = true
	}
	return c
}

func (s *UserService) applyUserUpdate(u *unit, subject *user.User, in ports.UpdateUserInput) error {
	if in.Firstname != nil {
		subject.Firstname = *in.Firstname
	}
	if in.Lastname != nil {
		subject.Lastname = *in.Lastname
	}
	if in.Phone != nil && *in.Phone != subject.Phone {
		if err := u.checkUnique(u.users().FindByPhone, *in.Phone, subject.ID, "Phone", "phone number"); err != nil {
			return err
		}
		subject.Phone = *in.Phone
	}
	if in.TaxID != nil && *in.TaxID != subject.TaxID {
		if err := u.checkUnique(u.users().FindByTaxID, *in.TaxID, subject.ID, "TaxID", "tax id"); err != nil {
			return err
		}
		subject.TaxID = *in.TaxID
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		subject.PasswordHash = hash
	}
	if in.Role != nil {
		subject.Role = *in.Role
	}
	if in.Active != nil {
		subject.Active = *in.Active
	}

	switch {
	case in.ClearTeam:
		subject.TeamID = nil
	case in.TeamID != nil:
		tm, err := u.team(*in.TeamID)
		if err != nil {
			return refNotFound(err, team.Entity, "team %d not found", *in.TeamID)
		}
		if !subject.InTeam(tm.ID) {
			if err := team.AddMember(tm, subject); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeleteUser removes the user. A user who manages a team or created tasks
// cannot be deleted; tasks assigned to the user are unassigned.
func (s *UserService) DeleteUser(ctx context.Context, actorID, userID int64) error {
	s.logger.InfoContext(ctx, "deleting user", slog.Int64("actor_id", actorID), slog.Int64("id", userID))

	err := s.asActor(ctx, actorID, func(u *unit) error {
		subject, tm, err := u.loadUser(userID)
		if err != nil {
			return err
		}
		if err := u.authorize(policy.OpDeleteUser, policy.UserTarget(subject, tm)); err != nil {
			return err
		}

		managed, err := u.managedTeam(subject.ID)
		if err != nil {
			return err
		}
		if managed != nil {
			return domain.InvalidArgument(user.Entity, "user %d manages team %q and cannot be deleted", subject.ID, managed.Name)
		}

		id := subject.ID
		created, err := u.tasks().List(u.ctx(), task.Filter{CreatorID: &id})
		if err != nil {
			return err
		}
		if len(created) > 0 {
			return domain.InvalidArgument(user.Entity, "user %d created %d task(s) and cannot be deleted", subject.ID, len(created))
		}

		assigned, err := u.tasks().List(u.ctx(), task.Filter{AssigneeID: &id})
		if err != nil {
			return err
		}
		for i := range assigned {
			assigned[i].AssigneeID = nil
			if err := u.tasks().Save(u.ctx(), &assigned[i]); err != nil {
				return err
			}
		}

		return u.users().Delete(u.ctx(), id)
	})
	if err != nil {
		s.fail(ctx, "failed to delete user", "DeleteUser", err, slog.Int64("id", userID))
		return err
	}
	return nil
}

// GetUser returns a single user.
func (s *UserService) GetUser(ctx context.Context, actorID, userID int64) (*ports.UserView, error) {
	s.logger.InfoContext(ctx, "fetching user", slog.Int64("actor_id", actorID), slog.Int64("id", userID))

	var view *ports.UserView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		subject, tm, err := u.loadUser(userID)
		if err != nil {
			return err
		}
		view, err = u.viewUser(subject, tm)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to fetch user", "GetUser", err, slog.Int64("id", userID))
		return nil, err
	}
	return view, nil
}

// GetUserByUUID returns a single user by public id.
func (s *UserService) GetUserByUUID(ctx context.Context, actorID int64, uuid string) (*ports.UserView, error) {
	s.logger.InfoContext(ctx, "fetching user by uuid", slog.Int64("actor_id", actorID), slog.String("uuid", uuid))

	var view *ports.UserView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		subject, err := u.users().FindByUUID(u.ctx(), uuid)
		if err != nil {
			return err
		}
		tm, err := u.teamOf(subject.TeamID)
		if err != nil {
			return err
		}
		view, err = u.viewUser(subject, tm)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to fetch user", "GetUserByUUID", err, slog.String("uuid", uuid))
		return nil, err
	}
	return view, nil
}

func (u *unit) viewUser(subject *user.User, tm *team.Team) (*ports.UserView, error) {
	if err := u.authorize(policy.OpViewUser, policy.UserTarget(subject, tm)); err != nil {
		return nil, err
	}
	return u.userView(subject)
}

// ListUsers returns every user in the actor's scope.
func (s *UserService) ListUsers(ctx context.Context, actorID int64) ([]ports.UserView, error) {
	s.logger.InfoContext(ctx, "listing users", slog.Int64("actor_id", actorID))

	var views []ports.UserView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		managed, err := u.managedTeamID()
		if err != nil {
			return err
		}

		var users []user.User
		scope := policy.UserScope(u.policyActor(), managed)
		switch {
		case scope.All:
			users, err = u.users().List(u.ctx(), user.Filter{})
		case scope.TeamID != nil:
			users, err = u.users().List(u.ctx(), user.Filter{TeamID: scope.TeamID})
		case scope.UserID != nil:
			users = []user.User{*u.actor}
		}
		if err != nil {
			return err
		}

		views, err = u.userViews(users)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to list users", "ListUsers", err, slog.Int64("actor_id", actorID))
		return nil, err
	}
	return views, nil
}

// ListTeamUsers returns the members of a team.
func (s *UserService) ListTeamUsers(ctx context.Context, actorID, teamID int64) ([]ports.UserView, error) {
	s.logger.InfoContext(ctx, "listing team users", slog.Int64("actor_id", actorID), slog.Int64("team_id", teamID))

	var views []ports.UserView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		tm, err := u.team(teamID)
		if err != nil {
			return err
		}
		if err := u.authorize(policy.OpListTeamUsers, policy.TeamTarget(tm)); err != nil {
			return err
		}

		id := tm.ID
		users, err := u.users().List(u.ctx(), user.Filter{TeamID: &id})
		if err != nil {
			return err
		}
		views, err = u.userViews(users)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to list team users", "ListTeamUsers", err, slog.Int64("team_id", teamID))
		return nil, err
	}
	return views, nil
}
