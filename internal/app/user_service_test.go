package app

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// --- Register ---

func TestRegister_CreatesActiveMember(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	view, err := f.users.Register(f.ctx, registration("newton@example.com", "111111111", "5550000001"))
	require.NoError(t, err)

	assert.NotZero(t, view.ID)
	assert.NotEmpty(t, view.UUID)
	assert.Equal(t, user.RoleMember, view.Role)
	assert.True(t, view.Active)
	assert.Nil(t, view.TeamID)

	stored := f.reloadUser(view.ID)
	assert.Equal(t, "plain:Secret#123", stored.PasswordHash, "password must be hashed")
}

func TestRegister_PasswordMismatchPersistsNothing(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	in := registration("newton@example.com", "111111111", "5550000001")
	in.ConfirmPassword = "Secret#124"

	_, err := f.users.Register(f.ctx, in)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	exists, err := f.store.Users().ExistsByUsername(f.ctx, "newton@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegister_UniqueFields(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, err := f.users.Register(f.ctx, registration("newton@example.com", "111111111", "5550000001"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		in       ports.RegisterInput
		wantCode string
	}{
		{"username", registration("newton@example.com", "222222222", "5550000002"), "UserUsernameAlreadyExists"},
		{"tax id", registration("curie@example.com", "111111111", "5550000002"), "UserTaxIDAlreadyExists"},
		{"phone", registration("hopper@example.com", "222222222", "5550000001"), "UserPhoneAlreadyExists"},
		{"username checked first", registration("newton@example.com", "111111111", "5550000001"), "UserUsernameAlreadyExists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.users.Register(f.ctx, tt.in)
			require.ErrorIs(t, err, domain.ErrAlreadyExists)
			assert.Equal(t, tt.wantCode, domain.CodeOf(err))
		})
	}
}

func TestRegister_InvalidFields(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	in := registration("newton@example.com", "111111111", "5550000001")
	in.Firstname = ""

	_, err := f.users.Register(f.ctx, in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- CreateUser ---

func TestCreateUser_DefaultsToMember(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	view, err := f.users.CreateUser(f.ctx, f.admin.ID, ports.CreateUserInput{
		RegisterInput: registration("hire@example.com", "111111111", "5550000001"),
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleMember, view.Role)
}

func TestCreateUser_ManagerLimits(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	tests := []struct {
		name    string
		role    user.Role
		teamID  *int64
		wantErr error
	}{
		{"member into managed team", user.RoleMember, int64Ptr(f.alpha.ID), nil},
		{"team leader", user.RoleTeamLeader, nil, nil},
		{"peer manager", user.RoleManager, nil, nil},
		{"admin", user.RoleAdmin, nil, domain.ErrNotAuthorized},
		{"foreign team", user.RoleMember, int64Ptr(f.beta.ID), domain.ErrNotAuthorized},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ports.CreateUserInput{
				RegisterInput: registration(
					tt.name+"@example.com",
					fmt.Sprintf("%09d", 100+i),
					fmt.Sprintf("%010d", 100+i),
				),
				Role:   tt.role,
				TeamID: tt.teamID,
			}
			view, err := f.users.CreateUser(f.ctx, f.manager.ID, in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.role, view.Role)
			assert.Equal(t, tt.teamID, view.TeamID)
		})
	}
}

func TestCreateUser_MembersDenied(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.users.CreateUser(f.ctx, f.leader.ID, ports.CreateUserInput{
		RegisterInput: registration("hire@example.com", "111111111", "5550000001"),
	})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestCreateUser_InvalidRoleAndUnknownTeam(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.users.CreateUser(f.ctx, f.admin.ID, ports.CreateUserInput{
		RegisterInput: registration("hire@example.com", "111111111", "5550000001"),
		Role:          "OWNER",
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.users.CreateUser(f.ctx, f.admin.ID, ports.CreateUserInput{
		RegisterInput: registration("hire@example.com", "111111111", "5550000001"),
		TeamID:        int64Ptr(999),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- UpdateUser ---

func TestUpdateUser_SelfEditsProfile(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	view, err := f.users.UpdateUser(f.ctx, f.member.ID, f.member.ID, ports.UpdateUserInput{
		Firstname: strPtr("Mem"),
		Password:  strPtr("NewSecret#1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mem", view.Firstname)
	assert.Equal(t, "plain:NewSecret#1", f.reloadUser(f.member.ID).PasswordHash)
}

func TestUpdateUser_SelfCannotElevate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.users.UpdateUser(f.ctx, f.member.ID, f.member.ID, ports.UpdateUserInput{Role: rolePtr(user.RoleAdmin)})
	require.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.Equal(t, user.RoleMember, f.reloadUser(f.member.ID).Role)

	// Re-sending unchanged privileged fields is not an elevation.
	_, err = f.users.UpdateUser(f.ctx, f.member.ID, f.member.ID, ports.UpdateUserInput{
		Role:   rolePtr(user.RoleMember),
		Active: boolPtr(true),
		TeamID: int64Ptr(f.alpha.ID),
	})
	assert.NoError(t, err)
}

func TestUpdateUser_OtherUserDenied(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.users.UpdateUser(f.ctx, f.leader.ID, f.member.ID, ports.UpdateUserInput{Firstname: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestUpdateUser_ManagerPromotesAndMoves(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	view, err := f.users.UpdateUser(f.ctx, f.manager.ID, f.member.ID, ports.UpdateUserInput{
		Role:   rolePtr(user.RoleTeamLeader),
		Active: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleTeamLeader, view.Role)
	assert.False(t, view.Active)

	_, err = f.users.UpdateUser(f.ctx, f.manager.ID, f.leader.ID, ports.UpdateUserInput{Role: rolePtr(user.RoleAdmin)})
	require.ErrorIs(t, err, domain.ErrNotAuthorized)

	view, err = f.users.UpdateUser(f.ctx, f.manager.ID, f.leader.ID, ports.UpdateUserInput{ClearTeam: true})
	require.NoError(t, err)
	assert.Nil(t, view.TeamID)
}

func TestUpdateUser_AdminMovesBetweenTeams(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	view, err := f.users.UpdateUser(f.ctx, f.admin.ID, f.member.ID, ports.UpdateUserInput{TeamID: int64Ptr(f.beta.ID)})
	require.NoError(t, err)
	require.NotNil(t, view.TeamName)
	assert.Equal(t, "Beta", *view.TeamName)
}

func TestUpdateUser_UniqueFields(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.users.UpdateUser(f.ctx, f.admin.ID, f.member.ID, ports.UpdateUserInput{Phone: strPtr(f.leader.Phone)})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Equal(t, "UserPhoneAlreadyExists", domain.CodeOf(err))

	_, err = f.users.UpdateUser(f.ctx, f.admin.ID, f.member.ID, ports.UpdateUserInput{TaxID: strPtr(f.leader.TaxID)})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Equal(t, "UserTaxIDAlreadyExists", domain.CodeOf(err))
}

// --- DeleteUser ---

func TestDeleteUser_MembersAndLeadersDenied(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	for _, actor := range []*user.User{f.member, f.leader} {
		err := f.users.DeleteUser(f.ctx, actor.ID, f.outsider.ID)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized, "role %s", actor.Role)
	}
	f.reloadUser(f.outsider.ID)
}

func TestDeleteUser_UnassignsTasks(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	tk := f.seedTask("Hand-off", f.manager, f.alpha, f.member)

	require.NoError(t, f.users.DeleteUser(f.ctx, f.manager.ID, f.member.ID))

	assert.Nil(t, f.reloadTask(tk.ID).AssigneeID)
	_, err := f.store.Users().FindByID(f.ctx, f.member.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUser_Refusals(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.seedTask("Created by leader", f.leader, f.alpha, nil)

	err := f.users.DeleteUser(f.ctx, f.admin.ID, f.manager.ID)
	require.ErrorIs(t, err, domain.ErrInvalidArgument, "managers of a team cannot be deleted")

	err = f.users.DeleteUser(f.ctx, f.admin.ID, f.leader.ID)
	require.ErrorIs(t, err, domain.ErrInvalidArgument, "creators of tasks cannot be deleted")

	err = f.users.DeleteUser(f.ctx, f.other.ID, f.member.ID)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized, "managers only delete their own members")
}

// --- Reads ---

func TestGetUser_Visibility(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.users.GetUser(f.ctx, f.member.ID, f.member.ID)
	require.NoError(t, err)

	_, err = f.users.GetUser(f.ctx, f.member.ID, f.leader.ID)
	require.ErrorIs(t, err, domain.ErrNotAuthorized)

	view, err := f.users.GetUser(f.ctx, f.manager.ID, f.leader.ID)
	require.NoError(t, err)
	require.NotNil(t, view.TeamName)
	assert.Equal(t, "Alpha", *view.TeamName)

	_, err = f.users.GetUser(f.ctx, f.admin.ID, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetUserByUUID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	view, err := f.users.GetUserByUUID(f.ctx, f.admin.ID, f.member.UUID)
	require.NoError(t, err)
	assert.Equal(t, f.member.ID, view.ID)

	_, err = f.users.GetUserByUUID(f.ctx, f.outsider.ID, f.member.UUID)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestListUsers_Scope(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	tests := []struct {
		name  string
		actor *user.User
		want  []int64
	}{
		{"admin sees everyone", f.admin, []int64{f.admin.ID, f.manager.ID, f.other.ID, f.leader.ID, f.member.ID, f.outsider.ID}},
		{"manager sees team", f.manager, []int64{f.leader.ID, f.member.ID}},
		{"manager of empty team", f.other, []int64{}},
		{"member sees self", f.member, []int64{f.member.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := f.users.ListUsers(f.ctx, tt.actor.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, userIDs(views))
		})
	}
}

func TestListTeamUsers(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	views, err := f.users.ListTeamUsers(f.ctx, f.member.ID, f.alpha.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{f.leader.ID, f.member.ID}, userIDs(views))

	_, err = f.users.ListTeamUsers(f.ctx, f.outsider.ID, f.alpha.ID)
	require.ErrorIs(t, err, domain.ErrNotAuthorized)

	_, err = f.users.ListTeamUsers(f.ctx, f.other.ID, f.alpha.ID)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}
