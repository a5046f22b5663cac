package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

func newUserHandler(t *testing.T) (*handlers.UserHandler, *mocks.MockUserService) {
	t.Helper()
	svc := mocks.NewMockUserService(t)
	return handlers.NewUserHandler(svc), svc
}

func validCreateUser() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		RegisterRequest: dto.RegisterRequest{
			Firstname:       "Maria",
			Lastname:        "Papadopoulou",
			Username:        "maria@example.com",
			Password:        "Secret#123",
			ConfirmPassword: "Secret#123",
			TaxID:           "123456789",
			Phone:           "6912345678",
		},
		Role: "TEAM_LEADER",
	}
}

func TestListUsers_Success(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().ListUsers(mock.Anything, testActorID).Return([]ports.UserView{*sampleUser()}, nil)

	rec := httptest.NewRecorder()
	h.ListUsers(rec, authed(http.MethodGet, "/api/v1/users", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserListResponse](t, rec)
	if resp.Count != 1 || resp.Users[0].Username != "maria@example.com" {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateUser_MapsRole(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().CreateUser(mock.Anything, testActorID, mock.MatchedBy(func(in ports.CreateUserInput) bool {
		return in.Role == user.RoleTeamLeader && in.Username == "maria@example.com" && in.TeamID == nil
	})).Return(sampleUser(), nil)

	rec := httptest.NewRecorder()
	h.CreateUser(rec, authed(http.MethodPost, "/api/v1/users", jsonBody(t, validCreateUser())))

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	t.Parallel()
	h, _ := newUserHandler(t)

	body := validCreateUser()
	body.Role = "OWNER"
	rec := httptest.NewRecorder()
	h.CreateUser(rec, authed(http.MethodPost, "/api/v1/users", jsonBody(t, body)))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.role" {
		t.Errorf("Errors = %+v, want body.role", resp.Errors)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().GetUser(mock.Anything, testActorID, int64(42)).
		Return(nil, domain.NotFound("User", "user 42 not found"))

	rec := httptest.NewRecorder()
	h.GetUser(rec, withChiParams(authed(http.MethodGet, "/api/v1/users/42", nil), map[string]string{"id": "42"}))

	requireStatus(t, rec, http.StatusNotFound)
	requireCode(t, rec, "UserNotFound")
}

func TestGetUserByUUID(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	u := sampleUser()
	svc.EXPECT().GetUserByUUID(mock.Anything, testActorID, u.UUID).Return(u, nil)

	rec := httptest.NewRecorder()
	h.GetUserByUUID(rec, withChiParams(authed(http.MethodGet, "/api/v1/users/uuid/"+u.UUID, nil),
		map[string]string{"uuid": u.UUID}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.UUID != u.UUID {
		t.Errorf("UUID = %q, want %q", resp.UUID, u.UUID)
	}
}

func TestUpdateUser_Deactivate(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	inactive := sampleUser()
	inactive.Active = false
	svc.EXPECT().UpdateUser(mock.Anything, testActorID, int64(9), mock.MatchedBy(func(in ports.UpdateUserInput) bool {
		return in.Active != nil && !*in.Active && in.Role == nil && in.ClearTeam
	})).Return(inactive, nil)

	active := false
	body := jsonBody(t, dto.UpdateUserRequest{Active: &active, ClearTeam: true})
	rec := httptest.NewRecorder()
	h.UpdateUser(rec, withChiParams(authed(http.MethodPatch, "/api/v1/users/9", body), map[string]string{"id": "9"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.Active {
		t.Error("is_active = true, want false")
	}
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()
		h, svc := newUserHandler(t)
		svc.EXPECT().DeleteUser(mock.Anything, testActorID, int64(9)).Return(nil)

		rec := httptest.NewRecorder()
		h.DeleteUser(rec, withChiParams(authed(http.MethodDelete, "/api/v1/users/9", nil), map[string]string{"id": "9"}))

		requireStatus(t, rec, http.StatusNoContent)
	})

	t.Run("still manages a team", func(t *testing.T) {
		t.Parallel()
		h, svc := newUserHandler(t)
		svc.EXPECT().DeleteUser(mock.Anything, testActorID, int64(9)).
			Return(domain.InvalidArgument("User", "user 9 still manages team 5"))

		rec := httptest.NewRecorder()
		h.DeleteUser(rec, withChiParams(authed(http.MethodDelete, "/api/v1/users/9", nil), map[string]string{"id": "9"}))

		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestListTeamUsers(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().ListTeamUsers(mock.Anything, testActorID, int64(5)).Return([]ports.UserView{}, nil)

	rec := httptest.NewRecorder()
	h.ListTeamUsers(rec, withChiParams(authed(http.MethodGet, "/api/v1/teams/5/users", nil), map[string]string{"id": "5"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserListResponse](t, rec)
	if resp.Users == nil || resp.Count != 0 {
		t.Errorf("response = %+v, want empty list", resp)
	}
}
