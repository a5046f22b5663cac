package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

func newAuthHandler(t *testing.T) (*handlers.AuthHandler, *mocks.MockAuthService, *mocks.MockUserService) {
	t.Helper()
	auth := mocks.NewMockAuthService(t)
	users := mocks.NewMockUserService(t)
	return handlers.NewAuthHandler(auth, users), auth, users
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(r *dto.RegisterRequest)
		setup      func(users *mocks.MockUserService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "registered",
			setup: func(users *mocks.MockUserService) {
				users.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in ports.RegisterInput) bool {
					return in.Firstname == "Maria" && in.Username == "maria@example.com"
				})).Return(sampleUser(), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "weak password",
			mutate:     func(r *dto.RegisterRequest) { r.Password = "password" },
			wantStatus: http.StatusBadRequest,
			wantCode:   "ValidationError",
		},
		{
			name:   "password mismatch",
			mutate: func(r *dto.RegisterRequest) { r.ConfirmPassword = "Other#1234" },
			setup: func(users *mocks.MockUserService) {
				users.EXPECT().Register(mock.Anything, mock.Anything).
					Return(nil, domain.InvalidArgument("User", "passwords do not match"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "UserInvalidArgument",
		},
		{
			name: "username taken",
			setup: func(users *mocks.MockUserService) {
				users.EXPECT().Register(mock.Anything, mock.Anything).
					Return(nil, domain.FieldAlreadyExists("User", "Username", "username already taken"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   "UserUsernameAlreadyExists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, users := newAuthHandler(t)
			if tt.setup != nil {
				tt.setup(users)
			}

			body := validCreateUser().RegisterRequest
			if tt.mutate != nil {
				tt.mutate(&body)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantCode != "" {
				requireCode(t, rec, tt.wantCode)
			}
		})
	}
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()
	h, auth, _ := newAuthHandler(t)

	auth.EXPECT().Authenticate(mock.Anything, "maria@example.com", "Secret#123").Return(&ports.AuthToken{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		User:      *sampleUser(),
	}, nil)

	body := jsonBody(t, dto.AuthRequest{Username: "maria@example.com", Password: "Secret#123"})
	rec := httptest.NewRecorder()
	h.Authenticate(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/authenticate", body))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.AuthResponse](t, rec)
	if resp.Token != "signed.jwt.token" || resp.Firstname != "Maria" {
		t.Errorf("response = %+v", resp)
	}
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	t.Parallel()
	h, auth, _ := newAuthHandler(t)

	auth.EXPECT().Authenticate(mock.Anything, "maria@example.com", "Wrong#1234").
		Return(nil, domain.NotAuthorized("User", "bad credentials"))

	body := jsonBody(t, dto.AuthRequest{Username: "maria@example.com", Password: "Wrong#1234"})
	rec := httptest.NewRecorder()
	h.Authenticate(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/authenticate", body))

	requireStatus(t, rec, http.StatusForbidden)
	requireCode(t, rec, "UserNotAuthorized")
}

func TestAuthenticate_MissingPassword(t *testing.T) {
	t.Parallel()
	h, _, _ := newAuthHandler(t)

	body := jsonBody(t, dto.AuthRequest{Username: "maria@example.com"})
	rec := httptest.NewRecorder()
	h.Authenticate(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/authenticate", body))

	requireStatus(t, rec, http.StatusBadRequest)
}
