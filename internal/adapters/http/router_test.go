package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/taskflow-service/internal/adapters/http"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/auth"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

type testRouter struct {
	handler  http.Handler
	tokens   *auth.Tokens
	tasks    *mocks.MockTaskService
	teams    *mocks.MockTeamService
	users    *mocks.MockUserService
	auth     *mocks.MockAuthService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, guards bool, mws ...func(http.Handler) http.Handler) *testRouter {
	t.Helper()
	tr := &testRouter{
		tokens:   auth.NewTokens("router-test-secret-0123456789abcdef", "taskflow", time.Hour),
		tasks:    mocks.NewMockTaskService(t),
		teams:    mocks.NewMockTeamService(t),
		users:    mocks.NewMockUserService(t),
		auth:     mocks.NewMockAuthService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}

	var g adapthttp.Guards
	if guards {
		g.Authenticate = middleware.Authenticate(tr.tokens)
		g.RateLimit = middleware.NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1}).Middleware()
	}

	tr.handler = adapthttp.NewRouter(adapthttp.Handlers{
		Tasks:  handlers.NewTaskHandler(tr.tasks),
		Teams:  handlers.NewTeamHandler(tr.teams),
		Users:  handlers.NewUserHandler(tr.users),
		Auth:   handlers.NewAuthHandler(tr.auth, tr.users),
		Health: handlers.NewHealthHandler(tr.registry),
	}, g, mws...)
	return tr
}

func (tr *testRouter) bearer(t *testing.T, userID int64) string {
	t.Helper()
	token, _, err := tr.tokens.Issue(userID, "user@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return "Bearer " + token
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, false)

	expectedRoutes := []string{
		"GET /health/live",
		"GET /health/ready",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/authenticate",
		"GET /api/v1/tasks",
		"POST /api/v1/tasks",
		"GET /api/v1/tasks/completed",
		"GET /api/v1/tasks/status/{status}",
		"GET /api/v1/tasks/assigned-to/{userId}",
		"GET /api/v1/tasks/created-by/{username}",
		"GET /api/v1/tasks/{id}",
		"PATCH /api/v1/tasks/{id}",
		"DELETE /api/v1/tasks/{id}",
		"POST /api/v1/tasks/{id}/assign/{userId}",
		"POST /api/v1/tasks/{id}/complete",
		"GET /api/v1/teams",
		"POST /api/v1/teams",
		"GET /api/v1/teams/mine",
		"GET /api/v1/teams/{id}",
		"PATCH /api/v1/teams/{id}",
		"DELETE /api/v1/teams/{id}",
		"POST /api/v1/teams/{id}/members/{userId}",
		"DELETE /api/v1/teams/{id}/members/{userId}",
		"GET /api/v1/teams/{id}/users",
		"GET /api/v1/users",
		"POST /api/v1/users",
		"GET /api/v1/users/uuid/{uuid}",
		"GET /api/v1/users/{id}",
		"PATCH /api/v1/users/{id}",
		"DELETE /api/v1/users/{id}",
	}

	chiRouter, ok := tr.handler.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, key := range expectedRoutes {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}
	tr := newTestRouter(t, false, testMW)
	tr.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, true)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRouter_AuthenticatedListTasks(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, true)
	tr.tasks.EXPECT().ListTasks(mock.Anything, int64(3)).Return([]ports.TaskView{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody)
	req.Header.Set("Authorization", tr.bearer(t, 3))
	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_StaticSegmentsBeatIDRoutes(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, true)
	tr.tasks.EXPECT().ListTasksByCompletion(mock.Anything, int64(3), true).Return(nil, nil)
	tr.tasks.EXPECT().ListTasksByStatus(mock.Anything, int64(3), task.StatusTodo).Return(nil, nil)
	tr.teams.EXPECT().MyTeam(mock.Anything, int64(3)).Return([]ports.TeamView{{ID: 1, Name: "Alpha"}}, nil)

	for _, path := range []string{
		"/api/v1/tasks/completed?value=true",
		"/api/v1/tasks/status/TODO",
		"/api/v1/teams/mine",
	} {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		req.Header.Set("Authorization", tr.bearer(t, 3))
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d; body = %s", path, rec.Code, http.StatusOK, rec.Body.String())
		}
	}
}

func TestRouter_AuthRoutesRateLimited(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, true)

	// Burst of one: the first invalid body passes the limiter, the second is throttled.
	codes := make([]int, 2)
	for i := range codes {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/authenticate", http.NoBody)
		req.RemoteAddr = "192.0.2.10:5555"
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}

	if codes[0] != http.StatusBadRequest {
		t.Errorf("first status = %d, want %d", codes[0], http.StatusBadRequest)
	}
	if codes[1] != http.StatusTooManyRequests {
		t.Errorf("second status = %d, want %d", codes[1], http.StatusTooManyRequests)
	}
}

func TestRouter_NotFoundIsProblemJSON(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", http.NoBody))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "RouteNotFound" {
		t.Errorf("code = %q, want RouteNotFound", resp.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/tasks", http.NoBody))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
