// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Tasks  *handlers.TaskHandler
	Teams  *handlers.TeamHandler
	Users  *handlers.UserHandler
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler
}

// Guards are the per-group middlewares. Authenticate protects every
// /api/v1 route except /auth, which is throttled by RateLimit instead.
// A nil guard is skipped.
type Guards struct {
	Authenticate func(http.Handler) http.Handler
	RateLimit    func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, g Guards, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound, "RouteNotFound", "no route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed, "MethodNotAllowed",
			req.Method+" is not supported on "+req.URL.Path)
	})

	// Probes (outside /api/v1, unauthenticated).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(g.RateLimit))
			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/authenticate", h.Auth.Authenticate)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(g.Authenticate))
			mountTasks(r, h.Tasks)
			mountTeams(r, h.Teams, h.Users)
			mountUsers(r, h.Users)
		})
	})

	return r
}

// Static segments are registered next to {id}; chi matches them first.
func mountTasks(r chi.Router, t *handlers.TaskHandler) {
	r.Get("/tasks", t.ListTasks)
	r.Post("/tasks", t.CreateTask)
	r.Get("/tasks/completed", t.ListTasksByCompletion)
	r.Get("/tasks/status/{status}", t.ListTasksByStatus)
	r.Get("/tasks/assigned-to/{userId}", t.ListTasksByAssignee)
	r.Get("/tasks/created-by/{username}", t.ListTasksByCreator)
	r.Get("/tasks/{id}", t.GetTask)
	r.Patch("/tasks/{id}", t.UpdateTask)
	r.Delete("/tasks/{id}", t.DeleteTask)
	r.Post("/tasks/{id}/assign/{userId}", t.AssignTask)
	r.Post("/tasks/{id}/complete", t.CompleteTask)
}

func mountTeams(r chi.Router, t *handlers.TeamHandler, u *handlers.UserHandler) {
	r.Get("/teams", t.ListTeams)
	r.Post("/teams", t.CreateTeam)
	r.Get("/teams/mine", t.MyTeam)
	r.Get("/teams/{id}", t.GetTeam)
	r.Patch("/teams/{id}", t.UpdateTeam)
	r.Delete("/teams/{id}", t.DeleteTeam)
	r.Post("/teams/{id}/members/{userId}", t.AddMember)
	r.Delete("/teams/{id}/members/{userId}", t.RemoveMember)
	r.Get("/teams/{id}/users", u.ListTeamUsers)
}

func mountUsers(r chi.Router, u *handlers.UserHandler) {
	r.Get("/users", u.ListUsers)
	r.Post("/users", u.CreateUser)
	r.Get("/users/uuid/{uuid}", u.GetUserByUUID)
	r.Get("/users/{id}", u.GetUser)
	r.Patch("/users/{id}", u.UpdateUser)
	r.Delete("/users/{id}", u.DeleteUser)
}
