package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc ports.UserService
}

// NewUserHandler creates a new UserHandler with the given service port.
func NewUserHandler(svc ports.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListUsers handles GET /api/v1/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	users, err := h.svc.ListUsers(r.Context(), actorID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToUserListResponse(users))
}

// CreateUser handles POST /api/v1/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !readBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateUser(r.Context(), actorID, mapCreateUser(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, dto.ToUserResponse(created))
}

// GetUser handles GET /api/v1/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	u, err := h.svc.GetUser(r.Context(), actorID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToUserResponse(u))
}

// GetUserByUUID handles GET /api/v1/users/uuid/{uuid}.
func (h *UserHandler) GetUserByUUID(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	u, err := h.svc.GetUserByUUID(r.Context(), actorID, chi.URLParam(r, "uuid"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToUserResponse(u))
}

// UpdateUser handles PATCH /api/v1/users/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !readBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateUser(r.Context(), actorID, id, mapUpdateUser(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToUserResponse(updated))
}

// DeleteUser handles DELETE /api/v1/users/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(r.Context(), actorID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTeamUsers handles GET /api/v1/teams/{id}/users.
func (h *UserHandler) ListTeamUsers(w http.ResponseWriter, r *http.Request) {
	actorID, teamID, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	users, err := h.svc.ListTeamUsers(r.Context(), actorID, teamID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToUserListResponse(users))
}
