package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	svc ports.TeamService
}

// NewTeamHandler creates a new TeamHandler with the given service port.
func NewTeamHandler(svc ports.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// ListTeams handles GET /api/v1/teams.
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	teams, err := h.svc.ListTeams(r.Context(), actorID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTeamListResponse(teams))
}

// CreateTeam handles POST /api/v1/teams.
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if !readBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTeam(r.Context(), actorID, mapCreateTeam(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, dto.ToTeamResponse(created))
}

// MyTeam handles GET /api/v1/teams/mine.
func (h *TeamHandler) MyTeam(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	teams, err := h.svc.MyTeam(r.Context(), actorID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTeamListResponse(teams))
}

// GetTeam handles GET /api/v1/teams/{id}.
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	tm, err := h.svc.GetTeam(r.Context(), actorID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTeamResponse(tm))
}

// UpdateTeam handles PATCH /api/v1/teams/{id}.
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeamRequest
	if !readBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTeam(r.Context(), actorID, id, mapUpdateTeam(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTeamResponse(updated))
}

// DeleteTeam handles DELETE /api/v1/teams/{id}.
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTeam(r.Context(), actorID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddMember handles POST /api/v1/teams/{id}/members/{userId}.
func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	h.changeMembership(w, r, h.svc.AddMember)
}

// RemoveMember handles DELETE /api/v1/teams/{id}/members/{userId}.
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	h.changeMembership(w, r, h.svc.RemoveMember)
}

type membershipFunc func(ctx context.Context, actorID, teamID, userID int64) (*ports.TeamView, error)

func (h *TeamHandler) changeMembership(w http.ResponseWriter, r *http.Request, change membershipFunc) {
	actorID, teamID, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}
	userID, err := parseID(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tm, err := change(r.Context(), actorID, teamID, userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTeamResponse(tm))
}
