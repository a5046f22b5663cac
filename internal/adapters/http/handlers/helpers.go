package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// parseID reads a positive id from the named chi path parameter.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a positive integer"},
		}
	}
	return id, nil
}

// actor returns the authenticated user id. A route mounted without
// Authenticate gets a 401 instead of a zero id.
func actor(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		dto.WriteProblem(w, r, http.StatusUnauthorized, dto.CodeUnauthenticated, "missing bearer token")
		return 0, false
	}
	return id, true
}

// actorAndID resolves the actor plus one id path parameter, writing the
// error response when either is missing.
func actorAndID(w http.ResponseWriter, r *http.Request, param string) (actorID, id int64, ok bool) {
	actorID, ok = actor(w, r)
	if !ok {
		return 0, 0, false
	}
	id, err := parseID(r, param)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, false
	}
	return actorID, id, true
}

// respond writes v as a JSON document with status.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response body", slog.Any("error", err))
	}
}

const maxBodyBytes = 1 << 20

type validator interface {
	Validate() error
}

// readBody decodes exactly one JSON document of at most maxBodyBytes into
// dst and validates it. On failure the problem response is already written.
func readBody(w http.ResponseWriter, r *http.Request, dst validator) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errors.New("trailing data")
	}
	if err != nil {
		msg := "must be a single JSON object"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": msg}})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// parseStatus accepts a task status in any letter case.
func parseStatus(raw string) (task.Status, error) {
	s := task.Status(strings.ToUpper(raw))
	if !s.IsValid() {
		return "", &domain.ValidationError{
			Fields: map[string]string{"status": "must be one of TODO, IN_PROGRESS, COMPLETED"},
		}
	}
	return s, nil
}

// parseBoolQuery reads a mandatory boolean query parameter.
func parseBoolQuery(r *http.Request, name string) (bool, error) {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return false, &domain.ValidationError{
			Fields: map[string]string{name: "must be true or false"},
		}
	}
	return v, nil
}

func mapCreateTask(req *dto.CreateTaskRequest) ports.CreateTaskInput {
	// Validate has already parsed the date.
	due, _ := dto.ParseDueDate(req.DueDate)
	return ports.CreateTaskInput{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Priority:    task.Priority(req.Priority),
		DueDate:     due,
		AssigneeID:  req.AssignedToID,
		TeamID:      req.TeamID,
	}
}

func mapUpdateTask(req *dto.UpdateTaskRequest) ports.UpdateTaskInput {
	due, _ := dto.ParseDueDate(req.DueDate)
	in := ports.UpdateTaskInput{
		Description:   req.Description,
		DueDate:       due,
		AssigneeID:    req.AssignedToID,
		ClearAssignee: req.ClearAssignee,
		TeamID:        req.TeamID,
		ClearTeam:     req.ClearTeam,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		in.Title = &title
	}
	if req.Priority != nil {
		p := task.Priority(*req.Priority)
		in.Priority = &p
	}
	if req.Status != nil {
		s := task.Status(*req.Status)
		in.Status = &s
	}
	return in
}

func mapRegister(req *dto.RegisterRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Firstname:       strings.TrimSpace(req.Firstname),
		Lastname:        strings.TrimSpace(req.Lastname),
		Username:        strings.TrimSpace(req.Username),
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		TaxID:           req.TaxID,
		Phone:           req.Phone,
	}
}

func mapCreateUser(req *dto.CreateUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		RegisterInput: mapRegister(&req.RegisterRequest),
		Role:          user.Role(req.Role),
		TeamID:        req.TeamID,
	}
}

func mapUpdateUser(req *dto.UpdateUserRequest) ports.UpdateUserInput {
	in := ports.UpdateUserInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Phone:     req.Phone,
		TaxID:     req.TaxID,
		Password:  req.Password,
		Active:    req.Active,
		TeamID:    req.TeamID,
		ClearTeam: req.ClearTeam,
	}
	if req.Role != nil {
		role := user.Role(*req.Role)
		in.Role = &role
	}
	return in
}

func mapCreateTeam(req *dto.CreateTeamRequest) ports.CreateTeamInput {
	return ports.CreateTeamInput{
		Name:      strings.TrimSpace(req.Name),
		ManagerID: req.ManagerID,
		MemberIDs: req.MemberIDs,
	}
}

func mapUpdateTeam(req *dto.UpdateTeamRequest) ports.UpdateTeamInput {
	in := ports.UpdateTeamInput{
		ManagerID: req.ManagerID,
		MemberIDs: req.MemberIDs,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		in.Name = &name
	}
	return in
}
