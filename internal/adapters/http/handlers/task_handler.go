package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), actorID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !readBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), actorID, mapCreateTask(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, dto.ToTaskResponse(created))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.GetTask(r.Context(), actorID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !readBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), actorID, id, mapUpdateTask(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), actorID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AssignTask handles POST /api/v1/tasks/{id}/assign/{userId}.
func (h *TaskHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}
	userID, err := parseID(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.AssignTask(r.Context(), actorID, id, userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

// CompleteTask handles POST /api/v1/tasks/{id}/complete.
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	actorID, id, ok := actorAndID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.CompleteTask(r.Context(), actorID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

// ListTasksByAssignee handles GET /api/v1/tasks/assigned-to/{userId}.
func (h *TaskHandler) ListTasksByAssignee(w http.ResponseWriter, r *http.Request) {
	actorID, userID, ok := actorAndID(w, r, "userId")
	if !ok {
		return
	}

	tasks, err := h.svc.ListTasksByAssignee(r.Context(), actorID, userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// ListTasksByCreator handles GET /api/v1/tasks/created-by/{username}.
func (h *TaskHandler) ListTasksByCreator(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	tasks, err := h.svc.ListTasksByCreator(r.Context(), actorID, chi.URLParam(r, "username"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// ListTasksByStatus handles GET /api/v1/tasks/status/{status}.
func (h *TaskHandler) ListTasksByStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	status, err := parseStatus(chi.URLParam(r, "status"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.svc.ListTasksByStatus(r.Context(), actorID, status)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// ListTasksByCompletion handles GET /api/v1/tasks/completed?value=true|false.
func (h *TaskHandler) ListTasksByCompletion(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	completed, err := parseBoolQuery(r, "value")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.svc.ListTasksByCompletion(r.Context(), actorID, completed)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}
