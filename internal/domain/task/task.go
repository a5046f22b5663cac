// Package task defines the Task entity and its status state machine.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// Entity is the name used in error codes for task failures.
const Entity = "Task"

// Task is a unit of work created by one user and optionally assigned to
// another. Completed always mirrors Status == StatusCompleted.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    Priority
	Status      Status
	DueDate     *time.Time
	Completed   bool
	CreatorID   int64
	AssigneeID  *int64
	TeamID      *int64
	domain.Timestamps
}

// New returns a task in the initial TODO state.
func New(title, description string, priority Priority, creatorID int64) *Task {
	return &Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      StatusTodo,
		CreatorID:   creatorID,
	}
}

// Validate checks structural rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.Completed != (t.Status == StatusCompleted) {
		fields["completed"] = fmt.Sprintf("must mirror status, got %t with %q", t.Completed, t.Status)
	}
	if t.CreatorID <= 0 {
		fields["creator_id"] = domain.MsgRequired
	}
	if t.AssigneeID != nil && *t.AssigneeID <= 0 {
		fields["assignee_id"] = fmt.Sprintf("must be positive, got %d", *t.AssigneeID)
	}
	if t.TeamID != nil && *t.TeamID <= 0 {
		fields["team_id"] = fmt.Sprintf("must be positive, got %d", *t.TeamID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsAssignedTo reports whether the task is assigned to userID.
func (t *Task) IsAssignedTo(userID int64) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// InTeam reports whether the task belongs to teamID.
func (t *Task) InTeam(teamID int64) bool {
	return t.TeamID != nil && *t.TeamID == teamID
}

// Complete moves the task to the terminal COMPLETED state. Completing an
// already completed task fails with InvalidArgument.
func (t *Task) Complete() error {
	if t.Status.IsTerminal() {
		return domain.InvalidArgument(Entity, "task %d is already completed", t.ID)
	}
	t.Status = StatusCompleted
	t.Completed = true
	return nil
}

// SetStatus applies a status change requested through an update. Any
// non-terminal status may move to any status, including back to TODO; a
// completed task keeps its status.
func (t *Task) SetStatus(s Status) error {
	if !s.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", s)}}
	}
	if s == t.Status {
		return nil
	}
	if t.Status.IsTerminal() {
		return domain.InvalidArgument(Entity, "task %d is completed and its status cannot change", t.ID)
	}
	t.Status = s
	t.Completed = s == StatusCompleted
	return nil
}

// Filter narrows a task listing. Nil fields match everything; set fields are
// combined with AND.
type Filter struct {
	AssigneeID *int64
	CreatorID  *int64
	TeamID     *int64
	Status     *Status
	Completed  *bool
}

// Matches reports whether t satisfies the filter.
func (f Filter) Matches(t *Task) bool {
	if f.AssigneeID != nil && !t.IsAssignedTo(*f.AssigneeID) {
		return false
	}
	if f.CreatorID != nil && t.CreatorID != *f.CreatorID {
		return false
	}
	if f.TeamID != nil && !t.InTeam(*f.TeamID) {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	return true
}
