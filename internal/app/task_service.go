package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/policy"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService on top of a ports.Store.
type TaskService struct {
	base
}

// NewTaskService creates a TaskService. The recorder may be nil.
func NewTaskService(store ports.Store, recorder DecisionRecorder, logger *slog.Logger) *TaskService {
	return &TaskService{newBase(store, recorder, logger)}
}

// CreateTask creates a TODO task owned by the actor.
func (s *TaskService) CreateTask(ctx context.Context, actorID int64, in ports.CreateTaskInput) (*ports.TaskView, error) {
	s.logger.InfoContext(ctx, "creating task", slog.Int64("actor_id", actorID), slog.String("title", in.Title))

	var view *ports.TaskView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		if err := u.guard(policy.OpCreateTask, policy.CanCreate(u.policyActor()), policy.Target{}); err != nil {
			return err
		}

		tk := task.New(in.Title, in.Description, in.Priority, u.actor.ID)
		tk.DueDate = in.DueDate

		if in.AssigneeID != nil {
			if _, err := u.user(*in.AssigneeID); err != nil {
				return refNotFound(err, user.Entity, "assignee %d not found", *in.AssigneeID)
			}
			tk.AssigneeID = in.AssigneeID
		}
		if in.TeamID != nil {
			if _, err := u.team(*in.TeamID); err != nil {
				return refNotFound(err, team.Entity, "team %d not found", *in.TeamID)
			}
			tk.TeamID = in.TeamID
		}

		if err := tk.Validate(); err != nil {
			return err
		}
		if err := u.tasks().Save(u.ctx(), tk); err != nil {
			return err
		}

		var err error
		view, err = u.taskView(tk)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to create task", "CreateTask", err, slog.Int64("actor_id", actorID))
		return nil, err
	}
	return view, nil
}

// UpdateTask applies the non-nil fields of in.
func (s *TaskService) UpdateTask(ctx context.Context, actorID, taskID int64, in ports.UpdateTaskInput) (*ports.TaskView, error) {
	s.logger.InfoContext(ctx, "updating task", slog.Int64("actor_id", actorID), slog.Int64("id", taskID))

	var view *ports.TaskView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		tk, tm, err := u.loadTask(taskID)
		if err != nil {
			return err
		}

		target := policy.TaskTarget(tk, tm)
		if err := u.guard(policy.OpUpdateTask, policy.CanMutate(u.policyActor(), tk, tm), target); err != nil {
			return err
		}
		if reassigns(tk, in) {
			if err := u.guard(policy.OpAssignTask, policy.CanAssign(u.policyActor(), tk, tm), target); err != nil {
				return err
			}
		}
		if completes(tk, in) {
			if err := u.guard(policy.OpCompleteTask, policy.CanComplete(u.policyActor(), tk, tm), target); err != nil {
				return err
			}
		}

		if err := u.applyTaskUpdate(tk, in); err != nil {
			return err
		}
		if err := tk.Validate(); err != nil {
			return err
		}
		if err := u.tasks().Save(u.ctx(), tk); err != nil {
			return err
		}

		view, err = u.taskView(tk)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to update task", "UpdateTask", err, slog.Int64("id", taskID))
		return nil, err
	}
	return view, nil
}

// reassigns reports whether in changes the task's assignee or team.
func reassigns(tk *task.Task, in ports.UpdateTaskInput) bool {
	switch {
	case in.ClearAssignee && tk.AssigneeID != nil:
		return true
	case in.AssigneeID != nil && !tk.IsAssignedTo(*in.AssigneeID):
		return true
	case in.ClearTeam && tk.TeamID != nil:
		return true
	case in.TeamID != nil && !tk.InTeam(*in.TeamID):
		return true
	default:
		return false
	}
}

// completes reports whether in moves an open task to COMPLETED.
func completes(tk *task.Task, in ports.UpdateTaskInput) bool {
	return in.Status != nil && *in.Status == task.StatusCompleted && !tk.Status.IsTerminal()
}

func (u *unit) applyTaskUpdate(tk *task.Task, in ports.UpdateTaskInput) error {
	if in.Title != nil {
		tk.Title = *in.Title
	}
	if in.Description != nil {
		tk.Description = *in.Description
	}
	if in.Priority != nil {
		tk.Priority = *in.Priority
	}
	if in.DueDate != nil {
		tk.DueDate = in.DueDate
	}
	if in.Status != nil {
		if err := tk.SetStatus(*in.Status); err != nil {
			return err
		}
	}

	switch {
	case in.ClearAssignee:
		tk.AssigneeID = nil
	case in.AssigneeID != nil:
		if _, err := u.user(*in.AssigneeID); err != nil {
			return refNotFound(err, user.Entity, "assignee %d not found", *in.AssigneeID)
		}
		tk.AssigneeID = in.AssigneeID
	}

	switch {
	case in.ClearTeam:
		tk.TeamID = nil
	case in.TeamID != nil:
		if _, err := u.team(*in.TeamID); err != nil {
			return refNotFound(err, team.Entity, "team %d not found", *in.TeamID)
		}
		tk.TeamID = in.TeamID
	}
	return nil
}

// GetTask returns a single task.
func (s *TaskService) GetTask(ctx context.Context, actorID, taskID int64) (*ports.TaskView, error) {
	s.logger.InfoContext(ctx, "fetching task", slog.Int64("actor_id", actorID), slog.Int64("id", taskID))

	var view *ports.TaskView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		tk, tm, err := u.loadTask(taskID)
		if err != nil {
			return err
		}
		if err := u.guard(policy.OpViewTask, policy.CanView(u.policyActor(), tk, tm), policy.TaskTarget(tk, tm)); err != nil {
			return err
		}
		view, err = u.taskView(tk)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to fetch task", "GetTask", err, slog.Int64("id", taskID))
		return nil, err
	}
	return view, nil
}

// AssignTask sets the task's assignee. The assignee does not need to belong
// to the task's team.
func (s *TaskService) AssignTask(ctx context.Context, actorID, taskID, userID int64) (*ports.TaskView, error) {
	s.logger.InfoContext(ctx, "assigning task",
		slog.Int64("actor_id", actorID),
		slog.Int64("id", taskID),
		slog.Int64("assignee_id", userID),
	)

	var view *ports.TaskView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		tk, tm, err := u.loadTask(taskID)
		if err != nil {
			return err
		}
		if err := u.guard(policy.OpAssignTask, policy.CanAssign(u.policyActor(), tk, tm), policy.TaskTarget(tk, tm)); err != nil {
			return err
		}

		assignee, err := u.user(userID)
		if err != nil {
			return refNotFound(err, user.Entity, "assignee %d not found", userID)
		}
		id := assignee.ID
		tk.AssigneeID = &id

		if err := u.tasks().Save(u.ctx(), tk); err != nil {
			return err
		}
		view, err = u.taskView(tk)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to assign task", "AssignTask", err,
			slog.Int64("id", taskID),
			slog.Int64("assignee_id", userID),
		)
		return nil, err
	}
	return view, nil
}

// CompleteTask moves the task to COMPLETED. The terminal-state check runs
// before authorization, so re-completing fails the same way for everyone.
func (s *TaskService) CompleteTask(ctx context.Context, actorID, taskID int64) (*ports.TaskView, error) {
	s.logger.InfoContext(ctx, "completing task", slog.Int64("actor_id", actorID), slog.Int64("id", taskID))

	var view *ports.TaskView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		tk, tm, err := u.loadTask(taskID)
		if err != nil {
			return err
		}
		if err := tk.Complete(); err != nil {
			return err
		}
		if err := u.guard(policy.OpCompleteTask, policy.CanComplete(u.policyActor(), tk, tm), policy.TaskTarget(tk, tm)); err != nil {
			return err
		}
		if err := u.tasks().Save(u.ctx(), tk); err != nil {
			return err
		}
		view, err = u.taskView(tk)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to complete task", "CompleteTask", err, slog.Int64("id", taskID))
		return nil, err
	}
	return view, nil
}

// DeleteTask removes the task.
func (s *TaskService) DeleteTask(ctx context.Context, actorID, taskID int64) error {
	s.logger.InfoContext(ctx, "deleting task", slog.Int64("actor_id", actorID), slog.Int64("id", taskID))

	err := s.asActor(ctx, actorID, func(u *unit) error {
		tk, tm, err := u.loadTask(taskID)
		if err != nil {
			return err
		}
		if err := u.guard(policy.OpDeleteTask, policy.CanDelete(u.policyActor(), tk, tm), policy.TaskTarget(tk, tm)); err != nil {
			return err
		}
		return u.tasks().Delete(u.ctx(), tk.ID)
	})
	if err != nil {
		s.fail(ctx, "failed to delete task", "DeleteTask", err, slog.Int64("id", taskID))
		return err
	}
	return nil
}

// ListTasks returns every task in the actor's scope.
func (s *TaskService) ListTasks(ctx context.Context, actorID int64) ([]ports.TaskView, error) {
	s.logger.InfoContext(ctx, "listing tasks", slog.Int64("actor_id", actorID))
	return s.listScoped(ctx, actorID, "ListTasks", task.Filter{})
}

// ListTasksByStatus returns the tasks in the actor's scope with the given
// status.
func (s *TaskService) ListTasksByStatus(ctx context.Context, actorID int64, status task.Status) ([]ports.TaskView, error) {
	s.logger.InfoContext(ctx, "listing tasks by status", slog.Int64("actor_id", actorID), slog.String("status", string(status)))

	if !status.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{"status": "invalid: " + string(status)}}
	}
	return s.listScoped(ctx, actorID, "ListTasksByStatus", task.Filter{Status: &status})
}

// ListTasksByCompletion returns the tasks in the actor's scope whose
// completion flag equals completed.
func (s *TaskService) ListTasksByCompletion(ctx context.Context, actorID int64, completed bool) ([]ports.TaskView, error) {
	s.logger.InfoContext(ctx, "listing tasks by completion", slog.Int64("actor_id", actorID), slog.Bool("completed", completed))
	return s.listScoped(ctx, actorID, "ListTasksByCompletion", task.Filter{Completed: &completed})
}

func (s *TaskService) listScoped(ctx context.Context, actorID int64, operation string, filter task.Filter) ([]ports.TaskView, error) {
	var views []ports.TaskView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		managed, err := u.managedTeamID()
		if err != nil {
			return err
		}

		scoped, ok := policy.TaskScope(u.policyActor(), managed).Apply(filter)
		if !ok {
			views = []ports.TaskView{}
			return nil
		}

		tasks, err := u.tasks().List(u.ctx(), scoped)
		if err != nil {
			return err
		}
		views, err = u.taskViews(tasks)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to list tasks", operation, err, slog.Int64("actor_id", actorID))
		return nil, err
	}
	return views, nil
}

// ListTasksByAssignee returns the tasks assigned to userID.
func (s *TaskService) ListTasksByAssignee(ctx context.Context, actorID, userID int64) ([]ports.TaskView, error) {
	s.logger.InfoContext(ctx, "listing tasks by assignee", slog.Int64("actor_id", actorID), slog.Int64("assignee_id", userID))

	var views []ports.TaskView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		subject, tm, err := u.loadUser(userID)
		if err != nil {
			return err
		}
		if err := u.authorize(policy.OpListTasksBySubject, policy.UserTarget(subject, tm)); err != nil {
			return err
		}

		id := subject.ID
		tasks, err := u.tasks().List(u.ctx(), task.Filter{AssigneeID: &id})
		if err != nil {
			return err
		}
		views, err = u.taskViews(tasks)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to list tasks by assignee", "ListTasksByAssignee", err, slog.Int64("assignee_id", userID))
		return nil, err
	}
	return views, nil
}

// ListTasksByCreator returns the tasks created by the user with the given
// login identifier.
func (s *TaskService) ListTasksByCreator(ctx context.Context, actorID int64, username string) ([]ports.TaskView, error) {
	s.logger.InfoContext(ctx, "listing tasks by creator", slog.Int64("actor_id", actorID), slog.String("username", username))

	var views []ports.TaskView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		subject, err := u.users().FindByUsername(u.ctx(), username)
		if err != nil {
			return err
		}
		tm, err := u.teamOf(subject.TeamID)
		if err != nil {
			return err
		}
		if err := u.authorize(policy.OpListTasksBySubject, policy.UserTarget(subject, tm)); err != nil {
			return err
		}

		id := subject.ID
		tasks, err := u.tasks().List(u.ctx(), task.Filter{CreatorID: &id})
		if err != nil {
			return err
		}
		views, err = u.taskViews(tasks)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to list tasks by creator", "ListTasksByCreator", err, slog.String("username", username))
		return nil, err
	}
	return views, nil
}
