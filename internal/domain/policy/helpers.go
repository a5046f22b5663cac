package policy

import (
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// TaskTarget collects the facts about t. tm is the task's team and may be
// nil when the task has no team.
func TaskTarget(t *task.Task, tm *team.Team) Target {
	target := Target{
		TeamID:     t.TeamID,
		CreatorID:  &t.CreatorID,
		AssigneeID: t.AssigneeID,
	}
	if tm != nil {
		target.TeamManagerID = &tm.ManagerID
	}
	return target
}

// TeamTarget collects the facts about tm.
func TeamTarget(tm *team.Team) Target {
	return Target{TeamID: &tm.ID, TeamManagerID: &tm.ManagerID}
}

// UserTarget collects the facts about u. tm is u's team and may be nil.
func UserTarget(u *user.User, tm *team.Team) Target {
	target := Target{TeamID: u.TeamID, SubjectID: &u.ID}
	if tm != nil {
		target.TeamManagerID = &tm.ManagerID
	}
	return target
}

// CanView reports whether a may read task t.
func CanView(a Actor, t *task.Task, tm *team.Team) bool {
	return Allowed(OpViewTask, a, TaskTarget(t, tm))
}

// CanCreate reports whether a may create tasks.
func CanCreate(a Actor) bool {
	return Allowed(OpCreateTask, a, Target{})
}

// CanMutate reports whether a may update task t.
func CanMutate(a Actor, t *task.Task, tm *team.Team) bool {
	return Allowed(OpUpdateTask, a, TaskTarget(t, tm))
}

// CanAssign reports whether a may change the assignee or team of task t.
func CanAssign(a Actor, t *task.Task, tm *team.Team) bool {
	return Allowed(OpAssignTask, a, TaskTarget(t, tm))
}

// CanComplete reports whether a may complete task t.
func CanComplete(a Actor, t *task.Task, tm *team.Team) bool {
	return Allowed(OpCompleteTask, a, TaskTarget(t, tm))
}

// CanDelete reports whether a may delete task t.
func CanDelete(a Actor, t *task.Task, tm *team.Team) bool {
	return Allowed(OpDeleteTask, a, TaskTarget(t, tm))
}
