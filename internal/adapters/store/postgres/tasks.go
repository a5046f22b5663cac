package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
)

const (
	selectTasksQuery = `
SELECT id, title, description, priority, status, due_date, completed,
	creator_id, assignee_id, team_id, created_at, updated_at
FROM tasks`

	insertTaskQuery = `
INSERT INTO tasks (title, description, priority, status, due_date, completed,
	creator_id, assignee_id, team_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

	updateTaskQuery = `
UPDATE tasks SET title = $2, description = $3, priority = $4, status = $5, due_date = $6,
	completed = $7, creator_id = $8, assignee_id = $9, team_id = $10, updated_at = $11
WHERE id = $1`

	deleteTaskQuery = `DELETE FROM tasks WHERE id = $1`
)

type taskRepo struct{ s *Store }

func scanTask(row pgx.Row) (task.Task, error) {
	var (
		t                task.Task
		priority, status string
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &priority, &status, &t.DueDate, &t.Completed,
		&t.CreatorID, &t.AssigneeID, &t.TeamID, &t.CreatedAt, &t.UpdatedAt,
	)
	t.Priority = task.Priority(priority)
	t.Status = task.Status(status)
	return t, err
}

// taskWhere renders the filter as a WHERE clause with positional arguments.
func taskWhere(f task.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(column string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if f.AssigneeID != nil {
		add("assignee_id", *f.AssigneeID)
	}
	if f.CreatorID != nil {
		add("creator_id", *f.CreatorID)
	}
	if f.TeamID != nil {
		add("team_id", *f.TeamID)
	}
	if f.Status != nil {
		add("status", string(*f.Status))
	}
	if f.Completed != nil {
		add("completed", *f.Completed)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r taskRepo) FindByID(ctx context.Context, id int64) (*task.Task, error) {
	t, err := scanTask(r.s.db(ctx).QueryRow(ctx, selectTasksQuery+" WHERE id = $1", id))
	if err != nil {
		return nil, notFoundOr(err, task.Entity, "find task", "task %d not found", id)
	}
	return &t, nil
}

func (r taskRepo) List(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	where, args := taskWhere(filter)

	rows, err := r.s.db(ctx).Query(ctx, selectTasksQuery+where+" ORDER BY id", args...)
	if err != nil {
		return nil, classify(err, task.Entity, "list tasks")
	}
	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (task.Task, error) {
		return scanTask(row)
	})
	if err != nil {
		return nil, classify(err, task.Entity, "scan tasks")
	}
	return tasks, nil
}

func (r taskRepo) Save(ctx context.Context, t *task.Task) error {
	stamped := *t
	stamped.Touch(r.s.now())

	if t.ID == 0 {
		err := r.s.db(ctx).QueryRow(ctx, insertTaskQuery,
			stamped.Title, stamped.Description, string(stamped.Priority), string(stamped.Status),
			stamped.DueDate, stamped.Completed, stamped.CreatorID, stamped.AssigneeID, stamped.TeamID,
			stamped.CreatedAt, stamped.UpdatedAt,
		).Scan(&stamped.ID)
		if err != nil {
			return classify(err, task.Entity, "insert task")
		}
		*t = stamped
		return nil
	}

	tag, err := r.s.db(ctx).Exec(ctx, updateTaskQuery,
		stamped.ID, stamped.Title, stamped.Description, string(stamped.Priority), string(stamped.Status),
		stamped.DueDate, stamped.Completed, stamped.CreatorID, stamped.AssigneeID, stamped.TeamID,
		stamped.UpdatedAt,
	)
	if err != nil {
		return classify(err, task.Entity, "update task")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(task.Entity, "task %d not found", t.ID)
	}
	*t = stamped
	return nil
}

func (r taskRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.s.db(ctx).Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		return classify(err, task.Entity, "delete task")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(task.Entity, "task %d not found", id)
	}
	return nil
}
