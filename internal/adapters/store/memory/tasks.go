package memory

import (
	"context"
	"maps"
	"slices"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
)

type taskRepo struct{ s *Store }

func storedTask(t *task.Task) task.Task {
	c := *t
	c.AssigneeID = cloneID(t.AssigneeID)
	c.TeamID = cloneID(t.TeamID)
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return c
}

func (r taskRepo) FindByID(_ context.Context, id int64) (*task.Task, error) {
	var found *task.Task
	r.s.read(func(d *tables) {
		if t, ok := d.tasks[id]; ok {
			c := storedTask(&t)
			found = &c
		}
	})
	if found == nil {
		return nil, domain.NotFound(task.Entity, "task %d not found", id)
	}
	return found, nil
}

func (r taskRepo) List(_ context.Context, filter task.Filter) ([]task.Task, error) {
	out := []task.Task{}
	r.s.read(func(d *tables) {
		for _, id := range slices.Sorted(maps.Keys(d.tasks)) {
			t := d.tasks[id]
			if filter.Matches(&t) {
				out = append(out, storedTask(&t))
			}
		}
	})
	return out, nil
}

func (r taskRepo) Save(_ context.Context, t *task.Task) error {
	return r.s.write(func(d *tables) error {
		if t.ID == 0 {
			d.seq.tasks++
			t.ID = d.seq.tasks
		} else if _, ok := d.tasks[t.ID]; !ok {
			return domain.NotFound(task.Entity, "task %d not found", t.ID)
		}
		t.Touch(r.s.now())
		d.tasks[t.ID] = storedTask(t)
		return nil
	})
}

func (r taskRepo) Delete(_ context.Context, id int64) error {
	return r.s.write(func(d *tables) error {
		if _, ok := d.tasks[id]; !ok {
			return domain.NotFound(task.Entity, "task %d not found", id)
		}
		delete(d.tasks, id)
		return nil
	})
}
