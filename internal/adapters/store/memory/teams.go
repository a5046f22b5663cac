package memory

import (
	"context"
	"maps"
	"slices"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
)

type teamRepo struct{ s *Store }

func (r teamRepo) FindByID(_ context.Context, id int64) (*team.Team, error) {
	return r.findOne(func(t *team.Team) bool { return t.ID == id }, "team %d not found", id)
}

func (r teamRepo) FindByName(_ context.Context, name string) (*team.Team, error) {
	return r.findOne(func(t *team.Team) bool { return t.Name == name }, "team %q not found", name)
}

func (r teamRepo) FindByManager(_ context.Context, userID int64) (*team.Team, error) {
	return r.findOne(func(t *team.Team) bool { return t.ManagerID == userID }, "user %d manages no team", userID)
}

func (r teamRepo) findOne(match func(*team.Team) bool, format string, args ...any) (*team.Team, error) {
	var found *team.Team
	r.s.read(func(d *tables) {
		for _, id := range slices.Sorted(maps.Keys(d.teams)) {
			t := d.teams[id]
			if match(&t) {
				found = &t
				return
			}
		}
	})
	if found == nil {
		return nil, domain.NotFound(team.Entity, format, args...)
	}
	return found, nil
}

func (r teamRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	if _, err := r.FindByName(ctx, name); err != nil {
		return false, nil //nolint:nilerr // NotFound is the only failure mode
	}
	return true, nil
}

func (r teamRepo) List(context.Context) ([]team.Team, error) {
	out := []team.Team{}
	r.s.read(func(d *tables) {
		for _, id := range slices.Sorted(maps.Keys(d.teams)) {
			out = append(out, d.teams[id])
		}
	})
	return out, nil
}

func (r teamRepo) Save(_ context.Context, t *team.Team) error {
	return r.s.write(func(d *tables) error {
		if t.ID != 0 {
			if _, ok := d.teams[t.ID]; !ok {
				return domain.NotFound(team.Entity, "team %d not found", t.ID)
			}
		}
		for id, other := range d.teams {
			if id == t.ID {
				continue
			}
			if other.Name == t.Name {
				return domain.AlreadyExists(team.Entity, "team %q already exists", t.Name)
			}
			if other.ManagerID == t.ManagerID {
				return domain.FieldAlreadyExists(team.Entity, "Manager", "user %d already manages team %q", t.ManagerID, other.Name)
			}
		}
		if t.ID == 0 {
			d.seq.teams++
			t.ID = d.seq.teams
		}
		t.Touch(r.s.now())
		d.teams[t.ID] = *t
		return nil
	})
}

func (r teamRepo) Delete(_ context.Context, id int64) error {
	return r.s.write(func(d *tables) error {
		if _, ok := d.teams[id]; !ok {
			return domain.NotFound(team.Entity, "team %d not found", id)
		}
		delete(d.teams, id)
		return nil
	})
}
