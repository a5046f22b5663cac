package memory

import (
	"context"
	"maps"
	"slices"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

type userRepo struct{ s *Store }

func storedUser(u *user.User) user.User {
	c := *u
	c.TeamID = cloneID(u.TeamID)
	return c
}

func (r userRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	return r.findOne(func(u *user.User) bool { return u.ID == id }, "user %d not found", id)
}

func (r userRepo) FindByUUID(_ context.Context, uuid string) (*user.User, error) {
	return r.findOne(func(u *user.User) bool { return u.UUID == uuid }, "user with uuid %q not found", uuid)
}

func (r userRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	return r.findOne(func(u *user.User) bool { return u.Username == username }, "user %q not found", username)
}

func (r userRepo) FindByTaxID(_ context.Context, taxID string) (*user.User, error) {
	return r.findOne(func(u *user.User) bool { return u.TaxID == taxID }, "no user with the given tax id")
}

func (r userRepo) FindByPhone(_ context.Context, phone string) (*user.User, error) {
	return r.findOne(func(u *user.User) bool { return u.Phone == phone }, "no user with the given phone number")
}

func (r userRepo) findOne(match func(*user.User) bool, format string, args ...any) (*user.User, error) {
	var found *user.User
	r.s.read(func(d *tables) {
		for _, id := range slices.Sorted(maps.Keys(d.users)) {
			u := d.users[id]
			if match(&u) {
				c := storedUser(&u)
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, domain.NotFound(user.Entity, format, args...)
	}
	return found, nil
}

func (r userRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	if err != nil {
		return false, nil //nolint:nilerr // NotFound is the only failure mode
	}
	return true, nil
}

func (r userRepo) List(_ context.Context, filter user.Filter) ([]user.User, error) {
	out := []user.User{}
	r.s.read(func(d *tables) {
		for _, id := range slices.Sorted(maps.Keys(d.users)) {
			u := d.users[id]
			if filter.Matches(&u) {
				out = append(out, storedUser(&u))
			}
		}
	})
	return out, nil
}

func (r userRepo) Save(_ context.Context, u *user.User) error {
	return r.s.write(func(d *tables) error {
		if u.ID != 0 {
			if _, ok := d.users[u.ID]; !ok {
				return domain.NotFound(user.Entity, "user %d not found", u.ID)
			}
		}
		if err := checkUserUnique(d, u); err != nil {
			return err
		}
		if u.ID == 0 {
			d.seq.users++
			u.ID = d.seq.users
		}
		u.Touch(r.s.now())
		d.users[u.ID] = storedUser(u)
		return nil
	})
}

// checkUserUnique enforces the unique keys of the users table.
func checkUserUnique(d *tables, u *user.User) error {
	for id, other := range d.users {
		if id == u.ID {
			continue
		}
		switch {
		case other.Username == u.Username:
			return domain.FieldAlreadyExists(user.Entity, "Username", "username %q is already taken", u.Username)
		case other.UUID == u.UUID:
			return domain.FieldAlreadyExists(user.Entity, "UUID", "uuid %q is already in use", u.UUID)
		case other.TaxID == u.TaxID:
			return domain.FieldAlreadyExists(user.Entity, "TaxID", "tax id is already in use")
		case other.Phone == u.Phone:
			return domain.FieldAlreadyExists(user.Entity, "Phone", "phone number is already in use")
		}
	}
	return nil
}

func (r userRepo) Delete(_ context.Context, id int64) error {
	return r.s.write(func(d *tables) error {
		if _, ok := d.users[id]; !ok {
			return domain.NotFound(user.Entity, "user %d not found", id)
		}
		delete(d.users, id)
		return nil
	})
}
