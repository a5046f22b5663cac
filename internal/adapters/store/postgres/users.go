package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

const (
	userColumns = `id, uuid::text, firstname, lastname, username, password_hash,
	tax_id, phone, role, active, team_id, created_at, updated_at`

	selectUsersQuery = `SELECT ` + userColumns + ` FROM users`

	insertUserQuery = `
INSERT INTO users (uuid, firstname, lastname, username, password_hash, tax_id, phone, role, active, team_id, created_at, updated_at)
VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

	updateUserQuery = `
UPDATE users SET uuid = $2::uuid, firstname = $3, lastname = $4, username = $5, password_hash = $6,
	tax_id = $7, phone = $8, role = $9, active = $10, team_id = $11, updated_at = $12
WHERE id = $1`

	existsUsernameQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	deleteUserQuery     = `DELETE FROM users WHERE id = $1`
)

type userRepo struct{ s *Store }

func scanUser(row pgx.Row) (user.User, error) {
	var (
		u    user.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.UUID, &u.Firstname, &u.Lastname, &u.Username, &u.PasswordHash,
		&u.TaxID, &u.Phone, &role, &u.Active, &u.TeamID, &u.CreatedAt, &u.UpdatedAt,
	)
	u.Role = user.Role(role)
	return u, err
}

func (r userRepo) findOne(ctx context.Context, where string, arg any, format string, args ...any) (*user.User, error) {
	u, err := scanUser(r.s.db(ctx).QueryRow(ctx, selectUsersQuery+" WHERE "+where, arg))
	if err != nil {
		return nil, notFoundOr(err, user.Entity, "find user", format, args...)
	}
	return &u, nil
}

func (r userRepo) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return r.findOne(ctx, "id = $1", id, "user %d not found", id)
}

func (r userRepo) FindByUUID(ctx context.Context, uuid string) (*user.User, error) {
	// A malformed uuid cannot match; comparing as text avoids a cast error.
	return r.findOne(ctx, "uuid::text = $1", uuid, "user with uuid %q not found", uuid)
}

func (r userRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, "username = $1", username, "user %q not found", username)
}

func (r userRepo) FindByTaxID(ctx context.Context, taxID string) (*user.User, error) {
	return r.findOne(ctx, "tax_id = $1", taxID, "no user with the given tax id")
}

func (r userRepo) FindByPhone(ctx context.Context, phone string) (*user.User, error) {
	return r.findOne(ctx, "phone = $1", phone, "no user with the given phone number")
}

func (r userRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := r.s.db(ctx).QueryRow(ctx, existsUsernameQuery, username).Scan(&exists); err != nil {
		return false, classify(err, user.Entity, "user exists")
	}
	return exists, nil
}

func (r userRepo) List(ctx context.Context, filter user.Filter) ([]user.User, error) {
	query := selectUsersQuery
	var args []any
	if filter.TeamID != nil {
		query += " WHERE team_id = $1"
		args = append(args, *filter.TeamID)
	}
	query += " ORDER BY id"

	rows, err := r.s.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err, user.Entity, "list users")
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (user.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, classify(err, user.Entity, "scan users")
	}
	return users, nil
}

func (r userRepo) Save(ctx context.Context, u *user.User) error {
	stamped := *u
	stamped.Touch(r.s.now())

	if u.ID == 0 {
		err := r.s.db(ctx).QueryRow(ctx, insertUserQuery,
			stamped.UUID, stamped.Firstname, stamped.Lastname, stamped.Username, stamped.PasswordHash,
			stamped.TaxID, stamped.Phone, string(stamped.Role), stamped.Active, stamped.TeamID,
			stamped.CreatedAt, stamped.UpdatedAt,
		).Scan(&stamped.ID)
		if err != nil {
			return classify(err, user.Entity, "insert user")
		}
		*u = stamped
		return nil
	}

	tag, err := r.s.db(ctx).Exec(ctx, updateUserQuery,
		stamped.ID, stamped.UUID, stamped.Firstname, stamped.Lastname, stamped.Username, stamped.PasswordHash,
		stamped.TaxID, stamped.Phone, string(stamped.Role), stamped.Active, stamped.TeamID, stamped.UpdatedAt,
	)
	if err != nil {
		return classify(err, user.Entity, "update user")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(user.Entity, "user %d not found", u.ID)
	}
	*u = stamped
	return nil
}

func (r userRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.s.db(ctx).Exec(ctx, deleteUserQuery, id)
	if err != nil {
		return classify(err, user.Entity, "delete user")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(user.Entity, "user %d not found", id)
	}
	return nil
}
