package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// SQLSTATE codes the store classifies.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type uniqueKey struct {
	entity, field, message string
}

// uniqueKeys maps schema constraint names to the domain conflict they
// represent. The messages match the in-memory store.
var uniqueKeys = map[string]uniqueKey{
	"users_username_key":   {user.Entity, "Username", "username is already taken"},
	"users_uuid_key":       {user.Entity, "UUID", "uuid is already in use"},
	"users_tax_id_key":     {user.Entity, "TaxID", "tax id is already in use"},
	"users_phone_key":      {user.Entity, "Phone", "phone number is already in use"},
	"teams_name_key":       {team.Entity, "", "team name is already taken"},
	"teams_manager_id_key": {team.Entity, "Manager", "user already manages a team"},
}

// classify turns a pgx failure into a domain error where one applies and
// wraps it with op otherwise. Unique violations become AlreadyExists, foreign
// key violations InvalidArgument.
func classify(err error, entity, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if k, ok := uniqueKeys[pgErr.ConstraintName]; ok {
				return domain.FieldAlreadyExists(k.entity, k.field, "%s", k.message)
			}
			return domain.AlreadyExists(entity, "%s violates %s", op, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return domain.InvalidArgument(entity, "%s violates reference %s", op, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// notFoundOr reports pgx.ErrNoRows as NotFound and classifies everything
// else.
func notFoundOr(err error, entity, op, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound(entity, format, args...)
	}
	return classify(err, entity, op)
}
