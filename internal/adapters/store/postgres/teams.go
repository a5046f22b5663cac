package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
)

const (
	selectTeamsQuery = `SELECT id, name, manager_id, created_at, updated_at FROM teams`

	insertTeamQuery = `
INSERT INTO teams (name, manager_id, created_at, updated_at)
VALUES ($1, $2, $3, $4)
RETURNING id`

	updateTeamQuery = `UPDATE teams SET name = $2, manager_id = $3, updated_at = $4 WHERE id = $1`

	existsTeamNameQuery = `SELECT EXISTS (SELECT 1 FROM teams WHERE name = $1)`
	deleteTeamQuery     = `DELETE FROM teams WHERE id = $1`
)

type teamRepo struct{ s *Store }

func scanTeam(row pgx.Row) (team.Team, error) {
	var t team.Team
	err := row.Scan(&t.ID, &t.Name, &t.ManagerID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r teamRepo) findOne(ctx context.Context, where string, arg any, format string, args ...any) (*team.Team, error) {
	t, err := scanTeam(r.s.db(ctx).QueryRow(ctx, selectTeamsQuery+" WHERE "+where, arg))
	if err != nil {
		return nil, notFoundOr(err, team.Entity, "find team", format, args...)
	}
	return &t, nil
}

func (r teamRepo) FindByID(ctx context.Context, id int64) (*team.Team, error) {
	return r.findOne(ctx, "id = $1", id, "team %d not found", id)
}

func (r teamRepo) FindByName(ctx context.Context, name string) (*team.Team, error) {
	return r.findOne(ctx, "name = $1", name, "team %q not found", name)
}

func (r teamRepo) FindByManager(ctx context.Context, userID int64) (*team.Team, error) {
	return r.findOne(ctx, "manager_id = $1", userID, "user %d manages no team", userID)
}

func (r teamRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	if err := r.s.db(ctx).QueryRow(ctx, existsTeamNameQuery, name).Scan(&exists); err != nil {
		return false, classify(err, team.Entity, "team exists")
	}
	return exists, nil
}

func (r teamRepo) List(ctx context.Context) ([]team.Team, error) {
	rows, err := r.s.db(ctx).Query(ctx, selectTeamsQuery+" ORDER BY id")
	if err != nil {
		return nil, classify(err, team.Entity, "list teams")
	}
	teams, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (team.Team, error) {
		return scanTeam(row)
	})
	if err != nil {
		return nil, classify(err, team.Entity, "scan teams")
	}
	return teams, nil
}

func (r teamRepo) Save(ctx context.Context, t *team.Team) error {
	stamped := *t
	stamped.Touch(r.s.now())

	if t.ID == 0 {
		err := r.s.db(ctx).QueryRow(ctx, insertTeamQuery,
			stamped.Name, stamped.ManagerID, stamped.CreatedAt, stamped.UpdatedAt,
		).Scan(&stamped.ID)
		if err != nil {
			return classify(err, team.Entity, "insert team")
		}
		*t = stamped
		return nil
	}

	tag, err := r.s.db(ctx).Exec(ctx, updateTeamQuery, stamped.ID, stamped.Name, stamped.ManagerID, stamped.UpdatedAt)
	if err != nil {
		return classify(err, team.Entity, "update team")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(team.Entity, "team %d not found", t.ID)
	}
	*t = stamped
	return nil
}

func (r teamRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.s.db(ctx).Exec(ctx, deleteTeamQuery, id)
	if err != nil {
		return classify(err, team.Entity, "delete team")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(team.Entity, "team %d not found", id)
	}
	return nil
}
