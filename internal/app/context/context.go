// Package appctx memoizes entity lookups for the length of one service call.
//
// A service opens a Scope inside its transaction and resolves users and
// teams through it, so a view that names the same manager three times reads
// that manager once:
//
//	s := appctx.New(txCtx)
//	mgr, err := appctx.Load(s, appctx.UserKey(id), users.FindByID, id)
//	...
//	appctx.Store(s, appctx.UserKey(mgr.ID), mgr) // after a write
//
// Keys carry the type of the value they name, so a lookup can never read
// back a value of the wrong type.
package appctx

import (
	"context"
	"strconv"

	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// Key names a cached value of type T.
type Key[T any] string

// UserKey names the user with id.
func UserKey(id int64) Key[*user.User] { return Key[*user.User]("user/" + strconv.FormatInt(id, 10)) }

// TeamKey names the team with id.
func TeamKey(id int64) Key[*team.Team] { return Key[*team.Team]("team/" + strconv.FormatInt(id, 10)) }

// ManagedTeamKey names the team managed by the user with userID.
func ManagedTeamKey(userID int64) Key[*team.Team] {
	return Key[*team.Team]("managed-by/" + strconv.FormatInt(userID, 10))
}

// Scope is a context carrying the lookup cache of one unit of work. It must
// not outlive its transaction and is not safe for concurrent use.
type Scope struct {
	context.Context
	results map[string]result
	fetches int
}

type result struct {
	value any
	err   error
}

// New opens an empty Scope over ctx.
func New(ctx context.Context) *Scope {
	return &Scope{Context: ctx, results: map[string]result{}}
}

// Load returns the value cached under key, calling fetch on a miss. A failed
// fetch is cached too: asking again for a missing user inside the same unit
// returns the same NotFound without another query.
func Load[T any](s *Scope, key Key[T], fetch func(ctx context.Context, id int64) (T, error), id int64) (T, error) {
	if r, ok := s.results[string(key)]; ok {
		v, _ := r.value.(T)
		return v, r.err
	}
	s.fetches++
	v, err := fetch(s.Context, id)
	s.results[string(key)] = result{value: v, err: err}
	return v, err
}

// Store caches v under key, replacing any earlier value or error.
func Store[T any](s *Scope, key Key[T], v T) {
	s.results[string(key)] = result{value: v}
}

// Drop forgets key; the next Load fetches again.
func Drop[T any](s *Scope, key Key[T]) {
	delete(s.results, string(key))
}

// Fetches reports how many lookups reached the repository.
func (s *Scope) Fetches() int { return s.fetches }
