// Package memory provides an in-process implementation of ports.Store. It is
// the default backend for local development and the backing store for the
// application tests.
//
// Transactions are serialized: WithinTx holds a store-wide lock for the
// duration of fn and restores a snapshot of every table when fn fails.
// Unique keys mirror the PostgreSQL schema so both backends report the same
// conflicts.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Store         = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// backend labels this store in metrics.
const backend = "memory"

// txKey marks a context as already inside WithinTx so nested calls join the
// running transaction instead of deadlocking on txMu.
type txKey struct{}

// tables is the full mutable state. Rows are stored by value; every read
// returns a copy.
type tables struct {
	users map[int64]user.User
	teams map[int64]team.Team
	tasks map[int64]task.Task
	seq   sequences
}

// sequences are the per-table id counters.
type sequences struct {
	users, teams, tasks int64
}

func (t *tables) clone() tables {
	return tables{
		users: maps.Clone(t.users),
		teams: maps.Clone(t.teams),
		tasks: maps.Clone(t.tasks),
		seq:   t.seq,
	}
}

// Store is an in-memory ports.Store.
type Store struct {
	txMu sync.Mutex   // serializes transactions
	mu   sync.RWMutex // guards data
	data tables

	now     func() time.Time
	metrics *telemetry.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used to stamp timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithMetrics records transaction metrics. A nil value disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		data: tables{
			users: make(map[int64]user.User),
			teams: make(map[int64]team.Team),
			tasks: make(map[int64]task.Task),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithinTx runs fn with exclusive access to the store. When fn returns an
// error or panics every write it made is discarded.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	start := time.Now()
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	rollback := func() {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
	}
	defer func() {
		if p := recover(); p != nil {
			rollback()
			s.metrics.RecordTx(ctx, backend, telemetry.ResultError, time.Since(start))
			panic(p)
		}
	}()

	err := fn(context.WithValue(ctx, txKey{}, struct{}{}))
	if err != nil {
		rollback()
		s.metrics.RecordTx(ctx, backend, telemetry.ResultError, time.Since(start))
		return err
	}

	s.metrics.RecordTx(ctx, backend, telemetry.ResultSuccess, time.Since(start))
	return nil
}

// Users returns the user repository.
func (s *Store) Users() ports.UserRepository { return userRepo{s} }

// Teams returns the team repository.
func (s *Store) Teams() ports.TeamRepository { return teamRepo{s} }

// Tasks returns the task repository.
func (s *Store) Tasks() ports.TaskRepository { return taskRepo{s} }

// Name identifies the store in readiness reports.
func (s *Store) Name() string { return backend }

// HealthCheck always succeeds; the store has no external dependency.
func (s *Store) HealthCheck(context.Context) error { return nil }

// read runs fn under the read lock.
func (s *Store) read(fn func(d *tables)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// write runs fn under the write lock.
func (s *Store) write(fn func(d *tables) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// cloneID copies an optional id so stored rows never alias caller memory.
func cloneID(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
