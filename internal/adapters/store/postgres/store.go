// Package postgres implements ports.Store on PostgreSQL using a pgx
// connection pool.
//
// One service call maps to one database transaction. WithinTx begins it and
// stores the pgx.Tx in the context; every repository call made with that
// context runs on the transaction. Calls made outside WithinTx run directly
// on the pool.
//
// The transactor sits behind a circuit breaker. Only infrastructure failures
// count against it: a transaction that rolls back because of a domain error
// (NotFound, NotAuthorized, ...) is a healthy database round trip.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Store         = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// backend labels this store in metrics, logs and readiness reports.
const backend = "postgres"

// ErrUnavailable is returned while the circuit breaker rejects transactions.
var ErrUnavailable = errors.New("postgres unavailable")

type txKey struct{}

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is a PostgreSQL ports.Store.
type Store struct {
	pool    *pgxpool.Pool
	breaker *gobreaker.CircuitBreaker[struct{}]
	now     func() time.Time
	metrics *telemetry.Metrics
	logger  *slog.Logger
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

// WithLogger sets the logger used for breaker state changes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open connects a pool using cfg, verifies it with a ping and, when
// cfg.MigrateOnStart is set, applies pending migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig, opts ...Option) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pool: %w", err)
	}

	if cfg.MigrateOnStart {
		if err := Migrate(ctx, cfg.DSN()); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return New(pool, cfg.CircuitBreaker, opts...), nil
}

// New wraps an open pool.
func New(pool *pgxpool.Pool, cb config.CircuitBreakerConfig, opts ...Option) *Store {
	s := &Store{
		pool:   pool,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        backend,
		MaxRequests: toUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		IsSuccessful: healthyOutcome,
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return s
}

// healthyOutcome reports whether err leaves the database's health intact.
func healthyOutcome(err error) bool {
	return err == nil ||
		domain.IsDomain(err) ||
		errors.Is(err, context.Canceled)
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}

// WithinTx runs fn in one database transaction. Nested calls join the
// running transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	start := time.Now()
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.runTx(ctx, fn)
	})

	result := telemetry.ResultSuccess
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = telemetry.ResultCircuitOpen
		err = fmt.Errorf("%w: %w", ErrUnavailable, err)
	case err != nil:
		result = telemetry.ResultError
	}
	s.metrics.RecordTx(ctx, backend, result, time.Since(start))
	return err
}

func (s *Store) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// db returns the transaction carried by ctx, or the pool.
func (s *Store) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return s.pool
}

// Users returns the user repository.
func (s *Store) Users() ports.UserRepository { return userRepo{s} }

// Teams returns the team repository.
func (s *Store) Teams() ports.TeamRepository { return teamRepo{s} }

// Tasks returns the task repository.
func (s *Store) Tasks() ports.TaskRepository { return taskRepo{s} }

// Name identifies the store in readiness reports.
func (s *Store) Name() string { return backend }

// HealthCheck fails while the breaker is open and otherwise pings the pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch s.breaker.State() {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", backend)
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", backend)
	}
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%s: ping: %w", backend, err)
	}
	return nil
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > int(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
