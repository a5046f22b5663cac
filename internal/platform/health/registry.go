// Package health runs the readiness checks behind /health/ready.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check when no WithCheckTimeout is given.
const DefaultCheckTimeout = 2 * time.Second

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each check; d <= 0 leaves only the caller's deadline.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// Registry holds one checker per name. Registering a second checker under a
// name already taken replaces the first.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout, checkers: map[string]ports.HealthChecker{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under checker.Name().
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// CheckAll runs every check concurrently, each under its own timeout. A
// panicking checker is reported as failed rather than taking the probe down.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	var (
		g       errgroup.Group
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
	)
	for name, c := range checkers {
		g.Go(func() error {
			err := r.run(ctx, c)
			mu.Lock()
			results[name] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Registry) run(ctx context.Context, c ports.HealthChecker) (err error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("health check %s panicked: %v", c.Name(), p)
		}
	}()
	return c.HealthCheck(ctx)
}
