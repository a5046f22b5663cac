package ports

import "context"

// HealthChecker is a dependency the readiness probe consults. The task store
// is the only one today: "memory" always answers, "postgres" pings its pool
// through the circuit breaker.
type HealthChecker interface {
	Name() string
	// HealthCheck returns nil when the dependency can serve requests. It must
	// give up once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry fans a readiness probe out to every registered checker.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs each checker and keys the outcome by Name; a nil value
	// means the dependency is ready.
	CheckAll(ctx context.Context) map[string]error
}
