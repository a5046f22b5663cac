package config

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

// minJWTSecretLen is the shortest HMAC secret accepted for signing tokens.
const minJWTSecretLen = 32

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	backends   = []string{BackendMemory, BackendPostgres}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every violation so one failed start reports them all.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.require(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

func validPort(port int) bool { return port >= 1 && port <= 65535 }

// Validate reports every invalid setting at once. Database settings only
// matter, and are only checked, for the postgres backend.
func (c *Config) Validate() error {
	var p problems

	p.require(validPort(c.Server.Port), "server.port must be in 1..65535, got %d", c.Server.Port)
	p.require(c.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(c.Server.WriteTimeout > 0, "server.write_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)
	p.oneOf("store.backend", c.Store.Backend, backends)

	if c.Store.Backend == BackendPostgres {
		c.Database.check(&p)
	}
	c.Auth.check(&p)

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, exporters)
		p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint is required for the otlp exporter")
	}
	return errors.Join(p...)
}

func (d *DatabaseConfig) check(p *problems) {
	p.require(d.Host != "", "database.host must not be empty")
	p.require(validPort(d.Port), "database.port must be in 1..65535, got %d", d.Port)
	p.require(d.Name != "", "database.name must not be empty")
	p.require(d.MaxConns >= 1, "database.max_conns must be at least 1, got %d", d.MaxConns)
	p.require(d.MinConns >= 0 && d.MinConns <= d.MaxConns,
		"database.min_conns must be in 0..max_conns, got %d", d.MinConns)
	p.require(d.CircuitBreaker.MaxFailures >= 1,
		"database.circuit_breaker.max_failures must be at least 1, got %d", d.CircuitBreaker.MaxFailures)
}

func (a *AuthConfig) check(p *problems) {
	p.require(len(a.JWTSecret) >= minJWTSecretLen, "auth.jwt_secret must be at least %d bytes", minJWTSecretLen)
	p.require(a.TokenTTL > 0, "auth.token_ttl must be positive")
	p.require(a.BcryptCost >= bcrypt.MinCost && a.BcryptCost <= bcrypt.MaxCost,
		"auth.bcrypt_cost must be in %d..%d, got %d", bcrypt.MinCost, bcrypt.MaxCost, a.BcryptCost)

	rl := a.RateLimit
	p.require(rl.RequestsPerSecond >= 0, "auth.rate_limit.requests_per_second must not be negative")
	p.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"auth.rate_limit.burst_size must be at least 1 when limiting, got %d", rl.BurstSize)
}
