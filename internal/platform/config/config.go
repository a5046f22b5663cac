// Package config describes the service settings and loads them from the
// configs/ YAML profiles, an optional .env file and APP_* variables.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	Database  DatabaseConfig  `koanf:"database"`
	Auth      AuthConfig      `koanf:"auth"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig configures the HTTP listener. WriteTimeout also bounds
// request handling through the timeout middleware.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend string `koanf:"backend"`
}

// DatabaseConfig holds PostgreSQL connection, pool and migration settings.
// Only consulted when the store backend is postgres.
type DatabaseConfig struct {
	Host            string               `koanf:"host"`
	Port            int                  `koanf:"port"`
	User            string               `koanf:"user"`
	Password        string               `koanf:"password"`
	Name            string               `koanf:"name"`
	SSLMode         string               `koanf:"ssl_mode"`
	MaxConns        int32                `koanf:"max_conns"`
	MinConns        int32                `koanf:"min_conns"`
	ConnMaxLifetime time.Duration        `koanf:"conn_max_lifetime"`
	ConnectTimeout  time.Duration        `koanf:"connect_timeout"`
	MigrateOnStart  bool                 `koanf:"migrate_on_start"`
	CircuitBreaker  CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// DSN renders the connection settings as a postgres:// URL understood by
// both pgx and lib/pq.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	if d.ConnectTimeout > 0 {
		q.Set("connect_timeout", fmt.Sprintf("%d", int(d.ConnectTimeout.Seconds())))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// CircuitBreakerConfig tunes the breaker around postgres transactions: it
// opens after MaxFailures consecutive infrastructure failures, stays open for
// Timeout, then lets HalfOpenLimit trial transactions through.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// AuthConfig holds credential hashing and token settings.
type AuthConfig struct {
	JWTSecret  string          `koanf:"jwt_secret"`
	Issuer     string          `koanf:"issuer"`
	TokenTTL   time.Duration   `koanf:"token_ttl"`
	BcryptCost int             `koanf:"bcrypt_cost"`
	RateLimit  RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig holds token-bucket settings for the public auth endpoints.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig switches OpenTelemetry on and picks the exporter.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
