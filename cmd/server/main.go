// Package main is the entry point for the taskflow service. It wires the
// store, the application services and the HTTP adapter using samber/do v2,
// starts the server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/taskflow-service/internal/adapters/http"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/store/postgres"
	"github.com/jsamuelsen11/taskflow-service/internal/app"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/auth"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/health"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "taskflow:", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must name a config profile such as local, dev or prod")
	}
	cfg, err := config.Load(profile, config.WithDotEnv(".env"))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := startTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	var metrics *telemetry.Metrics
	if otel != nil {
		metrics = otel.Metrics
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)
	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the server builds the whole graph, store included, so a bad
	// database configuration fails here rather than on the first request.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring: %w", err)
	}
	store := do.MustInvoke[ports.Store](injector)
	logger.Info("starting",
		slog.String("profile", profile),
		slog.String("store", cfg.Store.Backend),
		slog.Bool("telemetry", otel != nil),
	)

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-served:
		closeStore(store)
		_ = otel.Shutdown(context.Background())
		return fmt.Errorf("serving: %w", err)
	}

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), drainTimeout)
	defer cancelDrain()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining requests", slog.Any("error", err))
	}
	<-served

	// No request can reach the store any more.
	closeStore(store)

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), flushTimeout)
	defer cancelFlush()
	if err := otel.Shutdown(flushCtx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
	logger.Info("stopped")
	return nil
}

func closeStore(store ports.Store) {
	if c, ok := store.(interface{ Close() }); ok {
		c.Close()
	}
}

// startTelemetry returns nil providers, and therefore nil metrics, when
// telemetry is disabled.
func startTelemetry(ctx context.Context, cfg config.TelemetryConfig) (*telemetry.Providers, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	return telemetry.Setup(ctx, telemetry.Settings{
		ServiceName: cfg.ServiceName,
		Exporter:    cfg.Exporter,
		Endpoint:    cfg.Endpoint,
	})
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		switch cfg.Store.Backend {
		case config.BackendPostgres:
			return postgres.Open(ctx, cfg.Database,
				postgres.WithMetrics(metrics),
				postgres.WithLogger(logger),
			)
		default:
			return memory.New(memory.WithMetrics(metrics)), nil
		}
	})

	do.Provide(injector, func(_ do.Injector) (*auth.Hasher, error) {
		return auth.NewHasher(cfg.Auth.BcryptCost), nil
	})

	do.Provide(injector, func(_ do.Injector) (*auth.Tokens, error) {
		return auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		store := do.MustInvoke[ports.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTaskService(store, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TeamService, error) {
		store := do.MustInvoke[ports.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTeamService(store, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		store := do.MustInvoke[ports.Store](i)
		hasher := do.MustInvoke[*auth.Hasher](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewUserService(store, hasher, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		store := do.MustInvoke[ports.Store](i)
		hasher := do.MustInvoke[*auth.Hasher](i)
		tokens := do.MustInvoke[*auth.Tokens](i)
		return app.NewAuthService(store, hasher, tokens, logger), nil
	})

	// The store is the only dependency readiness depends on.
	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		if checker, ok := do.MustInvoke[ports.Store](i).(ports.HealthChecker); ok {
			registry.Register(checker)
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		users := do.MustInvoke[ports.UserService](i)
		return adapthttp.Handlers{
			Tasks:  handlers.NewTaskHandler(do.MustInvoke[ports.TaskService](i)),
			Teams:  handlers.NewTeamHandler(do.MustInvoke[ports.TeamService](i)),
			Users:  handlers.NewUserHandler(users),
			Auth:   handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i), users),
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		tokens := do.MustInvoke[*auth.Tokens](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		guards := adapthttp.Guards{
			Authenticate: middleware.Authenticate(tokens),
			RateLimit:    middleware.NewRateLimiter(cfg.Auth.RateLimit).Middleware(),
		}

		return adapthttp.NewRouter(h, guards,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
