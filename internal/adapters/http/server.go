package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

// Server runs the API listener with graceful shutdown. Addr reports the
// bound address once Ready is closed, so a zero port is usable in tests.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	mu    sync.Mutex
	addr  string
	ready chan struct{}
}

// NewServer creates a new HTTP server from the given config and handler.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
		addr:   addr,
		ready:  make(chan struct{}),
	}
}

// Start binds the listener and serves until Shutdown. It returns nil on
// graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}

	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()
	close(s.ready)

	s.logger.Info("starting HTTP server", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Ready is closed once Start has bound the listener.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires. A ctx without a deadline gets defaultShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server")
	return s.srv.Shutdown(ctx)
}

// Addr returns the listen address: the configured one before Start, the
// bound one after.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}
