// Package logging builds the service's slog logger and carries a
// request-scoped copy through context.Context.
//
// The HTTP middleware stores a logger carrying request_id and correlation_id,
// and authentication adds actor_id, so code below the handlers logs with
//
//	logging.FromContext(ctx).WarnContext(ctx, "task not found", slog.Int64("task_id", id))
//
// Services log expected domain outcomes (not found, denied, conflict) at
// WARN and infrastructure failures at ERROR with slog.Any("error", err).
// Attributes named after credentials or personal data, and values shaped like
// bearer tokens, JWTs or bcrypt hashes, are written as [REDACTED].
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New builds the service logger. level is one of debug, info, warn or error
// (any case, unknown means info); format "text" selects the text handler and
// anything else JSON. Debug output carries the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the request logger, or slog.Default when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns ctx carrying the current request logger extended with args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
