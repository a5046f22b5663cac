package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

const healthPathPrefix = "/health/"

// Logging returns middleware that stores a request-scoped logger (carrying
// request_id and correlation_id) via logging.WithLogger and logs each
// request's outcome. The completion level follows the status: Error for
// 5xx, Warn for 4xx, Info otherwise. Probe traffic under /health/ is
// logged at Debug so it does not drown the API requests.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)
			probe := strings.HasPrefix(r.URL.Path, healthPathPrefix)

			if !probe {
				child.DebugContext(ctx, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				logHeaders(ctx, child, r.Header)
			}

			rec := recordStatus(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				attrs = append(attrs, slog.String("route", rctx.RoutePattern()))
			}
			child.Log(ctx, completionLevel(rec.status, probe), "request completed", attrs...)
		})
	}
}

func completionLevel(status int, probe bool) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case probe:
		return slog.LevelDebug
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func logHeaders(ctx context.Context, logger *slog.Logger, h http.Header) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := RedactHeaders(h)
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	logger.DebugContext(ctx, "request headers", args...)
}
