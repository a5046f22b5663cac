package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/taskflow-service/http"

// OpenTelemetry opens a server span per request, continuing any trace the
// caller propagated, and records request metrics. Span and metric carry the
// matched route pattern rather than the raw path, e.g.
// "GET /api/v1/tasks/{id}". metrics may be nil.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			rec := recordStatus(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route := matchedRoute(r)
			if route != "" {
				span.SetName(r.Method + " " + route)
				span.SetAttributes(attribute.String("http.route", route))
			}
			span.SetAttributes(attribute.Int("http.status_code", rec.status))
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}
			metrics.RecordServerRequest(ctx, r.Method, route, rec.status, time.Since(start))
		})
	}
}

// matchedRoute reads the pattern chi filled in while routing. The route
// context is shared by pointer, so it is visible after the handler returns.
func matchedRoute(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
