package middleware

import (
	"context"
	"net/http"
)

const headerCorrelationID = "X-Correlation-ID"

type correlationIDKey struct{}

// WithCorrelationID returns a new context carrying the correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" when none is
// stored.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationID returns middleware that propagates X-Correlation-ID across
// a chain of calls. A well-formed incoming value is kept; otherwise the
// request ID stands in. Must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if !validTraceID(id) {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}
