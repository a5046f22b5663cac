package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	maxTraceIDLen   = 128
)

type requestIDKey struct{}

// WithRequestID returns a new context with the given request ID stored in it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID, or "" when none is stored.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID returns middleware that assigns every request an X-Request-ID.
// A well-formed incoming header is kept; anything else is replaced by a
// random UUID. The ID is echoed as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !validTraceID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// validTraceID accepts short printable tokens only, so that client-supplied
// ids cannot inject separators into log lines or response headers.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
