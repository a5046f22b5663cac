package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const bearerPrefix = "Bearer "

type actorKey struct{}

// WithActor returns a new context carrying the authenticated user id.
func WithActor(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, actorKey{}, id)
}

// ActorFromContext returns the authenticated user id stored by Authenticate.
func ActorFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(actorKey{}).(int64)
	return id, ok
}

// Authenticate returns middleware that requires a valid bearer token. The
// token subject becomes the request's actor and is attached to the request
// logger. Missing or invalid tokens are answered with 401 before the
// handler runs; whether the actor still exists and is active is decided by
// the services.
func Authenticate(verifier ports.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, bearerPrefix)
			if !found || strings.TrimSpace(token) == "" {
				unauthenticated(w, r, "missing bearer token")
				return
			}

			actorID, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				logging.FromContext(r.Context()).DebugContext(r.Context(), "token rejected",
					slog.Any("error", err),
				)
				unauthenticated(w, r, "invalid or expired token")
				return
			}

			ctx := WithActor(r.Context(), actorID)
			ctx = logging.With(ctx, slog.Int64("actor_id", actorID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthenticated(w http.ResponseWriter, r *http.Request, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="taskflow"`)
	dto.WriteProblem(w, r, http.StatusUnauthorized, dto.CodeUnauthenticated, detail)
}
