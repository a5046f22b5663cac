package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
)

// errPanic reaches the error writer in place of the panic value, which is
// logged but never sent to the client.
var errPanic = errors.New("handler panicked")

// Recovery returns middleware that turns a handler panic into a masked 500
// problem response and an error log with the stack. When the handler had
// already started its response only the log entry is emitted.
// http.ErrAbortHandler is re-raised so net/http aborts the connection
// silently.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := recordStatus(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					// RequestID runs inside Recovery; its id is only on the response.
					slog.String("request_id", rec.Header().Get(headerRequestID)),
					slog.Bool("response_started", rec.wroteHeader),
				)

				if !rec.wroteHeader {
					dto.WriteErrorResponse(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
