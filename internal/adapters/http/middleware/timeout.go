package middleware

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

// CodeTimeout is the problem code of a request that exceeded its deadline.
const CodeTimeout = "Timeout"

// Timeout returns middleware that bounds each request by d. The handler runs
// with a deadline-carrying context, so a store transaction still in flight
// is rolled back. When the deadline fires first the client gets a 504
// problem response, and later writes by the handler fail with
// http.ErrHandlerTimeout. A non-positive d disables the bound.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				// Re-raise on the serving goroutine so Recovery sees it.
				panic(v)
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.flushTo(w)
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.timedOut = true
				logging.FromContext(r.Context()).WarnContext(r.Context(), "request deadline exceeded",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", d),
				)
				dto.WriteProblem(w, r, http.StatusGatewayTimeout, CodeTimeout, "request deadline exceeded")
			}
		})
	}
}

// bufferedWriter holds the handler's response until it is known whether the
// deadline or the handler finished first.
type bufferedWriter struct {
	mu       sync.Mutex
	header   http.Header
	body     []byte
	status   int
	timedOut bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.timedOut || bw.status != 0 {
		return
	}
	bw.status = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

// flushTo copies the buffered response to w. Must be called with bw.mu held.
func (bw *bufferedWriter) flushTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
