package middleware

import (
	"net/http"
	"slices"
)

// Chain composes middlewares into one. The first argument is outermost:
//
//	Chain(Recovery, RequestID, Logging)(h) == Recovery(RequestID(Logging(h)))
//
// Nil entries are dropped, so optional guards such as a disabled rate
// limiter can be passed unconditionally.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	active := slices.DeleteFunc(slices.Clone(middlewares), func(mw func(http.Handler) http.Handler) bool {
		return mw == nil
	})
	return func(handler http.Handler) http.Handler {
		for _, mw := range slices.Backward(active) {
			handler = mw(handler)
		}
		return handler
	}
}
