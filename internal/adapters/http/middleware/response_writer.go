// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The global chain processes requests in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Router
//
// Route groups then add RateLimit (the public /auth endpoints) or
// Authenticate (everything else under /api/v1). Each middleware is a
// func(http.Handler) http.Handler and can be composed using the Chain helper.
package middleware

import "net/http"

// statusRecorder remembers the status and body size of a response. Recovery,
// OpenTelemetry and Logging all need them; they share one recorder per
// request instead of stacking wrappers.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

// recordStatus returns w itself when it already is a recorder.
func recordStatus(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status only.
func (rec *statusRecorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}
	rec.status = code
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
