package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
)

func TestTimeout_HandlerCompletesBeforeDeadline(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "/api/v1/tasks/1")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tasks", http.NoBody))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if rec.Body.String() != `{"id":1}` {
		t.Errorf("body = %q", rec.Body.String())
	}
	if rec.Header().Get("Location") != "/api/v1/tasks/1" {
		t.Errorf("Location = %q", rec.Header().Get("Location"))
	}
}

func TestTimeout_DeadlineExceeded(t *testing.T) {
	t.Parallel()

	lateWrite := make(chan error, 1)
	handler := middleware.Timeout(50 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		lateWrite <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want problem+json", ct)
	}
	if err := <-lateWrite; !errors.Is(err, http.ErrHandlerTimeout) {
		t.Errorf("late Write() error = %v, want http.ErrHandlerTimeout", err)
	}
}

func TestTimeout_ContextCarriesDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if !hasDeadline {
		t.Error("context has no deadline")
	}
}

func TestTimeout_DisabledWhenNonPositive(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	handler := middleware.Timeout(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		_, _ = w.Write([]byte("ok"))
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if hasDeadline {
		t.Error("zero timeout should not set a deadline")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(middleware.Timeout(time.Second)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("handler bug")
		}),
	))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
