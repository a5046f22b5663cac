package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		write     func(rec *statusRecorder)
		wantCode  int
		wantBytes int64
		wantWrote bool
	}{
		{
			name:     "nothing written",
			write:    func(*statusRecorder) {},
			wantCode: http.StatusOK,
		},
		{
			name:      "explicit status",
			write:     func(rec *statusRecorder) { rec.WriteHeader(http.StatusNotFound) },
			wantCode:  http.StatusNotFound,
			wantWrote: true,
		},
		{
			name: "first status wins",
			write: func(rec *statusRecorder) {
				rec.WriteHeader(http.StatusCreated)
				rec.WriteHeader(http.StatusInternalServerError)
			},
			wantCode:  http.StatusCreated,
			wantWrote: true,
		},
		{
			name: "body counts bytes",
			write: func(rec *statusRecorder) {
				_, _ = rec.Write([]byte(`{"id":`))
				_, _ = rec.Write([]byte(`1}`))
			},
			wantCode:  http.StatusOK,
			wantBytes: 8,
			wantWrote: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := recordStatus(httptest.NewRecorder())
			tt.write(rec)

			if rec.status != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.status, tt.wantCode)
			}
			if rec.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", rec.bytes, tt.wantBytes)
			}
			if rec.wroteHeader != tt.wantWrote {
				t.Errorf("wroteHeader = %v, want %v", rec.wroteHeader, tt.wantWrote)
			}
		})
	}
}

func TestRecordStatus_ReusesRecorder(t *testing.T) {
	t.Parallel()

	outer := recordStatus(httptest.NewRecorder())
	if inner := recordStatus(outer); inner != outer {
		t.Error("recordStatus wrapped an existing recorder")
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	if got := recordStatus(w).Unwrap(); got != w {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
