package handlers

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// ReadinessResponse is the body of GET /health/ready. Failed lists the
// failing check names in sorted order.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Failed []string          `json:"failed,omitempty"`
}

// HealthHandler serves the probe endpoints. They sit outside /api/v1 and
// need no bearer token.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Any failing store check turns the
// response into a 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Failed = append(resp.Failed, name)
	}

	code := http.StatusOK
	if len(resp.Failed) > 0 {
		sort.Strings(resp.Failed)
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).Warn("readiness check failed",
			slog.Any("failed", resp.Failed))
	}

	respond(w, r, code, resp)
}
