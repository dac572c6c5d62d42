package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles liveness and readiness probes
type HealthHandler struct {
	serviceName string
	checks      map[string]HealthChecker
}

// NewHealthHandler creates a new HealthHandler. Nil checkers are
// skipped so optional dependencies can be passed unconditionally.
func NewHealthHandler(serviceName string, checks map[string]HealthChecker) *HealthHandler {
	filtered := make(map[string]HealthChecker, len(checks))
	for name, check := range checks {
		if check != nil {
			filtered[name] = check
		}
	}
	return &HealthHandler{
		serviceName: serviceName,
		checks:      filtered,
	}
}

// Health handles GET /health - liveness probe
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.serviceName,
	})
}

// Ready handles GET /ready - readiness probe, fails when any
// dependency is unreachable
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	statuses := make(map[string]string, len(h.checks))
	ready := true

	for name, check := range h.checks {
		if err := check.HealthCheck(ctx); err != nil {
			statuses[name] = err.Error()
			ready = false
			continue
		}
		statuses[name] = "ok"
	}

	status := http.StatusOK
	overall := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		overall = "not_ready"
	}
	c.JSON(status, gin.H{
		"status":  overall,
		"service": h.serviceName,
		"checks":  statuses,
	})
}
