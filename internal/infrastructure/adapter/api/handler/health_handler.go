package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
)

// HealthProbe checks one dependency
type HealthProbe func(ctx context.Context) error

// HealthHandler reports the status of the service and its dependencies
type HealthHandler struct {
	probes       map[string]HealthProbe
	timeout      time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(probes map[string]HealthProbe, timeout time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{probes: probes, timeout: timeout, timeProvider: timeProvider, logger: logger}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string            `json:"status"`
	Time   time.Time         `json:"time"`
	Checks map[string]string `json:"checks"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := h.timeProvider.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.probes))
	for name := range h.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{Status: "ok", Time: h.timeProvider.Now(), Checks: make(map[string]string, len(names))}
	status := http.StatusOK
	for _, name := range names {
		if err := h.probes[name](ctx); err != nil {
			h.logger.Warn("Health check failed", map[string]any{"check": name, "error": err.Error()})
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	c.JSON(status, resp)
}
