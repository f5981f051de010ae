package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"branch-loans-api/internal/usecase/health"
)

const retryAfterSecs = "30"

type HealthHandler struct{ checker *health.Checker }

func NewHealthHandler(checker *health.Checker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

type healthResponse struct {
	Status        health.Status                 `json:"status"`
	Version       string                        `json:"version"`
	Timestamp     string                        `json:"timestamp"`
	UptimeSeconds float64                       `json:"uptime_seconds"`
	Checks        map[string]health.CheckResult `json:"checks"`
	LatencyMS     float64                       `json:"latency_ms"`
}

func (h *HealthHandler) Health(c echo.Context) error {
	start := time.Now()
	status, checks := h.checker.Run(c.Request().Context())

	resp := healthResponse{
		Status:        status,
		Version:       h.checker.Version(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		UptimeSeconds: h.checker.UptimeSeconds(),
		Checks:        checks,
		LatencyMS:     float64(time.Since(start).Microseconds()) / 1000.0,
	}
	if status != health.StatusHealthy {
		c.Response().Header().Set("Retry-After", retryAfterSecs)
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// Liveness never touches dependencies: the process answering is the signal.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
}

func (h *HealthHandler) Readiness(c echo.Context) error {
	status, checks := h.checker.Run(c.Request().Context())
	if status != health.StatusHealthy {
		c.Response().Header().Set("Retry-After", retryAfterSecs)
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status": "not ready",
			"checks": checks,
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
