package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-crm/internal/observability"
	"github.com/spec-kit/rental-crm/internal/persistence"
)

// HealthHandler responds to liveness and database reachability probes. Both
// routes answer HEAD requests with the measured handling time in a header.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, postgres: postgres, redis: redis, metrics: metrics}
}

// Ping reports service liveness.
func (h *HealthHandler) Ping(c *fiber.Ctx) error {
	start := time.Now()
	c.Set("X-Service", h.serviceName)
	c.Set("X-Version", h.version)
	setResponseTime(c, start)
	return c.SendStatus(fiber.StatusOK)
}

// DatabasePing reports database reachability.
func (h *HealthHandler) DatabasePing(c *fiber.Ctx) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.postgres.Ping(ctx); err != nil {
		setResponseTime(c, start)
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}
	setResponseTime(c, start)
	return c.SendStatus(fiber.StatusOK)
}

// Ready reports full readiness by checking every dependency.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if err := h.postgres.Ping(ctx); err != nil {
		depStatus["postgres"] = err.Error()
		ready = false
	} else {
		depStatus["postgres"] = "ok"
	}

	if err := h.redis.Ping(ctx); err != nil {
		depStatus["redis"] = err.Error()
		ready = false
	} else {
		depStatus["redis"] = "ok"
	}

	if ready {
		snap := h.metrics.Snapshot()
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
			"traffic": fiber.Map{
				"total_requests": snap.TotalRequests,
				"total_errors":   snap.TotalErrors,
				"avg_latency_ms": snap.AvgLatencyMs,
			},
		})
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}

func setResponseTime(c *fiber.Ctx, start time.Time) {
	c.Set("X-Response-Time", fmt.Sprintf("%.3fms", float64(time.Since(start).Microseconds())/1000))
}
