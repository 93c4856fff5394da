package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/svan-b/economic-indicators-dashboard/shared"
)

// MetricsProvider is anything that exposes per-service request metrics.
type MetricsProvider interface {
	Metrics() *shared.ServiceMetrics
}

type PerformanceHandler struct {
	providers []MetricsProvider
}

func NewPerformanceHandler(providers ...MetricsProvider) *PerformanceHandler {
	return &PerformanceHandler{providers: providers}
}

// GetPerformanceMetrics returns a point-in-time snapshot of every service's
// request counters.
func (h *PerformanceHandler) GetPerformanceMetrics(c *fiber.Ctx) error {
	snapshots := make([]shared.MetricsSnapshot, 0, len(h.providers))
	for _, provider := range h.providers {
		snapshots = append(snapshots, provider.Metrics().Snapshot())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    snapshots,
	})
}
