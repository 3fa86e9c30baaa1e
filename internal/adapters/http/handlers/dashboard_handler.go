package handlers

import (
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/services"
	"agrihero-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard stats and system metric endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns live dashboard counts
// @Summary Dashboard stats
// @Description Live counts for the dashboard landing page
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.DashboardStats
// @Failure 401 {object} response.ErrorBody
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch dashboard stats")
	}
	return c.JSON(stats)
}

// ListMetrics lists system metric snapshots
// @Summary List system metrics
// @Description List system metric snapshots, optionally filtered by type
// @Tags Metrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type query string false "Type filter"
// @Success 200 {array} models.SystemMetric
// @Failure 401 {object} response.ErrorBody
// @Router /metrics [get]
func (h *DashboardHandler) ListMetrics(c *fiber.Ctx) error {
	filter := repositories.SystemMetricFilter{
		Type: c.Query("type"),
	}

	metrics, err := h.dashboardService.ListMetrics(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch system metrics")
	}
	return c.JSON(metrics)
}
