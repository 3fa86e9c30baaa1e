package handlers

import (
	"errors"

	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
	"agrihero-admin/internal/core/services"
	"agrihero-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ComplianceHandler handles compliance report endpoints
type ComplianceHandler struct {
	complianceService *services.ComplianceService
}

// NewComplianceHandler creates a new compliance handler
func NewComplianceHandler(complianceService *services.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService}
}

// ListReports lists compliance reports
// @Summary List compliance reports
// @Description List compliance reports, optionally filtered by type, status and region
// @Tags Compliance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type query string false "Type filter"
// @Param status query string false "Status filter"
// @Param region query string false "Region filter"
// @Success 200 {array} models.ComplianceReport
// @Failure 401 {object} response.ErrorBody
// @Router /compliance-reports [get]
func (h *ComplianceHandler) ListReports(c *fiber.Ctx) error {
	filter := repositories.ComplianceReportFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Region: c.Query("region"),
	}

	reports, err := h.complianceService.ListReports(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch compliance reports")
	}
	return c.JSON(reports)
}

// GetReport gets a compliance report by ID
// @Summary Get compliance report
// @Description Get a single compliance report by ID
// @Tags Compliance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} models.ComplianceReport
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /compliance-reports/{id} [get]
func (h *ComplianceHandler) GetReport(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid report ID")
	}

	report, err := h.complianceService.GetReport(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Compliance report not found")
		}
		return response.InternalServerError(c, "Failed to fetch compliance report")
	}
	return c.JSON(report)
}

// GenerateReport refreshes a report's lastGenerated timestamp
// @Summary Generate compliance report
// @Description Refresh a report's lastGenerated timestamp
// @Tags Compliance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} models.ComplianceReport
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /compliance-reports/{id}/generate [post]
func (h *ComplianceHandler) GenerateReport(c *fiber.Ctx) error {
	actor, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid report ID")
	}

	report, err := h.complianceService.GenerateReport(c.Context(), actor, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Compliance report not found")
		}
		return response.InternalServerError(c, "Failed to generate compliance report")
	}
	return c.JSON(report)
}
