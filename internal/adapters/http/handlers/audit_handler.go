package handlers

import (
	"strconv"

	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/services"
	"agrihero-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuditHandler handles audit trail endpoints
type AuditHandler struct {
	auditService *services.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListAuditLogs lists audit entries
// @Summary List audit logs
// @Description List audit entries, optionally filtered by action and adminId (super admin only)
// @Tags AuditLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param action query string false "Action filter"
// @Param adminId query int false "Acting admin filter"
// @Success 200 {array} models.AuditLog
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *fiber.Ctx) error {
	filter := repositories.AuditLogFilter{
		Action: c.Query("action"),
	}
	if raw := c.Query("adminId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid adminId filter")
		}
		adminID := uint(id)
		filter.AdminID = &adminID
	}

	logs, err := h.auditService.ListAuditLogs(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch audit logs")
	}
	return c.JSON(logs)
}
