package handlers

import (
	"errors"
	"strconv"

	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
	"agrihero-admin/internal/core/services"
	"agrihero-admin/internal/pkg/response"
	"agrihero-admin/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler handles content moderation endpoints
type ContentHandler struct {
	contentService *services.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ListContents lists content items
// @Summary List contents
// @Description List content items, optionally filtered by type, status, reported and region
// @Tags Contents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type query string false "Type filter"
// @Param status query string false "Status filter"
// @Param reported query bool false "Reported filter"
// @Param region query string false "Region filter"
// @Success 200 {array} models.Content
// @Failure 401 {object} response.ErrorBody
// @Router /contents [get]
func (h *ContentHandler) ListContents(c *fiber.Ctx) error {
	filter := repositories.ContentFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Region: c.Query("region"),
	}
	if raw := c.Query("reported"); raw != "" {
		reported, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid reported filter")
		}
		filter.Reported = &reported
	}

	contents, err := h.contentService.ListContents(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch contents")
	}
	return c.JSON(contents)
}

// GetContent gets a content item by ID
// @Summary Get content
// @Description Get a single content item by ID
// @Tags Contents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Success 200 {object} models.Content
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /contents/{id} [get]
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid content ID")
	}

	content, err := h.contentService.GetContent(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Content not found")
		}
		return response.InternalServerError(c, "Failed to fetch content")
	}
	return c.JSON(content)
}

// ModerateContent applies a moderation decision
// @Summary Moderate content
// @Description Approve or reject a content item
// @Tags Contents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Param body body services.ModerateContentInput true "Moderation decision"
// @Success 200 {object} models.Content
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /contents/{id}/moderate [put]
func (h *ContentHandler) ModerateContent(c *fiber.Ctx) error {
	actor, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid content ID")
	}

	var input services.ModerateContentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, "Invalid moderation data", verr.Fields)
		}
		return response.BadRequest(c, "Invalid moderation data")
	}

	content, err := h.contentService.ModerateContent(c.Context(), actor, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidModerationStatus):
			return response.BadRequest(c, "Status must be approved or rejected")
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Content not found")
		default:
			return response.InternalServerError(c, "Failed to moderate content")
		}
	}

	return c.JSON(content)
}
