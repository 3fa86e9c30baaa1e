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

// FeatureFlagHandler handles feature flag endpoints
type FeatureFlagHandler struct {
	flagService *services.FeatureFlagService
}

// NewFeatureFlagHandler creates a new feature flag handler
func NewFeatureFlagHandler(flagService *services.FeatureFlagService) *FeatureFlagHandler {
	return &FeatureFlagHandler{flagService: flagService}
}

// ListFeatureFlags lists feature flags
// @Summary List feature flags
// @Description List feature flags, optionally filtered by scope, enabled and region
// @Tags FeatureFlags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scope query string false "Scope filter"
// @Param enabled query bool false "Enabled filter"
// @Param region query string false "Region filter (matches any flag targeting the region)"
// @Success 200 {array} models.FeatureFlag
// @Failure 401 {object} response.ErrorBody
// @Router /feature-flags [get]
func (h *FeatureFlagHandler) ListFeatureFlags(c *fiber.Ctx) error {
	filter := repositories.FeatureFlagFilter{
		Scope: c.Query("scope"),
	}
	if raw := c.Query("enabled"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid enabled filter")
		}
		filter.Enabled = &enabled
	}
	if region := c.Query("region"); region != "" {
		filter.Regions = []string{region}
	}

	flags, err := h.flagService.ListFeatureFlags(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch feature flags")
	}
	return c.JSON(flags)
}

// GetFeatureFlag gets a feature flag by ID
// @Summary Get feature flag
// @Description Get a single feature flag by ID
// @Tags FeatureFlags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feature flag ID"
// @Success 200 {object} models.FeatureFlag
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /feature-flags/{id} [get]
func (h *FeatureFlagHandler) GetFeatureFlag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid feature flag ID")
	}

	flag, err := h.flagService.GetFeatureFlag(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Feature flag not found")
		}
		return response.InternalServerError(c, "Failed to fetch feature flag")
	}
	return c.JSON(flag)
}

// CreateFeatureFlag creates a feature flag
// @Summary Create feature flag
// @Description Create a new feature flag (super admin only)
// @Tags FeatureFlags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateFeatureFlagInput true "Feature flag data"
// @Success 201 {object} models.FeatureFlag
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /feature-flags [post]
func (h *FeatureFlagHandler) CreateFeatureFlag(c *fiber.Ctx) error {
	actor, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateFeatureFlagInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, "Invalid feature flag data", verr.Fields)
		}
		return response.BadRequest(c, "Invalid feature flag data")
	}

	flag, err := h.flagService.CreateFeatureFlag(c.Context(), actor, &input)
	if err != nil {
		if errors.Is(err, services.ErrFlagNameTaken) {
			return response.Conflict(c, "Feature flag name already exists")
		}
		return response.InternalServerError(c, "Failed to create feature flag")
	}

	return c.Status(fiber.StatusCreated).JSON(flag)
}

// UpdateFeatureFlag updates a feature flag
// @Summary Update feature flag
// @Description Apply a partial update to a feature flag (super admin only)
// @Tags FeatureFlags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feature flag ID"
// @Param body body services.UpdateFeatureFlagInput true "Fields to update"
// @Success 200 {object} models.FeatureFlag
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /feature-flags/{id} [put]
func (h *FeatureFlagHandler) UpdateFeatureFlag(c *fiber.Ctx) error {
	actor, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid feature flag ID")
	}

	var input services.UpdateFeatureFlagInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, "Invalid feature flag data", verr.Fields)
		}
		return response.BadRequest(c, "Invalid feature flag data")
	}

	flag, err := h.flagService.UpdateFeatureFlag(c.Context(), actor, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Feature flag not found")
		case errors.Is(err, services.ErrFlagNameTaken):
			return response.Conflict(c, "Feature flag name already exists")
		default:
			return response.InternalServerError(c, "Failed to update feature flag")
		}
	}

	return c.JSON(flag)
}
