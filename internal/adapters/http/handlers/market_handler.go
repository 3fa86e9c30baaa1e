package handlers

import (
	"errors"

	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
	"agrihero-admin/internal/core/services"
	"agrihero-admin/internal/pkg/response"
	"agrihero-admin/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// MarketHandler handles produce market endpoints
type MarketHandler struct {
	marketService *services.MarketService
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketService *services.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// ListProduceMarkets lists produce market entries
// @Summary List produce market entries
// @Description List produce price entries, optionally filtered by category, region and status
// @Tags ProduceMarket
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param region query string false "Region filter"
// @Param status query string false "Status filter"
// @Success 200 {array} models.ProduceMarket
// @Failure 401 {object} response.ErrorBody
// @Router /produce-markets [get]
func (h *MarketHandler) ListProduceMarkets(c *fiber.Ctx) error {
	filter := repositories.ProduceMarketFilter{
		Category: c.Query("category"),
		Region:   c.Query("region"),
		Status:   c.Query("status"),
	}

	entries, err := h.marketService.ListProduceMarkets(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch produce market entries")
	}
	return c.JSON(entries)
}

// GetProduceMarket gets a produce market entry by ID
// @Summary Get produce market entry
// @Description Get a single produce price entry by ID
// @Tags ProduceMarket
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} models.ProduceMarket
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /produce-markets/{id} [get]
func (h *MarketHandler) GetProduceMarket(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid produce market ID")
	}

	entry, err := h.marketService.GetProduceMarket(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Produce market entry not found")
		}
		return response.InternalServerError(c, "Failed to fetch produce market entry")
	}
	return c.JSON(entry)
}

// CreateProduceMarket creates a produce market entry
// @Summary Create produce market entry
// @Description Create a new produce price entry; delta fields are derived from the price pair
// @Tags ProduceMarket
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateProduceMarketInput true "Produce market data"
// @Success 201 {object} models.ProduceMarket
// @Failure 400 {object} response.ErrorBody
// @Router /produce-markets [post]
func (h *MarketHandler) CreateProduceMarket(c *fiber.Ctx) error {
	actor, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateProduceMarketInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, "Invalid produce market data", verr.Fields)
		}
		return response.BadRequest(c, "Invalid produce market data")
	}

	entry, err := h.marketService.CreateProduceMarket(c.Context(), actor, &input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPrice) {
			return response.BadRequest(c, "Price must be a decimal number")
		}
		return response.InternalServerError(c, "Failed to create produce market entry")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateProduceMarket updates a produce market entry
// @Summary Update produce market entry
// @Description Apply a partial update; delta fields are re-derived when a price changes
// @Tags ProduceMarket
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param body body services.UpdateProduceMarketInput true "Fields to update"
// @Success 200 {object} models.ProduceMarket
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /produce-markets/{id} [put]
func (h *MarketHandler) UpdateProduceMarket(c *fiber.Ctx) error {
	actor, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid produce market ID")
	}

	var input services.UpdateProduceMarketInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, "Invalid produce market data", verr.Fields)
		}
		return response.BadRequest(c, "Invalid produce market data")
	}

	entry, err := h.marketService.UpdateProduceMarket(c.Context(), actor, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Produce market entry not found")
		case errors.Is(err, services.ErrInvalidPrice):
			return response.BadRequest(c, "Price must be a decimal number")
		default:
			return response.InternalServerError(c, "Failed to update produce market entry")
		}
	}

	return c.JSON(entry)
}

// DeleteProduceMarket deletes a produce market entry
// @Summary Delete produce market entry
// @Description Remove a produce price entry (super admin only)
// @Tags ProduceMarket
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /produce-markets/{id} [delete]
func (h *MarketHandler) DeleteProduceMarket(c *fiber.Ctx) error {
	actor, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid produce market ID")
	}

	if err := h.marketService.DeleteProduceMarket(c.Context(), actor, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Produce market entry not found")
		}
		return response.InternalServerError(c, "Failed to delete produce market entry")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
