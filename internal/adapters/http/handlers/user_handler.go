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

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers lists users
// @Summary List users
// @Description List users, optionally filtered by role, region and status
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter"
// @Param region query string false "Region filter"
// @Param status query string false "Status filter"
// @Success 200 {array} models.User
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	filter := repositories.UserFilter{
		Role:   c.Query("role"),
		Region: c.Query("region"),
		Status: c.Query("status"),
	}

	users, err := h.userService.ListUsers(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch users")
	}
	return c.JSON(users)
}

// GetUser gets a user by ID
// @Summary Get user
// @Description Get a single user by ID
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to fetch user")
	}
	return c.JSON(user)
}

// CreateUser creates a user
// @Summary Create user
// @Description Create a new platform user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateUserInput true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	actor, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, "Invalid user data", verr.Fields)
		}
		return response.BadRequest(c, "Invalid user data")
	}

	user, err := h.userService.CreateUser(c.Context(), actor, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			return response.BadRequest(c, "Invalid user role")
		case errors.Is(err, services.ErrUsernameTaken):
			return response.Conflict(c, "Username already exists")
		default:
			return response.InternalServerError(c, "Failed to create user")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser updates a user
// @Summary Update user
// @Description Apply a partial update to a user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body services.UpdateUserInput true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	actor, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, "Invalid user data", verr.Fields)
		}
		return response.BadRequest(c, "Invalid user data")
	}

	user, err := h.userService.UpdateUser(c.Context(), actor, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrInvalidRole):
			return response.BadRequest(c, "Invalid user role")
		case errors.Is(err, services.ErrUsernameTaken):
			return response.Conflict(c, "Username already exists")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return c.JSON(user)
}

// DeleteUser deletes a user
// @Summary Delete user
// @Description Remove a user (super admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	actor, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(c.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrCannotDeleteSelf):
			return response.BadRequest(c, "Cannot delete your own account")
		default:
			return response.InternalServerError(c, "Failed to delete user")
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
