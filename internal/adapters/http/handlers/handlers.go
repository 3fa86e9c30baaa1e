package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var errBadID = errors.New("invalid id parameter")

// parseID reads a positive integer path parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return uint(id), nil
}

// adminID reads the authenticated actor's ID set by the auth middleware
func adminID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}
