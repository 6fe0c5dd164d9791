package handlers

import (
	"github.com/gofiber/fiber/v2"

	"studenthub/internal/domain"
)

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// currentUser returns the record the session middleware resolved for this
// request. Handlers behind RequireUser may assume it is present.
func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
