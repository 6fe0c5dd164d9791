package handlers

import (
	"github.com/gofiber/fiber/v2"

	"studenthub/internal/services"
)

type DirectoryHandler struct {
	Directory *services.DirectoryService
}

// List returns every user, hashes excluded. Any authenticated user may list.
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	users, err := h.Directory.List()
	if err != nil {
		return err
	}
	return c.JSON(users)
}
