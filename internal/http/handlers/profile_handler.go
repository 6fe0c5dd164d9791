package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studenthub/internal/domain"
	applog "studenthub/internal/log"
	"studenthub/internal/services"
	"studenthub/internal/validate"
)

type ProfileHandler struct {
	Profile *services.ProfileService
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	name, okN := validate.Name(req.Name)
	email, okE := validate.Email(req.Email)
	if !okN || !okE {
		return jsonError(c, fiber.StatusBadRequest, "Name and email are required.")
	}

	u, err := h.Profile.Update(currentUser(c).ID, name, email)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return jsonError(c, fiber.StatusConflict, "Email is already registered.")
		}
		return err
	}
	applog.Audit(c, "profile.update", map[string]any{"email": email})
	return c.JSON(fiber.Map{"message": "Profile updated.", "user": u})
}

func (h *ProfileHandler) Pay(c *fiber.Ctx) error {
	u, err := h.Profile.PayFees(currentUser(c))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyPaid) {
			return jsonError(c, fiber.StatusBadRequest, "Fees already paid.")
		}
		return err
	}
	applog.Audit(c, "profile.pay", nil)
	return c.JSON(fiber.Map{"message": "Fees paid successfully.", "user": u})
}
