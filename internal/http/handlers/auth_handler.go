package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studenthub/internal/domain"
	applog "studenthub/internal/log"
	"studenthub/internal/services"
	"studenthub/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	name, okN := validate.Name(req.Name)
	email, okE := validate.Email(req.Email)
	if !okN || !okE {
		return jsonError(c, fiber.StatusBadRequest, "Name and email are required.")
	}
	if !validate.Password(req.Password) {
		return jsonError(c, fiber.StatusBadRequest, "Password must be at least 8 characters.")
	}

	u, err := h.Auth.Signup(name, email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			applog.Security(c, "auth.signup.conflict", map[string]any{"email": email})
			return jsonError(c, fiber.StatusConflict, "Email is already registered.")
		}
		return err
	}
	applog.Audit(c, "auth.signup.success", map[string]any{"email": email})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Signup successful.", "user": u})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}

	token, u, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
			return jsonError(c, fiber.StatusUnauthorized, "Invalid email or password.")
		}
		return err
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": u.Email})
	return c.JSON(fiber.Map{"token": token, "user": u})
}
