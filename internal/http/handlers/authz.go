package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"studenthub/internal/auth"
	"studenthub/internal/domain"
	applog "studenthub/internal/log"
	"studenthub/internal/repos"
)

// RequireUser gates every protected route: it extracts the bearer token,
// validates it, resolves the embedded user id against the store and attaches
// the record to locals. The middleware never mutates the store.
func RequireUser(tokens *auth.Tokens, users *repos.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return jsonError(c, fiber.StatusUnauthorized, "Authentication required.")
		}
		uid, err := tokens.Validate(raw)
		if err != nil {
			applog.Security(c, "access.denied.token", nil)
			return jsonError(c, fiber.StatusUnauthorized, "Invalid or expired token.")
		}
		u, err := users.ByID(uid)
		if err != nil {
			// Valid signature but the account is gone.
			if errors.Is(err, domain.ErrNotFound) {
				applog.Security(c, "access.denied.user_gone", map[string]any{"uid": uid})
				return jsonError(c, fiber.StatusUnauthorized, "Invalid or expired token.")
			}
			return err
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// bearerToken pulls the token from the Authorization header, falling back to
// the token query parameter for websocket handshakes, where browsers cannot
// set headers.
func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return c.Query("token")
}
