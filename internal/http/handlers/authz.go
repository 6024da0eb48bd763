package handlers

import (
	applog "magnetlog/internal/log"
	"magnetlog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser enforces an authenticated session; otherwise redirect to login.
// The session email is left in Locals for the guarded handler.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		email := auth.CurrentEmail(sid)
		if email == "" {
			applog.Security(c, "access.denied", map[string]any{"sid": sid})
			return c.Redirect("/login")
		}
		c.Locals("email", email)
		return c.Next()
	}
}

// sessionEmail returns the email RequireUser resolved for this request.
func sessionEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}
