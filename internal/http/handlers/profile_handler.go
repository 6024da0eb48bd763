package handlers

import (
	"net/url"
	"strings"

	applog "magnetlog/internal/log"
	"magnetlog/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Auth *services.AuthService
}

// View renders the profile named by the path. Identity still comes from the
// session: asking for someone else's profile bounces to your own.
func (h *ProfileHandler) View(c *fiber.Ctx) error {
	sessEmail := sessionEmail(c)

	pathEmail, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		pathEmail = c.Params("email")
	}
	if !strings.EqualFold(pathEmail, sessEmail) {
		applog.Security(c, "profile.mismatch", map[string]any{"requested": pathEmail})
		return c.Redirect("/profile/" + url.PathEscape(sessEmail))
	}

	u, err := h.Auth.CurrentUser(c.Cookies("sid"))
	if err != nil {
		applog.Error(c, "profile.lookup.fail", err, map[string]any{"email": sessEmail})
		return c.Redirect("/login")
	}

	return render(c, "profile", fiber.Map{"Email": u.Email, "Name": u.Name})
}
