package handlers

import (
	"errors"
	"net/url"
	"time"

	"magnetlog/internal/http/flash"
	applog "magnetlog/internal/log"
	"magnetlog/internal/services"
	"magnetlog/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": "", "Name": "", "Email": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name := c.FormValue("name")
	email := c.FormValue("email")
	pass := c.FormValue("password")

	if !validate.RequiredAll(name, email, pass) {
		applog.Security(c, "auth.register.fail", map[string]any{"email": email, "reason": "missing_field"})
		return c.Status(400).Render("register", fiber.Map{"Err": "Name, email and password are required", "Name": name, "Email": email})
	}

	_, err := h.Auth.Register(sid, name, email, pass)
	if errors.Is(err, services.ErrDuplicateUser) {
		applog.Security(c, "auth.register.fail", map[string]any{"email": email, "reason": "duplicate"})
		return c.Status(409).Render("register", fiber.Map{"Err": "Username already exists", "Name": name, "Email": email})
	}
	if err != nil {
		applog.Error(c, "auth.register.fail", err, map[string]any{"email": email})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Something went wrong. Please try again."})
	}

	applog.Audit(c, "auth.register.success", map[string]any{"email": email})
	flash.Set(c, flash.Success, "Registration Successful!")
	// The session keeps the email exactly as submitted; the profile URL does too.
	return c.Redirect("/profile/" + url.PathEscape(email))
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")

	if !validate.RequiredAll(email, pass) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "missing_field"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Incorrect email and/or password"})
	}

	u, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		// Same notice for unknown user and wrong password
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Incorrect email and/or password"})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": u.Email})
	flash.Set(c, flash.Success, "Welcome, "+email)
	return c.Redirect("/profile/" + url.PathEscape(u.Email))
}

// Logout clears the session unconditionally; logging out while anonymous is a
// no-op success.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies("sid"); sid != "" {
		_ = h.Auth.Logout(sid)
		applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	}
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	flash.Set(c, flash.Info, "You have been logged out")
	return c.Redirect("/login")
}
