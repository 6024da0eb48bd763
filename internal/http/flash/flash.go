// Package flash carries one-shot notices across a redirect in a cookie.
// The cookie value is "kind:message"; middleware reads and clears it on the
// next request and leaves the parsed notice in Locals for the render layer.
package flash

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

type Notice struct {
	Kind    Kind
	Message string
}

const (
	cookieName = "flash"
	localsKey  = "flash"
)

// Set queues a notice for the next rendered page.
func Set(c *fiber.Ctx, kind Kind, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    string(kind) + ":" + message,
		Path:     "/",
		MaxAge:   60,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Get returns the notice stashed by the middleware, or nil.
func Get(c *fiber.Ctx) *Notice {
	n, _ := c.Locals(localsKey).(*Notice)
	return n
}

// New returns middleware that reads and clears the flash cookie.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v := c.Cookies(cookieName); v != "" {
			c.Locals(localsKey, parse(v))
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    "",
				Path:     "/",
				Expires:  time.Unix(0, 0),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		return c.Next()
	}
}

func parse(v string) *Notice {
	if kind, msg, ok := strings.Cut(v, ":"); ok {
		return &Notice{Kind: Kind(kind), Message: msg}
	}
	return &Notice{Kind: Info, Message: v}
}
