package handlers

import (
	applog "magnetlog/internal/log"
	"magnetlog/internal/repos"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	Countries *repos.CountryRepo
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	countries, err := h.Countries.All()
	if err != nil {
		applog.Error(c, "home.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load page"})
	}
	return render(c, "index", fiber.Map{"Countries": countries})
}
