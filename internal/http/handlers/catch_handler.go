package handlers

import (
	"magnetlog/internal/http/flash"
	applog "magnetlog/internal/log"
	"magnetlog/internal/repos"
	"magnetlog/internal/services"
	"magnetlog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatchHandler struct {
	Catches   *services.CatchService
	Countries *repos.CountryRepo
}

// List is public: anyone can browse the catch log.
func (h *CatchHandler) List(c *fiber.Ctx) error {
	catches, err := h.Catches.List()
	if err != nil {
		applog.Error(c, "catch.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load catches"})
	}
	return render(c, "catches", fiber.Map{"Catches": catches})
}

func (h *CatchHandler) AddForm(c *fiber.Ctx) error {
	countries, err := h.Countries.All()
	if err != nil {
		applog.Error(c, "catch.form.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load form"})
	}
	return render(c, "add_catch", fiber.Map{"Err": "", "Countries": countries, "Date": "", "City": ""})
}

func (h *CatchHandler) Add(c *fiber.Ctx) error {
	email := sessionEmail(c)
	date := c.FormValue("date")
	country := c.FormValue("country")
	city := c.FormValue("city")

	if !validate.RequiredAll(date, country, city) {
		applog.Security(c, "catch.validate.fail", map[string]any{"reason": "missing_field"})
		countries, _ := h.Countries.All()
		return c.Status(400).Render("add_catch", fiber.Map{
			"Err": "Date, country and city are required", "Countries": countries,
			"Date": date, "Country": country, "City": city,
		})
	}

	ct, err := h.Catches.Add(date, country, city, email)
	if err != nil {
		applog.Error(c, "catch.add.fail", err, map[string]any{"email": email})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save catch"})
	}

	applog.Audit(c, "catch.add", map[string]any{"catch": ct.ID, "email": email})
	flash.Set(c, flash.Success, "Catch Successfully Added")
	return c.Redirect("/get_catches")
}

func (h *CatchHandler) EditForm(c *fiber.Ctx) error {
	id := c.Params("catch_id")
	ct, err := h.Catches.Get(id)
	if err != nil {
		applog.Security(c, "catch.edit.notfound", map[string]any{"catch": id})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Catch not found"})
	}
	countries, err := h.Countries.All()
	if err != nil {
		applog.Error(c, "catch.form.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load form"})
	}
	return render(c, "edit_catch", fiber.Map{"Err": "", "Catch": ct, "Countries": countries})
}

// Edit replaces the whole record keyed by the path id. Attribution follows the
// editor's session, and a replace against a vanished id falls through as a
// no-op.
func (h *CatchHandler) Edit(c *fiber.Ctx) error {
	email := sessionEmail(c)
	id := c.Params("catch_id")
	date := c.FormValue("date")
	country := c.FormValue("country")
	city := c.FormValue("city")

	if !validate.RequiredAll(date, country, city) {
		applog.Security(c, "catch.validate.fail", map[string]any{"reason": "missing_field"})
		ct, err := h.Catches.Get(id)
		if err != nil {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Catch not found"})
		}
		countries, _ := h.Countries.All()
		return c.Status(400).Render("edit_catch", fiber.Map{
			"Err": "Date, country and city are required", "Catch": ct, "Countries": countries,
		})
	}

	if err := h.Catches.Replace(id, date, country, city, email); err != nil {
		applog.Error(c, "catch.edit.fail", err, map[string]any{"catch": id, "email": email})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save catch"})
	}

	applog.Audit(c, "catch.edit", map[string]any{"catch": id, "email": email})
	flash.Set(c, flash.Success, "Catch Successfully Updated")
	return c.Redirect("/get_catches")
}
