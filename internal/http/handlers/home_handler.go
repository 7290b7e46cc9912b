package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopmart/internal/log"
	"shopmart/internal/services"
)

type HomeHandler struct {
	Catalog *services.CatalogService
}

// GET / renders the catalog grid with the category/search/sort controls.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	category := c.Query("category")
	search := c.Query("search")
	sort := c.Query("sort")

	products, err := h.Catalog.List(category, search, sort)
	if err != nil {
		applog.Error(c, "home.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	cats, err := h.Catalog.Categories()
	if err != nil {
		applog.Error(c, "home.categories", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}

	return render(c, "home", fiber.Map{
		"Products":   products,
		"Categories": cats,
		"Category":   category,
		"Search":     search,
		"Sort":       sort,
	})
}
