package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopmart/internal/log"
	"shopmart/internal/services"
)

type CategoryAPI struct {
	Catalog *services.CatalogService
}

// GET /api/categories returns the distinct category labels.
func (h *CategoryAPI) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.Categories()
	if err != nil {
		applog.Error(c, "api.categories.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load categories"})
	}
	return c.JSON(cats)
}
