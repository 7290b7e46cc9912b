package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "shopmart/internal/log"
	"shopmart/internal/services"
)

type ProductAPI struct {
	Catalog *services.CatalogService
}

// GET /api/products?category=&search=&sort=
func (h *ProductAPI) List(c *fiber.Ctx) error {
	products, err := h.Catalog.List(c.Query("category"), c.Query("search"), c.Query("sort"))
	if err != nil {
		applog.Error(c, "api.products.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load products"})
	}
	return c.JSON(products)
}

// GET /api/products/:id
func (h *ProductAPI) Get(c *fiber.Ctx) error {
	p, err := h.Catalog.Get(c.Params("id"))
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	if err != nil {
		applog.Error(c, "api.products.get", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load product"})
	}
	return c.JSON(p)
}

// POST /api/products
func (h *ProductAPI) Create(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	p, err := h.Catalog.Create(in)
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		applog.Warn(c, "api.products.create.invalid", map[string]any{"reason": verr.Msg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": verr.Msg})
	}
	if err != nil {
		applog.Error(c, "api.products.create", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not create product"})
	}
	applog.Audit(c, "api.products.create", map[string]any{"id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/products/:id
func (h *ProductAPI) Update(c *fiber.Ctx) error {
	var patch services.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	p, err := h.Catalog.Update(c.Params("id"), patch)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	if err != nil {
		applog.Error(c, "api.products.update", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not update product"})
	}
	applog.Audit(c, "api.products.update", map[string]any{"id": p.ID})
	return c.JSON(p)
}

// DELETE /api/products/:id
func (h *ProductAPI) Delete(c *fiber.Ctx) error {
	err := h.Catalog.Delete(c.Params("id"))
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	if err != nil {
		applog.Error(c, "api.products.delete", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not delete product"})
	}
	applog.Audit(c, "api.products.delete", map[string]any{"id": c.Params("id")})
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
