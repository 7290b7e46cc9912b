package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "shopmart/internal/log"
	"shopmart/internal/services"
	"shopmart/internal/validate"
)

type AdminHandler struct {
	Catalog *services.CatalogService
}

// GET /admin lists the catalog; ?edit=<id> preloads the form.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	products, err := h.Catalog.List("", "", "")
	if err != nil {
		applog.Error(c, "admin.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}

	data := fiber.Map{"Products": products}
	if editID := c.Query("edit"); editID != "" {
		p, err := h.Catalog.Get(editID)
		if err == nil {
			data["Editing"] = p
		}
	}
	return render(c, "admin", data)
}

func productInputFromForm(c *fiber.Ctx) services.ProductInput {
	return services.ProductInput{
		Name:          c.FormValue("name"),
		Price:         validate.Num(c.FormValue("price")),
		OriginalPrice: validate.Num(c.FormValue("originalPrice")),
		Discount:      validate.Num(c.FormValue("discount")),
		Rating:        validate.Num(c.FormValue("rating")),
		Reviews:       validate.Num(c.FormValue("reviews")),
		Image:         c.FormValue("image"),
		Category:      c.FormValue("category"),
		Description:   c.FormValue("description"),
		Stock:         validate.Num(c.FormValue("stock")),
		Sold:          validate.Num(c.FormValue("sold")),
	}
}

// The admin form posts every field, so the patch covers them all.
func productPatchFromForm(c *fiber.Ctx) services.ProductPatch {
	str := func(k string) *string { v := c.FormValue(k); return &v }
	num := func(k string) *validate.Num { v := validate.Num(c.FormValue(k)); return &v }
	return services.ProductPatch{
		Name:          str("name"),
		Price:         num("price"),
		OriginalPrice: num("originalPrice"),
		Discount:      num("discount"),
		Rating:        num("rating"),
		Reviews:       num("reviews"),
		Image:         str("image"),
		Category:      str("category"),
		Description:   str("description"),
		Stock:         num("stock"),
		Sold:          num("sold"),
	}
}

// POST /admin/products
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	p, err := h.Catalog.Create(productInputFromForm(c))
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		applog.Warn(c, "admin.create.invalid", map[string]any{"reason": verr.Msg})
		return c.Status(fiber.StatusBadRequest).SendString(verr.Msg)
	}
	if err != nil {
		applog.Error(c, "admin.create", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("could not save product")
	}
	applog.Audit(c, "admin.create", map[string]any{"id": p.ID})
	return c.Redirect("/admin")
}

// POST /admin/products/:id
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	p, err := h.Catalog.Update(id, productPatchFromForm(c))
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	if err != nil {
		applog.Error(c, "admin.update", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).SendString("could not save product")
	}
	applog.Audit(c, "admin.update", map[string]any{"id": p.ID})
	return c.Redirect("/admin")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.Catalog.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	if err != nil {
		applog.Error(c, "admin.delete", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).SendString("could not delete product")
	}
	applog.Audit(c, "admin.delete", map[string]any{"id": id})
	return c.Redirect("/admin")
}
