package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "shopmart/internal/log"
	"shopmart/internal/services"
	"shopmart/internal/validate"
)

type CartHandler struct {
	Catalog *services.CatalogService
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	ct := currentCart(c)
	return render(c, "cart", fiber.Map{
		"Items":    ct.Items(),
		"Subtotal": ct.Subtotal(),
		"Shipping": ct.Shipping(),
		"Total":    ct.Total(),
	})
}

// POST /cart adds a product to the cart cookie and bounces back.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))

	p, err := h.Catalog.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	if err != nil {
		applog.Error(c, "cart.add", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("could not add to cart")
	}

	ct := currentCart(c)
	ct.Add(p, qty)
	saveCart(c, ct)
	setFlash(c, "Added to cart!")

	if back := c.FormValue("back"); back == "detail" {
		return c.Redirect("/product/" + id)
	}
	return c.Redirect("/cart")
}

// POST /cart/update overwrites a quantity; zero removes the entry.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	// Zero and below are legal here and mean "remove".
	qty, err := strconv.Atoi(strings.TrimSpace(c.FormValue("qty")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid qty")
	}

	ct := currentCart(c)
	ct.SetQuantity(id, qty)
	saveCart(c, ct)
	return c.Redirect("/cart")
}

// POST /cart/remove
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	ct := currentCart(c)
	ct.Remove(id)
	saveCart(c, ct)
	return c.Redirect("/cart")
}
