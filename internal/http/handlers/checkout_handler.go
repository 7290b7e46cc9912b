package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopmart/internal/domain"
	applog "shopmart/internal/log"
	"shopmart/internal/services"
)

type CheckoutHandler struct {
	Orders *services.OrderService
}

// GET /checkout shows the form and the order summary including tax.
func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	ct := currentCart(c)
	if ct.Len() == 0 {
		return c.Redirect("/cart")
	}
	return render(c, "checkout", fiber.Map{
		"Items":    ct.Items(),
		"Subtotal": ct.Subtotal(),
		"Shipping": ct.Shipping(),
		"Tax":      ct.Tax(),
		"Total":    ct.CheckoutTotal(),
	})
}

// POST /checkout submits the cart as an order and clears the cart cookie.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	ct := currentCart(c)
	if ct.Len() == 0 {
		return c.Redirect("/cart")
	}

	info := domain.CustomerInfo{
		FirstName: c.FormValue("firstName"),
		LastName:  c.FormValue("lastName"),
		Email:     c.FormValue("email"),
		Phone:     c.FormValue("phone"),
		Address:   c.FormValue("address"),
		City:      c.FormValue("city"),
		State:     c.FormValue("state"),
		ZipCode:   c.FormValue("zipCode"),
		Country:   c.FormValue("country"),
	}

	o, err := h.Orders.Place(ct.OrderItems(), ct.CheckoutTotal(), info)
	if err != nil {
		applog.Error(c, "checkout.place", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Failed to place order. Please try again."})
	}

	clearCart(c)
	applog.Audit(c, "checkout.place", map[string]any{"order_id": o.ID, "total": o.Total})
	// The cart cookie was just expired; the response renders with an
	// empty cart regardless of what the request carried.
	return render(c, "order_success", fiber.Map{"Order": o, "CartCount": 0})
}
