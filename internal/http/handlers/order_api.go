package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopmart/internal/domain"
	applog "shopmart/internal/log"
	"shopmart/internal/services"
)

type OrderAPI struct {
	Orders *services.OrderService
}

type orderRequest struct {
	Items        []domain.OrderItem  `json:"items"`
	Total        float64             `json:"total"`
	CustomerInfo domain.CustomerInfo `json:"customerInfo"`
}

// POST /api/orders
//
// The order is stored as submitted: the total comes from the client and is
// not recomputed against the items.
func (h *OrderAPI) Create(c *fiber.Ctx) error {
	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	o, err := h.Orders.Place(req.Items, req.Total, req.CustomerInfo)
	if err != nil {
		applog.Error(c, "api.orders.create", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not create order"})
	}
	applog.Audit(c, "api.orders.create", map[string]any{"id": o.ID, "total": o.Total})
	return c.Status(fiber.StatusCreated).JSON(o)
}

// GET /api/orders
func (h *OrderAPI) List(c *fiber.Ctx) error {
	orders, err := h.Orders.List()
	if err != nil {
		applog.Error(c, "api.orders.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load orders"})
	}
	return c.JSON(orders)
}
