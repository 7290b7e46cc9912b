package handlers

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"shopmart/internal/cart"
)

const (
	cartCookie  = "cart"
	flashCookie = "flash"
)

// currentCart rehydrates the cart from its cookie. A missing or corrupt
// cookie yields an empty cart.
func currentCart(c *fiber.Ctx) *cart.Cart {
	return cart.Decode(c.Cookies(cartCookie))
}

func saveCart(c *fiber.Ctx, ct *cart.Cart) {
	c.Cookie(&fiber.Cookie{
		Name:     cartCookie,
		Value:    ct.Encode(),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearCart(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     cartCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
}

// setFlash queues a one-shot message shown on the next rendered page,
// separate from the cart state itself.
func setFlash(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HTTPOnly: true,
	})
}

func popFlash(c *fiber.Ctx) string {
	v := c.Cookies(flashCookie)
	if v == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	msg, err := url.QueryUnescape(v)
	if err != nil {
		return ""
	}
	return msg
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["CartCount"]; !ok {
		data["CartCount"] = currentCart(c).ItemCount()
	}
	if msg := popFlash(c); msg != "" {
		data["Flash"] = msg
	}
	return c.Render(tmpl, data)
}
