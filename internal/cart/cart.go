// Package cart implements the client-held shopping cart: a pure state
// machine over {product, quantity} entries plus a codec for stashing the
// whole state in a browser cookie between requests.
package cart

import (
	"encoding/base64"
	"encoding/json"

	"shopmart/internal/domain"
)

const (
	freeShippingOver = 50.0
	flatShipping     = 5.99
	taxRate          = 0.08
)

// Item is a product snapshot plus the desired quantity.
type Item struct {
	domain.Product
	Quantity int `json:"quantity"`
}

// LineTotal is the extended price for this entry.
func (i Item) LineTotal() float64 { return i.Price * float64(i.Quantity) }

// Cart holds at most one Item per product id, in insertion order.
type Cart struct {
	items []Item
}

func New() *Cart { return &Cart{} }

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add inserts the product, or increments the quantity of an existing entry.
func (c *Cart) Add(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity += qty
		return
	}
	c.items = append(c.items, Item{Product: p, Quantity: qty})
}

// SetQuantity overwrites an entry's quantity; zero or less removes it.
func (c *Cart) SetQuantity(id string, qty int) {
	if qty <= 0 {
		c.Remove(id)
		return
	}
	if i := c.indexOf(id); i >= 0 {
		c.items[i].Quantity = qty
	}
}

// Remove deletes the entry if present; absent ids are a no-op.
func (c *Cart) Remove(id string) {
	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

func (c *Cart) Clear() { c.items = nil }

// Items returns the entries in insertion order.
func (c *Cart) Items() []Item { return c.items }

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() float64 {
	sum := 0.0
	for _, it := range c.items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func (c *Cart) Shipping() float64 {
	if c.Subtotal() > freeShippingOver {
		return 0
	}
	return flatShipping
}

// Tax applies at checkout only.
func (c *Cart) Tax() float64 { return c.Subtotal() * taxRate }

// Total is the cart-page total: subtotal plus shipping.
func (c *Cart) Total() float64 { return c.Subtotal() + c.Shipping() }

// CheckoutTotal adds tax on top of the cart total.
func (c *Cart) CheckoutTotal() float64 { return c.Subtotal() + c.Shipping() + c.Tax() }

// OrderItems converts the cart into order line items.
func (c *Cart) OrderItems() []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, domain.OrderItem{Product: it.Product, Quantity: it.Quantity})
	}
	return out
}

// Encode serializes the cart for cookie transport.
func (c *Cart) Encode() string {
	items := c.items
	if items == nil {
		items = []Item{}
	}
	b, _ := json.Marshal(items)
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode rebuilds a cart from its encoded form. Missing or corrupt input
// yields an empty cart; no error surfaces.
func Decode(s string) *Cart {
	if s == "" {
		return New()
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return New()
	}
	var items []Item
	if err := json.Unmarshal(b, &items); err != nil {
		return New()
	}
	return &Cart{items: items}
}
