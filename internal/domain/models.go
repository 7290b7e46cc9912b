package domain

import "time"

type Product struct {
	ID            string  `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Price         float64 `db:"price" json:"price"`
	OriginalPrice float64 `db:"original_price" json:"originalPrice"`
	Discount      int     `db:"discount" json:"discount"` // percent, informational
	Rating        float64 `db:"rating" json:"rating"`
	Reviews       int     `db:"reviews" json:"reviews"`
	Image         string  `db:"image" json:"image"`
	Category      string  `db:"category" json:"category"`
	Description   string  `db:"description" json:"description"`
	Stock         int     `db:"stock" json:"stock"`
	Sold          int     `db:"sold" json:"sold"`
}

// OrderItem is a snapshot of the product at submission time plus the
// purchased quantity.
type OrderItem struct {
	Product
	Quantity int `db:"quantity" json:"quantity"`
}

type CustomerInfo struct {
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	Address   string `db:"address" json:"address"`
	City      string `db:"city" json:"city"`
	State     string `db:"state" json:"state"`
	ZipCode   string `db:"zip_code" json:"zipCode"`
	Country   string `db:"country" json:"country"`
}

type Order struct {
	ID           string       `json:"id"`
	Items        []OrderItem  `json:"items"`
	Total        float64      `json:"total"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

const OrderStatusPending = "pending"
