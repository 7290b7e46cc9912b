package handlers

import "github.com/gofiber/fiber/v2"

// Register mounts every app route; main and the tests share this table.
func Register(app *fiber.App, deps *Deps) {
	// Storefront pages
	app.Get("/", deps.HomeHandler.Home)
	app.Get("/product/:id", deps.ProductHandler.Detail)

	// Cart
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)

	// Checkout
	app.Get("/checkout", deps.CheckoutHandler.Form)
	app.Post("/checkout", deps.CheckoutHandler.Place)

	// Admin
	app.Get("/admin", deps.AdminHandler.Dashboard)
	app.Post("/admin/products", deps.AdminHandler.Create)
	app.Post("/admin/products/:id", deps.AdminHandler.Update)
	app.Post("/admin/products/:id/delete", deps.AdminHandler.Delete)

	// REST API
	api := app.Group("/api")
	api.Get("/products", deps.ProductAPI.List)
	api.Post("/products", deps.ProductAPI.Create)
	api.Get("/products/:id", deps.ProductAPI.Get)
	api.Put("/products/:id", deps.ProductAPI.Update)
	api.Delete("/products/:id", deps.ProductAPI.Delete)
	api.Post("/orders", deps.OrderAPI.Create)
	api.Get("/orders", deps.OrderAPI.List)
	api.Get("/categories", deps.CategoryAPI.List)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
}
