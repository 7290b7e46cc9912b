package handlers

import (
	"github.com/jmoiron/sqlx"

	"shopmart/internal/repos"
	"shopmart/internal/services"
)

type Deps struct {
	ProductAPI  *ProductAPI
	OrderAPI    *OrderAPI
	CategoryAPI *CategoryAPI

	HomeHandler     *HomeHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	orderSvc := services.NewOrderService(orderRepo)

	return &Deps{
		ProductAPI:  &ProductAPI{Catalog: catalogSvc},
		OrderAPI:    &OrderAPI{Orders: orderSvc},
		CategoryAPI: &CategoryAPI{Catalog: catalogSvc},

		HomeHandler:     &HomeHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Catalog: catalogSvc},
		CheckoutHandler: &CheckoutHandler{Orders: orderSvc},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc},
	}
}
