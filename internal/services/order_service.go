package services

import (
	"shopmart/internal/domain"
	"shopmart/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// Place stores the order exactly as submitted. The total is the
// client-computed figure and is trusted as-is; no recomputation from the
// items and no stock decrement happen here.
func (s *OrderService) Place(items []domain.OrderItem, total float64, info domain.CustomerInfo) (domain.Order, error) {
	return s.Orders.Create(items, total, info)
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.Orders.List()
}
