package services_test

import (
	"testing"

	"shopmart/internal/domain"
	"shopmart/internal/repos"
	"shopmart/internal/services"
)

func orderSvc(t *testing.T) *services.OrderService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return services.NewOrderService(repos.NewOrderRepo(db))
}

func twoItemCart() []domain.OrderItem {
	return []domain.OrderItem{
		{Product: domain.Product{ID: "1", Name: "Wireless Bluetooth Headphones", Price: 49.99}, Quantity: 1},
		{Product: domain.Product{ID: "5", Name: "Wireless Mouse", Price: 24.99}, Quantity: 1},
	}
}

func TestPlaceOrderSequentialIDs(t *testing.T) {
	svc := orderSvc(t)

	info := domain.CustomerInfo{FirstName: "Ada", LastName: "L", Email: "ada@example.com"}

	o1, err := svc.Place(twoItemCart(), 65.97, info)
	if err != nil {
		t.Fatal(err)
	}
	if o1.ID != "1" {
		t.Fatalf("want first order id 1, got %q", o1.ID)
	}
	if o1.Status != domain.OrderStatusPending {
		t.Fatalf("want status pending, got %q", o1.Status)
	}
	if o1.CreatedAt.IsZero() {
		t.Fatal("createdAt not stamped")
	}
	if len(o1.Items) != 2 {
		t.Fatalf("items not snapshotted: %+v", o1.Items)
	}

	o2, err := svc.Place(twoItemCart(), 65.97, info)
	if err != nil {
		t.Fatal(err)
	}
	if o2.ID != "2" {
		t.Fatalf("want second order id 2, got %q", o2.ID)
	}
}

// The server trusts the submitted total; it is stored verbatim even when it
// does not match the items.
func TestPlaceOrderTrustsClientTotal(t *testing.T) {
	svc := orderSvc(t)

	o, err := svc.Place(twoItemCart(), 1.23, domain.CustomerInfo{})
	if err != nil {
		t.Fatal(err)
	}
	if o.Total != 1.23 {
		t.Fatalf("total rewritten: %v", o.Total)
	}

	orders, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 || orders[0].Total != 1.23 {
		t.Fatalf("stored order wrong: %+v", orders)
	}
}

func TestListReturnsItemsAndCustomerInfo(t *testing.T) {
	svc := orderSvc(t)

	info := domain.CustomerInfo{
		FirstName: "Grace", LastName: "H", Email: "grace@example.com",
		Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "USA",
	}
	if _, err := svc.Place(twoItemCart(), 65.97, info); err != nil {
		t.Fatal(err)
	}

	orders, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("want 1 order, got %d", len(orders))
	}
	o := orders[0]
	if len(o.Items) != 2 || o.Items[0].ID != "1" || o.Items[1].Quantity != 1 {
		t.Fatalf("items lost on round trip: %+v", o.Items)
	}
	if o.CustomerInfo != info {
		t.Fatalf("customer info lost: %+v", o.CustomerInfo)
	}
	if o.CreatedAt.IsZero() {
		t.Fatal("createdAt lost on round trip")
	}
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	svc := orderSvc(t)

	// accepted as submitted: an empty order is stored with no items
	o, err := svc.Place(nil, 0, domain.CustomerInfo{})
	if err != nil {
		t.Fatal(err)
	}
	if o.Items == nil || len(o.Items) != 0 {
		t.Fatalf("want empty (non-nil) items, got %#v", o.Items)
	}
}
