package store

import (
	"testing"
	"time"

	"github.com/rmarquez/shopcore-backend/pkg/enums"
)

func testOrderInput(s *Store) OrderInput {
	p := s.AddProduct(headsetInput())
	return OrderInput{
		UserID:    "user-2",
		UserName:  "John Doe",
		UserEmail: "john.doe@example.com",
		Items:     []CartItem{{Product: p, Quantity: 2}},
		Total:     price("4468.80"),
		Status:    enums.OrderStatusPending,
	}
}

func TestCreateOrderRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(nil)
	in := testOrderInput(s)

	created := s.CreateOrder(in)

	orders := s.Orders()
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	got := orders[0]

	if got.ID != created.ID {
		t.Fatalf("id mismatch: %s vs %s", got.ID, created.ID)
	}
	if got.Status != in.Status {
		t.Fatalf("status mismatch: %s", got.Status)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt, got %s / %s", got.CreatedAt, got.UpdatedAt)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("items not preserved: %+v", got.Items)
	}
	if got.Items[0].Product.Name != in.Items[0].Product.Name {
		t.Fatalf("product snapshot not preserved: %+v", got.Items[0].Product)
	}
	if !got.Total.Equal(in.Total) {
		t.Fatalf("total mismatch: %s", got.Total)
	}
}

func TestOrdersAreMostRecentFirst(t *testing.T) {
	t.Parallel()

	s := newTestStore(nil)
	first := s.CreateOrder(testOrderInput(s))
	second := s.CreateOrder(testOrderInput(s))

	orders := s.Orders()
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", orders[0].ID, orders[1].ID)
	}
}

func TestUpdateOrderStatusRefreshesUpdatedAt(t *testing.T) {
	t.Parallel()

	clock := newTestClock()
	s := newTestStore(clock)
	order := s.CreateOrder(testOrderInput(s))

	clock.Advance(48 * time.Hour)
	if !s.UpdateOrderStatus(order.ID, enums.OrderStatusShipped) {
		t.Fatal("expected match")
	}

	got := s.Orders()[0]
	if got.Status != enums.OrderStatusShipped {
		t.Fatalf("status not applied: %s", got.Status)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("updatedAt not refreshed: %s / %s", got.UpdatedAt, got.CreatedAt)
	}
}

func TestUpdateOrderStatusAllowsAnyTransition(t *testing.T) {
	t.Parallel()

	s := newTestStore(nil)
	order := s.CreateOrder(testOrderInput(s))

	s.UpdateOrderStatus(order.ID, enums.OrderStatusDelivered)
	if !s.UpdateOrderStatus(order.ID, enums.OrderStatusPending) {
		t.Fatal("delivered -> pending should be permitted")
	}
}

func TestUpdateOrderStatusMissingID(t *testing.T) {
	t.Parallel()

	s := newTestStore(nil)
	if s.UpdateOrderStatus("nope", enums.OrderStatusShipped) {
		t.Fatal("expected no match")
	}
}

func TestOrderItemsSurviveProductDeletion(t *testing.T) {
	t.Parallel()

	s := newTestStore(nil)
	in := testOrderInput(s)
	s.CreateOrder(in)

	if !s.DeleteProduct(in.Items[0].Product.ID) {
		t.Fatal("expected product delete to match")
	}

	got := s.Orders()[0]
	if len(got.Items) != 1 {
		t.Fatalf("order items altered by catalog delete: %+v", got.Items)
	}
	if !got.Items[0].Product.Price.Equal(price("1995.00")) {
		t.Fatalf("order snapshot altered: %s", got.Items[0].Product.Price)
	}
}

func TestOrdersForUserFilters(t *testing.T) {
	t.Parallel()

	s := newTestStore(nil)
	mine := testOrderInput(s)
	other := testOrderInput(s)
	other.UserID = "user-3"

	s.CreateOrder(mine)
	s.CreateOrder(other)

	got := s.OrdersForUser("user-2")
	if len(got) != 1 || got[0].UserID != "user-2" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}
