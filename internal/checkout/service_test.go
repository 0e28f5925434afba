package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarquez/shopcore-backend/internal/seed"
	"github.com/rmarquez/shopcore-backend/internal/store"
	"github.com/rmarquez/shopcore-backend/pkg/enums"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
)

func seededService(t *testing.T, delay time.Duration) (*Service, *store.Store) {
	t.Helper()
	s := store.New()
	if err := seed.Apply(s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc, err := NewService(s, delay)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, s
}

func dec(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func TestQuoteAppliesTwelvePercentTax(t *testing.T) {
	t.Parallel()

	svc, s := seededService(t, 0)
	headset, _ := s.Product("product-1") // 1995.00
	watch, _ := s.Product("product-2")   // 1599.00

	s.AddToCart(headset, 1)
	s.AddToCart(watch, 2)

	quote := svc.Quote(context.Background())

	wantSubtotal := dec("5193.00")
	if !quote.Subtotal.Equal(wantSubtotal) {
		t.Fatalf("expected subtotal %s, got %s", wantSubtotal, quote.Subtotal)
	}
	if !quote.Tax.Equal(wantSubtotal.Mul(dec("0.12"))) {
		t.Fatalf("unexpected tax %s", quote.Tax)
	}
	if !quote.Total.Equal(quote.Subtotal.Add(quote.Tax)) {
		t.Fatalf("total must equal subtotal + tax, got %s", quote.Total)
	}
}

func TestQuoteEmptyCartIsZero(t *testing.T) {
	t.Parallel()

	svc, _ := seededService(t, 0)
	quote := svc.Quote(context.Background())
	if len(quote.Items) != 0 || !quote.Total.IsZero() {
		t.Fatalf("expected empty zero quote, got %+v", quote)
	}
}

func TestPlaceOrderRequiresSession(t *testing.T) {
	t.Parallel()

	svc, s := seededService(t, 0)
	p, _ := s.Product("product-1")
	s.AddToCart(p, 1)

	_, err := svc.PlaceOrder(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	t.Parallel()

	svc, s := seededService(t, 0)
	s.Login("john.doe@example.com", "customer123")

	_, err := svc.PlaceOrder(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	t.Parallel()

	svc, s := seededService(t, 0)
	s.Login("john.doe@example.com", "customer123")
	p, _ := s.Product("product-1")
	s.AddToCart(p, 2)

	wantTotal := svc.Quote(context.Background()).Total

	order, err := svc.PlaceOrder(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if order.UserEmail != "john.doe@example.com" {
		t.Fatalf("purchaser not captured: %s", order.UserEmail)
	}
	if !order.Total.Equal(wantTotal) {
		t.Fatalf("order total %s differs from quoted %s", order.Total, wantTotal)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("cart not snapshotted: %+v", order.Items)
	}
	if got := len(s.Cart()); got != 0 {
		t.Fatalf("cart must be cleared after checkout, got %d entries", got)
	}
	if s.Orders()[0].ID != order.ID {
		t.Fatal("new order should lead the history")
	}
}

func TestPlaceOrderHonorsContextDuringDelay(t *testing.T) {
	t.Parallel()

	svc, s := seededService(t, 5*time.Second)
	s.Login("john.doe@example.com", "customer123")
	p, _ := s.Product("product-1")
	s.AddToCart(p, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.PlaceOrder(ctx)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if got := len(s.Cart()); got != 1 {
		t.Fatalf("interrupted checkout must leave the cart intact, got %d entries", got)
	}
	if got := len(s.Orders()); got != 3 {
		t.Fatalf("interrupted checkout must not create an order, got %d", got)
	}
}

func TestNewServiceRequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil, 0); err == nil {
		t.Fatal("expected error for nil store")
	}
}
