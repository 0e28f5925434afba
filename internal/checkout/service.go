// Package checkout orchestrates the cart-to-order transition and owns
// the total arithmetic the store takes on trust.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarquez/shopcore-backend/internal/store"
	"github.com/rmarquez/shopcore-backend/pkg/enums"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
	"github.com/rmarquez/shopcore-backend/pkg/money"
)

type Service struct {
	store *store.Store
	delay time.Duration
}

// NewService builds the checkout service. delay is the simulated payment
// processing pause applied before the order is committed.
func NewService(st *store.Store, delay time.Duration) (*Service, error) {
	if st == nil {
		return nil, fmt.Errorf("store required")
	}
	if delay < 0 {
		delay = 0
	}
	return &Service{store: st, delay: delay}, nil
}

// Quote is the priced view of the current cart. The same arithmetic
// produces order totals, so preview and checkout can never disagree.
type Quote struct {
	Items    []store.CartItem `json:"items"`
	Subtotal decimal.Decimal  `json:"subtotal"`
	Tax      decimal.Decimal  `json:"tax"`
	Total    decimal.Decimal  `json:"total"`
}

func (s *Service) Quote(ctx context.Context) Quote {
	items := s.store.Cart()

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(money.Line(item.Product.Price, item.Quantity))
	}
	totals := money.Itemize(subtotal)

	return Quote{
		Items:    items,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}
}

// PlaceOrder turns the current cart into a pending order for the
// signed-in user and clears the cart. There is no rollback once the
// order is committed. Requires an active session and a non-empty cart.
func (s *Service) PlaceOrder(ctx context.Context) (store.Order, error) {
	session := s.store.Session()
	if session == nil {
		return store.Order{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required to check out")
	}

	quote := s.Quote(ctx)
	if len(quote.Items) == 0 {
		return store.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return store.Order{}, pkgerrors.Wrap(pkgerrors.CodeInternal, ctx.Err(), "checkout interrupted")
		case <-timer.C:
		}
	}

	order := s.store.CreateOrder(store.OrderInput{
		UserID:    session.ID,
		UserName:  session.Name,
		UserEmail: session.Email,
		Items:     quote.Items,
		Total:     quote.Total,
		Status:    enums.OrderStatusPending,
	})
	s.store.ClearCart()

	return order, nil
}
