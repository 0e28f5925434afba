package store

import (
	"github.com/shopspring/decimal"

	"github.com/rmarquez/shopcore-backend/pkg/enums"
)

// OrderInput carries the caller-supplied fields for a new order. Total is
// taken as given: the checkout flow owns the arithmetic, the store does
// not re-derive it. Items are expected to be non-empty by the same caller
// contract.
type OrderInput struct {
	UserID    string
	UserName  string
	UserEmail string
	Items     []CartItem
	Total     decimal.Decimal
	Status    enums.OrderStatus
}

// CreateOrder assigns a fresh id and timestamps and prepends the order;
// the collection is kept most-recent-first.
func (s *Store) CreateOrder(in OrderInput) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	order := Order{
		ID:        s.newID(),
		UserID:    in.UserID,
		UserName:  in.UserName,
		UserEmail: in.UserEmail,
		Items:     cloneItems(in.Items),
		Total:     in.Total,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.orders = append([]Order{order}, s.orders...)
	return order.clone()
}

// UpdateOrderStatus overwrites the status and refreshes UpdatedAt,
// reporting whether a match was found. Any status may follow any other.
func (s *Store) UpdateOrderStatus(orderID string, status enums.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = s.now()
			return true
		}
	}
	return false
}

// Orders returns a snapshot of the order history, most recent first.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.clone()
	}
	return out
}

// Order returns a snapshot of one order.
func (s *Store) Order(id string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o.clone(), true
		}
	}
	return Order{}, false
}

// OrdersForUser returns the snapshot filtered to one purchaser,
// preserving the most-recent-first ordering.
func (s *Store) OrdersForUser(userID string) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o.clone())
		}
	}
	return out
}
