// Package store is the in-memory state container backing the storefront:
// the product catalog, the cart, order history, user accounts and the
// single active session. One mutex serializes every mutation, so an
// observer never sees a partially updated collection; reads hand out deep
// copies, so catalog edits can never reach into carts or past orders.
//
// Operations follow a no-op-on-missing-id convention: absence is reported
// through a boolean, never through an error.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	products []Product
	cart     []CartItem
	orders   []Order
	users    []User
	session  *User

	now   func() time.Time
	newID func() string
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New builds an empty store. It is constructed once at process start and
// injected into every consumer; state lives for one process run.
func New(opts ...Option) *Store {
	s := &Store{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the catalog, users and order history wholesale. Intended
// for boot-time seeding: the cart starts empty and nobody is logged in.
func (s *Store) Load(products []Product, users []User, orders []Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]Product, len(products))
	for i, p := range products {
		s.products[i] = p.clone()
	}
	s.users = make([]User, len(users))
	for i, u := range users {
		s.users[i] = u.clone()
	}
	s.orders = make([]Order, len(orders))
	for i, o := range orders {
		s.orders[i] = o.clone()
	}
	s.cart = nil
	s.session = nil
}
