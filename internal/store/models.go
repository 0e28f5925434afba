package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarquez/shopcore-backend/pkg/enums"
)

// Product is a catalog entry. IDs are unique across the collection.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	KeyFeatures []string        `json:"keyFeatures,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (p Product) clone() Product {
	out := p
	if p.KeyFeatures != nil {
		out.KeyFeatures = append([]string(nil), p.KeyFeatures...)
	}
	return out
}

// CartItem pairs a product snapshot with a requested quantity. The
// snapshot is captured when the item enters the cart, so later catalog
// edits do not reach it.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (c CartItem) clone() CartItem {
	return CartItem{Product: c.Product.clone(), Quantity: c.Quantity}
}

// User is an account record. Password is the plaintext demo credential;
// a nil password means the account can never authenticate.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Password  *string    `json:"-"`
	Role      enums.Role `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (u User) clone() User {
	out := u
	if u.Password != nil {
		pw := *u.Password
		out.Password = &pw
	}
	return out
}

// Order is an immutable-once-placed checkout record. The purchaser
// fields and item snapshots are denormalized at order time; Total is
// supplied by the caller and never re-derived here.
type Order struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	UserName  string            `json:"userName"`
	UserEmail string            `json:"userEmail"`
	Items     []CartItem        `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	Status    enums.OrderStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (o Order) clone() Order {
	out := o
	out.Items = cloneItems(o.Items)
	return out
}

// DashboardStats is derived from the live collections on every read.
type DashboardStats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	TotalProducts int             `json:"totalProducts"`
	TotalUsers    int             `json:"totalUsers"`
}

func cloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = item.clone()
	}
	return out
}
