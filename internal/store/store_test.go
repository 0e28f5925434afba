package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarquez/shopcore-backend/pkg/enums"
)

type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestStore(clock *testClock) *Store {
	if clock == nil {
		clock = newTestClock()
	}
	seq := 0
	return New(
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
}

func price(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func headsetInput() ProductInput {
	return ProductInput{
		Name:        "Wired Gaming Headset",
		Description: "40mm drivers, detachable mic",
		Price:       price("1995.00"),
		Image:       "https://img.example/headset.jpg",
		Category:    "Audio",
		Stock:       11,
		KeyFeatures: []string{"3.5mm jack", "230g"},
	}
}

func watchInput() ProductInput {
	return ProductInput{
		Name:     "Smart Watch SE",
		Price:    price("1599.00"),
		Image:    "https://img.example/watch.jpg",
		Category: "Wearables",
		Stock:    0,
	}
}

func strPtr(v string) *string {
	return &v
}

func seededUsers() []UserInput {
	return []UserInput{
		{Email: "seller@store.com", Name: "Store Seller", Password: strPtr("seller123"), Role: enums.RoleSeller},
		{Email: "john.doe@example.com", Name: "John Doe", Password: strPtr("customer123"), Role: enums.RoleCustomer},
		{Email: "jane.smith@example.com", Name: "Jane Smith", Role: enums.RoleCustomer},
	}
}
