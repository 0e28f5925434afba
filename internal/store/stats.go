package store

import (
	"github.com/shopspring/decimal"

	"github.com/rmarquez/shopcore-backend/pkg/enums"
)

// Stats folds the live collections into dashboard numbers. Never cached,
// so the result is always consistent with the snapshot at read time; an
// empty store yields zeros.
func (s *Store) Stats() DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	revenue := decimal.Zero
	for _, o := range s.orders {
		revenue = revenue.Add(o.Total)
	}

	customers := 0
	for _, u := range s.users {
		if u.Role == enums.RoleCustomer {
			customers++
		}
	}

	return DashboardStats{
		TotalRevenue:  revenue,
		TotalOrders:   len(s.orders),
		TotalProducts: len(s.products),
		TotalUsers:    customers,
	}
}
