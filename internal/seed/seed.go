// Package seed holds the demo fixtures the process boots from: a fixed
// six-product catalog, three accounts and three historical orders. The
// order totals are carried verbatim from the fixtures; the store never
// re-derives a total.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/rmarquez/shopcore-backend/internal/store"
	"github.com/rmarquez/shopcore-backend/pkg/enums"
)

// Apply validates the fixtures and loads them into the store. The cart
// starts empty and no session is active.
func Apply(s *store.Store) error {
	products := Products()
	users := Users()
	orders := Orders()

	if err := validate(products, users, orders); err != nil {
		return fmt.Errorf("seed fixtures invalid: %w", err)
	}

	s.Load(products, users, orders)
	return nil
}

// Products returns the fixed demo catalog.
func Products() []store.Product {
	return []store.Product{
		{
			ID:          "product-1",
			Name:        "Razer Kraken X Lite Essential Wired Gaming Headset",
			Description: "Wired gaming headset with custom-tuned 40 mm drivers, 7.1 surround sound capability, and a lightweight build",
			Price:       price("1995.00"),
			Image:       "https://images.unsplash.com/photo-1592375601764-5dd6be536f99",
			Category:    "Audio",
			Stock:       11,
			KeyFeatures: []string{
				"Connection: Wired, 3.5mm jack",
				"Headphone Drivers: 40 mm, with Neodymium magnets",
				"Headphone Frequency Response: 12 Hz - 28 kHz",
				"Weight: Approximately 230 g",
				"Microphone: Bendable cardioid (unidirectional) ECM boom mic",
			},
			CreatedAt: mustTime("2026-01-15T10:00:00Z"),
		},
		{
			ID:          "product-2",
			Name:        "Apple Watch SE 3",
			Description: "S10 chip, 18-hour battery (up to 32h in low power mode), heart rate/sleep tracking, 50m water resistance, GPS, and a bright Retina display",
			Price:       price("1599.00"),
			Image:       "https://images.unsplash.com/photo-1579586337278-3befd40fd17a",
			Category:    "Wearables",
			Stock:       0,
			KeyFeatures: []string{
				"Display: Always-On LTPO OLED Retina display (up to 1,000 nits)",
				"Health & Safety: Temperature sensing, Vitals app, Fall Detection, and Crash Detection",
				"Connectivity: GPS or GPS + 5G Cellular options, Wi-Fi 4, and Bluetooth 5.3",
				"Battery & Charging: Up to 18-hour battery life with faster charging (0-80% in about 45 minutes)",
			},
			CreatedAt: mustTime("2026-01-20T10:00:00Z"),
		},
		{
			ID:          "product-3",
			Name:        "ASUS ZenBook Duo 14",
			Description: "The secondary touchscreen works seamlessly with the main 14 inch Full HD touchscreen, giving you endless ways to optimize and personalize your workflow",
			Price:       price("116550.00"),
			Image:       "https://images.unsplash.com/photo-1630794180018-433d915c34ac",
			Category:    "Computers",
			Stock:       18,
			KeyFeatures: []string{
				"Processor: Intel Core i7",
				"Processor speed: 2.9 GHz (up to 4.7 GHz with Turbo Boost)",
				"OS: Windows 11 Pro",
				"RAM: 16 GB",
				"Screen size: 14 in (35.6 cm)",
				"Weight: 3.57 lb (1.62 kg)",
			},
			CreatedAt: mustTime("2026-01-10T10:00:00Z"),
		},
		{
			ID:          "product-4",
			Name:        "Iphone 17 Pro Max",
			Description: "Latest flagship smartphone with 5G and triple camera system",
			Price:       price("86990.00"),
			Image:       "https://images.unsplash.com/photo-1759588071781-2c3ba9128497",
			Category:    "Mobile",
			Stock:       56,
			KeyFeatures: []string{
				"5G connectivity",
				"Triple camera system (48MP main)",
				"6.7\" AMOLED display",
				"128GB storage",
				"All-day battery life",
			},
			CreatedAt: mustTime("2026-01-25T10:00:00Z"),
		},
		{
			ID:          "product-5",
			Name:        "Canon Eos R5",
			Description: "High-performance 45MP full-frame mirrorless camera with advanced autofocus and 8K video capabilities",
			Price:       price("157000.00"),
			Image:       "https://images.unsplash.com/photo-1648781329670-5f00c1b37404",
			Category:    "Cameras",
			Stock:       12,
			KeyFeatures: []string{
				"Sensor: 45MP Full-Frame CMOS Sensor",
				"Image Processor: DIGIC X",
				"Video Recording: 8K up to 30fps, 4K up to 120fps",
				"Autofocus: Dual Pixel CMOS AF II with eye/animal detection",
				"ISO Range: 100-51,200 (expandable to 102,400)",
			},
			CreatedAt: mustTime("2026-01-05T10:00:00Z"),
		},
		{
			ID:          "product-6",
			Name:        "Razer Viper Ultimate Cyberpunk 2077 Edition",
			Description: "Wireless gaming mouse featuring a 20,000 DPI Focus+ optical sensor, HyperSpeed wireless technology, and a 74g lightweight ambidextrous design",
			Price:       price("12880.00"),
			Image:       "https://images.unsplash.com/photo-1632160871990-be30194885aa",
			Category:    "Mouse",
			Stock:       0,
			KeyFeatures: []string{
				"Sensor: Focus+ 20K DPI Optical Sensor (99.6% resolution accuracy)",
				"Connectivity: Razer HyperSpeed Wireless (low latency, 2.4GHz)",
				"Weight: 74g (lightweight)",
				"Battery Life: Up to 70 hours",
				"Switches: Optical Mouse Switches (rated for 70M clicks)",
			},
			CreatedAt: mustTime("2026-01-30T10:00:00Z"),
		},
	}
}

// Users returns the demo accounts. Jane deliberately carries no
// password, so that account can never log in.
func Users() []store.User {
	return []store.User{
		{
			ID:        "user-1",
			Email:     "seller@store.com",
			Name:      "Store Seller",
			Password:  strPtr("seller123"),
			Role:      enums.RoleSeller,
			CreatedAt: mustTime("2026-01-01T00:00:00Z"),
		},
		{
			ID:        "user-2",
			Email:     "john.doe@example.com",
			Name:      "John Doe",
			Password:  strPtr("customer123"),
			Role:      enums.RoleCustomer,
			CreatedAt: mustTime("2026-01-15T08:30:00Z"),
		},
		{
			ID:        "user-3",
			Email:     "jane.smith@example.com",
			Name:      "Jane Smith",
			Role:      enums.RoleCustomer,
			CreatedAt: mustTime("2026-01-20T14:20:00Z"),
		},
	}
}

// Orders returns the pre-existing order history, most recent first. The
// items snapshot the seed catalog as it stood at order time.
func Orders() []store.Order {
	catalog := Products()
	return []store.Order{
		{
			ID:        "order-3",
			UserID:    "user-2",
			UserName:  "John Doe",
			UserEmail: "john.doe@example.com",
			Items: []store.CartItem{
				{Product: catalog[3], Quantity: 1},
				{Product: catalog[5], Quantity: 1},
			},
			Total:     price("1549.98"),
			Status:    enums.OrderStatusProcessing,
			CreatedAt: mustTime("2026-02-05T11:45:00Z"),
			UpdatedAt: mustTime("2026-02-05T11:45:00Z"),
		},
		{
			ID:        "order-2",
			UserID:    "user-3",
			UserName:  "Jane Smith",
			UserEmail: "jane.smith@example.com",
			Items: []store.CartItem{
				{Product: catalog[2], Quantity: 1},
			},
			Total:     price("1299.99"),
			Status:    enums.OrderStatusShipped,
			CreatedAt: mustTime("2026-02-03T14:20:00Z"),
			UpdatedAt: mustTime("2026-02-04T09:00:00Z"),
		},
		{
			ID:        "order-1",
			UserID:    "user-2",
			UserName:  "John Doe",
			UserEmail: "john.doe@example.com",
			Items: []store.CartItem{
				{Product: catalog[0], Quantity: 1},
				{Product: catalog[1], Quantity: 2},
			},
			Total:     price("1099.97"),
			Status:    enums.OrderStatusDelivered,
			CreatedAt: mustTime("2026-02-01T10:00:00Z"),
			UpdatedAt: mustTime("2026-02-05T15:30:00Z"),
		},
	}
}

func validate(products []store.Product, users []store.User, orders []store.Order) error {
	var errs []error

	productIDs := map[string]bool{}
	for _, p := range products {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("product %q: missing id", p.Name))
			continue
		}
		if productIDs[p.ID] {
			errs = append(errs, fmt.Errorf("product %s: duplicate id", p.ID))
		}
		productIDs[p.ID] = true
		if p.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("product %s: negative price", p.ID))
		}
		if p.Stock < 0 {
			errs = append(errs, fmt.Errorf("product %s: negative stock", p.ID))
		}
	}

	userIDs := map[string]bool{}
	for _, u := range users {
		if u.ID == "" || u.Email == "" {
			errs = append(errs, fmt.Errorf("user %q: missing id or email", u.Name))
			continue
		}
		if userIDs[u.ID] {
			errs = append(errs, fmt.Errorf("user %s: duplicate id", u.ID))
		}
		userIDs[u.ID] = true
		if !u.Role.IsValid() {
			errs = append(errs, fmt.Errorf("user %s: invalid role %q", u.ID, u.Role))
		}
	}

	orderIDs := map[string]bool{}
	for _, o := range orders {
		if o.ID == "" {
			errs = append(errs, fmt.Errorf("order for %s: missing id", o.UserEmail))
			continue
		}
		if orderIDs[o.ID] {
			errs = append(errs, fmt.Errorf("order %s: duplicate id", o.ID))
		}
		orderIDs[o.ID] = true
		if len(o.Items) == 0 {
			errs = append(errs, fmt.Errorf("order %s: no items", o.ID))
		}
		if !o.Status.IsValid() {
			errs = append(errs, fmt.Errorf("order %s: invalid status %q", o.ID, o.Status))
		}
		if !userIDs[o.UserID] {
			errs = append(errs, fmt.Errorf("order %s: unknown user %s", o.ID, o.UserID))
		}
	}

	return multierr.Combine(errs...)
}

func price(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func strPtr(v string) *string {
	return &v
}

func mustTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		panic(err)
	}
	return t
}
