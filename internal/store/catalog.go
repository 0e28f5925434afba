package store

import "github.com/shopspring/decimal"

// ProductInput carries the caller-supplied fields for a new product.
// The store performs no field validation; that belongs to the caller.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
	Stock       int
	KeyFeatures []string
}

// ProductPatch carries a partial overwrite; nil fields are left as-is.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Image       *string
	Category    *string
	Stock       *int
	KeyFeatures *[]string
}

// AddProduct assigns a fresh id and timestamp and appends the product.
func (s *Store) AddProduct(in ProductInput) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Stock:       in.Stock,
		KeyFeatures: append([]string(nil), in.KeyFeatures...),
		CreatedAt:   s.now(),
	}
	s.products = append(s.products, product)
	return product.clone()
}

// UpdateProduct merges the patch onto the matching product and reports
// whether a match was found.
func (s *Store) UpdateProduct(id string, patch ProductPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.KeyFeatures != nil {
			p.KeyFeatures = append([]string(nil), (*patch.KeyFeatures)...)
		}
		return true
	}
	return false
}

// DeleteProduct removes the matching product. Cart entries and order
// history hold snapshots, so they are deliberately untouched.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// Products returns a snapshot of the catalog.
func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.clone()
	}
	return out
}

// Product returns a snapshot of one catalog entry.
func (s *Store) Product(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Product{}, false
}
