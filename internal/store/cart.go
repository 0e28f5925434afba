package store

// AddToCart merges the quantity into an existing entry for the same
// product id, or appends a new entry holding a snapshot of the product.
// The store trusts the caller-supplied quantity; stock gating is the
// presentation layer's concern.
func (s *Store) AddToCart(product Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Product.ID == product.ID {
			s.cart[i].Quantity += quantity
			return
		}
	}
	s.cart = append(s.cart, CartItem{Product: product.clone(), Quantity: quantity})
}

// RemoveFromCart drops the matching entry and reports whether one existed.
func (s *Store) RemoveFromCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeFromCartLocked(productID)
}

// UpdateCartQuantity replaces the entry's quantity. A quantity of zero or
// below removes the entry instead.
func (s *Store) UpdateCartQuantity(productID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeFromCartLocked(productID)
	}
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			return true
		}
	}
	return false
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// Cart returns a snapshot of the cart contents.
func (s *Store) Cart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.cart)
}

func (s *Store) removeFromCartLocked(productID string) bool {
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return true
		}
	}
	return false
}
