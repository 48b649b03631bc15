package store

import "github.com/DevZuhaib/luxe3d-api/models"

// Cart returns a copy of the active cart.
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartItem(nil), s.cart...)
}

// CartCount returns the total quantity across all cart entries.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.cart {
		total += item.Quantity
	}
	return total
}

// AddToCart increments the entry for productID, or appends a fresh
// entry with quantity one. The id is not checked against the catalog
// and stock is not consulted.
func (s *Store) AddToCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.cart {
		if item.ProductID == productID {
			s.cart[i].Quantity++
			s.notify.Emit("Added to cart!", NoticeSuccess)
			return
		}
	}
	s.cart = append(s.cart, models.CartItem{ProductID: productID, Quantity: 1})
	s.notify.Emit("Added to cart!", NoticeSuccess)
}

// RemoveFromCart drops every entry matching productID. No-op when the
// product is not in the cart.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
}

// ClearCart empties the cart without placing an order.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}
