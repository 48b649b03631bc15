package store

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DevZuhaib/luxe3d-api/models"
	"github.com/DevZuhaib/luxe3d-api/storage"
)

// AllCategoriesSentinel is the filter value that selects the whole catalog.
const AllCategoriesSentinel = "All"

// Products returns a copy of the catalog.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

// ProductByID looks up one catalog entry.
func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findProduct(id)
}

// findProduct requires the caller to hold the lock.
func (s *Store) findProduct(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ProductsByCategory restricts the catalog to one category. The "All"
// sentinel returns the whole catalog; an unknown category returns an
// empty slice.
func (s *Store) ProductsByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if category == AllCategoriesSentinel {
		return append([]models.Product(nil), s.products...)
	}
	out := []models.Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories is the fixed reference list plus any distinct categories
// present on live products, de-duplicated with insertion order kept.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool, len(models.AllCategories))
	out := make([]string, 0, len(models.AllCategories))
	for _, c := range models.AllCategories {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// AddProduct assigns a fresh time-based id to the draft and appends it
// to the catalog.
func (s *Store) AddProduct(draft models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	s.products = append(s.products, draft)
	s.persist(storage.KeyProducts, s.products)
	s.notify.Emit("New Asset Initialized", NoticeSuccess)
	return draft
}

// UpdateProduct replaces the catalog entry with a matching id.
func (s *Store) UpdateProduct(product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == product.ID {
			s.products[i] = product
			s.persist(storage.KeyProducts, s.products)
			s.notify.Emit("Asset DB Updated", NoticeSuccess)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteProduct removes the catalog entry with a matching id. Existing
// cart entries pointing at it are NOT pruned; checkout rejects them.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(storage.KeyProducts, s.products)
			// Delete deliberately emits an error-styled toast so the
			// console renders it as a destructive action.
			s.notify.Emit("Asset Purged", NoticeError)
			logrus.WithField("product_id", id).Info("product removed from catalog")
			return nil
		}
	}
	return ErrNotFound
}
