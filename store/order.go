package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/DevZuhaib/luxe3d-api/models"
	"github.com/DevZuhaib/luxe3d-api/storage"
)

// PlaceOrder checks out the active cart with a manual payment
// reference. The order is stamped with userID, the authenticated
// caller; an empty id means nobody is logged in. Item snapshots are
// taken from the live catalog at call time; if any cart entry
// references a product that has left the catalog the whole order is
// rejected rather than silently skipped. The total is the sum of
// snapshot price x quantity, the ledger is prepended (most recent
// first), the cart is cleared and the client is pointed at the profile
// view. Stock counts are deliberately left untouched.
func (s *Store) PlaceOrder(userID string, method models.PaymentMethod, reference string) (models.Order, models.AppView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID == "" {
		return models.Order{}, "", ErrNotLoggedIn
	}
	if strings.TrimSpace(reference) == "" {
		return models.Order{}, "", ErrMissingReference
	}
	if len(s.cart) == 0 {
		return models.Order{}, "", ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(s.cart))
	var total float64
	for _, entry := range s.cart {
		product, ok := s.findProduct(entry.ProductID)
		if !ok {
			return models.Order{}, "", ErrProductGone
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  entry.Quantity,
			Price:     product.Price,
			Name:      product.Name,
		})
		total += product.Price * float64(entry.Quantity)
	}

	order := models.Order{
		ID:               "ORD-" + strings.ToUpper(uuid.NewString()[:6]),
		UserID:           userID,
		Items:            items,
		Total:            total,
		Status:           models.OrderStatusProcessing,
		PaymentMethod:    method,
		PaymentReference: reference,
		CreatedAt:        now(),
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.persist(storage.KeyOrders, s.orders)
	s.cart = nil
	s.notify.Emit("Order placed, awaiting verification", NoticeSuccess)
	logrus.WithFields(logrus.Fields{"order_id": order.ID, "total": order.Total}).Info("order placed")
	return order, models.ViewProfile, nil
}

// ApproveOrder marks the matching order completed. The transition is
// unconditional; there is no check that the order was still processing.
func (s *Store) ApproveOrder(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == orderID {
			s.orders[i].Status = models.OrderStatusCompleted
			s.persist(storage.KeyOrders, s.orders)
			s.notify.Emit("Transaction Settlement Verified", NoticeSuccess)
			return nil
		}
	}
	return ErrNotFound
}

// Orders returns the full ledger, most recent first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

// OrdersByUser returns the ledger restricted to one user, preserving
// most-recent-first order.
func (s *Store) OrdersByUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
