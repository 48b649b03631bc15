package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DevZuhaib/luxe3d-api/models"
	"github.com/DevZuhaib/luxe3d-api/storage"
)

func TestPlaceOrderTotalAndSnapshot(t *testing.T) {
	s, _ := newTestStore(t)
	user := signupTestUser(t, s)

	catalog := models.Product{Name: "Test Lamp", Price: 100, Category: "Lighting", Quantity: 1}
	added := s.AddProduct(catalog)

	s.AddToCart(added.ID)
	s.AddToCart(added.ID)

	order, view, err := s.PlaceOrder(user.ID, models.PaymentEasyPaisa, "TXN-123")
	require.NoError(t, err)
	require.Equal(t, models.ViewProfile, view)
	require.Equal(t, 200.0, order.Total)
	require.Equal(t, models.OrderStatusProcessing, order.Status)
	require.Equal(t, []models.OrderItem{{
		ProductID: added.ID,
		Quantity:  2,
		Price:     100,
		Name:      "Test Lamp",
	}}, order.Items)
	require.Empty(t, s.Cart(), "checkout must clear the cart")
}

func TestPlaceOrderStampsCaller(t *testing.T) {
	s, _ := newTestStore(t)
	signupTestUser(t, s)
	bob, _, err := s.Register("Bob", "bob@example.com", "bob-password", "3009998877")
	require.NoError(t, err)

	// The checkout identity is the explicit caller, regardless of who
	// the session slice currently points at.
	s.AddToCart("p1")
	order, _, err := s.PlaceOrder("USR-ELSEWHERE", models.PaymentEasyPaisa, "TXN-1")
	require.NoError(t, err)
	require.Equal(t, "USR-ELSEWHERE", order.UserID)
	require.NotEqual(t, bob.ID, order.UserID)
}

func TestOrderSnapshotImmuneToCatalogEdits(t *testing.T) {
	s, _ := newTestStore(t)
	user := signupTestUser(t, s)

	s.AddToCart("p1")
	order, _, err := s.PlaceOrder(user.ID, models.PaymentBankTransfer, "REF-1")
	require.NoError(t, err)
	originalItems := append([]models.OrderItem(nil), order.Items...)

	// Edit and then delete the source product.
	edited := s.Products()[0]
	edited.Price = edited.Price * 10
	require.NoError(t, s.UpdateProduct(edited))
	require.NoError(t, s.DeleteProduct(edited.ID))

	stored := s.Orders()[0]
	require.Equal(t, originalItems, stored.Items)
	require.Equal(t, order.Total, stored.Total)
}

func TestPlaceOrderRequiresCaller(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddToCart("p1")

	_, _, err := s.PlaceOrder("", models.PaymentEasyPaisa, "TXN-1")
	require.ErrorIs(t, err, ErrNotLoggedIn)
	require.Empty(t, s.Orders())
	require.Len(t, s.Cart(), 1, "rejected checkout must not touch the cart")
}

func TestPlaceOrderRejectsBlankReference(t *testing.T) {
	s, _ := newTestStore(t)
	user := signupTestUser(t, s)
	s.AddToCart("p1")

	_, _, err := s.PlaceOrder(user.ID, models.PaymentEasyPaisa, "   ")
	require.ErrorIs(t, err, ErrMissingReference)
	require.Empty(t, s.Orders())
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	s, _ := newTestStore(t)
	user := signupTestUser(t, s)

	_, _, err := s.PlaceOrder(user.ID, models.PaymentEasyPaisa, "TXN-1")
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderRejectsVanishedProduct(t *testing.T) {
	s, _ := newTestStore(t)
	user := signupTestUser(t, s)

	s.AddToCart("p1")
	require.NoError(t, s.DeleteProduct("p1"))

	_, _, err := s.PlaceOrder(user.ID, models.PaymentEasyPaisa, "TXN-1")
	require.ErrorIs(t, err, ErrProductGone)
	require.Empty(t, s.Orders())
	require.Len(t, s.Cart(), 1, "cart is left intact for the client to fix")
}

func TestPlaceOrderDoesNotTouchStock(t *testing.T) {
	s, _ := newTestStore(t)
	user := signupTestUser(t, s)

	before, _ := s.ProductByID("p1")
	s.AddToCart("p1")
	_, _, err := s.PlaceOrder(user.ID, models.PaymentEasyPaisa, "TXN-1")
	require.NoError(t, err)

	after, _ := s.ProductByID("p1")
	require.Equal(t, before.Quantity, after.Quantity)
}

func TestLedgerMostRecentFirst(t *testing.T) {
	s, _ := newTestStore(t)
	user := signupTestUser(t, s)

	s.AddToCart("p1")
	first, _, err := s.PlaceOrder(user.ID, models.PaymentEasyPaisa, "TXN-1")
	require.NoError(t, err)
	s.AddToCart("p2")
	second, _, err := s.PlaceOrder(user.ID, models.PaymentEasyPaisa, "TXN-2")
	require.NoError(t, err)

	ledger := s.Orders()
	require.Len(t, ledger, 2)
	require.Equal(t, second.ID, ledger[0].ID)
	require.Equal(t, first.ID, ledger[1].ID)
}

func TestApproveOrder(t *testing.T) {
	s, snap := newTestStore(t)
	user := signupTestUser(t, s)
	s.AddToCart("p1")
	order, _, err := s.PlaceOrder(user.ID, models.PaymentEasyPaisa, "TXN-1")
	require.NoError(t, err)

	require.NoError(t, s.ApproveOrder(order.ID))
	require.Equal(t, models.OrderStatusCompleted, s.Orders()[0].Status)

	// The transition must be persisted.
	var persisted []models.Order
	found, err := snap.Load(context.Background(), storage.KeyOrders, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, models.OrderStatusCompleted, persisted[0].Status)
}

func TestApproveOrderUnknownID(t *testing.T) {
	s, _ := newTestStore(t)
	user := signupTestUser(t, s)
	s.AddToCart("p1")
	_, _, err := s.PlaceOrder(user.ID, models.PaymentEasyPaisa, "TXN-1")
	require.NoError(t, err)

	before := s.Orders()
	require.ErrorIs(t, s.ApproveOrder("ORD-NOPE"), ErrNotFound)
	require.Equal(t, before, s.Orders(), "unknown id must leave the ledger unchanged")
}

func TestOrdersByUser(t *testing.T) {
	s, _ := newTestStore(t)
	alice := signupTestUser(t, s)
	s.AddToCart("p1")
	_, _, err := s.PlaceOrder(alice.ID, models.PaymentEasyPaisa, "TXN-A")
	require.NoError(t, err)

	bob, _, err := s.Register("Bob", "bob@example.com", "bob-password", "3009998877")
	require.NoError(t, err)
	s.AddToCart("p2")
	_, _, err = s.PlaceOrder(bob.ID, models.PaymentBankTransfer, "TXN-B")
	require.NoError(t, err)

	require.Len(t, s.OrdersByUser(alice.ID), 1)
	require.Len(t, s.OrdersByUser(bob.ID), 1)
	require.Empty(t, s.OrdersByUser("USR-UNKNOWN"))
}
