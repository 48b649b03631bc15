package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddToCartIncrements(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart("p1")
	s.AddToCart("p1")

	cart := s.Cart()
	require.Len(t, cart, 1, "same product must collapse into one entry")
	require.Equal(t, 2, cart[0].Quantity)
	require.Equal(t, 2, s.CartCount())
}

func TestAddToCartSeparateEntries(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart("p1")
	s.AddToCart("p2")

	require.Len(t, s.Cart(), 2)
	require.Equal(t, 2, s.CartCount())
}

func TestRemoveFromCart(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddToCart("p1")
	s.AddToCart("p2")

	s.RemoveFromCart("p1")
	cart := s.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, "p2", cart[0].ProductID)

	// Removing an absent product is a no-op.
	s.RemoveFromCart("p1")
	require.Len(t, s.Cart(), 1)
}

func TestClearCart(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddToCart("p1")
	s.ClearCart()
	require.Empty(t, s.Cart())
}
