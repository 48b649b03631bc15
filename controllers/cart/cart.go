package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DevZuhaib/luxe3d-api/store"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /user/cart
func GetCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items": s.Cart(),
			"count": s.CartCount(),
		})
	}
}

// POST /user/cart
func AddCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// The store op itself takes any id; checking the catalog here
		// keeps bad ids out of the cart at the API boundary.
		if _, ok := s.ProductByID(input.ProductID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		s.AddToCart(input.ProductID)
		c.JSON(http.StatusOK, gin.H{"items": s.Cart(), "count": s.CartCount()})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.RemoveFromCart(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed", "items": s.Cart()})
	}
}

// DELETE /user/cart
func ClearCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
