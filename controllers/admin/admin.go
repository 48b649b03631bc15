package adminControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DevZuhaib/luxe3d-api/models"
	"github.com/DevZuhaib/luxe3d-api/store"
)

// GET /admin/users
func GetAllUsers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := s.Users()
		public := make([]models.User, len(users))
		for i, u := range users {
			public[i] = u.Public()
		}
		c.JSON(http.StatusOK, public)
	}
}

// GET /admin/orders
func GetAllOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Orders())
	}
}

// POST /admin/orders/:id/approve
func ApproveOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.ApproveOrder(c.Param("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order approved"})
	}
}
