package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DevZuhaib/luxe3d-api/config"
	"github.com/DevZuhaib/luxe3d-api/models"
	"github.com/DevZuhaib/luxe3d-api/store"
)

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	Reference     string `json:"reference"`
}

func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToLower(method) {
	case "easypaisa":
		return models.PaymentEasyPaisa, nil
	case "bank transfer", "bank_transfer":
		return models.PaymentBankTransfer, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// POST /user/checkout
func Checkout(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		method, err := mapPaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// The owner of the order is the authenticated caller, never the
		// store-wide session slice.
		order, view, err := s.PlaceOrder(c.GetString("user_id"), method, req.Reference)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotLoggedIn):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required to place an order"})
			case errors.Is(err, store.ErrMissingReference):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a transaction ID or reference number"})
			case errors.Is(err, store.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, store.ErrProductGone):
				c.JSON(http.StatusConflict, gin.H{"error": "A cart item is no longer available"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, gin.H{"order": order, "view": view})
	}
}

// GET /user/orders
func GetMyOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, s.OrdersByUser(userID.(string)))
	}
}

// GET /payment-details
func GetPaymentDetails(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"easypaisa":    cfg.EasyPaisaNumber,
			"bankTransfer": cfg.BankTransferNumber,
			"accountName":  cfg.PaymentAccountName,
		})
	}
}
