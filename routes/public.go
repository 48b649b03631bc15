package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DevZuhaib/luxe3d-api/config"
	authControllers "github.com/DevZuhaib/luxe3d-api/controllers/auth"
	notificationControllers "github.com/DevZuhaib/luxe3d-api/controllers/notifications"
	orderControllers "github.com/DevZuhaib/luxe3d-api/controllers/orders"
	productControllers "github.com/DevZuhaib/luxe3d-api/controllers/products"
	"github.com/DevZuhaib/luxe3d-api/store"
)

// SetupPublicRoutes registers endpoints that need no authentication:
// auth, catalog browsing and the payment channel details.
func SetupPublicRoutes(r *gin.Engine, s *store.Store, cfg *config.Config) {
	r.POST("/auth/login", authControllers.Login(s, cfg.JWTSecret))
	r.POST("/auth/signup", authControllers.Signup(s, cfg.JWTSecret))

	r.GET("/products", productControllers.GetProducts(s))
	r.GET("/products/:id", productControllers.GetProductByID(s))
	r.GET("/categories", productControllers.GetCategories(s))

	r.GET("/payment-details", orderControllers.GetPaymentDetails(cfg))
	r.GET("/notification", notificationControllers.GetNotification(s))
}
