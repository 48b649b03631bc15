package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DevZuhaib/luxe3d-api/config"
	authControllers "github.com/DevZuhaib/luxe3d-api/controllers/auth"
	cartControllers "github.com/DevZuhaib/luxe3d-api/controllers/cart"
	orderControllers "github.com/DevZuhaib/luxe3d-api/controllers/orders"
	"github.com/DevZuhaib/luxe3d-api/middleware"
	"github.com/DevZuhaib/luxe3d-api/store"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, s *store.Store, cfg *config.Config) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		userGroup.GET("/", authControllers.GetUser(s))
		userGroup.POST("/logout", authControllers.Logout(s))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(s))
			cartGroup.POST("/", cartControllers.AddCartItem(s))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(s))
			cartGroup.DELETE("/", cartControllers.ClearCart(s))
		}

		userGroup.POST("/checkout", orderControllers.Checkout(s))
		userGroup.GET("/orders", orderControllers.GetMyOrders(s))
	}
}
