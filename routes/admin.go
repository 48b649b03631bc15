package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DevZuhaib/luxe3d-api/config"
	adminControllers "github.com/DevZuhaib/luxe3d-api/controllers/admin"
	orderControllers "github.com/DevZuhaib/luxe3d-api/controllers/orders"
	productControllers "github.com/DevZuhaib/luxe3d-api/controllers/products"
	"github.com/DevZuhaib/luxe3d-api/middleware"
	"github.com/DevZuhaib/luxe3d-api/store"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT
// carrying the admin role.
func SetupAdminRoutes(r *gin.Engine, s *store.Store, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.AdminOnly)
	{
		adminGroup.GET("/users", adminControllers.GetAllUsers(s))

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminControllers.GetAllOrders(s))
			orderAdmin.POST("/:id/approve", adminControllers.ApproveOrder(s))
			orderAdmin.GET("/feed", orderControllers.OrderFeedHandler)
		}

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(s))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(s))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(s))
			productAdmin.GET("/export-excel", adminControllers.ExportProductsToExcel(s))
		}
	}
}
