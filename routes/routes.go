package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DevZuhaib/luxe3d-api/config"
	"github.com/DevZuhaib/luxe3d-api/store"
)

// SetupRoutes is the single entry-point that wires up the public,
// user and admin route groups.
func SetupRoutes(r *gin.Engine, s *store.Store, cfg *config.Config) {
	// Public routes (no middleware)
	SetupPublicRoutes(r, s, cfg)

	// User routes (JWT-protected)
	SetupUserRoutes(r, s, cfg)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, s, cfg)
}
