package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DevZuhaib/luxe3d-api/models"
)

// AdminOnly rejects requests whose token does not carry the admin role.
// Must run after ValidateToken.
func AdminOnly(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != string(models.RoleAdmin) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}
	c.Next()
}
