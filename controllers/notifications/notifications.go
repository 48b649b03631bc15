package notificationControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DevZuhaib/luxe3d-api/store"
)

// GET /notification
// Returns the current transient toast, or an empty body when it has
// already auto-cleared. Clients poll this after mutations.
func GetNotification(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := s.Notification()
		if n == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, n)
	}
}
