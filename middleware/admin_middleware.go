package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"footyref/models"
)

// AdminMiddleware ensures the authenticated user carries the admin
// role. The raw claim is parsed through the closed Role enumeration so
// that an unknown value can never slip past the boundary. Must run
// after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawRole, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		roleStr, _ := rawRole.(string)
		role, err := models.ParseRole(roleStr)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Admin privileges required",
			})
			c.Abort()
			return
		}

		switch role {
		case models.RoleAdmin:
			c.Next()
		case models.RoleUser:
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Admin privileges required",
			})
			c.Abort()
		}
	}
}
