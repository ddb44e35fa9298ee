package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/models"
)

// WorkerMiddleware creates a middleware that ensures the account is an
// internal worker. Client-side accounts get read access elsewhere but
// never reach the management endpoints behind this.
// This middleware should be used after AuthMiddleware.
func WorkerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("userType")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		if typeStr, ok := userType.(string); !ok || typeStr != string(models.UserTypeWorker) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Worker privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
