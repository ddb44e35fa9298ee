package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/database"
)

// HealthCheck handles the health check endpoint, reporting database
// connectivity alongside the service identity
func HealthCheck(c *gin.Context) {
	dbStatus := "ok"
	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unavailable"
	}

	c.JSON(200, gin.H{
		"status":   "ok",
		"service":  "vulndesk-api",
		"version":  "1.0.0",
		"database": dbStatus,
	})
}
