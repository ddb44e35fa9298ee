package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/services"
)

// respondError maps a service error onto the response envelope. Guard
// conflicts carry the display IDs of the blocking tickets so the
// frontend can render them.
func respondError(c *gin.Context, message string, err error) {
	if conflict, ok := services.AsConflict(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":    "error",
			"message":   conflict.Error(),
			"blockedBy": conflict.BlockedBy,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case services.IsNotFound(err):
		status = http.StatusNotFound
	case services.IsValidation(err):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

// respondBadRequest reports a request body or parameter that failed validation
func respondBadRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}
