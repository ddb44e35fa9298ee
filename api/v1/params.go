package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vulndesk-api/dto"
)

// parsePagination reads the page/pageSize query parameters with the
// same defaults everywhere
func parsePagination(c *gin.Context) dto.Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	return dto.Pagination{Page: page, PageSize: pageSize}
}

// requireUUIDParam validates a path parameter before it reaches the
// service layer. Returns false after writing the response when the
// value is not a UUID.
func requireUUIDParam(c *gin.Context, name string) (string, bool) {
	value := c.Param(name)
	if _, err := uuid.Parse(value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid " + name + " parameter",
			"error":   err.Error(),
		})
		return "", false
	}
	return value, true
}
