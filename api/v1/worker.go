package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/services"
)

var workerService = services.NewWorkerService()

// ListWorkers godoc
// @Summary List user accounts with pagination
// @Tags workers
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param userType query string false "Filter by account type (worker or client)"
// @Success 200 {object} dto.WorkerListResponse
// @Router /workers [get]
func ListWorkers(c *gin.Context) {
	filter := dto.WorkerFilter{
		Pagination: parsePagination(c),
		UserType:   c.Query("userType"),
	}

	response, err := workerService.ListWorkers(filter)
	if err != nil {
		respondError(c, "Failed to retrieve accounts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetWorker godoc
// @Summary Get a user account by ID
// @Tags workers
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} models.UserAccount
// @Router /workers/{id} [get]
func GetWorker(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	account, err := workerService.GetWorker(id)
	if err != nil {
		respondError(c, "Failed to retrieve account", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   account,
	})
}

// CreateWorker godoc
// @Summary Create a user account
// @Tags workers
// @Accept json
// @Produce json
// @Param account body dto.CreateWorkerRequest true "Account payload"
// @Success 201 {object} models.UserAccount
// @Router /workers [post]
func CreateWorker(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	account, err := workerService.CreateWorker(req)
	if err != nil {
		respondError(c, "Failed to create account", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   account,
	})
}

// UpdateWorker godoc
// @Summary Update a user account
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body dto.UpdateWorkerRequest true "Account payload"
// @Success 200 {object} models.UserAccount
// @Router /workers/{id} [put]
func UpdateWorker(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	account, err := workerService.UpdateWorker(id, req)
	if err != nil {
		respondError(c, "Failed to update account", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   account,
	})
}

// DeleteWorker godoc
// @Summary Soft-delete a user account
// @Tags workers
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string
// @Router /workers/{id} [delete]
func DeleteWorker(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := workerService.DeleteWorker(id); err != nil {
		respondError(c, "Failed to delete account", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Account deleted successfully",
	})
}
