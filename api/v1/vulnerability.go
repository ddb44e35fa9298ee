package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/services"
)

var vulnerabilityService = services.NewVulnerabilityService()

// ListVulnerabilities godoc
// @Summary List vulnerabilities with pagination and filtering
// @Tags vulnerabilities
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param clientId query string false "Filter by client"
// @Param assetId query string false "Filter by asset"
// @Param status query string false "Filter by status"
// @Param criticality query string false "Filter by criticality"
// @Param search query string false "Search term for title, display ID or CVE"
// @Success 200 {object} dto.VulnerabilityListResponse
// @Router /vulnerabilities [get]
func ListVulnerabilities(c *gin.Context) {
	filter := dto.VulnerabilityFilter{
		Pagination:  parsePagination(c),
		ClientID:    c.Query("clientId"),
		AssetID:     c.Query("assetId"),
		Status:      c.Query("status"),
		Criticality: c.Query("criticality"),
		Search:      c.Query("search"),
	}

	response, err := vulnerabilityService.ListVulnerabilities(filter)
	if err != nil {
		respondError(c, "Failed to retrieve vulnerabilities", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetVulnerability godoc
// @Summary Get a vulnerability by ID
// @Tags vulnerabilities
// @Produce json
// @Param id path string true "Vulnerability ID"
// @Success 200 {object} models.Vulnerability
// @Router /vulnerabilities/{id} [get]
func GetVulnerability(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	vulnerability, err := vulnerabilityService.GetVulnerability(id)
	if err != nil {
		respondError(c, "Failed to retrieve vulnerability", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   vulnerability,
	})
}

// CreateVulnerability godoc
// @Summary Create a vulnerability with a generated display ID
// @Tags vulnerabilities
// @Accept json
// @Produce json
// @Param vulnerability body dto.CreateVulnerabilityRequest true "Vulnerability payload"
// @Success 201 {object} models.Vulnerability
// @Router /vulnerabilities [post]
func CreateVulnerability(c *gin.Context) {
	var req dto.CreateVulnerabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	vulnerability, err := vulnerabilityService.CreateVulnerability(req)
	if err != nil {
		respondError(c, "Failed to create vulnerability", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   vulnerability,
	})
}

// UpdateVulnerability godoc
// @Summary Update a vulnerability
// @Tags vulnerabilities
// @Accept json
// @Produce json
// @Param id path string true "Vulnerability ID"
// @Param vulnerability body dto.UpdateVulnerabilityRequest true "Vulnerability payload"
// @Success 200 {object} models.Vulnerability
// @Router /vulnerabilities/{id} [put]
func UpdateVulnerability(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateVulnerabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	vulnerability, err := vulnerabilityService.UpdateVulnerability(id, req)
	if err != nil {
		respondError(c, "Failed to update vulnerability", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   vulnerability,
	})
}

// DeleteVulnerability godoc
// @Summary Soft-delete a vulnerability unless blocked by active tickets
// @Tags vulnerabilities
// @Produce json
// @Param id path string true "Vulnerability ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{} "Blocked by linked tickets; blockedBy lists their display IDs"
// @Router /vulnerabilities/{id} [delete]
func DeleteVulnerability(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := vulnerabilityService.DeleteVulnerability(id); err != nil {
		respondError(c, "Failed to delete vulnerability", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Vulnerability deleted successfully",
	})
}
