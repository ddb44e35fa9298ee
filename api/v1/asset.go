package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/services"
)

var assetService = services.NewAssetService()

// ListAssets godoc
// @Summary List assets with pagination and filtering
// @Tags assets
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param clientId query string false "Filter by client"
// @Param typeId query string false "Filter by asset type"
// @Param search query string false "Search term for name or IP address"
// @Success 200 {object} dto.AssetListResponse
// @Router /assets [get]
func ListAssets(c *gin.Context) {
	filter := dto.AssetFilter{
		Pagination: parsePagination(c),
		ClientID:   c.Query("clientId"),
		TypeID:     c.Query("typeId"),
		Search:     c.Query("search"),
	}

	response, err := assetService.ListAssets(filter)
	if err != nil {
		respondError(c, "Failed to retrieve assets", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetAsset godoc
// @Summary Get an asset by ID
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} models.Asset
// @Router /assets/{id} [get]
func GetAsset(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	asset, err := assetService.GetAsset(id)
	if err != nil {
		respondError(c, "Failed to retrieve asset", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   asset,
	})
}

// CreateAsset godoc
// @Summary Create an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset payload"
// @Success 201 {object} models.Asset
// @Router /assets [post]
func CreateAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	asset, err := assetService.CreateAsset(req)
	if err != nil {
		respondError(c, "Failed to create asset", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   asset,
	})
}

// UpdateAsset godoc
// @Summary Update an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param asset body dto.UpdateAssetRequest true "Asset payload"
// @Success 200 {object} models.Asset
// @Router /assets/{id} [put]
func UpdateAsset(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	asset, err := assetService.UpdateAsset(id, req)
	if err != nil {
		respondError(c, "Failed to update asset", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   asset,
	})
}

// DeleteAsset godoc
// @Summary Soft-delete an asset and cascade to its vulnerabilities
// @Description Rejects the whole delete when any of its vulnerabilities is linked to an active ticket
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{} "Blocked by linked tickets; blockedBy lists their display IDs"
// @Router /assets/{id} [delete]
func DeleteAsset(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := assetService.DeleteAsset(id); err != nil {
		respondError(c, "Failed to delete asset", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Asset and its vulnerabilities deleted successfully",
	})
}
