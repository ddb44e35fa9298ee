package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/services"
)

var referenceService = services.NewReferenceService()

// ListAssetTypes godoc
// @Summary List the asset type catalog
// @Tags reference
// @Produce json
// @Success 200 {array} models.AssetType
// @Router /reference/asset-types [get]
func ListAssetTypes(c *gin.Context) {
	assetTypes, err := referenceService.ListAssetTypes()
	if err != nil {
		respondError(c, "Failed to retrieve asset types", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   assetTypes,
	})
}

// CreateAssetType godoc
// @Summary Create an asset type catalog entry
// @Tags reference
// @Accept json
// @Produce json
// @Param assetType body dto.CreateReferenceItemRequest true "Asset type payload"
// @Success 201 {object} models.AssetType
// @Router /reference/asset-types [post]
func CreateAssetType(c *gin.Context) {
	var req dto.CreateReferenceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	assetType, err := referenceService.CreateAssetType(req)
	if err != nil {
		respondError(c, "Failed to create asset type", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   assetType,
	})
}

// UpdateAssetType godoc
// @Summary Update an asset type catalog entry
// @Tags reference
// @Accept json
// @Produce json
// @Param id path string true "Asset type ID"
// @Param assetType body dto.UpdateReferenceItemRequest true "Asset type payload"
// @Success 200 {object} models.AssetType
// @Router /reference/asset-types/{id} [put]
func UpdateAssetType(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReferenceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	assetType, err := referenceService.UpdateAssetType(id, req)
	if err != nil {
		respondError(c, "Failed to update asset type", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   assetType,
	})
}

// DeleteAssetType godoc
// @Summary Delete an unused asset type catalog entry
// @Tags reference
// @Produce json
// @Param id path string true "Asset type ID"
// @Success 200 {object} map[string]string
// @Router /reference/asset-types/{id} [delete]
func DeleteAssetType(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := referenceService.DeleteAssetType(id); err != nil {
		respondError(c, "Failed to delete asset type", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Asset type deleted successfully",
	})
}

// ListScanners godoc
// @Summary List the scanner catalog
// @Tags reference
// @Produce json
// @Success 200 {array} models.Scanner
// @Router /reference/scanners [get]
func ListScanners(c *gin.Context) {
	scanners, err := referenceService.ListScanners()
	if err != nil {
		respondError(c, "Failed to retrieve scanners", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   scanners,
	})
}

// CreateScanner godoc
// @Summary Create a scanner catalog entry
// @Tags reference
// @Accept json
// @Produce json
// @Param scanner body dto.CreateReferenceItemRequest true "Scanner payload"
// @Success 201 {object} models.Scanner
// @Router /reference/scanners [post]
func CreateScanner(c *gin.Context) {
	var req dto.CreateReferenceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	scanner, err := referenceService.CreateScanner(req)
	if err != nil {
		respondError(c, "Failed to create scanner", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   scanner,
	})
}

// UpdateScanner godoc
// @Summary Update a scanner catalog entry
// @Tags reference
// @Accept json
// @Produce json
// @Param id path string true "Scanner ID"
// @Param scanner body dto.UpdateReferenceItemRequest true "Scanner payload"
// @Success 200 {object} models.Scanner
// @Router /reference/scanners/{id} [put]
func UpdateScanner(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReferenceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	scanner, err := referenceService.UpdateScanner(id, req)
	if err != nil {
		respondError(c, "Failed to update scanner", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   scanner,
	})
}

// DeleteScanner godoc
// @Summary Delete a scanner catalog entry
// @Tags reference
// @Produce json
// @Param id path string true "Scanner ID"
// @Success 200 {object} map[string]string
// @Router /reference/scanners/{id} [delete]
func DeleteScanner(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := referenceService.DeleteScanner(id); err != nil {
		respondError(c, "Failed to delete scanner", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Scanner deleted successfully",
	})
}
