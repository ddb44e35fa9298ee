package dto

import (
	"github.com/vulndesk-api/models"
)

// AssetFilter represents filter criteria for listing assets
type AssetFilter struct {
	Pagination
	ClientID string
	TypeID   string
	Search   string
}

// AssetListResponse represents a paginated asset list
type AssetListResponse struct {
	Assets []models.Asset `json:"assets"`
	ListMeta
}

// CreateAssetRequest represents the payload for creating an asset
type CreateAssetRequest struct {
	ClientID        string  `json:"clientId" binding:"required,uuid"`
	Name            string  `json:"name" binding:"required"`
	TypeID          string  `json:"typeId" binding:"required,uuid"`
	IPAddress       string  `json:"ipAddress" binding:"omitempty,ip"`
	OperatingSystem string  `json:"operatingSystem"`
	Status          string  `json:"status" binding:"required"`
	Criticality     string  `json:"criticality" binding:"required,oneof=Critical High Medium Low"`
	LastScan        *string `json:"lastScan"`
}

// UpdateAssetRequest represents the payload for updating an asset
type UpdateAssetRequest struct {
	Name            *string `json:"name"`
	TypeID          *string `json:"typeId" binding:"omitempty,uuid"`
	IPAddress       *string `json:"ipAddress" binding:"omitempty,ip"`
	OperatingSystem *string `json:"operatingSystem"`
	Status          *string `json:"status"`
	Criticality     *string `json:"criticality" binding:"omitempty,oneof=Critical High Medium Low"`
	LastScan        *string `json:"lastScan"`
}
