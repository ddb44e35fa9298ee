package dto

import (
	"github.com/vulndesk-api/models"
)

// VulnerabilityFilter represents filter criteria for listing vulnerabilities
type VulnerabilityFilter struct {
	Pagination
	ClientID    string
	AssetID     string
	Status      string
	Criticality string
	Search      string
}

// VulnerabilityListResponse represents a paginated vulnerability list
type VulnerabilityListResponse struct {
	Vulnerabilities []models.Vulnerability `json:"vulnerabilities"`
	ListMeta
}

// CreateVulnerabilityRequest represents the payload for creating a vulnerability
type CreateVulnerabilityRequest struct {
	ClientID    string   `json:"clientId" binding:"required,uuid"`
	AssetID     *string  `json:"assetId" binding:"omitempty,uuid"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	AssetTypeID *string  `json:"assetTypeId" binding:"omitempty,uuid"`
	ScannerID   *string  `json:"scannerId" binding:"omitempty,uuid"`
	Status      string   `json:"status" binding:"required,oneof=Open 'In Progress' Fixed Verified"`
	Criticality string   `json:"criticality" binding:"required,oneof=Critical High Medium Low"`
	CVSS        *float64 `json:"cvss" binding:"omitempty,gte=0,lte=10"`
	CVE         string   `json:"cve"`
	Discovered  *string  `json:"discovered"`
}

// UpdateVulnerabilityRequest represents the payload for updating a vulnerability
type UpdateVulnerabilityRequest struct {
	AssetID     *string  `json:"assetId" binding:"omitempty,uuid"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	AssetTypeID *string  `json:"assetTypeId" binding:"omitempty,uuid"`
	ScannerID   *string  `json:"scannerId" binding:"omitempty,uuid"`
	Status      *string  `json:"status" binding:"omitempty,oneof=Open 'In Progress' Fixed Verified"`
	Criticality *string  `json:"criticality" binding:"omitempty,oneof=Critical High Medium Low"`
	CVSS        *float64 `json:"cvss" binding:"omitempty,gte=0,lte=10"`
	CVE         *string  `json:"cve"`
	Discovered  *string  `json:"discovered"`
}
