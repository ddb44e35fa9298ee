package repositories

import (
	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/models"
)

// ReferenceRepository handles database operations for reference catalogs
// (asset types and scanners)
type ReferenceRepository struct{}

// NewReferenceRepository creates a new reference repository instance
func NewReferenceRepository() *ReferenceRepository {
	return &ReferenceRepository{}
}

// FindAssetTypes retrieves all asset types ordered by name
func (r *ReferenceRepository) FindAssetTypes() ([]models.AssetType, error) {
	var assetTypes []models.AssetType
	err := database.DB.Order("name asc").Find(&assetTypes).Error
	return assetTypes, err
}

// FindAssetTypeByID retrieves an asset type by its ID
func (r *ReferenceRepository) FindAssetTypeByID(id string) (models.AssetType, error) {
	var assetType models.AssetType
	result := database.DB.First(&assetType, "id = ?", id)
	return assetType, result.Error
}

// CreateAssetType inserts a new asset type
func (r *ReferenceRepository) CreateAssetType(assetType models.AssetType) (models.AssetType, error) {
	result := database.DB.Create(&assetType)
	return assetType, result.Error
}

// UpdateAssetType modifies an existing asset type
func (r *ReferenceRepository) UpdateAssetType(assetType models.AssetType) error {
	return database.DB.Save(&assetType).Error
}

// DeleteAssetType removes an asset type
func (r *ReferenceRepository) DeleteAssetType(id string) error {
	return database.DB.Delete(&models.AssetType{}, "id = ?", id).Error
}

// CountAssetsOfType counts non-deleted assets using an asset type
func (r *ReferenceRepository) CountAssetsOfType(id string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Asset{}).Where("type_id = ?", id).Count(&count).Error
	return count, err
}

// FindScanners retrieves all scanners ordered by name
func (r *ReferenceRepository) FindScanners() ([]models.Scanner, error) {
	var scanners []models.Scanner
	err := database.DB.Order("name asc").Find(&scanners).Error
	return scanners, err
}

// FindScannerByID retrieves a scanner by its ID
func (r *ReferenceRepository) FindScannerByID(id string) (models.Scanner, error) {
	var scanner models.Scanner
	result := database.DB.First(&scanner, "id = ?", id)
	return scanner, result.Error
}

// CreateScanner inserts a new scanner
func (r *ReferenceRepository) CreateScanner(scanner models.Scanner) (models.Scanner, error) {
	result := database.DB.Create(&scanner)
	return scanner, result.Error
}

// UpdateScanner modifies an existing scanner
func (r *ReferenceRepository) UpdateScanner(scanner models.Scanner) error {
	return database.DB.Save(&scanner).Error
}

// DeleteScanner removes a scanner
func (r *ReferenceRepository) DeleteScanner(id string) error {
	return database.DB.Delete(&models.Scanner{}, "id = ?", id).Error
}
