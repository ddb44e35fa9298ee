package repositories

import (
	"time"

	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssetRepository handles database operations for assets
type AssetRepository struct{}

// NewAssetRepository creates a new asset repository instance
func NewAssetRepository() *AssetRepository {
	return &AssetRepository{}
}

// FindWithPagination retrieves assets with pagination and optional filters
func (r *AssetRepository) FindWithPagination(page, pageSize int, clientID, typeID, search string) ([]models.Asset, int64, error) {
	var assets []models.Asset
	var totalCount int64

	db := database.DB.Model(&models.Asset{})

	if clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	if typeID != "" {
		db = db.Where("type_id = ?", typeID)
	}
	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name ILIKE ? OR ip_address ILIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := db.Preload("Type").Order("created_at desc").Limit(pageSize).Offset(offset).Find(&assets).Error
	return assets, totalCount, err
}

// FindByID retrieves an asset by its ID
func (r *AssetRepository) FindByID(id string) (models.Asset, error) {
	var asset models.Asset
	result := database.DB.Preload("Type").First(&asset, "id = ?", id)
	return asset, result.Error
}

// FindForUpdate retrieves an asset inside tx holding a FOR UPDATE row
// lock, serializing the delete path against concurrent writers
func (r *AssetRepository) FindForUpdate(tx *gorm.DB, id string) (models.Asset, error) {
	var asset models.Asset
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&asset, "id = ?", id)
	return asset, result.Error
}

// Create inserts a new asset into the database
func (r *AssetRepository) Create(asset models.Asset) (models.Asset, error) {
	result := database.DB.Create(&asset)
	return asset, result.Error
}

// Update modifies an existing asset
func (r *AssetRepository) Update(asset models.Asset) error {
	return database.DB.Save(&asset).Error
}

// SoftDelete marks an asset deleted inside tx, refreshing its
// modification timestamp
func (r *AssetRepository) SoftDelete(tx *gorm.DB, id string) error {
	now := time.Now()
	return tx.Model(&models.Asset{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now}).Error
}

// CountByStatus returns asset counts grouped by status, optionally
// scoped to one client
func (r *AssetRepository) CountByStatus(clientID string) (map[string]int64, error) {
	return countGrouped(&models.Asset{}, "status", clientID)
}

// CountByClient returns asset counts grouped by client short name
func (r *AssetRepository) CountByClient() (map[string]int64, error) {
	type row struct {
		ShortName string
		Count     int64
	}
	var rows []row
	err := database.DB.Model(&models.Asset{}).
		Select("clients.short_name, count(assets.id) as count").
		Joins("JOIN clients ON clients.id = assets.client_id").
		Group("clients.short_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.ShortName] = r.Count
	}
	return counts, nil
}
