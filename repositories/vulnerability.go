package repositories

import (
	"time"

	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VulnerabilityRepository handles database operations for vulnerabilities
type VulnerabilityRepository struct{}

// NewVulnerabilityRepository creates a new vulnerability repository instance
func NewVulnerabilityRepository() *VulnerabilityRepository {
	return &VulnerabilityRepository{}
}

// FindWithPagination retrieves vulnerabilities with pagination and optional filters
func (r *VulnerabilityRepository) FindWithPagination(page, pageSize int, clientID, assetID, status, criticality, search string) ([]models.Vulnerability, int64, error) {
	var vulnerabilities []models.Vulnerability
	var totalCount int64

	db := database.DB.Model(&models.Vulnerability{})

	if clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	if assetID != "" {
		db = db.Where("asset_id = ?", assetID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if criticality != "" {
		db = db.Where("criticality = ?", criticality)
	}
	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(title ILIKE ? OR display_id ILIKE ? OR cve ILIKE ?)", searchPattern, searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := db.Preload("Asset").Preload("Scanner").Order("created_at desc").Limit(pageSize).Offset(offset).Find(&vulnerabilities).Error
	return vulnerabilities, totalCount, err
}

// FindByID retrieves a vulnerability by its ID
func (r *VulnerabilityRepository) FindByID(id string) (models.Vulnerability, error) {
	var vulnerability models.Vulnerability
	result := database.DB.Preload("Asset").Preload("AssetType").Preload("Scanner").First(&vulnerability, "id = ?", id)
	return vulnerability, result.Error
}

// FindForUpdate retrieves a non-deleted vulnerability inside tx holding
// a FOR UPDATE row lock. Ticket creation locks the same rows before
// linking, so the delete path and link path serialize on them.
func (r *VulnerabilityRepository) FindForUpdate(tx *gorm.DB, id string) (models.Vulnerability, error) {
	var vulnerability models.Vulnerability
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&vulnerability, "id = ?", id)
	return vulnerability, result.Error
}

// FindActiveByAssetForUpdate retrieves all non-deleted vulnerabilities
// of an asset inside tx, each locked FOR UPDATE
func (r *VulnerabilityRepository) FindActiveByAssetForUpdate(tx *gorm.DB, assetID string) ([]models.Vulnerability, error) {
	var vulnerabilities []models.Vulnerability
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("asset_id = ?", assetID).
		Find(&vulnerabilities).Error
	return vulnerabilities, err
}

// FindManyForUpdate retrieves the given non-deleted vulnerabilities
// inside tx, each locked FOR UPDATE. Used by ticket linking.
func (r *VulnerabilityRepository) FindManyForUpdate(tx *gorm.DB, ids []string) ([]models.Vulnerability, error) {
	var vulnerabilities []models.Vulnerability
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Find(&vulnerabilities).Error
	return vulnerabilities, err
}

// Create inserts a new vulnerability inside tx
func (r *VulnerabilityRepository) Create(tx *gorm.DB, vulnerability *models.Vulnerability) error {
	return tx.Create(vulnerability).Error
}

// Update modifies an existing vulnerability
func (r *VulnerabilityRepository) Update(vulnerability models.Vulnerability) error {
	return database.DB.Save(&vulnerability).Error
}

// SoftDelete marks a vulnerability deleted inside tx, refreshing its
// modification timestamp. Junction rows to tickets are left in place
// for history.
func (r *VulnerabilityRepository) SoftDelete(tx *gorm.DB, id string) error {
	now := time.Now()
	return tx.Model(&models.Vulnerability{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now}).Error
}

// SoftDeleteByIDs marks a batch of vulnerabilities deleted inside tx
func (r *VulnerabilityRepository) SoftDeleteByIDs(tx *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	now := time.Now()
	return tx.Model(&models.Vulnerability{}).Where("id IN ?", ids).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now}).Error
}

// MaxDisplayNumber returns the highest numeric display-ID suffix ever
// assigned under a prefix, soft-deleted rows included. The suffix is
// compared numerically (split_part + cast), not lexicographically, so
// V-TSV-1000 correctly outranks V-TSV-999 regardless of padding.
func (r *VulnerabilityRepository) MaxDisplayNumber(tx *gorm.DB, shortName string) (int64, error) {
	return maxDisplayNumber(tx, "vulnerabilities", utils.DisplayIDPrefix(utils.VulnerabilityIDLetter, shortName))
}

// CountByStatus returns vulnerability counts grouped by status,
// optionally scoped to one client
func (r *VulnerabilityRepository) CountByStatus(clientID string) (map[string]int64, error) {
	return countGrouped(&models.Vulnerability{}, "status", clientID)
}

// CountByCriticality returns vulnerability counts grouped by
// criticality, optionally scoped to one client
func (r *VulnerabilityRepository) CountByCriticality(clientID string) (map[string]int64, error) {
	return countGrouped(&models.Vulnerability{}, "criticality", clientID)
}
