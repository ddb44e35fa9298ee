package repositories

import (
	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/models"
)

// ReportRepository aggregates dashboard counters
type ReportRepository struct{}

// NewReportRepository creates a new report repository instance
func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

// Count counts non-deleted rows of model, optionally scoped to a client
func (r *ReportRepository) Count(model interface{}, clientID string) (int64, error) {
	var count int64
	db := database.DB.Model(model)
	if clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	err := db.Count(&count).Error
	return count, err
}

// CountClients counts non-deleted clients
func (r *ReportRepository) CountClients() (int64, error) {
	var count int64
	err := database.DB.Model(&models.Client{}).Count(&count).Error
	return count, err
}
