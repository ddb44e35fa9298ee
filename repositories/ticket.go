package repositories

import (
	"time"

	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/utils"
	"gorm.io/gorm"
)

// TicketRepository handles database operations for tickets, their
// messages and their vulnerability links
type TicketRepository struct{}

// NewTicketRepository creates a new ticket repository instance
func NewTicketRepository() *TicketRepository {
	return &TicketRepository{}
}

// FindWithPagination retrieves tickets with pagination and optional filters
func (r *TicketRepository) FindWithPagination(page, pageSize int, clientID, status, priority, search string) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	var totalCount int64

	db := database.DB.Model(&models.Ticket{})

	if clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if priority != "" {
		db = db.Where("priority = ?", priority)
	}
	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(title ILIKE ? OR display_id ILIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := db.Preload("Assignee").Order("created_at desc").Limit(pageSize).Offset(offset).Find(&tickets).Error
	return tickets, totalCount, err
}

// FindByID retrieves a ticket with its client, people, messages and
// linked vulnerabilities
func (r *TicketRepository) FindByID(id string) (models.Ticket, error) {
	var ticket models.Ticket
	result := database.DB.
		Preload("Client").
		Preload("Assignee").
		Preload("Reporter").
		Preload("Messages").
		Preload("Messages.Author").
		Preload("Vulnerabilities").
		Preload("Vulnerabilities.Vulnerability").
		First(&ticket, "id = ?", id)
	return ticket, result.Error
}

// Exists reports whether a non-deleted ticket exists
func (r *TicketRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Ticket{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts a new ticket inside tx
func (r *TicketRepository) Create(tx *gorm.DB, ticket *models.Ticket) error {
	return tx.Create(ticket).Error
}

// Update modifies an existing ticket inside tx
func (r *TicketRepository) Update(tx *gorm.DB, ticket models.Ticket) error {
	return tx.Save(&ticket).Error
}

// SoftDelete marks a ticket deleted, refreshing its modification
// timestamp. Junction rows stay in place; blocking checks only
// consider non-deleted tickets.
func (r *TicketRepository) SoftDelete(id string) error {
	now := time.Now()
	return database.DB.Model(&models.Ticket{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now}).Error
}

// ReplaceVulnerabilityLinks swaps out all vulnerability links of a
// ticket inside tx
func (r *TicketRepository) ReplaceVulnerabilityLinks(tx *gorm.DB, ticketID string, vulnerabilityIDs []string) error {
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketVulnerability{}).Error; err != nil {
		return err
	}
	if len(vulnerabilityIDs) == 0 {
		return nil
	}
	links := make([]models.TicketVulnerability, 0, len(vulnerabilityIDs))
	for _, vulnID := range vulnerabilityIDs {
		links = append(links, models.TicketVulnerability{TicketID: ticketID, VulnerabilityID: vulnID})
	}
	return tx.Create(&links).Error
}

// FindBlockingDisplayIDs returns the display IDs of all non-deleted
// tickets linked to any of the given vulnerabilities. This is the one
// shared "is it ticket-blocked" predicate used by both the
// vulnerability and the asset delete paths.
func (r *TicketRepository) FindBlockingDisplayIDs(tx *gorm.DB, vulnerabilityIDs []string) ([]string, error) {
	if len(vulnerabilityIDs) == 0 {
		return nil, nil
	}
	var displayIDs []string
	err := tx.Model(&models.Ticket{}).
		Distinct("tickets.display_id").
		Joins("JOIN ticket_vulnerabilities tv ON tv.ticket_id = tickets.id").
		Where("tv.vulnerability_id IN ?", vulnerabilityIDs).
		Order("tickets.display_id").
		Pluck("tickets.display_id", &displayIDs).Error
	return displayIDs, err
}

// MaxDisplayNumber returns the highest numeric display-ID suffix ever
// assigned to a ticket of the given client, soft-deleted rows included
func (r *TicketRepository) MaxDisplayNumber(tx *gorm.DB, shortName string) (int64, error) {
	return maxDisplayNumber(tx, "tickets", utils.DisplayIDPrefix(utils.TicketIDLetter, shortName))
}

// AddMessage appends a message to a ticket
func (r *TicketRepository) AddMessage(message models.TicketMessage) (models.TicketMessage, error) {
	result := database.DB.Create(&message)
	return message, result.Error
}

// FindMessages retrieves all messages of a ticket, oldest first
func (r *TicketRepository) FindMessages(ticketID string) ([]models.TicketMessage, error) {
	var messages []models.TicketMessage
	err := database.DB.Preload("Author").Where("ticket_id = ?", ticketID).Order("created_at asc").Find(&messages).Error
	return messages, err
}

// CountByStatus returns ticket counts grouped by status, optionally
// scoped to one client
func (r *TicketRepository) CountByStatus(clientID string) (map[string]int64, error) {
	return countGrouped(&models.Ticket{}, "status", clientID)
}

// CountByPriority returns ticket counts grouped by priority, optionally
// scoped to one client
func (r *TicketRepository) CountByPriority(clientID string) (map[string]int64, error) {
	return countGrouped(&models.Ticket{}, "priority", clientID)
}
