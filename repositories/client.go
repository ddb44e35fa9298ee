package repositories

import (
	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/models"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients and their contacts
type ClientRepository struct{}

// NewClientRepository creates a new client repository instance
func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// FindWithPagination retrieves clients with pagination and optional search
func (r *ClientRepository) FindWithPagination(page, pageSize int, search string) ([]models.Client, int64, error) {
	var clients []models.Client
	var totalCount int64

	db := database.DB.Model(&models.Client{})

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name ILIKE ? OR short_name ILIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := db.Preload("Contacts").Order("created_at desc").Limit(pageSize).Offset(offset).Find(&clients).Error
	return clients, totalCount, err
}

// FindByID retrieves a client by its ID including contacts
func (r *ClientRepository) FindByID(id string) (models.Client, error) {
	var client models.Client
	result := database.DB.Preload("Contacts").First(&client, "id = ?", id)
	return client, result.Error
}

// FindByShortName retrieves a client by its display-ID namespace code
func (r *ClientRepository) FindByShortName(shortName string) (models.Client, error) {
	var client models.Client
	result := database.DB.First(&client, "short_name = ?", shortName)
	return client, result.Error
}

// Create inserts a new client (with contacts) into the database
func (r *ClientRepository) Create(client models.Client) (models.Client, error) {
	result := database.DB.Create(&client)
	return client, result.Error
}

// Update modifies an existing client
func (r *ClientRepository) Update(client models.Client) error {
	return database.DB.Save(&client).Error
}

// Delete soft-deletes a client together with its projects. Contacts are
// plain child rows and stay in place for history.
func (r *ClientRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id IN (?)",
			tx.Model(&models.Project{}).Select("id").Where("client_id = ?", id),
		).Delete(&models.GanttTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Client{}, "id = ?", id).Error
	})
}

// CountActiveDependents counts non-deleted assets, vulnerabilities and
// tickets that still reference the client
func (r *ClientRepository) CountActiveDependents(id string) (int64, error) {
	var total int64
	for _, model := range []interface{}{&models.Asset{}, &models.Vulnerability{}, &models.Ticket{}} {
		var count int64
		if err := database.DB.Model(model).Where("client_id = ?", id).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}

// HasGeneratedIDs reports whether any display ID was ever issued under
// the client's short name, soft-deleted rows included. Once true, the
// short name is locked for good: renaming it would orphan those IDs.
func (r *ClientRepository) HasGeneratedIDs(id string) (bool, error) {
	var count int64
	err := database.DB.Unscoped().Model(&models.Ticket{}).Where("client_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	err = database.DB.Unscoped().Model(&models.Vulnerability{}).Where("client_id = ?", id).Count(&count).Error
	return count > 0, err
}

// ReplaceContacts swaps out all contacts of a client in one transaction
func (r *ClientRepository) ReplaceContacts(clientID string, contacts []models.ClientContact) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).Delete(&models.ClientContact{}).Error; err != nil {
			return err
		}
		for i := range contacts {
			contacts[i].ClientID = clientID
		}
		if len(contacts) == 0 {
			return nil
		}
		return tx.Create(&contacts).Error
	})
}

// CreateContact adds a single contact to a client
func (r *ClientRepository) CreateContact(contact models.ClientContact) (models.ClientContact, error) {
	result := database.DB.Create(&contact)
	return contact, result.Error
}

// FindContact retrieves a contact scoped to its client
func (r *ClientRepository) FindContact(clientID, contactID string) (models.ClientContact, error) {
	var contact models.ClientContact
	result := database.DB.First(&contact, "id = ? AND client_id = ?", contactID, clientID)
	return contact, result.Error
}

// UpdateContact modifies an existing contact
func (r *ClientRepository) UpdateContact(contact models.ClientContact) error {
	return database.DB.Save(&contact).Error
}

// DeleteContact removes a contact from a client
func (r *ClientRepository) DeleteContact(clientID, contactID string) error {
	return database.DB.Delete(&models.ClientContact{}, "id = ? AND client_id = ?", contactID, clientID).Error
}
