package repositories

import (
	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/models"
)

// UserAccountRepository handles database operations for user accounts
type UserAccountRepository struct{}

// NewUserAccountRepository creates a new user account repository instance
func NewUserAccountRepository() *UserAccountRepository {
	return &UserAccountRepository{}
}

// FindWithPagination retrieves user accounts with pagination and an
// optional user-type filter
func (r *UserAccountRepository) FindWithPagination(page, pageSize int, userType string) ([]models.UserAccount, int64, error) {
	var accounts []models.UserAccount
	var totalCount int64

	db := database.DB.Model(&models.UserAccount{})
	if userType != "" {
		db = db.Where("user_type = ?", userType)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := db.Order("full_name asc").Limit(pageSize).Offset(offset).Find(&accounts).Error
	return accounts, totalCount, err
}

// FindByID retrieves a user account by its ID
func (r *UserAccountRepository) FindByID(id string) (models.UserAccount, error) {
	var account models.UserAccount
	result := database.DB.First(&account, "id = ?", id)
	return account, result.Error
}

// FindByEmail retrieves a user account by email
func (r *UserAccountRepository) FindByEmail(email string) (models.UserAccount, error) {
	var account models.UserAccount
	result := database.DB.First(&account, "email = ?", email)
	return account, result.Error
}

// Create inserts a new user account into the database
func (r *UserAccountRepository) Create(account models.UserAccount) (models.UserAccount, error) {
	result := database.DB.Create(&account)
	return account, result.Error
}

// Update modifies an existing user account
func (r *UserAccountRepository) Update(account models.UserAccount) error {
	return database.DB.Save(&account).Error
}

// Delete soft-deletes a user account
func (r *UserAccountRepository) Delete(id string) error {
	return database.DB.Delete(&models.UserAccount{}, "id = ?", id).Error
}
