package dto

import (
	"github.com/vulndesk-api/models"
)

// WorkerFilter represents filter criteria for listing user accounts
type WorkerFilter struct {
	Pagination
	UserType string
}

// WorkerListResponse represents a paginated user account list
type WorkerListResponse struct {
	Workers []models.UserAccount `json:"workers"`
	ListMeta
}

// CreateWorkerRequest represents the payload for creating a user account
type CreateWorkerRequest struct {
	FullName string  `json:"fullName" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Phone    string  `json:"phone"`
	UserType string  `json:"userType" binding:"omitempty,oneof=worker client"`
	ClientID *string `json:"clientId" binding:"omitempty,uuid"`
}

// UpdateWorkerRequest represents the payload for updating a user account
type UpdateWorkerRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Phone    *string `json:"phone"`
	UserType *string `json:"userType" binding:"omitempty,oneof=worker client"`
	ClientID *string `json:"clientId" binding:"omitempty,uuid"`
}
