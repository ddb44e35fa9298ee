package dto

import (
	"github.com/vulndesk-api/models"
)

// ClientFilter represents filter criteria for listing clients
type ClientFilter struct {
	Pagination
	Search string
}

// ClientListResponse represents a paginated client list
type ClientListResponse struct {
	Clients []models.Client `json:"clients"`
	ListMeta
}

// ContactRequest represents one contact in a create/update payload
type ContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
}

// CreateClientRequest represents the payload for creating a client
type CreateClientRequest struct {
	Name           string           `json:"name" binding:"required"`
	ShortName      string           `json:"shortName" binding:"required"`
	Industry       string           `json:"industry"`
	ContactPerson  string           `json:"contactPerson"`
	Position       string           `json:"position"`
	Phone          string           `json:"phone"`
	Email          string           `json:"email" binding:"omitempty,email"`
	SLA            string           `json:"sla" binding:"omitempty,oneof=Premium Standard Basic"`
	SecurityLevel  string           `json:"securityLevel" binding:"omitempty,oneof=Critical High"`
	ContractNumber string           `json:"contractNumber"`
	ContractDate   string           `json:"contractDate"`
	ContractExpiry string           `json:"contractExpiry"`
	BillingCycle   string           `json:"billingCycle" binding:"omitempty,oneof=Monthly Quarterly Yearly"`
	InfraCloud     *bool            `json:"infraCloud"`
	InfraOnPrem    *bool            `json:"infraOnPrem"`
	Notes          string           `json:"notes"`
	Contacts       []ContactRequest `json:"contacts" binding:"omitempty,dive"`
}

// UpdateClientRequest represents the payload for updating a client.
// Pointer fields distinguish "absent" from "set to zero value".
type UpdateClientRequest struct {
	Name           *string           `json:"name"`
	ShortName      *string           `json:"shortName"`
	Industry       *string           `json:"industry"`
	ContactPerson  *string           `json:"contactPerson"`
	Position       *string           `json:"position"`
	Phone          *string           `json:"phone"`
	Email          *string           `json:"email" binding:"omitempty,email"`
	SLA            *string           `json:"sla" binding:"omitempty,oneof=Premium Standard Basic"`
	SecurityLevel  *string           `json:"securityLevel" binding:"omitempty,oneof=Critical High"`
	ContractNumber *string           `json:"contractNumber"`
	ContractDate   *string           `json:"contractDate"`
	ContractExpiry *string           `json:"contractExpiry"`
	BillingCycle   *string           `json:"billingCycle" binding:"omitempty,oneof=Monthly Quarterly Yearly"`
	InfraCloud     *bool             `json:"infraCloud"`
	InfraOnPrem    *bool             `json:"infraOnPrem"`
	Notes          *string           `json:"notes"`
	Contacts       *[]ContactRequest `json:"contacts" binding:"omitempty,dive"`
}
