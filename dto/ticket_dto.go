package dto

import (
	"github.com/vulndesk-api/models"
)

// TicketFilter represents filter criteria for listing tickets
type TicketFilter struct {
	Pagination
	ClientID string
	Status   string
	Priority string
	Search   string
}

// TicketListResponse represents a paginated ticket list
type TicketListResponse struct {
	Tickets []models.Ticket `json:"tickets"`
	ListMeta
}

// CreateTicketRequest represents the payload for creating a ticket
type CreateTicketRequest struct {
	ClientID         string   `json:"clientId" binding:"required,uuid"`
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	AssigneeID       *string  `json:"assigneeId" binding:"omitempty,uuid"`
	ReporterID       *string  `json:"reporterId" binding:"omitempty,uuid"`
	Priority         string   `json:"priority" binding:"required,oneof=Critical High Medium Low"`
	Status           string   `json:"status" binding:"omitempty,oneof=Open 'In Progress' Fixed Verified Closed"`
	DueDate          *string  `json:"dueDate"`
	VulnerabilityIDs []string `json:"vulnerabilityIds" binding:"omitempty,dive,uuid"`
}

// UpdateTicketRequest represents the payload for updating a ticket
type UpdateTicketRequest struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	AssigneeID       *string   `json:"assigneeId" binding:"omitempty,uuid"`
	ReporterID       *string   `json:"reporterId" binding:"omitempty,uuid"`
	Priority         *string   `json:"priority" binding:"omitempty,oneof=Critical High Medium Low"`
	Status           *string   `json:"status" binding:"omitempty,oneof=Open 'In Progress' Fixed Verified Closed"`
	DueDate          *string   `json:"dueDate"`
	Resolution       *string   `json:"resolution"`
	VulnerabilityIDs *[]string `json:"vulnerabilityIds" binding:"omitempty,dive,uuid"`
}

// CreateTicketMessageRequest represents the payload for adding a ticket message
type CreateTicketMessageRequest struct {
	AuthorID *string `json:"authorId" binding:"omitempty,uuid"`
	Message  string  `json:"message" binding:"required"`
}
