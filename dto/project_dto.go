package dto

import (
	"github.com/vulndesk-api/models"
)

// ProjectFilter represents filter criteria for listing projects
type ProjectFilter struct {
	Pagination
	ClientID string
	Status   string
	Search   string
}

// ProjectListResponse represents a paginated project list
type ProjectListResponse struct {
	Projects []models.Project `json:"projects"`
	ListMeta
}

// CreateProjectRequest represents the payload for creating a project
type CreateProjectRequest struct {
	ClientID      string   `json:"clientId" binding:"required,uuid"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Type          string   `json:"type" binding:"required"`
	Status        string   `json:"status" binding:"omitempty,oneof=Active Planning 'On Hold' Completed Cancelled"`
	Priority      string   `json:"priority" binding:"omitempty,oneof=Critical High Medium Low"`
	StartDate     string   `json:"startDate" binding:"required"`
	EndDate       string   `json:"endDate" binding:"required"`
	Budget        *float64 `json:"budget"`
	Progress      *int16   `json:"progress" binding:"omitempty,gte=0,lte=100"`
	TeamMemberIDs []string `json:"teamMemberIds" binding:"omitempty,dive,uuid"`
}

// UpdateProjectRequest represents the payload for updating a project
type UpdateProjectRequest struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Type          *string   `json:"type"`
	Status        *string   `json:"status" binding:"omitempty,oneof=Active Planning 'On Hold' Completed Cancelled"`
	Priority      *string   `json:"priority" binding:"omitempty,oneof=Critical High Medium Low"`
	StartDate     *string   `json:"startDate"`
	EndDate       *string   `json:"endDate"`
	Budget        *float64  `json:"budget"`
	Progress      *int16    `json:"progress" binding:"omitempty,gte=0,lte=100"`
	TeamMemberIDs *[]string `json:"teamMemberIds" binding:"omitempty,dive,uuid"`
}

// CreateGanttTaskRequest represents the payload for creating a schedule task
type CreateGanttTaskRequest struct {
	ProjectID string `json:"projectId" binding:"required,uuid"`
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// UpdateGanttTaskRequest represents the payload for updating a schedule task
type UpdateGanttTaskRequest struct {
	Name      *string `json:"name"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}
