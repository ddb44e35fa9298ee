package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectType represents the kind of engagement a project covers
type ProjectType string

const (
	ProjectVulnerabilityScanning  ProjectType = "Vulnerability Scanning"
	ProjectPenetrationTest        ProjectType = "Penetration Test"
	ProjectNetworkScanning        ProjectType = "Network Scanning"
	ProjectBAS                    ProjectType = "BAS"
	ProjectWebApplicationScanning ProjectType = "Web Application Scanning"
	ProjectComplianceCheck        ProjectType = "Compliance Check"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectOnHold    ProjectStatus = "On Hold"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectCancelled ProjectStatus = "Cancelled"
)

// Project represents an engagement for a client
type Project struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ClientID    string         `json:"clientId" gorm:"type:uuid;not null;index"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"default:null"`
	Type        ProjectType    `json:"type" gorm:"type:varchar(40);not null"`
	Status      ProjectStatus  `json:"status" gorm:"type:varchar(20);not null;default:'Active'"`
	Priority    PriorityType   `json:"priority" gorm:"type:varchar(10);not null;default:'High'"`
	StartDate   time.Time      `json:"startDate" gorm:"type:date;not null;check:chk_project_dates,start_date <= end_date"`
	EndDate     time.Time      `json:"endDate" gorm:"type:date;not null"`
	Budget      *float64       `json:"budget"`
	Progress    int16          `json:"progress" gorm:"not null;default:0;check:chk_project_progress,progress >= 0 AND progress <= 100"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Client      Client              `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	TeamMembers []ProjectTeamMember `json:"teamMembers,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	GanttTasks  []GanttTask         `json:"ganttTasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// ProjectTeamMember assigns a worker account to a project team
type ProjectTeamMember struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_worker"`
	WorkerID  string    `json:"workerId" gorm:"type:uuid;not null;uniqueIndex:idx_project_worker"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Worker UserAccount `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
}

// GanttTask represents a schedule entry inside a project's timeline
type GanttTask struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	StartDate time.Time `json:"startDate" gorm:"type:date;not null"`
	EndDate   time.Time `json:"endDate" gorm:"type:date;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
