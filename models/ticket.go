package models

import (
	"time"

	"gorm.io/gorm"
)

// TicketStatus represents the workflow state of a ticket
type TicketStatus string

const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "In Progress"
	TicketFixed      TicketStatus = "Fixed"
	TicketVerified   TicketStatus = "Verified"
	TicketClosed     TicketStatus = "Closed"
)

// Ticket represents a remediation work item for a client. DisplayID
// (T-{SHORT}-{NNN}) is assigned at creation time and never reused.
type Ticket struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DisplayID   string         `json:"displayId" gorm:"not null;uniqueIndex"`
	ClientID    string         `json:"clientId" gorm:"type:uuid;not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"default:null"`
	AssigneeID  *string        `json:"assigneeId" gorm:"type:uuid;default:null"`
	ReporterID  *string        `json:"reporterId" gorm:"type:uuid;default:null"`
	Priority    PriorityType   `json:"priority" gorm:"type:varchar(10);not null"`
	Status      TicketStatus   `json:"status" gorm:"type:varchar(20);not null;default:'Open'"`
	DueDate     *time.Time     `json:"dueDate" gorm:"type:date"`
	Resolution  string         `json:"resolution" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Client          Client                `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Assignee        *UserAccount          `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Reporter        *UserAccount          `json:"reporter,omitempty" gorm:"foreignKey:ReporterID"`
	Messages        []TicketMessage       `json:"messages,omitempty" gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Vulnerabilities []TicketVulnerability `json:"vulnerabilities,omitempty" gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

// TicketMessage represents a comment on a ticket
type TicketMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TicketID  string    `json:"ticketId" gorm:"type:uuid;not null;index"`
	AuthorID  *string   `json:"authorId" gorm:"type:uuid;default:null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Author *UserAccount `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TicketVulnerability is the junction row linking a ticket to a
// vulnerability. Rows cascade on hard deletion of either parent but are
// left in place by soft deletion, so history stays joinable.
type TicketVulnerability struct {
	TicketID        string    `json:"ticketId" gorm:"primaryKey;type:uuid"`
	VulnerabilityID string    `json:"vulnerabilityId" gorm:"primaryKey;type:uuid"`
	CreatedAt       time.Time `json:"createdAt"`

	Ticket        Ticket        `json:"ticket,omitempty" gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Vulnerability Vulnerability `json:"vulnerability,omitempty" gorm:"foreignKey:VulnerabilityID;constraint:OnDelete:CASCADE"`
}
