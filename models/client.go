package models

import (
	"time"

	"gorm.io/gorm"
)

// SLAType represents the service level agreement tier of a client
type SLAType string

const (
	SLAPremium  SLAType = "Premium"
	SLAStandard SLAType = "Standard"
	SLABasic    SLAType = "Basic"
)

// SecurityLevelType represents the security classification of a client
type SecurityLevelType string

const (
	SecurityLevelCritical SecurityLevelType = "Critical"
	SecurityLevelHigh     SecurityLevelType = "High"
)

// BillingCycleType represents how often a client is billed
type BillingCycleType string

const (
	BillingMonthly   BillingCycleType = "Monthly"
	BillingQuarterly BillingCycleType = "Quarterly"
	BillingYearly    BillingCycleType = "Yearly"
)

// Client represents a customer organization. ShortName is the namespace
// for generated ticket and vulnerability display IDs and must match
// ^[A-Z]{3,4}$. It is treated as immutable once any display ID exists.
type Client struct {
	ID             string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name           string            `json:"name" gorm:"not null"`
	ShortName      string            `json:"shortName" gorm:"not null;uniqueIndex;check:chk_clients_short_name,short_name ~ '^[A-Z][A-Z][A-Z][A-Z]?$'"`
	Industry       string            `json:"industry" gorm:"default:null"`
	ContactPerson  string            `json:"contactPerson" gorm:"default:null"`
	Position       string            `json:"position" gorm:"default:null"`
	Phone          string            `json:"phone" gorm:"default:null"`
	Email          string            `json:"email" gorm:"default:null"`
	SLA            SLAType           `json:"sla" gorm:"type:varchar(20);not null;default:'Standard'"`
	SecurityLevel  SecurityLevelType `json:"securityLevel" gorm:"type:varchar(20);not null;default:'High'"`
	ContractNumber string            `json:"contractNumber" gorm:"default:null"`
	ContractDate   *time.Time        `json:"contractDate" gorm:"type:date"`
	ContractExpiry *time.Time        `json:"contractExpiry" gorm:"type:date"`
	BillingCycle   BillingCycleType  `json:"billingCycle" gorm:"type:varchar(20);not null;default:'Monthly'"`
	InfraCloud     bool              `json:"infraCloud" gorm:"not null;default:true"`
	InfraOnPrem    bool              `json:"infraOnPrem" gorm:"not null;default:true"`
	Notes          string            `json:"notes" gorm:"default:null"`
	IsDefault      bool              `json:"isDefault" gorm:"not null;default:false"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt    `json:"-" gorm:"index"`

	// Relations
	Contacts        []ClientContact `json:"contacts,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Projects        []Project       `json:"projects,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Assets          []Asset         `json:"assets,omitempty" gorm:"foreignKey:ClientID"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities,omitempty" gorm:"foreignKey:ClientID"`
	Tickets         []Ticket        `json:"tickets,omitempty" gorm:"foreignKey:ClientID"`
}

// ClientContact represents an additional contact person for a client
type ClientContact struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ClientID  string    `json:"clientId" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:null"`
	Phone     string    `json:"phone" gorm:"default:null"`
	Email     string    `json:"email" gorm:"default:null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
