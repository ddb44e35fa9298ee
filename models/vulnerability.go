package models

import (
	"time"

	"gorm.io/gorm"
)

// VulnStatus represents the remediation state of a vulnerability
type VulnStatus string

const (
	VulnOpen       VulnStatus = "Open"
	VulnInProgress VulnStatus = "In Progress"
	VulnFixed      VulnStatus = "Fixed"
	VulnVerified   VulnStatus = "Verified"
)

// Vulnerability represents a security finding on a client, optionally
// tied to one of its assets. DisplayID (V-{SHORT}-{NNN}) is assigned at
// creation time and never changes or gets reused.
type Vulnerability struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DisplayID    string         `json:"displayId" gorm:"not null;uniqueIndex"`
	ClientID     string         `json:"clientId" gorm:"type:uuid;not null;index"`
	AssetID      *string        `json:"assetId" gorm:"type:uuid;index;default:null"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description" gorm:"default:null"`
	AssetTypeID  *string        `json:"assetTypeId" gorm:"type:uuid;default:null"`
	ScannerID    *string        `json:"scannerId" gorm:"type:uuid;default:null"`
	Status       VulnStatus     `json:"status" gorm:"type:varchar(20);not null"`
	Criticality  PriorityType   `json:"criticality" gorm:"type:varchar(10);not null"`
	CVSS         *float64       `json:"cvss" gorm:"check:chk_vuln_cvss,cvss IS NULL OR (cvss >= 0 AND cvss <= 10)"`
	CVE          string         `json:"cve" gorm:"default:null"`
	Discovered   *time.Time     `json:"discovered" gorm:"type:date"`
	LastModified *time.Time     `json:"lastModified" gorm:"type:date"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Client    Client                `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Asset     *Asset                `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
	AssetType *AssetType            `json:"assetType,omitempty" gorm:"foreignKey:AssetTypeID"`
	Scanner   *Scanner              `json:"scanner,omitempty" gorm:"foreignKey:ScannerID"`
	Tickets   []TicketVulnerability `json:"tickets,omitempty" gorm:"foreignKey:VulnerabilityID"`
}
