package models

import (
	"time"

	"gorm.io/gorm"
)

// AssetStatus represents the operational state of an asset.
// Values are kept verbatim as the frontend displays them.
type AssetStatus string

const (
	AssetInOperation    AssetStatus = "В эксплуатации"
	AssetUnavailable    AssetStatus = "Недоступен"
	AssetInMaintenance  AssetStatus = "В обслуживании"
	AssetDecommissioned AssetStatus = "Выведен из эксплуатации"
)

// Asset represents a client's IT asset (server, workstation, service, ...)
type Asset struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ClientID        string         `json:"clientId" gorm:"type:uuid;not null;index"`
	Name            string         `json:"name" gorm:"not null"`
	TypeID          string         `json:"typeId" gorm:"type:uuid;not null"`
	IPAddress       string         `json:"ipAddress" gorm:"default:null"`
	OperatingSystem string         `json:"operatingSystem" gorm:"default:null"`
	Status          AssetStatus    `json:"status" gorm:"type:varchar(40);not null"`
	Criticality     PriorityType   `json:"criticality" gorm:"type:varchar(10);not null"`
	LastScan        *time.Time     `json:"lastScan"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Client          Client          `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Type            AssetType       `json:"type,omitempty" gorm:"foreignKey:TypeID"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities,omitempty" gorm:"foreignKey:AssetID"`
}
