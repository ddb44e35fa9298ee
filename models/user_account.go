package models

import (
	"time"

	"gorm.io/gorm"
)

// UserType distinguishes internal workers from client-side users
type UserType string

const (
	UserTypeWorker UserType = "worker"
	UserTypeClient UserType = "client"
)

// UserAccount represents a person who can log in: an internal worker or
// a contact on the client side. ClientID is required when and only when
// the account type is client.
type UserAccount struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FullName  string         `json:"fullName" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null;uniqueIndex"`
	Password  string         `json:"-" gorm:"not null"` // bcrypt hash, never exposed in JSON
	Phone     string         `json:"phone" gorm:"default:null"`
	UserType  UserType       `json:"userType" gorm:"type:varchar(10);not null;default:'worker'"`
	ClientID  *string        `json:"clientId" gorm:"type:uuid;default:null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}
