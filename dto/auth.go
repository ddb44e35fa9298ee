package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vulndesk-api/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string             `json:"token"`
	User      models.UserAccount `json:"user"`
	ExpiresAt time.Time          `json:"expiresAt"`
}
