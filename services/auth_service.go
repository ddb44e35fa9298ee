package services

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// This file uses dto.TokenClaims, dto.LoginRequest and dto.AuthResponse
// which are defined in the dto/auth.go file

// Login authenticates a user account and returns a signed token
func Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	userRepo := repositories.NewUserAccountRepository()

	account, err := userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, expiresAt, err := GenerateToken(account.ID, account.Email, string(account.UserType))
	if err != nil {
		return nil, err
	}

	// Password never leaves the service layer
	account.Password = ""

	return &dto.AuthResponse{
		Token:     token,
		User:      account,
		ExpiresAt: expiresAt,
	}, nil
}

// GetAccount retrieves the account behind a validated token
func GetAccount(id string) (models.UserAccount, error) {
	account, err := repositories.NewUserAccountRepository().FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserAccount{}, errors.Wrap(ErrNotFound, "account")
	}
	if err != nil {
		return models.UserAccount{}, err
	}
	account.Password = ""
	return account, nil
}

// GenerateToken generates a new JWT token for a user account
func GenerateToken(userID, email, userType string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	// Token expires in 24 hours
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID:   userID,
		Email:    email,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns its claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
