package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/services"
)

// Login handles user authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	authResponse, err := services.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication failed",
			"error":   err.Error(),
		})
		return
	}

	// Set token as HttpOnly cookie (expires in 24 hours)
	c.SetCookie(
		"access_token",     // name
		authResponse.Token, // value
		86400,              // max age (24 hours in seconds)
		"/",                // path
		"",                 // domain
		true,               // secure (HTTPS only)
		true,               // httpOnly (not accessible via JS)
	)

	// Also return token in response body for clients that prefer Bearer auth
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   authResponse,
	})
}

// Logout clears the authentication cookie
func Logout(c *gin.Context) {
	c.SetCookie(
		"access_token", // name
		"",             // value (empty)
		-1,             // max age (expired)
		"/",            // path
		"",             // domain
		true,           // secure (HTTPS only)
		true,           // httpOnly (not accessible via JS)
	)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the currently authenticated account's profile
func GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return
	}

	account, err := services.GetAccount(userID.(string))
	if err != nil {
		respondError(c, "Failed to retrieve profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   account,
	})
}
