package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	v1 "github.com/vulndesk-api/api/v1"
	"github.com/vulndesk-api/config"
	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/middleware"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Structured logger for request logging and startup messages
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	// Connect and migrate the database
	database.Initialize()
	defer database.Close()

	// Seed reference catalogs and the admin account, then align the
	// display ID counters with whatever data is already present
	if err := database.Seed(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	if err := database.SyncDisplaySequences(); err != nil {
		log.Fatalf("Failed to sync display ID sequences: %v", err)
	}

	// Set Gin mode
	if config.GetEnv("GIN_MODE", "release") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 VulnDesk API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
