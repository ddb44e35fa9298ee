package main

import (
	"log"

	"github.com/vulndesk-api/config"
	"github.com/vulndesk-api/database"
)

func main() {
	log.Println("Seeding database...")

	config.LoadEnv()
	database.Initialize()

	if err := database.Seed(); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}
	if err := database.SyncDisplaySequences(); err != nil {
		log.Fatalf("Failed to sync display sequences: %v", err)
	}

	log.Println("Database seeding completed successfully!")
}
