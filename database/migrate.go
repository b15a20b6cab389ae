package database

import (
	"log"

	"vitaplan/internal/models"
)

func Migrate() error {
	log.Println("Running database migrations...")

	if err := DB.AutoMigrate(&models.Activity{}); err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
