// Seeds a week of demo activities for local development.
package main

import (
	"flag"
	"log"
	"time"

	"vitaplan/database"
	"vitaplan/internal/config"
	"vitaplan/internal/models"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

var template = []struct {
	title    string
	category models.Category
	start    string
	end      string
	lead     int
}{
	{"Morning run", models.CategoryWorkout, "07:00", "07:30", 15},
	{"Breakfast", models.CategoryMeal, "08:00", "08:30", 0},
	{"Lecture notes review", models.CategoryStudy, "09:00", "11:00", 10},
	{"Lunch", models.CategoryMeal, "12:30", "13:00", 0},
	{"Afternoon study block", models.CategoryStudy, "14:00", "16:00", 10},
	{"Coffee break", models.CategoryBreak, "16:00", "16:15", 0},
	{"Sleep", models.CategorySleep, "22:30", "23:59", 30},
}

func main() {
	userID := flag.Uint("user", 1, "Owner user ID for the seeded activities")
	days := flag.Int("days", 7, "Number of days to seed, starting today")
	flag.Parse()

	cfg := config.Load()
	if err := database.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	today := time.Now()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)

	created := 0
	for d := 0; d < *days; d++ {
		date := start.AddDate(0, 0, d)
		for _, t := range template {
			activity := &models.Activity{
				UserID:              *userID,
				Title:               t.title,
				Category:            t.category,
				Date:                date,
				StartTime:           t.start,
				EndTime:             t.end,
				Status:              models.StatusPending,
				ReminderEnabled:     t.lead > 0,
				ReminderLeadMinutes: t.lead,
			}
			if err := database.DB.Create(activity).Error; err != nil {
				log.Fatalf("Failed to seed activity %q on %s: %v", t.title, date.Format(models.DateLayout), err)
			}
			created++
		}
	}

	log.Printf("Seeded %d activities for user %d across %d days", created, *userID, *days)
}
