// The poller agent is the session-side half of the reminder engine: it
// polls the API for due reminders, surfaces each one exactly once, and
// reports acknowledgments back.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitaplan/internal/client"
	"vitaplan/internal/observability"
	"vitaplan/internal/poller"
	"vitaplan/internal/reminder"
	"vitaplan/internal/schedule"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// stdoutAlerter prints each newly due reminder once.
type stdoutAlerter struct{}

func (stdoutAlerter) Alert(r reminder.Reminder) {
	badge := schedule.BadgeFor(r.Category)
	fmt.Printf("%s  %s starts at %s (in %d min)\n",
		badge.Icon, r.Title, r.StartAt.Format("15:04"), r.LeadMinutes)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment")
	}

	observability.InitLogger("./logs/poller.log")
	observability.InitMetrics()
	logger := observability.Logger
	defer logger.Sync()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
	token := os.Getenv("API_TOKEN")
	if token == "" {
		logger.Fatal("missing_api_token")
	}

	interval := poller.DefaultInterval
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			logger.Fatal("invalid_poll_interval", zap.String("value", v), zap.Error(err))
		}
		interval = d
	}

	apiClient := client.New(apiURL, token, 10*time.Second)
	p := poller.New(apiClient, stdoutAlerter{}, logger, poller.WithInterval(interval))

	logger.Info("poller_starting",
		zap.String("api_url", apiURL),
		zap.Duration("interval", interval),
	)
	p.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("poller_stopping")
	p.Stop()
}
