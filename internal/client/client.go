// Package client is the typed HTTP client the poller agent uses to talk to
// the reminder surface of the API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"vitaplan/internal/reminder"

	"github.com/google/uuid"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

type remindersEnvelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Count   int                 `json:"count"`
	Data    []reminder.Reminder `json:"data"`
}

// DueReminders fetches the unacknowledged reminders due at asOf.
func (c *Client) DueReminders(ctx context.Context, asOf time.Time) ([]reminder.Reminder, error) {
	endpoint := fmt.Sprintf("%s/reminders/due?as_of=%s",
		c.baseURL, url.QueryEscape(asOf.Format(time.RFC3339)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch due reminders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch due reminders: unexpected status %d", resp.StatusCode)
	}

	var envelope remindersEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode due reminders: %w", err)
	}
	return envelope.Data, nil
}

// Acknowledge reports one surfaced occurrence back to the server.
func (c *Client) Acknowledge(ctx context.Context, activityID uuid.UUID, trigger time.Time) error {
	payload, err := json.Marshal(map[string]interface{}{
		"activity_id":  activityID.String(),
		"trigger_time": trigger.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/reminders/acknowledge", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("acknowledge reminder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("acknowledge reminder: unexpected status %d", resp.StatusCode)
	}
	return nil
}
