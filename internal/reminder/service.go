package reminder

import (
	"context"
	"fmt"
	"time"

	"vitaplan/internal/repository"

	"github.com/google/uuid"
)

// Service answers the due/upcoming queries and records acknowledgments.
// It re-derives triggers from the store on every call.
type Service struct {
	repo repository.ActivityRepository
	acks AckStore
}

func NewService(repo repository.ActivityRepository, acks AckStore) *Service {
	return &Service{repo: repo, acks: acks}
}

// Due returns the owner's unacknowledged reminders triggered at or before
// asOf, ascending by (trigger time, activity id).
func (s *Service) Due(ctx context.Context, userID uint, asOf time.Time) ([]Reminder, error) {
	activities, err := s.repo.FindWithReminders(userID)
	if err != nil {
		return nil, fmt.Errorf("load reminder activities: %w", err)
	}

	due := Due(Derive(activities), asOf)
	out := make([]Reminder, 0, len(due))
	for _, r := range due {
		acked, err := s.acks.IsAcknowledged(ctx, userID, r.OccurrenceKey())
		if err != nil {
			return nil, fmt.Errorf("check acknowledgment: %w", err)
		}
		if !acked {
			out = append(out, r)
		}
	}
	return out, nil
}

// Upcoming returns reminders that will trigger strictly after asOf.
func (s *Service) Upcoming(ctx context.Context, userID uint, asOf time.Time) ([]Reminder, error) {
	activities, err := s.repo.FindWithReminders(userID)
	if err != nil {
		return nil, fmt.Errorf("load reminder activities: %w", err)
	}
	return Upcoming(Derive(activities), asOf), nil
}

// Acknowledge marks one trigger occurrence as surfaced. Idempotent.
func (s *Service) Acknowledge(ctx context.Context, userID uint, activityID uuid.UUID, trigger time.Time) error {
	key := fmt.Sprintf("%s:%d", activityID, trigger.Unix())
	return s.acks.Acknowledge(ctx, userID, key)
}
