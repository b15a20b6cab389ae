// Package reminder derives due and upcoming reminders from the activity
// store. Derivation is pure: a trigger time is always recomputed from the
// activity's own fields, never stored, so an edit to the start time or the
// lead interval can never leave a stale trigger reachable.
package reminder

import (
	"fmt"
	"sort"
	"time"

	"vitaplan/internal/models"

	"github.com/google/uuid"
)

// Reminder is one derived trigger occurrence for an activity.
type Reminder struct {
	ActivityID  uuid.UUID       `json:"activity_id"`
	Title       string          `json:"title"`
	Category    models.Category `json:"category"`
	StartAt     time.Time       `json:"start_at"`
	TriggerTime time.Time       `json:"trigger_time"`
	LeadMinutes int             `json:"lead_minutes"`
}

// OccurrenceKey identifies this exact trigger occurrence. Editing the
// activity's start time, lead minutes or reminder flag yields a different
// key, so acknowledgment of the old occurrence no longer applies.
func (r Reminder) OccurrenceKey() string {
	return fmt.Sprintf("%s:%d", r.ActivityID, r.TriggerTime.Unix())
}

// Derive computes the reminder for every activity with reminders enabled.
func Derive(activities []models.Activity) []Reminder {
	reminders := make([]Reminder, 0, len(activities))
	for _, a := range activities {
		if !a.ReminderEnabled || a.ReminderLeadMinutes <= 0 {
			continue
		}
		// An unparseable start time cannot produce a trigger.
		start, err := a.StartAt()
		if err != nil {
			continue
		}
		reminders = append(reminders, Reminder{
			ActivityID:  a.ID,
			Title:       a.Title,
			Category:    a.Category,
			StartAt:     start,
			TriggerTime: start.Add(-time.Duration(a.ReminderLeadMinutes) * time.Minute),
			LeadMinutes: a.ReminderLeadMinutes,
		})
	}
	sortReminders(reminders)
	return reminders
}

// Due returns reminders whose trigger time is at or before asOf,
// ascending by trigger time with the activity id as tie-break.
func Due(reminders []Reminder, asOf time.Time) []Reminder {
	due := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		if !r.TriggerTime.After(asOf) {
			due = append(due, r)
		}
	}
	sortReminders(due)
	return due
}

// Upcoming returns reminders whose trigger time is strictly after asOf,
// in the same order as Due.
func Upcoming(reminders []Reminder, asOf time.Time) []Reminder {
	upcoming := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.TriggerTime.After(asOf) {
			upcoming = append(upcoming, r)
		}
	}
	sortReminders(upcoming)
	return upcoming
}

func sortReminders(reminders []Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		if !reminders[i].TriggerTime.Equal(reminders[j].TriggerTime) {
			return reminders[i].TriggerTime.Before(reminders[j].TriggerTime)
		}
		return reminders[i].ActivityID.String() < reminders[j].ActivityID.String()
	})
}
