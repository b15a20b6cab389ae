package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryWorkout Category = "workout"
	CategoryStudy   Category = "study"
	CategorySleep   Category = "sleep"
	CategoryMeal    Category = "meal"
	CategoryBreak   Category = "break"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWorkout, CategoryStudy, CategorySleep, CategoryMeal, CategoryBreak:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Activity is one time-boxed entry on a user's daily schedule. Times of day
// are stored as zero-padded "HH:MM" strings in the host's local calendar;
// Date carries only the calendar day (midnight local).
type Activity struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	UserID              uint      `gorm:"index" json:"user_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Category            Category  `json:"category"`
	Date                time.Time `gorm:"index" json:"date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	Status              Status    `gorm:"default:pending" json:"status"`
	ReminderEnabled     bool      `json:"reminder_enabled"`
	ReminderLeadMinutes int       `json:"reminder_lead_minutes"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// StartAt combines Date and StartTime into a wall-clock instant. A record
// whose StartTime no longer parses yields an error instead of a silent
// midnight-based instant.
func (a *Activity) StartAt() (time.Time, error) {
	h, m, err := ParseClock(a.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), h, m, 0, 0, a.Date.Location()), nil
}

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseClock parses an "HH:MM" local time of day. The layout tolerates a
// non-padded hour; callers that store the value canonicalize it first.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// ActivityInput is the write payload for create and full-replace update.
// Status is deliberately absent: it only moves through the status endpoint.
type ActivityInput struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	Category            string `json:"category"`
	Date                string `json:"date"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	ReminderEnabled     bool   `json:"reminder_enabled"`
	ReminderLeadMinutes int    `json:"reminder_lead_minutes"`
}

// Validate checks the input and returns a field-keyed error map. An empty
// map means the input is acceptable; nothing is written on failure.
func (in *ActivityInput) Validate() map[string]string {
	errs := make(map[string]string)

	if in.Title == "" {
		errs["title"] = "Title is required"
	}
	if !Category(in.Category).Valid() {
		errs["category"] = "Category must be one of: workout, study, sleep, meal, break"
	}
	if in.Date == "" {
		errs["date"] = "Date is required"
	} else if _, err := time.ParseInLocation(DateLayout, in.Date, time.Local); err != nil {
		errs["date"] = "Date must be in YYYY-MM-DD format"
	}

	startOK, endOK := true, true
	var startH, startM, endH, endM int
	if in.StartTime == "" {
		errs["start_time"] = "Start time is required"
		startOK = false
	} else if h, m, err := ParseClock(in.StartTime); err != nil {
		errs["start_time"] = "Start time must be in HH:MM format"
		startOK = false
	} else {
		startH, startM = h, m
	}
	if in.EndTime == "" {
		errs["end_time"] = "End time is required"
		endOK = false
	} else if h, m, err := ParseClock(in.EndTime); err != nil {
		errs["end_time"] = "End time must be in HH:MM format"
		endOK = false
	} else {
		endH, endM = h, m
	}
	// The "15:04" layout accepts non-padded hours, so the raw strings do
	// not order reliably; the strict start < end check compares parsed
	// clock values.
	if startOK && endOK && endH*60+endM <= startH*60+startM {
		errs["end_time"] = "End time must be after start time"
	}

	if in.ReminderEnabled && in.ReminderLeadMinutes <= 0 {
		errs["reminder_lead_minutes"] = "Reminder lead minutes must be a positive integer"
	}

	return errs
}

// ToActivity builds the persisted record for an owner. Call Validate first.
func (in *ActivityInput) ToActivity(userID uint) *Activity {
	a := &Activity{UserID: userID, Status: StatusPending}
	in.Apply(a)
	return a
}

// Apply replaces every user-editable field with the input's values.
// Identity, owner and status are untouched (full-field replace semantics).
func (in *ActivityInput) Apply(a *Activity) {
	date, _ := time.ParseInLocation(DateLayout, in.Date, time.Local)
	a.Title = in.Title
	a.Description = in.Description
	a.Category = Category(in.Category)
	a.Date = date
	a.StartTime = canonicalClock(in.StartTime)
	a.EndTime = canonicalClock(in.EndTime)
	a.ReminderEnabled = in.ReminderEnabled
	if in.ReminderEnabled {
		a.ReminderLeadMinutes = in.ReminderLeadMinutes
	} else {
		a.ReminderLeadMinutes = 0
	}
}

// canonicalClock zero-pads an already validated HH:MM string so stored
// values compare and sort correctly as text.
func canonicalClock(s string) string {
	h, m, err := ParseClock(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

type StatusInput struct {
	Status string `json:"status"`
}
