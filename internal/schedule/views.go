// Package schedule contains the read-side projections of the activity
// collection. All three views are pure functions over a snapshot fetched
// from the store; nothing here mutates an activity or caches a result, so
// the views can never drift apart after a write.
package schedule

import (
	"sort"
	"time"

	"vitaplan/internal/models"
)

type Filters struct {
	Category models.Category
	Status   models.Status
}

// Timeline returns the activities scheduled on the given calendar day,
// ascending by start time. Equal start times keep their input order.
func Timeline(activities []models.Activity, date time.Time) []models.Activity {
	day := make([]models.Activity, 0)
	for _, a := range activities {
		if sameDate(a.Date, date) {
			day = append(day, a)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return clockLess(day[i].StartTime, day[j].StartTime)
	})
	return day
}

// WeekOf returns the 7 calendar days of the week containing anchor,
// starting on Sunday.
func WeekOf(anchor time.Time) [7]time.Time {
	start := midnight(anchor).AddDate(0, 0, -int(anchor.Weekday()))
	var days [7]time.Time
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeeklyGrid buckets activities into the 7 days of the week containing
// anchor, keyed by ISO date. Every day is present, empty days included;
// each in-window activity lands in exactly one bucket. Buckets are ordered
// like a Timeline.
func WeeklyGrid(activities []models.Activity, anchor time.Time) map[string][]models.Activity {
	grid := make(map[string][]models.Activity, 7)
	for _, day := range WeekOf(anchor) {
		grid[day.Format(models.DateLayout)] = Timeline(activities, day)
	}
	return grid
}

// FlatList applies optional category/status equality filters, then sorts
// ascending by (date, start time).
func FlatList(activities []models.Activity, f Filters) []models.Activity {
	list := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		list = append(list, a)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !sameDate(list[i].Date, list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		return clockLess(list[i].StartTime, list[j].StartTime)
	})
	return list
}

// clockLess orders HH:MM strings by parsed value. The store canonicalizes
// to zero-padded form on write, but the projections must not depend on it.
func clockLess(a, b string) bool {
	ah, am, aerr := models.ParseClock(a)
	bh, bm, berr := models.ParseClock(b)
	if aerr != nil || berr != nil {
		return a < b
	}
	if ah != bh {
		return ah < bh
	}
	return am < bm
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
