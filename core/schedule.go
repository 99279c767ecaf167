package core

import (
	"context"
	"time"
)

// ScheduleEntry is one item of a user's daily schedule. Date is a calendar
// date in YYYY-MM-DD form; times are HH:MM strings, opaque to the store.
type ScheduleEntry struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	Description string `json:"description"`
}

// Today returns the current UTC calendar date in the store's date format.
func Today() string {
	return time.Now().UTC().Format(time.DateOnly)
}

type ScheduleStore interface {
	CreateEntry(ctx context.Context, entry ScheduleEntry) (*ScheduleEntry, error)

	// GetEntriesByUserAndDate returns the user's entries for the date, oldest
	// start time first. It returns an empty slice when there are none.
	GetEntriesByUserAndDate(ctx context.Context, userID, date string) ([]ScheduleEntry, error)
}
