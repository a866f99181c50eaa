package event

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrEmptyDate     = errors.New("date cannot be empty")
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
	ErrEmptyStart    = errors.New("start time cannot be empty")
	ErrEmptyLocation = errors.New("location cannot be empty")
)

// DateLayout is the storage format for event dates.
const DateLayout = "2006-01-02"

// Event holds state for a publicly listed event.
// Cost is in euro cents; zero means free. Capacity zero means unlimited.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Location    string
	Cost        int
	Capacity    int
}

// Validate checks if the Event has valid data.
// PRE: Event struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(e.Date) == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return ErrInvalidDate
	}
	if strings.TrimSpace(e.StartTime) == "" {
		return ErrEmptyStart
	}
	if strings.TrimSpace(e.Location) == "" {
		return ErrEmptyLocation
	}
	return nil
}

// IsPast returns true if the event date is strictly before the given day.
// INVARIANT: Event fields are not mutated
func (e *Event) IsPast(now time.Time) bool {
	d, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return false
	}
	return d.Before(now.Truncate(24 * time.Hour))
}
