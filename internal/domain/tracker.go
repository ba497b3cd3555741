package domain

import (
	"errors"
	"fmt"
	"time"
)

// Tracker is a date-ranged work item laid out on the timeline.
// StartDate and EndDate are day-granular (UTC midnight); the invariant
// StartDate <= EndDate is a caller responsibility; see Validate.
type Tracker struct {
	ID        string
	Title     string
	Type      TrackerType
	Status    string
	Priority  Priority
	StartDate time.Time
	EndDate   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LaneAssignment places one tracker in a horizontal lane. The date range is
// denormalized from the tracker at assignment time so downstream geometry
// never needs the tracker set; it must be re-synced if trackers are edited
// between assignment runs.
type LaneAssignment struct {
	TrackerID string
	LaneIndex int
	StartDate time.Time
	EndDate   time.Time
}

// Duration returns the tracker's inclusive duration in days.
func (t *Tracker) Duration() int {
	return DurationDays(t.StartDate, t.EndDate)
}

// Validate checks the field invariants a tracker must satisfy before it
// can be persisted or laid out.
func (t *Tracker) Validate() error {
	if t.Title == "" {
		return errors.New("title is required")
	}
	if !ValidTrackerTypes[string(t.Type)] {
		return fmt.Errorf("invalid tracker type %q", t.Type)
	}
	if !ValidPriorities[string(t.Priority)] {
		return fmt.Errorf("invalid priority %q", t.Priority)
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if t.StartDate.After(t.EndDate) {
		return errors.New("start date cannot be after end date")
	}
	return nil
}

// Duration returns the assignment's inclusive duration in days.
func (a LaneAssignment) Duration() int {
	return DurationDays(a.StartDate, a.EndDate)
}
