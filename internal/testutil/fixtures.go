package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/trackline/internal/domain"
)

// Tracker options
type TrackerOption func(*domain.Tracker)

func WithType(tt domain.TrackerType) TrackerOption {
	return func(t *domain.Tracker) {
		t.Type = tt
	}
}

func WithPriority(p domain.Priority) TrackerOption {
	return func(t *domain.Tracker) {
		t.Priority = p
	}
}

func WithStatus(s string) TrackerOption {
	return func(t *domain.Tracker) {
		t.Status = s
	}
}

func WithDates(start, end time.Time) TrackerOption {
	return func(t *domain.Tracker) {
		t.StartDate = domain.DayOf(start)
		t.EndDate = domain.DayOf(end)
	}
}

func WithID(id string) TrackerOption {
	return func(t *domain.Tracker) {
		t.ID = id
	}
}

// NewTestTracker builds a one-week feature tracker starting today, with
// overrides applied via options.
func NewTestTracker(title string, opts ...TrackerOption) *domain.Tracker {
	now := time.Now().UTC()
	today := domain.DayOf(now)
	t := &domain.Tracker{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.TrackerFeature,
		Priority:  domain.PriorityMedium,
		StartDate: today,
		EndDate:   today.AddDate(0, 0, 6),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
