package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/trackline/internal/domain"
	"github.com/alexanderramin/trackline/internal/repository"
)

type trackerService struct {
	trackers repository.TrackerRepo
}

func NewTrackerService(trackers repository.TrackerRepo) TrackerService {
	return &trackerService{trackers: trackers}
}

func (s *trackerService) Create(ctx context.Context, t *domain.Tracker) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Type == "" {
		t.Type = domain.TrackerFeature
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	t.StartDate = domain.DayOf(t.StartDate)
	t.EndDate = domain.DayOf(t.EndDate)
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating tracker: %w", err)
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.trackers.Create(ctx, t)
}

func (s *trackerService) GetByID(ctx context.Context, id string) (*domain.Tracker, error) {
	return s.trackers.GetByID(ctx, id)
}

func (s *trackerService) List(ctx context.Context) ([]*domain.Tracker, error) {
	return s.trackers.List(ctx)
}

func (s *trackerService) Update(ctx context.Context, t *domain.Tracker) error {
	t.StartDate = domain.DayOf(t.StartDate)
	t.EndDate = domain.DayOf(t.EndDate)
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating tracker: %w", err)
	}
	t.UpdatedAt = time.Now().UTC()
	return s.trackers.Update(ctx, t)
}

func (s *trackerService) Delete(ctx context.Context, id string) error {
	return s.trackers.Delete(ctx, id)
}

func (s *trackerService) Reschedule(ctx context.Context, id string, start, end time.Time) (*domain.Tracker, error) {
	start, end = domain.DayOf(start), domain.DayOf(end)
	if start.After(end) {
		return nil, errors.New("start date cannot be after end date")
	}
	t, err := s.trackers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.StartDate = start
	t.EndDate = end
	t.UpdatedAt = time.Now().UTC()
	if err := s.trackers.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
