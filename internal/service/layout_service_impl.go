package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/trackline/internal/domain"
	"github.com/alexanderramin/trackline/internal/repository"
	"github.com/alexanderramin/trackline/internal/timeline"
)

type layoutService struct {
	trackers repository.TrackerRepo
	now      func() time.Time
}

func NewLayoutService(trackers repository.TrackerRepo) LayoutService {
	return &layoutService{trackers: trackers, now: func() time.Time { return time.Now().UTC() }}
}

func (s *layoutService) Layout(ctx context.Context, cfg timeline.Config) (*Layout, error) {
	trackers, err := s.trackers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading trackers: %w", err)
	}
	return buildLayout(trackers, cfg), nil
}

func (s *layoutService) LayoutRange(ctx context.Context, start, end time.Time, cfg timeline.Config) (*Layout, error) {
	trackers, err := s.trackers.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading trackers in range: %w", err)
	}
	return buildLayout(trackers, cfg), nil
}

func buildLayout(trackers []*domain.Tracker, cfg timeline.Config) *Layout {
	assignments := timeline.AssignLanes(trackers)
	result := timeline.Optimize(trackers, assignments, cfg)
	return &Layout{
		Trackers:     trackers,
		Assignments:  result.Optimized,
		Improvements: result.Improvements,
		Metrics:      result.Metrics,
	}
}

func (s *layoutService) CommitResize(ctx context.Context, id string, handle timeline.HandleKind, proposed time.Time, c timeline.Constraints, mode timeline.ViewMode) (timeline.ResizeResult, error) {
	t, err := s.trackers.GetByID(ctx, id)
	if err != nil {
		return timeline.ResizeResult{}, err
	}

	var res timeline.ResizeResult
	switch handle {
	case timeline.HandleStart:
		res = timeline.ResizeFromStart(t, proposed, c, mode, s.now())
	case timeline.HandleEnd:
		res = timeline.ResizeFromEnd(t, proposed, c, mode, s.now())
	default:
		return timeline.ResizeResult{}, fmt.Errorf("no resize handle for tracker %s", id)
	}

	t.StartDate = res.NewStartDate
	t.EndDate = res.NewEndDate
	t.UpdatedAt = s.now()
	if err := s.trackers.Update(ctx, t); err != nil {
		return timeline.ResizeResult{}, fmt.Errorf("persisting resize: %w", err)
	}
	return res, nil
}
