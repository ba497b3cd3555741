package service

import (
	"context"
	"time"

	"github.com/alexanderramin/trackline/internal/domain"
	"github.com/alexanderramin/trackline/internal/importer"
	"github.com/alexanderramin/trackline/internal/timeline"
)

type TrackerService interface {
	Create(ctx context.Context, t *domain.Tracker) error
	GetByID(ctx context.Context, id string) (*domain.Tracker, error)
	List(ctx context.Context) ([]*domain.Tracker, error)
	Update(ctx context.Context, t *domain.Tracker) error
	Delete(ctx context.Context, id string) error

	// Reschedule moves a tracker to a new date range, validating the range
	// before persisting.
	Reschedule(ctx context.Context, id string, start, end time.Time) (*domain.Tracker, error)
}

// Layout is one computed timeline layout: the trackers it covers, their
// optimized lane assignments, the per-pass improvements, and the metrics of
// the final arrangement.
type Layout struct {
	Trackers     []*domain.Tracker
	Assignments  []domain.LaneAssignment
	Improvements []timeline.Improvement
	Metrics      timeline.Metrics
}

type LayoutService interface {
	// Layout assigns and optimizes lanes for every stored tracker.
	Layout(ctx context.Context, cfg timeline.Config) (*Layout, error)

	// LayoutRange does the same for trackers intersecting [start, end].
	LayoutRange(ctx context.Context, start, end time.Time, cfg timeline.Config) (*Layout, error)

	// CommitResize applies a validated resize of one tracker edge and
	// persists the corrected range. The returned result carries any
	// corrections that were applied.
	CommitResize(ctx context.Context, id string, handle timeline.HandleKind, proposed time.Time, c timeline.Constraints, mode timeline.ViewMode) (timeline.ResizeResult, error)
}

// ImportResult holds the outcome of a tracker import.
type ImportResult struct {
	TrackerCount int
	Trackers     []*domain.Tracker
}

type ImportService interface {
	ImportTrackers(ctx context.Context, filePath string) (*ImportResult, error)
	ImportTrackersFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
