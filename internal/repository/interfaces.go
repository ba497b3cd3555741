package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/trackline/internal/domain"
)

// TrackerRepo persists trackers. Lane assignments are deliberately not
// stored: they are transient outputs of one layout run.
type TrackerRepo interface {
	Create(ctx context.Context, t *domain.Tracker) error
	GetByID(ctx context.Context, id string) (*domain.Tracker, error)
	List(ctx context.Context) ([]*domain.Tracker, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]*domain.Tracker, error)
	Update(ctx context.Context, t *domain.Tracker) error
	Delete(ctx context.Context, id string) error
}
