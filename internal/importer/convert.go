package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/trackline/internal/domain"
)

// Convert transforms a validated ImportSchema into trackers ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid.
func Convert(schema *ImportSchema) ([]*domain.Tracker, error) {
	now := time.Now().UTC()

	trackers := make([]*domain.Tracker, 0, len(schema.Trackers))
	for _, ti := range schema.Trackers {
		start, err := time.Parse(dateLayout, ti.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date %q: %w", ti.StartDate, err)
		}
		end, err := time.Parse(dateLayout, ti.EndDate)
		if err != nil {
			return nil, fmt.Errorf("parsing end_date %q: %w", ti.EndDate, err)
		}

		typ := ti.Type
		if typ == "" {
			typ = string(domain.TrackerFeature)
		}
		priority := ti.Priority
		if priority == "" {
			priority = string(domain.PriorityMedium)
		}

		trackers = append(trackers, &domain.Tracker{
			ID:        uuid.New().String(),
			Title:     ti.Title,
			Type:      domain.TrackerType(typ),
			Priority:  domain.Priority(priority),
			Status:    ti.Status,
			StartDate: domain.DayOf(start.UTC()),
			EndDate:   domain.DayOf(end.UTC()),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return trackers, nil
}
