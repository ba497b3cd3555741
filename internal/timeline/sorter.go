package timeline

import (
	"sort"

	"github.com/alexanderramin/trackline/internal/domain"
)

// SortStrategy selects the placement order the lane assigner sweeps in.
// The compaction pass tries every strategy and keeps the best result.
type SortStrategy string

const (
	SortByStart    SortStrategy = "start_date"
	SortByDuration SortStrategy = "duration"
	SortByEnd      SortStrategy = "end_date"
	SortByPriority SortStrategy = "priority"
)

// AllStrategies lists the strategies in the order compaction tries them.
// SortByStart comes first so ties fall back to the canonical greedy sweep.
var AllStrategies = []SortStrategy{SortByStart, SortByDuration, SortByEnd, SortByPriority}

// SortTrackers returns a copy of trackers ordered by the given strategy.
// Every strategy breaks remaining ties by tracker ID so that repeated runs
// over the same input produce identical placements.
func SortTrackers(trackers []*domain.Tracker, strategy SortStrategy) []*domain.Tracker {
	sorted := make([]*domain.Tracker, len(trackers))
	copy(sorted, trackers)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch strategy {
		case SortByDuration:
			if da, db := a.Duration(), b.Duration(); da != db {
				return da < db
			}
		case SortByEnd:
			if !a.EndDate.Equal(b.EndDate) {
				return a.EndDate.Before(b.EndDate)
			}
		case SortByPriority:
			if ra, rb := domain.PriorityRank(a.Priority), domain.PriorityRank(b.Priority); ra != rb {
				return ra < rb
			}
		}
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return a.ID < b.ID
	})

	return sorted
}
