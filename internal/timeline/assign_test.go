package timeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/trackline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tracker(id string, start, end time.Time, opts ...func(*domain.Tracker)) *domain.Tracker {
	tr := &domain.Tracker{
		ID:        id,
		Title:     "Tracker " + id,
		Type:      domain.TrackerFeature,
		Priority:  domain.PriorityMedium,
		StartDate: start,
		EndDate:   end,
	}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

func withPriority(p domain.Priority) func(*domain.Tracker) {
	return func(tr *domain.Tracker) { tr.Priority = p }
}

// assertNoOverlaps fails if any two assignments sharing a lane overlap.
func assertNoOverlaps(t *testing.T, assignments []domain.LaneAssignment) {
	t.Helper()
	for _, lane := range Lanes(assignments) {
		for i := 0; i < len(lane); i++ {
			for j := i + 1; j < len(lane); j++ {
				assert.False(t,
					domain.Overlaps(lane[i].StartDate, lane[i].EndDate, lane[j].StartDate, lane[j].EndDate),
					"lane %d: %s [%s..%s] overlaps %s [%s..%s]",
					lane[i].LaneIndex,
					lane[i].TrackerID, lane[i].StartDate.Format("2006-01-02"), lane[i].EndDate.Format("2006-01-02"),
					lane[j].TrackerID, lane[j].StartDate.Format("2006-01-02"), lane[j].EndDate.Format("2006-01-02"))
			}
		}
	}
}

func laneOf(t *testing.T, assignments []domain.LaneAssignment, trackerID string) int {
	t.Helper()
	for _, a := range assignments {
		if a.TrackerID == trackerID {
			return a.LaneIndex
		}
	}
	t.Fatalf("tracker %s not assigned", trackerID)
	return -1
}

func TestAssignLanes_OverlappingPairSplitsLanes(t *testing.T) {
	trackers := []*domain.Tracker{
		tracker("a", day(2025, 1, 1), day(2025, 1, 5)),
		tracker("b", day(2025, 1, 3), day(2025, 1, 8)),
	}

	assignments := AssignLanes(trackers)

	require.Len(t, assignments, 2)
	assertNoOverlaps(t, assignments)
	assert.Equal(t, 0, laneOf(t, assignments, "a"))
	assert.Equal(t, 1, laneOf(t, assignments, "b"))
}

func TestAssignLanes_SequentialTrackersShareLane(t *testing.T) {
	// A and B are sequential, C overlaps A: minimum lane count is 2 and B
	// reuses A's lane because B starts the day after A ends.
	trackers := []*domain.Tracker{
		tracker("a", day(2025, 1, 1), day(2025, 1, 5)),
		tracker("b", day(2025, 1, 6), day(2025, 1, 10)),
		tracker("c", day(2025, 1, 1), day(2025, 1, 3)),
	}

	assignments := AssignLanes(trackers)

	assertNoOverlaps(t, assignments)
	assert.Equal(t, 2, LaneCount(assignments))
	assert.Equal(t, laneOf(t, assignments, "a"), laneOf(t, assignments, "b"))
	assert.NotEqual(t, laneOf(t, assignments, "a"), laneOf(t, assignments, "c"))
}

func TestAssignLanes_SharedDayCountsAsOverlap(t *testing.T) {
	trackers := []*domain.Tracker{
		tracker("a", day(2025, 1, 1), day(2025, 1, 5)),
		tracker("b", day(2025, 1, 5), day(2025, 1, 9)),
	}

	assignments := AssignLanes(trackers)

	assert.Equal(t, 2, LaneCount(assignments))
}

func TestAssignLanes_Deterministic(t *testing.T) {
	trackers := []*domain.Tracker{
		tracker("c", day(2025, 2, 1), day(2025, 2, 14)),
		tracker("a", day(2025, 2, 1), day(2025, 2, 14)),
		tracker("b", day(2025, 2, 1), day(2025, 2, 14)),
	}

	first := AssignLanes(trackers)
	second := AssignLanes(trackers)

	assert.Equal(t, first, second)
	// Equal start dates tie-break by ID.
	assert.Equal(t, 0, laneOf(t, first, "a"))
	assert.Equal(t, 1, laneOf(t, first, "b"))
	assert.Equal(t, 2, laneOf(t, first, "c"))
}

func TestAssignLanes_EmptyInput(t *testing.T) {
	assert.Empty(t, AssignLanes(nil))
	assert.Equal(t, 0, LaneCount(nil))
}

func TestAssignLanes_SameDayTracker(t *testing.T) {
	assignments := AssignLanes([]*domain.Tracker{
		tracker("a", day(2025, 3, 1), day(2025, 3, 1)),
	})

	require.Len(t, assignments, 1)
	assert.Equal(t, 1, assignments[0].Duration())
	assert.Equal(t, 0, assignments[0].LaneIndex)
}

func TestAssignLanes_DenormalizesDayGranularity(t *testing.T) {
	// Timestamps with a time-of-day component are floored to the UTC day.
	trackers := []*domain.Tracker{
		tracker("a", day(2025, 1, 1).Add(9*time.Hour), day(2025, 1, 5).Add(17*time.Hour)),
	}

	assignments := AssignLanes(trackers)

	require.Len(t, assignments, 1)
	assert.Equal(t, day(2025, 1, 1), assignments[0].StartDate)
	assert.Equal(t, day(2025, 1, 5), assignments[0].EndDate)
}

func TestAssignLanesWith_PriorityStrategyPlacesCriticalFirst(t *testing.T) {
	// All three overlap; under the priority strategy the critical tracker
	// is placed first and therefore lands in lane 0.
	trackers := []*domain.Tracker{
		tracker("low", day(2025, 1, 1), day(2025, 1, 10), withPriority(domain.PriorityLow)),
		tracker("med", day(2025, 1, 1), day(2025, 1, 10)),
		tracker("crit", day(2025, 1, 2), day(2025, 1, 9), withPriority(domain.PriorityCritical)),
	}

	assignments := AssignLanesWith(trackers, SortByPriority)

	assertNoOverlaps(t, assignments)
	assert.Equal(t, 0, laneOf(t, assignments, "crit"))
}

func TestLanesAndFlatten_RoundTrip(t *testing.T) {
	trackers := []*domain.Tracker{
		tracker("a", day(2025, 1, 1), day(2025, 1, 5)),
		tracker("b", day(2025, 1, 3), day(2025, 1, 8)),
		tracker("c", day(2025, 1, 6), day(2025, 1, 10)),
	}

	assignments := AssignLanes(trackers)
	assert.Equal(t, assignments, Flatten(Lanes(assignments)))
}
