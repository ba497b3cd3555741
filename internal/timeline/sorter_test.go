package timeline

import (
	"testing"

	"github.com/alexanderramin/trackline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(trackers []*domain.Tracker) []string {
	out := make([]string, len(trackers))
	for i, tr := range trackers {
		out[i] = tr.ID
	}
	return out
}

func TestSortTrackers_ByStart(t *testing.T) {
	trackers := []*domain.Tracker{
		tracker("b", day(2025, 1, 5), day(2025, 1, 10)),
		tracker("a", day(2025, 1, 1), day(2025, 1, 3)),
		tracker("c", day(2025, 1, 5), day(2025, 1, 8)),
	}

	sorted := SortTrackers(trackers, SortByStart)

	// Equal starts fall back to ID order.
	assert.Equal(t, []string{"a", "b", "c"}, ids(sorted))
}

func TestSortTrackers_ByDuration(t *testing.T) {
	trackers := []*domain.Tracker{
		tracker("long", day(2025, 1, 1), day(2025, 1, 20)),
		tracker("short", day(2025, 1, 5), day(2025, 1, 5)),
		tracker("mid", day(2025, 1, 2), day(2025, 1, 8)),
	}

	sorted := SortTrackers(trackers, SortByDuration)

	assert.Equal(t, []string{"short", "mid", "long"}, ids(sorted))
}

func TestSortTrackers_ByEnd(t *testing.T) {
	trackers := []*domain.Tracker{
		tracker("late", day(2025, 1, 1), day(2025, 1, 20)),
		tracker("early", day(2025, 1, 5), day(2025, 1, 6)),
	}

	sorted := SortTrackers(trackers, SortByEnd)

	assert.Equal(t, []string{"early", "late"}, ids(sorted))
}

func TestSortTrackers_ByPriority(t *testing.T) {
	trackers := []*domain.Tracker{
		tracker("low", day(2025, 1, 1), day(2025, 1, 5), withPriority(domain.PriorityLow)),
		tracker("crit", day(2025, 1, 3), day(2025, 1, 5), withPriority(domain.PriorityCritical)),
		tracker("high", day(2025, 1, 2), day(2025, 1, 5), withPriority(domain.PriorityHigh)),
	}

	sorted := SortTrackers(trackers, SortByPriority)

	assert.Equal(t, []string{"crit", "high", "low"}, ids(sorted))
}

func TestSortTrackers_DoesNotMutateInput(t *testing.T) {
	trackers := []*domain.Tracker{
		tracker("b", day(2025, 1, 5), day(2025, 1, 10)),
		tracker("a", day(2025, 1, 1), day(2025, 1, 3)),
	}

	_ = SortTrackers(trackers, SortByStart)

	require.Equal(t, "b", trackers[0].ID, "input order preserved")
	require.Equal(t, "a", trackers[1].ID)
}
