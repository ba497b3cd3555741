package timeline

import (
	"sort"
	"time"

	"github.com/alexanderramin/trackline/internal/domain"
)

// criticalLanePreference is how many of the lowest lanes a critical tracker
// is nudged into before normal first-fit takes over. A policy choice for
// visual prominence, not a correctness rule: if none of the preferred lanes
// fit, placement falls back to the ordinary sweep.
const criticalLanePreference = 3

// AssignLanes produces the initial conflict-free assignment: greedy
// first-fit over trackers sorted by start date (ties by ID). Each tracker
// lands in the lowest-indexed lane where it overlaps nothing already placed;
// a new lane is appended when none fits. Deterministic for a given input set.
func AssignLanes(trackers []*domain.Tracker) []domain.LaneAssignment {
	return AssignLanesWith(trackers, SortByStart)
}

// AssignLanesWith runs the greedy sweep in the order given by strategy.
func AssignLanesWith(trackers []*domain.Tracker, strategy SortStrategy) []domain.LaneAssignment {
	sorted := SortTrackers(trackers, strategy)

	var lanes [][]domain.LaneAssignment
	for _, tr := range sorted {
		placed := false
		for _, li := range laneScanOrder(tr, len(lanes)) {
			if laneFits(lanes[li], tr.StartDate, tr.EndDate) {
				lanes[li] = insertByStart(lanes[li], newAssignment(tr, li))
				placed = true
				break
			}
		}
		if !placed {
			lanes = append(lanes, []domain.LaneAssignment{newAssignment(tr, len(lanes))})
		}
	}

	return Flatten(lanes)
}

func newAssignment(tr *domain.Tracker, lane int) domain.LaneAssignment {
	return domain.LaneAssignment{
		TrackerID: tr.ID,
		LaneIndex: lane,
		StartDate: domain.DayOf(tr.StartDate),
		EndDate:   domain.DayOf(tr.EndDate),
	}
}

// laneScanOrder returns the lane indices to try, in order. Critical trackers
// try the lowest lanes first; since first-fit already scans from zero this
// only matters as an explicit, documented preference list.
func laneScanOrder(tr *domain.Tracker, laneCount int) []int {
	order := make([]int, 0, laneCount)
	if tr.Priority == domain.PriorityCritical {
		for i := 0; i < laneCount && i < criticalLanePreference; i++ {
			order = append(order, i)
		}
		for i := criticalLanePreference; i < laneCount; i++ {
			order = append(order, i)
		}
		return order
	}
	for i := 0; i < laneCount; i++ {
		order = append(order, i)
	}
	return order
}

// laneFits reports whether [start, end] overlaps nothing in the lane.
func laneFits(lane []domain.LaneAssignment, start, end time.Time) bool {
	for _, a := range lane {
		if domain.Overlaps(a.StartDate, a.EndDate, start, end) {
			return false
		}
	}
	return true
}

// insertByStart keeps a lane's assignments ordered by start date.
func insertByStart(lane []domain.LaneAssignment, a domain.LaneAssignment) []domain.LaneAssignment {
	pos := sort.Search(len(lane), func(i int) bool {
		return lane[i].StartDate.After(a.StartDate)
	})
	lane = append(lane, domain.LaneAssignment{})
	copy(lane[pos+1:], lane[pos:])
	lane[pos] = a
	return lane
}

// Lanes groups a flat assignment list back into per-lane slices ordered by
// start date. Empty lanes (possible after optimizer moves) are preserved up
// to the highest used index.
func Lanes(assignments []domain.LaneAssignment) [][]domain.LaneAssignment {
	maxLane := -1
	for _, a := range assignments {
		if a.LaneIndex > maxLane {
			maxLane = a.LaneIndex
		}
	}
	lanes := make([][]domain.LaneAssignment, maxLane+1)
	for _, a := range assignments {
		lanes[a.LaneIndex] = insertByStart(lanes[a.LaneIndex], a)
	}
	return lanes
}

// Flatten is the inverse of Lanes: lane order, then start-date order within
// each lane, with empty lanes squeezed out of the numbering.
func Flatten(lanes [][]domain.LaneAssignment) []domain.LaneAssignment {
	var out []domain.LaneAssignment
	idx := 0
	for _, lane := range lanes {
		if len(lane) == 0 {
			continue
		}
		for _, a := range lane {
			a.LaneIndex = idx
			out = append(out, a)
		}
		idx++
	}
	return out
}

// LaneCount returns the number of occupied lanes in an assignment.
func LaneCount(assignments []domain.LaneAssignment) int {
	seen := make(map[int]bool)
	for _, a := range assignments {
		seen[a.LaneIndex] = true
	}
	return len(seen)
}
