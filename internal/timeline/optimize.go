package timeline

import (
	"time"

	"github.com/alexanderramin/trackline/internal/domain"
)

// Config controls which optimizer passes run and when optimization stops.
type Config struct {
	Compaction bool
	GapFill    bool
	Balancing  bool

	// MaxPasses bounds the total number of passes executed. Passes cycle
	// compaction -> gap fill -> balancing, skipping disabled ones.
	MaxPasses int

	// TargetEfficiency stops the run early once PackingEfficiency reaches
	// this value. Zero disables the early exit.
	TargetEfficiency float64
}

// DefaultConfig enables every pass with one full cycle.
func DefaultConfig() Config {
	return Config{
		Compaction:       true,
		GapFill:          true,
		Balancing:        true,
		MaxPasses:        3,
		TargetEfficiency: 0.85,
	}
}

// Balancing thresholds, relative to the mean trackers-per-lane: lanes above
// overloadedFactor shed trackers into lanes below underloadedFactor until
// they drop under settledFactor.
const (
	overloadedFactor  = 1.5
	underloadedFactor = 0.5
	settledFactor     = 1.2
)

// Improvement reports what a single pass changed.
type Improvement struct {
	Pass              string
	LanesReduced      int
	SpacingImproved   int
	ConflictsResolved int
}

// Result is the optimizer's output envelope. Original is the (re-synced)
// input assignment, Optimized the improved one; both are conflict-free.
type Result struct {
	Original     []domain.LaneAssignment
	Optimized    []domain.LaneAssignment
	Improvements []Improvement
	Metrics      Metrics
}

// Optimize improves an existing assignment within cfg.MaxPasses bounded
// passes. It never fails: a pass with no improving move is a no-op and the
// cycle continues. The result never uses more lanes than the input.
//
// Assignment date ranges are re-derived from the current tracker values
// before any pass runs, so edits made between assign and optimize calls
// cannot leave stale denormalized dates behind.
func Optimize(trackers []*domain.Tracker, assignments []domain.LaneAssignment, cfg Config) Result {
	byID := make(map[string]*domain.Tracker, len(trackers))
	for _, tr := range trackers {
		byID[tr.ID] = tr
	}

	current := Resync(assignments, trackers)
	original := make([]domain.LaneAssignment, len(current))
	copy(original, current)

	result := Result{Original: original}

	type pass struct {
		name    string
		enabled bool
		run     func([]domain.LaneAssignment) ([]domain.LaneAssignment, Improvement)
	}
	cycle := []pass{
		{"compaction", cfg.Compaction, func(a []domain.LaneAssignment) ([]domain.LaneAssignment, Improvement) {
			return compactionPass(a, byID)
		}},
		{"gap_fill", cfg.GapFill, gapFillPass},
		{"balancing", cfg.Balancing, balancingPass},
	}

	executed := 0
	for executed < cfg.MaxPasses {
		ranAny := false
		for _, p := range cycle {
			if !p.enabled || executed >= cfg.MaxPasses {
				continue
			}
			next, imp := p.run(current)
			imp.Pass = p.name
			current = next
			result.Improvements = append(result.Improvements, imp)
			executed++
			ranAny = true

			if cfg.TargetEfficiency > 0 && ComputeMetrics(current).PackingEfficiency >= cfg.TargetEfficiency {
				result.Optimized = current
				result.Metrics = ComputeMetrics(current)
				return result
			}
		}
		if !ranAny {
			break
		}
	}

	result.Optimized = current
	result.Metrics = ComputeMetrics(current)
	return result
}

// Resync re-derives each assignment's denormalized date range from the
// tracker's current values. Assignments whose tracker is no longer present
// are dropped; the caller owns the tracker set.
func Resync(assignments []domain.LaneAssignment, trackers []*domain.Tracker) []domain.LaneAssignment {
	byID := make(map[string]*domain.Tracker, len(trackers))
	for _, tr := range trackers {
		byID[tr.ID] = tr
	}

	out := make([]domain.LaneAssignment, 0, len(assignments))
	for _, a := range assignments {
		tr, ok := byID[a.TrackerID]
		if !ok {
			continue
		}
		a.StartDate = domain.DayOf(tr.StartDate)
		a.EndDate = domain.DayOf(tr.EndDate)
		out = append(out, a)
	}
	return out
}

// compactionPass re-runs the assigner under every sort strategy and keeps
// the candidate with the fewest lanes; the incumbent assignment competes
// too, so the pass can never regress the lane count. Lane-count ties go to
// the candidate with the higher packing efficiency.
func compactionPass(current []domain.LaneAssignment, byID map[string]*domain.Tracker) ([]domain.LaneAssignment, Improvement) {
	trackers := make([]*domain.Tracker, 0, len(current))
	for _, a := range current {
		if tr, ok := byID[a.TrackerID]; ok {
			trackers = append(trackers, tr)
		}
	}

	best := current
	bestMetrics := ComputeMetrics(current)
	bestConflicted := countConflicts(current) > 0
	for _, strategy := range AllStrategies {
		candidate := AssignLanesWith(trackers, strategy)
		m := ComputeMetrics(candidate)
		// A conflicted incumbent never wins, whatever its lane count.
		if bestConflicted ||
			m.LaneCount < bestMetrics.LaneCount ||
			(m.LaneCount == bestMetrics.LaneCount && m.PackingEfficiency > bestMetrics.PackingEfficiency) {
			best = candidate
			bestMetrics = m
			bestConflicted = false
		}
	}

	// Resolving conflicted caller input can legitimately grow the lane
	// count, so the reduction counter never goes negative.
	imp := Improvement{
		LanesReduced:      max(0, ComputeMetrics(current).LaneCount-bestMetrics.LaneCount),
		ConflictsResolved: countConflicts(current) - countConflicts(best),
	}
	return best, imp
}

// gapFillPass pulls trackers from higher lanes into idle gaps of lower
// lanes. A candidate must sit strictly inside the gap's date range, so the
// move cannot introduce an overlap; emptied lanes are squeezed out.
func gapFillPass(current []domain.LaneAssignment) ([]domain.LaneAssignment, Improvement) {
	lanes := Lanes(current)
	moved := 0

	for li := 0; li < len(lanes); li++ {
		for gi := 1; gi < len(lanes[li]); gi++ {
			prev, next := lanes[li][gi-1], lanes[li][gi]
			gapStart := prev.EndDate.AddDate(0, 0, 1)
			gapEnd := next.StartDate.AddDate(0, 0, -1)
			if gapStart.After(gapEnd) {
				continue // no idle days between the pair
			}

			if from, ai, ok := findGapCandidate(lanes, li+1, gapStart, gapEnd); ok {
				cand := lanes[from][ai]
				lanes[from] = append(lanes[from][:ai], lanes[from][ai+1:]...)
				cand.LaneIndex = li
				lanes[li] = insertByStart(lanes[li], cand)
				moved++
			}
		}
	}

	return Flatten(lanes), Improvement{SpacingImproved: moved}
}

// findGapCandidate scans lanes from fromLane upward for the first
// assignment wholly contained in [gapStart, gapEnd].
func findGapCandidate(lanes [][]domain.LaneAssignment, fromLane int, gapStart, gapEnd time.Time) (laneIdx, assignIdx int, ok bool) {
	for li := fromLane; li < len(lanes); li++ {
		for ai, a := range lanes[li] {
			if !a.StartDate.Before(gapStart) && !a.EndDate.After(gapEnd) {
				return li, ai, true
			}
		}
	}
	return 0, 0, false
}

// balancingPass moves trackers out of overloaded lanes into underloaded
// ones, but only when the destination lane stays overlap-free. An
// overloaded lane stops shedding once it settles under settledFactor of
// the mean.
func balancingPass(current []domain.LaneAssignment) ([]domain.LaneAssignment, Improvement) {
	lanes := Lanes(current)
	if len(lanes) < 2 {
		return current, Improvement{}
	}

	mean := float64(len(current)) / float64(len(lanes))
	moved := 0

	for oi := range lanes {
		if float64(len(lanes[oi])) <= overloadedFactor*mean {
			continue
		}
		for ui := range lanes {
			if ui == oi || float64(len(lanes[ui])) >= underloadedFactor*mean {
				continue
			}
			// Walk backward so removals don't skip entries.
			for ai := len(lanes[oi]) - 1; ai >= 0; ai-- {
				if float64(len(lanes[oi])) <= settledFactor*mean {
					break
				}
				cand := lanes[oi][ai]
				if !laneFits(lanes[ui], cand.StartDate, cand.EndDate) {
					continue
				}
				lanes[oi] = append(lanes[oi][:ai], lanes[oi][ai+1:]...)
				cand.LaneIndex = ui
				lanes[ui] = insertByStart(lanes[ui], cand)
				moved++
			}
		}
	}

	return Flatten(lanes), Improvement{SpacingImproved: moved}
}

// countConflicts tallies overlapping pairs sharing a lane. Always zero for
// engine-produced assignments; nonzero only for malformed caller input.
func countConflicts(assignments []domain.LaneAssignment) int {
	conflicts := 0
	for _, lane := range Lanes(assignments) {
		for i := 0; i < len(lane); i++ {
			for j := i + 1; j < len(lane); j++ {
				if domain.Overlaps(lane[i].StartDate, lane[i].EndDate, lane[j].StartDate, lane[j].EndDate) {
					conflicts++
				}
			}
		}
	}
	return conflicts
}
