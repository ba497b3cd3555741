package timeline

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/alexanderramin/trackline/internal/domain"
)

// Metrics summarizes the quality of a lane assignment. Recomputed after
// every optimizer pass; also returned to callers for reporting.
type Metrics struct {
	LaneCount int

	// PackingEfficiency is occupied days over the lane-grid area:
	// totalOccupiedDays / (totalSpanDays * laneCount). 1.0 means zero waste.
	PackingEfficiency float64

	// AverageGapDays is the mean idle-day count across adjacent pairs
	// within lanes. Zero when no lane has an internal gap.
	AverageGapDays float64

	// WastedDays is totalSpanDays * laneCount - totalOccupiedDays.
	WastedDays int

	// BalanceScore is max(0, 1 - stddev/mean) of trackers-per-lane.
	// 1.0 when every lane carries the same count.
	BalanceScore float64
}

// ComputeMetrics derives Metrics for an assignment. An empty assignment
// yields the zero value with BalanceScore 1.
func ComputeMetrics(assignments []domain.LaneAssignment) Metrics {
	if len(assignments) == 0 {
		return Metrics{BalanceScore: 1}
	}

	lanes := occupiedLanes(assignments)

	earliest, latest := assignments[0].StartDate, assignments[0].EndDate
	occupied := 0
	for _, a := range assignments {
		occupied += a.Duration()
		if a.StartDate.Before(earliest) {
			earliest = a.StartDate
		}
		if a.EndDate.After(latest) {
			latest = a.EndDate
		}
	}
	span := domain.DurationDays(earliest, latest)
	area := span * len(lanes)

	m := Metrics{
		LaneCount:  len(lanes),
		WastedDays: area - occupied,
	}
	if area > 0 {
		m.PackingEfficiency = float64(occupied) / float64(area)
	}

	var gaps []float64
	for _, lane := range lanes {
		for i := 1; i < len(lane); i++ {
			if idle := domain.DaysBetween(lane[i].StartDate, lane[i-1].EndDate) - 1; idle > 0 {
				gaps = append(gaps, float64(idle))
			}
		}
	}
	if len(gaps) > 0 {
		m.AverageGapDays = stat.Mean(gaps, nil)
	}

	m.BalanceScore = balanceScore(lanes)
	return m
}

// balanceScore measures how evenly trackers spread across lanes.
func balanceScore(lanes [][]domain.LaneAssignment) float64 {
	if len(lanes) < 2 {
		return 1
	}
	counts := make([]float64, len(lanes))
	for i, lane := range lanes {
		counts[i] = float64(len(lane))
	}
	mean, std := stat.MeanStdDev(counts, nil)
	if mean == 0 {
		return 1
	}
	return math.Max(0, 1-std/mean)
}

// occupiedLanes is Lanes without empty entries, so metrics never count a
// lane index freed by an optimizer move.
func occupiedLanes(assignments []domain.LaneAssignment) [][]domain.LaneAssignment {
	var out [][]domain.LaneAssignment
	for _, lane := range Lanes(assignments) {
		if len(lane) > 0 {
			out = append(out, lane)
		}
	}
	return out
}
