package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trackline/internal/domain"
	"github.com/alexanderramin/trackline/internal/timeline"
)

const dateLayout = "2006-01-02"

// FormatTrackerList renders trackers as a table.
func FormatTrackerList(trackers []*domain.Tracker) string {
	headers := []string{"ID", "TITLE", "TYPE", "PRIORITY", "START", "END", "DAYS"}
	rows := make([][]string, 0, len(trackers))
	for _, t := range trackers {
		rows = append(rows, []string{
			Dim(shortID(t.ID)),
			t.Title,
			TypeBadge(t.Type),
			PriorityIndicator(t.Priority),
			t.StartDate.Format(dateLayout),
			t.EndDate.Format(dateLayout),
			fmt.Sprintf("%d", t.Duration()),
		})
	}
	return RenderTable(headers, rows)
}

// FormatLanes renders a lane-by-lane breakdown of a layout: each lane lists
// its trackers in chronological order with a proportional bar.
func FormatLanes(trackers []*domain.Tracker, assignments []domain.LaneAssignment) string {
	if len(assignments) == 0 {
		return Dim("No trackers on the timeline.")
	}

	byID := make(map[string]*domain.Tracker, len(trackers))
	for _, t := range trackers {
		byID[t.ID] = t
	}

	var b strings.Builder
	for lane, laneAssignments := range timeline.Lanes(assignments) {
		b.WriteString(StyleHeader.Render(fmt.Sprintf("lane %d", lane)))
		b.WriteByte('\n')
		for _, a := range laneAssignments {
			title := a.TrackerID
			style := StyleBlue
			if t, ok := byID[a.TrackerID]; ok {
				title = t.Title
				style = PriorityStyle(t.Priority)
			}
			bar := style.Render(strings.Repeat("█", barWidth(a.Duration())))
			b.WriteString(fmt.Sprintf("  %s  %s %s %s\n",
				bar,
				Bold(title),
				Dim(fmt.Sprintf("%s → %s", a.StartDate.Format(dateLayout), a.EndDate.Format(dateLayout))),
				Dim(fmt.Sprintf("(%dd)", a.Duration())),
			))
		}
	}
	return b.String()
}

// barWidth scales a duration to a console bar, capped at 30 cells.
func barWidth(days int) int {
	if days < 1 {
		return 1
	}
	if days > 30 {
		return 30
	}
	return days
}

// FormatMetrics renders layout quality metrics.
func FormatMetrics(m timeline.Metrics) string {
	headers := []string{"METRIC", "VALUE"}
	rows := [][]string{
		{"lanes", fmt.Sprintf("%d", m.LaneCount)},
		{"packing efficiency", efficiencyCell(m.PackingEfficiency)},
		{"average gap", fmt.Sprintf("%.1f days", m.AverageGapDays)},
		{"wasted days", fmt.Sprintf("%d", m.WastedDays)},
		{"balance score", fmt.Sprintf("%.2f", m.BalanceScore)},
	}
	return RenderTable(headers, rows)
}

func efficiencyCell(e float64) string {
	cell := fmt.Sprintf("%.0f%%", e*100)
	switch {
	case e >= 0.85:
		return StyleGreen.Render(cell)
	case e >= 0.5:
		return StyleYellow.Render(cell)
	default:
		return StyleRed.Render(cell)
	}
}

// FormatImprovements renders the optimizer's per-pass report. Passes that
// changed nothing are dimmed.
func FormatImprovements(improvements []timeline.Improvement) string {
	if len(improvements) == 0 {
		return Dim("No optimization passes ran.")
	}

	var b strings.Builder
	for _, imp := range improvements {
		total := imp.LanesReduced + imp.SpacingImproved + imp.ConflictsResolved
		line := fmt.Sprintf("%-12s lanes -%d  moves %d  conflicts %d",
			imp.Pass, imp.LanesReduced, imp.SpacingImproved, imp.ConflictsResolved)
		if total == 0 {
			b.WriteString(Dim(line))
		} else {
			b.WriteString(StyleFg.Render(line))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
