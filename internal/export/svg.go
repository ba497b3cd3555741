package export

import (
	"fmt"
	"io"
	"os"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/alexanderramin/trackline/internal/domain"
	"github.com/alexanderramin/trackline/internal/timeline"
)

// Options controls SVG rendering of a timeline layout.
type Options struct {
	Mode         timeline.ViewMode
	LaneHeight   int
	LanePadding  int
	HeaderHeight int
	Margin       int
}

// DefaultOptions returns render settings suited to a monthly overview.
func DefaultOptions() Options {
	return Options{
		Mode:         timeline.ViewMonthly,
		LaneHeight:   36,
		LanePadding:  8,
		HeaderHeight: 48,
		Margin:       24,
	}
}

const (
	colorBackdrop = "#1e1e2e"
	colorGrid     = "#313244"
	colorText     = "#cdd6f4"
	colorSubtle   = "#a6adc8"
)

var priorityFills = map[domain.Priority]string{
	domain.PriorityCritical: "#f38ba8",
	domain.PriorityHigh:     "#fab387",
	domain.PriorityMedium:   "#89b4fa",
	domain.PriorityLow:      "#a6e3a1",
}

// WriteSVG renders the laid-out trackers as an SVG timeline. Lanes are rows,
// the x axis is days at the view mode's pixel density, and bars are colored
// by priority.
func WriteSVG(w io.Writer, trackers []*domain.Tracker, assignments []domain.LaneAssignment, metrics timeline.Metrics, opts Options) error {
	if len(assignments) == 0 {
		return fmt.Errorf("nothing to render: no lane assignments")
	}

	byID := make(map[string]*domain.Tracker, len(trackers))
	for _, tr := range trackers {
		byID[tr.ID] = tr
	}

	origin, horizon := span(assignments)
	ppd := opts.Mode.PixelsPerDay()

	width := 2*opts.Margin + timeline.RangeWidthPixels(origin, horizon, ppd)
	laneRows := metrics.LaneCount
	if laneRows == 0 {
		laneRows = timeline.LaneCount(assignments)
	}
	height := opts.HeaderHeight + laneRows*(opts.LaneHeight+opts.LanePadding) + opts.Margin

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+colorBackdrop)

	drawHeader(canvas, origin, horizon, metrics, opts)
	drawGrid(canvas, origin, horizon, ppd, height, opts)

	for _, a := range assignments {
		x := opts.Margin + timeline.DateToPixel(a.StartDate, origin, ppd)
		y := opts.HeaderHeight + a.LaneIndex*(opts.LaneHeight+opts.LanePadding)
		barW := timeline.RangeWidthPixels(a.StartDate, a.EndDate, ppd)

		fill := priorityFills[domain.PriorityMedium]
		title := a.TrackerID
		if tr, ok := byID[a.TrackerID]; ok {
			if c, ok := priorityFills[tr.Priority]; ok {
				fill = c
			}
			title = tr.Title
		}

		canvas.Roundrect(x, y, barW, opts.LaneHeight, 6, 6, "fill:"+fill)
		canvas.Text(x+8, y+opts.LaneHeight/2+4, truncate(title, barW/8),
			"fill:"+colorBackdrop+";font-size:12px;font-family:monospace")
	}

	canvas.End()
	return nil
}

// WriteSVGFile renders to a file on disk.
func WriteSVGFile(path string, trackers []*domain.Tracker, assignments []domain.LaneAssignment, metrics timeline.Metrics, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating svg file: %w", err)
	}
	defer f.Close()
	return WriteSVG(f, trackers, assignments, metrics, opts)
}

func drawHeader(canvas *svg.SVG, origin, horizon time.Time, metrics timeline.Metrics, opts Options) {
	canvas.Text(opts.Margin, 22,
		fmt.Sprintf("%s to %s", origin.Format("2006-01-02"), horizon.Format("2006-01-02")),
		"fill:"+colorText+";font-size:14px;font-family:monospace;font-weight:bold")
	canvas.Text(opts.Margin, 40,
		fmt.Sprintf("lanes: %d  efficiency: %.2f  wasted days: %d", metrics.LaneCount, metrics.PackingEfficiency, metrics.WastedDays),
		"fill:"+colorSubtle+";font-size:11px;font-family:monospace")
}

// drawGrid draws vertical lines at snap boundaries for the chosen mode.
func drawGrid(canvas *svg.SVG, origin, horizon time.Time, ppd, height int, opts Options) {
	step := gridStep(opts.Mode)
	for d := origin; !d.After(horizon); d = step(d) {
		x := opts.Margin + timeline.DateToPixel(d, origin, ppd)
		canvas.Line(x, opts.HeaderHeight-6, x, height-opts.Margin/2, "stroke:"+colorGrid+";stroke-width:1")
	}
}

func gridStep(mode timeline.ViewMode) func(time.Time) time.Time {
	switch mode {
	case timeline.ViewWeekly:
		return func(d time.Time) time.Time { return d.AddDate(0, 0, 1) }
	case timeline.ViewQuarterly:
		return func(d time.Time) time.Time { return d.AddDate(0, 1, 0) }
	default:
		return func(d time.Time) time.Time { return d.AddDate(0, 0, 7) }
	}
}

func span(assignments []domain.LaneAssignment) (time.Time, time.Time) {
	origin, horizon := assignments[0].StartDate, assignments[0].EndDate
	for _, a := range assignments[1:] {
		if a.StartDate.Before(origin) {
			origin = a.StartDate
		}
		if a.EndDate.After(horizon) {
			horizon = a.EndDate
		}
	}
	return origin, horizon
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
