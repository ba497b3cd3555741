package timeline

import (
	"time"

	"github.com/alexanderramin/trackline/internal/domain"
)

// ViewMode selects the timeline zoom level. Each mode fixes the visible
// window length, the pixel density, and the snap granularity.
type ViewMode string

const (
	ViewWeekly    ViewMode = "weekly"
	ViewMonthly   ViewMode = "monthly"
	ViewQuarterly ViewMode = "quarterly"
)

// PixelsPerDay returns the horizontal pixel density for the mode.
func (m ViewMode) PixelsPerDay() int {
	switch m {
	case ViewWeekly:
		return 120
	case ViewQuarterly:
		return 15
	default:
		return 40
	}
}

// VisibleDays returns the length of the visible window for the mode.
func (m ViewMode) VisibleDays() int {
	switch m {
	case ViewWeekly:
		return 7
	case ViewQuarterly:
		return 90
	default:
		return 30
	}
}

// Viewport is the visible date window of one rendering session.
type Viewport struct {
	StartDate time.Time
	EndDate   time.Time
	Mode      ViewMode
}

// NewViewport builds the viewport containing date, aligned to the mode's
// grid unit.
func NewViewport(date time.Time, mode ViewMode) Viewport {
	start := TimelineStart(date, mode)
	return Viewport{
		StartDate: start,
		EndDate:   TimelineEnd(start, mode),
		Mode:      mode,
	}
}

// Navigate steps the viewport by one navigation unit in the given
// direction (+1 forward, -1 backward).
func (v Viewport) Navigate(direction int) Viewport {
	start := Navigate(v.StartDate, direction, v.Mode)
	return Viewport{StartDate: start, EndDate: TimelineEnd(start, v.Mode), Mode: v.Mode}
}

// TimelineStart floors date to the start of the mode's grid unit: the
// Monday of its week, the first of its month, or the first of its quarter.
func TimelineStart(date time.Time, mode ViewMode) time.Time {
	d := domain.DayOf(date)
	switch mode {
	case ViewWeekly:
		return mondayOf(d)
	case ViewQuarterly:
		q := (int(d.Month()) - 1) / 3
		return time.Date(d.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// TimelineEnd returns the inclusive end of a window starting at start.
func TimelineEnd(start time.Time, mode ViewMode) time.Time {
	return domain.DayOf(start).AddDate(0, 0, mode.VisibleDays()-1)
}

// Navigate steps a window start by one navigation unit: a day in weekly
// mode (fine control), a month in monthly, a quarter in quarterly.
func Navigate(start time.Time, direction int, mode ViewMode) time.Time {
	d := domain.DayOf(start)
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}
	switch mode {
	case ViewWeekly:
		return d.AddDate(0, 0, direction)
	case ViewQuarterly:
		return d.AddDate(0, 3*direction, 0)
	default:
		return d.AddDate(0, direction, 0)
	}
}

// DateToPixel maps a date to its x offset within the viewport.
func DateToPixel(date, viewportStart time.Time, pixelsPerDay int) int {
	return domain.DaysBetween(date, viewportStart) * pixelsPerDay
}

// PixelToDate is the inverse of DateToPixel, floored to whole days.
func PixelToDate(pixel int, viewportStart time.Time, pixelsPerDay int) time.Time {
	if pixelsPerDay <= 0 {
		return domain.DayOf(viewportStart)
	}
	days := pixel / pixelsPerDay
	if pixel < 0 && pixel%pixelsPerDay != 0 {
		days-- // floor, not truncate, for negative offsets
	}
	return domain.DayOf(viewportStart).AddDate(0, 0, days)
}

// Snap floors a date to the mode's snap unit when enabled: whole days in
// weekly mode, Monday week boundaries in monthly, month boundaries in
// quarterly. Identity when disabled.
func Snap(date time.Time, mode ViewMode, enabled bool) time.Time {
	if !enabled {
		return date
	}
	d := domain.DayOf(date)
	switch mode {
	case ViewMonthly:
		return mondayOf(d)
	case ViewQuarterly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return d
	}
}

// RangeWidthPixels returns the rendered width of a date range, with a
// minimum of one pixel so degenerate ranges stay visible.
func RangeWidthPixels(start, end time.Time, pixelsPerDay int) int {
	w := domain.DurationDays(start, end) * pixelsPerDay
	if w < 1 {
		return 1
	}
	return w
}

// IsVisible reports whether a date range intersects the viewport window.
func IsVisible(rangeStart, rangeEnd, viewportStart, viewportEnd time.Time) bool {
	return !domain.DayOf(rangeStart).After(domain.DayOf(viewportEnd)) &&
		!domain.DayOf(rangeEnd).Before(domain.DayOf(viewportStart))
}

// mondayOf floors a day to the Monday starting its week.
func mondayOf(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}
