package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/trackline/internal/domain"
)

// Constraints bound an interactive resize of a tracker edge.
type Constraints struct {
	MinDurationDays  int
	MaxDurationDays  int
	SnapToGrid       bool
	AllowPastDates   bool
	AllowFutureDates bool
	MaxFutureYears   int
}

// DefaultConstraints returns the standard editing rules.
func DefaultConstraints() Constraints {
	return Constraints{
		MinDurationDays:  1,
		MaxDurationDays:  365,
		SnapToGrid:       true,
		AllowPastDates:   true,
		AllowFutureDates: true,
		MaxFutureYears:   2,
	}
}

// ResizeResult is the outcome of one resize proposal. The range is always
// usable: every violated rule is corrected and reported in Errors, and the
// caller decides whether to reject the edit or accept the correction.
// IsValid is false iff at least one correction was required.
type ResizeResult struct {
	IsValid      bool
	NewStartDate time.Time
	NewEndDate   time.Time
	DurationDays int
	Errors       []string
}

// HandleKind identifies which resize handle (if any) a pointer position
// hits on a rendered tracker bar.
type HandleKind string

const (
	HandleStart HandleKind = "start"
	HandleEnd   HandleKind = "end"
	HandleNone  HandleKind = "none"
)

// DefaultHandleWidthPx is the hit-test width of each resize handle.
const DefaultHandleWidthPx = 8

// ResizeFromStart computes the constrained range for dragging a tracker's
// start edge to proposedStart while the end edge stays fixed. now anchors
// the past/future bounds; pass time.Now() outside tests.
func ResizeFromStart(tr *domain.Tracker, proposedStart time.Time, c Constraints, mode ViewMode, now time.Time) ResizeResult {
	end := domain.DayOf(tr.EndDate)
	start := Snap(domain.DayOf(proposedStart), mode, c.SnapToGrid)
	var errs []string

	start, errs = clampToBounds(start, c, now, errs, "start")

	if start.After(end) {
		start = end.AddDate(0, 0, -(c.MinDurationDays - 1))
		errs = append(errs, "start date cannot be after end date")
	}

	if d := domain.DurationDays(start, end); d < c.MinDurationDays {
		start = end.AddDate(0, 0, -(c.MinDurationDays - 1))
		errs = append(errs, fmt.Sprintf("duration below minimum of %d day(s)", c.MinDurationDays))
	} else if d > c.MaxDurationDays {
		start = end.AddDate(0, 0, -(c.MaxDurationDays - 1))
		errs = append(errs, fmt.Sprintf("duration above maximum of %d day(s)", c.MaxDurationDays))
	}

	return ResizeResult{
		IsValid:      len(errs) == 0,
		NewStartDate: start,
		NewEndDate:   end,
		DurationDays: domain.DurationDays(start, end),
		Errors:       errs,
	}
}

// ResizeFromEnd mirrors ResizeFromStart: the start edge stays fixed and the
// end edge moves to proposedEnd.
func ResizeFromEnd(tr *domain.Tracker, proposedEnd time.Time, c Constraints, mode ViewMode, now time.Time) ResizeResult {
	start := domain.DayOf(tr.StartDate)
	end := Snap(domain.DayOf(proposedEnd), mode, c.SnapToGrid)
	var errs []string

	end, errs = clampToBounds(end, c, now, errs, "end")

	if end.Before(start) {
		end = start.AddDate(0, 0, c.MinDurationDays-1)
		errs = append(errs, "end date cannot be before start date")
	}

	if d := domain.DurationDays(start, end); d < c.MinDurationDays {
		end = start.AddDate(0, 0, c.MinDurationDays-1)
		errs = append(errs, fmt.Sprintf("duration below minimum of %d day(s)", c.MinDurationDays))
	} else if d > c.MaxDurationDays {
		end = start.AddDate(0, 0, c.MaxDurationDays-1)
		errs = append(errs, fmt.Sprintf("duration above maximum of %d day(s)", c.MaxDurationDays))
	}

	return ResizeResult{
		IsValid:      len(errs) == 0,
		NewStartDate: start,
		NewEndDate:   end,
		DurationDays: domain.DurationDays(start, end),
		Errors:       errs,
	}
}

// clampToBounds applies the past/future date bounds to a dragged edge.
func clampToBounds(d time.Time, c Constraints, now time.Time, errs []string, edge string) (time.Time, []string) {
	today := domain.DayOf(now)
	if !c.AllowPastDates && d.Before(today) {
		return today, append(errs, edge+" date cannot be in the past")
	}
	if !c.AllowFutureDates {
		horizon := today.AddDate(c.MaxFutureYears, 0, 0)
		if d.After(horizon) {
			return horizon, append(errs, fmt.Sprintf("%s date cannot be more than %d year(s) ahead", edge, c.MaxFutureYears))
		}
	}
	return d, errs
}

// ResizeHandleAt hit-tests a pointer x position against a rendered tracker
// bar and reports which resize handle it lands on.
func ResizeHandleAt(mouseX, trackerLeftPx, trackerWidthPx, handleWidthPx int) HandleKind {
	if handleWidthPx <= 0 {
		handleWidthPx = DefaultHandleWidthPx
	}
	right := trackerLeftPx + trackerWidthPx
	if mouseX < trackerLeftPx || mouseX > right {
		return HandleNone
	}
	if mouseX <= trackerLeftPx+handleWidthPx {
		return HandleStart
	}
	if mouseX >= right-handleWidthPx {
		return HandleEnd
	}
	return HandleNone
}
