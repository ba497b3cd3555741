package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimelineStart(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		mode ViewMode
		want time.Time
	}{
		{"weekly floors to Monday", day(2025, 6, 15), ViewWeekly, day(2025, 6, 9)}, // Jun 15 2025 is a Sunday
		{"weekly keeps Monday", day(2025, 6, 9), ViewWeekly, day(2025, 6, 9)},
		{"monthly floors to first", day(2025, 6, 15), ViewMonthly, day(2025, 6, 1)},
		{"quarterly floors Q2 to April", day(2025, 6, 15), ViewQuarterly, day(2025, 4, 1)},
		{"quarterly floors Q4 to October", day(2025, 12, 31), ViewQuarterly, day(2025, 10, 1)},
		{"quarterly keeps quarter start", day(2025, 1, 1), ViewQuarterly, day(2025, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TimelineStart(tc.date, tc.mode))
		})
	}
}

func TestTimelineEnd(t *testing.T) {
	assert.Equal(t, day(2025, 6, 15), TimelineEnd(day(2025, 6, 9), ViewWeekly))
	assert.Equal(t, day(2025, 6, 30), TimelineEnd(day(2025, 6, 1), ViewMonthly))
	assert.Equal(t, day(2025, 6, 29), TimelineEnd(day(2025, 4, 1), ViewQuarterly))
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		direction int
		mode      ViewMode
		want      time.Time
	}{
		{"weekly steps a day forward", day(2025, 6, 9), 1, ViewWeekly, day(2025, 6, 10)},
		{"weekly steps a day backward", day(2025, 6, 9), -1, ViewWeekly, day(2025, 6, 8)},
		{"monthly steps a month", day(2025, 6, 1), 1, ViewMonthly, day(2025, 7, 1)},
		{"monthly backward across year", day(2025, 1, 1), -1, ViewMonthly, day(2024, 12, 1)},
		{"quarterly steps three months", day(2025, 4, 1), 1, ViewQuarterly, day(2025, 7, 1)},
		{"quarterly backward", day(2025, 4, 1), -1, ViewQuarterly, day(2025, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Navigate(tc.start, tc.direction, tc.mode))
		})
	}
}

func TestViewport_NewAndNavigate(t *testing.T) {
	vp := NewViewport(day(2025, 6, 15), ViewMonthly)
	assert.Equal(t, day(2025, 6, 1), vp.StartDate)
	assert.Equal(t, day(2025, 6, 30), vp.EndDate)

	next := vp.Navigate(1)
	assert.Equal(t, day(2025, 7, 1), next.StartDate)
	assert.Equal(t, day(2025, 7, 30), next.EndDate)
}

func TestDateToPixel(t *testing.T) {
	vpStart := day(2025, 1, 1)
	assert.Equal(t, 0, DateToPixel(day(2025, 1, 1), vpStart, 40))
	assert.Equal(t, 160, DateToPixel(day(2025, 1, 5), vpStart, 40))
	assert.Equal(t, -40, DateToPixel(day(2024, 12, 31), vpStart, 40))
}

func TestPixelToDate(t *testing.T) {
	vpStart := day(2025, 1, 1)
	tests := []struct {
		name  string
		pixel int
		want  time.Time
	}{
		{"origin", 0, day(2025, 1, 1)},
		{"exact day boundary", 160, day(2025, 1, 5)},
		{"floors within a day", 199, day(2025, 1, 5)},
		{"negative floors backward", -1, day(2024, 12, 31)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PixelToDate(tc.pixel, vpStart, 40))
		})
	}
}

func TestPixelToDate_InvertsDateToPixel(t *testing.T) {
	vpStart := day(2025, 3, 1)
	for _, mode := range []ViewMode{ViewWeekly, ViewMonthly, ViewQuarterly} {
		ppd := mode.PixelsPerDay()
		for offset := -10; offset <= 10; offset++ {
			d := vpStart.AddDate(0, 0, offset)
			assert.Equal(t, d, PixelToDate(DateToPixel(d, vpStart, ppd), vpStart, ppd), "mode %s offset %d", mode, offset)
		}
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		mode ViewMode
		want time.Time
	}{
		{"weekly snaps to day", day(2025, 6, 11).Add(13 * time.Hour), ViewWeekly, day(2025, 6, 11)},
		{"monthly snaps to week start", day(2025, 6, 11), ViewMonthly, day(2025, 6, 9)}, // Jun 11 2025 is a Wednesday
		{"quarterly snaps to month start", day(2025, 6, 11), ViewQuarterly, day(2025, 6, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Snap(tc.date, tc.mode, true))
		})
	}
}

func TestSnap_DisabledIsIdentity(t *testing.T) {
	d := day(2025, 6, 11).Add(13 * time.Hour)
	assert.Equal(t, d, Snap(d, ViewMonthly, false))
}

func TestSnap_Idempotent(t *testing.T) {
	for _, mode := range []ViewMode{ViewWeekly, ViewMonthly, ViewQuarterly} {
		for offset := 0; offset < 95; offset++ {
			d := day(2025, 1, 1).AddDate(0, 0, offset)
			once := Snap(d, mode, true)
			assert.Equal(t, once, Snap(once, mode, true), "mode %s date %s", mode, d.Format("2006-01-02"))
		}
	}
}

func TestRangeWidthPixels(t *testing.T) {
	// A same-day range still renders one full day wide.
	assert.Equal(t, 40, RangeWidthPixels(day(2025, 1, 1), day(2025, 1, 1), 40))
	assert.Equal(t, 200, RangeWidthPixels(day(2025, 1, 1), day(2025, 1, 5), 40))
	// Degenerate reversed range clamps to the minimum visible width.
	assert.Equal(t, 1, RangeWidthPixels(day(2025, 1, 5), day(2025, 1, 1), 40))
}

func TestIsVisible(t *testing.T) {
	vs, ve := day(2025, 6, 1), day(2025, 6, 30)
	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside", day(2025, 6, 10), day(2025, 6, 12), true},
		{"spans viewport", day(2025, 5, 1), day(2025, 7, 31), true},
		{"touches first day", day(2025, 5, 20), day(2025, 6, 1), true},
		{"touches last day", day(2025, 6, 30), day(2025, 7, 10), true},
		{"entirely before", day(2025, 5, 1), day(2025, 5, 31), false},
		{"entirely after", day(2025, 7, 1), day(2025, 7, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsVisible(tc.start, tc.end, vs, ve))
		})
	}
}

func TestViewModeConstants(t *testing.T) {
	assert.Equal(t, 120, ViewWeekly.PixelsPerDay())
	assert.Equal(t, 40, ViewMonthly.PixelsPerDay())
	assert.Equal(t, 15, ViewQuarterly.PixelsPerDay())
	assert.Equal(t, 7, ViewWeekly.VisibleDays())
	assert.Equal(t, 30, ViewMonthly.VisibleDays())
	assert.Equal(t, 90, ViewQuarterly.VisibleDays())
}
