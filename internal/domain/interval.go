package domain

import "time"

// DayOf truncates a timestamp to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from b to a (a minus b).
// Negative when a precedes b.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(a).Sub(DayOf(b)) / (24 * time.Hour))
}

// DurationDays returns the inclusive day count of [start, end]. A same-day
// range has duration 1. Callers must ensure start <= end; ranges are not
// silently repaired.
func DurationDays(start, end time.Time) int {
	return DaysBetween(end, start) + 1
}

// Overlaps reports whether the closed day intervals [aStart, aEnd] and
// [bStart, bEnd] intersect. Sharing a single day counts as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	latestStart := aStart
	if bStart.After(latestStart) {
		latestStart = bStart
	}
	earliestEnd := aEnd
	if bEnd.Before(earliestEnd) {
		earliestEnd = bEnd
	}
	return !DayOf(latestStart).After(DayOf(earliestEnd))
}
