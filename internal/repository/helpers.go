package repository

import "time"

// dateLayout is the storage format for day-granular tracker dates.
const dateLayout = "2006-01-02"

// parseDate parses a stored date string, returning the zero time on
// malformed input (treated as a data bug upstream, not a runtime error).
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseTimestamp parses a stored RFC3339 timestamp the same way.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
