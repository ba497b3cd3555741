package domain

type TrackerType string

const (
	TrackerProject TrackerType = "project"
	TrackerFeature TrackerType = "feature"
	TrackerBug     TrackerType = "bug"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// PriorityRank returns a sort rank for a priority (lower = more urgent).
// Unknown values rank after low.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// ValidTrackerTypes is the canonical set of accepted tracker type strings.
var ValidTrackerTypes = map[string]bool{
	"project": true, "feature": true, "bug": true,
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true, "critical": true,
}
