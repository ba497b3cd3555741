package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/trackline/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Trackers) == 0 {
		errs = append(errs, fmt.Errorf("import file contains no trackers"))
	}

	seenRefs := make(map[string]bool)
	for i, t := range schema.Trackers {
		errs = append(errs, validateTracker(i, &t, seenRefs)...)
	}

	return errs
}

func validateTracker(i int, t *TrackerImport, seenRefs map[string]bool) []error {
	var errs []error
	label := fmt.Sprintf("trackers[%d]", i)
	if t.Ref != "" {
		label = fmt.Sprintf("trackers[%d] (%s)", i, t.Ref)
		if seenRefs[t.Ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", label, t.Ref))
		}
		seenRefs[t.Ref] = true
	}

	if t.Title == "" {
		errs = append(errs, fmt.Errorf("%s: title is required", label))
	}
	if t.Type != "" && !domain.ValidTrackerTypes[t.Type] {
		errs = append(errs, fmt.Errorf("%s: invalid type %q", label, t.Type))
	}
	if t.Priority != "" && !domain.ValidPriorities[t.Priority] {
		errs = append(errs, fmt.Errorf("%s: invalid priority %q", label, t.Priority))
	}

	start, startErrs := validateDate(label, "start_date", t.StartDate)
	end, endErrs := validateDate(label, "end_date", t.EndDate)
	errs = append(errs, startErrs...)
	errs = append(errs, endErrs...)
	if len(startErrs) == 0 && len(endErrs) == 0 && start.After(end) {
		errs = append(errs, fmt.Errorf("%s: start_date %q is after end_date %q", label, t.StartDate, t.EndDate))
	}

	return errs
}

func validateDate(label, field, value string) (time.Time, []error) {
	if value == "" {
		return time.Time{}, []error{fmt.Errorf("%s: %s is required", label, field)}
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, []error{fmt.Errorf("%s: %s: invalid date format %q (expected YYYY-MM-DD)", label, field, value)}
	}
	return d, nil
}
