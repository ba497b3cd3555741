package importer

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// ImportSchema is the top-level JSON structure for tracker import.
type ImportSchema struct {
	Trackers []TrackerImport `json:"trackers"`
}

// TrackerImport defines one tracker in the import file. Ref is an optional
// file-local identifier used only for error reporting.
type TrackerImport struct {
	Ref       string `json:"ref,omitempty"`
	Title     string `json:"title"`
	Type      string `json:"type,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Status    string `json:"status,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// LoadImportSchema reads and parses a tracker import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
