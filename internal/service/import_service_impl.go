package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/trackline/internal/importer"
	"github.com/alexanderramin/trackline/internal/repository"
)

type importService struct {
	trackers repository.TrackerRepo
}

func NewImportService(trackers repository.TrackerRepo) ImportService {
	return &importService{trackers: trackers}
}

func (s *importService) ImportTrackers(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportTrackersFromSchema(ctx, schema)
}

func (s *importService) ImportTrackersFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, errors.New("import validation failed:\n  " + strings.Join(msgs, "\n  "))
	}

	trackers, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	result := &ImportResult{}
	for _, t := range trackers {
		if err := s.trackers.Create(ctx, t); err != nil {
			return result, fmt.Errorf("importing tracker %q after %d created: %w", t.Title, result.TrackerCount, err)
		}
		result.TrackerCount++
		result.Trackers = append(result.Trackers, t)
	}
	return result, nil
}
