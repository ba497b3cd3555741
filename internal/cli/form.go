package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/trackline/internal/domain"
)

func validateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// runTrackerAddForm collects a new tracker interactively and creates it.
func runTrackerAddForm(app *App) error {
	var title, typeStr, priority, start, end string
	typeStr = string(domain.TrackerFeature)
	priority = string(domain.PriorityMedium)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&title).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("feature", string(domain.TrackerFeature)),
					huh.NewOption("project", string(domain.TrackerProject)),
					huh.NewOption("bug", string(domain.TrackerBug)),
				).
				Value(&typeStr),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("low", string(domain.PriorityLow)),
					huh.NewOption("medium", string(domain.PriorityMedium)),
					huh.NewOption("high", string(domain.PriorityHigh)),
					huh.NewOption("critical", string(domain.PriorityCritical)),
				).
				Value(&priority),
			huh.NewInput().
				Title("Start date").
				Placeholder("2025-06-30").
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Title("End date").
				Placeholder("2025-07-14").
				Value(&end).
				Validate(validateDate),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	startDate, _ := time.Parse(dateLayout, start)
	endDate, _ := time.Parse(dateLayout, end)

	t := &domain.Tracker{
		Title:     title,
		Type:      domain.TrackerType(typeStr),
		Priority:  domain.Priority(priority),
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := app.Trackers.Create(context.Background(), t); err != nil {
		return err
	}

	fmt.Printf("Created tracker %s [%s]\n", t.Title, t.ID[:8])
	return nil
}
