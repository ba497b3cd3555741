package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackline/internal/cli/formatter"
	"github.com/alexanderramin/trackline/internal/domain"
)

const dateLayout = "2006-01-02"

// resolveTrackerID accepts a full UUID or a unique UUID prefix.
func resolveTrackerID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("tracker ID is required")
	}

	trackers, err := app.Trackers.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range trackers {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range trackers {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("tracker not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("tracker ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTrackerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Manage trackers",
	}

	cmd.AddCommand(
		newTrackerAddCmd(app),
		newTrackerListCmd(app),
		newTrackerUpdateCmd(app),
		newTrackerMoveCmd(app),
		newTrackerRemoveCmd(app),
		newTrackerImportCmd(app),
	)

	return cmd
}

func newTrackerAddCmd(app *App) *cobra.Command {
	var title, typeStr, priority, status, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag-less invocation on a terminal falls back to the form.
			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				return runTrackerAddForm(app)
			}

			startDate, err := time.Parse(dateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := time.Parse(dateLayout, end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			t := &domain.Tracker{
				Title:     title,
				Type:      domain.TrackerType(typeStr),
				Priority:  domain.Priority(priority),
				Status:    status,
				StartDate: startDate,
				EndDate:   endDate,
			}
			if err := app.Trackers.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created tracker %s [%s]\n", t.Title, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Tracker title")
	cmd.Flags().StringVar(&typeStr, "type", "feature", "Tracker type (project|feature|bug)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&status, "status", "", "Free-form status label")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")

	return cmd
}

func newTrackerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trackers",
		RunE: func(cmd *cobra.Command, args []string) error {
			trackers, err := app.Trackers.List(context.Background())
			if err != nil {
				return err
			}

			if len(trackers) == 0 {
				fmt.Println("No trackers found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatTrackerList(trackers))
			return nil
		},
	}
}

func newTrackerUpdateCmd(app *App) *cobra.Command {
	var title, typeStr, priority, status, start, end string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a tracker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTrackerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Trackers.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				t.Title = title
			}
			if cmd.Flags().Changed("type") {
				t.Type = domain.TrackerType(typeStr)
			}
			if cmd.Flags().Changed("priority") {
				t.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("status") {
				t.Status = status
			}
			if cmd.Flags().Changed("start") {
				d, err := time.Parse(dateLayout, start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				t.StartDate = d
			}
			if cmd.Flags().Changed("end") {
				d, err := time.Parse(dateLayout, end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				t.EndDate = d
			}

			if err := app.Trackers.Update(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Updated tracker %s\n", t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Tracker title")
	cmd.Flags().StringVar(&typeStr, "type", "", "Tracker type (project|feature|bug)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&status, "status", "", "Free-form status label")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")

	return cmd
}

func newTrackerMoveCmd(app *App) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Move a tracker to a new date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTrackerID(ctx, app, args[0])
			if err != nil {
				return err
			}

			startDate, err := time.Parse(dateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := time.Parse(dateLayout, end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			t, err := app.Trackers.Reschedule(ctx, id, startDate, endDate)
			if err != nil {
				return err
			}

			fmt.Printf("Moved tracker %s to %s → %s\n", t.Title,
				t.StartDate.Format(dateLayout), t.EndDate.Format(dateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New end date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newTrackerRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a tracker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTrackerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trackers.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed tracker %s\n", id[:8])
			return nil
		},
	}
}

func newTrackerImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import trackers from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportTrackers(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d tracker(s)\n", result.TrackerCount)
			return nil
		},
	}
}
