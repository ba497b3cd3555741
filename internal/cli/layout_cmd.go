package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackline/internal/cli/formatter"
	"github.com/alexanderramin/trackline/internal/service"
)

func newLayoutCmd(app *App) *cobra.Command {
	var from, to string
	var showPasses bool

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute and print the optimized lane layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := runLayout(app, from, to)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatLanes(layout.Trackers, layout.Assignments))
			if showPasses {
				fmt.Printf("%s\n%s\n", formatter.Header("passes"), formatter.FormatImprovements(layout.Improvements))
			}
			fmt.Printf("%s\n%s", formatter.Header("metrics"), formatter.FormatMetrics(layout.Metrics))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Restrict to trackers intersecting this start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Restrict to trackers intersecting this end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&showPasses, "passes", false, "Show the optimizer's per-pass report")

	return cmd
}

// runLayout computes a layout over the full store or, when both bounds are
// given, the intersecting window.
func runLayout(app *App, from, to string) (*service.Layout, error) {
	ctx := context.Background()
	cfg := app.Config.TimelineConfig()

	if from == "" && to == "" {
		return app.Layouts.Layout(ctx, cfg)
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("--from and --to must be given together")
	}

	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid --from date %q: %w", from, err)
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid --to date %q: %w", to, err)
	}
	if start.After(end) {
		return nil, fmt.Errorf("--from must not be after --to")
	}
	return app.Layouts.LayoutRange(ctx, start, end, cfg)
}
