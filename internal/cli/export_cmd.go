package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackline/internal/export"
	"github.com/alexanderramin/trackline/internal/timeline"
)

func newExportCmd(app *App) *cobra.Command {
	var from, to, out, modeStr string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the optimized layout as an SVG timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := runLayout(app, from, to)
			if err != nil {
				return err
			}
			if len(layout.Assignments) == 0 {
				return fmt.Errorf("nothing to export: no trackers")
			}

			opts := export.DefaultOptions()
			if modeStr != "" {
				switch mode := timeline.ViewMode(modeStr); mode {
				case timeline.ViewWeekly, timeline.ViewMonthly, timeline.ViewQuarterly:
					opts.Mode = mode
				default:
					return fmt.Errorf("unknown view mode %q", modeStr)
				}
			}

			if err := export.WriteSVGFile(out, layout.Trackers, layout.Assignments, layout.Metrics, opts); err != nil {
				return err
			}

			fmt.Printf("Exported %d tracker(s) across %d lane(s) to %s\n",
				len(layout.Assignments), layout.Metrics.LaneCount, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Restrict to trackers intersecting this start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Restrict to trackers intersecting this end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&out, "out", "timeline.svg", "Output file path")
	cmd.Flags().StringVar(&modeStr, "mode", "", "View mode for pixel density (weekly|monthly|quarterly)")

	return cmd
}
