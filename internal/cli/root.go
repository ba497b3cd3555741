package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackline/internal/config"
	"github.com/alexanderramin/trackline/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Trackers service.TrackerService
	Layouts  service.LayoutService
	Import   service.ImportService

	Config *config.Config

	// IsInteractive reports whether stdin is attached to a terminal; the
	// timeline view and interactive forms require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "trackline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "trackline",
		Short: "Timeline lane planner for date-ranged trackers",
	}

	root.AddCommand(
		newTrackerCmd(app),
		newLayoutCmd(app),
		newExportCmd(app),
		newViewCmd(app),
	)

	return root
}
