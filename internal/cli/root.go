package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mbeckers/routinely/internal/service"
	"github.com/mbeckers/routinely/internal/tui"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Routines service.RoutineService
	Tracker  service.TrackerService
	Progress service.ProgressService
	Notify   service.NotifyService
	Profiles service.ProfileService

	// NotifyIntervalSec drives the watch loop in `routinely notify`.
	NotifyIntervalSec int
}

// NewRootCmd creates the top-level "routinely" command and registers all
// subcommands against the provided App. Running it bare opens the TUI
// dashboard when stdout is a terminal, otherwise it prints help.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "routinely",
		Short: "Habit tracker with recurring routines, points and levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return tui.Run(tui.Services{
					Tracker:  app.Tracker,
					Progress: app.Progress,
					Notify:   app.Notify,
					Profiles: app.Profiles,
				})
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newRoutineCmd(app),
		newTodayCmd(app),
		newDoCmd(app),
		newSkipCmd(app),
		newStatusCmd(app),
		newCalendarCmd(app),
		newNotifyCmd(app),
		newProfileCmd(app),
	)

	return root
}
