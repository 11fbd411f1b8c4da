package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbeckers/routinely/internal/cli/formatter"
	"github.com/mbeckers/routinely/internal/service"
)

func newDoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "do INSTANCE",
		Short: "Mark a task instance as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Tracker.Complete(context.Background(), args[0], time.Now())
			if err != nil {
				return err
			}
			printOutcome(result)
			return nil
		},
	}
}

func newSkipCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skip INSTANCE",
		Short: "Skip a task instance (half its points are deducted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Tracker.Skip(context.Background(), args[0], time.Now())
			if err != nil {
				return err
			}
			printOutcome(result)
			return nil
		},
	}
}

func printOutcome(result *service.OutcomeResult) {
	if !result.NewlyRecorded {
		fmt.Printf("%s already resolved today, nothing changed.\n", result.InstanceID)
		return
	}

	switch {
	case result.PointsDelta > 0:
		fmt.Printf("Completed %s, +%d points. Today: %d%%\n",
			result.InstanceID, result.PointsDelta, result.DailyProgress)
	case result.PointsDelta < 0:
		fmt.Printf("Skipped %s, %d points. Today: %d%%\n",
			result.InstanceID, result.PointsDelta, result.DailyProgress)
	default:
		fmt.Printf("Recorded %s. Today: %d%%\n", result.InstanceID, result.DailyProgress)
	}

	if result.LevelUps > 0 {
		fmt.Println(formatter.StyleHeader.Render(
			fmt.Sprintf("★ Level up! You reached level %d.", result.LevelAfter)))
	}
}
