package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbeckers/routinely/internal/cli/formatter"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Progress.DayView(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatToday(view))
			return nil
		},
	}
}
