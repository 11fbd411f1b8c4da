package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbeckers/routinely/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show profile, today's progress and the 7-day trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Progress.Status(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatStatus(view))
			return nil
		},
	}
}
