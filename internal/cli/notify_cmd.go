package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbeckers/routinely/internal/cli/formatter"
)

func newNotifyCmd(app *App) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Watch for tasks due soon and print reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := checkAndPrint(ctx, app); err != nil {
				return err
			}
			if once {
				return nil
			}

			interval := time.Duration(app.NotifyIntervalSec) * time.Second
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := checkAndPrint(ctx, app); err != nil {
						return err
					}
				}
			}
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Run a single check and exit")
	return cmd
}

func checkAndPrint(ctx context.Context, app *App) error {
	due, err := app.Notify.CheckDueSoon(ctx, time.Now())
	if err != nil {
		return err
	}
	for _, inst := range due {
		fmt.Printf("%s %s starts at %s\n",
			formatter.StyleYellow.Render("⏰"),
			formatter.Bold(inst.Label()),
			inst.Time)
	}
	return nil
}
