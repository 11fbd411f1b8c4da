package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbeckers/routinely/internal/cli/formatter"
	"github.com/mbeckers/routinely/internal/domain"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Calendar views of scheduled routines",
	}

	cmd.AddCommand(
		newCalendarDayCmd(app),
		newCalendarWeekCmd(app),
		newCalendarMonthCmd(app),
	)

	return cmd
}

func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return domain.ParseDateKey(s)
}

func newCalendarDayCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show one day's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			view, err := app.Progress.DayView(context.Background(), day)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatToday(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}

// weekStart returns the Monday of t's week at local midnight.
func weekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

func newCalendarWeekCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the week, Monday first",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			start := weekStart(day)
			summaries, err := app.Progress.Range(context.Background(), start, start.AddDate(0, 0, 6))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWeek(summaries, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the week (YYYY-MM-DD, default today)")
	return cmd
}

func newCalendarMonthCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the month grid with task load",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
			last := first.AddDate(0, 1, -1)
			summaries, err := app.Progress.Range(context.Background(), first, last)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatMonth(first, summaries))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the month (YYYY-MM-DD, default today)")
	return cmd
}
