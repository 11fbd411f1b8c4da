package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mbeckers/routinely/internal/cli/formatter"
	"github.com/mbeckers/routinely/internal/domain"
)

func newRoutineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage routine definitions",
	}

	cmd.AddCommand(
		newRoutineAddCmd(app),
		newRoutineListCmd(app),
		newRoutineEditCmd(app),
		newRoutineRemoveCmd(app),
	)

	return cmd
}

func resolveRoutineID(input string) (int64, error) {
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid routine ID %q", input)
	}
	return id, nil
}

// applyScheduleFlags fills the routine's schedule shape from the shared
// add/edit flag set. Only flags that were set on this invocation apply, so
// edit keeps the stored schedule unless overridden.
func applyScheduleFlags(flags *pflag.FlagSet, r *domain.Routine,
	freq string, count int, clock string, duration int,
	slots, weekdays []string, monthDays string) error {

	if flags.Changed("frequency") {
		parsed, err := domain.ParseFrequency(freq)
		if err != nil {
			return err
		}
		r.Frequency = parsed
	}
	if flags.Changed("count") {
		r.FrequencyCount = count
	}
	if flags.Changed("time") {
		r.Time = clock
	}
	if flags.Changed("duration") {
		r.DurationMin = duration
	}
	if flags.Changed("slot") {
		r.DailySlots = nil
		for _, s := range slots {
			slot, err := parseSlot(s)
			if err != nil {
				return err
			}
			r.DailySlots = append(r.DailySlots, slot)
		}
		if r.FrequencyCount < len(r.DailySlots) {
			r.FrequencyCount = len(r.DailySlots)
		}
	}
	if flags.Changed("weekday") {
		r.WeekdaySlots = nil
		for _, w := range weekdays {
			slot, err := parseWeekdaySlot(w)
			if err != nil {
				return err
			}
			r.WeekdaySlots = append(r.WeekdaySlots, slot)
		}
	}
	if flags.Changed("month-days") {
		days, err := parseMonthDays(monthDays)
		if err != nil {
			return err
		}
		r.MonthDays = days
	}
	return nil
}

func newRoutineAddCmd(app *App) *cobra.Command {
	var (
		name, freq, clock, monthDays string
		points, count, duration      int
		slots, weekdays              []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a routine (interactive wizard when no flags given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !cmd.Flags().Changed("name") {
				return runAddWizard(ctx, app)
			}

			r := &domain.Routine{
				Name:           name,
				Points:         points,
				Frequency:      domain.FrequencyDaily,
				FrequencyCount: 1,
			}
			if err := applyScheduleFlags(cmd.Flags(), r, freq, count, clock, duration, slots, weekdays, monthDays); err != nil {
				return err
			}
			if err := app.Routines.Create(ctx, r); err != nil {
				return err
			}

			fmt.Printf("Created routine %s (#%d)\n", r.Name, r.ID)
			return nil
		},
	}

	addScheduleFlags(cmd, &name, &freq, &clock, &monthDays, &points, &count, &duration, &slots, &weekdays)
	return cmd
}

func addScheduleFlags(cmd *cobra.Command,
	name, freq, clock, monthDays *string,
	points, count, duration *int,
	slots, weekdays *[]string) {

	cmd.Flags().StringVar(name, "name", "", "Routine name")
	cmd.Flags().IntVar(points, "points", 0, "Points awarded per completion")
	cmd.Flags().StringVar(freq, "frequency", "daily", "Frequency (daily|weekly|monthly)")
	cmd.Flags().IntVar(count, "count", 1, "Occurrences per eligible day")
	cmd.Flags().StringVar(clock, "time", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(duration, "duration", 0, "Duration in minutes")
	cmd.Flags().StringArrayVar(slots, "slot", nil, "Daily slot HH:MM:MINUTES (repeatable)")
	cmd.Flags().StringArrayVar(weekdays, "weekday", nil, "Weekly slot DAY:HH:MM:MINUTES (repeatable)")
	cmd.Flags().StringVar(monthDays, "month-days", "", "Month days, comma-separated (e.g. 1,15)")
}

func newRoutineListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			routines, err := app.Routines.List(context.Background())
			if err != nil {
				return err
			}
			if len(routines) == 0 {
				fmt.Println("No routines yet. Try `routinely routine add`.")
				return nil
			}

			fmt.Print(formatter.FormatRoutineList(routines))
			return nil
		},
	}
}

func newRoutineEditCmd(app *App) *cobra.Command {
	var (
		name, freq, clock, monthDays string
		points, count, duration      int
		slots, weekdays              []string
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRoutineID(args[0])
			if err != nil {
				return err
			}
			r, err := app.Routines.Get(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				r.Name = name
			}
			if cmd.Flags().Changed("points") {
				r.Points = points
			}
			if err := applyScheduleFlags(cmd.Flags(), r, freq, count, clock, duration, slots, weekdays, monthDays); err != nil {
				return err
			}
			if err := app.Routines.Update(ctx, r); err != nil {
				return err
			}

			fmt.Printf("Updated routine %s (#%d)\n", r.Name, r.ID)
			return nil
		},
	}

	addScheduleFlags(cmd, &name, &freq, &clock, &monthDays, &points, &count, &duration, &slots, &weekdays)
	return cmd
}

func newRoutineRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a routine (earned points and history are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRoutineID(args[0])
			if err != nil {
				return err
			}
			if err := app.Routines.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed routine #%d\n", id)
			return nil
		},
	}
}
