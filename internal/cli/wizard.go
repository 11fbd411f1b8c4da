package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbeckers/routinely/internal/cli/formatter"
	"github.com/mbeckers/routinely/internal/domain"
)

// routinelyHuhTheme returns a custom huh theme using the Gruvbox palette.
func routinelyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateClock(s string) error {
	if !domain.ValidClock(s) {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// runAddWizard walks through creating a routine: basics first, then the
// frequency-specific schedule phase.
func runAddWizard(ctx context.Context, app *App) error {
	var (
		name, points, freqStr, countStr string
	)
	points = "5"
	countStr = "1"

	basics := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Routine name").
				Placeholder("Morning run").
				Value(&name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Points per completion").
				Value(&points).
				Validate(validateNonNegativeInt),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(domain.FrequencyDaily)),
					huh.NewOption("Weekly", string(domain.FrequencyWeekly)),
					huh.NewOption("Monthly", string(domain.FrequencyMonthly)),
				).
				Value(&freqStr),
		),
	).WithTheme(routinelyHuhTheme()).WithShowHelp(false)

	if err := basics.Run(); err != nil {
		return err
	}

	freq, err := domain.ParseFrequency(freqStr)
	if err != nil {
		return err
	}
	r := &domain.Routine{
		Name:      strings.TrimSpace(name),
		Frequency: freq,
	}
	r.Points, _ = strconv.Atoi(points)

	switch freq {
	case domain.FrequencyDaily:
		if err := wizardDailySchedule(r, &countStr); err != nil {
			return err
		}
	case domain.FrequencyWeekly:
		if err := wizardWeeklySchedule(r); err != nil {
			return err
		}
	case domain.FrequencyMonthly:
		if err := wizardMonthlySchedule(r, &countStr); err != nil {
			return err
		}
	}

	if err := app.Routines.Create(ctx, r); err != nil {
		return err
	}
	fmt.Printf("Created routine %s (#%d)\n", r.Name, r.ID)
	return nil
}

func wizardTimeAndDuration(clock, duration *string) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title("Start time (HH:MM)").
			Placeholder("08:00").
			Value(clock).
			Validate(validateClock),
		huh.NewInput().
			Title("Duration (minutes)").
			Value(duration).
			Validate(validatePositiveInt),
	)
}

func wizardDailySchedule(r *domain.Routine, countStr *string) error {
	countForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Times per day").
				Value(countStr).
				Validate(validatePositiveInt),
		),
	).WithTheme(routinelyHuhTheme()).WithShowHelp(false)
	if err := countForm.Run(); err != nil {
		return err
	}
	count, _ := strconv.Atoi(*countStr)
	r.FrequencyCount = count

	if count == 1 {
		clock, duration := "", "30"
		form := huh.NewForm(wizardTimeAndDuration(&clock, &duration)).
			WithTheme(routinelyHuhTheme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return err
		}
		r.Time = clock
		r.DurationMin, _ = strconv.Atoi(duration)
		return nil
	}

	for i := 0; i < count; i++ {
		clock, duration := "", "30"
		fmt.Println(formatter.Dim(fmt.Sprintf("Occurrence %d of %d", i+1, count)))
		form := huh.NewForm(wizardTimeAndDuration(&clock, &duration)).
			WithTheme(routinelyHuhTheme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return err
		}
		dur, _ := strconv.Atoi(duration)
		r.DailySlots = append(r.DailySlots, domain.ScheduleSlot{Time: clock, DurationMin: dur})
	}
	return nil
}

func wizardWeeklySchedule(r *domain.Routine) error {
	var days []string
	dayForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which days?").
				Options(
					huh.NewOption("Monday", "1"),
					huh.NewOption("Tuesday", "2"),
					huh.NewOption("Wednesday", "3"),
					huh.NewOption("Thursday", "4"),
					huh.NewOption("Friday", "5"),
					huh.NewOption("Saturday", "6"),
					huh.NewOption("Sunday", "0"),
				).
				Value(&days).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return fmt.Errorf("pick at least one day")
					}
					return nil
				}),
		),
	).WithTheme(routinelyHuhTheme()).WithShowHelp(false)
	if err := dayForm.Run(); err != nil {
		return err
	}

	for _, d := range days {
		weekday, _ := strconv.Atoi(d)
		clock, duration := "", "30"
		fmt.Println(formatter.Dim(weekdayLabel(weekday)))
		form := huh.NewForm(wizardTimeAndDuration(&clock, &duration)).
			WithTheme(routinelyHuhTheme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return err
		}
		dur, _ := strconv.Atoi(duration)
		r.WeekdaySlots = append(r.WeekdaySlots, domain.WeekdaySlot{Weekday: weekday, Time: clock, DurationMin: dur})
	}
	return nil
}

func wizardMonthlySchedule(r *domain.Routine, countStr *string) error {
	var daysStr string
	clock, duration := "", "30"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Days of the month (comma-separated)").
				Placeholder("1,15").
				Value(&daysStr).
				Validate(func(s string) error {
					_, err := parseMonthDays(s)
					return err
				}),
			huh.NewInput().
				Title("Times per eligible day").
				Value(countStr).
				Validate(validatePositiveInt),
		),
		wizardTimeAndDuration(&clock, &duration),
	).WithTheme(routinelyHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	days, err := parseMonthDays(daysStr)
	if err != nil {
		return err
	}
	r.MonthDays = days
	r.FrequencyCount, _ = strconv.Atoi(*countStr)
	r.Time = clock
	r.DurationMin, _ = strconv.Atoi(duration)
	return nil
}

func weekdayLabel(weekday int) string {
	labels := [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if weekday < 0 || weekday >= len(labels) {
		return "?"
	}
	return labels[weekday]
}
