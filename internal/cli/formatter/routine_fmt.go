package formatter

import (
	"fmt"
	"strings"

	"github.com/mbeckers/routinely/internal/domain"
)

var weekdayShort = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatRoutineList renders routines grouped by frequency: daily first,
// then weekly, then monthly, keeping creation order inside each group.
func FormatRoutineList(routines []*domain.Routine) string {
	var b strings.Builder

	for _, freq := range []domain.Frequency{domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyMonthly} {
		var rows [][]string
		for _, r := range routines {
			if r.Frequency != freq {
				continue
			}
			rows = append(rows, []string{
				Dim(fmt.Sprintf("#%d", r.ID)),
				Bold(r.Name),
				StyleYellow.Render(fmt.Sprintf("%d pts", r.Points)),
				FrequencyBadge(r.Frequency, r.FrequencyCount),
				StyleFg.Render(ScheduleSummary(r)),
			})
		}
		if len(rows) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(string(freq)) + "\n")
		b.WriteString(RenderTable([]string{"ID", "NAME", "POINTS", "FREQ", "SCHEDULE"}, rows))
	}

	if b.Len() == 0 {
		return Dim("No routines.") + "\n"
	}
	return b.String()
}

// ScheduleSummary renders a routine's schedule in one line, like
// "07:30 (45m), 21:00 (10m)" or "Mon 08:00 (1h), Fri 17:00 (45m)".
func ScheduleSummary(r *domain.Routine) string {
	switch r.Frequency {
	case domain.FrequencyDaily:
		if len(r.DailySlots) > 0 {
			parts := make([]string, 0, len(r.DailySlots))
			for _, s := range r.DailySlots {
				parts = append(parts, fmt.Sprintf("%s (%s)", s.Time, FormatMinutes(s.DurationMin)))
			}
			return strings.Join(parts, ", ")
		}
		return fmt.Sprintf("%s (%s)", r.Time, FormatMinutes(r.DurationMin))
	case domain.FrequencyWeekly:
		parts := make([]string, 0, len(r.WeekdaySlots))
		for _, s := range r.WeekdaySlots {
			day := "?"
			if s.Weekday >= 0 && s.Weekday < len(weekdayShort) {
				day = weekdayShort[s.Weekday]
			}
			parts = append(parts, fmt.Sprintf("%s %s (%s)", day, s.Time, FormatMinutes(s.DurationMin)))
		}
		return strings.Join(parts, ", ")
	case domain.FrequencyMonthly:
		days := make([]string, 0, len(r.MonthDays))
		for _, d := range r.MonthDays {
			days = append(days, fmt.Sprintf("%d", d))
		}
		return fmt.Sprintf("days %s at %s (%s)", strings.Join(days, ","), r.Time, FormatMinutes(r.DurationMin))
	}
	return ""
}
