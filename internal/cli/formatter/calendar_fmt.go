package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mbeckers/routinely/internal/service"
)

var weekdayHeaders = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// heatStyle maps a day's task count to an intensity color. The buckets
// follow the calendar heat scale: 0, 1-2, 3-4, 5-7, 8-9, 10+.
func heatStyle(count int) lipgloss.Style {
	switch {
	case count == 0:
		return StyleDim
	case count <= 2:
		return StyleBlue
	case count <= 4:
		return StyleGreen
	case count <= 7:
		return StyleYellow
	case count <= 9:
		return StylePurple
	default:
		return StyleRed
	}
}

// FormatWeek renders a Monday-first week strip, one row per day with task
// count and completion bar. summaries must cover exactly the seven days.
func FormatWeek(summaries []service.DaySummary, today time.Time) string {
	rows := make([][]string, 0, len(summaries))
	todayKey := today.Format("2006-01-02")

	for i, day := range summaries {
		name := day.Date.Format("Mon Jan 2")
		if day.DateKey == todayKey {
			name = StyleHeader.Render(name + " ◀")
		} else {
			name = StyleFg.Render(name)
		}

		count := heatStyle(day.TaskCount).Render(fmt.Sprintf("%d task(s)", day.TaskCount))
		rows = append(rows, []string{
			Dim(weekdayHeaders[i%7]),
			name,
			count,
			RenderProgress(day.Progress, 10),
		})
	}
	return RenderBox("Week", RenderTable([]string{"", "DATE", "LOAD", "PROGRESS"}, rows))
}

// FormatMonth renders a 6x7 month grid, Monday-first. Cells outside the
// month are blank; each in-month cell shows the day number colored by task
// load with a completion marker.
func FormatMonth(month time.Time, summaries []service.DaySummary) string {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	// Offset of day 1 inside a Monday-first week.
	lead := (int(first.Weekday()) + 6) % 7
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byKey := make(map[string]service.DaySummary, len(summaries))
	for _, s := range summaries {
		byKey[s.DateKey] = s
	}

	var b strings.Builder
	for _, h := range weekdayHeaders {
		b.WriteString(StyleHeader.Render(fmt.Sprintf("%4s", h)))
	}
	b.WriteString("\n")

	for cell := 0; cell < 42; cell++ {
		dayNum := cell - lead + 1
		if dayNum < 1 || dayNum > daysInMonth {
			b.WriteString(strings.Repeat(" ", 4))
		} else {
			date := first.AddDate(0, 0, dayNum-1)
			summary := byKey[date.Format("2006-01-02")]
			label := fmt.Sprintf("%3d", dayNum)
			cellText := heatStyle(summary.TaskCount).Render(label)
			if summary.TaskCount > 0 && summary.Progress >= 100 {
				cellText += StyleGreen.Render("✔")
			} else {
				cellText += " "
			}
			b.WriteString(cellText)
		}
		if cell%7 == 6 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim("load: ") +
		StyleDim.Render("0") + Dim(" · ") +
		StyleBlue.Render("1-2") + Dim(" · ") +
		StyleGreen.Render("3-4") + Dim(" · ") +
		StyleYellow.Render("5-7") + Dim(" · ") +
		StylePurple.Render("8-9") + Dim(" · ") +
		StyleRed.Render("10+") + "\n")

	return RenderBox(month.Format("January 2006"), b.String())
}
