package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mbeckers/routinely/internal/domain"
	"github.com/mbeckers/routinely/internal/service"
)

func TestRenderProgressClamps(t *testing.T) {
	tests := []struct {
		name  string
		pct   int
		width int
	}{
		{"zero", 0, 10},
		{"half", 50, 10},
		{"full", 100, 10},
		{"over clamps", 150, 10},
		{"negative clamps", -10, 10},
		{"tiny width clamps to 2", 50, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.NotEmpty(t, got)
			assert.Contains(t, got, "%")
		})
	}
}

func TestFormatTodayGroupsByTime(t *testing.T) {
	view := &service.DayView{
		Date:    time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local),
		DateKey: "2025-06-16",
		Instances: []service.InstanceView{
			{TaskInstance: domain.TaskInstance{Name: "Evening walk", Time: "20:00", DurationMin: 30, Total: 1}},
			{TaskInstance: domain.TaskInstance{Name: "Morning run", Time: "07:00", DurationMin: 45, Total: 1},
				Status: domain.StatusCompleted, Recorded: true},
		},
		Progress: 50,
	}
	out := FormatToday(view)

	// Earlier slot renders before the later one regardless of input order.
	assert.Less(t, strings.Index(out, "07:00"), strings.Index(out, "20:00"))
	assert.Contains(t, out, "Morning run")
	assert.Contains(t, out, "Evening walk")
	assert.Contains(t, out, "50%")
}

func TestFormatTodayEmptyDay(t *testing.T) {
	view := &service.DayView{
		Date:     time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local),
		DateKey:  "2025-06-16",
		Progress: 100,
	}
	out := FormatToday(view)
	assert.Contains(t, out, "Nothing scheduled")
	assert.Contains(t, out, "100%")
}

func TestFormatMonthGrid(t *testing.T) {
	// June 2025 starts on a Sunday, so the Monday-first grid leads with
	// six blank cells.
	june := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	summaries := []service.DaySummary{
		{Date: june.AddDate(0, 0, 15), DateKey: "2025-06-16", TaskCount: 3, Progress: 100},
	}
	out := FormatMonth(june, summaries)

	assert.Contains(t, out, "JUNE 2025")
	assert.Contains(t, out, "30")
	assert.NotContains(t, out, "31", "June has no day 31")
}

func TestRenderTrend(t *testing.T) {
	assert.Contains(t, RenderTrend(nil), "no history")

	history := []domain.PerformanceEntry{
		{DateKey: "2025-06-15", Progress: 40},
		{DateKey: "2025-06-16", Progress: 80},
	}
	out := RenderTrend(history)
	assert.Contains(t, out, "06-15")
	assert.Contains(t, out, "06-16")
}
