package formatter

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbeckers/routinely/internal/domain"
)

const (
	trendWidth  = 28
	trendHeight = 3
)

var trendStyle = lipgloss.NewStyle().Foreground(ColorBlue)

// RenderTrend draws the rolling performance history as a sparkline, oldest
// entry on the left.
func RenderTrend(history []domain.PerformanceEntry) string {
	if len(history) == 0 {
		return Dim("no history yet")
	}

	spark := sparkline.New(trendWidth, trendHeight,
		sparkline.WithMaxValue(100),
		sparkline.WithStyle(trendStyle))
	for _, entry := range history {
		spark.Push(float64(entry.Progress))
	}
	spark.Draw()

	labels := make([]string, 0, len(history))
	for _, entry := range history {
		labels = append(labels, entry.DateKey[5:]) // MM-DD
	}
	return spark.View() + "\n" + Dim(strings.Join(labels, "  "))
}
