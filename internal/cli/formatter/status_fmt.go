package formatter

import (
	"fmt"
	"strings"

	"github.com/mbeckers/routinely/internal/domain"
	"github.com/mbeckers/routinely/internal/service"
)

const pointsBarWidth = 20

// FormatStatus renders the dashboard snapshot: profile with the level bar,
// today's completion, the next pending task and the 7-day trend.
func FormatStatus(view *service.StatusView) string {
	var b strings.Builder

	b.WriteString(Bold(view.Profile.Name) + "  " + Dim(view.Profile.UserID) + "\n")
	b.WriteString(RenderPoints(view.Profile.Level, view.Profile.Points, domain.LevelThreshold, pointsBarWidth) + "\n\n")

	b.WriteString(Header("Today") + "\n")
	done := 0
	for _, inst := range view.Today.Instances {
		if inst.Recorded && inst.Status == domain.StatusCompleted {
			done++
		}
	}
	b.WriteString(fmt.Sprintf("%s  %s\n",
		RenderProgress(view.Today.Progress, pointsBarWidth),
		Dim(fmt.Sprintf("%d/%d tasks done", done, len(view.Today.Instances)))))

	b.WriteString("\n" + Header("Next up") + "\n")
	if view.Next != nil {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleFg.Render(view.Next.Label()),
			StyleBold.Render(view.Next.Time),
			Dim(FormatMinutes(view.Next.DurationMin))))
	} else {
		b.WriteString(StyleGreen.Render("All done for today.") + "\n")
	}

	b.WriteString("\n" + Header("7-day trend") + "\n")
	b.WriteString(RenderTrend(view.History) + "\n")

	return RenderBox("Status", b.String())
}
