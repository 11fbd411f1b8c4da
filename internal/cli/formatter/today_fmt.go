package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mbeckers/routinely/internal/domain"
	"github.com/mbeckers/routinely/internal/service"
)

const todayProgressBarWidth = 20

// FormatToday renders one day's schedule grouped by start time, earliest
// first, with each instance's outcome and the day's completion bar.
func FormatToday(view *service.DayView) string {
	var b strings.Builder

	if len(view.Instances) == 0 {
		b.WriteString(Dim("Nothing scheduled.") + "\n")
	} else {
		groups, times := groupByTime(view.Instances)
		for gi, clock := range times {
			if gi > 0 {
				b.WriteString("\n")
			}
			b.WriteString(StyleBold.Render(clock) + "\n")
			for _, inst := range groups[clock] {
				b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
					OutcomePill(inst.Status, inst.Recorded),
					StyleFg.Render(inst.Label()),
					Dim(FormatMinutes(inst.DurationMin)),
					Dim(inst.InstanceID()),
				))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(RenderProgress(view.Progress, todayProgressBarWidth) + "\n")
	return RenderBox(HumanDate(view.Date), b.String())
}

// groupByTime buckets instances by their start clock and returns the bucket
// keys sorted ascending. Instances inside a bucket keep expansion order.
func groupByTime(instances []service.InstanceView) (map[string][]service.InstanceView, []string) {
	groups := make(map[string][]service.InstanceView)
	var times []string
	for _, inst := range instances {
		if _, seen := groups[inst.Time]; !seen {
			times = append(times, inst.Time)
		}
		groups[inst.Time] = append(groups[inst.Time], inst)
	}
	sort.Slice(times, func(i, j int) bool {
		a, errA := domain.MinutesOfDay(times[i])
		b, errB := domain.MinutesOfDay(times[j])
		if errA != nil || errB != nil {
			return times[i] < times[j]
		}
		return a < b
	})
	return groups, times
}
