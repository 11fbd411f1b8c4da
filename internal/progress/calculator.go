// Package progress derives the daily completion percentage, the next
// pending task and the rolling performance history from expanded instances
// plus the day's recorded outcomes.
package progress

import (
	"math"

	"github.com/mbeckers/routinely/internal/domain"
)

// HistoryDays is the rolling window of the performance history.
const HistoryDays = 7

// Daily returns the day's completion percentage. An empty day is vacuously
// fully done (100). Only completed outcomes count toward the numerator;
// skipped and pending instances count as incomplete.
func Daily(instances []domain.TaskInstance, recorded map[string]domain.CompletionStatus) int {
	if len(instances) == 0 {
		return 100
	}
	completed := 0
	for _, inst := range instances {
		if recorded[inst.InstanceID()] == domain.StatusCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(instances)) * 100))
}

// NextTask picks the next pending instance: the first one (in expansion
// order, not time-sorted) whose start time is strictly later than
// nowMinutes; if none qualifies, the first pending instance; nil when
// everything is resolved.
func NextTask(instances []domain.TaskInstance, recorded map[string]domain.CompletionStatus, nowMinutes int) *domain.TaskInstance {
	var firstPending *domain.TaskInstance
	for i := range instances {
		inst := &instances[i]
		if _, done := recorded[inst.InstanceID()]; done {
			continue
		}
		if firstPending == nil {
			firstPending = inst
		}
		m, err := domain.MinutesOfDay(inst.Time)
		if err != nil {
			continue
		}
		if m > nowMinutes {
			return inst
		}
	}
	return firstPending
}

// UpdateHistory upserts the entry for dateKey (replacing in place when the
// day was already recorded) and trims the history to the HistoryDays most
// recently appended entries.
func UpdateHistory(history []domain.PerformanceEntry, dateKey string, pct int) []domain.PerformanceEntry {
	updated := false
	out := make([]domain.PerformanceEntry, len(history))
	copy(out, history)
	for i := range out {
		if out[i].DateKey == dateKey {
			out[i].Progress = pct
			updated = true
			break
		}
	}
	if !updated {
		out = append(out, domain.PerformanceEntry{DateKey: dateKey, Progress: pct})
	}
	if len(out) > HistoryDays {
		out = out[len(out)-HistoryDays:]
	}
	return out
}
