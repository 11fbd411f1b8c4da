package progress

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeckers/routinely/internal/domain"
)

func inst(routineID int64, index int, clock string) domain.TaskInstance {
	return domain.TaskInstance{
		Key:       domain.InstanceKey{RoutineID: routineID, Kind: domain.KindSlot, Index: index},
		RoutineID: routineID,
		Time:      clock,
	}
}

func TestDaily_EmptyDayIsFullyDone(t *testing.T) {
	assert.Equal(t, 100, Daily(nil, nil))
}

func TestDaily_RoundsCompletedShare(t *testing.T) {
	instances := []domain.TaskInstance{
		inst(1, 0, "08:00"),
		inst(1, 1, "12:00"),
		inst(2, 0, "18:00"),
	}
	recorded := map[string]domain.CompletionStatus{
		"1-0": domain.StatusCompleted,
	}
	assert.Equal(t, 33, Daily(instances, recorded))

	recorded["1-1"] = domain.StatusCompleted
	assert.Equal(t, 67, Daily(instances, recorded))
}

func TestDaily_SkippedCountsAsIncomplete(t *testing.T) {
	instances := []domain.TaskInstance{inst(1, 0, "08:00"), inst(2, 0, "09:00")}
	recorded := map[string]domain.CompletionStatus{
		"1-0": domain.StatusCompleted,
		"2-0": domain.StatusSkipped,
	}
	assert.Equal(t, 50, Daily(instances, recorded))
}

func TestNextTask_PrefersUpcomingInExpansionOrder(t *testing.T) {
	// Deliberately not time-sorted: expansion order is authoritative.
	instances := []domain.TaskInstance{
		inst(1, 0, "22:00"),
		inst(2, 0, "14:00"),
		inst(3, 0, "09:00"),
	}
	// At 13:00 the first instance later than now is 22:00 (routine 1),
	// even though 14:00 is sooner.
	next := NextTask(instances, nil, 13*60)
	require.NotNil(t, next)
	assert.Equal(t, int64(1), next.RoutineID)
}

func TestNextTask_FallsBackToFirstPending(t *testing.T) {
	instances := []domain.TaskInstance{
		inst(1, 0, "06:00"),
		inst(2, 0, "07:00"),
	}
	// Past both times: fall back to the first pending instance.
	next := NextTask(instances, nil, 20*60)
	require.NotNil(t, next)
	assert.Equal(t, int64(1), next.RoutineID)

	recorded := map[string]domain.CompletionStatus{"1-0": domain.StatusCompleted}
	next = NextTask(instances, recorded, 20*60)
	require.NotNil(t, next)
	assert.Equal(t, int64(2), next.RoutineID)
}

func TestNextTask_SkippedIsResolved(t *testing.T) {
	instances := []domain.TaskInstance{inst(1, 0, "08:00")}
	recorded := map[string]domain.CompletionStatus{"1-0": domain.StatusSkipped}
	assert.Nil(t, NextTask(instances, recorded, 6*60))
}

func TestNextTask_AllDone(t *testing.T) {
	assert.Nil(t, NextTask(nil, nil, 0))
}

func TestUpdateHistory_UpsertsToday(t *testing.T) {
	history := []domain.PerformanceEntry{
		{DateKey: "2025-06-14", Progress: 50},
		{DateKey: "2025-06-15", Progress: 20},
	}
	out := UpdateHistory(history, "2025-06-15", 80)
	require.Len(t, out, 2)
	assert.Equal(t, 80, out[1].Progress)
	assert.Equal(t, "2025-06-15", out[1].DateKey)
	// Input is not mutated.
	assert.Equal(t, 20, history[1].Progress)
}

func TestUpdateHistory_TrimsToSevenMostRecent(t *testing.T) {
	var history []domain.PerformanceEntry
	for day := 1; day <= 9; day++ {
		history = UpdateHistory(history, fmt.Sprintf("2025-06-%02d", day), day*10)
	}
	require.Len(t, history, HistoryDays)
	assert.Equal(t, "2025-06-03", history[0].DateKey)
	assert.Equal(t, "2025-06-09", history[6].DateKey)
	for i := 1; i < len(history); i++ {
		assert.Less(t, history[i-1].DateKey, history[i].DateKey, "chronological order")
	}
}
