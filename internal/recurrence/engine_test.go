package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeckers/routinely/internal/domain"
)

// 2025-06-16 is a Monday.
var (
	monday  = time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)
	tuesday = monday.AddDate(0, 0, 1)
)

func dailyRoutine(id int64, count int) *domain.Routine {
	return &domain.Routine{
		ID:             id,
		Name:           "Meditate",
		Points:         5,
		Frequency:      domain.FrequencyDaily,
		FrequencyCount: count,
		Time:           "08:00",
		DurationMin:    15,
	}
}

func TestExpand_EmptyRoutineList(t *testing.T) {
	assert.Empty(t, Expand(nil, monday))
}

func TestExpand_DailySharedTime(t *testing.T) {
	instances := Expand([]*domain.Routine{dailyRoutine(42, 3)}, monday)
	require.Len(t, instances, 3)
	for i, inst := range instances {
		assert.Equal(t, domain.InstanceKey{RoutineID: 42, Kind: domain.KindSlot, Index: i}, inst.Key)
		assert.Equal(t, "08:00", inst.Time)
		assert.Equal(t, i, inst.Index)
		assert.Equal(t, 3, inst.Total)
	}
	assert.Equal(t, "42-0", instances[0].InstanceID())
	assert.Equal(t, "42-2", instances[2].InstanceID())
}

func TestExpand_DailyPerSlotSchedule(t *testing.T) {
	r := dailyRoutine(7, 2)
	r.DailySlots = []domain.ScheduleSlot{
		{Time: "07:30", DurationMin: 10},
		{Time: "21:00", DurationMin: 20},
	}
	instances := Expand([]*domain.Routine{r}, monday)
	require.Len(t, instances, 2)
	assert.Equal(t, "7-daily-0", instances[0].InstanceID())
	assert.Equal(t, "07:30", instances[0].Time)
	assert.Equal(t, 10, instances[0].DurationMin)
	assert.Equal(t, "7-daily-1", instances[1].InstanceID())
	assert.Equal(t, "21:00", instances[1].Time)
	assert.Equal(t, 20, instances[1].DurationMin)
}

func TestExpand_WeeklyOnlyOnMatchingWeekday(t *testing.T) {
	r := &domain.Routine{
		ID:        9,
		Name:      "Gym",
		Points:    10,
		Frequency: domain.FrequencyWeekly,
		WeekdaySlots: []domain.WeekdaySlot{
			{Weekday: 1, Time: "08:00", DurationMin: 60},
		},
	}

	assert.Empty(t, Expand([]*domain.Routine{r}, tuesday))

	instances := Expand([]*domain.Routine{r}, monday)
	require.Len(t, instances, 1)
	assert.Equal(t, "9-0", instances[0].InstanceID())
	assert.Equal(t, "08:00", instances[0].Time)
	assert.Equal(t, 60, instances[0].DurationMin)
}

func TestExpand_WeeklyUsesPerDaySlot(t *testing.T) {
	r := &domain.Routine{
		ID:        9,
		Name:      "Gym",
		Frequency: domain.FrequencyWeekly,
		WeekdaySlots: []domain.WeekdaySlot{
			{Weekday: 1, Time: "08:00", DurationMin: 60},
			{Weekday: 2, Time: "17:30", DurationMin: 45},
		},
	}
	instances := Expand([]*domain.Routine{r}, tuesday)
	require.Len(t, instances, 1)
	assert.Equal(t, "17:30", instances[0].Time)
	assert.Equal(t, 45, instances[0].DurationMin)
	assert.Equal(t, 1, instances[0].Total)
}

func TestExpand_WeeklyEmptyScheduleContributesNothing(t *testing.T) {
	// An inconsistent weekly routine must not degrade to "every day".
	r := &domain.Routine{ID: 3, Name: "Broken", Frequency: domain.FrequencyWeekly}
	for d := monday; d.Before(monday.AddDate(0, 0, 7)); d = d.AddDate(0, 0, 1) {
		assert.Empty(t, Expand([]*domain.Routine{r}, d))
	}
}

func TestExpand_MonthlyOnSelectedDays(t *testing.T) {
	r := &domain.Routine{
		ID:             11,
		Name:           "Bills",
		Frequency:      domain.FrequencyMonthly,
		FrequencyCount: 1,
		MonthDays:      []int{1, 15},
		Time:           "10:00",
		DurationMin:    30,
	}
	fifteenth := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	sixteenth := fifteenth.AddDate(0, 0, 1)

	instances := Expand([]*domain.Routine{r}, fifteenth)
	require.Len(t, instances, 1)
	assert.Equal(t, "11-0", instances[0].InstanceID())

	assert.Empty(t, Expand([]*domain.Routine{r}, sixteenth))
}

func TestExpand_MonthlyRepeatsSharedSlot(t *testing.T) {
	r := &domain.Routine{
		ID:             11,
		Name:           "Water plants",
		Frequency:      domain.FrequencyMonthly,
		FrequencyCount: 2,
		MonthDays:      []int{16},
		Time:           "10:00",
		DurationMin:    5,
	}
	instances := Expand([]*domain.Routine{r}, monday)
	require.Len(t, instances, 2)
	assert.Equal(t, "11-0", instances[0].InstanceID())
	assert.Equal(t, "11-1", instances[1].InstanceID())
	assert.Equal(t, "10:00", instances[1].Time)
}

func TestExpand_PreservesRoutineOrder(t *testing.T) {
	a := dailyRoutine(1, 1)
	a.Time = "22:00"
	b := dailyRoutine(2, 1)
	b.Time = "06:00"

	instances := Expand([]*domain.Routine{a, b}, monday)
	require.Len(t, instances, 2)
	// Input order wins; no time sorting at the engine level.
	assert.Equal(t, int64(1), instances[0].RoutineID)
	assert.Equal(t, int64(2), instances[1].RoutineID)
}

func TestExpand_Reproducible(t *testing.T) {
	routines := []*domain.Routine{dailyRoutine(1, 2), dailyRoutine(2, 1)}
	first := Expand(routines, monday)
	second := Expand(routines, monday)
	assert.Equal(t, first, second)
}

func TestExpandRange_InclusiveDays(t *testing.T) {
	days := ExpandRange([]*domain.Routine{dailyRoutine(1, 1)}, monday, monday.AddDate(0, 0, 6))
	require.Len(t, days, 7)
	assert.Equal(t, "2025-06-16", days[0].DateKey)
	assert.Equal(t, "2025-06-22", days[6].DateKey)
	for _, day := range days {
		assert.Len(t, day.Instances, 1)
	}
}

func TestDueSoon_ExactLeadMatch(t *testing.T) {
	instances := Expand([]*domain.Routine{dailyRoutine(1, 1)}, monday) // 08:00

	// 07:55, lead 5 -> due.
	due := DueSoon(instances, 7*60+55, DefaultLeadMinutes, nil)
	require.Len(t, due, 1)
	assert.Equal(t, "1-0", due[0].InstanceID())

	// 07:54 and 07:56 -> not due (exact match only).
	assert.Empty(t, DueSoon(instances, 7*60+54, DefaultLeadMinutes, nil))
	assert.Empty(t, DueSoon(instances, 7*60+56, DefaultLeadMinutes, nil))
}

func TestDueSoon_SkipsAlreadyNotified(t *testing.T) {
	instances := Expand([]*domain.Routine{dailyRoutine(1, 1)}, monday)
	notified := map[string]bool{"1-0": true}
	assert.Empty(t, DueSoon(instances, 7*60+55, DefaultLeadMinutes, notified))
}
