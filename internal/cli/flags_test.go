package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	slot, err := parseSlot("07:30:45")
	require.NoError(t, err)
	assert.Equal(t, "07:30", slot.Time)
	assert.Equal(t, 45, slot.DurationMin)

	for _, bad := range []string{"", "0730", "07:30", "25:00:30", "07:30:0", "07:30:x"} {
		_, err := parseSlot(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseWeekdaySlot(t *testing.T) {
	tests := []struct {
		input   string
		weekday int
	}{
		{"mon:08:00:60", 1},
		{"SUN:10:00:30", 0},
		{"6:17:30:45", 6},
	}
	for _, tt := range tests {
		slot, err := parseWeekdaySlot(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.weekday, slot.Weekday)
	}

	for _, bad := range []string{"", "monday", "7:08:00:30", "mon:8am:30"} {
		_, err := parseWeekdaySlot(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseMonthDays(t *testing.T) {
	days, err := parseMonthDays("1, 15,28")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 15, 28}, days)

	for _, bad := range []string{"", "0", "32", "a,b"} {
		_, err := parseMonthDays(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolveRoutineID(t *testing.T) {
	id, err := resolveRoutineID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, err := resolveRoutineID(bad)
		assert.Error(t, err, bad)
	}
}
