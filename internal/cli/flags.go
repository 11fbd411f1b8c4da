package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mbeckers/routinely/internal/domain"
)

var weekdayNames = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

// parseWeekday accepts a three-letter name (mon..sun) or a 0-6 digit,
// 0 = Sunday.
func parseWeekday(s string) (int, error) {
	if d, ok := weekdayNames[strings.ToLower(s)]; ok {
		return d, nil
	}
	d, err := strconv.Atoi(s)
	if err != nil || d < 0 || d > 6 {
		return 0, fmt.Errorf("invalid weekday %q (use mon..sun or 0-6)", s)
	}
	return d, nil
}

// parseWeekdaySlot parses a --weekday value: DAY:HH:MM:MINUTES,
// e.g. "mon:07:30:45".
func parseWeekdaySlot(s string) (domain.WeekdaySlot, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return domain.WeekdaySlot{}, fmt.Errorf("invalid weekday slot %q (expected DAY:HH:MM:MINUTES)", s)
	}
	weekday, err := parseWeekday(parts[0])
	if err != nil {
		return domain.WeekdaySlot{}, err
	}
	slot, err := parseSlot(parts[1])
	if err != nil {
		return domain.WeekdaySlot{}, fmt.Errorf("weekday slot %q: %w", s, err)
	}
	return domain.WeekdaySlot{Weekday: weekday, Time: slot.Time, DurationMin: slot.DurationMin}, nil
}

// parseSlot parses a --slot value: HH:MM:MINUTES, e.g. "07:30:45".
func parseSlot(s string) (domain.ScheduleSlot, error) {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return domain.ScheduleSlot{}, fmt.Errorf("invalid slot %q (expected HH:MM:MINUTES)", s)
	}
	clock := s[:idx]
	if !domain.ValidClock(clock) {
		return domain.ScheduleSlot{}, fmt.Errorf("invalid slot time %q", clock)
	}
	dur, err := strconv.Atoi(s[idx+1:])
	if err != nil || dur < 1 {
		return domain.ScheduleSlot{}, fmt.Errorf("invalid slot duration in %q", s)
	}
	return domain.ScheduleSlot{Time: clock, DurationMin: dur}, nil
}

// parseMonthDays parses a --month-days value: comma-separated day numbers,
// e.g. "1,15,28".
func parseMonthDays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 1 || d > 31 {
			return nil, fmt.Errorf("invalid month day %q (use 1-31)", part)
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no month days in %q", s)
	}
	return days, nil
}
