package domain

import (
	"fmt"
	"time"
)

// DateKeyLayout is the local calendar-day key used to partition completions,
// history entries and the notified set. The device's local wall clock decides
// when "today" rolls over, not UTC.
const DateKeyLayout = "2006-01-02"

const clockLayout = "15:04"

// DateKey renders t's calendar day in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into a local-midnight time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// MinutesOfDay converts an "HH:MM" clock string to minutes since midnight.
func MinutesOfDay(clock string) (int, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidClock reports whether clock is a well-formed "HH:MM" string.
func ValidClock(clock string) bool {
	_, err := time.Parse(clockLayout, clock)
	return err == nil
}

// ClockOf renders t's time of day as "HH:MM".
func ClockOf(t time.Time) string {
	return t.Format(clockLayout)
}
