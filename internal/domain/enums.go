package domain

import (
	"fmt"
	"strings"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

type CompletionStatus string

const (
	StatusCompleted CompletionStatus = "completed"
	StatusSkipped   CompletionStatus = "skipped"
)

func (s CompletionStatus) IsValid() bool {
	switch s {
	case StatusCompleted, StatusSkipped:
		return true
	default:
		return false
	}
}

// ScheduleKind distinguishes the two instance-id families. KindDaily marks
// instances expanded from a per-slot daily schedule; KindSlot covers every
// other expansion (shared-time daily, weekly, monthly).
type ScheduleKind string

const (
	KindSlot  ScheduleKind = "slot"
	KindDaily ScheduleKind = "daily"
)
