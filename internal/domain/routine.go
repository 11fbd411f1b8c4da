package domain

import (
	"fmt"
	"time"
)

// ScheduleSlot is one occurrence of a multi-occurrence daily routine with
// its own time of day and duration.
type ScheduleSlot struct {
	Time        string
	DurationMin int
}

// WeekdaySlot is one weekly occurrence. Weekday follows time.Weekday
// numbering: 0 = Sunday .. 6 = Saturday.
type WeekdaySlot struct {
	Weekday     int
	Time        string
	DurationMin int
}

// Routine is a recurring task definition. Exactly one schedule shape is
// authoritative per frequency: weekly always uses WeekdaySlots; daily uses
// DailySlots when FrequencyCount > 1, else the single Time/DurationMin;
// monthly uses MonthDays plus the single Time/DurationMin.
type Routine struct {
	ID             int64
	UserID         string
	Name           string
	Points         int
	Frequency      Frequency
	FrequencyCount int
	Time           string
	DurationMin    int
	DailySlots     []ScheduleSlot
	WeekdaySlots   []WeekdaySlot
	MonthDays      []int
	CreatedAt      time.Time
}

// Normalize derives the redundant fields before persisting: weekly routines
// carry FrequencyCount = len(WeekdaySlots) for display parity, and the
// non-authoritative schedule shapes are cleared so a frequency switch on
// edit replaces the schedule wholesale.
func (r *Routine) Normalize() {
	switch r.Frequency {
	case FrequencyDaily:
		if r.FrequencyCount < 1 {
			r.FrequencyCount = 1
		}
		if r.FrequencyCount <= 1 {
			r.DailySlots = nil
		}
		if len(r.DailySlots) > 0 {
			r.Time = ""
			r.DurationMin = 0
		}
		r.WeekdaySlots = nil
		r.MonthDays = nil
	case FrequencyWeekly:
		r.FrequencyCount = len(r.WeekdaySlots)
		r.Time = ""
		r.DurationMin = 0
		r.DailySlots = nil
		r.MonthDays = nil
	case FrequencyMonthly:
		if r.FrequencyCount < 1 {
			r.FrequencyCount = 1
		}
		r.DailySlots = nil
		r.WeekdaySlots = nil
	}
}

// Validate checks the routine against the per-frequency schedule rules.
// It returns a *ValidationError with a reason code on the first violation.
func (r *Routine) Validate() error {
	if r.Name == "" {
		return validationErr(CodeNameRequired, "routine name is required")
	}
	if r.Points < 0 {
		return validationErr(CodePointsNegative, "points must not be negative")
	}
	if !r.Frequency.IsValid() {
		return validationErr(CodeFrequencyInvalid, fmt.Sprintf("invalid frequency %q", r.Frequency))
	}

	switch r.Frequency {
	case FrequencyDaily:
		if r.FrequencyCount < 1 {
			return validationErr(CodeCountInvalid, "daily routines need at least one occurrence per day")
		}
		if len(r.DailySlots) > 0 {
			if len(r.DailySlots) != r.FrequencyCount {
				return validationErr(CodeSlotMismatch,
					fmt.Sprintf("daily schedule has %d slots but frequency count is %d", len(r.DailySlots), r.FrequencyCount))
			}
			for _, slot := range r.DailySlots {
				if !ValidClock(slot.Time) {
					return validationErr(CodeTimeInvalid, fmt.Sprintf("invalid slot time %q", slot.Time))
				}
				if slot.DurationMin < 1 {
					return validationErr(CodeDurationInvalid, "slot duration must be at least one minute")
				}
			}
		} else {
			if !ValidClock(r.Time) {
				return validationErr(CodeTimeInvalid, fmt.Sprintf("invalid time %q", r.Time))
			}
			if r.DurationMin < 1 {
				return validationErr(CodeDurationInvalid, "duration must be at least one minute")
			}
		}
	case FrequencyWeekly:
		if len(r.WeekdaySlots) == 0 {
			return validationErr(CodeWeekdayRequired, "weekly routines need at least one weekday")
		}
		for _, slot := range r.WeekdaySlots {
			if slot.Weekday < 0 || slot.Weekday > 6 {
				return validationErr(CodeWeekdayRange, fmt.Sprintf("weekday %d is out of range 0..6", slot.Weekday))
			}
			if !ValidClock(slot.Time) {
				return validationErr(CodeTimeInvalid, fmt.Sprintf("invalid time %q for weekday %d", slot.Time, slot.Weekday))
			}
			if slot.DurationMin < 1 {
				return validationErr(CodeDurationInvalid, "duration must be at least one minute")
			}
		}
	case FrequencyMonthly:
		if len(r.MonthDays) == 0 {
			return validationErr(CodeMonthDayRequired, "monthly routines need at least one day of the month")
		}
		for _, day := range r.MonthDays {
			if day < 1 || day > 31 {
				return validationErr(CodeMonthDayRange, fmt.Sprintf("month day %d is out of range 1..31", day))
			}
		}
		if r.FrequencyCount < 1 {
			return validationErr(CodeCountInvalid, "monthly routines need at least one occurrence per eligible day")
		}
		if !ValidClock(r.Time) {
			return validationErr(CodeTimeInvalid, fmt.Sprintf("invalid time %q", r.Time))
		}
		if r.DurationMin < 1 {
			return validationErr(CodeDurationInvalid, "duration must be at least one minute")
		}
	}
	return nil
}

// HasMonthDay reports whether day is among the routine's selected month days.
func (r *Routine) HasMonthDay(day int) bool {
	for _, d := range r.MonthDays {
		if d == day {
			return true
		}
	}
	return false
}

// SlotsForWeekday returns the weekday-schedule entries matching the given
// weekday, in schedule order.
func (r *Routine) SlotsForWeekday(weekday int) []WeekdaySlot {
	var slots []WeekdaySlot
	for _, slot := range r.WeekdaySlots {
		if slot.Weekday == weekday {
			slots = append(slots, slot)
		}
	}
	return slots
}
