// Package recurrence expands routine definitions into the ordered list of
// task instances due on a given calendar date. Expansion is pure and
// deterministic: the same definitions and date always produce identical
// instance keys in identical order, which is what lets the completion
// ledger track outcomes across renders.
package recurrence

import (
	"time"

	"github.com/mbeckers/routinely/internal/domain"
)

// Expand maps (routines, date) to the instances due that date. Routines are
// processed in input order and instances within a routine follow schedule
// order; there is no cross-routine sorting. A routine contributing zero
// instances is simply absent. Routines with an inconsistent schedule shape
// (weekly without weekday slots, monthly without month days) contribute
// nothing rather than being treated as due every day.
func Expand(routines []*domain.Routine, date time.Time) []domain.TaskInstance {
	weekday := int(date.Weekday())
	dayOfMonth := date.Day()

	var instances []domain.TaskInstance
	for _, r := range routines {
		switch r.Frequency {
		case domain.FrequencyDaily:
			instances = append(instances, expandDaily(r)...)
		case domain.FrequencyWeekly:
			instances = append(instances, expandWeekly(r, weekday)...)
		case domain.FrequencyMonthly:
			instances = append(instances, expandMonthly(r, dayOfMonth)...)
		}
	}
	return instances
}

func expandDaily(r *domain.Routine) []domain.TaskInstance {
	if len(r.DailySlots) > 0 {
		total := len(r.DailySlots)
		instances := make([]domain.TaskInstance, 0, total)
		for i, slot := range r.DailySlots {
			instances = append(instances, domain.TaskInstance{
				Key:         domain.InstanceKey{RoutineID: r.ID, Kind: domain.KindDaily, Index: i},
				RoutineID:   r.ID,
				Name:        r.Name,
				Points:      r.Points,
				Time:        slot.Time,
				DurationMin: slot.DurationMin,
				Index:       i,
				Total:       total,
			})
		}
		return instances
	}

	total := r.FrequencyCount
	if total < 1 {
		total = 1
	}
	instances := make([]domain.TaskInstance, 0, total)
	for i := 0; i < total; i++ {
		instances = append(instances, domain.TaskInstance{
			Key:         domain.InstanceKey{RoutineID: r.ID, Kind: domain.KindSlot, Index: i},
			RoutineID:   r.ID,
			Name:        r.Name,
			Points:      r.Points,
			Time:        r.Time,
			DurationMin: r.DurationMin,
			Index:       i,
			Total:       total,
		})
	}
	return instances
}

func expandWeekly(r *domain.Routine, weekday int) []domain.TaskInstance {
	matching := r.SlotsForWeekday(weekday)
	if len(matching) == 0 {
		return nil
	}
	total := len(matching)
	instances := make([]domain.TaskInstance, 0, total)
	for i, slot := range matching {
		instances = append(instances, domain.TaskInstance{
			Key:         domain.InstanceKey{RoutineID: r.ID, Kind: domain.KindSlot, Index: i},
			RoutineID:   r.ID,
			Name:        r.Name,
			Points:      r.Points,
			Time:        slot.Time,
			DurationMin: slot.DurationMin,
			Index:       i,
			Total:       total,
		})
	}
	return instances
}

func expandMonthly(r *domain.Routine, dayOfMonth int) []domain.TaskInstance {
	if !r.HasMonthDay(dayOfMonth) {
		return nil
	}
	total := r.FrequencyCount
	if total < 1 {
		total = 1
	}
	instances := make([]domain.TaskInstance, 0, total)
	for i := 0; i < total; i++ {
		instances = append(instances, domain.TaskInstance{
			Key:         domain.InstanceKey{RoutineID: r.ID, Kind: domain.KindSlot, Index: i},
			RoutineID:   r.ID,
			Name:        r.Name,
			Points:      r.Points,
			Time:        r.Time,
			DurationMin: r.DurationMin,
			Index:       i,
			Total:       total,
		})
	}
	return instances
}

// DaySchedule is one day of an expanded range.
type DaySchedule struct {
	Date      time.Time
	DateKey   string
	Instances []domain.TaskInstance
}

// ExpandRange expands every day from start through end inclusive, one
// independent Expand per day. Used by the week and month calendar views.
func ExpandRange(routines []*domain.Routine, start, end time.Time) []DaySchedule {
	var days []DaySchedule
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, DaySchedule{
			Date:      d,
			DateKey:   domain.DateKey(d),
			Instances: Expand(routines, d),
		})
	}
	return days
}

// DefaultLeadMinutes is how far ahead of an instance's start time the
// due-soon check fires.
const DefaultLeadMinutes = 5

// DueSoon returns the instances whose start time is exactly leadMinutes
// away from nowMinutes and that have not been notified yet today. The
// caller records returned instances in the per-day notified set so a
// repeated check is idempotent.
func DueSoon(instances []domain.TaskInstance, nowMinutes, leadMinutes int, notified map[string]bool) []domain.TaskInstance {
	var due []domain.TaskInstance
	for _, inst := range instances {
		m, err := domain.MinutesOfDay(inst.Time)
		if err != nil {
			continue
		}
		if m-nowMinutes != leadMinutes {
			continue
		}
		if notified[inst.InstanceID()] {
			continue
		}
		due = append(due, inst)
	}
	return due
}
