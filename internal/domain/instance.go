package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// InstanceKey is the structured identity of one task instance within a
// calendar day. It is rendered to a string only at the ledger and CLI
// boundary, so "-" never has to be disambiguated from negative numbers.
type InstanceKey struct {
	RoutineID int64
	Kind      ScheduleKind
	Index     int
}

// String renders the key in the stable wire format: "<id>-daily-<index>"
// for per-slot daily schedules, "<id>-<index>" for everything else.
func (k InstanceKey) String() string {
	if k.Kind == KindDaily {
		return fmt.Sprintf("%d-daily-%d", k.RoutineID, k.Index)
	}
	return fmt.Sprintf("%d-%d", k.RoutineID, k.Index)
}

// ParseInstanceKey parses the wire format back into a structured key.
// A bare routine id is accepted as occurrence 0 of that routine.
func ParseInstanceKey(s string) (InstanceKey, error) {
	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return InstanceKey{}, fmt.Errorf("invalid instance id %q", s)
		}
		return InstanceKey{RoutineID: id, Kind: KindSlot, Index: 0}, nil
	case 2:
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return InstanceKey{}, fmt.Errorf("invalid instance id %q", s)
		}
		idx, err := strconv.Atoi(parts[1])
		if err != nil || idx < 0 {
			return InstanceKey{}, fmt.Errorf("invalid instance id %q", s)
		}
		return InstanceKey{RoutineID: id, Kind: KindSlot, Index: idx}, nil
	case 3:
		if parts[1] != string(KindDaily) {
			return InstanceKey{}, fmt.Errorf("invalid instance id %q", s)
		}
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return InstanceKey{}, fmt.Errorf("invalid instance id %q", s)
		}
		idx, err := strconv.Atoi(parts[2])
		if err != nil || idx < 0 {
			return InstanceKey{}, fmt.Errorf("invalid instance id %q", s)
		}
		return InstanceKey{RoutineID: id, Kind: KindDaily, Index: idx}, nil
	default:
		return InstanceKey{}, fmt.Errorf("invalid instance id %q", s)
	}
}

// TaskInstance is one concrete occurrence of a routine on a specific date.
// Instances are derived on demand and never persisted; recomputing for the
// same routine and date yields identical keys in identical order.
type TaskInstance struct {
	Key         InstanceKey
	RoutineID   int64
	Name        string
	Points      int
	Time        string
	DurationMin int
	Index       int
	Total       int
}

// InstanceID is the wire form of the instance key.
func (t TaskInstance) InstanceID() string {
	return t.Key.String()
}

// Label renders the display name with an occurrence suffix when the routine
// occurs more than once on the day, e.g. "Stretch (2/3)".
func (t TaskInstance) Label() string {
	if t.Total > 1 {
		return fmt.Sprintf("%s (%d/%d)", t.Name, t.Index+1, t.Total)
	}
	return t.Name
}
