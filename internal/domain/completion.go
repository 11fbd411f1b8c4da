package domain

import "time"

// CompletionRecord is the recorded outcome of a user decision on one task
// instance on one calendar day. At most one record exists per
// (user, date key, instance id); the status is terminal once set.
type CompletionRecord struct {
	UserID     string
	DateKey    string
	InstanceID string
	RoutineID  int64
	Status     CompletionStatus
	RecordedAt time.Time
}

// PerformanceEntry is one day's completion percentage in the rolling
// 7-day performance history.
type PerformanceEntry struct {
	DateKey  string
	Progress int
}
