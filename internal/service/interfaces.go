package service

import (
	"context"
	"time"

	"github.com/mbeckers/routinely/internal/domain"
)

// RoutineService is routine CRUD with validate-before-mutate semantics.
type RoutineService interface {
	Create(ctx context.Context, r *domain.Routine) error
	Get(ctx context.Context, id int64) (*domain.Routine, error)
	List(ctx context.Context) ([]*domain.Routine, error)
	Update(ctx context.Context, r *domain.Routine) error
	Delete(ctx context.Context, id int64) error
}

// OutcomeResult reports what one complete/skip actually did. When the
// instance was already resolved today, NewlyRecorded is false and no point
// effects were applied.
type OutcomeResult struct {
	InstanceID    string
	Status        domain.CompletionStatus
	NewlyRecorded bool
	PointsDelta   int
	LevelBefore   int
	LevelAfter    int
	LevelUps      int
	DailyProgress int
}

// TrackerService records completion/skip outcomes. Each call runs the
// ledger write, the points mutation and the history refresh in a single
// transaction, so durable state is persisted before control returns.
type TrackerService interface {
	Complete(ctx context.Context, instanceID string, now time.Time) (*OutcomeResult, error)
	Skip(ctx context.Context, instanceID string, now time.Time) (*OutcomeResult, error)
}

// InstanceView is a task instance joined with its recorded outcome.
type InstanceView struct {
	domain.TaskInstance
	Status   domain.CompletionStatus
	Recorded bool
}

// DayView is one day's expanded instances with statuses and progress.
type DayView struct {
	Date      time.Time
	DateKey   string
	Instances []InstanceView
	Progress  int
}

// DaySummary is the aggregate a calendar cell needs.
type DaySummary struct {
	Date      time.Time
	DateKey   string
	TaskCount int
	Progress  int
}

// StatusView is the dashboard snapshot.
type StatusView struct {
	Profile *domain.Profile
	Today   *DayView
	Next    *domain.TaskInstance
	History []domain.PerformanceEntry
}

// ProgressService derives read-side views: a single day, a date range for
// the calendar, and the dashboard status snapshot.
type ProgressService interface {
	DayView(ctx context.Context, date time.Time) (*DayView, error)
	Range(ctx context.Context, start, end time.Time) ([]DaySummary, error)
	Status(ctx context.Context, now time.Time) (*StatusView, error)
	// RefreshHistory recomputes today's history entry; called at startup
	// so the trend is current before any user action.
	RefreshHistory(ctx context.Context, now time.Time) ([]domain.PerformanceEntry, error)
}

// NotifyService surfaces instances due in the configured lead window and
// marks them notified so repeated checks stay quiet.
type NotifyService interface {
	CheckDueSoon(ctx context.Context, now time.Time) ([]domain.TaskInstance, error)
}

// ProfileService resolves the local user, creating a fresh demo profile on
// first run.
type ProfileService interface {
	Bootstrap(ctx context.Context) (*domain.Profile, error)
	Get(ctx context.Context) (*domain.Profile, error)
}
