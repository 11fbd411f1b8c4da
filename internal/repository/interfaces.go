package repository

import (
	"context"

	"github.com/mbeckers/routinely/internal/domain"
)

// RoutineRepo owns the set of routine definitions. It has no recurrence
// knowledge; expansion happens in the recurrence package on snapshots
// returned by List.
type RoutineRepo interface {
	// Create assigns the routine's ID.
	Create(ctx context.Context, r *domain.Routine) error
	GetByID(ctx context.Context, userID string, id int64) (*domain.Routine, error)
	// List returns routines in creation order, the order expansion preserves.
	List(ctx context.Context, userID string) ([]*domain.Routine, error)
	Update(ctx context.Context, r *domain.Routine) error
	// Delete removes the definition only; completion records referencing
	// the routine id are kept.
	Delete(ctx context.Context, userID string, id int64) error
}

// CompletionRepo is the per-day ledger of instance outcomes.
type CompletionRepo interface {
	// Record inserts the outcome if no record exists for the record's
	// (user, date key, instance id) and reports whether it was newly
	// recorded. A false return means the caller must not apply point
	// effects again.
	Record(ctx context.Context, rec *domain.CompletionRecord) (bool, error)
	StatusOf(ctx context.Context, userID, dateKey, instanceID string) (domain.CompletionStatus, bool, error)
	ListByDay(ctx context.Context, userID, dateKey string) ([]*domain.CompletionRecord, error)
	// StatusMap returns instance id -> status for one day.
	StatusMap(ctx context.Context, userID, dateKey string) (map[string]domain.CompletionStatus, error)
}

// ProfileRepo stores the single local user with their points/level state.
type ProfileRepo interface {
	// Get returns the current user, or domain.ErrNotFound on a fresh store.
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

// HistoryRepo persists the rolling performance history in append order.
type HistoryRepo interface {
	List(ctx context.Context, userID string) ([]domain.PerformanceEntry, error)
	// Replace overwrites the stored history with entries, preserving slice order.
	Replace(ctx context.Context, userID string, entries []domain.PerformanceEntry) error
}

// NotificationRepo tracks which instances were already notified per day so
// the periodic due-soon check stays idempotent.
type NotificationRepo interface {
	ListNotified(ctx context.Context, userID, dateKey string) (map[string]bool, error)
	MarkNotified(ctx context.Context, userID, dateKey, instanceID string) error
}
