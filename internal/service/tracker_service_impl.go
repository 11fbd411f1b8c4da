package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mbeckers/routinely/internal/db"
	"github.com/mbeckers/routinely/internal/domain"
	"github.com/mbeckers/routinely/internal/progress"
	"github.com/mbeckers/routinely/internal/recurrence"
	"github.com/mbeckers/routinely/internal/repository"
)

type trackerService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewTrackerService creates the completion tracker. All repositories are
// constructed tx-scoped inside each unit of work, so the ledger write, the
// points mutation and the history refresh commit or roll back together.
func NewTrackerService(uow db.UnitOfWork, observers ...UseCaseObserver) TrackerService {
	return &trackerService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *trackerService) Complete(ctx context.Context, instanceID string, now time.Time) (*OutcomeResult, error) {
	return s.record(ctx, instanceID, domain.StatusCompleted, now)
}

func (s *trackerService) Skip(ctx context.Context, instanceID string, now time.Time) (*OutcomeResult, error) {
	return s.record(ctx, instanceID, domain.StatusSkipped, now)
}

func (s *trackerService) record(ctx context.Context, instanceID string, status domain.CompletionStatus, now time.Time) (result *OutcomeResult, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "tracker_"+string(status), started, err, map[string]any{"instance_id": instanceID})
	}()

	key, err := domain.ParseInstanceKey(instanceID)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		profiles := repository.NewSQLiteProfileRepo(tx)
		routines := repository.NewSQLiteRoutineRepo(tx)
		completions := repository.NewSQLiteCompletionRepo(tx)
		histories := repository.NewSQLiteHistoryRepo(tx)

		profile, err := profiles.Get(ctx)
		if err != nil {
			return err
		}

		routine, err := routines.GetByID(ctx, profile.UserID, key.RoutineID)
		if err != nil {
			return fmt.Errorf("routine %d: %w", key.RoutineID, err)
		}

		dateKey := domain.DateKey(now)
		result = &OutcomeResult{
			InstanceID:  key.String(),
			Status:      status,
			LevelBefore: profile.Level,
			LevelAfter:  profile.Level,
		}

		newly, err := completions.Record(ctx, &domain.CompletionRecord{
			UserID:     profile.UserID,
			DateKey:    dateKey,
			InstanceID: key.String(),
			RoutineID:  routine.ID,
			Status:     status,
			RecordedAt: now,
		})
		if err != nil {
			return err
		}
		if !newly {
			// Already resolved today: silent idempotent no-op, points and
			// level stay untouched.
			return nil
		}
		result.NewlyRecorded = true

		pointsBefore := profile.Points
		switch status {
		case domain.StatusCompleted:
			result.LevelUps = profile.ApplyCompletion(routine.Points)
			result.PointsDelta = routine.Points
		case domain.StatusSkipped:
			profile.ApplySkip(routine.Points)
			result.PointsDelta = profile.Points - pointsBefore
		}
		result.LevelAfter = profile.Level
		if err := profiles.Upsert(ctx, profile); err != nil {
			return err
		}

		// Refresh today's history entry from the full day state.
		all, err := routines.List(ctx, profile.UserID)
		if err != nil {
			return err
		}
		recorded, err := completions.StatusMap(ctx, profile.UserID, dateKey)
		if err != nil {
			return err
		}
		result.DailyProgress = progress.Daily(recurrence.Expand(all, now), recorded)

		history, err := histories.List(ctx, profile.UserID)
		if err != nil {
			return err
		}
		return histories.Replace(ctx, profile.UserID,
			progress.UpdateHistory(history, dateKey, result.DailyProgress))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
