package service

import (
	"context"
	"time"

	"github.com/mbeckers/routinely/internal/domain"
	"github.com/mbeckers/routinely/internal/progress"
	"github.com/mbeckers/routinely/internal/recurrence"
	"github.com/mbeckers/routinely/internal/repository"
)

type progressService struct {
	routines    repository.RoutineRepo
	completions repository.CompletionRepo
	profiles    repository.ProfileRepo
	histories   repository.HistoryRepo
}

// NewProgressService creates the read-side view service.
func NewProgressService(
	routines repository.RoutineRepo,
	completions repository.CompletionRepo,
	profiles repository.ProfileRepo,
	histories repository.HistoryRepo,
) ProgressService {
	return &progressService{
		routines:    routines,
		completions: completions,
		profiles:    profiles,
		histories:   histories,
	}
}

func (s *progressService) DayView(ctx context.Context, date time.Time) (*DayView, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.routines.List(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	return s.buildDayView(ctx, profile.UserID, all, date)
}

func (s *progressService) buildDayView(ctx context.Context, userID string, routines []*domain.Routine, date time.Time) (*DayView, error) {
	dateKey := domain.DateKey(date)
	instances := recurrence.Expand(routines, date)
	recorded, err := s.completions.StatusMap(ctx, userID, dateKey)
	if err != nil {
		return nil, err
	}

	views := make([]InstanceView, 0, len(instances))
	for _, inst := range instances {
		status, ok := recorded[inst.InstanceID()]
		views = append(views, InstanceView{TaskInstance: inst, Status: status, Recorded: ok})
	}
	return &DayView{
		Date:      date,
		DateKey:   dateKey,
		Instances: views,
		Progress:  progress.Daily(instances, recorded),
	}, nil
}

func (s *progressService) Range(ctx context.Context, start, end time.Time) ([]DaySummary, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.routines.List(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	days := recurrence.ExpandRange(all, start, end)
	summaries := make([]DaySummary, 0, len(days))
	for _, day := range days {
		recorded, err := s.completions.StatusMap(ctx, profile.UserID, day.DateKey)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, DaySummary{
			Date:      day.Date,
			DateKey:   day.DateKey,
			TaskCount: len(day.Instances),
			Progress:  progress.Daily(day.Instances, recorded),
		})
	}
	return summaries, nil
}

func (s *progressService) Status(ctx context.Context, now time.Time) (*StatusView, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.routines.List(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	today, err := s.buildDayView(ctx, profile.UserID, all, now)
	if err != nil {
		return nil, err
	}

	instances := recurrence.Expand(all, now)
	recorded, err := s.completions.StatusMap(ctx, profile.UserID, today.DateKey)
	if err != nil {
		return nil, err
	}
	next := progress.NextTask(instances, recorded, now.Hour()*60+now.Minute())

	history, err := s.histories.List(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	return &StatusView{
		Profile: profile,
		Today:   today,
		Next:    next,
		History: history,
	}, nil
}

func (s *progressService) RefreshHistory(ctx context.Context, now time.Time) ([]domain.PerformanceEntry, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.routines.List(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	dateKey := domain.DateKey(now)
	recorded, err := s.completions.StatusMap(ctx, profile.UserID, dateKey)
	if err != nil {
		return nil, err
	}
	pct := progress.Daily(recurrence.Expand(all, now), recorded)

	history, err := s.histories.List(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	updated := progress.UpdateHistory(history, dateKey, pct)
	if err := s.histories.Replace(ctx, profile.UserID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
