package service

import (
	"context"
	"time"

	"github.com/mbeckers/routinely/internal/domain"
	"github.com/mbeckers/routinely/internal/recurrence"
	"github.com/mbeckers/routinely/internal/repository"
)

type notifyService struct {
	routines      repository.RoutineRepo
	profiles      repository.ProfileRepo
	notifications repository.NotificationRepo
	leadMinutes   int
	observer      UseCaseObserver
}

// NewNotifyService creates the due-soon checker. leadMinutes values below 1
// fall back to the default lead window.
func NewNotifyService(
	routines repository.RoutineRepo,
	profiles repository.ProfileRepo,
	notifications repository.NotificationRepo,
	leadMinutes int,
	observers ...UseCaseObserver,
) NotifyService {
	if leadMinutes < 1 {
		leadMinutes = recurrence.DefaultLeadMinutes
	}
	return &notifyService{
		routines:      routines,
		profiles:      profiles,
		notifications: notifications,
		leadMinutes:   leadMinutes,
		observer:      useCaseObserverOrNoop(observers),
	}
}

// CheckDueSoon returns today's instances starting exactly leadMinutes from
// now that have not been surfaced yet, marking each as notified so the next
// check within the same day stays quiet.
func (s *notifyService) CheckDueSoon(ctx context.Context, now time.Time) (due []domain.TaskInstance, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "notify_check", started, err, map[string]any{"due": len(due)})
	}()

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.routines.List(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	dateKey := domain.DateKey(now)
	notified, err := s.notifications.ListNotified(ctx, profile.UserID, dateKey)
	if err != nil {
		return nil, err
	}

	instances := recurrence.Expand(all, now)
	due = recurrence.DueSoon(instances, now.Hour()*60+now.Minute(), s.leadMinutes, notified)
	for _, inst := range due {
		if err := s.notifications.MarkNotified(ctx, profile.UserID, dateKey, inst.InstanceID()); err != nil {
			return nil, err
		}
	}
	return due, nil
}
