package service

import (
	"context"
	"time"

	"github.com/mbeckers/routinely/internal/domain"
	"github.com/mbeckers/routinely/internal/repository"
)

type routineService struct {
	routines repository.RoutineRepo
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

// NewRoutineService creates the routine CRUD service.
func NewRoutineService(routines repository.RoutineRepo, profiles repository.ProfileRepo, observers ...UseCaseObserver) RoutineService {
	return &routineService{
		routines: routines,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *routineService) Create(ctx context.Context, r *domain.Routine) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "routine_create", started, err, map[string]any{"routine_id": r.ID})
	}()

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return err
	}
	r.UserID = profile.UserID
	r.Normalize()
	if err = r.Validate(); err != nil {
		return err
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return s.routines.Create(ctx, r)
}

func (s *routineService) Get(ctx context.Context, id int64) (*domain.Routine, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.routines.GetByID(ctx, profile.UserID, id)
}

func (s *routineService) List(ctx context.Context) ([]*domain.Routine, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.routines.List(ctx, profile.UserID)
}

func (s *routineService) Update(ctx context.Context, r *domain.Routine) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "routine_update", started, err, map[string]any{"routine_id": r.ID})
	}()

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return err
	}
	r.UserID = profile.UserID
	r.Normalize()
	if err = r.Validate(); err != nil {
		return err
	}
	return s.routines.Update(ctx, r)
}

func (s *routineService) Delete(ctx context.Context, id int64) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "routine_delete", started, err, map[string]any{"routine_id": id})
	}()

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return err
	}
	// Completion records referencing the routine stay; earned points stand.
	return s.routines.Delete(ctx, profile.UserID, id)
}
