package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mbeckers/routinely/internal/domain"
	"github.com/mbeckers/routinely/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

// NewProfileService creates the profile service.
func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

// Bootstrap returns the stored user, creating a demo profile on a fresh
// store. Absence of a profile is the valid fresh-user state, not an error.
func (s *profileService) Bootstrap(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.profiles.Get(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	profile = domain.NewProfile(
		fmt.Sprintf("demo_%s", uuid.New().String()),
		"Demo User",
		"Demo",
		time.Now(),
	)
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("creating demo profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}
