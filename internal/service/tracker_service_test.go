package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeckers/routinely/internal/db"
	"github.com/mbeckers/routinely/internal/domain"
	"github.com/mbeckers/routinely/internal/repository"
)

type testEnv struct {
	db       *sql.DB
	profiles repository.ProfileRepo
	routines repository.RoutineRepo
	tracker  TrackerService
	progress ProgressService
	notify   NotifyService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	profiles := repository.NewSQLiteProfileRepo(database)
	routines := repository.NewSQLiteRoutineRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	histories := repository.NewSQLiteHistoryRepo(database)
	notifications := repository.NewSQLiteNotificationRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	return &testEnv{
		db:       database,
		profiles: profiles,
		routines: routines,
		tracker:  NewTrackerService(uow),
		progress: NewProgressService(routines, completions, profiles, histories),
		notify:   NewNotifyService(routines, profiles, notifications, 5),
	}
}

func seedProfile(t *testing.T, env *testEnv, points, level int) *domain.Profile {
	t.Helper()
	profile := domain.NewProfile("u1", "Demo User", "Demo", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	profile.Points = points
	profile.Level = level
	require.NoError(t, env.profiles.Upsert(context.Background(), profile))
	return profile
}

func seedDaily(t *testing.T, env *testEnv, name string, points int, clock string) *domain.Routine {
	t.Helper()
	routine := &domain.Routine{
		UserID:         "u1",
		Name:           name,
		Points:         points,
		Frequency:      domain.FrequencyDaily,
		FrequencyCount: 1,
		Time:           clock,
		DurationMin:    30,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, env.routines.Create(context.Background(), routine))
	return routine
}

func TestTracker_CompleteAwardsPoints(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, 0, 1)
	routine := seedDaily(t, env, "Morning run", 5, "08:00")
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)

	key := domain.InstanceKey{RoutineID: routine.ID, Kind: domain.KindSlot}
	result, err := env.tracker.Complete(ctx, key.String(), now)
	require.NoError(t, err)

	assert.True(t, result.NewlyRecorded)
	assert.Equal(t, 5, result.PointsDelta)
	assert.Equal(t, 1, result.LevelAfter)
	assert.Equal(t, 100, result.DailyProgress)

	profile, err := env.profiles.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, profile.Points)
}

func TestTracker_SecondCallIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, 0, 1)
	routine := seedDaily(t, env, "Morning run", 5, "08:00")
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)
	key := domain.InstanceKey{RoutineID: routine.ID, Kind: domain.KindSlot}

	_, err := env.tracker.Complete(ctx, key.String(), now)
	require.NoError(t, err)

	// Repeating the same outcome, or flipping it, changes nothing.
	again, err := env.tracker.Complete(ctx, key.String(), now)
	require.NoError(t, err)
	assert.False(t, again.NewlyRecorded)
	assert.Zero(t, again.PointsDelta)

	skip, err := env.tracker.Skip(ctx, key.String(), now)
	require.NoError(t, err)
	assert.False(t, skip.NewlyRecorded)

	profile, err := env.profiles.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, profile.Points)
}

func TestTracker_LevelUpNormalizesPoints(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, 95, 1)
	routine := seedDaily(t, env, "Big win", 10, "08:00")
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)
	key := domain.InstanceKey{RoutineID: routine.ID, Kind: domain.KindSlot}

	result, err := env.tracker.Complete(ctx, key.String(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, result.LevelUps)
	assert.Equal(t, 1, result.LevelBefore)
	assert.Equal(t, 2, result.LevelAfter)

	profile, err := env.profiles.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, profile.Level)
	assert.Equal(t, 5, profile.Points)
}

func TestTracker_SkipDeductsHalfFlooredAtZero(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, 3, 1)
	routine := seedDaily(t, env, "Costly", 10, "08:00")
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)
	key := domain.InstanceKey{RoutineID: routine.ID, Kind: domain.KindSlot}

	result, err := env.tracker.Skip(ctx, key.String(), now)
	require.NoError(t, err)
	assert.True(t, result.NewlyRecorded)
	assert.Equal(t, -3, result.PointsDelta, "deduction floors at zero, not below")

	profile, err := env.profiles.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, profile.Points)
	assert.Equal(t, 1, profile.Level)
}

func TestTracker_UnknownRoutine(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, 0, 1)
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)

	_, err := env.tracker.Complete(context.Background(), "999-0", now)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTracker_MalformedInstanceID(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, 0, 1)
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)

	_, err := env.tracker.Complete(context.Background(), "not-an-id", now)
	assert.Error(t, err)
}

func TestTracker_ProgressCountsOnlyCompleted(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, 0, 1)
	a := seedDaily(t, env, "A", 5, "08:00")
	b := seedDaily(t, env, "B", 5, "12:00")
	seedDaily(t, env, "C", 5, "18:00")
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)

	_, err := env.tracker.Complete(ctx, domain.InstanceKey{RoutineID: a.ID, Kind: domain.KindSlot}.String(), now)
	require.NoError(t, err)
	result, err := env.tracker.Skip(ctx, domain.InstanceKey{RoutineID: b.ID, Kind: domain.KindSlot}.String(), now)
	require.NoError(t, err)

	// 1 of 3 completed; the skip resolved its instance without counting.
	assert.Equal(t, 33, result.DailyProgress)
}

func TestTracker_UpdatesHistoryEntry(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, 0, 1)
	routine := seedDaily(t, env, "Solo", 5, "08:00")
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)

	_, err := env.tracker.Complete(ctx, domain.InstanceKey{RoutineID: routine.ID, Kind: domain.KindSlot}.String(), now)
	require.NoError(t, err)

	status, err := env.progress.Status(ctx, now)
	require.NoError(t, err)
	require.Len(t, status.History, 1)
	assert.Equal(t, "2025-06-16", status.History[0].DateKey)
	assert.Equal(t, 100, status.History[0].Progress)
}
