package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeckers/routinely/internal/db"
	"github.com/mbeckers/routinely/internal/repository"
	"github.com/mbeckers/routinely/internal/service"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	routines := repository.NewSQLiteRoutineRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	histories := repository.NewSQLiteHistoryRepo(database)
	notifications := repository.NewSQLiteNotificationRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	profileSvc := service.NewProfileService(profiles)
	_, err = profileSvc.Bootstrap(context.Background())
	require.NoError(t, err)

	return &App{
		Routines:          service.NewRoutineService(routines, profiles),
		Tracker:           service.NewTrackerService(uow),
		Progress:          service.NewProgressService(routines, completions, profiles, histories),
		Notify:            service.NewNotifyService(routines, profiles, notifications, 5),
		Profiles:          profileSvc,
		NotifyIntervalSec: 30,
	}
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.Execute()
}

func TestRoutineAddListRemove(t *testing.T) {
	app := newTestApp(t)

	err := execute(t, app, "routine", "add",
		"--name", "Morning run", "--points", "5",
		"--time", "07:00", "--duration", "45")
	require.NoError(t, err)

	routines, err := app.Routines.List(context.Background())
	require.NoError(t, err)
	require.Len(t, routines, 1)
	assert.Equal(t, "Morning run", routines[0].Name)

	require.NoError(t, execute(t, app, "routine", "remove", "1"))
	routines, err = app.Routines.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, routines)
}

func TestRoutineAddWeekly(t *testing.T) {
	app := newTestApp(t)

	err := execute(t, app, "routine", "add",
		"--name", "Gym", "--points", "10", "--frequency", "weekly",
		"--weekday", "mon:08:00:60", "--weekday", "fri:17:00:45")
	require.NoError(t, err)

	routines, err := app.Routines.List(context.Background())
	require.NoError(t, err)
	require.Len(t, routines, 1)
	assert.Len(t, routines[0].WeekdaySlots, 2)
	assert.Equal(t, 2, routines[0].FrequencyCount)
}

func TestRoutineAddRejectsInvalid(t *testing.T) {
	app := newTestApp(t)

	err := execute(t, app, "routine", "add",
		"--name", "Broken", "--frequency", "weekly")
	assert.Error(t, err, "weekly without weekday slots must fail validation")
}

func TestRoutineEditChangesTime(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, execute(t, app, "routine", "add",
		"--name", "Read", "--points", "3", "--time", "21:00", "--duration", "30"))
	require.NoError(t, execute(t, app, "routine", "edit", "1", "--time", "22:00"))

	r, err := app.Routines.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "22:00", r.Time)
	assert.Equal(t, "Read", r.Name)
}

func TestDoCommandRecordsCompletion(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, execute(t, app, "routine", "add",
		"--name", "Run", "--points", "5", "--time", "07:00", "--duration", "45"))
	require.NoError(t, execute(t, app, "do", "1-0"))

	profile, err := app.Profiles.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, profile.Points)

	view, err := app.Progress.DayView(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 100, view.Progress)
}

func TestUnknownInstanceFails(t *testing.T) {
	app := newTestApp(t)
	assert.Error(t, execute(t, app, "do", "999-0"))
}
