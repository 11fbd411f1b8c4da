package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mbeckers/routinely/internal/cli"
	"github.com/mbeckers/routinely/internal/config"
	"github.com/mbeckers/routinely/internal/db"
	"github.com/mbeckers/routinely/internal/repository"
	"github.com/mbeckers/routinely/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("ROUTINELY_CONFIG"))
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	routineRepo := repository.NewSQLiteRoutineRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer io.Writer
	if cfg.Log.UseCaseEvents {
		observer = os.Stderr
	}
	obs := service.NewLogUseCaseObserver(observer)

	profileSvc := service.NewProfileService(profileRepo)
	progressSvc := service.NewProgressService(routineRepo, completionRepo, profileRepo, historyRepo)

	app := &cli.App{
		Routines:          service.NewRoutineService(routineRepo, profileRepo, obs),
		Tracker:           service.NewTrackerService(uow, obs),
		Progress:          progressSvc,
		Notify:            service.NewNotifyService(routineRepo, profileRepo, notificationRepo, cfg.Notify.LeadMinutes, obs),
		Profiles:          profileSvc,
		NotifyIntervalSec: cfg.Notify.CheckIntervalSec,
	}

	// A fresh store gets a demo profile; the trend entry for today is
	// recomputed before any command runs.
	ctx := context.Background()
	if _, err := profileSvc.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrapping profile: %w", err)
	}
	if _, err := progressSvc.RefreshHistory(ctx, time.Now()); err != nil {
		return fmt.Errorf("refreshing history: %w", err)
	}

	return cli.NewRootCmd(app).Execute()
}
