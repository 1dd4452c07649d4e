package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/chastucker/wrestling-club/internal/app"
	"github.com/chastucker/wrestling-club/internal/auth"
	"github.com/chastucker/wrestling-club/internal/platform/db"
	"github.com/chastucker/wrestling-club/internal/profiles"
	"github.com/chastucker/wrestling-club/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	profileService := profiles.NewService(profiles.NewRepository(pool))
	authService := auth.NewService(auth.NewRepository(pool))

	pendingChecker := jobs.PendingCoachChecker{
		Service: profileService,
		ClubID:  cfg.ClubID,
		Logger:  logger,
		MaxAge:  72 * time.Hour,
	}
	sessionSweeper := jobs.SessionSweeper{
		Service: authService,
		Logger:  logger,
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskPendingCoachReminder, Handler: func(ctx context.Context, t *asynq.Task) error {
				return pendingChecker.Run(ctx)
			}},
			{Type: jobs.TaskSessionSweep, Handler: func(ctx context.Context, t *asynq.Task) error {
				return sessionSweeper.Run(ctx)
			}},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 8 * * *", Task: jobs.NewPendingCoachReminderTask()},
			{Spec: "30 * * * *", Task: jobs.NewSessionSweepTask()},
		},
	})
	if err != nil {
		logger.Error("configure worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("worker started", slog.String("club_id", cfg.ClubID))
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker stopped")
}
