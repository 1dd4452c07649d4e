package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/app"
	"github.com/chastucker/wrestling-club/internal/attendance"
	"github.com/chastucker/wrestling-club/internal/auth"
	"github.com/chastucker/wrestling-club/internal/observability"
	"github.com/chastucker/wrestling-club/internal/platform/cache"
	"github.com/chastucker/wrestling-club/internal/platform/db"
	"github.com/chastucker/wrestling-club/internal/profiles"
	"github.com/chastucker/wrestling-club/internal/schedule"
	"github.com/chastucker/wrestling-club/internal/shared"
	"github.com/chastucker/wrestling-club/internal/tournaments"
)

func main() {
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

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "club_session", cfg.SessionTTL, cfg.IsProduction())
	metrics := observability.NewMetrics()

	authService := auth.NewService(auth.NewRepository(pool))
	profileService := profiles.NewService(profiles.NewRepository(pool))
	scheduleRepo := schedule.NewRepository(pool)
	scheduleService := schedule.NewService(scheduleRepo)
	tournamentService := tournaments.NewService(tournaments.NewRepository(pool))
	attendanceService := attendance.NewService(attendance.NewRepository(pool), scheduleRepo)

	guard := access.Guard{
		Roles:    profileService,
		Profiles: profileService,
		ClubID:   cfg.ClubID,
		Logger:   logger,
	}

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		SessionManager:     sessionManager,
		Guard:              guard,
		AuthHandler:        auth.NewHandler(logger, authService, sessionManager),
		AccessHandler:      access.NewHandler(logger, guard),
		ProfilesHandler:    profiles.NewHandler(logger, profileService, guard, cfg.ClubID, metrics),
		ScheduleHandler:    schedule.NewHandler(logger, scheduleService, guard, cfg.ClubID),
		TournamentsHandler: tournaments.NewHandler(logger, tournamentService, guard, cfg.ClubID),
		AttendanceHandler:  attendance.NewHandler(logger, attendanceService, guard, cfg.ClubID, metrics),
		Metrics:            metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("server listening", slog.String("addr", cfg.AppAddr), slog.String("club_id", cfg.ClubID))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
