package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/sihs-edu/campus-backend/internal/config"
	"github.com/sihs-edu/campus-backend/internal/database"
	"github.com/sihs-edu/campus-backend/internal/handler"
	"github.com/sihs-edu/campus-backend/internal/logger"
	"github.com/sihs-edu/campus-backend/internal/repository"
	"github.com/sihs-edu/campus-backend/internal/router"
	"github.com/sihs-edu/campus-backend/internal/service"
	"github.com/sihs-edu/campus-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Campus Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	facultyRepo := repository.NewFacultyRepository(pool)
	newsEventRepo := repository.NewNewsEventRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	downloadRepo := repository.NewDownloadRepository(pool)
	researchRepo := repository.NewResearchRepository(pool)
	sliderRepo := repository.NewSliderRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, adminRepo, log)
	adminService := service.NewAdminService(adminRepo, authService, log)
	departmentService := service.NewDepartmentService(departmentRepo)
	facultyService := service.NewFacultyService(facultyRepo, departmentRepo)
	newsEventService := service.NewNewsEventService(newsEventRepo)
	notificationService := service.NewNotificationService(notificationRepo, rdb, log)
	downloadService := service.NewDownloadService(downloadRepo)
	researchService := service.NewResearchService(researchRepo)
	sliderService := service.NewSliderService(sliderRepo)
	settingService := service.NewSettingService(settingRepo, rdb, cfg, log)
	mediaService := service.NewMediaService(cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService, adminService),
		Admin:        handler.NewAdminHandler(adminService),
		Department:   handler.NewDepartmentHandler(departmentService),
		Faculty:      handler.NewFacultyHandler(facultyService),
		NewsEvent:    handler.NewNewsEventHandler(newsEventService),
		Notification: handler.NewNotificationHandler(notificationService),
		Download:     handler.NewDownloadHandler(downloadService),
		Research:     handler.NewResearchHandler(researchService),
		Slider:       handler.NewSliderHandler(sliderService),
		Setting:      handler.NewSettingHandler(settingService),
		Media:        handler.NewMediaHandler(mediaService),
		WS:           handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, adminRepo, handlers, cfg, pool, rdb)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
