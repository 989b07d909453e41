package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/config"
	"github.com/diegoclair/map-rotation-bot/internal/database"
	"github.com/diegoclair/map-rotation-bot/internal/domain/service"
	"github.com/diegoclair/map-rotation-bot/internal/handlers"
	"github.com/diegoclair/map-rotation-bot/internal/i18n"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
	"github.com/diegoclair/map-rotation-bot/internal/render"
	slackcodec "github.com/diegoclair/map-rotation-bot/internal/slack"
	"github.com/diegoclair/map-rotation-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading configuration from the environment")
	}

	cfg := config.Load()
	obs.SetupLog("map-rotation-bot", cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	log.Info("Migrations completed successfully")

	locales, err := i18n.New(cfg.DefaultLocale)
	if err != nil {
		log.WithError(err).Fatal("Failed to load locales")
	}

	metrics := obs.NewMetrics()
	messenger := slackcodec.NewMessenger(slack.New(cfg.SlackBotToken), slackcodec.NewCodec(cfg.PublicBaseURL))

	svc, err := service.NewInstance(database.NewInstance(db), messenger, render.New(), locales,
		service.WithMetrics(metrics),
		service.WithLockTTL(cfg.LockTTL),
		service.WithFanoutConcurrency(cfg.FanoutConcurrency),
		service.WithImages(cfg.ImagesEnabled()),
	)
	if err != nil {
		log.WithError(err).Fatal("Failed to build services")
	}

	svc.Scheduler.Start(ctx)
	defer svc.Scheduler.Stop()

	handler := handlers.New(svc.Bot, locales, cfg.SlackSigningSecret)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(handler, metrics.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Failed to shut down server")
		}
	}()

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("Server stopped")
		return
	}
	<-shutdownDone

	log.Info("Shutting down, waiting for background work")
	handler.Wait()
	svc.Wait()
}
