package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sdko-org/website-generator/internal/config"
	"github.com/sdko-org/website-generator/internal/database"
	"github.com/sdko-org/website-generator/internal/handlers"
	"github.com/sdko-org/website-generator/internal/openrouter"
	"github.com/sdko-org/website-generator/internal/scheduler"
	"github.com/sdko-org/website-generator/internal/storage"
	"github.com/sdko-org/website-generator/internal/workflow"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	db, err := database.NewPostgresDB(logger, cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}

	store := storage.NewS3Storage(logger, cfg)
	client := openrouter.NewClient(logger, cfg)
	wf := workflow.New(logger, client, store, db)

	sched := scheduler.New(logger, wf, cfg.GenerateCron)
	if err := sched.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start scheduler")
	}

	handler := handlers.NewWebsiteHandler(logger, store, wf)

	r := mux.NewRouter()
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(handlers.SecureHeadersMiddleware)
	r.Use(handlers.LoggingMiddleware(logger, db))
	r.Use(handlers.RateLimitMiddleware(cfg))
	handlers.RegisterRoutes(r, handler)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint

		sched.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.WithError(err).Error("Server shutdown error")
		}
	}()

	logger.WithField("addr", server.Addr).Info("Starting server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("Server failed")
	}
}
