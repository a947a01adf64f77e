// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	appConfig "github.com/footballdb/football-db/internal/config"
	"github.com/footballdb/football-db/internal/database/database"
	"github.com/footballdb/football-db/internal/database/migrate"
	"github.com/footballdb/football-db/internal/health"
	"github.com/footballdb/football-db/internal/middleware"
	teamRouter "github.com/footballdb/football-db/internal/team/router"
	"github.com/footballdb/football-db/pkg/logger"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			appLogger.Warnw("failed to close database connection", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.Recovery(appLogger))

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)

	teamRouter.RegisterRoutes(r, db, appLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	appLogger.Infow("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorw("server shutdown failed", "error", err)
	}
	appLogger.Infow("server stopped")
}
