package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/core/services"
	"github.com/SscSPs/book_catalog_api/internal/handlers"
	"github.com/SscSPs/book_catalog_api/internal/repositories/database/pgsql"
	"github.com/SscSPs/book_catalog_api/internal/repositories/session"
	"github.com/SscSPs/book_catalog_api/internal/utils/validation"
	"github.com/SscSPs/book_catalog_api/migrations"
	"github.com/SscSPs/book_catalog_api/pkg/cache"
	"github.com/SscSPs/book_catalog_api/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return err
	}
	defer database.ClosePgxPool(dbPool)

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, database.MigrateUp, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			return err
		}
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to connect to session store", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.Error("Error closing Redis client", slog.String("error", cerr.Error()))
		}
	}()

	repos := pgsql.NewRepositoryProvider(dbPool)
	repos.SessionRepo = session.NewRedisSessionRepository(redisClient)

	validation.Register()
	container := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := handlers.NewRouter(cfg, container, logger)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
