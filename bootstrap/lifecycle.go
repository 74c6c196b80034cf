// ABOUTME: Application lifecycle: startup, background jobs, graceful shutdown
// ABOUTME: Run blocks until SIGINT or SIGTERM
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"news-remix/config"
	"news-remix/logger"
)

// Run is the main application entry point. It initializes all dependencies,
// starts the server and the daily job, then waits for a shutdown signal.
func Run(ctx context.Context) error {
	log := logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Info("Starting news-remix service", "port", cfg.Server.Port)

	deps, cleanup, err := BuildDependencies(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	jobCtx, stopJobs := context.WithCancel(ctx)
	defer stopJobs()
	deps.JobHandler.StartDailyJob(jobCtx)

	httpServer := NewHTTPServer(deps)
	StartHTTPServer(httpServer, deps, log)

	log.Info("news-remix service started successfully")
	waitForShutdown(httpServer, deps, stopJobs, log)

	return nil
}

func waitForShutdown(httpServer *echo.Echo, deps *Dependencies, stopJobs context.CancelFunc, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down news-remix service")
	stopJobs()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down HTTP server", "error", err)
	}

	log.Info("news-remix service stopped")
}
