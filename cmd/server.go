package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/uplox/uploads-backend/api"
	"github.com/uplox/uploads-backend/infra"
	"github.com/uplox/uploads-backend/repositories"
	"github.com/uplox/uploads-backend/usecases"
	"github.com/uplox/uploads-backend/utils"
)

func RunServer() error {
	config := loadConfiguration()
	logger := newLogger(config)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = utils.StoreLoggerInContext(ctx, logger)

	pool, err := infra.NewPostgresConnectionPool(ctx,
		config.pgConfig.GetConnectionString(), config.pgConfig.MaxPoolConnections)
	if err != nil {
		return err
	}
	defer pool.Close()

	// insert-only client, jobs are worked by the worker process
	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Logger: logger,
	})
	if err != nil {
		return err
	}

	repos := repositories.NewRepositories(pool, repositories.WithRiverClient(riverClient))
	uc := usecases.NewUsecases(repos, config.bucketUrlScheme)

	server := api.NewServer(api.Configuration{
		Env:            config.env,
		Port:           config.port,
		DefaultTimeout: 10 * time.Second,
	}, uc, logger)

	go func() {
		logger.InfoContext(ctx, "Starting server", "port", config.port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorContext(ctx, "Error while serving the app", "error", err)
		}
		logger.InfoContext(ctx, "Server returned")
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
