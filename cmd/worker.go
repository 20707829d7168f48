package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/uplox/uploads-backend/infra"
	"github.com/uplox/uploads-backend/repositories"
	"github.com/uplox/uploads-backend/usecases"
	"github.com/uplox/uploads-backend/usecases/upload_processing"
	"github.com/uplox/uploads-backend/utils"
)

const workerMaxConcurrency = 10

func RunTaskQueueWorker() error {
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

	repos := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repos, config.bucketUrlScheme)

	workers := river.NewWorkers()
	river.AddWorker(workers, upload_processing.NewProcessUploadWorker(uc.NewProcessUploadUsecase()))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: workerMaxConcurrency},
		},
		Workers: workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	if err := riverClient.Start(ctx); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Started task queue worker")

	<-ctx.Done()
	return cleanStop(logger, riverClient)
}

// cleanStop lets in-flight jobs finish, then cancels whatever is left before
// exiting. Interrupted jobs are redelivered by the queue, the processing claim
// keeps redelivery harmless for the records they already finalized.
func cleanStop(logger *slog.Logger, riverClient *river.Client[pgx.Tx]) error {
	softStopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := riverClient.Stop(softStopCtx)
	if err == nil {
		logger.Info("Task queue worker stopped cleanly")
		return nil
	}

	hardStopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Soft stop timed out, cancelling remaining jobs")
	return riverClient.StopAndCancel(hardStopCtx)
}
