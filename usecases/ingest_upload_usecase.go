package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/pure_utils"
	"github.com/uplox/uploads-backend/repositories"
	"github.com/uplox/uploads-backend/usecases/executor_factory"
	"github.com/uplox/uploads-backend/utils"
)

type IngestUploadUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	uploadTracking     repositories.UploadTrackingRepository
	taskQueue          repositories.TaskQueueRepository
	acceptedExtension  string
}

// IngestStorageEvent reacts to one storage-finalized notification. Duplicate
// notifications for the same object are expected: registration is idempotent
// and the worker-side claim absorbs any duplicate queue message. A returned
// error means the notification was not handled and the source should
// redeliver it.
func (uc IngestUploadUsecase) IngestStorageEvent(ctx context.Context, event models.StorageObjectEvent) error {
	logger := utils.LoggerFromContext(ctx)

	if !strings.HasSuffix(strings.ToLower(event.ObjectName), uc.acceptedExtension) {
		logger.InfoContext(ctx, fmt.Sprintf("Ignoring object without %s extension", uc.acceptedExtension),
			"object_name", event.ObjectName)
		return nil
	}

	uploadId := pure_utils.Fingerprint(event.BucketName, event.ObjectName, event.SizeBytes, event.CreatedTime)
	logger = logger.With("upload_id", uploadId, "object_name", event.ObjectName)

	existing, err := uc.uploadTracking.UploadById(ctx, uc.executorFactory.NewExecutor(), uploadId)
	if err != nil && !errors.Is(err, models.NotFoundError) {
		return err
	}
	if err == nil && existing.Status == models.UploadDone {
		logger.InfoContext(ctx, "Upload already fully processed, skipping")
		return nil
	}
	// Any other existing status (pending, processing, failed) goes through
	// re-registration: the ingest stage is deliberately permissive, the
	// processing claim is the real duplication guard.

	err = uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		upload, err := uc.uploadTracking.CreateUploadIfAbsent(ctx, tx, models.CreateUploadInput{
			Id:          uploadId,
			BucketName:  event.BucketName,
			FileName:    event.ObjectName,
			FileSize:    event.SizeBytes,
			CreatedTime: event.CreatedTime,
		})
		if err != nil {
			return err
		}
		return uc.taskQueue.EnqueueProcessUploadTask(ctx, tx, upload)
	})
	if err != nil {
		return errors.Wrap(err, "error registering upload for processing")
	}

	logger.InfoContext(ctx, "Registered upload for processing")
	return nil
}
