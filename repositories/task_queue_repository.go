package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/utils"
)

const (
	// at 1sec*attempt^4 between attempts, the 6th attempt runs ~90min in;
	// after that the job is discarded (the queue's dead-letter state)
	nbRetriesProcessUpload = 6
)

type TaskQueueRepository interface {
	EnqueueProcessUploadTask(ctx context.Context, tx Transaction, upload models.Upload) error
}

type riverRepository struct {
	client *river.Client[pgx.Tx]
}

func NewTaskQueueRepository(client *river.Client[pgx.Tx]) TaskQueueRepository {
	return riverRepository{client: client}
}

// EnqueueProcessUploadTask publishes the compact queue message in the same
// transaction as the status record write, so a record is never registered
// without its message nor the other way around.
func (r riverRepository) EnqueueProcessUploadTask(ctx context.Context, tx Transaction, upload models.Upload) error {
	res, err := r.client.InsertTx(ctx, tx.RawTx(), models.ProcessUploadArgs{
		UploadId:   upload.Id,
		BucketName: upload.BucketName,
		FileName:   upload.FileName,
	}, &river.InsertOpts{
		MaxAttempts: nbRetriesProcessUpload,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	})
	if err != nil {
		return err
	}
	logger := utils.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "Enqueued upload processing task", "upload_id", upload.Id, "job_id", res.Job.ID)
	return nil
}
