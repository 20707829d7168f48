package upload_processing

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riverqueue/river"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/usecases"
)

type ProcessUploadWorker struct {
	river.WorkerDefaults[models.ProcessUploadArgs]

	usecase usecases.ProcessUploadUsecase
}

func NewProcessUploadWorker(usecase usecases.ProcessUploadUsecase) ProcessUploadWorker {
	return ProcessUploadWorker{usecase: usecase}
}

func (w ProcessUploadWorker) Timeout(job *river.Job[models.ProcessUploadArgs]) time.Duration {
	return 2 * time.Minute
}

// Work translates the processing outcome into the queue protocol: permanent
// failures cancel the job so it is never retried, anything else bubbles up
// and triggers the scheduled retry.
func (w ProcessUploadWorker) Work(ctx context.Context, job *river.Job[models.ProcessUploadArgs]) error {
	err := w.usecase.ProcessUpload(ctx, job.Args)
	if errors.Is(err, models.ErrPermanentProcessing) {
		return river.JobCancel(err)
	}
	return err
}
