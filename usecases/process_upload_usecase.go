package usecases

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/repositories"
	"github.com/uplox/uploads-backend/usecases/executor_factory"
	"github.com/uplox/uploads-backend/utils"
)

type ProcessUploadUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	uploadTracking  repositories.UploadTrackingRepository
	blobRepository  repositories.BlobRepository
	transform       CsvTransform
	bucketUrlScheme string
}

// ProcessUpload handles one queue message. Messages are delivered
// at-least-once, possibly concurrently for the same upload: the processing
// claim is the only serialization point, everything after it runs at most
// once per claim window.
//
// The returned error is the redelivery signal: nil acknowledges the message,
// models.ErrPermanentProcessing acknowledges after recording the failure, any
// other error asks the queue to redeliver.
func (uc ProcessUploadUsecase) ProcessUpload(ctx context.Context, args models.ProcessUploadArgs) error {
	logger := utils.LoggerFromContext(ctx).With("upload_id", args.UploadId, "file_name", args.FileName)
	exec := uc.executorFactory.NewExecutor()

	claimed, err := uc.uploadTracking.TryClaimProcessing(ctx, exec, args.UploadId)
	if err != nil {
		return errors.Wrap(err, "error claiming upload for processing")
	}
	if !claimed {
		logger.InfoContext(ctx, "Upload is already processing or done, skipping duplicate delivery")
		return nil
	}

	lines, err := uc.readCsvLines(ctx, args)
	if err != nil {
		return uc.recordFailure(ctx, args.UploadId, err)
	}

	// minimal structural validation: a header row plus at least one data row
	if len(lines) < 2 {
		err := errors.Wrap(models.ErrPermanentProcessing, "csv file is empty or has only headers")
		return uc.recordFailure(ctx, args.UploadId, err)
	}

	result, err := uc.transform.Transform(ctx, args, lines)
	if err != nil {
		return uc.recordFailure(ctx, args.UploadId, err)
	}

	if err := uc.uploadTracking.FinalizeDone(ctx, exec, args.UploadId, result.LinesProcessed); err != nil {
		return errors.Wrap(err, "error finalizing upload as done")
	}

	logger.InfoContext(ctx, fmt.Sprintf("Successfully processed upload (%d lines)", result.LinesProcessed))
	return nil
}

func (uc ProcessUploadUsecase) readCsvLines(ctx context.Context, args models.ProcessUploadArgs) ([]string, error) {
	blob, err := uc.blobRepository.GetBlob(ctx, uc.bucketUrl(args.BucketName), args.FileName)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			// the object is gone from the bucket, redelivery cannot bring it back
			return nil, errors.Wrap(models.ErrPermanentProcessing, err.Error())
		}
		return nil, err
	}
	defer blob.ReadCloser.Close()

	var lines []string
	scanner := bufio.NewScanner(blob.ReadCloser)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "error reading object %s", args.FileName)
	}
	return lines, nil
}

const recordFailureTimeout = 10 * time.Second

// recordFailure writes the failed status as a best-effort audit trail and
// translates the failure into the queue signal. A store error while recording
// the failure must not mask the original failure classification, so it is
// logged and swallowed.
//
// The write runs on a detached context: when the failure is the job timeout
// itself, the job context is already dead, and a write on it would leave the
// record claimed in processing where no redelivery can ever re-claim it.
func (uc ProcessUploadUsecase) recordFailure(ctx context.Context, uploadId string, processingErr error) error {
	logger := utils.LoggerFromContext(ctx)

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordFailureTimeout)
	defer cancel()
	if err := uc.uploadTracking.FinalizeFailed(
		writeCtx, uc.executorFactory.NewExecutor(), uploadId, processingErr.Error(),
	); err != nil {
		logger.ErrorContext(ctx, "Could not record upload failure", "upload_id", uploadId, "error", err)
	}

	if errors.Is(processingErr, models.ErrPermanentProcessing) {
		logger.WarnContext(ctx, "Upload failed permanently", "upload_id", uploadId, "error", processingErr)
	}
	return processingErr
}

func (uc ProcessUploadUsecase) bucketUrl(bucketName string) string {
	return fmt.Sprintf("%s://%s", uc.bucketUrlScheme, bucketName)
}
