package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/uplox/uploads-backend/mocks"
	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/pure_utils"
	"github.com/uplox/uploads-backend/usecases/executor_factory"
)

func buildIngestUsecase(
	uploadTracking *mocks.UploadTrackingRepository,
	taskQueue *mocks.TaskQueueRepository,
) IngestUploadUsecase {
	stub := executor_factory.NewExecutorFactoryStub()
	return IngestUploadUsecase{
		executorFactory:    stub,
		transactionFactory: stub,
		uploadTracking:     uploadTracking,
		taskQueue:          taskQueue,
		acceptedExtension:  AcceptedUploadExtension,
	}
}

func TestIngestStorageEventIgnoresOtherExtensions(t *testing.T) {
	uploadTracking := new(mocks.UploadTrackingRepository)
	taskQueue := new(mocks.TaskQueueRepository)
	usecase := buildIngestUsecase(uploadTracking, taskQueue)

	err := usecase.IngestStorageEvent(context.Background(), models.StorageObjectEvent{
		BucketName:  "uploads-bucket",
		ObjectName:  "report.pdf",
		SizeBytes:   1234,
		CreatedTime: "2026-08-30T10:00:00Z",
	})

	assert.NoError(t, err)
	uploadTracking.AssertExpectations(t)
	taskQueue.AssertExpectations(t)
}

func TestIngestStorageEventSkipsCompletedUpload(t *testing.T) {
	event := models.StorageObjectEvent{
		BucketName:  "uploads-bucket",
		ObjectName:  "data.csv",
		SizeBytes:   1234,
		CreatedTime: "2026-08-30T10:00:00Z",
	}
	uploadId := pure_utils.Fingerprint(event.BucketName, event.ObjectName, event.SizeBytes, event.CreatedTime)

	uploadTracking := new(mocks.UploadTrackingRepository)
	uploadTracking.On("UploadById", mock.Anything, mock.Anything, uploadId).
		Return(models.Upload{Id: uploadId, Status: models.UploadDone}, nil)
	taskQueue := new(mocks.TaskQueueRepository)
	usecase := buildIngestUsecase(uploadTracking, taskQueue)

	err := usecase.IngestStorageEvent(context.Background(), event)

	assert.NoError(t, err)
	uploadTracking.AssertExpectations(t)
	taskQueue.AssertNotCalled(t, "EnqueueProcessUploadTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngestStorageEventRegistersNewUpload(t *testing.T) {
	event := models.StorageObjectEvent{
		BucketName:  "uploads-bucket",
		ObjectName:  "Data.CSV",
		SizeBytes:   1234,
		CreatedTime: "2026-08-30T10:00:00Z",
	}
	uploadId := pure_utils.Fingerprint(event.BucketName, event.ObjectName, event.SizeBytes, event.CreatedTime)
	upload := models.Upload{Id: uploadId, BucketName: event.BucketName, FileName: event.ObjectName, Status: models.UploadPending}

	uploadTracking := new(mocks.UploadTrackingRepository)
	uploadTracking.On("UploadById", mock.Anything, mock.Anything, uploadId).
		Return(models.Upload{}, errors.Wrap(models.NotFoundError, "upload not found"))
	uploadTracking.On("CreateUploadIfAbsent", mock.Anything, mock.Anything, models.CreateUploadInput{
		Id:          uploadId,
		BucketName:  event.BucketName,
		FileName:    event.ObjectName,
		FileSize:    event.SizeBytes,
		CreatedTime: event.CreatedTime,
	}).Return(upload, nil)
	taskQueue := new(mocks.TaskQueueRepository)
	taskQueue.On("EnqueueProcessUploadTask", mock.Anything, mock.Anything, upload).Return(nil)
	usecase := buildIngestUsecase(uploadTracking, taskQueue)

	err := usecase.IngestStorageEvent(context.Background(), event)

	assert.NoError(t, err)
	uploadTracking.AssertExpectations(t)
	taskQueue.AssertExpectations(t)
}

func TestIngestStorageEventReRegistersFailedUpload(t *testing.T) {
	event := models.StorageObjectEvent{
		BucketName:  "uploads-bucket",
		ObjectName:  "data.csv",
		SizeBytes:   1234,
		CreatedTime: "2026-08-30T10:00:00Z",
	}
	uploadId := pure_utils.Fingerprint(event.BucketName, event.ObjectName, event.SizeBytes, event.CreatedTime)
	upload := models.Upload{Id: uploadId, Status: models.UploadFailed}

	uploadTracking := new(mocks.UploadTrackingRepository)
	uploadTracking.On("UploadById", mock.Anything, mock.Anything, uploadId).
		Return(upload, nil)
	uploadTracking.On("CreateUploadIfAbsent", mock.Anything, mock.Anything, mock.Anything).
		Return(upload, nil)
	taskQueue := new(mocks.TaskQueueRepository)
	taskQueue.On("EnqueueProcessUploadTask", mock.Anything, mock.Anything, upload).Return(nil)
	usecase := buildIngestUsecase(uploadTracking, taskQueue)

	err := usecase.IngestStorageEvent(context.Background(), event)

	assert.NoError(t, err)
	taskQueue.AssertExpectations(t)
}

func TestIngestStorageEventPropagatesEnqueueError(t *testing.T) {
	event := models.StorageObjectEvent{
		BucketName:  "uploads-bucket",
		ObjectName:  "data.csv",
		SizeBytes:   1234,
		CreatedTime: "2026-08-30T10:00:00Z",
	}

	uploadTracking := new(mocks.UploadTrackingRepository)
	uploadTracking.On("UploadById", mock.Anything, mock.Anything, mock.Anything).
		Return(models.Upload{}, errors.Wrap(models.NotFoundError, "upload not found"))
	uploadTracking.On("CreateUploadIfAbsent", mock.Anything, mock.Anything, mock.Anything).
		Return(models.Upload{}, nil)
	taskQueue := new(mocks.TaskQueueRepository)
	taskQueue.On("EnqueueProcessUploadTask", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("queue unavailable"))
	usecase := buildIngestUsecase(uploadTracking, taskQueue)

	err := usecase.IngestStorageEvent(context.Background(), event)

	assert.ErrorContains(t, err, "error registering upload for processing")
}
