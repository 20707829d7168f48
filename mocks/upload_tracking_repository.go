package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/repositories"
)

type UploadTrackingRepository struct {
	mock.Mock
}

func (r *UploadTrackingRepository) UploadById(ctx context.Context, exec repositories.Executor, uploadId string) (models.Upload, error) {
	args := r.Called(ctx, exec, uploadId)
	return args.Get(0).(models.Upload), args.Error(1)
}

func (r *UploadTrackingRepository) CreateUploadIfAbsent(ctx context.Context, exec repositories.Executor, input models.CreateUploadInput) (models.Upload, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(models.Upload), args.Error(1)
}

func (r *UploadTrackingRepository) TryClaimProcessing(ctx context.Context, exec repositories.Executor, uploadId string) (bool, error) {
	args := r.Called(ctx, exec, uploadId)
	return args.Bool(0), args.Error(1)
}

func (r *UploadTrackingRepository) FinalizeDone(ctx context.Context, exec repositories.Executor, uploadId string, linesProcessed int) error {
	args := r.Called(ctx, exec, uploadId, linesProcessed)
	return args.Error(0)
}

func (r *UploadTrackingRepository) FinalizeFailed(ctx context.Context, exec repositories.Executor, uploadId string, errorMessage string) error {
	args := r.Called(ctx, exec, uploadId, errorMessage)
	return args.Error(0)
}

func (r *UploadTrackingRepository) ListUploads(ctx context.Context, exec repositories.Executor, filters models.ListUploadsFilters) ([]models.Upload, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Upload), args.Error(1)
}
