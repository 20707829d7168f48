package usecases

import (
	"context"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/repositories"
	"github.com/uplox/uploads-backend/usecases/executor_factory"
)

// UploadStatusUsecase is a read-only projection over the tracking table, it
// carries no state machine logic.
type UploadStatusUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	uploadTracking  repositories.UploadTrackingRepository
}

func (uc UploadStatusUsecase) GetUpload(ctx context.Context, uploadId string) (models.Upload, error) {
	return uc.uploadTracking.UploadById(ctx, uc.executorFactory.NewExecutor(), uploadId)
}

func (uc UploadStatusUsecase) ListUploads(ctx context.Context, filters models.ListUploadsFilters) ([]models.Upload, error) {
	return uc.uploadTracking.ListUploads(ctx, uc.executorFactory.NewExecutor(), filters)
}
