package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/repositories"
)

type TaskQueueRepository struct {
	mock.Mock
}

func (r *TaskQueueRepository) EnqueueProcessUploadTask(ctx context.Context, tx repositories.Transaction, upload models.Upload) error {
	args := r.Called(ctx, tx, upload)
	return args.Error(0)
}
