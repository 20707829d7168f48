package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/uplox/uploads-backend/models"
)

type BlobRepository struct {
	mock.Mock
}

func (r *BlobRepository) GetBlob(ctx context.Context, bucketUrl, fileName string) (models.Blob, error) {
	args := r.Called(ctx, bucketUrl, fileName)
	return args.Get(0).(models.Blob), args.Error(1)
}
