package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/uplox/uploads-backend/models"
)

type CsvTransform struct {
	mock.Mock
}

func (t *CsvTransform) Transform(ctx context.Context, upload models.ProcessUploadArgs, lines []string) (models.CsvProcessingResult, error) {
	args := t.Called(ctx, upload, lines)
	return args.Get(0).(models.CsvProcessingResult), args.Error(1)
}
