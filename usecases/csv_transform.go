package usecases

import (
	"context"

	"github.com/uplox/uploads-backend/models"
)

// CsvTransform is the domain transform applied to a validated csv file. The
// pipeline only cares about its outcome: a result on success, an error wrapped
// in models.ErrPermanentProcessing when redelivery cannot help, any other
// error when it can.
type CsvTransform interface {
	Transform(ctx context.Context, upload models.ProcessUploadArgs, lines []string) (models.CsvProcessingResult, error)
}

// LineCountTransform is the default transform: it only reports how many
// lines the file carries. Real deployments plug their own CsvTransform in
// its place.
type LineCountTransform struct{}

func (LineCountTransform) Transform(
	ctx context.Context,
	upload models.ProcessUploadArgs,
	lines []string,
) (models.CsvProcessingResult, error) {
	return models.CsvProcessingResult{LinesProcessed: len(lines)}, nil
}
