package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/repositories/dbmodels"
)

type UploadTrackingRepository interface {
	UploadById(ctx context.Context, exec Executor, id string) (models.Upload, error)
	CreateUploadIfAbsent(ctx context.Context, exec Executor, input models.CreateUploadInput) (models.Upload, error)
	TryClaimProcessing(ctx context.Context, exec Executor, id string) (bool, error)
	FinalizeDone(ctx context.Context, exec Executor, id string, linesProcessed int) error
	FinalizeFailed(ctx context.Context, exec Executor, id string, errorMessage string) error
	ListUploads(ctx context.Context, exec Executor, filters models.ListUploadsFilters) ([]models.Upload, error)
}

type UploadTrackingRepositoryPostgresql struct{}

func (UploadTrackingRepositoryPostgresql) UploadById(ctx context.Context, exec Executor, id string) (models.Upload, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUploadColumn...).
			From(dbmodels.TABLE_UPLOADS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptUpload,
	)
}

// CreateUploadIfAbsent registers a pending record for the fingerprint if none
// exists yet. Concurrent calls for the same id converge on one row: the insert
// is ON CONFLICT DO NOTHING and the existing record is returned unchanged, so
// immutable metadata is never overwritten by a duplicate notification.
func (repo UploadTrackingRepositoryPostgresql) CreateUploadIfAbsent(
	ctx context.Context,
	exec Executor,
	input models.CreateUploadInput,
) (models.Upload, error) {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_UPLOADS).
			Columns(
				"id",
				"bucket_name",
				"file_name",
				"file_size",
				"created_time",
				"status",
				"queued_at",
				"updated_at",
			).
			Values(
				input.Id,
				input.BucketName,
				input.FileName,
				input.FileSize,
				input.CreatedTime,
				models.UploadPending,
				squirrel.Expr("now()"),
				squirrel.Expr("now()"),
			).
			Suffix("ON CONFLICT (id) DO NOTHING"),
	)
	if err != nil {
		return models.Upload{}, err
	}

	return repo.UploadById(ctx, exec, input.Id)
}

// TryClaimProcessing is the single serialization point of the pipeline: it
// atomically moves a pending or failed record to processing. The conditional
// update closes the read-then-write race; among concurrent claimants for the
// same id exactly one observes a row change and proceeds to do the work.
//
// A record stuck in processing after a worker crash stays there: there is no
// lease or expiry, which is an accepted limitation of this design.
func (UploadTrackingRepositoryPostgresql) TryClaimProcessing(ctx context.Context, exec Executor, id string) (bool, error) {
	tag, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_UPLOADS).
			Set("status", models.UploadProcessing).
			Set("processing_started_at", squirrel.Expr("now()")).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": id}).
			Where(squirrel.Eq{"status": []models.UploadStatus{models.UploadPending, models.UploadFailed}}),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (UploadTrackingRepositoryPostgresql) FinalizeDone(ctx context.Context, exec Executor, id string, linesProcessed int) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_UPLOADS).
			Set("status", models.UploadDone).
			Set("lines_processed", linesProcessed).
			Set("error_message", nil).
			Set("processing_completed_at", squirrel.Expr("now()")).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": id}),
	)
	return err
}

func (UploadTrackingRepositoryPostgresql) FinalizeFailed(ctx context.Context, exec Executor, id string, errorMessage string) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_UPLOADS).
			Set("status", models.UploadFailed).
			Set("error_message", errorMessage).
			Set("failed_at", squirrel.Expr("now()")).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": id}),
	)
	return err
}

func (UploadTrackingRepositoryPostgresql) ListUploads(
	ctx context.Context,
	exec Executor,
	filters models.ListUploadsFilters,
) ([]models.Upload, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = models.DefaultListUploadsLimit
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectUploadColumn...).
		From(dbmodels.TABLE_UPLOADS).
		OrderBy("updated_at DESC").
		Limit(uint64(limit))

	if filters.Status != nil {
		query = query.Where(squirrel.Eq{"status": *filters.Status})
	}

	uploads, err := SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUpload)
	if err != nil {
		return nil, errors.Wrap(err, "error listing uploads")
	}
	return uploads, nil
}
