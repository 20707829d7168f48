package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/repositories/dbmodels"
)

func newMockExecutor(t *testing.T) (Executor, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return PgExecutor{exec: pool}, pool
}

func pendingUploadRow(id string) []any {
	now := time.Now()
	return []any{
		id, "uploads-bucket", "data.csv", int64(120), "2024-01-01T00:00:00Z",
		"pending", now, nil, nil, nil, now, nil, nil,
	}
}

func TestTryClaimProcessingClaimsPendingRecord(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := UploadTrackingRepositoryPostgresql{}

	mock.ExpectExec(`UPDATE uploads SET status = \$1, processing_started_at = now\(\), updated_at = now\(\) WHERE id = \$2 AND status IN \(\$3,\$4\)`).
		WithArgs(models.UploadProcessing, "f1", models.UploadPending, models.UploadFailed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	claimed, err := repo.TryClaimProcessing(context.TODO(), exec, "f1")

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.True(t, claimed)
}

func TestTryClaimProcessingRefusesTerminalOrInFlightRecord(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := UploadTrackingRepositoryPostgresql{}

	// the record is already processing or done: the conditional update
	// matches no row and the caller must not do the work
	mock.ExpectExec(`UPDATE uploads SET status = .*`).
		WithArgs(models.UploadProcessing, "f1", models.UploadPending, models.UploadFailed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	claimed, err := repo.TryClaimProcessing(context.TODO(), exec, "f1")

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.False(t, claimed)
}

func TestCreateUploadIfAbsentReturnsExistingRecord(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := UploadTrackingRepositoryPostgresql{}

	mock.ExpectExec(`INSERT INTO uploads .* ON CONFLICT \(id\) DO NOTHING`).
		WithArgs("f1", "uploads-bucket", "data.csv", int64(120), "2024-01-01T00:00:00Z", models.UploadPending).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery(`SELECT .* FROM uploads WHERE id = \$1`).
		WithArgs("f1").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectUploadColumn).AddRow(pendingUploadRow("f1")...))

	upload, err := repo.CreateUploadIfAbsent(context.TODO(), exec, models.CreateUploadInput{
		Id:          "f1",
		BucketName:  "uploads-bucket",
		FileName:    "data.csv",
		FileSize:    120,
		CreatedTime: "2024-01-01T00:00:00Z",
	})

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Equal(t, "f1", upload.Id)
	assert.Equal(t, models.UploadPending, upload.Status)
}

func TestUploadByIdNotFound(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := UploadTrackingRepositoryPostgresql{}

	mock.ExpectQuery(`SELECT .* FROM uploads WHERE id = \$1`).
		WithArgs("unknown").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectUploadColumn))

	_, err := repo.UploadById(context.TODO(), exec, "unknown")

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.True(t, errors.Is(err, models.NotFoundError))
}

func TestFinalizeDone(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := UploadTrackingRepositoryPostgresql{}

	mock.ExpectExec(`UPDATE uploads SET status = \$1, lines_processed = \$2, error_message = \$3, processing_completed_at = now\(\), updated_at = now\(\) WHERE id = \$4`).
		WithArgs(models.UploadDone, 42, nil, "f1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.FinalizeDone(context.TODO(), exec, "f1", 42)

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, err)
}

func TestFinalizeFailed(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := UploadTrackingRepositoryPostgresql{}

	mock.ExpectExec(`UPDATE uploads SET status = \$1, error_message = \$2, failed_at = now\(\), updated_at = now\(\) WHERE id = \$3`).
		WithArgs(models.UploadFailed, "csv file is empty or has only headers", "f1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.FinalizeFailed(context.TODO(), exec, "f1", "csv file is empty or has only headers")

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, err)
}

func TestListUploadsFiltersByStatus(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := UploadTrackingRepositoryPostgresql{}

	status := models.UploadPending
	mock.ExpectQuery(`SELECT .* FROM uploads WHERE status = \$1 ORDER BY updated_at DESC LIMIT 5`).
		WithArgs(status).
		WillReturnRows(
			pgxmock.NewRows(dbmodels.SelectUploadColumn).
				AddRow(pendingUploadRow("f1")...).
				AddRow(pendingUploadRow("f2")...),
		)

	uploads, err := repo.ListUploads(context.TODO(), exec, models.ListUploadsFilters{
		Status: &status,
		Limit:  5,
	})

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Len(t, uploads, 2)
	assert.Equal(t, "f2", uploads[1].Id)
}
