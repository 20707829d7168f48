package dbmodels

import (
	"time"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/utils"
)

type DBUpload struct {
	Id                    string     `db:"id"`
	BucketName            string     `db:"bucket_name"`
	FileName              string     `db:"file_name"`
	FileSize              int64      `db:"file_size"`
	CreatedTime           string     `db:"created_time"`
	Status                string     `db:"status"`
	QueuedAt              time.Time  `db:"queued_at"`
	ProcessingStartedAt   *time.Time `db:"processing_started_at"`
	ProcessingCompletedAt *time.Time `db:"processing_completed_at"`
	FailedAt              *time.Time `db:"failed_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
	ErrorMessage          *string    `db:"error_message"`
	LinesProcessed        *int       `db:"lines_processed"`
}

const TABLE_UPLOADS = "uploads"

var SelectUploadColumn = utils.ColumnList[DBUpload]()

func AdaptUpload(db DBUpload) (models.Upload, error) {
	status, err := models.UploadStatusFrom(db.Status)
	if err != nil {
		return models.Upload{}, err
	}

	return models.Upload{
		Id:                    db.Id,
		BucketName:            db.BucketName,
		FileName:              db.FileName,
		FileSize:              db.FileSize,
		CreatedTime:           db.CreatedTime,
		Status:                status,
		QueuedAt:              db.QueuedAt,
		ProcessingStartedAt:   db.ProcessingStartedAt,
		ProcessingCompletedAt: db.ProcessingCompletedAt,
		FailedAt:              db.FailedAt,
		UpdatedAt:             db.UpdatedAt,
		ErrorMessage:          db.ErrorMessage,
		LinesProcessed:        db.LinesProcessed,
	}, nil
}
