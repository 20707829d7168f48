package dto

import (
	"time"

	"github.com/uplox/uploads-backend/models"
)

type APIUpload struct {
	UploadId              string     `json:"upload_id"`
	BucketName            string     `json:"bucket_name"`
	FileName              string     `json:"file_name"`
	FileSize              int64      `json:"file_size"`
	CreatedTime           string     `json:"created_time,omitempty"`
	Status                string     `json:"status"`
	QueuedAt              time.Time  `json:"queued_at"`
	ProcessingStartedAt   *time.Time `json:"processing_started_at,omitempty"`
	ProcessingCompletedAt *time.Time `json:"processing_completed_at,omitempty"`
	FailedAt              *time.Time `json:"failed_at,omitempty"`
	UpdatedAt             time.Time  `json:"updated_at"`
	ErrorMessage          *string    `json:"error_message,omitempty"`
	LinesProcessed        *int       `json:"lines_processed,omitempty"`
}

func AdaptUploadDto(upload models.Upload) APIUpload {
	return APIUpload{
		UploadId:              upload.Id,
		BucketName:            upload.BucketName,
		FileName:              upload.FileName,
		FileSize:              upload.FileSize,
		CreatedTime:           upload.CreatedTime,
		Status:                string(upload.Status),
		QueuedAt:              upload.QueuedAt,
		ProcessingStartedAt:   upload.ProcessingStartedAt,
		ProcessingCompletedAt: upload.ProcessingCompletedAt,
		FailedAt:              upload.FailedAt,
		UpdatedAt:             upload.UpdatedAt,
		ErrorMessage:          upload.ErrorMessage,
		LinesProcessed:        upload.LinesProcessed,
	}
}
