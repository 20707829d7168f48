package models

import "time"

// Upload is the durable tracking record of one logical file upload,
// keyed by the metadata fingerprint. Records are created once and never
// deleted; all lifecycle changes are partial updates.
type Upload struct {
	Id                    string
	BucketName            string
	FileName              string
	FileSize              int64
	CreatedTime           string
	Status                UploadStatus
	QueuedAt              time.Time
	ProcessingStartedAt   *time.Time
	ProcessingCompletedAt *time.Time
	FailedAt              *time.Time
	UpdatedAt             time.Time
	ErrorMessage          *string
	LinesProcessed        *int
}

type UploadStatus string

const (
	UploadPending    UploadStatus = "pending"
	UploadProcessing UploadStatus = "processing"
	UploadDone       UploadStatus = "done"
	UploadFailed     UploadStatus = "failed"
)

func UploadStatusFrom(s string) (UploadStatus, error) {
	switch s {
	case "pending":
		return UploadPending, nil
	case "processing":
		return UploadProcessing, nil
	case "done":
		return UploadDone, nil
	case "failed":
		return UploadFailed, nil
	}
	return "", ErrUnknownUploadStatus
}

type CreateUploadInput struct {
	Id          string
	BucketName  string
	FileName    string
	FileSize    int64
	CreatedTime string
}

type ListUploadsFilters struct {
	Status *UploadStatus
	Limit  int
}

const DefaultListUploadsLimit = 10

// StorageObjectEvent is the storage-finalized notification received from
// the object store, after dto decoding. CreatedTime keeps the raw ISO-8601
// string from the notification (empty when absent) because it feeds the
// fingerprint and must round-trip byte for byte.
type StorageObjectEvent struct {
	BucketName  string
	ObjectName  string
	SizeBytes   int64
	CreatedTime string
}

// CsvProcessingResult is the metadata reported by the transform on success.
type CsvProcessingResult struct {
	LinesProcessed int
}
