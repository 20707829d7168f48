package models

// ProcessUploadArgs is the queue message published by the ingestor and
// consumed by the processing worker. Delivery is at-least-once; the worker
// side claim absorbs duplicates.
type ProcessUploadArgs struct {
	UploadId   string `json:"upload_id"`
	BucketName string `json:"bucket_name"`
	FileName   string `json:"file_name"`
}

func (ProcessUploadArgs) Kind() string { return "process_upload" }
