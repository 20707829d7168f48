package models

import "github.com/cockroachdb/errors"

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

var ErrUnknownUploadStatus = errors.Wrap(BadParameterError, "unknown upload status")

// Processing failure classification. A permanent failure is recorded and
// acknowledged: redelivering the message cannot change the outcome. Anything
// not wrapped in ErrPermanentProcessing is treated as transient and handed
// back to the queue for redelivery.
var ErrPermanentProcessing = errors.New("permanent processing failure")
