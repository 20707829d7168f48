package dto

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/uplox/uploads-backend/models"
)

// StorageObjectEventBody mirrors the object-finalized notification payload.
// Size is kept raw because object stores disagree on its encoding: GCS-style
// notifications quote int64 values, others send bare integers.
type StorageObjectEventBody struct {
	Bucket      string          `json:"bucket" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Size        json.RawMessage `json:"size" binding:"required"`
	TimeCreated string          `json:"timeCreated"`
}

func AdaptStorageObjectEvent(body StorageObjectEventBody) (models.StorageObjectEvent, error) {
	rawSize := strings.Trim(string(body.Size), `"`)
	size, err := strconv.ParseInt(rawSize, 10, 64)
	if err != nil {
		return models.StorageObjectEvent{}, errors.Wrapf(models.BadParameterError,
			"invalid object size %q", rawSize)
	}

	return models.StorageObjectEvent{
		BucketName:  body.Bucket,
		ObjectName:  body.Name,
		SizeBytes:   size,
		CreatedTime: body.TimeCreated,
	}, nil
}
