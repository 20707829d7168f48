package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplox/uploads-backend/models"
)

func TestAdaptStorageObjectEventAcceptsQuotedAndBareSize(t *testing.T) {
	for name, payload := range map[string]string{
		"quoted size": `{"bucket":"b","name":"data.csv","size":"120","timeCreated":"2026-08-30T10:00:00Z"}`,
		"bare size":   `{"bucket":"b","name":"data.csv","size":120,"timeCreated":"2026-08-30T10:00:00Z"}`,
	} {
		t.Run(name, func(t *testing.T) {
			var body StorageObjectEventBody
			require.NoError(t, json.Unmarshal([]byte(payload), &body))

			event, err := AdaptStorageObjectEvent(body)

			require.NoError(t, err)
			assert.Equal(t, int64(120), event.SizeBytes)
			assert.Equal(t, "2026-08-30T10:00:00Z", event.CreatedTime)
		})
	}
}

func TestAdaptStorageObjectEventRejectsMalformedSize(t *testing.T) {
	_, err := AdaptStorageObjectEvent(StorageObjectEventBody{
		Bucket: "b",
		Name:   "data.csv",
		Size:   json.RawMessage(`"12 KB"`),
	})

	assert.ErrorIs(t, err, models.BadParameterError)
}
