package api

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/uplox/uploads-backend/dto"
	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/pure_utils"
	"github.com/uplox/uploads-backend/usecases"
)

// handleStorageFinalizedEvent receives object-finalized notifications pushed
// by the object store. It always answers 200 on handled notifications,
// including duplicates and ignored objects, so the push subscription does not
// redeliver them.
func handleStorageFinalizedEvent(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.StorageObjectEventBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		event, err := dto.AdaptStorageObjectEvent(body)
		if err != nil {
			presentError(ctx, c, err)
			return
		}

		if err := uc.NewIngestUploadUsecase().IngestStorageEvent(ctx, event); err != nil {
			presentError(ctx, c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

func handleGetUploadStatus(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		uploadId := c.Query("upload_id")
		if uploadId == "" {
			presentError(ctx, c, errors.Wrap(models.BadParameterError,
				"upload_id query parameter is required"))
			return
		}

		upload, err := uc.NewUploadStatusUsecase().GetUpload(ctx, uploadId)
		if err != nil {
			presentError(ctx, c, err)
			return
		}
		c.JSON(http.StatusOK, dto.AdaptUploadDto(upload))
	}
}

func handleListUploads(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		filters := models.ListUploadsFilters{Limit: models.DefaultListUploadsLimit}
		if statusParam := c.Query("status"); statusParam != "" {
			status, err := models.UploadStatusFrom(statusParam)
			if err != nil {
				presentError(ctx, c, err)
				return
			}
			filters.Status = pure_utils.Ptr(status)
		}
		if limitParam := c.Query("limit"); limitParam != "" {
			limit, err := strconv.Atoi(limitParam)
			if err != nil || limit <= 0 {
				presentError(ctx, c, errors.Wrapf(models.BadParameterError,
					"invalid limit %q", limitParam))
				return
			}
			filters.Limit = limit
		}

		uploads, err := uc.NewUploadStatusUsecase().ListUploads(ctx, filters)
		if err != nil {
			presentError(ctx, c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"uploads": pure_utils.Map(uploads, dto.AdaptUploadDto),
		})
	}
}
