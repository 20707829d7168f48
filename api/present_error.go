package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/utils"
)

func presentError(ctx context.Context, c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		logger := utils.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "Unexpected error handling request", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
