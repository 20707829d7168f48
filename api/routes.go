package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uplox/uploads-backend/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	r.POST("/events/storage-finalized", handleStorageFinalizedEvent(uc))

	r.GET("/status", handleGetUploadStatus(uc))
	r.GET("/list", handleListUploads(uc))
}

func handleLivenessProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
