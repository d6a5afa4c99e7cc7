package handlers

import (
	"model-artifact-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	artifactSvc *services.ModelArtifactService
}

func New(artifactSvc *services.ModelArtifactService) *Handler {
	return &Handler{artifactSvc: artifactSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/pytorch-models/upload", h.UploadModels)
	r.GET("/pytorch-models/:id/download", h.DownloadModel)
	r.GET("/pytorch-models", h.ListModels)
}
