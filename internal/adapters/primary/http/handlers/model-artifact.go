package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"model-artifact-service/internal/adapters/primary/http/dto"
	"model-artifact-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) UploadModels(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrNoFiles.Error()})
		return
	}
	for _, fh := range fileHeaders {
		if !strings.HasSuffix(fh.Filename, domain.ModelFileExt) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("unsupported file type: %s (%s)", fh.Filename, domain.ErrUnsupportedFileType),
			})
			return
		}
	}

	files := make([]domain.FileUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()
		files = append(files, domain.FileUpload{Filename: fh.Filename, Content: f})
	}

	result, err := h.artifactSvc.UploadBatch(c.Request.Context(), files)
	if err != nil {
		log.WithError(err).WithField("file_count", len(files)).Error("upload batch failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUploadModelsResponse(result))
}

func (h *Handler) DownloadModel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}

	content, filename, err := h.artifactSvc.DownloadByID(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).WithField("id", id).Error("download model failed")
		mapDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/octet-stream", content)
}

func (h *Handler) ListModels(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size"})
		return
	}

	result, err := h.artifactSvc.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"page": page, "page_size": pageSize}).
			Error("list models failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelListResponse(result))
}
