package dto

import (
	"time"

	"model-artifact-service/internal/core/domain"
)

type ModelArtifactResponse struct {
	ID        int64  `json:"id"`
	ModelName string `json:"model_name"`
	S3Key     string `json:"s3_key"`
	FileSize  int64  `json:"file_size"`
	CreatedAt string `json:"created_at"`
}

type UploadModelsResponse struct {
	SuccessCount  int                     `json:"success_count"`
	FailedCount   int                     `json:"failed_count"`
	UploadedFiles []ModelArtifactResponse `json:"uploaded_files"`
	FailedFiles   []string                `json:"failed_files"`
}

type ModelListResponse struct {
	Models      []ModelArtifactResponse `json:"models"`
	CurrentPage int                     `json:"current_page"`
	PageSize    int                     `json:"page_size"`
	TotalCount  int                     `json:"total_count"`
	TotalPages  int                     `json:"total_pages"`
}

func ToModelArtifactResponse(a *domain.ModelArtifact) ModelArtifactResponse {
	return ModelArtifactResponse{
		ID:        a.ID,
		ModelName: a.ModelName,
		S3Key:     a.S3Key,
		FileSize:  a.FileSize,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func ToUploadModelsResponse(r *domain.UploadResult) UploadModelsResponse {
	uploaded := make([]ModelArtifactResponse, 0, len(r.Uploaded))
	for _, a := range r.Uploaded {
		uploaded = append(uploaded, ToModelArtifactResponse(a))
	}
	failed := r.Failed
	if failed == nil {
		failed = []string{}
	}
	return UploadModelsResponse{
		SuccessCount:  r.SuccessCount,
		FailedCount:   r.FailedCount,
		UploadedFiles: uploaded,
		FailedFiles:   failed,
	}
}

func ToModelListResponse(p *domain.ArtifactPage) ModelListResponse {
	models := make([]ModelArtifactResponse, 0, len(p.Models))
	for _, a := range p.Models {
		models = append(models, ToModelArtifactResponse(a))
	}
	return ModelListResponse{
		Models:      models,
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		TotalCount:  p.TotalCount,
		TotalPages:  p.TotalPages,
	}
}
