package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"model-artifact-service/internal/core/domain"
	ports "model-artifact-service/internal/core/ports/output"
)

// ModelArtifactService coordinates object-store writes with metadata
// persistence and answers paged listing queries.
type ModelArtifactService struct {
	repo  ports.ArtifactRepository
	store ports.ObjectStore
}

func NewModelArtifactService(repo ports.ArtifactRepository, store ports.ObjectStore) *ModelArtifactService {
	return &ModelArtifactService{repo: repo, store: store}
}

// UploadBatch writes each file to the object store and persists metadata
// for the successful ones as a single atomic batch. One file failing the
// store write never aborts the others; it only shows up in the failed
// list. If the metadata insert itself fails the whole call fails, even
// though the objects are already in the store — the written keys are
// logged so the orphans can be reconciled afterwards.
func (s *ModelArtifactService) UploadBatch(ctx context.Context, files []domain.FileUpload) (*domain.UploadResult, error) {
	outcomes := make([]domain.UploadOutcome, 0, len(files))
	for _, f := range files {
		outcomes = append(outcomes, s.uploadOne(ctx, f))
	}

	pending := make([]*domain.ModelArtifact, 0, len(outcomes))
	failed := make([]string, 0)
	for _, o := range outcomes {
		if o.Success {
			pending = append(pending, &domain.ModelArtifact{
				ModelName: o.ModelName,
				S3Key:     o.S3Key,
				FileSize:  o.FileSize,
			})
		} else {
			failed = append(failed, o.Filename)
		}
	}

	uploaded := make([]*domain.ModelArtifact, 0, len(pending))
	if len(pending) > 0 {
		saved, err := s.repo.InsertBatch(ctx, pending)
		if err != nil {
			keys := make([]string, 0, len(pending))
			for _, a := range pending {
				keys = append(keys, a.S3Key)
			}
			log.WithError(err).WithField("s3_keys", keys).
				Error("metadata batch insert failed, objects remain in store")
			return nil, fmt.Errorf("persist artifact metadata: %w", err)
		}
		uploaded = saved
		log.WithField("count", len(saved)).Info("artifact metadata persisted")
	}

	log.WithFields(log.Fields{
		"success_count": len(pending),
		"failed_count":  len(failed),
		"failed_files":  failed,
	}).Info("upload batch completed")

	return &domain.UploadResult{
		SuccessCount: len(pending),
		FailedCount:  len(failed),
		Uploaded:     uploaded,
		Failed:       failed,
	}, nil
}

func (s *ModelArtifactService) uploadOne(ctx context.Context, f domain.FileUpload) domain.UploadOutcome {
	outcome := domain.UploadOutcome{
		Filename:  f.Filename,
		ModelName: strings.TrimSuffix(f.Filename, domain.ModelFileExt),
		S3Key:     f.Filename,
	}

	content, err := io.ReadAll(f.Content)
	if err != nil {
		outcome.Err = err.Error()
		log.WithError(err).WithField("filename", f.Filename).Error("read upload content failed")
		return outcome
	}
	outcome.FileSize = int64(len(content))

	if err := s.store.Put(ctx, outcome.S3Key, content); err != nil {
		outcome.Err = err.Error()
		log.WithError(err).WithField("filename", f.Filename).Error("object store put failed")
		return outcome
	}

	outcome.Success = true
	log.WithFields(log.Fields{
		"filename":  f.Filename,
		"s3_key":    outcome.S3Key,
		"file_size": outcome.FileSize,
	}).Info("file uploaded to object store")
	return outcome
}

// DownloadByID looks up the metadata row, then fetches the bytes from the
// object store. An unknown id returns domain.ErrArtifactNotFound without
// touching the store.
func (s *ModelArtifactService) DownloadByID(ctx context.Context, id int64) ([]byte, string, error) {
	artifact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	content, err := s.store.Get(ctx, artifact.S3Key)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"id":     id,
			"s3_key": artifact.S3Key,
		}).Error("object store get failed")
		return nil, "", fmt.Errorf("fetch artifact %d: %w", id, err)
	}

	filename := artifact.ModelName + domain.ModelFileExt
	log.WithFields(log.Fields{"id": id, "filename": filename}).Info("artifact downloaded")
	return content, filename, nil
}

// ListPage validates the paging parameters before any storage call, then
// composes the page slice and the total count into one response. The two
// reads are independent, so a concurrent insert between them can leave the
// totals slightly stale.
func (s *ModelArtifactService) ListPage(ctx context.Context, page, pageSize int) (*domain.ArtifactPage, error) {
	if page < 1 {
		return nil, domain.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, domain.ErrInvalidPageSize
	}

	offset := (page - 1) * pageSize
	models, err := s.repo.ListPaged(ctx, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	if models == nil {
		models = []*domain.ModelArtifact{}
	}

	totalCount, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count artifacts: %w", err)
	}
	totalPages := (totalCount + pageSize - 1) / pageSize

	log.WithFields(log.Fields{
		"page":        page,
		"page_size":   pageSize,
		"returned":    len(models),
		"total_count": totalCount,
	}).Info("artifact page listed")

	return &domain.ArtifactPage{
		Models:     models,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}
