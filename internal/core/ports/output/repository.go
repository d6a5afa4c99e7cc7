package ports

import (
	"context"

	"model-artifact-service/internal/core/domain"
)

// ArtifactRepository is the relational system of record for artifact
// metadata.
type ArtifactRepository interface {
	// InsertBatch persists all records as one transaction: either every row
	// is written with a generated id, or none are. The returned slice
	// preserves the order of the input, each record carrying its id and
	// final created_at. A duplicate s3 key fails the whole batch with
	// domain.ErrDuplicateS3Key.
	InsertBatch(ctx context.Context, artifacts []*domain.ModelArtifact) ([]*domain.ModelArtifact, error)

	// GetByID returns domain.ErrArtifactNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*domain.ModelArtifact, error)

	// ListPaged returns up to limit rows ordered by id descending, skipping
	// offset rows. An exhausted table yields a short or empty slice, never
	// an error.
	ListPaged(ctx context.Context, offset, limit int) ([]*domain.ModelArtifact, error)

	CountAll(ctx context.Context) (int, error)
}
