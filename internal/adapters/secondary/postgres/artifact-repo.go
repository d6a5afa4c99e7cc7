package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"model-artifact-service/internal/core/domain"
	ports "model-artifact-service/internal/core/ports/output"
)

// Backing table:
//
//	CREATE TABLE pth_model_metadata (
//	    id         BIGSERIAL PRIMARY KEY,
//	    model_name VARCHAR(255) NOT NULL,
//	    file_size  BIGINT NOT NULL,
//	    s3_key     VARCHAR(255) NOT NULL UNIQUE,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type artifactRepo struct {
	pool *pgxpool.Pool
}

func NewArtifactRepository(pool *pgxpool.Pool) ports.ArtifactRepository {
	return &artifactRepo{pool: pool}
}

func (r *artifactRepo) InsertBatch(ctx context.Context, artifacts []*domain.ModelArtifact) ([]*domain.ModelArtifact, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin artifact batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO pth_model_metadata (model_name, file_size, s3_key, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	saved := make([]*domain.ModelArtifact, 0, len(artifacts))
	for _, a := range artifacts {
		createdAt := a.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}

		rec := &domain.ModelArtifact{
			ModelName: a.ModelName,
			S3Key:     a.S3Key,
			FileSize:  a.FileSize,
		}
		err := tx.QueryRow(ctx, query, a.ModelName, a.FileSize, a.S3Key, createdAt).
			Scan(&rec.ID, &rec.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, domain.ErrDuplicateS3Key
			}
			return nil, fmt.Errorf("insert artifact metadata %q: %w", a.S3Key, err)
		}
		saved = append(saved, rec)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit artifact batch: %w", err)
	}
	return saved, nil
}

func (r *artifactRepo) GetByID(ctx context.Context, id int64) (*domain.ModelArtifact, error) {
	query := `
		SELECT id, model_name, file_size, s3_key, created_at
		FROM pth_model_metadata
		WHERE id = $1
	`
	a, err := scanArtifact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("get artifact by id: %w", err)
	}
	return a, nil
}

func (r *artifactRepo) ListPaged(ctx context.Context, offset, limit int) ([]*domain.ModelArtifact, error) {
	query := `
		SELECT id, model_name, file_size, s3_key, created_at
		FROM pth_model_metadata
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	artifacts := make([]*domain.ModelArtifact, 0, limit)
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artifact row: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artifact rows: %w", err)
	}
	return artifacts, nil
}

func (r *artifactRepo) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pth_model_metadata`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count artifacts: %w", err)
	}
	return total, nil
}

func scanArtifact(row pgx.Row) (*domain.ModelArtifact, error) {
	a := &domain.ModelArtifact{}
	err := row.Scan(&a.ID, &a.ModelName, &a.FileSize, &a.S3Key, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}
