package domain

import (
	"io"
	"time"
)

// ModelFileExt is the only extension accepted for uploads. The model name
// is the original filename with this suffix stripped, and the download
// filename is the model name with it re-attached.
const ModelFileExt = ".pth"

// ModelArtifact is the metadata record for one model file kept in the
// object store. A row exists only for objects that were actually written.
// Records are immutable after creation; there is no delete path.
type ModelArtifact struct {
	ID        int64
	ModelName string
	S3Key     string
	FileSize  int64
	CreatedAt time.Time
}

// FileUpload is one incoming file of an upload batch.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// UploadOutcome is the per-file result of an object-store write attempt.
// It is never persisted; the service consumes it to decide which files get
// a metadata row.
type UploadOutcome struct {
	Filename  string
	ModelName string
	S3Key     string
	FileSize  int64
	Success   bool
	Err       string
}

// UploadResult aggregates one upload batch. Uploaded carries the records
// as returned by the repository, ids populated.
type UploadResult struct {
	SuccessCount int
	FailedCount  int
	Uploaded     []*ModelArtifact
	Failed       []string
}

// ArtifactPage is one page of artifact records plus paging totals.
// TotalPages is ceil(TotalCount / PageSize).
type ArtifactPage struct {
	Models     []*ModelArtifact
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}
