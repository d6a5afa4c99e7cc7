package domain

import "errors"

// Not found errors
var (
	ErrArtifactNotFound = errors.New("model artifact not found")
	ErrObjectNotFound   = errors.New("object not found in store")
)

// Validation errors
var (
	ErrNoFiles             = errors.New("no files provided")
	ErrUnsupportedFileType = errors.New("only .pth files are supported")
	ErrInvalidPage         = errors.New("page must be >= 1")
	ErrInvalidPageSize     = errors.New("page size must be between 1 and 100")
)

// Conflict errors
var (
	ErrDuplicateS3Key = errors.New("artifact with this s3 key already exists")
)
