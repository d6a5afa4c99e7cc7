package ports

import "context"

// ObjectStore wraps the blob store that holds artifact bytes.
type ObjectStore interface {
	// Put writes content under key, silently overwriting any existing
	// object. Key uniqueness is enforced by the metadata store, not here,
	// so a re-uploaded filename overwrites the object before the metadata
	// insert rejects it.
	Put(ctx context.Context, key string, content []byte) error

	// Get returns the full object content, or domain.ErrObjectNotFound
	// when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// CheckReachable probes the backing bucket. Any failure reports false;
	// it never returns an error.
	CheckReachable(ctx context.Context) bool
}
