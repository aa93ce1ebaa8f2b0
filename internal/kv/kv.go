package kv

import "context"

// Store is a minimal persistent key-value interface. Values are opaque JSON
// blobs; absent keys are reported through the boolean, not an error.
type Store interface {
	// Get retrieves the value for key, reporting whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the value for key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
