package ports

import "context"

// KeyValueStore is the flat preference store the regional state is persisted in, one document per key.
// A SetString MUST be atomic at the document granularity: readers never observe a partial value.
// Concurrent writers to the same key are last-writer-wins.
type KeyValueStore interface {
	// GetString returns the document stored under key.
	// If the key does not exist, ("",false,nil) MUST be returned.
	GetString(ctx context.Context, key string) (string, bool, error)

	SetString(ctx context.Context, key, value string) error

	// Remove deletes the document. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// SecureStore has the shape of KeyValueStore but implementations MUST protect values at rest.
// A value that exists but cannot be opened MUST be reported with an error wrapping types.ErrMalformed.
type SecureStore interface {
	KeyValueStore
}
