package ports

import "context"

// PropertyStore is the application properties dictionary older app versions wrote untyped values to.
// Only the legacy migration reads it.
type PropertyStore interface {
	ContainsKey(ctx context.Context, key string) (bool, error)

	// GetProperty returns the raw value, nil if the key does not exist.
	GetProperty(ctx context.Context, key string) (any, error)

	RemoveProperty(ctx context.Context, key string) error
}
