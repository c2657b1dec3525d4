package ports

import (
	"cocoa/internal/types"
	"context"
)

// ExposureNotifier is the OS exposure notification capability. Every call may block on the platform.
type ExposureNotifier interface {
	// FetchKeysFromServer downloads diagnosis keys and runs a detection pass.
	FetchKeysFromServer(ctx context.Context) error

	IsEnabled(ctx context.Context) (bool, error)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Status(ctx context.Context) (types.NotificationStatus, error)
}
