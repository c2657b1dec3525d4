package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidState         = errors.New("invalid state")
	ErrInvalidRegion        = errors.New("invalid region")
	ErrMalformed            = errors.New("malformed document")
	ErrPartialWrite         = errors.New("partial write")
	ErrInvalidSettings      = errors.New("invalid settings")
	ErrInvalidConfiguration = errors.New("invalid exposure configuration")

	ErrInvalidBackend  = errors.New("invalid backend")
	ErrDataStoreAccess = errors.New("data store read/write error")
)

func Err(typedError error, innerErr error, msgTemplate string, args ...any) error {
	if msgTemplate == "" {
		return errors.Join(typedError, innerErr)
	} else {
		return errors.Join(typedError, innerErr, fmt.Errorf(msgTemplate, args...))
	}
}
