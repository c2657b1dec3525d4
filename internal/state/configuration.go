package state

import (
	"cocoa/internal/types"
	"context"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// RawConfiguration returns the stored exposure configuration document as-is.
func (s *Store) RawConfiguration(ctx context.Context) (string, bool, error) {
	doc, ok, err := s.prefs.GetString(ctx, types.KeyExposureConfiguration)
	if err != nil {
		return "", false, types.Err(types.ErrDataStoreAccess, err, "read %s", types.KeyExposureConfiguration)
	}
	return doc, ok && doc != "", nil
}

// Configuration parses the stored exposure configuration. It returns nil when none is stored or
// the stored document cannot be parsed.
func (s *Store) Configuration(ctx context.Context) (*types.Configuration, error) {
	doc, ok, err := s.RawConfiguration(ctx)
	if err != nil || !ok {
		return nil, err
	}
	var cfg types.Configuration
	if err := json.Unmarshal([]byte(doc), &cfg); err != nil {
		log.WithError(err).WithField("key", types.KeyExposureConfiguration).Warn("malformed exposure configuration, ignoring")
		return nil, nil
	}
	return &cfg, nil
}

// SetConfiguration stores the configuration document verbatim.
func (s *Store) SetConfiguration(ctx context.Context, doc string) error {
	if err := s.prefs.SetString(ctx, types.KeyExposureConfiguration, doc); err != nil {
		return types.Err(types.ErrDataStoreAccess, err, "write %s", types.KeyExposureConfiguration)
	}
	return nil
}

func (s *Store) RemoveConfiguration(ctx context.Context) error {
	return s.RemoveAll(ctx, types.KeyExposureConfiguration)
}
