package state

import (
	"cocoa/internal/codec"
	"cocoa/internal/ports"
	"cocoa/internal/types"
	"context"

	log "github.com/sirupsen/logrus"
)

// Store keeps exposure detection bookkeeping per region. Every logical field is one document in
// the preference store holding a region -> value JSON object. Nothing is cached between calls:
// each read and each read-modify-write goes to the preference store.
type Store struct {
	prefs ports.KeyValueStore
}

func NewStore(prefs ports.KeyValueStore) *Store {
	return &Store{prefs: prefs}
}

// field binds a document key to its value type and the value returned when nothing is recorded.
type field[V any] struct {
	key string
	def V
}

// loadRegional reads the document behind key on behalf of region. Absent and malformed documents
// both yield an empty map; only preference store failures are returned.
func loadRegional[V any](ctx context.Context, prefs ports.KeyValueStore, key, region string) (map[string]V, error) {
	doc, ok, err := prefs.GetString(ctx, key)
	if err != nil {
		return nil, types.Err(types.ErrDataStoreAccess, err, "read %s", key)
	}
	if !ok || doc == "" {
		return map[string]V{}, nil
	}
	m, err := codec.DecodeRegional[V](doc)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"key": key, "region": region}).Warn("malformed regional document, treating as empty")
		return map[string]V{}, nil
	}
	return m, nil
}

func getKey[V any](ctx context.Context, s *Store, f field[V], region string) (V, error) {
	if region == "" {
		return f.def, types.Err(types.ErrInvalidRegion, nil, "empty region reading %s", f.key)
	}
	m, err := loadRegional[V](ctx, s.prefs, f.key, region)
	if err != nil {
		return f.def, err
	}
	v, ok := m[region]
	if !ok {
		return f.def, nil
	}
	return v, nil
}

func setKey[V any](ctx context.Context, s *Store, f field[V], region string, value V) error {
	if region == "" {
		return types.Err(types.ErrInvalidRegion, nil, "empty region writing %s", f.key)
	}
	m, err := loadRegional[V](ctx, s.prefs, f.key, region)
	if err != nil {
		return err
	}
	m[region] = value
	doc, err := codec.EncodeRegional(m)
	if err != nil {
		return err
	}
	if err := s.prefs.SetString(ctx, f.key, doc); err != nil {
		return types.Err(types.ErrDataStoreAccess, err, "write %s", f.key)
	}
	log.WithFields(log.Fields{"key": f.key, "region": region}).Debug("regional value stored")
	return nil
}

// RemoveAll deletes the named documents entirely. Missing documents are ignored.
func (s *Store) RemoveAll(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if err := s.prefs.Remove(ctx, k); err != nil {
			return types.Err(types.ErrDataStoreAccess, err, "remove %s", k)
		}
	}
	return nil
}

// ResetExposureDetection forgets every regional bookkeeping field.
func (s *Store) ResetExposureDetection(ctx context.Context) error {
	if err := s.RemoveAll(ctx, types.RegionalKeys...); err != nil {
		return err
	}
	log.Info("exposure detection bookkeeping removed")
	return nil
}

// ImportLastProcessTekTimestamps writes a whole region -> timestamp map as the
// last-processed-timestamp document, replacing what was there.
func (s *Store) ImportLastProcessTekTimestamps(ctx context.Context, timestamps map[string]int64) error {
	doc, err := codec.EncodeRegional(timestamps)
	if err != nil {
		return err
	}
	if err := s.prefs.SetString(ctx, types.KeyLastProcessTekTimestamp, doc); err != nil {
		return types.Err(types.ErrDataStoreAccess, err, "write %s", types.KeyLastProcessTekTimestamp)
	}
	return nil
}
