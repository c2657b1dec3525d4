package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	prefKeyNameTemplate = "_cocoa_pref_%s"
	nsKeyNameTemplate   = "_cocoa_%s_"
)

// Store implements ports.KeyValueStore with one redis string per document.
type Store struct {
	cli    *redis.Client
	prefix string
}

func NewStore(cli *redis.Client) *Store {
	return &Store{cli: cli, prefix: fmt.Sprintf(prefKeyNameTemplate, "")}
}

// NewNamespacedStore keeps its documents apart from the preference documents, e.g. for the
// sealed values of the secure store.
func NewNamespacedStore(cli *redis.Client, namespace string) *Store {
	return &Store{cli: cli, prefix: fmt.Sprintf(nsKeyNameTemplate, namespace)}
}

func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	out := s.cli.Get(ctx, s.key(key))
	if out.Err() != nil {
		if errors.Is(out.Err(), redis.Nil) {
			return "", false, nil
		}
		return "", false, out.Err()
	}
	return out.Val(), true, nil
}

func (s *Store) SetString(ctx context.Context, key, value string) error {
	out := s.cli.Set(ctx, s.key(key), value, 0)
	return out.Err()
}

func (s *Store) Remove(ctx context.Context, key string) error {
	out := s.cli.Del(ctx, s.key(key))
	return out.Err()
}

// ClearAll purges every preference document. Used in tests only.
func (s *Store) ClearAll(ctx context.Context) error {
	out := s.cli.Keys(ctx, s.key("*"))
	if out.Err() != nil {
		return out.Err()
	}
	keys := out.Val()
	if len(keys) == 0 {
		return nil
	}
	outN := s.cli.Del(ctx, keys...)
	if outN.Err() != nil {
		log.WithError(outN.Err()).Error("failed to clear preferences")
	}
	return outN.Err()
}

func (s *Store) key(key string) string {
	return s.prefix + key
}
