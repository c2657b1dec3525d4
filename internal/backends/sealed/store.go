package sealed

import (
	"cocoa/internal/codec"
	"cocoa/internal/ports"
	"cocoa/internal/types"
	"context"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	KeySize   = 32
	nonceSize = 24
)

// Store is a ports.SecureStore that seals every value with NaCl secretbox before handing it to
// the inner store. Values are zstd-compressed, sealed under a fresh random nonce, and base64-url
// encoded as nonce||box.
type Store struct {
	inner ports.KeyValueStore
	key   [KeySize]byte
}

func NewStore(inner ports.KeyValueStore, key []byte) (*Store, error) {
	if len(key) != KeySize {
		return nil, types.Err(types.ErrInvalidBackend, nil, "secure store key must be %d bytes, got %d", KeySize, len(key))
	}
	s := &Store{inner: inner}
	copy(s.key[:], key)
	return s, nil
}

func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := s.inner.GetString(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	b, err := codec.DecodeBlob(raw)
	if err != nil {
		return "", false, types.Err(types.ErrMalformed, err, "secure value %s is not encoded", key)
	}
	if len(b) < nonceSize {
		return "", false, types.Err(types.ErrMalformed, nil, "secure value %s is truncated", key)
	}
	var nonce [nonceSize]byte
	copy(nonce[:], b[:nonceSize])
	opened, ok := secretbox.Open(nil, b[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", false, types.Err(types.ErrMalformed, nil, "secure value %s cannot be opened", key)
	}
	if len(opened) == 0 {
		return "", true, nil
	}
	plain, err := codec.Decompress(opened)
	if err != nil {
		return "", false, types.Err(types.ErrMalformed, err, "secure value %s cannot be decompressed", key)
	}
	return string(plain), true, nil
}

func (s *Store) SetString(ctx context.Context, key, value string) error {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return types.Err(types.ErrDataStoreAccess, err, "generate nonce")
	}
	box := secretbox.Seal(nonce[:], codec.Compress([]byte(value)), &nonce, &s.key)
	return s.inner.SetString(ctx, key, codec.EncodeBlob(box))
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, key)
}

// Close closes the inner store when it holds resources.
func (s *Store) Close() error {
	if c, ok := s.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
