package state

import (
	"cocoa/internal/types"
	"context"
	"time"
)

var (
	lastProcessTekTimestamp   = field[int64]{key: types.KeyLastProcessTekTimestamp}
	etag                      = field[string]{key: types.KeyETag}
	lastProcessTekTimestampBg = field[string]{key: types.KeyLastProcessTekTimestampBg}
	lastProcessTekListCount   = field[int64]{key: types.KeyLastProcessTekListCount}
	lastDownloadCount         = field[int64]{key: types.KeyLastDownloadCount}
	lastDownloadDateTime      = field[time.Time]{key: types.KeyLastDownloadDateTime}
)

// LastProcessTekTimestamp is the creation time (epoch millis) of the newest key file processed.
func (s *Store) LastProcessTekTimestamp(ctx context.Context, region string) (int64, error) {
	return getKey(ctx, s, lastProcessTekTimestamp, region)
}

func (s *Store) SetLastProcessTekTimestamp(ctx context.Context, region string, created int64) error {
	return setKey(ctx, s, lastProcessTekTimestamp, region, created)
}

// ETag of the last key list download.
func (s *Store) ETag(ctx context.Context, region string) (string, error) {
	return getKey(ctx, s, etag, region)
}

func (s *Store) SetETag(ctx context.Context, region, tag string) error {
	return setKey(ctx, s, etag, region, tag)
}

func (s *Store) LastProcessTekListCount(ctx context.Context, region string) (int64, error) {
	return getKey(ctx, s, lastProcessTekListCount, region)
}

func (s *Store) SetLastProcessTekListCount(ctx context.Context, region string, count int64) error {
	return setKey(ctx, s, lastProcessTekListCount, region, count)
}

func (s *Store) LastDownloadCount(ctx context.Context, region string) (int64, error) {
	return getKey(ctx, s, lastDownloadCount, region)
}

func (s *Store) SetLastDownloadCount(ctx context.Context, region string, count int64) error {
	return setKey(ctx, s, lastDownloadCount, region, count)
}

// LastDownloadDateTime is the zero time when no download was recorded.
func (s *Store) LastDownloadDateTime(ctx context.Context, region string) (time.Time, error) {
	return getKey(ctx, s, lastDownloadDateTime, region)
}

func (s *Store) SetLastDownloadDateTime(ctx context.Context, region string, at time.Time) error {
	return setKey(ctx, s, lastDownloadDateTime, region, at)
}
