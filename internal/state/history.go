package state

import (
	"cocoa/internal/types"
	"context"
	"strconv"
	"strings"
)

const historyDelimiter = ","

// BackgroundHistory returns the recorded background processing markers for region, most recent
// first. A trailing delimiter left by older versions and empty tokens are ignored.
func (s *Store) BackgroundHistory(ctx context.Context, region string) ([]string, error) {
	raw, err := getKey(ctx, s, lastProcessTekTimestampBg, region)
	if err != nil {
		return nil, err
	}
	return splitHistory(raw), nil
}

// AppendBackgroundTimestamp records a background processing run (epoch millis) at the front of the
// region's history and drops the oldest markers beyond types.HistoryCapacity.
func (s *Store) AppendBackgroundTimestamp(ctx context.Context, region string, created int64) error {
	tokens, err := s.BackgroundHistory(ctx, region)
	if err != nil {
		return err
	}
	tokens = types.PrependRecent(tokens, strconv.FormatInt(created, 10), types.HistoryCapacity)
	return setKey(ctx, s, lastProcessTekTimestampBg, region, strings.Join(tokens, historyDelimiter))
}

func splitHistory(raw string) []string {
	raw = strings.TrimRight(raw, historyDelimiter)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, historyDelimiter)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}
