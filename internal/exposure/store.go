package exposure

import (
	"cocoa/internal/ports"
	"cocoa/internal/types"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// RecordStore keeps the exposure summary and the exposure events as two sibling documents in
// the secure store. They are always written together.
type RecordStore struct {
	secure ports.SecureStore
}

func NewRecordStore(secure ports.SecureStore) *RecordStore {
	return &RecordStore{secure: secure}
}

// SetExposure replaces the stored pair. Events are written first; if the summary write then fails
// the pair is inconsistent and ErrPartialWrite is returned so the caller sets it again.
// A nil events slice is stored as an empty list.
func (r *RecordStore) SetExposure(ctx context.Context, summary *types.UserExposureSummary, events []types.UserExposureInfo) error {
	if events == nil {
		events = []types.UserExposureInfo{}
	}
	eventsDoc, err := json.Marshal(events)
	if err != nil {
		return types.Err(types.ErrMalformed, err, "encode %s", types.KeyExposureEvents)
	}
	summaryDoc, err := json.Marshal(summary)
	if err != nil {
		return types.Err(types.ErrMalformed, err, "encode %s", types.KeyExposureSummary)
	}

	if err := r.secure.SetString(ctx, types.KeyExposureEvents, string(eventsDoc)); err != nil {
		return types.Err(types.ErrDataStoreAccess, err, "write %s", types.KeyExposureEvents)
	}
	if err := r.secure.SetString(ctx, types.KeyExposureSummary, string(summaryDoc)); err != nil {
		log.WithError(err).WithField("key", types.KeyExposureSummary).Error("exposure pair partially written")
		return types.Err(types.ErrPartialWrite, err, "write %s after %s", types.KeyExposureSummary, types.KeyExposureEvents)
	}
	log.WithField("count", len(events)).Debug("exposure record stored")
	return nil
}

// Summary returns the stored summary, nil when absent or unreadable.
func (r *RecordStore) Summary(ctx context.Context) (*types.UserExposureSummary, error) {
	var summary *types.UserExposureSummary
	found, err := r.load(ctx, types.KeyExposureSummary, &summary)
	if err != nil || !found {
		return nil, err
	}
	return summary, nil
}

// Events returns the stored events. Absent and unreadable documents both yield nil, which is
// distinct from a stored empty list.
func (r *RecordStore) Events(ctx context.Context) ([]types.UserExposureInfo, error) {
	var events []types.UserExposureInfo
	found, err := r.load(ctx, types.KeyExposureEvents, &events)
	if err != nil || !found {
		return nil, err
	}
	if events == nil {
		events = []types.UserExposureInfo{}
	}
	return events, nil
}

// EventsToDisplay returns the events with a timestamp at or after now shifted by days. days is
// normally negative. The result is never nil.
func (r *RecordStore) EventsToDisplay(ctx context.Context, days int, now time.Time) ([]types.UserExposureInfo, error) {
	events, err := r.Events(ctx)
	if err != nil {
		return nil, err
	}
	from := now.AddDate(0, 0, days)
	shown := make([]types.UserExposureInfo, 0, len(events))
	for _, e := range events {
		if !e.Timestamp.Before(from) {
			shown = append(shown, e)
		}
	}
	return shown, nil
}

func (r *RecordStore) CountToDisplay(ctx context.Context, days int, now time.Time) (int, error) {
	shown, err := r.EventsToDisplay(ctx, days, now)
	if err != nil {
		return 0, err
	}
	return len(shown), nil
}

// Clear removes both documents.
func (r *RecordStore) Clear(ctx context.Context) error {
	for _, k := range []string{types.KeyExposureSummary, types.KeyExposureEvents} {
		if err := r.secure.Remove(ctx, k); err != nil {
			return types.Err(types.ErrDataStoreAccess, err, "remove %s", k)
		}
	}
	log.Info("exposure record cleared")
	return nil
}

// load decodes the document under key into v. found is false for absent and unreadable documents.
func (r *RecordStore) load(ctx context.Context, key string, v any) (bool, error) {
	doc, ok, err := r.secure.GetString(ctx, key)
	switch {
	case errors.Is(err, types.ErrMalformed):
		log.WithError(err).WithField("key", key).Warn("unreadable secure document, treating as absent")
		return false, nil
	case err != nil:
		return false, types.Err(types.ErrDataStoreAccess, err, "read %s", key)
	case !ok || doc == "":
		return false, nil
	}
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		log.WithError(err).WithField("key", key).Warn("malformed secure document, treating as absent")
		return false, nil
	}
	return true, nil
}
