package state

import (
	"cocoa/internal/types"
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func (s *UnitTestSuite) TestDefaultsWhenNothingRecorded() {
	ctx := context.Background()

	ts, err := s.store.LastProcessTekTimestamp(ctx, "JP")
	s.NoError(err)
	s.Equal(int64(0), ts)

	tag, err := s.store.ETag(ctx, "JP")
	s.NoError(err)
	s.Equal("", tag)

	n, err := s.store.LastProcessTekListCount(ctx, "JP")
	s.NoError(err)
	s.Equal(int64(0), n)

	n, err = s.store.LastDownloadCount(ctx, "JP")
	s.NoError(err)
	s.Equal(int64(0), n)

	at, err := s.store.LastDownloadDateTime(ctx, "JP")
	s.NoError(err)
	s.True(at.IsZero())

	h, err := s.store.BackgroundHistory(ctx, "JP")
	s.NoError(err)
	s.Empty(h)
}

func (s *UnitTestSuite) TestETagScenario() {
	ctx := context.Background()

	tag, err := s.store.ETag(ctx, "JP")
	s.NoError(err)
	s.Equal("", tag)

	s.NoError(s.store.SetETag(ctx, "JP", "abc123"))

	tag, err = s.store.ETag(ctx, "JP")
	s.NoError(err)
	s.Equal("abc123", tag)

	tag, err = s.store.ETag(ctx, "US")
	s.NoError(err)
	s.Equal("", tag)
}

func (s *UnitTestSuite) TestRoundTripEveryField() {
	ctx := context.Background()
	at := time.Date(2021, 6, 1, 12, 30, 0, 0, time.UTC)

	s.NoError(s.store.SetLastProcessTekTimestamp(ctx, "440", 1622550600000))
	s.NoError(s.store.SetLastProcessTekListCount(ctx, "440", 12))
	s.NoError(s.store.SetLastDownloadCount(ctx, "440", 3))
	s.NoError(s.store.SetLastDownloadDateTime(ctx, "440", at))

	ts, err := s.store.LastProcessTekTimestamp(ctx, "440")
	s.NoError(err)
	s.Equal(int64(1622550600000), ts)

	n, err := s.store.LastProcessTekListCount(ctx, "440")
	s.NoError(err)
	s.Equal(int64(12), n)

	n, err = s.store.LastDownloadCount(ctx, "440")
	s.NoError(err)
	s.Equal(int64(3), n)

	got, err := s.store.LastDownloadDateTime(ctx, "440")
	s.NoError(err)
	s.True(at.Equal(got))
}

func (s *UnitTestSuite) TestRegionIsolation() {
	ctx := context.Background()
	s.NoError(s.store.SetLastProcessTekTimestamp(ctx, "A", 1))
	s.NoError(s.store.SetLastProcessTekTimestamp(ctx, "B", 2))
	s.NoError(s.store.SetLastProcessTekTimestamp(ctx, "A", 3))

	a, _ := s.store.LastProcessTekTimestamp(ctx, "A")
	b, _ := s.store.LastProcessTekTimestamp(ctx, "B")
	s.Equal(int64(3), a)
	s.Equal(int64(2), b)

	doc, ok, _ := s.prefs.GetString(ctx, types.KeyLastProcessTekTimestamp)
	s.True(ok)
	s.JSONEq(`{"A":3,"B":2}`, doc)
}

func (s *UnitTestSuite) TestRecordedZeroIsKept() {
	ctx := context.Background()
	s.NoError(s.store.SetLastDownloadCount(ctx, "JP", 0))
	doc, ok, _ := s.prefs.GetString(ctx, types.KeyLastDownloadCount)
	s.True(ok)
	s.JSONEq(`{"JP":0}`, doc)
}

func (s *UnitTestSuite) TestMalformedDocumentFallsBackToDefault() {
	ctx := context.Background()
	s.NoError(s.prefs.SetString(ctx, types.KeyETag, "{broken"))

	tag, err := s.store.ETag(ctx, "JP")
	s.NoError(err)
	s.Equal("", tag)

	// A write over a malformed document starts a fresh map.
	s.NoError(s.store.SetETag(ctx, "JP", "x"))
	doc, _, _ := s.prefs.GetString(ctx, types.KeyETag)
	s.JSONEq(`{"JP":"x"}`, doc)
}

func (s *UnitTestSuite) TestWrongValueTypeFallsBackToDefault() {
	ctx := context.Background()
	s.NoError(s.prefs.SetString(ctx, types.KeyLastProcessTekTimestamp, `{"JP":"not a number"}`))
	ts, err := s.store.LastProcessTekTimestamp(ctx, "JP")
	s.NoError(err)
	s.Equal(int64(0), ts)
}

func (s *UnitTestSuite) TestEmptyRegionRejected() {
	ctx := context.Background()
	_, err := s.store.ETag(ctx, "")
	s.True(errors.Is(err, types.ErrInvalidRegion))
	s.True(errors.Is(s.store.SetETag(ctx, "", "x"), types.ErrInvalidRegion))
	s.True(errors.Is(s.store.AppendBackgroundTimestamp(ctx, "", 1), types.ErrInvalidRegion))
}

func (s *UnitTestSuite) TestCollaboratorFailurePropagates() {
	ctx := context.Background()
	st := NewStore(brokenStore{})

	_, err := st.ETag(ctx, "JP")
	s.True(errors.Is(err, errBroken))
	s.True(errors.Is(err, types.ErrDataStoreAccess))

	s.True(errors.Is(st.SetETag(ctx, "JP", "x"), errBroken))
	s.True(errors.Is(st.ResetExposureDetection(ctx), errBroken))
	s.True(errors.Is(st.ImportLastProcessTekTimestamps(ctx, map[string]int64{"JP": 1}), errBroken))
}

func (s *UnitTestSuite) TestResetExposureDetection() {
	ctx := context.Background()
	s.NoError(s.store.SetETag(ctx, "JP", "x"))
	s.NoError(s.store.SetLastDownloadCount(ctx, "JP", 4))
	s.NoError(s.store.AppendBackgroundTimestamp(ctx, "JP", 100))
	s.NoError(s.store.SetConfiguration(ctx, `{"minimumRiskScore":1}`))

	s.NoError(s.store.ResetExposureDetection(ctx))
	s.Equal([]string{types.KeyExposureConfiguration}, s.prefs.Keys())

	// Removing again is a no-op.
	s.NoError(s.store.ResetExposureDetection(ctx))
}

func (s *UnitTestSuite) TestImportLastProcessTekTimestamps() {
	ctx := context.Background()
	s.NoError(s.store.ImportLastProcessTekTimestamps(ctx, map[string]int64{"JP": 1000, "US": 5}))
	ts, err := s.store.LastProcessTekTimestamp(ctx, "JP")
	s.NoError(err)
	s.Equal(int64(1000), ts)
	ts, _ = s.store.LastProcessTekTimestamp(ctx, "US")
	s.Equal(int64(5), ts)
}

func (s *UnitTestSuite) TestMalformedDocumentLogsKeyAndRegion() {
	ctx := context.Background()
	hook := test.NewGlobal()
	defer hook.Reset()
	s.NoError(s.prefs.SetString(ctx, types.KeyETag, "{broken"))

	_, err := s.store.ETag(ctx, "JP")
	s.NoError(err)

	entry := hook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(log.WarnLevel, entry.Level)
	s.Equal(types.KeyETag, entry.Data["key"])
	s.Equal("JP", entry.Data["region"])
}
