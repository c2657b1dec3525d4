package migration

import (
	"cocoa/internal/backends/memory"
	"cocoa/internal/exposure"
	"cocoa/internal/state"
	"cocoa/internal/types"
	"context"
	"errors"
	"time"
)

const legacyConfig = `{"minimumRiskScore":21}`

func legacyUserData() *types.UserData {
	return &types.UserData{
		IsOptined:               true,
		LastProcessTekTimestamp: map[string]int64{"JP": 1000},
		ExposureSummary:         &types.UserExposureSummary{MatchedKeyCount: 2, HighestRiskScore: 5},
		ExposureInformation: []types.UserExposureInfo{
			{Timestamp: time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC), Duration: 5 * time.Minute, TotalRiskScore: 5},
		},
	}
}

func (s *UnitTestSuite) TestMigrateScenario() {
	ctx := context.Background()
	s.props = memory.NewPropertyStore(map[string]any{types.LegacyConfigurationPropertyKey: legacyConfig})
	ud := legacyUserData()

	s.NoError(s.migrator().MigrateFromUserData(ctx, ud))

	st := state.NewStore(s.prefs)
	ts, err := st.LastProcessTekTimestamp(ctx, "JP")
	s.NoError(err)
	s.Equal(int64(1000), ts)

	raw, ok, err := st.RawConfiguration(ctx)
	s.NoError(err)
	s.True(ok)
	s.Equal(legacyConfig, raw)

	events, err := exposure.NewRecordStore(s.secure).Events(ctx)
	s.NoError(err)
	s.Require().Len(events, 1)
	s.Equal(5, events[0].TotalRiskScore)

	s.Empty(ud.LastProcessTekTimestamp)
	s.NotNil(ud.LastProcessTekTimestamp)
	s.Nil(ud.ExposureSummary)
	s.Nil(ud.ExposureInformation)
	s.True(ud.IsOptined)
	present, _ := s.props.ContainsKey(ctx, types.LegacyConfigurationPropertyKey)
	s.False(present)
}

func (s *UnitTestSuite) TestMigrateIsIdempotent() {
	ctx := context.Background()
	s.props = memory.NewPropertyStore(map[string]any{types.LegacyConfigurationPropertyKey: legacyConfig})
	ud := legacyUserData()
	m := s.migrator()

	s.NoError(m.MigrateFromUserData(ctx, ud))
	prefWrites, secureWrites := s.prefs.writes, s.secure.writes
	s.Positive(prefWrites)
	s.Positive(secureWrites)

	s.NoError(m.MigrateFromUserData(ctx, ud))
	s.Equal(prefWrites, s.prefs.writes)
	s.Equal(secureWrites, s.secure.writes)

	ts, _ := state.NewStore(s.prefs).LastProcessTekTimestamp(ctx, "JP")
	s.Equal(int64(1000), ts)
}

func (s *UnitTestSuite) TestNothingToMigrate() {
	ctx := context.Background()
	// No legacy property either, so neither user data shape writes anything.
	s.NoError(s.migrator().MigrateFromUserData(ctx, &types.UserData{}))
	s.NoError(s.migrator().MigrateFromUserData(ctx, nil))
	s.Zero(s.prefs.writes)
	s.Zero(s.secure.writes)
}

func (s *UnitTestSuite) TestNilUserDataStillMigratesConfiguration() {
	ctx := context.Background()
	s.props = memory.NewPropertyStore(map[string]any{types.LegacyConfigurationPropertyKey: legacyConfig})

	s.NoError(s.migrator().MigrateFromUserData(ctx, nil))

	raw, ok, err := state.NewStore(s.prefs).RawConfiguration(ctx)
	s.NoError(err)
	s.True(ok)
	s.Equal(legacyConfig, raw)
	present, _ := s.props.ContainsKey(ctx, types.LegacyConfigurationPropertyKey)
	s.False(present)
	s.Zero(s.secure.writes)

	// Nothing left to move on the next run.
	writes := s.prefs.writes
	s.NoError(s.migrator().MigrateFromUserData(ctx, nil))
	s.Equal(writes, s.prefs.writes)
}

func (s *UnitTestSuite) TestEmptyExposureListStillMoves() {
	ctx := context.Background()
	ud := &types.UserData{ExposureInformation: []types.UserExposureInfo{}}

	s.NoError(s.migrator().MigrateFromUserData(ctx, ud))
	s.Nil(ud.ExposureInformation)

	events, err := exposure.NewRecordStore(s.secure).Events(ctx)
	s.NoError(err)
	s.NotNil(events)
	s.Empty(events)
}

func (s *UnitTestSuite) TestNonStringConfigurationIsDropped() {
	ctx := context.Background()
	s.props = memory.NewPropertyStore(map[string]any{types.LegacyConfigurationPropertyKey: 42.0})

	s.NoError(s.migrator().MigrateFromUserData(ctx, &types.UserData{}))

	_, ok, _ := state.NewStore(s.prefs).RawConfiguration(ctx)
	s.False(ok)
	present, _ := s.props.ContainsKey(ctx, types.LegacyConfigurationPropertyKey)
	s.False(present)
}

func (s *UnitTestSuite) TestFailingStepDoesNotStopOthers() {
	ctx := context.Background()
	s.props = memory.NewPropertyStore(map[string]any{types.LegacyConfigurationPropertyKey: legacyConfig})
	s.secure.broken = true
	ud := legacyUserData()

	err := s.migrator().MigrateFromUserData(ctx, ud)
	s.True(errors.Is(err, errBroken))

	// The preference steps completed.
	s.Empty(ud.LastProcessTekTimestamp)
	_, ok, _ := state.NewStore(s.prefs).RawConfiguration(ctx)
	s.True(ok)

	// The exposure step left its source in place for the next run.
	s.NotNil(ud.ExposureSummary)
	s.Len(ud.ExposureInformation, 1)

	s.secure.broken = false
	s.NoError(s.migrator().MigrateFromUserData(ctx, ud))
	s.Nil(ud.ExposureSummary)
	events, _ := exposure.NewRecordStore(s.secure).Events(ctx)
	s.Len(events, 1)
}

func (s *UnitTestSuite) TestPreferenceFailureKeepsLegacyMap() {
	ctx := context.Background()
	s.prefs.broken = true
	ud := legacyUserData()

	err := s.migrator().MigrateFromUserData(ctx, ud)
	s.True(errors.Is(err, errBroken))
	s.Equal(map[string]int64{"JP": 1000}, ud.LastProcessTekTimestamp)
	s.Nil(ud.ExposureSummary)
}
