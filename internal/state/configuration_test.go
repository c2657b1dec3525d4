package state

import (
	"cocoa/internal/types"
	"context"
)

func (s *UnitTestSuite) TestConfigurationAbsent() {
	ctx := context.Background()
	cfg, err := s.store.Configuration(ctx)
	s.NoError(err)
	s.Nil(cfg)

	_, ok, err := s.store.RawConfiguration(ctx)
	s.NoError(err)
	s.False(ok)
}

func (s *UnitTestSuite) TestConfigurationRoundTrip() {
	ctx := context.Background()
	s.NoError(s.store.SetConfiguration(ctx, `{"minimumRiskScore":21,"attenuationWeight":50}`))

	cfg, err := s.store.Configuration(ctx)
	s.NoError(err)
	s.Require().NotNil(cfg)
	s.Equal(21, cfg.MinimumRiskScore)
	s.Equal(50, cfg.AttenuationWeight)

	s.NoError(s.store.RemoveConfiguration(ctx))
	cfg, err = s.store.Configuration(ctx)
	s.NoError(err)
	s.Nil(cfg)
}

func (s *UnitTestSuite) TestConfigurationMalformed() {
	ctx := context.Background()
	s.NoError(s.prefs.SetString(ctx, types.KeyExposureConfiguration, "<html>"))

	cfg, err := s.store.Configuration(ctx)
	s.NoError(err)
	s.Nil(cfg)

	raw, ok, err := s.store.RawConfiguration(ctx)
	s.NoError(err)
	s.True(ok)
	s.Equal("<html>", raw)
}
