package types

import (
	"errors"
	"time"
)

func (s *UnitTestSuite) TestDefaultSettingsValid() {
	st := DefaultSettings()
	s.NoError(st.Validate())
	s.Equal("440", st.PrimaryRegion())
	s.Equal(-14, st.DaysToSendTek)
}

func (s *UnitTestSuite) TestSettingsValidate() {
	st := DefaultSettings()
	st.SupportedRegions = nil
	s.True(errors.Is(st.Validate(), ErrInvalidSettings))

	st = DefaultSettings()
	st.SupportedRegions = []string{"440", ""}
	s.Error(st.Validate())

	st = DefaultSettings()
	st.DaysToSendTek = 3
	s.Error(st.Validate())

	st = DefaultSettings()
	st.DaysOfExposureInformationToDisplay = 1
	s.Error(st.Validate())

	st = DefaultSettings()
	st.DisplayUTCOffsetHours = 20
	s.Error(st.Validate())
}

func (s *UnitTestSuite) TestConfigurationURL() {
	st := DefaultSettings()
	st.CdnURLBase = "https://cdn.example.com/"
	st.BlobStorageContainerName = "c19r"
	s.Equal("https://cdn.example.com/c19r/Configration.json", st.ConfigurationURL())
}

func (s *UnitTestSuite) TestDisplayLocation() {
	st := DefaultSettings()
	name, off := time.Now().In(st.DisplayLocation()).Zone()
	s.Equal("UTC+9", name)
	s.Equal(9*3600, off)
}

func (s *UnitTestSuite) TestConfigurationValidate() {
	c := Configuration{
		MinimumRiskScore:  21,
		AttenuationScores: []int{1, 2, 3, 4, 5, 6, 7, 8},
		AttenuationWeight: 50,
	}
	s.NoError(c.Validate())

	c.AttenuationScores = []int{1, 2}
	s.True(errors.Is(c.Validate(), ErrInvalidConfiguration))

	c.AttenuationScores = nil
	c.DurationWeight = 101
	s.Error(c.Validate())

	c.DurationWeight = 10
	c.DurationAtAttenuationThresholds = []int{50}
	s.Error(c.Validate())
}

func (s *UnitTestSuite) TestStatusString() {
	s.Equal("active", StatusActive.String())
	s.Equal("unknown", NotificationStatus(42).String())
}
