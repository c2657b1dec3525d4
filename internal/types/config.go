package types

import (
	"fmt"
	"strings"
	"time"
)

// Settings is the process-wide application configuration. It is loaded once and passed to the
// components that need it.
// SupportedRegions are the region identifiers the bookkeeping is partitioned by; the first one is
// the primary region shown on debug screens.
// DaysOfExposureInformationToDisplay is the (negative) day offset from now before which exposure
// events are hidden. DaysToSendTek is the (negative) day offset from the diagnosis date before which
// temporary exposure keys are not uploaded.
type Settings struct {
	AppVersion               string   `json:"app_version" yaml:"app_version"`
	SupportedRegions         []string `json:"supported_regions" yaml:"supported_regions"`
	CdnURLBase               string   `json:"cdn_url_base" yaml:"cdn_url_base"`
	APIURLBase               string   `json:"api_url_base" yaml:"api_url_base"`
	BlobStorageContainerName string   `json:"blob_storage_container_name" yaml:"blob_storage_container_name"`

	DaysOfExposureInformationToDisplay int `json:"days_of_exposure_information_to_display" yaml:"days_of_exposure_information_to_display"`
	DaysToSendTek                      int `json:"days_to_send_tek" yaml:"days_to_send_tek"`

	// ConfigurationRefreshSeconds is the minimal interval between two configuration downloads; 0 means no limit.
	ConfigurationRefreshSeconds int `json:"configuration_refresh_seconds" yaml:"configuration_refresh_seconds"`
	// DisplayUTCOffsetHours is the offset used to render timestamps on debug screens.
	DisplayUTCOffsetHours int `json:"display_utc_offset_hours" yaml:"display_utc_offset_hours"`
}

const (
	DefaultDaysOfExposureInformationToDisplay = -14
	DefaultDaysToSendTek                      = -14
	DefaultDisplayUTCOffsetHours              = 9

	configurationFileName = "Configration.json"
)

func DefaultSettings() Settings {
	return Settings{
		SupportedRegions:                   []string{"440"},
		DaysOfExposureInformationToDisplay: DefaultDaysOfExposureInformationToDisplay,
		DaysToSendTek:                      DefaultDaysToSendTek,
		DisplayUTCOffsetHours:              DefaultDisplayUTCOffsetHours,
	}
}

func (s Settings) Validate() error {
	if len(s.SupportedRegions) == 0 {
		return Err(ErrInvalidSettings, nil, "supported_regions is required")
	}
	for i, r := range s.SupportedRegions {
		if r == "" {
			return Err(ErrInvalidSettings, nil, "supported_regions[%d] must not be empty", i)
		}
	}
	if s.DaysOfExposureInformationToDisplay > 0 {
		return Err(ErrInvalidSettings, nil, "days_of_exposure_information_to_display must be zero or negative")
	}
	if s.DaysToSendTek > 0 {
		return Err(ErrInvalidSettings, nil, "days_to_send_tek must be zero or negative")
	}
	if s.ConfigurationRefreshSeconds < 0 {
		return Err(ErrInvalidSettings, nil, "configuration_refresh_seconds must be non-negative. 0 for non limit")
	}
	if s.DisplayUTCOffsetHours < -12 || s.DisplayUTCOffsetHours > 14 {
		return Err(ErrInvalidSettings, nil, "display_utc_offset_hours must be within [-12, 14]")
	}
	return nil
}

// PrimaryRegion is the first supported region.
func (s Settings) PrimaryRegion() string {
	if len(s.SupportedRegions) == 0 {
		return ""
	}
	return s.SupportedRegions[0]
}

// ConfigurationURL is where the exposure configuration document is published.
func (s Settings) ConfigurationURL() string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.CdnURLBase, "/"), s.BlobStorageContainerName, configurationFileName)
}

func (s Settings) ConfigurationRefresh() time.Duration {
	return time.Duration(s.ConfigurationRefreshSeconds) * time.Second
}

func (s Settings) DisplayLocation() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", s.DisplayUTCOffsetHours), s.DisplayUTCOffsetHours*3600)
}

// Configuration is the exposure risk scoring configuration downloaded from the CDN and handed to
// the OS exposure matching capability.
type Configuration struct {
	MinimumRiskScore                int   `json:"minimumRiskScore"`
	AttenuationScores               []int `json:"attenuationScores"`
	AttenuationWeight               int   `json:"attenuationWeight"`
	DaysSinceLastExposureScores     []int `json:"daysSinceLastExposureScores"`
	DaysSinceLastExposureWeight     int   `json:"daysSinceLastExposureWeight"`
	DurationScores                  []int `json:"durationScores"`
	DurationWeight                  int   `json:"durationWeight"`
	TransmissionRiskScores          []int `json:"transmissionRiskScores"`
	TransmissionRiskWeight          int   `json:"transmissionRiskWeight"`
	DurationAtAttenuationThresholds []int `json:"durationAtAttenuationThresholds"`
}

const (
	riskScoreLevels = 8
	maxRiskScore    = 8
	maxRiskWeight   = 100
)

func (c Configuration) Validate() error {
	if c.MinimumRiskScore < 0 || c.MinimumRiskScore > 4096 {
		return Err(ErrInvalidConfiguration, nil, "minimumRiskScore must be within [0, 4096]")
	}
	scores := map[string][]int{
		"attenuationScores":           c.AttenuationScores,
		"daysSinceLastExposureScores": c.DaysSinceLastExposureScores,
		"durationScores":              c.DurationScores,
		"transmissionRiskScores":      c.TransmissionRiskScores,
	}
	for name, s := range scores {
		if s == nil {
			continue
		}
		if len(s) != riskScoreLevels {
			return Err(ErrInvalidConfiguration, nil, "%s must have %d entries", name, riskScoreLevels)
		}
		for _, v := range s {
			if v < 0 || v > maxRiskScore {
				return Err(ErrInvalidConfiguration, nil, "%s entries must be within [0, %d]", name, maxRiskScore)
			}
		}
	}
	weights := map[string]int{
		"attenuationWeight":           c.AttenuationWeight,
		"daysSinceLastExposureWeight": c.DaysSinceLastExposureWeight,
		"durationWeight":              c.DurationWeight,
		"transmissionRiskWeight":      c.TransmissionRiskWeight,
	}
	for name, w := range weights {
		if w < 0 || w > maxRiskWeight {
			return Err(ErrInvalidConfiguration, nil, "%s must be within [0, %d]", name, maxRiskWeight)
		}
	}
	if n := len(c.DurationAtAttenuationThresholds); n != 0 && n != 2 {
		return Err(ErrInvalidConfiguration, nil, "durationAtAttenuationThresholds must have 2 entries")
	}
	return nil
}
