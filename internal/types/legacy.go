package types

import "time"

// UserData is the flat state older app versions persisted as a single document.
// LastProcessTekTimestamp was keyed by region without the per-field document split, and the
// exposure pair lived here instead of in secure storage.
type UserData struct {
	StartDateTime           time.Time            `json:"startDateTime"`
	IsOptined               bool                 `json:"isOptined"`
	IsPolicyAccepted        bool                 `json:"isPolicyAccepted"`
	LastProcessTekTimestamp map[string]int64     `json:"lastProcessTekTimestamp"`
	ExposureSummary         *UserExposureSummary `json:"exposureSummary"`
	ExposureInformation     []UserExposureInfo   `json:"exposureInformation"`
}

// LegacySnapshot is everything an older version left behind: the user data document and the
// application properties dictionary.
type LegacySnapshot struct {
	UserData   *UserData      `json:"userData"`
	Properties map[string]any `json:"properties"`
}

// HasExposure reports whether the exposure pair still needs to be moved.
func (u *UserData) HasExposure() bool {
	return u.ExposureSummary != nil || u.ExposureInformation != nil
}
