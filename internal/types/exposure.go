package types

import "time"

// UserExposureSummary is the aggregate risk data the OS matching capability reports after a
// detection pass.
type UserExposureSummary struct {
	DaysSinceLastExposure int   `json:"daysSinceLastExposure"`
	MatchedKeyCount       int64 `json:"matchedKeyCount"`
	HighestRiskScore      int   `json:"highestRiskScore"`
	// AttenuationDurationsMinutes are the minutes spent in each attenuation bucket.
	AttenuationDurationsMinutes []int `json:"attenuationDurations"`
	SummationRiskScore          int   `json:"summationRiskScore"`
}

// UserExposureInfo is a single exposure event.
type UserExposureInfo struct {
	Timestamp             time.Time     `json:"timestamp"`
	Duration              time.Duration `json:"duration"`
	AttenuationValue      int           `json:"attenuationValue"`
	TotalRiskScore        int           `json:"totalRiskScore"`
	TransmissionRiskLevel int           `json:"transmissionRiskLevel"`
}

// TemporaryExposureKey is the key material uploaded after a positive diagnosis.
type TemporaryExposureKey struct {
	KeyData               []byte        `json:"keyData"`
	RollingStart          time.Time     `json:"rollingStart"`
	RollingDuration       time.Duration `json:"rollingDuration"`
	TransmissionRiskLevel int           `json:"transmissionRiskLevel"`
}
