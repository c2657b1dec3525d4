package types

// Preference keys. Every regional key holds one JSON object mapping region -> value.
const (
	KeyLastProcessTekTimestamp   = "last-processed-timestamp"
	KeyETag                      = "etag"
	KeyLastProcessTekTimestampBg = "last-processed-timestamp-background"
	KeyLastProcessTekListCount   = "last-processed-tek-count"
	KeyLastDownloadCount         = "last-download-count"
	KeyLastDownloadDateTime      = "last-download-datetime"

	KeyExposureConfiguration = "exposure-notification-configuration"

	// Secure storage keys.
	KeyExposureSummary = "exposure-summary"
	KeyExposureEvents  = "exposure-events"

	// LegacyConfigurationPropertyKey is the application property older versions kept the
	// exposure configuration under. The spelling is what those versions wrote.
	LegacyConfigurationPropertyKey = "ExposureNotificationConfigration"
)

// RegionalKeys lists the documents cleared when exposure detection bookkeeping is reset.
var RegionalKeys = []string{
	KeyLastProcessTekTimestamp,
	KeyETag,
	KeyLastProcessTekTimestampBg,
	KeyLastProcessTekListCount,
	KeyLastDownloadCount,
	KeyLastDownloadDateTime,
}
