package types

// NotificationStatus is the state of the OS exposure notification capability.
type NotificationStatus int

const (
	StatusUnknown NotificationStatus = iota
	StatusActive
	StatusDisabled
	StatusBluetoothOff
	StatusRestricted
)

var StatusTextMap = map[NotificationStatus]string{
	StatusUnknown:      "unknown",
	StatusActive:       "active",
	StatusDisabled:     "disabled",
	StatusBluetoothOff: "bluetooth_off",
	StatusRestricted:   "restricted",
}

// StatusMessageMap carries the user facing message for each status.
var StatusMessageMap = map[NotificationStatus]string{
	StatusUnknown:      "Exposure notification status is unknown. Please restart the app.",
	StatusActive:       "Exposure notification is active.",
	StatusDisabled:     "Exposure notification is turned off. Please turn it on in settings.",
	StatusBluetoothOff: "Bluetooth is off. Please turn on Bluetooth to use exposure notification.",
	StatusRestricted:   "Exposure notification is restricted on this device.",
}

func (s NotificationStatus) String() string {
	if t, ok := StatusTextMap[s]; ok {
		return t
	}
	return StatusTextMap[StatusUnknown]
}
