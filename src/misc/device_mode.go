package misc

// DeviceMode names the accelerator whose trace is being translated. The stage
// table and instruction set are fixed per device.
type DeviceMode string

const (
	// DeviceModeGemmini is the systolic-array accelerator with the
	// config/mvin/mvout/compute/preload/flush command set.
	DeviceModeGemmini DeviceMode = "gemmini"
)

// DefaultDeviceMode returns the mode used when no explicit selection is made.
func DefaultDeviceMode() DeviceMode {
	return DeviceModeGemmini
}

// DeviceModeFromString converts an arbitrary string into a DeviceMode. When
// the provided value is unknown the bool return will be false.
func DeviceModeFromString(value string) (DeviceMode, bool) {
	switch value {
	case string(DeviceModeGemmini):
		return DeviceModeGemmini, true
	default:
		return "", false
	}
}
