package misc

import "sync"

var (
	runtimeDeviceMode     = DefaultDeviceMode()
	runtimeVerboseLevel   = 0
	runtimeDeviceModeLock sync.RWMutex
)

// SetRuntimeDeviceMode updates the global runtime device mode.
func SetRuntimeDeviceMode(mode DeviceMode) {
	runtimeDeviceModeLock.Lock()
	defer runtimeDeviceModeLock.Unlock()

	runtimeDeviceMode = mode
}

// RuntimeDeviceMode returns the currently configured device mode.
func RuntimeDeviceMode() DeviceMode {
	runtimeDeviceModeLock.RLock()
	defer runtimeDeviceModeLock.RUnlock()

	return runtimeDeviceMode
}

func SetRuntimeVerboseLevel(level int) {
	runtimeDeviceModeLock.Lock()
	defer runtimeDeviceModeLock.Unlock()

	runtimeVerboseLevel = level
}

func RuntimeVerboseLevel() int {
	runtimeDeviceModeLock.RLock()
	defer runtimeDeviceModeLock.RUnlock()

	return runtimeVerboseLevel
}

// ConfigureRuntime copies the parsed options that other packages consult at
// run time into the global state.
func ConfigureRuntime(parser *CommandLineParser) {
	if parser == nil {
		return
	}

	if mode, ok := DeviceModeFromString(parser.StringParameter("device")); ok {
		SetRuntimeDeviceMode(mode)
	}

	SetRuntimeVerboseLevel(int(parser.IntParameter("verbose")))
}
