package misc

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	logOutput     io.Writer = os.Stdout
	logOutputLock sync.Mutex
)

// SetLogOutput redirects Logf. It returns the previous writer.
func SetLogOutput(writer io.Writer) io.Writer {
	logOutputLock.Lock()
	defer logOutputLock.Unlock()

	previous := logOutput
	logOutput = writer
	return previous
}

// Logf prints a [trace] prefixed message when the runtime verbose level is at
// least level.
// level 0: summary only
// level 1: level 0 + per-pass progress
// level 2: level 1 + every rejected line and decode failure
func Logf(level int, format string, args ...interface{}) {
	if RuntimeVerboseLevel() < level {
		return
	}

	logOutputLock.Lock()
	defer logOutputLock.Unlock()

	fmt.Fprintf(logOutput, "[trace] "+format+"\n", args...)
}
