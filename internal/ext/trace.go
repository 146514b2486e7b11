package ext

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Diagnostic tracing for the extension. Disabled by default; when enabled,
// Forward and Backward print one line per call to the configured stream.

var (
	traceEnabled atomic.Bool

	traceMu sync.Mutex
	traceW  io.Writer = os.Stdout
)

// EnableTrace turns on per-call diagnostic output.
func EnableTrace() {
	traceEnabled.Store(true)
}

// DisableTrace turns off per-call diagnostic output.
func DisableTrace() {
	traceEnabled.Store(false)
}

// SetTraceWriter redirects diagnostic output to w. Passing nil restores the
// default stream (stdout).
func SetTraceWriter(w io.Writer) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	traceW = w
}

func tracef(format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	traceMu.Lock()
	defer traceMu.Unlock()
	fmt.Fprintf(traceW, "addext: "+format, args...)
}
