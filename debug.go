package dragbubble

import (
	"fmt"
	"io"
	"os"
)

// debugEnabled gates all debug output. The package is single-threaded, like
// the bubbles it drives, so a plain bool is enough.
var (
	debugEnabled bool
	debugOut     io.Writer = os.Stderr
)

// SetDebugMode enables or disables debug logging. When enabled, state
// transitions, listener notifications and tween start/cancel/complete are
// printed with a "[dragbubble]" prefix.
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

// SetDebugOutput redirects debug logging. A nil writer restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOut = w
}

// debugf prints one debug line when debug mode is on.
func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[dragbubble] "+format+"\n", args...)
}

// warnf prints regardless of debug mode. Used for failures that have no
// caller to return an error to.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[dragbubble] "+format+"\n", args...)
}
