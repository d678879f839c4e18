package geom

import (
	"fmt"
	"io"
	"os"
)

// Debug turns failed invariant checks (see debugAssert) into panics and
// enables debugLog output; no geom code currently calls debugLog, so it
// produces no traces. It is false by default; tests and the CLI may flip it on.
var Debug = false

// DebugOutput is where debug traces are written when Debug is true.
var DebugOutput io.Writer = os.Stderr

func debugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Fprintf(DebugOutput, "[geom] "+format+"\n", args...)
}

// debugAssert panics when Debug is set and cond is false, logging the
// invariant violation otherwise. Release builds (Debug == false) only log:
// callers are still expected to filter degenerate output downstream (by
// area threshold, emptiness, etc.) rather than rely on the assertion firing.
func debugAssert(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if Debug {
		panic("geom: invariant violation: " + msg)
	}
	fmt.Fprintf(DebugOutput, "[geom] invariant violation: %s\n", msg)
}
