package stl

import (
	"fmt"
	"io"
	"os"
)

// Debug enables verbose tracing of facet decoding and slicing.
var Debug = false

// DebugOutput is where debug traces are written when Debug is true.
var DebugOutput io.Writer = os.Stderr

func debugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Fprintf(DebugOutput, "[stl] "+format+"\n", args...)
}
