// Package debug provides ad-hoc diagnostics for encoding and stream
// decisions, enabled by setting UNIO_DEBUG in the environment.
package debug

import (
	"fmt"
	"os"
)

var enabled = os.Getenv("UNIO_DEBUG") != ""

// Logf writes one diagnostic line to the real process stderr when
// UNIO_DEBUG is set. It deliberately bypasses the stdio slots so that
// captured or wrapped stderr never receives diagnostics.
func Logf(msg string, args ...any) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "unio: "+msg+"\n", args...)
}
