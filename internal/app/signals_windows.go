//go:build windows

package app

import "os"

// Windows has no job-control stop, so nothing needs a redraw.
func resumeSignals() []os.Signal {
	return nil
}
