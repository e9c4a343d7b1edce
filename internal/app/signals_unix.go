//go:build !windows

package app

import (
	"os"
	"syscall"
)

// resumeSignals are delivered when the shell brings the browser back to the
// foreground after a job-control stop; the screen must be redrawn.
func resumeSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}
