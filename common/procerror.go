// Package common provides shared constants, types, and utilities
// used across the VPNC Manager application.
package common

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// ProcessError reports the failure of an external command.
// A negative ExitCode means the process was terminated by a signal
// (the signal number negated); a positive one is a normal non-zero exit.
type ProcessError struct {
	// Cmd is the full argument list that was invoked.
	Cmd []string
	// ExitCode is the exit status, or the negated signal number.
	ExitCode int
	// Stdout holds the captured standard output.
	Stdout []byte
	// Stderr holds the captured standard error.
	Stderr []byte
}

// Error formats the failure, resolving signal names where known.
func (e *ProcessError) Error() string {
	cmd := strings.Join(e.Cmd, " ")
	if e.ExitCode < 0 {
		sig := -e.ExitCode
		if name := unix.SignalName(unix.Signal(sig)); name != "" {
			return fmt.Sprintf("command %q died with signal %s", cmd, name)
		}
		return fmt.Sprintf("command %q died with unknown signal %d", cmd, sig)
	}
	return fmt.Sprintf("command %q returned non-zero exit status %d", cmd, e.ExitCode)
}

// Signaled reports whether the process died from a signal rather than
// exiting on its own.
func (e *ProcessError) Signaled() bool {
	return e.ExitCode < 0
}
