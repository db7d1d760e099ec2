// Package vpnc drives the external vpnc client.
// This file contains the Runner abstraction used to invoke the external
// commands (vpnc, vpnc-disconnect, mv, chown, chmod, rm).
package vpnc

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"syscall"

	"github.com/vpncman/vpnc-manager/common"
)

// Runner executes an external command, blocking until it completes.
// A non-zero exit is reported as a *common.ProcessError carrying the
// argument list and the captured output streams.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// CommandRunner is the default Runner backed by os/exec.
type CommandRunner struct{}

// Run invokes the command and maps failures to *common.ProcessError.
// A signal-terminated process is reported with the negated signal number.
func (CommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			code = -int(ws.Signal())
		}
		return &common.ProcessError{
			Cmd:      append([]string{name}, args...),
			ExitCode: code,
			Stdout:   stdout.Bytes(),
			Stderr:   stderr.Bytes(),
		}
	}

	return common.WrapError(err, "exec "+name)
}

// Installed reports whether a command is available in PATH.
func Installed(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
