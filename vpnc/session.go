// Package vpnc drives the external vpnc client.
// This file contains the Session type which renders the configuration
// file, places it in the vpnc configuration directory, and invokes the
// external connect and disconnect commands.
package vpnc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/vpncman/vpnc-manager/common"
)

// Status represents the current state of a VPN session.
type Status int

const (
	// StatusDisconnected indicates no active session.
	StatusDisconnected Status = iota
	// StatusConnecting indicates a session is being established.
	StatusConnecting
	// StatusConnected indicates an active, established session.
	StatusConnected
	// StatusDisconnecting indicates the session is being torn down.
	StatusDisconnecting
)

// String returns a human-readable representation of the session status.
func (s Status) String() string {
	switch s {
	case StatusDisconnected:
		return "Disconnected"
	case StatusConnecting:
		return "Connecting..."
	case StatusConnected:
		return "Connected"
	case StatusDisconnecting:
		return "Disconnecting..."
	default:
		return "Unknown"
	}
}

// Options parameterizes a Session: where the configuration file is
// staged and placed, and which external commands are invoked.
// Zero values are replaced with the platform defaults.
type Options struct {
	// ConfigDir is the privileged directory vpnc reads its profile from.
	ConfigDir string
	// TempDir is where the configuration file is staged before placement.
	TempDir string
	// FileName is the configuration file name in both locations.
	FileName string
	// Profile is the profile argument passed to the connect command.
	// vpnc resolves it to FileName inside ConfigDir, so the two must agree.
	Profile string
	// ConnectCommand is the binary that brings the tunnel up.
	ConnectCommand string
	// DisconnectCommand is the binary that tears the tunnel down.
	DisconnectCommand string
	// Runner executes the external commands.
	Runner Runner
}

// DefaultConfigDir returns the directory where vpnc expects its
// configuration on this platform.
func DefaultConfigDir() string {
	if runtime.GOOS == "darwin" {
		return "/usr/local/etc/vpnc"
	}
	return "/etc/vpnc"
}

// Session manages a single vpnc tunnel: render the configuration,
// place it with restricted permissions, connect, and later disconnect
// and clean up. A Session supports one tunnel at a time; concurrent
// sessions sharing the same paths and profile name are unsupported.
type Session struct {
	config Config
	opts   Options

	mu     sync.Mutex
	status Status
}

// NewSession creates a session for the given connection parameters,
// filling in defaults for any unset option.
func NewSession(config Config, opts Options) *Session {
	if opts.ConfigDir == "" {
		opts.ConfigDir = DefaultConfigDir()
	}
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}
	if opts.FileName == "" {
		opts.FileName = common.DefaultVpncFileName
	}
	if opts.Profile == "" {
		opts.Profile = common.DefaultVpncProfile
	}
	if opts.ConnectCommand == "" {
		opts.ConnectCommand = common.DefaultConnectCommand
	}
	if opts.DisconnectCommand == "" {
		opts.DisconnectCommand = common.DefaultDisconnectCommand
	}
	if opts.Runner == nil {
		opts.Runner = CommandRunner{}
	}

	return &Session{
		config: config,
		opts:   opts,
	}
}

// Status returns the current session status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// TempPath returns the staging path of the configuration file.
func (s *Session) TempPath() string {
	return filepath.Join(s.opts.TempDir, s.opts.FileName)
}

// ConfigPath returns the final, privileged path of the configuration file.
func (s *Session) ConfigPath() string {
	return filepath.Join(s.opts.ConfigDir, s.opts.FileName)
}

// Connect renders and places the configuration file, then invokes the
// connect command with the session's profile name. The call blocks until
// the command completes; exit status zero is the sole success criterion.
// After a failure the session returns to Disconnected and the caller may
// retry.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusDisconnected {
		return common.ErrAlreadyConnected
	}
	s.status = StatusConnecting

	common.LogInfo("Connecting profile %s via %s", s.opts.Profile, s.opts.ConnectCommand)

	if err := s.writeConfig(); err != nil {
		s.status = StatusDisconnected
		return err
	}

	if err := s.placeConfig(ctx); err != nil {
		s.status = StatusDisconnected
		return err
	}

	if err := s.opts.Runner.Run(ctx, s.opts.ConnectCommand, s.opts.Profile); err != nil {
		common.LogError("Connect failed: %v", err)
		s.status = StatusDisconnected
		return err
	}

	s.status = StatusConnected
	common.LogInfo("Tunnel established for profile %s", s.opts.Profile)
	return nil
}

// Disconnect invokes the disconnect command, then removes the placed
// configuration file. A removal failure does not leave the session
// marked connected: the tunnel is already down, so the error wraps
// common.ErrCleanup and the status becomes Disconnected.
func (s *Session) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusConnected {
		return common.ErrNotConnected
	}
	s.status = StatusDisconnecting

	common.LogInfo("Disconnecting profile %s", s.opts.Profile)

	if err := s.opts.Runner.Run(ctx, s.opts.DisconnectCommand); err != nil {
		common.LogError("Disconnect failed: %v", err)
		s.status = StatusConnected
		return err
	}

	err := s.opts.Runner.Run(ctx, "rm", s.ConfigPath())
	s.status = StatusDisconnected
	if err != nil {
		common.LogWarn("Configuration cleanup failed: %v", err)
		return fmt.Errorf("%w: %w", common.ErrCleanup, err)
	}

	common.LogInfo("Tunnel closed for profile %s", s.opts.Profile)
	return nil
}

// Attach adopts an already-established session from its filesystem
// evidence: if the placed configuration file exists, the session is
// marked Connected so it can be torn down from a fresh process.
// Returns true if a session was adopted.
func (s *Session) Attach() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusDisconnected {
		return s.status == StatusConnected
	}
	if common.FileExists(s.ConfigPath()) {
		s.status = StatusConnected
		return true
	}
	return false
}

// WithSession connects, runs fn, and disconnects. The disconnect is
// guaranteed via defer, so it runs even when fn returns an error or
// panics; a teardown failure is joined onto fn's error.
func (s *Session) WithSession(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if err = s.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if derr := s.Disconnect(ctx); derr != nil {
			err = errors.Join(err, derr)
		}
	}()
	return fn(ctx)
}

// writeConfig renders the configuration and stages it at the temp path
// with owner-only permissions.
func (s *Session) writeConfig() error {
	data, err := s.config.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.TempPath(), data, 0600); err != nil {
		return fmt.Errorf("%w: %w", common.ErrConfigWrite, err)
	}
	return nil
}

// placeConfig moves the staged file into the configuration directory
// and restricts it to the superuser. The steps run through external
// commands so that only they need elevated privileges.
func (s *Session) placeConfig(ctx context.Context) error {
	r := s.opts.Runner
	if err := r.Run(ctx, "mv", s.TempPath(), s.opts.ConfigDir); err != nil {
		return err
	}
	if err := r.Run(ctx, "chown", "root:root", s.ConfigPath()); err != nil {
		return err
	}
	return r.Run(ctx, "chmod", "600", s.ConfigPath())
}
