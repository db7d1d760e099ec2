// Package vpnc drives the external vpnc IPSec client for VPNC Manager.
//
// This package implements the core session functionality:
//
//   - Config: the six connection parameters and their rendering into the
//     fixed, order-sensitive vpnc configuration file format
//   - Session: the connect/disconnect lifecycle around the external
//     vpnc and vpnc-disconnect binaries
//   - Profile management: named, persisted connection profiles
//
// # Session Flow
//
// A typical session:
//
//  1. Render the configuration file and stage it in a temporary directory
//  2. Move it into the vpnc configuration directory (/etc/vpnc on Linux,
//     /usr/local/etc/vpnc on macOS) owned by root with mode 0600
//  3. Invoke vpnc with the profile name and block until it exits
//  4. On teardown, invoke vpnc-disconnect and remove the placed file
//
// Placement runs through external mv/chown/chmod commands so that only
// those steps require elevated privileges. All invocations block, and a
// non-zero exit surfaces as *common.ProcessError.
//
// # Scoped Sessions
//
// Session.WithSession brackets a callback between Connect and a deferred
// Disconnect, guaranteeing teardown even when the callback fails:
//
//	s := vpnc.NewSession(cfg, vpnc.Options{})
//	err := s.WithSession(ctx, func(ctx context.Context) error {
//	    // do work on the VPN
//	    return nil
//	})
//
// # Concurrency
//
// A Session manages one tunnel at a time and guards its state with a
// mutex, but two sessions sharing the same paths and profile name race
// on the filesystem; concurrent sessions are unsupported.
package vpnc
