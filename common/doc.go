// Package common provides shared constants, types, utilities, and errors
// used throughout the VPNC Manager application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: application-wide constants like file names and the
//     default vpnc command names
//   - Errors: sentinel errors for consistent error handling, plus
//     ProcessError for structured external-command failures
//   - Logger: leveled logging with optional rotated file output
//   - Utils: helpers for IDs, paths, and file checks
//
// # Usage
//
//	// Use logger
//	common.LogInfo("Connecting profile %s", name)
//
//	// Check errors
//	if errors.Is(err, common.ErrProfileNotFound) {
//	    // Handle missing profile
//	}
//
//	// Inspect process failures
//	var perr *common.ProcessError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.ExitCode, string(perr.Stderr))
//	}
package common
