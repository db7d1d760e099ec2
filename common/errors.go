// Package common provides shared constants, types, and utilities
// used across the VPNC Manager application.
package common

import "errors"

// Sentinel errors for session and profile operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Session errors.
	ErrAlreadyConnected = errors.New("session already active")
	ErrNotConnected     = errors.New("no active session")
	ErrConfigWrite      = errors.New("failed to write vpnc configuration")
	ErrCleanup          = errors.New("failed to remove vpnc configuration")
	ErrMissingField     = errors.New("missing configuration field")

	// Profile errors.
	ErrProfileNotFound = errors.New("profile not found")
	ErrDuplicateName   = errors.New("profile name already exists")
	ErrInvalidProfile  = errors.New("invalid profile data")

	// Credential errors.
	ErrCredentialsNotFound = errors.New("credentials not found")
	ErrCredentialStorage   = errors.New("failed to store credentials")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
