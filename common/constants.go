// Package common provides shared constants, types, and utilities
// used across the VPNC Manager application.
package common

// Application metadata.
const (
	// AppName is the display name of the application.
	AppName = "VPNC Manager"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "vpnc-manager"
)

// File names used by the application.
const (
	ProfilesFileName    = "profiles.yaml"
	ConfigFileName      = "config.yaml"
	CredentialsFileName = ".credentials"
	LogFileName         = "vpnc-manager.log"
)

// Defaults for driving the external vpnc client.
const (
	// DefaultVpncFileName is the name of the generated vpnc configuration file.
	DefaultVpncFileName = "tempvpnc.conf"
	// DefaultVpncProfile is the profile argument passed to the connect binary.
	// vpnc resolves it to DefaultVpncFileName inside its configuration directory.
	DefaultVpncProfile = "tempvpnc"
	// DefaultConnectCommand is the external binary that brings the tunnel up.
	DefaultConnectCommand = "vpnc"
	// DefaultDisconnectCommand is the external binary that tears the tunnel down.
	DefaultDisconnectCommand = "vpnc-disconnect"
)

// Authentication modes understood by vpnc.
const (
	AuthmodePSK    = "psk"
	AuthmodeHybrid = "hybrid"
)
