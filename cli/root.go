package cli

import (
	"github.com/spf13/cobra"
)

// Build metadata, set from main via SetVersion.
var (
	version   = "dev"
	buildTime = "unknown"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vpnc-manager",
		Short:         "Manage vpnc IPSec sessions from named profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newVersionCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newListCmd(),
		newShowCmd(),
		newConnectCmd(),
		newDisconnectCmd(),
		newStatusCmd(),
		newRunCmd(),
	)

	return root
}

// SetVersion sets the build metadata (called from main).
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}
