package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vpncman/vpnc-manager/common"
	"github.com/vpncman/vpnc-manager/vpnc"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of the VPN connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			session := app.bareSession()
			attached := session.Attach()
			running := processRunning(cmd, app.cfg.VpncPath)

			switch {
			case attached && running:
				fmt.Printf("Connected (configuration at %s)\n", session.ConfigPath())
			case attached:
				fmt.Printf("Stale session: configuration present at %s but %s is not running\n",
					session.ConfigPath(), filepath.Base(app.cfg.VpncPath))
				fmt.Println("Run \"vpnc-manager disconnect\" to clean up.")
			case running:
				fmt.Printf("%s is running but was not started by this manager\n",
					filepath.Base(app.cfg.VpncPath))
			default:
				fmt.Println("Disconnected")
			}
			return nil
		},
	}
}

// processRunning reports whether the VPN client process is alive. pgrep
// exits non-zero when no process matches.
func processRunning(cmd *cobra.Command, vpncPath string) bool {
	runner := &vpnc.CommandRunner{}
	if err := runner.Run(cmd.Context(), "pgrep", "-x", filepath.Base(vpncPath)); err != nil {
		common.LogDebug("pgrep: %v", err)
		return false
	}
	return true
}
