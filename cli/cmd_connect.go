package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vpncman/vpnc-manager/common"
	"github.com/vpncman/vpnc-manager/notify"
)

func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect [name]",
		Short: "Connect to a VPN using a profile",
		Long: `Connect renders the vpnc configuration for the given profile, places it
in the vpnc configuration directory and starts the tunnel. Requires root
privileges because the configuration file is owned by root.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			profile, err := app.findProfile(name)
			if err != nil {
				return err
			}

			if app.sessionActive() {
				return common.ErrAlreadyConnected
			}

			session, err := app.sessionFor(profile)
			if err != nil {
				return err
			}

			common.LogInfo("Connecting to %s (%s)", profile.Name, profile.Gateway)
			if err := session.Connect(cmd.Context()); err != nil {
				if app.cfg.ShowNotifications {
					notify.Error(profile.Name, "Connection failed")
				}
				return err
			}

			if err := app.profiles.MarkUsed(profile.ID); err != nil {
				common.LogWarn("Could not update profile usage: %v", err)
			}
			if app.cfg.ShowNotifications {
				notify.Connected(profile.Name)
			}
			fmt.Printf("Connected to %s\n", profile.Name)
			return nil
		},
	}
}
