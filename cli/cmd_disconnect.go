package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vpncman/vpnc-manager/common"
	"github.com/vpncman/vpnc-manager/notify"
)

func newDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Tear down the active VPN connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			session := app.bareSession()
			if !session.Attach() {
				return common.ErrNotConnected
			}

			common.LogInfo("Disconnecting VPN")
			if err := session.Disconnect(cmd.Context()); err != nil {
				return err
			}

			if app.cfg.ShowNotifications {
				notify.Disconnected(app.activeProfileName())
			}
			fmt.Println("Disconnected")
			return nil
		},
	}
}
