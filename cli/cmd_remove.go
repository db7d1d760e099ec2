package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vpncman/vpnc-manager/common"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a connection profile and its stored credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			profile, err := app.findProfile(args[0])
			if err != nil {
				return err
			}

			if err := app.profiles.Remove(profile.ID); err != nil {
				return err
			}
			if err := app.creds.Delete(profile.ID); err != nil {
				common.LogWarn("Could not remove stored credentials: %v", err)
			}

			fmt.Printf("Profile %q removed\n", profile.Name)
			return nil
		},
	}
}
