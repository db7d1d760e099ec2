package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vpncman/vpnc-manager/common"
	"github.com/vpncman/vpnc-manager/vpnc"
)

func newAddCmd() *cobra.Command {
	var (
		gateway  string
		ipsecID  string
		authmode string
		username string
		noSave   bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a connection profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			profile := &vpnc.Profile{
				Name:        args[0],
				Gateway:     gateway,
				IPSecID:     ipsecID,
				Authmode:    authmode,
				Username:    username,
				SaveSecrets: !noSave,
			}

			if err := app.profiles.Add(profile); err != nil {
				return err
			}

			if profile.SaveSecrets {
				secret, err := promptSecret("IPSec secret")
				if err != nil {
					return err
				}
				password, err := promptSecret("Xauth password")
				if err != nil {
					return err
				}
				if err := app.creds.SetSecret(profile.ID, secret); err != nil {
					return common.WrapError(err, "failed to store IPSec secret")
				}
				if err := app.creds.SetPassword(profile.ID, password); err != nil {
					return common.WrapError(err, "failed to store Xauth password")
				}
			}

			fmt.Printf("Profile %q added (%s)\n", profile.Name, shortID(profile.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&gateway, "gateway", "", "IPSec gateway address (required)")
	cmd.Flags().StringVar(&ipsecID, "id", "", "IPSec group ID (required)")
	cmd.Flags().StringVar(&authmode, "authmode", common.AuthmodePSK, "IKE authentication mode")
	cmd.Flags().StringVar(&username, "username", "", "Xauth username")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store secrets; prompt on every connect")
	cmd.MarkFlagRequired("gateway")
	cmd.MarkFlagRequired("id")

	return cmd
}
