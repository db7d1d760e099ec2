package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the details of a connection profile",
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

			fmt.Printf("Name:        %s\n", profile.Name)
			fmt.Printf("ID:          %s\n", profile.ID)
			fmt.Printf("Gateway:     %s\n", profile.Gateway)
			fmt.Printf("IPSec ID:    %s\n", profile.IPSecID)
			fmt.Printf("Authmode:    %s\n", profile.Authmode)
			fmt.Printf("Username:    %s\n", profile.Username)
			fmt.Printf("Save creds:  %t\n", profile.SaveSecrets)
			fmt.Printf("Created:     %s\n", profile.Created.Format("2006-01-02 15:04"))
			if !profile.LastUsed.IsZero() {
				fmt.Printf("Last used:   %s\n", profile.LastUsed.Format("2006-01-02 15:04"))
			}
			if profile.SaveSecrets {
				fmt.Printf("Credentials: %s\n", credentialState(app, profile.ID))
			}
			return nil
		},
	}
}

func credentialState(app *App, profileID string) string {
	if app.creds.Exists(profileID) {
		return "stored in keyring"
	}
	return "not stored"
}
