package cli

import (
	"context"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/vpncman/vpnc-manager/common"
	"github.com/vpncman/vpnc-manager/vpnc"
)

func newRunCmd() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Run a command inside a scoped VPN session",
		Long: `Run connects the VPN, executes the given command and disconnects when
the command finishes, whether it succeeds or fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			profile, err := app.findProfile(profileName)
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

			common.LogInfo("Running %v inside a session to %s", args, profile.Name)
			return app.runScoped(cmd.Context(), session, profile.ID, args)
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile to connect with")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// runScoped executes argv inside the session with inherited stdio. The
// profile's usage timestamp is recorded only once the tunnel is up, so a
// failed connect leaves it untouched.
func (a *App) runScoped(ctx context.Context, session *vpnc.Session, profileID string, argv []string) error {
	return session.WithSession(ctx, func(ctx context.Context) error {
		if err := a.profiles.MarkUsed(profileID); err != nil {
			common.LogWarn("Could not update profile usage: %v", err)
		}

		child := exec.CommandContext(ctx, argv[0], argv[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		return child.Run()
	})
}
