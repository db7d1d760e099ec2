// Package cli provides the command-line interface for VPNC Manager.
package cli

import (
	"fmt"
	"strings"

	"github.com/vpncman/vpnc-manager/common"
	"github.com/vpncman/vpnc-manager/config"
	"github.com/vpncman/vpnc-manager/keyring"
	"github.com/vpncman/vpnc-manager/vpnc"
)

// App bundles the pieces every command needs: application settings,
// the profile store, and the credential store.
type App struct {
	cfg      *config.Config
	profiles *vpnc.ProfileManager
	creds    *keyring.Store
}

func newApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	profiles, err := vpnc.NewProfileManager()
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:      cfg,
		profiles: profiles,
		creds:    keyring.New(),
	}, nil
}

// findProfile finds a profile by name or ID prefix (case-insensitive).
// With an empty argument the configured default profile is used.
func (a *App) findProfile(nameOrID string) (*vpnc.Profile, error) {
	nameOrID = strings.ToLower(strings.TrimSpace(nameOrID))
	if nameOrID == "" {
		nameOrID = strings.ToLower(a.cfg.DefaultProfile)
	}
	if nameOrID == "" {
		return nil, fmt.Errorf("no profile named and no default profile configured")
	}

	for _, profile := range a.profiles.List() {
		if strings.ToLower(profile.Name) == nameOrID ||
			strings.ToLower(profile.ID) == nameOrID ||
			strings.HasPrefix(strings.ToLower(profile.ID), nameOrID) {
			return profile, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", common.ErrProfileNotFound, nameOrID)
}

// sessionFor builds a connectable session for a profile, collecting the
// secrets from the credential store or by prompting.
func (a *App) sessionFor(profile *vpnc.Profile) (*vpnc.Session, error) {
	secret, password, err := a.credentials(profile)
	if err != nil {
		return nil, err
	}

	username := profile.Username
	if username == "" {
		if username, err = promptLine("Xauth username"); err != nil {
			return nil, err
		}
	}

	cfg := vpnc.Config{
		Gateway:  profile.Gateway,
		ID:       profile.IPSecID,
		Secret:   secret,
		Authmode: profile.Authmode,
		Username: username,
		Password: password,
	}

	return vpnc.NewSession(cfg, a.sessionOptions()), nil
}

// bareSession builds a session carrying only paths and binaries.
// It cannot connect, but it can attach to and tear down an existing
// session, and it reports the paths for status output.
func (a *App) bareSession() *vpnc.Session {
	return vpnc.NewSession(vpnc.Config{}, a.sessionOptions())
}

func (a *App) sessionOptions() vpnc.Options {
	return vpnc.Options{
		ConfigDir:         a.cfg.VpncConfigDir,
		ConnectCommand:    a.cfg.VpncPath,
		DisconnectCommand: a.cfg.VpncDisconnectPath,
	}
}

// credentials fetches the IPSec secret and Xauth password from the
// credential store, prompting for anything missing or unsaved.
func (a *App) credentials(profile *vpnc.Profile) (secret, password string, err error) {
	if profile.SaveSecrets {
		secret, _ = a.creds.Secret(profile.ID)
		password, _ = a.creds.Password(profile.ID)
	}

	if secret == "" {
		if secret, err = promptSecret("IPSec secret"); err != nil {
			return "", "", err
		}
	}
	if password == "" {
		if password, err = promptSecret("Xauth password"); err != nil {
			return "", "", err
		}
	}
	return secret, password, nil
}

// sessionActive reports whether a placed configuration file shows an
// established session. Commands check this before collecting credentials
// so that nobody types secrets only to be told a tunnel is already up.
func (a *App) sessionActive() bool {
	return a.bareSession().Attach()
}

// activeProfileName names the connection for user-facing messages. The
// manager does not record which profile established an attached session,
// so this falls back to the default profile or a generic label.
func (a *App) activeProfileName() string {
	if p, err := a.findProfile(""); err == nil {
		return p.Name
	}
	return "VPN"
}
