package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vpncman/vpnc-manager/common"
	"github.com/vpncman/vpnc-manager/config"
	"github.com/vpncman/vpnc-manager/vpnc"
)

func testApp(t *testing.T) *App {
	t.Helper()

	profiles, err := vpnc.NewProfileManagerAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewProfileManagerAt() error = %v", err)
	}
	return &App{
		cfg:      config.DefaultConfig(),
		profiles: profiles,
	}
}

func addProfile(t *testing.T, app *App, name string) *vpnc.Profile {
	t.Helper()

	p := &vpnc.Profile{
		Name:     name,
		Gateway:  "vpn.example.com",
		IPSecID:  "staff",
		Username: "jsmith",
	}
	if err := app.profiles.Add(p); err != nil {
		t.Fatalf("Add(%q) error = %v", name, err)
	}
	return p
}

func TestFindProfile_ByName(t *testing.T) {
	app := testApp(t)
	want := addProfile(t, app, "Work")
	addProfile(t, app, "Home")

	got, err := app.findProfile("work")
	if err != nil {
		t.Fatalf("findProfile(work) error = %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("findProfile(work) = %q, want %q", got.Name, want.Name)
	}
}

func TestFindProfile_ByIDPrefix(t *testing.T) {
	app := testApp(t)
	want := addProfile(t, app, "Work")

	got, err := app.findProfile(want.ID[:8])
	if err != nil {
		t.Fatalf("findProfile(%q) error = %v", want.ID[:8], err)
	}
	if got.ID != want.ID {
		t.Errorf("findProfile by prefix resolved %q, want %q", got.ID, want.ID)
	}
}

func TestFindProfile_DefaultFallback(t *testing.T) {
	app := testApp(t)
	want := addProfile(t, app, "Work")
	app.cfg.DefaultProfile = "Work"

	got, err := app.findProfile("")
	if err != nil {
		t.Fatalf("findProfile(\"\") error = %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("default profile resolved %q, want %q", got.Name, want.Name)
	}
}

func TestFindProfile_NoDefault(t *testing.T) {
	app := testApp(t)
	addProfile(t, app, "Work")

	if _, err := app.findProfile(""); err == nil {
		t.Error("findProfile(\"\") without a default profile should fail")
	}
}

func TestFindProfile_NotFound(t *testing.T) {
	app := testApp(t)
	addProfile(t, app, "Work")

	_, err := app.findProfile("nosuch")
	if !errors.Is(err, common.ErrProfileNotFound) {
		t.Errorf("findProfile(nosuch) error = %v, want ErrProfileNotFound", err)
	}
}

func TestActiveProfileName(t *testing.T) {
	app := testApp(t)
	if got := app.activeProfileName(); got != "VPN" {
		t.Errorf("activeProfileName() with no default = %q, want VPN", got)
	}

	addProfile(t, app, "Work")
	app.cfg.DefaultProfile = "Work"
	if got := app.activeProfileName(); got != "Work" {
		t.Errorf("activeProfileName() = %q, want Work", got)
	}
}

func TestSessionOptions(t *testing.T) {
	app := testApp(t)
	app.cfg.VpncPath = "/usr/local/sbin/vpnc"
	app.cfg.VpncDisconnectPath = "/usr/local/sbin/vpnc-disconnect"
	app.cfg.VpncConfigDir = "/tmp/vpnc-conf"

	opts := app.sessionOptions()
	if opts.ConnectCommand != app.cfg.VpncPath {
		t.Errorf("ConnectCommand = %q, want %q", opts.ConnectCommand, app.cfg.VpncPath)
	}
	if opts.DisconnectCommand != app.cfg.VpncDisconnectPath {
		t.Errorf("DisconnectCommand = %q, want %q", opts.DisconnectCommand, app.cfg.VpncDisconnectPath)
	}
	if opts.ConfigDir != app.cfg.VpncConfigDir {
		t.Errorf("ConfigDir = %q, want %q", opts.ConfigDir, app.cfg.VpncConfigDir)
	}
}

// stubRunner pretends every external command succeeds unless told to
// fail a specific binary.
type stubRunner struct {
	failOn map[string]error
	calls  []string
}

func (r *stubRunner) Run(ctx context.Context, name string, args ...string) error {
	r.calls = append(r.calls, name)
	if err, ok := r.failOn[name]; ok {
		return err
	}
	return nil
}

func scopedSession(t *testing.T, runner vpnc.Runner) *vpnc.Session {
	t.Helper()

	cfg := vpnc.Config{
		Gateway:  "vpn.example.com",
		ID:       "staff",
		Secret:   "group-secret",
		Authmode: "psk",
		Username: "jsmith",
		Password: "hunter2",
	}
	return vpnc.NewSession(cfg, vpnc.Options{
		ConfigDir: t.TempDir(),
		TempDir:   t.TempDir(),
		Runner:    runner,
	})
}

func TestSessionActive(t *testing.T) {
	app := testApp(t)
	app.cfg.VpncConfigDir = t.TempDir()

	if app.sessionActive() {
		t.Error("sessionActive() = true with no placed configuration")
	}

	placed := filepath.Join(app.cfg.VpncConfigDir, common.DefaultVpncFileName)
	if err := os.WriteFile(placed, []byte("IPSec gateway x\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if !app.sessionActive() {
		t.Error("sessionActive() = false with a placed configuration present")
	}
}

func TestRunScoped_MarksUsedAfterConnect(t *testing.T) {
	app := testApp(t)
	profile := addProfile(t, app, "Work")
	session := scopedSession(t, &stubRunner{})

	if err := app.runScoped(context.Background(), session, profile.ID, []string{"true"}); err != nil {
		t.Fatalf("runScoped() error = %v", err)
	}

	got, err := app.profiles.Get(profile.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.LastUsed.IsZero() {
		t.Error("LastUsed not recorded after a successful scoped run")
	}
}

func TestRunScoped_ConnectFailureLeavesUsageUntouched(t *testing.T) {
	app := testApp(t)
	profile := addProfile(t, app, "Work")

	runner := &stubRunner{failOn: map[string]error{
		common.DefaultConnectCommand: errors.New("exit status 1"),
	}}
	session := scopedSession(t, runner)

	if err := app.runScoped(context.Background(), session, profile.ID, []string{"true"}); err == nil {
		t.Fatal("runScoped() should fail when the connect command fails")
	}

	got, err := app.profiles.Get(profile.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.LastUsed.IsZero() {
		t.Error("LastUsed recorded even though the connect failed")
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID() = %q, want 01234567", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID(abc) = %q, want abc", got)
	}
}
