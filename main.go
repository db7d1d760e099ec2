// Package main provides the entry point for VPNC Manager, a command-line
// front end for the vpnc IPSec client. It keeps named connection profiles,
// stores their secrets in the system keyring, renders vpnc configuration
// files on demand and drives vpnc/vpnc-disconnect to bring tunnels up
// and down.
//
// Usage:
//
//	vpnc-manager <command> [flags]
//
// Environment:
//
//	The vpnc package must be installed. Connect and disconnect require
//	root privileges because the rendered configuration is owned by root.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vpncman/vpnc-manager/cli"
	"github.com/vpncman/vpnc-manager/common"
	"github.com/vpncman/vpnc-manager/config"
	"github.com/vpncman/vpnc-manager/vpnc"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load settings: %v\n", err)
		cfg = config.DefaultConfig()
	}

	logLevel := chooseLogLevel(cfg, os.Getenv("VPNC_MANAGER_DEBUG") != "")
	if err := common.InitLogger(common.LogConfig{
		Level:      logLevel,
		EnableFile: true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	if !vpnc.Installed(common.DefaultConnectCommand) {
		common.LogWarn("vpnc was not found in PATH")
		fmt.Fprintln(os.Stderr, "Warning: vpnc was not found in PATH. Connect and run will fail until it is installed.")
	}

	cli.SetVersion(appVersion, buildTime)
	root := cli.NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		common.LogError("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// chooseLogLevel picks the logger level from the persisted verbose
// setting and the VPNC_MANAGER_DEBUG environment variable.
func chooseLogLevel(cfg *config.Config, debugEnv bool) common.LogLevel {
	if debugEnv || cfg.Verbose {
		return common.LevelDebug
	}
	return common.LevelInfo
}

// setupSignalHandler cancels the context on SIGINT/SIGTERM so that a
// running vpnc invocation is interrupted and the command can clean up.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, shutting down", sig)
		cancel()
	}()
}
