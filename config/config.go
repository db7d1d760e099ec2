// Package config provides configuration management for VPNC Manager.
// It handles loading, saving, and managing application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vpncman/vpnc-manager/common"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// VpncPath is the connect binary. Defaults to "vpnc".
	VpncPath string `yaml:"vpnc_path"`
	// VpncDisconnectPath is the disconnect binary. Defaults to "vpnc-disconnect".
	VpncDisconnectPath string `yaml:"vpnc_disconnect_path"`
	// VpncConfigDir overrides the directory vpnc reads its profile from.
	// Empty means the platform default.
	VpncConfigDir string `yaml:"vpnc_config_dir,omitempty"`
	// DefaultProfile is the profile used when none is named on the command line.
	DefaultProfile string `yaml:"default_profile,omitempty"`
	// ShowNotifications enables desktop notifications for session events.
	ShowNotifications bool `yaml:"show_notifications"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the default configuration.
// These are sensible defaults for most users.
func DefaultConfig() *Config {
	return &Config{
		VpncPath:           common.DefaultConnectCommand,
		VpncDisconnectPath: common.DefaultDisconnectCommand,
		ShowNotifications:  true,
		Verbose:            false,
	}
}

// Load loads the configuration from the config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(configPath)
}

func loadFrom(configPath string) (*Config, error) {
	// If it doesn't exist, return default configuration
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.saveTo(configPath); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrConfigLoad, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrConfigLoad, err)
	}

	config.validate()
	return &config, nil
}

// validate fills invalid values with their defaults.
func (c *Config) validate() {
	if c.VpncPath == "" {
		c.VpncPath = common.DefaultConnectCommand
	}
	if c.VpncDisconnectPath == "" {
		c.VpncDisconnectPath = common.DefaultDisconnectCommand
	}
}

// Save saves the configuration to the file
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.saveTo(configPath)
}

func (c *Config) saveTo(configPath string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("%w: %w", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", common.ErrConfigSave, err)
	}

	return nil
}

func getConfigPath() (string, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, common.ConfigFileName), nil
}
