// Package vpnc drives the external vpnc client.
// This file contains the Profile and ProfileManager types for managing
// named connection profiles.
package vpnc

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vpncman/vpnc-manager/common"
)

// Profile represents a named vpnc connection profile. It carries the
// non-secret connection parameters; the IPSec secret and Xauth password
// live in the credential store and are never written to the profile file.
type Profile struct {
	// ID is a unique identifier for the profile.
	ID string `yaml:"id"`
	// Name is a human-readable name for the profile.
	Name string `yaml:"name"`
	// Gateway is the address of the IPSec gateway.
	Gateway string `yaml:"gateway"`
	// IPSecID is the IPSec group identifier.
	IPSecID string `yaml:"ipsec_id"`
	// Authmode is the IKE authentication mode. Defaults to "psk".
	Authmode string `yaml:"authmode"`
	// Username is the Xauth username.
	Username string `yaml:"username,omitempty"`
	// SaveSecrets indicates whether secrets are kept in the credential store.
	SaveSecrets bool `yaml:"save_secrets"`
	// Created is the timestamp when the profile was created.
	Created time.Time `yaml:"created"`
	// LastUsed is the timestamp when the profile was last used.
	LastUsed time.Time `yaml:"last_used,omitempty"`
}

// Validate checks that the profile has all required fields.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrInvalidProfile)
	}
	if p.Gateway == "" {
		return fmt.Errorf("%w: gateway is required", common.ErrInvalidProfile)
	}
	if p.IPSecID == "" {
		return fmt.Errorf("%w: IPSec ID is required", common.ErrInvalidProfile)
	}
	return nil
}

// ProfileManager manages connection profiles.
// It handles loading, saving, and manipulating profiles stored on disk.
type ProfileManager struct {
	profiles   []*Profile
	configDir  string
	configFile string
}

// NewProfileManager creates a ProfileManager over the default
// configuration directory and loads existing profiles.
func NewProfileManager() (*ProfileManager, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return nil, err
	}
	return NewProfileManagerAt(configDir)
}

// NewProfileManagerAt creates a ProfileManager over the given directory,
// creating it if necessary, and loads existing profiles.
func NewProfileManagerAt(configDir string) (*ProfileManager, error) {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	pm := &ProfileManager{
		profiles:   make([]*Profile, 0),
		configDir:  configDir,
		configFile: filepath.Join(configDir, common.ProfilesFileName),
	}

	if err := pm.Load(); err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	return pm, nil
}

// Load loads profiles from the configuration file.
// Returns nil if the file doesn't exist (no profiles yet).
func (pm *ProfileManager) Load() error {
	data, err := os.ReadFile(pm.configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read profiles file: %w", err)
	}

	if err := yaml.Unmarshal(data, &pm.profiles); err != nil {
		return fmt.Errorf("failed to parse profiles file: %w", err)
	}

	return nil
}

// Save persists profiles to the configuration file.
func (pm *ProfileManager) Save() error {
	data, err := yaml.Marshal(&pm.profiles)
	if err != nil {
		return fmt.Errorf("failed to serialize profiles: %w", err)
	}

	if err := os.WriteFile(pm.configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write profiles file: %w", err)
	}

	return nil
}

// Add adds a new profile. It validates the profile, rejects duplicate
// names, generates a unique ID, and persists the updated set.
func (pm *ProfileManager) Add(profile *Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	if _, err := pm.GetByName(profile.Name); err == nil {
		return common.ErrDuplicateName
	}

	if profile.ID == "" {
		profile.ID = common.GenerateID()
	}
	if profile.Authmode == "" {
		profile.Authmode = common.AuthmodePSK
	}
	profile.Created = time.Now()

	pm.profiles = append(pm.profiles, profile)
	return pm.Save()
}

// Remove removes a profile by ID.
func (pm *ProfileManager) Remove(id string) error {
	for i, profile := range pm.profiles {
		if profile.ID == id {
			pm.profiles = append(pm.profiles[:i], pm.profiles[i+1:]...)
			return pm.Save()
		}
	}
	return common.ErrProfileNotFound
}

// Get retrieves a profile by ID.
func (pm *ProfileManager) Get(id string) (*Profile, error) {
	for _, profile := range pm.profiles {
		if profile.ID == id {
			return profile, nil
		}
	}
	return nil, common.ErrProfileNotFound
}

// GetByName retrieves a profile by name.
func (pm *ProfileManager) GetByName(name string) (*Profile, error) {
	for _, profile := range pm.profiles {
		if profile.Name == name {
			return profile, nil
		}
	}
	return nil, common.ErrProfileNotFound
}

// List returns all profiles.
func (pm *ProfileManager) List() []*Profile {
	return pm.profiles
}

// Update updates an existing profile.
func (pm *ProfileManager) Update(profile *Profile) error {
	for i, p := range pm.profiles {
		if p.ID == profile.ID {
			pm.profiles[i] = profile
			return pm.Save()
		}
	}
	return common.ErrProfileNotFound
}

// MarkUsed updates the LastUsed timestamp for a profile.
func (pm *ProfileManager) MarkUsed(id string) error {
	profile, err := pm.Get(id)
	if err != nil {
		return err
	}
	profile.LastUsed = time.Now()
	return pm.Update(profile)
}
