// Package settings persists the link settings record through viper.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/grovetools/notelink/pkg/models"
)

// Store loads and persists LinkSettings. Fields missing from the config file
// merge from defaults; environment variables with the NOTELINK prefix
// override the file.
type Store struct {
	v    *viper.Viper
	path string
}

// DefaultConfigPath returns $HOME/.config/notelink/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "notelink", "config.yaml"), nil
}

// Open reads the config file at path, creating a defaults-only store when
// the file does not exist yet.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := models.DefaultLinkSettings()
	v.SetDefault("extract_timestamps", defaults.ExtractTimestamps)
	v.SetDefault("timestamp_length", defaults.TimestampLength)
	v.SetDefault("append_file_name", defaults.AppendFileName)
	v.SetDefault("enable_link_resolution", defaults.EnableLinkResolution)
	v.SetDefault("enable_partial_matching", defaults.EnablePartialMatching)

	v.SetEnvPrefix("NOTELINK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	return &Store{v: v, path: path}, nil
}

// Path returns the config file location backing this store.
func (s *Store) Path() string {
	return s.path
}

// Current returns the effective settings, defaults merged in.
func (s *Store) Current() models.LinkSettings {
	var out models.LinkSettings
	if err := s.v.Unmarshal(&out); err != nil {
		// Unmarshal of scalar keys into a flat struct cannot fail with the
		// defaults installed above; fall back to defaults to stay total.
		return models.DefaultLinkSettings()
	}
	return out
}

// Update applies mutate to the current settings, validates the result, and
// persists it. Invalid settings are rejected here and never reach the
// formatter or resolver.
func (s *Store) Update(mutate func(*models.LinkSettings)) (models.LinkSettings, error) {
	cur := s.Current()
	mutate(&cur)

	if err := cur.Validate(); err != nil {
		return models.LinkSettings{}, fmt.Errorf("invalid settings: %w", err)
	}

	s.v.Set("extract_timestamps", cur.ExtractTimestamps)
	s.v.Set("timestamp_length", cur.TimestampLength)
	s.v.Set("append_file_name", cur.AppendFileName)
	s.v.Set("enable_link_resolution", cur.EnableLinkResolution)
	s.v.Set("enable_partial_matching", cur.EnablePartialMatching)

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return models.LinkSettings{}, fmt.Errorf("create config dir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return models.LinkSettings{}, fmt.Errorf("write config: %w", err)
	}

	return cur, nil
}
