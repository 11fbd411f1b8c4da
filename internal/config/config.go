// Package config loads routinely's configuration from an optional YAML
// file overridden by ROUTINELY_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "ROUTINELY_"

// Config is the full runtime configuration.
type Config struct {
	DBPath string       `koanf:"db_path"`
	Notify NotifyConfig `koanf:"notify"`
	Log    LogConfig    `koanf:"log"`
}

// NotifyConfig tunes the due-soon check.
type NotifyConfig struct {
	// LeadMinutes is how far ahead of an instance's start time a
	// notification fires.
	LeadMinutes int `koanf:"lead_minutes"`
	// CheckIntervalSec is how often the watch loop re-checks.
	CheckIntervalSec int `koanf:"check_interval_sec"`
}

// LogConfig controls the optional service use-case event log.
type LogConfig struct {
	UseCaseEvents bool `koanf:"use_case_events"`
}

// DefaultConfigPath returns ~/.config/routinely/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "routinely", "config.yaml"), nil
}

// Load reads configuration with precedence (highest first): environment
// variables, the YAML file at configPath, hardcoded defaults. An empty
// configPath means the default location; a missing file is not an error.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		var err error
		configPath, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	if content, err := os.ReadFile(configPath); err == nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	// ROUTINELY_DB_PATH -> db_path, ROUTINELY_NOTIFY_LEAD_MINUTES ->
	// notify.lead_minutes. Split on the first underscore after the prefix:
	// top-level keys have no section, so known sections are mapped
	// explicitly.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		for _, section := range []string{"notify", "log"} {
			if rest, ok := strings.CutPrefix(key, section+"_"); ok {
				return section + "." + rest
			}
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DBPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.DBPath = filepath.Join(home, ".routinely", "routinely.db")
		} else {
			cfg.DBPath = "routinely.db"
		}
	}
	if cfg.Notify.LeadMinutes == 0 {
		cfg.Notify.LeadMinutes = 5
	}
	if cfg.Notify.CheckIntervalSec == 0 {
		cfg.Notify.CheckIntervalSec = 30
	}
}

// Validate rejects settings the services cannot work with.
func (c *Config) Validate() error {
	if c.Notify.LeadMinutes < 1 {
		return fmt.Errorf("notify.lead_minutes must be at least 1, got %d", c.Notify.LeadMinutes)
	}
	if c.Notify.CheckIntervalSec < 1 {
		return fmt.Errorf("notify.check_interval_sec must be at least 1, got %d", c.Notify.CheckIntervalSec)
	}
	return nil
}
