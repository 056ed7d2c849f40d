package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in standard locations.
const FileName = "lofttool.yaml"

// Load loads configuration with priority: defaults < file.
// An explicit path takes priority over the standard locations.
// Flag overrides are applied afterwards with ApplyFlags.
func Load(explicitPath string) (*Config, error) {
	cfg := Default()

	configPath := explicitPath
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	return cfg, nil
}

// EnvPath names the environment variable that points at a config file.
// It is consulted after an explicit path and before the standard locations.
const EnvPath = "LOFTTOOL_CONFIG"

// findConfigFile looks for config in the environment and standard locations.
// A path set in the environment is returned even if missing, so that a typo
// surfaces as a load error instead of silently falling back to defaults.
func findConfigFile() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}

	candidates := []string{"./" + FileName}
	if dir := ConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, FileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user archloft config directory, or "" when the
// OS reports none.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "archloft")
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
