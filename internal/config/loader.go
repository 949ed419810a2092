package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// KongFile is the configuration file name searched for in the config directories.
const KongFile = "kong.yaml"

// LoadKong loads and validates the Kong configuration.
// Search order: customPath -> ~/.kong/configs/kong.yaml -> ./configs/kong.yaml -> embedded default
func LoadKong(customPath string) (KongConfig, error) {
	cfg, _, err := LoadKongWithPath(customPath)
	return cfg, err
}

// LoadKongWithPath is LoadKong that also reports which file was used.
// The path is empty when the embedded default was used.
func LoadKongWithPath(customPath string) (KongConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KongConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseKong(data)
		if err != nil {
			return KongConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory.
	// Unreadable or invalid files here are skipped.
	for _, path := range []string{userConfigPath(KongFile), filepath.Join("configs", KongFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseKong(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseKong(defaultKongYAML)
	if err != nil {
		return DefaultKongConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// ParseKong decodes YAML over the defaults and validates the result.
// Keys missing from data keep their default values; lists are replaced whole.
func ParseKong(data []byte) (KongConfig, error) {
	cfg := DefaultKongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KongConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return KongConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kong", "configs", filename)
}
