package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Database file location; empty means the store's default path
	DBPath string `yaml:"db_path,omitempty"`
	// Maximum accepted scan bundle size in bytes
	MaxBundleBytes int64 `yaml:"max_bundle_bytes,omitempty"`
	// zerolog level: debug, info, warn, error
	LogLevel string `yaml:"log_level,omitempty"`
}

// defaultConfig provides baseline settings
var defaultConfig = Config{
	MaxBundleBytes: 5 * 1024 * 1024,
	LogLevel:       "info",
}

func Load(path string) (*Config, error) {
	if path == "" {
		// Try default locations
		candidates := []string{
			"/etc/motherboard/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/motherboard/config.yaml"),
			"config.yaml",
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}

	var cfg Config
	if path == "" {
		// No config file found - run on defaults
		cfg = defaultConfig
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			cfg = defaultConfig
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}

	// Apply defaults for missing values
	if cfg.MaxBundleBytes == 0 {
		cfg.MaxBundleBytes = defaultConfig.MaxBundleBytes
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultConfig.LogLevel
	}

	return &cfg, nil
}
