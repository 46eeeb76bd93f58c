package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all client parameters.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"` // Go duration string, e.g. "15s"
}

type StorageConfig struct {
	// Path to the SQLite file backing durable local state (cart, session).
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

const defaultTimeout = 15 * time.Second

// RequestTimeout parses the configured timeout, falling back to the default
// on an empty or invalid value.
func (a APIConfig) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(a.Timeout)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		API:     APIConfig{BaseURL: "http://localhost:5000", Timeout: "15s"},
		Storage: StorageConfig{Path: filepath.Join(home, ".cafe-client", "state.db")},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path on top of defaults, then applies
// environment overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("invalid config: api.base_url is empty")
	}
	return cfg, nil
}

// applyEnvOverrides lets environment variables win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CAFE_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("CAFE_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("CAFE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CAFE_API_TIMEOUT"); v != "" {
		c.API.Timeout = v
	}
}
