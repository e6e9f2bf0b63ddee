// ABOUTME: Practice CLI configuration: server URL, token, timeout.
// ABOUTME: JSON file under XDG config, overridable via environment.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/practice/internal/api"
)

// DefaultServer is used when no server is configured.
const DefaultServer = "http://localhost:8080/api/v1"

// Config stores practice tool configuration. Environment variables
// override the file on load.
type Config struct {
	// Server is the API base URL, including the /api/v1 prefix.
	Server string `json:"server,omitempty" env:"PRACTICE_SERVER"`

	// Token is an optional bearer token sent with every request.
	Token string `json:"token,omitempty" env:"PRACTICE_TOKEN"`

	// TimeoutSeconds bounds each API round-trip. Defaults to 10.
	TimeoutSeconds int `json:"timeout_seconds,omitempty" env:"PRACTICE_TIMEOUT"`
}

// GetServer returns the configured server, defaulting to DefaultServer.
func (c *Config) GetServer() string {
	if c.Server == "" {
		return DefaultServer
	}
	return c.Server
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return api.DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// OpenClient creates an API client from the configuration.
func (c *Config) OpenClient() *api.Client {
	return api.NewClient(c.GetServer(), c.Token, c.Timeout())
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "practice", "config.json")
}

// Load reads config from disk, then applies environment overrides.
func Load() (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(GetConfigPath())
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// No file is fine; env or defaults cover it.
	default:
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
