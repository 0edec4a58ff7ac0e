// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds brewkit configuration
type Config struct {
	BrewPath     string `yaml:"brew_path"`      // brew binary (auto-detected when empty)
	TarballURL   string `yaml:"tarball_url"`    // Homebrew tarball for bootstrap
	Timeout      string `yaml:"timeout"`        // Go duration string, e.g. "90s"
	NoAutoUpdate *bool  `yaml:"no_auto_update"` // unset counts as true
	Debug        bool   `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		BrewPath:   getDefaultBrewPath(),
		TarballURL: "",
		Debug:      false,
	}
}

// TimeoutDuration parses the timeout key; zero when unset.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Timeout)
}

// AutoUpdateDisabled reports whether brew's implicit auto-update is kept
// suppressed. An unset key means suppressed.
func (c *Config) AutoUpdateDisabled() bool {
	return c.NoAutoUpdate == nil || *c.NoAutoUpdate
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults, not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "brewkit", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if _, err := cfg.TimeoutDuration(); err != nil {
		return nil, fmt.Errorf("parsing config timeout: %w", err)
	}

	if cfg.BrewPath == "" {
		cfg.BrewPath = getDefaultBrewPath()
	}

	return &cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "brewkit", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultBrewPath() string {
	// Empty means auto-detect at manager construction
	return os.Getenv("BREWKIT_BREW_PATH")
}
