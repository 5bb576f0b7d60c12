package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would make the world unbuildable.
func (c *Config) Validate() error {
	switch {
	case c.Level.Path == "":
		return fmt.Errorf("%w: level.path is empty", ErrInvalidConfig)
	case c.Road.SamplesPerSegment <= 0:
		return fmt.Errorf("%w: road.samples_per_segment must be positive", ErrInvalidConfig)
	case c.Hero.StepLength <= 0:
		return fmt.Errorf("%w: hero.step_length must be positive", ErrInvalidConfig)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera needs 0 < near < far", ErrInvalidConfig)
	case c.Camera.Aspect <= 0:
		return fmt.Errorf("%w: camera.aspect must be positive", ErrInvalidConfig)
	case c.Simulation.TickInterval() <= 0:
		return fmt.Errorf("%w: simulation.tick_rate must be positive and at most 1e9", ErrInvalidConfig)
	}
	return nil
}

// expandPaths resolves a leading ~ in every configured file path.
func (c *Config) expandPaths() error {
	for _, p := range []*string{
		&c.Level.Path,
		&c.Export.OBJPath,
		&c.Export.PreviewPath,
		&c.Logging.LogFile,
	} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		*p = expanded
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	home, _ := homedir.Dir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Landscape")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Landscape")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "landscape")
		}
		return filepath.Join(home, ".config", "landscape")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
