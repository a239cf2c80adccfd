// Package config handles configuration loading and validation for task-cli.
package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/task-cli/internal/core/styles"
	"gopkg.in/yaml.v3"
)

// Policies for a task file that cannot be read or parsed.
const (
	OnCorruptRecover = "recover"
	OnCorruptFail    = "fail"
)

// Color modes for terminal output.
const (
	ColorAuto   = styles.ColorAuto
	ColorAlways = styles.ColorAlways
	ColorNever  = styles.ColorNever
)

// DefaultStorePath is the task file used when nothing else is configured.
// Relative paths resolve against the working directory.
const DefaultStorePath = "tasks.json"

// Config holds the application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Output OutputConfig `yaml:"output"`
	Strict bool         `yaml:"strict"` // report failures with exit status 1
}

// StoreConfig holds task file settings.
type StoreConfig struct {
	Path      string `yaml:"path"`
	OnCorrupt string `yaml:"on_corrupt"` // recover | fail
}

// OutputConfig holds terminal output settings.
type OutputConfig struct {
	Color string `yaml:"color"` // auto | always | never
	Theme string `yaml:"theme"` // named palette, see styles.ThemeNames
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Path:      DefaultStorePath,
			OnCorrupt: OnCorruptRecover,
		},
		Output: OutputConfig{
			Color: ColorAuto,
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Store.Path == "" {
		c.Store.Path = defaults.Store.Path
	}
	if c.Store.OnCorrupt == "" {
		c.Store.OnCorrupt = defaults.Store.OnCorrupt
	}
	if c.Output.Color == "" {
		c.Output.Color = defaults.Output.Color
	}
	if c.Output.Theme == "" {
		c.Output.Theme = defaults.Output.Theme
	}
}
