package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
	"github.com/hay-kot/task-cli/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration values are well formed.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("store.path", c.Store.Path, notEmpty),
		criterio.Run("store.on_corrupt", c.Store.OnCorrupt, oneOf(OnCorruptRecover, OnCorruptFail)),
		criterio.Run("output.color", c.Output.Color, oneOf(ColorAuto, ColorAlways, ColorNever)),
		criterio.Run("output.theme", c.Output.Theme, oneOf(styles.ThemeNames()...)),
	)
}

// ValidateDeep performs Validate and then checks that the config file and
// the task file location are usable. The configPath argument specifies the
// config file location to validate (empty string skips config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("store.path", c.Store.Path, isFileOrNotExist),
		criterio.Run("store.path", filepath.Dir(c.Store.Path), isDirectoryOrNotExist),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if !filepath.IsAbs(c.Store.Path) {
		warnings = append(warnings, ValidationWarning{
			Category: "Store",
			Item:     c.Store.Path,
			Message:  "relative path resolves against the working directory",
		})
	}

	if c.Store.OnCorrupt == OnCorruptRecover && c.Strict {
		warnings = append(warnings, ValidationWarning{
			Category: "Store",
			Item:     "on_corrupt",
			Message:  "strict mode does not fail on a corrupt task file unless on_corrupt is \"fail\"",
		})
	}

	return warnings
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func oneOf(allowed ...string) func(string) error {
	return func(s string) error {
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return fmt.Errorf("invalid value %q, must be one of %v", s, allowed)
	}
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isFileOrNotExist validates that a path is a regular file or doesn't exist.
func isFileOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // created on first save
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	return nil
}
