package doctor

import (
	"context"
	"errors"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/hay-kot/task-cli/internal/core/config"
)

// ConfigCheck validates the loaded configuration and the locations it points at.
type ConfigCheck struct {
	cfg        *config.Config
	configPath string
}

// NewConfigCheck creates a check for cfg, which was loaded from configPath.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, configPath: configPath}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	source := "defaults (no config file)"
	if c.configPath != "" {
		if _, err := os.Stat(c.configPath); err == nil {
			source = c.configPath
		}
	}
	result.Items = append(result.Items, CheckItem{
		Label:  "source",
		Status: StatusPass,
		Detail: source,
	})

	if err := c.cfg.ValidateDeep(c.configPath); err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result.Items = append(result.Items, CheckItem{
					Label:  fe.Field,
					Status: StatusFail,
					Detail: fe.Err.Error(),
				})
			}
		} else {
			result.Items = append(result.Items, CheckItem{
				Label:  "values",
				Status: StatusFail,
				Detail: err.Error(),
			})
		}
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "store.path",
			Status: StatusPass,
			Detail: c.cfg.Store.Path,
		})
	}

	for _, w := range c.cfg.Warnings() {
		label := w.Category
		if w.Item != "" {
			label = w.Item
		}
		result.Items = append(result.Items, CheckItem{
			Label:  label,
			Status: StatusWarn,
			Detail: w.Message,
		})
	}

	return result
}
