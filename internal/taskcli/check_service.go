package taskcli

import (
	"context"

	"github.com/hay-kot/task-cli/internal/core/config"
	"github.com/hay-kot/task-cli/internal/core/doctor"
)

// CheckService runs health checks on the configuration and task file.
type CheckService struct {
	config     *config.Config
	configPath string
}

// NewCheckService creates a new CheckService.
func NewCheckService(cfg *config.Config, configPath string) *CheckService {
	return &CheckService{
		config:     cfg,
		configPath: configPath,
	}
}

// RunChecks executes all checks and returns results.
func (s *CheckService) RunChecks(ctx context.Context) []doctor.Result {
	checks := []doctor.Check{
		doctor.NewConfigCheck(s.config, s.configPath),
		doctor.NewTaskFileCheck(s.config.Store.Path),
	}
	return doctor.RunAll(ctx, checks)
}
