// Package taskcli wires the task store, configuration and services that the
// commands operate on.
package taskcli

import (
	"time"

	"github.com/hay-kot/task-cli/internal/core/config"
	"github.com/hay-kot/task-cli/internal/store/jsonfile"
	"github.com/rs/zerolog"
)

// App is the central entry point for all task-cli operations.
// Commands consume App instead of cherry-picking raw dependencies.
type App struct {
	Tasks  *TaskService
	Checks *CheckService

	Config *config.Config
	Store  *jsonfile.TaskStore
}

// NewApp constructs an App for cfg. A nil now uses time.Now.
func NewApp(cfg *config.Config, configPath string, log zerolog.Logger, now func() time.Time) *App {
	store := jsonfile.NewTaskStore(cfg.Store.Path, jsonfile.Options{
		OnCorrupt: jsonfile.CorruptPolicy(cfg.Store.OnCorrupt),
		Logger:    log,
		Now:       now,
	})

	return &App{
		Tasks:  NewTaskService(store, log, now),
		Checks: NewCheckService(cfg, configPath),
		Config: cfg,
		Store:  store,
	}
}
