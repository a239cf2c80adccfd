package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/task-cli/internal/commands"
	"github.com/hay-kot/task-cli/internal/core/config"
	"github.com/hay-kot/task-cli/internal/core/logging"
	"github.com/hay-kot/task-cli/internal/core/styles"
	"github.com/hay-kot/task-cli/internal/taskcli"
	"github.com/hay-kot/task-cli/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	os.Exit(run(context.Background(), os.Args))
}

// run executes the CLI and returns the process exit status. Failures are
// printed on stdout; the status is non-zero only in strict mode.
func run(ctx context.Context, args []string) int {
	var (
		logCloser func()
		taskApp   = &taskcli.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "task-cli",
		Usage:     "Track tasks in a local JSON file",
		UsageText: "task-cli [global options] <command> [arguments]",
		Description: `task-cli keeps a list of tasks in tasks.json in the current directory.

Examples:
  task-cli add "Buy groceries"
  task-cli update 1 "Buy groceries and cook dinner"
  task-cli mark-in-progress 1
  task-cli mark-done 1
  task-cli list done
  task-cli delete 1`,
		Version:               build(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "store",
				Aliases:     []string{"s"},
				Usage:       "path to the task file (default from config, then tasks.json)",
				Sources:     cli.EnvVars("TASK_CLI_STORE"),
				Destination: &flags.StorePath,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TASK_CLI_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASK_CLI_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write JSON logs to this file instead of stderr",
				Sources:     cli.EnvVars("TASK_CLI_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "exit with status 1 when a command fails",
				Sources:     cli.EnvVars("TASK_CLI_STRICT"),
				Destination: &flags.Strict,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "colorize output (auto, always, never)",
				Sources:     cli.EnvVars("TASK_CLI_COLOR"),
				Destination: &flags.Color,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Flags and env vars take precedence over the config file
			if c.IsSet("store") && flags.StorePath != "" {
				cfg.Store.Path = flags.StorePath
			}
			if c.IsSet("color") && flags.Color != "" {
				cfg.Output.Color = flags.Color
			}
			flags.Strict = flags.Strict || cfg.Strict

			palette, _ := styles.GetPalette(cfg.Output.Theme)
			styles.SetTheme(palette)
			if err := styles.SetColorMode(cfg.Output.Color, c.Root().Writer); err != nil {
				return ctx, err
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*taskApp = *taskcli.NewApp(cfg, flags.ConfigPath, logging.Component("task-cli"), nil)

			return logging.WithStorePath(ctx, cfg.Store.Path), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewAddCmd(flags, taskApp).Register(app)
	app = commands.NewUpdateCmd(flags, taskApp).Register(app)
	app = commands.NewDeleteCmd(flags, taskApp).Register(app)
	app = commands.NewMarkCmd(flags, taskApp).Register(app)
	app = commands.NewListCmd(flags, taskApp).Register(app)
	app = commands.NewCheckCmd(flags, taskApp).Register(app)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return &commands.Failure{Msg: "Unknown command: " + c.Args().First()}
		}
		return &commands.Failure{Msg: "Usage: task-cli <command> [arguments]"}
	}

	runErr := app.Run(ctx, args)
	if runErr == nil {
		return 0
	}

	var failure *commands.Failure
	if !errors.As(runErr, &failure) || !failure.Silent() {
		fmt.Println(runErr.Error())
	}

	if flags.Strict {
		return 1
	}
	return 0
}
