package commands

import (
	"context"
	"fmt"

	"github.com/hay-kot/task-cli/internal/core/logging"
	"github.com/hay-kot/task-cli/internal/core/task"
	"github.com/hay-kot/task-cli/internal/core/validate"
	"github.com/hay-kot/task-cli/internal/taskcli"
	"github.com/urfave/cli/v3"
)

// MarkCmd implements the mark-in-progress and mark-done commands.
type MarkCmd struct {
	flags *Flags
	app   *taskcli.App
}

// NewMarkCmd creates a new mark command.
func NewMarkCmd(flags *Flags, app *taskcli.App) *MarkCmd {
	return &MarkCmd{flags: flags, app: app}
}

// Register adds the mark commands to the application.
func (cmd *MarkCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		cmd.markCmd("mark-in-progress", "Mark a task as in progress", task.StatusInProgress),
		cmd.markCmd("mark-done", "Mark a task as done", task.StatusDone),
	)
	return app
}

func (cmd *MarkCmd) markCmd(name, usage string, status task.Status) *cli.Command {
	return &cli.Command{
		Name:            name,
		Usage:           usage,
		UsageText:       fmt.Sprintf("task-cli %s <id>", name),
		SkipFlagParsing: true,
		ShellComplete:   TaskIDCompleter(cmd.app),
		Action: func(ctx context.Context, c *cli.Command) error {
			return cmd.run(ctx, c, status)
		},
	}
}

func (cmd *MarkCmd) run(ctx context.Context, c *cli.Command, status task.Status) error {
	ctx = logging.WithCommand(ctx, c.Name)

	if c.NArg() < 1 {
		return usageFailure(c.Name + " <id>")
	}

	id, err := validate.TaskID(c.Args().Get(0))
	if err != nil {
		return describe(err, 0)
	}

	if _, err := cmd.app.Tasks.SetStatus(ctx, id, status); err != nil {
		return describe(err, id)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Task %d marked as %s.\n", id, status)
	return nil
}
