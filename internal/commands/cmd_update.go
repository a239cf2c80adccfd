package commands

import (
	"context"
	"fmt"

	"github.com/hay-kot/task-cli/internal/core/logging"
	"github.com/hay-kot/task-cli/internal/core/validate"
	"github.com/hay-kot/task-cli/internal/taskcli"
	"github.com/urfave/cli/v3"
)

type UpdateCmd struct {
	flags *Flags
	app   *taskcli.App
}

// NewUpdateCmd creates a new update command.
func NewUpdateCmd(flags *Flags, app *taskcli.App) *UpdateCmd {
	return &UpdateCmd{flags: flags, app: app}
}

// Register adds the update command to the application.
func (cmd *UpdateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "update",
		Usage:     "Change the description of a task",
		UsageText: "task-cli update <id> <description>",
		Description: `Replaces the description of an existing task. The status is unchanged.

Examples:
  task-cli update 1 "Buy groceries and cook dinner"`,
		SkipFlagParsing: true,
		ShellComplete:   TaskIDCompleter(cmd.app),
		Action:          cmd.run,
	})
	return app
}

func (cmd *UpdateCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, c.Name)

	if c.NArg() < 2 {
		return usageFailure("update <id> <description>")
	}

	id, err := validate.TaskID(c.Args().Get(0))
	if err != nil {
		return describe(err, 0)
	}

	if _, err := cmd.app.Tasks.Update(ctx, id, c.Args().Get(1)); err != nil {
		return describe(err, id)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Task %d updated successfully.\n", id)
	return nil
}
