package commands

import (
	"context"
	"fmt"

	"github.com/hay-kot/task-cli/internal/core/logging"
	"github.com/hay-kot/task-cli/internal/taskcli"
	"github.com/urfave/cli/v3"
)

type AddCmd struct {
	flags *Flags
	app   *taskcli.App
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *taskcli.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		UsageText: "task-cli add <description>",
		Description: `Adds a task with status "todo" and prints its ID.

Quote descriptions that contain spaces. Arguments after the description
are ignored.

Examples:
  task-cli add "Buy groceries"`,
		SkipFlagParsing: true,
		Action:          cmd.run,
	})
	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, c.Name)

	if c.NArg() < 1 {
		return failf("Error: a description is required.")
	}

	t, err := cmd.app.Tasks.Add(ctx, c.Args().Get(0))
	if err != nil {
		return describe(err, 0)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Task added successfully (ID: %d)\n", t.ID)
	return nil
}
