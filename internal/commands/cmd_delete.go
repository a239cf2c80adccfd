package commands

import (
	"context"
	"fmt"

	"github.com/hay-kot/task-cli/internal/core/logging"
	"github.com/hay-kot/task-cli/internal/core/validate"
	"github.com/hay-kot/task-cli/internal/taskcli"
	"github.com/urfave/cli/v3"
)

type DeleteCmd struct {
	flags *Flags
	app   *taskcli.App
}

// NewDeleteCmd creates a new delete command.
func NewDeleteCmd(flags *Flags, app *taskcli.App) *DeleteCmd {
	return &DeleteCmd{flags: flags, app: app}
}

// Register adds the delete command to the application.
func (cmd *DeleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:            "delete",
		Usage:           "Delete a task",
		UsageText:       "task-cli delete <id>",
		SkipFlagParsing: true,
		ShellComplete:   TaskIDCompleter(cmd.app),
		Action:          cmd.run,
	})
	return app
}

func (cmd *DeleteCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, c.Name)

	if c.NArg() < 1 {
		return usageFailure("delete <id>")
	}

	id, err := validate.TaskID(c.Args().Get(0))
	if err != nil {
		return describe(err, 0)
	}

	if err := cmd.app.Tasks.Delete(ctx, id); err != nil {
		return describe(err, id)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Task %d deleted successfully.\n", id)
	return nil
}
