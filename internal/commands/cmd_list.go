package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/hay-kot/task-cli/internal/core/logging"
	"github.com/hay-kot/task-cli/internal/core/styles"
	"github.com/hay-kot/task-cli/internal/core/task"
	"github.com/hay-kot/task-cli/internal/taskcli"
	"github.com/hay-kot/task-cli/pkg/iojson"
	"github.com/urfave/cli/v3"
)

type ListCmd struct {
	flags *Flags
	app   *taskcli.App

	json bool
}

// NewListCmd creates a new list command.
func NewListCmd(flags *Flags, app *taskcli.App) *ListCmd {
	return &ListCmd{flags: flags, app: app}
}

// Register adds the list command to the application.
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Usage:     "List tasks",
		UsageText: "task-cli list [--json] [todo|in-progress|done]",
		Description: `Lists tasks in the order they were added, optionally only those with
the given status.

Examples:
  task-cli list
  task-cli list done
  task-cli list --json in-progress`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print one JSON object per task",
				Destination: &cmd.json,
			},
		},
		ShellComplete: StatusCompleter,
		Action:        cmd.run,
	})
	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, c.Name)

	var filter task.ListFilter
	if c.NArg() > 0 {
		status, err := task.ParseStatus(c.Args().Get(0))
		if err != nil {
			return describe(err, 0)
		}
		filter.Status = status
	}

	list, err := cmd.app.Tasks.List(ctx, filter)
	if err != nil {
		return describe(err, 0)
	}

	w := c.Root().Writer

	if cmd.json {
		for _, t := range list.Tasks {
			if err := iojson.WriteLine(w, t); err != nil {
				return err
			}
		}
		return nil
	}

	if list.Total == 0 {
		_, _ = fmt.Fprintln(w, "No tasks found.")
		return nil
	}

	for _, t := range list.Tasks {
		printTask(w, t)
	}

	return nil
}

func printTask(w io.Writer, t task.Task) {
	status := styles.StatusStyle(string(t.Status)).Render(string(t.Status))
	_, _ = fmt.Fprintf(w, "[ID: %d] %s - [%s]\n", t.ID, t.Description, status)
	_, _ = fmt.Fprintf(w, "   Created: %s\n", t.CreatedAt)
}
