package commands

import (
	"context"
	"fmt"

	"github.com/hay-kot/task-cli/internal/core/task"
	"github.com/hay-kot/task-cli/internal/taskcli"
	"github.com/urfave/cli/v3"
)

// TaskIDCompleter returns a ShellCompleteFunc that suggests the IDs of tasks
// whose status is not done. Set it as the ShellComplete field on commands
// that take a task ID as their first argument.
//
// Once the ID has been typed nothing further is suggested.
func TaskIDCompleter(app *taskcli.App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if cmd.Args().Present() || app.Tasks == nil {
			return
		}

		list, err := app.Tasks.List(ctx, task.ListFilter{})
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, t := range list.Tasks {
			if t.Status == task.StatusDone {
				continue
			}
			_, _ = fmt.Fprintln(w, t.ID)
		}
	}
}

// StatusCompleter suggests the status names accepted by list.
func StatusCompleter(ctx context.Context, cmd *cli.Command) {
	if args := cmd.Args(); args.Present() {
		last := args.Slice()[args.Len()-1]
		if len(last) > 0 && last[0] == '-' {
			cli.DefaultCompleteWithFlags(ctx, cmd)
			return
		}
		return
	}

	w := cmd.Root().Writer
	for _, s := range task.ValidStatuses() {
		_, _ = fmt.Fprintln(w, s)
	}
}
