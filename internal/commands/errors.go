package commands

import (
	"errors"
	"fmt"

	"github.com/hay-kot/task-cli/internal/core/task"
	"github.com/hay-kot/task-cli/internal/core/validate"
)

// Failure is returned by command actions for outcomes reported to the user.
// Its text is printed verbatim; the cause stays reachable through errors.Is.
type Failure struct {
	Msg string
	Err error
}

func (f *Failure) Error() string { return f.Msg }

func (f *Failure) Unwrap() error { return f.Err }

// Silent reports whether there is nothing to print, as when the command has
// already written its own report.
func (f *Failure) Silent() bool { return f.Msg == "" }

func failf(format string, args ...any) error {
	return &Failure{Msg: fmt.Sprintf(format, args...)}
}

// usageFailure is the error for a command called with too few arguments.
func usageFailure(usage string) error {
	return failf("Error: usage '%s'", usage)
}

// describe turns a service error into the message shown for it. id is the
// task the command addressed, zero when there is none.
func describe(err error, id int) error {
	var msg string

	switch {
	case errors.Is(err, task.ErrNotFound):
		msg = fmt.Sprintf("Task with ID %d not found.", id)
	case errors.Is(err, task.ErrInvalidStatus):
		msg = "Error: invalid status. Use 'done', 'todo', or 'in-progress'."
	case errors.Is(err, validate.ErrDescriptionRequired):
		msg = "Error: a description is required."
	case errors.Is(err, validate.ErrInvalidID):
		msg = "Error: the ID must be a number."
	default:
		msg = "Error: " + err.Error()
	}

	return &Failure{Msg: msg, Err: err}
}
