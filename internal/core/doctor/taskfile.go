package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/hay-kot/task-cli/internal/store/jsonfile"
)

// TaskFileCheck verifies that the task file can be read and matches the
// expected format.
type TaskFileCheck struct {
	path string
}

// NewTaskFileCheck creates a check for the task file at path.
func NewTaskFileCheck(path string) *TaskFileCheck {
	return &TaskFileCheck{path: path}
}

func (c *TaskFileCheck) Name() string {
	return "Task file"
}

func (c *TaskFileCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		result.Items = append(result.Items, CheckItem{
			Label:  "exists",
			Status: StatusWarn,
			Detail: c.path + " not found (no tasks yet)",
		})
		return result
	}
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "readable",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "readable",
		Status: StatusPass,
		Detail: c.path,
	})

	report, err := jsonfile.Validate(data)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "format",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	if report.OK() {
		result.Items = append(result.Items, CheckItem{
			Label:  "format",
			Status: StatusPass,
			Detail: fmt.Sprintf("%d tasks", report.Tasks),
		})
		return result
	}

	for _, p := range report.Problems {
		label := p.Pointer
		if label == "" {
			label = "document"
		}
		result.Items = append(result.Items, CheckItem{
			Label:  label,
			Status: StatusFail,
			Detail: p.Message,
		})
	}

	return result
}
