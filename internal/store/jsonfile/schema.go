package jsonfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hay-kot/task-cli/internal/core/task"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/tasks.schema.json
var taskSchemaJSON string

const taskSchemaURL = "tasks.schema.json"

// Problem describes one way a task file departs from the expected format.
type Problem struct {
	Pointer string `json:"pointer,omitempty"` // JSON pointer into the document, empty for the root
	Message string `json:"message"`
}

func (p Problem) String() string {
	if p.Pointer == "" {
		return p.Message
	}
	return p.Pointer + ": " + p.Message
}

// Report is the outcome of validating a task file.
type Report struct {
	Tasks    int       `json:"tasks"`
	Problems []Problem `json:"problems,omitempty"`
}

// OK reports whether no problems were found.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

var compileTaskSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(taskSchemaURL, strings.NewReader(taskSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(taskSchemaURL)
})

// Validate checks raw task file contents against the embedded schema, then
// looks for duplicate ids and timestamps Load would reject. Empty input is
// valid and holds no tasks. The error is non-nil only when validation itself
// could not run.
func Validate(data []byte) (Report, error) {
	schema, err := compileTaskSchema()
	if err != nil {
		return Report{}, fmt.Errorf("compile task schema: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Report{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Report{Problems: []Problem{{Message: fmt.Sprintf("invalid JSON: %v", err)}}}, nil
	}

	var report Report
	items, _ := doc.([]any)
	report.Tasks = len(items)

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return report, fmt.Errorf("validate task file: %w", err)
		}
		collectSchemaProblems(ve, &report.Problems)
	}

	report.Problems = append(report.Problems, checkRecords(items)...)
	return report, nil
}

// collectSchemaProblems flattens a validation error tree into its leaves.
func collectSchemaProblems(err *jsonschema.ValidationError, out *[]Problem) {
	if len(err.Causes) == 0 {
		*out = append(*out, Problem{Pointer: err.InstanceLocation, Message: err.Message})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaProblems(cause, out)
	}
}

func checkRecords(items []any) []Problem {
	var problems []Problem
	seen := make(map[string]int, len(items))

	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}

		if id, ok := record["id"].(json.Number); ok {
			if first, dup := seen[id.String()]; dup {
				problems = append(problems, Problem{
					Pointer: fmt.Sprintf("/%d/id", i),
					Message: fmt.Sprintf("duplicate id %s (first used at /%d)", id, first),
				})
			} else {
				seen[id.String()] = i
			}
		}

		for _, key := range []string{"createdAt", "updatedAt"} {
			raw, ok := record[key].(string)
			if !ok {
				continue
			}
			quoted, _ := json.Marshal(raw)
			var ts task.Timestamp
			if err := ts.UnmarshalJSON(quoted); err != nil {
				problems = append(problems, Problem{
					Pointer: fmt.Sprintf("/%d/%s", i, key),
					Message: err.Error(),
				})
			}
		}
	}

	return problems
}
