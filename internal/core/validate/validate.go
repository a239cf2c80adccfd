// Package validate provides shared validation functions.
package validate

import (
	"errors"
	"strconv"
	"strings"

	"github.com/hay-kot/criterio"
)

var (
	// ErrDescriptionRequired is returned when a task description is blank.
	ErrDescriptionRequired = errors.New("a description is required")
	// ErrInvalidID is returned when a task ID argument is not a number.
	ErrInvalidID = errors.New("the ID must be a number")
)

// Description validates a task description is non-empty after trimming whitespace.
func Description(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// DescriptionField returns a criterio validator for task descriptions.
func DescriptionField(field, desc string) error {
	return criterio.Run(field, desc, Description)
}

// TaskID parses a task ID argument. Surrounding whitespace is ignored and
// the sign is allowed; whether the ID exists is checked elsewhere.
func TaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
