// Package task defines the task domain model and the pure operations that
// mutate a task collection.
package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus converts user input into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// Task is a single trackable unit of work.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

// legacyLayout is the zone-less ISO-8601 form found in older task files.
// Fractional seconds are accepted when parsing even though the layout omits them.
const legacyLayout = "2006-01-02T15:04:05"

// Timestamp is a time.Time that encodes as RFC 3339 and also decodes the
// zone-less ISO-8601 form, interpreted in local time.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}

	if raw == "" {
		ts.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		ts.Time = t
		return nil
	}

	t, err := time.ParseInLocation(legacyLayout, raw, time.Local)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	ts.Time = t
	return nil
}

// String formats the timestamp for display.
func (ts Timestamp) String() string {
	return ts.Time.Format(time.RFC3339)
}
