package task

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no task has the requested ID.
	ErrNotFound = errors.New("task not found")
	// ErrInvalidStatus is returned for a status outside todo, in-progress, done.
	ErrInvalidStatus = errors.New("invalid status")
)

// ListFilter controls which tasks are returned by List.
type ListFilter struct {
	Status Status // empty means all statuses
}

// Store defines the interface for task collection persistence.
type Store interface {
	// Load returns the persisted collection.
	// A missing store yields an empty collection.
	Load(ctx context.Context) (*Collection, error)

	// Save replaces the persisted collection with c.
	Save(ctx context.Context, c *Collection) error
}
