package task

import (
	"fmt"
	"time"
)

// Collection is an ordered set of tasks, kept in insertion order and
// indexed by ID.
type Collection struct {
	tasks []Task
	index map[int]int // id -> position of the first task with that id
	maxID int
}

// NewCollection builds a collection from tasks in the given order.
// The slice is copied.
func NewCollection(tasks []Task) *Collection {
	c := &Collection{tasks: make([]Task, len(tasks))}
	copy(c.tasks, tasks)
	c.reindex()
	return c
}

func (c *Collection) reindex() {
	c.index = make(map[int]int, len(c.tasks))
	c.maxID = 0
	for i, t := range c.tasks {
		if _, ok := c.index[t.ID]; !ok {
			c.index[t.ID] = i
		}
		if t.ID > c.maxID {
			c.maxID = t.ID
		}
	}
}

// Len returns the number of tasks.
func (c *Collection) Len() int {
	return len(c.tasks)
}

// Tasks returns a copy of the tasks in collection order.
func (c *Collection) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// NextID returns the ID the next added task will receive: one past the
// highest ID in the collection, or 1 when it is empty.
func (c *Collection) NextID() int {
	return c.maxID + 1
}

// Get returns the task with the given ID.
func (c *Collection) Get(id int) (Task, bool) {
	i, ok := c.index[id]
	if !ok {
		return Task{}, false
	}
	return c.tasks[i], true
}

// Add appends a new todo task and returns it.
func (c *Collection) Add(description string, now time.Time) Task {
	ts := NewTimestamp(now)
	t := Task{
		ID:          c.NextID(),
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	c.index[t.ID] = len(c.tasks)
	c.tasks = append(c.tasks, t)
	c.maxID = t.ID
	return t
}

// Update replaces the description of the task with the given ID.
func (c *Collection) Update(id int, description string, now time.Time) (Task, error) {
	return c.mutate(id, now, func(t *Task) {
		t.Description = description
	})
}

// SetStatus changes the status of the task with the given ID. Any status may
// follow any other.
func (c *Collection) SetStatus(id int, status Status, now time.Time) (Task, error) {
	if !status.IsValid() {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return c.mutate(id, now, func(t *Task) {
		t.Status = status
	})
}

func (c *Collection) mutate(id int, now time.Time, fn func(t *Task)) (Task, error) {
	i, ok := c.index[id]
	if !ok {
		return Task{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	fn(&c.tasks[i])
	c.tasks[i].UpdatedAt = NewTimestamp(now)
	return c.tasks[i], nil
}

// Delete removes every task with the given ID.
func (c *Collection) Delete(id int) error {
	if _, ok := c.index[id]; !ok {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	kept := c.tasks[:0]
	for _, t := range c.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	c.tasks = kept
	c.reindex()
	return nil
}

// List returns the tasks matching filter in collection order.
func (c *Collection) List(filter ListFilter) []Task {
	out := make([]Task, 0, len(c.tasks))
	for _, t := range c.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out
}
