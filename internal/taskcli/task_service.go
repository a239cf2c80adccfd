package taskcli

import (
	"context"
	"fmt"
	"time"

	"github.com/hay-kot/task-cli/internal/core/task"
	"github.com/hay-kot/task-cli/internal/core/validate"
	"github.com/rs/zerolog"
)

// TaskService runs task operations against a task.Store. Every call is one
// load, mutate, save cycle; nothing is cached between calls.
type TaskService struct {
	store task.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewTaskService creates a new TaskService. A nil now uses time.Now.
func NewTaskService(store task.Store, log zerolog.Logger, now func() time.Time) *TaskService {
	if now == nil {
		now = time.Now
	}

	return &TaskService{
		store: store,
		log:   log.With().Str("component", "task-service").Logger(),
		now:   now,
	}
}

// TaskList is the result of a List call.
type TaskList struct {
	Tasks []task.Task // tasks matching the filter, in collection order
	Total int         // tasks in the store before filtering
}

// Add creates a todo task with the next free ID.
func (s *TaskService) Add(ctx context.Context, description string) (task.Task, error) {
	if err := validate.Description(description); err != nil {
		return task.Task{}, err
	}

	c, err := s.store.Load(ctx)
	if err != nil {
		return task.Task{}, fmt.Errorf("load tasks: %w", err)
	}

	t := c.Add(description, s.now())

	if err := s.store.Save(ctx, c); err != nil {
		return task.Task{}, fmt.Errorf("save tasks: %w", err)
	}

	s.log.Debug().Ctx(ctx).Int("id", t.ID).Msg("task added")
	return t, nil
}

// List returns the tasks matching filter. It never writes to the store.
func (s *TaskService) List(ctx context.Context, filter task.ListFilter) (TaskList, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return TaskList{}, fmt.Errorf("%w: %q", task.ErrInvalidStatus, filter.Status)
	}

	c, err := s.store.Load(ctx)
	if err != nil {
		return TaskList{}, fmt.Errorf("load tasks: %w", err)
	}

	return TaskList{
		Tasks: c.List(filter),
		Total: c.Len(),
	}, nil
}

// Update replaces the description of an existing task.
func (s *TaskService) Update(ctx context.Context, id int, description string) (task.Task, error) {
	if err := validate.Description(description); err != nil {
		return task.Task{}, err
	}

	c, err := s.store.Load(ctx)
	if err != nil {
		return task.Task{}, fmt.Errorf("load tasks: %w", err)
	}

	t, err := c.Update(id, description, s.now())
	if err != nil {
		return task.Task{}, err
	}

	if err := s.store.Save(ctx, c); err != nil {
		return task.Task{}, fmt.Errorf("save tasks: %w", err)
	}

	s.log.Debug().Ctx(ctx).Int("id", id).Msg("task updated")
	return t, nil
}

// Delete removes a task. The store is only written when a task was removed.
func (s *TaskService) Delete(ctx context.Context, id int) error {
	c, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	if err := c.Delete(id); err != nil {
		return err
	}

	if err := s.store.Save(ctx, c); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	s.log.Debug().Ctx(ctx).Int("id", id).Msg("task deleted")
	return nil
}

// SetStatus moves a task to status. Any status may follow any other.
func (s *TaskService) SetStatus(ctx context.Context, id int, status task.Status) (task.Task, error) {
	if !status.IsValid() {
		return task.Task{}, fmt.Errorf("%w: %q", task.ErrInvalidStatus, status)
	}

	c, err := s.store.Load(ctx)
	if err != nil {
		return task.Task{}, fmt.Errorf("load tasks: %w", err)
	}

	t, err := c.SetStatus(id, status, s.now())
	if err != nil {
		return task.Task{}, err
	}

	if err := s.store.Save(ctx, c); err != nil {
		return task.Task{}, fmt.Errorf("save tasks: %w", err)
	}

	s.log.Debug().Ctx(ctx).Int("id", id).Str("status", string(status)).Msg("task status changed")
	return t, nil
}
