// Package jsonfile implements task.Store on top of a single JSON file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hay-kot/task-cli/internal/core/task"
	"github.com/rs/zerolog"
)

// CorruptPolicy selects what Load does with a file it cannot read or parse.
type CorruptPolicy string

const (
	// CorruptRecover moves the bad file aside and starts from an empty collection.
	CorruptRecover CorruptPolicy = "recover"
	// CorruptFail returns ErrCorrupt and leaves the file alone.
	CorruptFail CorruptPolicy = "fail"
)

// IsValid returns true if the policy is a known value.
func (p CorruptPolicy) IsValid() bool {
	switch p {
	case CorruptRecover, CorruptFail:
		return true
	default:
		return false
	}
}

// ErrCorrupt is returned by Load under CorruptFail when the file cannot be read or parsed.
var ErrCorrupt = errors.New("task file is corrupt")

const indent = "    "

// Options configures a TaskStore.
type Options struct {
	// OnCorrupt defaults to CorruptRecover.
	OnCorrupt CorruptPolicy

	// Logger receives recovery warnings. The zero value discards them.
	Logger zerolog.Logger

	// Now names corrupt backups. Defaults to time.Now.
	Now func() time.Time
}

// TaskStore implements task.Store using a JSON array on disk.
type TaskStore struct {
	path      string
	onCorrupt CorruptPolicy
	log       zerolog.Logger
	now       func() time.Time
}

var _ task.Store = (*TaskStore)(nil)

// NewTaskStore creates a store for the file at path. The file is not touched
// until Load or Save is called.
func NewTaskStore(path string, opts Options) *TaskStore {
	if opts.OnCorrupt == "" {
		opts.OnCorrupt = CorruptRecover
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &TaskStore{
		path:      path,
		onCorrupt: opts.OnCorrupt,
		log:       opts.Logger.With().Str("component", "jsonfile").Logger(),
		now:       opts.Now,
	}
}

// Path returns the file backing the store.
func (s *TaskStore) Path() string {
	return s.path
}

// Load reads the task file. A missing or empty file yields an empty collection.
func (s *TaskStore) Load(ctx context.Context) (*task.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return task.NewCollection(nil), nil
		}
		return s.recoverCorrupt(ctx, fmt.Errorf("read task file: %w", err))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return task.NewCollection(nil), nil
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return s.recoverCorrupt(ctx, fmt.Errorf("parse task file: %w", err))
	}

	return task.NewCollection(tasks), nil
}

func (s *TaskStore) recoverCorrupt(ctx context.Context, cause error) (*task.Collection, error) {
	if s.onCorrupt == CorruptFail {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, s.path, cause)
	}

	backup, err := moveAside(s.path, s.now())
	if err != nil {
		s.log.Warn().Ctx(ctx).Err(cause).AnErr("backup_error", err).Str("path", s.path).
			Msg("task file unreadable and could not be moved aside, starting empty")
		return task.NewCollection(nil), nil
	}

	s.log.Warn().Ctx(ctx).Err(cause).Str("path", s.path).Str("backup", backup).
		Msg("task file unreadable, moved aside and starting empty")
	return task.NewCollection(nil), nil
}

// Save writes the collection atomically. The write is skipped when the file
// already holds the same bytes.
func (s *TaskStore) Save(ctx context.Context, c *task.Collection) error {
	data, err := Encode(c.Tasks())
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(s.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create task file dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp task file: %w", err)
	}
	name := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if err1 := tmp.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("write temp task file: %w", err)
	}

	if err := os.Rename(name, s.path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("rename task file: %w", err)
	}

	s.log.Debug().Ctx(ctx).Str("path", s.path).Int("tasks", c.Len()).Msg("saved tasks")
	return nil
}

// Encode renders tasks in the on-disk format: a JSON array indented with
// four spaces and a trailing newline. A nil slice encodes as [].
func Encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}

	return buf.Bytes(), nil
}
