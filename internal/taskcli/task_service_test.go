package taskcli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/task-cli/internal/core/task"
	"github.com/hay-kot/task-cli/internal/core/validate"
	"github.com/hay-kot/task-cli/internal/store/jsonfile"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore records how often Save is called.
type countingStore struct {
	task.Store
	saves   int
	saveErr error
}

func (s *countingStore) Save(ctx context.Context, c *task.Collection) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.Store.Save(ctx, c)
}

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time {
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestTaskService(t *testing.T) (*TaskService, *countingStore, *testClock, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.json")
	store := &countingStore{Store: jsonfile.NewTaskStore(path, jsonfile.Options{})}
	clock := &testClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}

	svc := NewTaskService(store, zerolog.Nop(), clock.Now)
	return svc, store, clock, path
}

func TestTaskService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential ids and persists", func(t *testing.T) {
		svc, store, _, path := newTestTaskService(t)

		for want := 1; want <= 3; want++ {
			got, err := svc.Add(ctx, "task")
			require.NoError(t, err)
			assert.Equal(t, want, got.ID)
		}
		assert.Equal(t, 3, store.saves)
		assert.FileExists(t, path)
	})

	t.Run("new task is todo with creation time", func(t *testing.T) {
		svc, _, clock, _ := newTestTaskService(t)

		got, err := svc.Add(ctx, "buy milk")
		require.NoError(t, err)

		list, err := svc.List(ctx, task.ListFilter{})
		require.NoError(t, err)
		require.Len(t, list.Tasks, 1)
		assert.Equal(t, got.ID, list.Tasks[0].ID)
		assert.Equal(t, "buy milk", list.Tasks[0].Description)
		assert.Equal(t, task.StatusTodo, list.Tasks[0].Status)
		assert.True(t, list.Tasks[0].CreatedAt.Equal(clock.Now()))
	})

	t.Run("blank description is rejected without touching the store", func(t *testing.T) {
		svc, store, _, path := newTestTaskService(t)

		_, err := svc.Add(ctx, "   ")
		require.ErrorIs(t, err, validate.ErrDescriptionRequired)
		assert.Zero(t, store.saves)
		assert.NoFileExists(t, path)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		svc, store, _, _ := newTestTaskService(t)
		store.saveErr = errors.New("disk full")

		_, err := svc.Add(ctx, "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		svc, _, _, path := newTestTaskService(t)

		list, err := svc.List(ctx, task.ListFilter{})
		require.NoError(t, err)
		assert.Empty(t, list.Tasks)
		assert.Zero(t, list.Total)
		assert.NoFileExists(t, path)
	})

	t.Run("filters by status and never saves", func(t *testing.T) {
		svc, store, _, _ := newTestTaskService(t)
		a, err := svc.Add(ctx, "a")
		require.NoError(t, err)
		_, err = svc.Add(ctx, "b")
		require.NoError(t, err)
		_, err = svc.SetStatus(ctx, a.ID, task.StatusDone)
		require.NoError(t, err)
		saves := store.saves

		done, err := svc.List(ctx, task.ListFilter{Status: task.StatusDone})
		require.NoError(t, err)
		require.Len(t, done.Tasks, 1)
		assert.Equal(t, "a", done.Tasks[0].Description)
		assert.Equal(t, 2, done.Total)

		todo, err := svc.List(ctx, task.ListFilter{Status: task.StatusTodo})
		require.NoError(t, err)
		require.Len(t, todo.Tasks, 1)
		assert.Equal(t, "b", todo.Tasks[0].Description)

		assert.Equal(t, saves, store.saves)
	})

	t.Run("invalid filter", func(t *testing.T) {
		svc, _, _, _ := newTestTaskService(t)

		_, err := svc.List(ctx, task.ListFilter{Status: "bogus"})
		require.ErrorIs(t, err, task.ErrInvalidStatus)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("changes description and updatedAt only", func(t *testing.T) {
		svc, _, clock, _ := newTestTaskService(t)
		orig, err := svc.Add(ctx, "old")
		require.NoError(t, err)
		clock.Advance(time.Minute)

		got, err := svc.Update(ctx, orig.ID, "new")
		require.NoError(t, err)
		assert.Equal(t, "new", got.Description)
		assert.Equal(t, orig.Status, got.Status)
		assert.True(t, got.CreatedAt.Equal(orig.CreatedAt.Time))
		assert.True(t, got.UpdatedAt.Equal(clock.Now()))
	})

	t.Run("missing id does not save", func(t *testing.T) {
		svc, store, _, _ := newTestTaskService(t)
		_, err := svc.Add(ctx, "a")
		require.NoError(t, err)
		saves := store.saves

		_, err = svc.Update(ctx, 9, "nope")
		require.ErrorIs(t, err, task.ErrNotFound)
		assert.Equal(t, saves, store.saves)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes task", func(t *testing.T) {
		svc, _, _, _ := newTestTaskService(t)
		a, err := svc.Add(ctx, "a")
		require.NoError(t, err)
		_, err = svc.Add(ctx, "b")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, a.ID))

		list, err := svc.List(ctx, task.ListFilter{})
		require.NoError(t, err)
		require.Len(t, list.Tasks, 1)
		assert.Equal(t, "b", list.Tasks[0].Description)
	})

	t.Run("missing id leaves file bytes unchanged", func(t *testing.T) {
		svc, store, _, path := newTestTaskService(t)
		_, err := svc.Add(ctx, "a")
		require.NoError(t, err)
		before, err := os.ReadFile(path)
		require.NoError(t, err)
		saves := store.saves

		err = svc.Delete(ctx, 42)
		require.ErrorIs(t, err, task.ErrNotFound)
		assert.Equal(t, saves, store.saves)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestTaskService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("marks and refreshes updatedAt", func(t *testing.T) {
		svc, _, clock, _ := newTestTaskService(t)
		orig, err := svc.Add(ctx, "a")
		require.NoError(t, err)
		clock.Advance(time.Hour)

		got, err := svc.SetStatus(ctx, orig.ID, task.StatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, task.StatusInProgress, got.Status)
		assert.True(t, got.UpdatedAt.Equal(clock.Now()))

		got, err = svc.SetStatus(ctx, orig.ID, task.StatusTodo)
		require.NoError(t, err)
		assert.Equal(t, task.StatusTodo, got.Status)
	})

	t.Run("missing id", func(t *testing.T) {
		svc, _, _, _ := newTestTaskService(t)

		_, err := svc.SetStatus(ctx, 1, task.StatusDone)
		require.ErrorIs(t, err, task.ErrNotFound)
	})

	t.Run("invalid status does not load", func(t *testing.T) {
		svc, store, _, _ := newTestTaskService(t)

		_, err := svc.SetStatus(ctx, 1, "blocked")
		require.ErrorIs(t, err, task.ErrInvalidStatus)
		assert.Zero(t, store.saves)
	})
}

func TestTaskService_CorruptStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	t.Run("fail policy surfaces ErrCorrupt", func(t *testing.T) {
		store := jsonfile.NewTaskStore(path, jsonfile.Options{OnCorrupt: jsonfile.CorruptFail})
		svc := NewTaskService(store, zerolog.Nop(), nil)

		_, err := svc.Add(ctx, "a")
		require.ErrorIs(t, err, jsonfile.ErrCorrupt)
	})

	t.Run("recover policy starts empty", func(t *testing.T) {
		store := jsonfile.NewTaskStore(path, jsonfile.Options{})
		svc := NewTaskService(store, zerolog.Nop(), nil)

		got, err := svc.Add(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, 1, got.ID)

		matches, err := filepath.Glob(path + ".corrupt.*")
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})
}
