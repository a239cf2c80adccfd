package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2024, 5, 1, 10, 11, 12, 0, time.UTC)
	later   = created.Add(time.Hour)
)

func TestCollection(t *testing.T) {
	t.Run("ids are assigned sequentially from one", func(t *testing.T) {
		c := NewCollection(nil)

		for want := 1; want <= 5; want++ {
			got := c.Add("task", created)
			assert.Equal(t, want, got.ID)
		}
		assert.Equal(t, 5, c.Len())
	})

	t.Run("next id follows the highest id", func(t *testing.T) {
		c := NewCollection([]Task{{ID: 7}, {ID: 3}})
		assert.Equal(t, 8, c.NextID())

		got := c.Add("after gap", created)
		assert.Equal(t, 8, got.ID)
	})

	t.Run("add sets todo status and equal timestamps", func(t *testing.T) {
		c := NewCollection(nil)

		got := c.Add("buy milk", created)
		assert.Equal(t, "buy milk", got.Description)
		assert.Equal(t, StatusTodo, got.Status)
		assert.True(t, got.CreatedAt.Equal(created))
		assert.True(t, got.UpdatedAt.Equal(created))
	})

	t.Run("update changes only description and updatedAt", func(t *testing.T) {
		c := NewCollection(nil)
		orig := c.Add("old text", created)
		_, err := c.SetStatus(orig.ID, StatusInProgress, created)
		require.NoError(t, err)

		got, err := c.Update(orig.ID, "new text", later)
		require.NoError(t, err)
		assert.Equal(t, "new text", got.Description)
		assert.Equal(t, StatusInProgress, got.Status)
		assert.True(t, got.CreatedAt.Equal(created))
		assert.True(t, got.UpdatedAt.Equal(later))

		stored, ok := c.Get(orig.ID)
		require.True(t, ok)
		assert.Equal(t, got, stored)
	})

	t.Run("update missing id", func(t *testing.T) {
		c := NewCollection(nil)
		c.Add("only", created)

		_, err := c.Update(42, "nope", later)
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, "only", c.Tasks()[0].Description)
	})

	t.Run("set status allows any transition", func(t *testing.T) {
		c := NewCollection(nil)
		orig := c.Add("cycle", created)

		for _, s := range []Status{StatusDone, StatusTodo, StatusInProgress, StatusDone} {
			got, err := c.SetStatus(orig.ID, s, later)
			require.NoError(t, err)
			assert.Equal(t, s, got.Status)
		}
	})

	t.Run("set status rejects unknown values", func(t *testing.T) {
		c := NewCollection(nil)
		orig := c.Add("x", created)

		_, err := c.SetStatus(orig.ID, Status("blocked"), later)
		require.ErrorIs(t, err, ErrInvalidStatus)

		got, _ := c.Get(orig.ID)
		assert.Equal(t, StatusTodo, got.Status)
		assert.True(t, got.UpdatedAt.Equal(created))
	})

	t.Run("delete removes task and keeps order", func(t *testing.T) {
		c := NewCollection(nil)
		c.Add("a", created)
		c.Add("b", created)
		c.Add("c", created)

		require.NoError(t, c.Delete(2))

		tasks := c.Tasks()
		require.Len(t, tasks, 2)
		assert.Equal(t, 1, tasks[0].ID)
		assert.Equal(t, 3, tasks[1].ID)

		_, ok := c.Get(2)
		assert.False(t, ok)
		got, ok := c.Get(3)
		require.True(t, ok)
		assert.Equal(t, "c", got.Description)
	})

	t.Run("delete missing id leaves collection unchanged", func(t *testing.T) {
		c := NewCollection(nil)
		c.Add("a", created)
		before := c.Tasks()

		err := c.Delete(99)
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, before, c.Tasks())
	})

	t.Run("delete removes duplicate ids", func(t *testing.T) {
		c := NewCollection([]Task{{ID: 1, Description: "first"}, {ID: 1, Description: "dup"}, {ID: 2}})

		got, ok := c.Get(1)
		require.True(t, ok)
		assert.Equal(t, "first", got.Description)

		require.NoError(t, c.Delete(1))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("list filters by status in order", func(t *testing.T) {
		c := NewCollection(nil)
		c.Add("a", created)
		b := c.Add("b", created)
		c.Add("c", created)
		d := c.Add("d", created)
		_, err := c.SetStatus(b.ID, StatusDone, later)
		require.NoError(t, err)
		_, err = c.SetStatus(d.ID, StatusDone, later)
		require.NoError(t, err)

		done := c.List(ListFilter{Status: StatusDone})
		require.Len(t, done, 2)
		assert.Equal(t, "b", done[0].Description)
		assert.Equal(t, "d", done[1].Description)

		todo := c.List(ListFilter{Status: StatusTodo})
		require.Len(t, todo, 2)
		assert.Equal(t, "a", todo[0].Description)

		assert.Len(t, c.List(ListFilter{}), 4)
		assert.Empty(t, c.List(ListFilter{Status: StatusInProgress}))
	})

	t.Run("tasks returns a copy", func(t *testing.T) {
		c := NewCollection(nil)
		c.Add("a", created)

		tasks := c.Tasks()
		tasks[0].Description = "changed"

		got, _ := c.Get(1)
		assert.Equal(t, "a", got.Description)
	})
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{input: "todo", want: StatusTodo},
		{input: "in-progress", want: StatusInProgress},
		{input: "done", want: StatusDone},
		{input: "in_progress", wantErr: true},
		{input: "DONE", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimestamp(t *testing.T) {
	t.Run("encodes rfc3339", func(t *testing.T) {
		data, err := json.Marshal(NewTimestamp(time.Date(2024, 5, 1, 10, 11, 12, 500, time.UTC)))
		require.NoError(t, err)
		assert.JSONEq(t, `"2024-05-01T10:11:12.0000005Z"`, string(data))
	})

	t.Run("decodes rfc3339", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T10:11:12+02:00"`), &ts))
		assert.True(t, ts.Equal(time.Date(2024, 5, 1, 8, 11, 12, 0, time.UTC)))
	})

	t.Run("decodes zone-less iso form in local time", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T10:11:12.123456"`), &ts))
		want := time.Date(2024, 5, 1, 10, 11, 12, 123456000, time.Local)
		assert.True(t, ts.Equal(want), "got %s", ts)
	})

	t.Run("decodes zone-less iso form without fraction", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T10:11:12"`), &ts))
		assert.True(t, ts.Equal(time.Date(2024, 5, 1, 10, 11, 12, 0, time.Local)))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
		assert.Error(t, json.Unmarshal([]byte(`12`), &ts))
	})

	t.Run("round trip is stable", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T10:11:12.123456"`), &ts))

		first, err := json.Marshal(ts)
		require.NoError(t, err)

		var again Timestamp
		require.NoError(t, json.Unmarshal(first, &again))
		second, err := json.Marshal(again)
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
	})
}
