package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/internal/model"
	"hearth/internal/validate"
)

func TestParseFile(t *testing.T) {
	data, err := ParseFile(filepath.Join("testdata", "household.yaml"))
	require.NoError(t, err)

	require.Len(t, data.Users, 2)
	assert.Equal(t, "Theo", data.UserName("theo"))
	assert.Equal(t, model.EventShift, data.CalendarEvents[0].Type)
	assert.Equal(t, "2026-03-01T10:00:00Z", data.ChatMessages[0].Timestamp)
	assert.Equal(t, "2026-04-01", data.RenovationProject.Tasks[0].DueDate)
	assert.True(t, data.BabyPrepTasks[0].Completed)
	assert.Equal(t, model.GameAway, data.HockeySchedule[0].Location)

	assert.Empty(t, validate.Run(data).Errors())
}

func TestParse(t *testing.T) {
	t.Run("json input", func(t *testing.T) {
		data, err := Parse([]byte(`{"users":[{"id":"a","name":"A","avatar":""}],"memories":[]}`))
		require.NoError(t, err)
		assert.Equal(t, "A", data.UserName("a"))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Parse([]byte("\n  \n"))
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("users: [\n"))
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("no users", func(t *testing.T) {
		_, err := Parse([]byte("chores: []\n"))
		assert.ErrorIs(t, err, ErrNoUsers)
	})

	t.Run("wrong field type", func(t *testing.T) {
		_, err := Parse([]byte("users:\n  - id: a\n    name: [not, a, name]\n"))
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidYAML))
	})
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
