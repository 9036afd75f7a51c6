package assistant

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hearth/internal/model"
)

func TestDigestPrompt(t *testing.T) {
	t.Run("default dataset", func(t *testing.T) {
		data := model.Default(time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC))
		prompt := DigestPrompt("Gram's House", NewDigestContext(data))

		assert.Contains(t, prompt, `"Gram's House"`)
		assert.Equal(t, 3, strings.Count(sectionOf(prompt, "Upcoming Care Shifts:"), "\n- "))
		assert.Equal(t, 2, strings.Count(sectionOf(prompt, "Recent Wellness Updates:"), "- From "))
		assert.NotContains(t, prompt, "The list is all clear!")
	})

	t.Run("skips birthdays and done tasks", func(t *testing.T) {
		dc := DigestContext{
			Users: []model.User{{ID: "john", Name: "John"}},
			CalendarEvents: []model.CalendarEvent{
				{Day: "Monday", Title: "Gram's birthday", Type: model.EventBirthday},
				{Day: "Tuesday", Time: "9 AM", Title: "Walk", Type: model.EventShift, AssigneeID: "john"},
				{Day: "Wednesday", Time: "1 PM", Title: "Lunch", Type: model.EventShift},
			},
			Project: model.Project{Title: "Bathroom", Tasks: []model.Task{
				{Title: "Tile", Status: model.TaskDone},
				{Title: "Paint", Status: model.TaskToDo},
			}},
		}
		prompt := DigestPrompt("Home", dc)
		assert.NotContains(t, prompt, "birthday")
		assert.Contains(t, prompt, "- Tuesday @ 9 AM: Walk (with John)")
		assert.Contains(t, prompt, "- Wednesday @ 1 PM: Lunch (with unassigned)")
		assert.NotContains(t, prompt, "Tile")
		assert.Contains(t, prompt, "- Paint (Status: To Do)")
		assert.Contains(t, prompt, "The list is all clear!")
	})

	t.Run("unknown author", func(t *testing.T) {
		dc := DigestContext{WellnessLogs: []model.WellnessLog{{AuthorID: "ghost", Content: "Slept well"}}}
		assert.Contains(t, DigestPrompt("Home", dc), `- From Unknown: "Slept well"`)
	})
}

func sectionOf(prompt, heading string) string {
	_, rest, _ := strings.Cut(prompt, heading)
	section, _, _ := strings.Cut(rest, "\n\n")
	return section
}
