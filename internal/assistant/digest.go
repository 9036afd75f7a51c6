package assistant

import (
	"fmt"
	"strings"

	"hearth/internal/model"
)

const (
	digestShiftLimit = 3
	digestLogLimit   = 2
)

// DigestContext is the slice of household data the weekly digest covers.
type DigestContext struct {
	CalendarEvents []model.CalendarEvent
	WellnessLogs   []model.WellnessLog
	Project        model.Project
	ShoppingList   []model.ShoppingItem
	Users          []model.User
}

func NewDigestContext(d *model.AppData) DigestContext {
	return DigestContext{
		CalendarEvents: d.CalendarEvents,
		WellnessLogs:   d.WellnessLogs,
		Project:        d.RenovationProject,
		ShoppingList:   d.ShoppingList,
		Users:          d.Users,
	}
}

// DigestPrompt renders the newsletter prompt: the first three shifts, the
// two most recent wellness logs, every open project task and the whole
// shopping list.
func DigestPrompt(household string, dc DigestContext) string {
	people := &model.AppData{Users: dc.Users}

	var shifts []string
	for _, e := range dc.CalendarEvents {
		if e.Type != model.EventShift {
			continue
		}
		assignee := "unassigned"
		if e.AssigneeID != "" {
			assignee = people.UserName(e.AssigneeID)
		}
		shifts = append(shifts, fmt.Sprintf("- %s @ %s: %s (with %s)", e.Day, e.Time, e.Title, assignee))
		if len(shifts) == digestShiftLimit {
			break
		}
	}

	var logs []string
	for i, l := range dc.WellnessLogs {
		if i == digestLogLimit {
			break
		}
		logs = append(logs, fmt.Sprintf("- From %s: %q", people.UserName(l.AuthorID), l.Content))
	}

	var tasks []string
	for _, t := range dc.Project.Tasks {
		if t.Status == model.TaskDone {
			continue
		}
		tasks = append(tasks, fmt.Sprintf("- %s (Status: %s)", t.Title, t.Status))
	}

	shopping := "The list is all clear!"
	if len(dc.ShoppingList) > 0 {
		items := make([]string, 0, len(dc.ShoppingList))
		for _, s := range dc.ShoppingList {
			items = append(items, fmt.Sprintf("- %s (added by %s)", s.Name, people.UserName(s.AddedByID)))
		}
		shopping = strings.Join(items, "\n")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are the friendly voice of %q. Write a warm, concise weekly update newsletter for the family. ", household)
	b.WriteString("The tone is conversational and encouraging, like a quick check-in.\n\n")
	b.WriteString("Here's the data for this week:\n\n")
	b.WriteString("Upcoming Care Shifts:\n")
	b.WriteString(strings.Join(shifts, "\n"))
	b.WriteString("\n\nRecent Wellness Updates:\n")
	b.WriteString(strings.Join(logs, "\n"))
	fmt.Fprintf(&b, "\n\nProject Update (%s):\n", dc.Project.Title)
	b.WriteString(strings.Join(tasks, "\n"))
	b.WriteString("\n\nShared Shopping List:\n")
	b.WriteString(shopping)
	b.WriteString("\n\nInstructions:\n")
	b.WriteString("1. Start with a friendly, personal greeting.\n")
	b.WriteString("2. Summarize each section above into one easy-to-read message with short paragraphs.\n")
	b.WriteString("3. Keep it brief and positive.\n")
	b.WriteString("4. Gently highlight what's needed from the family.\n")
	b.WriteString("5. End with a warm closing.\n\n")
	b.WriteString("Use plain text and paragraphs only, with no markdown headings or bold text.")
	return b.String()
}
