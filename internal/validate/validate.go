// Package validate reports integrity problems in a household aggregate:
// references to users that do not exist, repeated ids and values outside
// the closed enumerations. Loading never rejects data; this report is how
// such problems surface.
package validate

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"hearth/internal/model"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeDanglingUser    = "dangling_user_reference"
	codeDuplicateID     = "duplicate_id"
	codeMissingID       = "missing_id"
	codeEnumInvalid     = "enum_value_invalid"
	codeBadDate         = "unparseable_date"
	codeUnknownVersion  = "unknown_version"
	codeMissingRequired = "missing_required_field"
)

type Issue struct {
	Severity   Severity `json:"severity"`
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Collection string   `json:"collection"`
	ID         string   `json:"id,omitempty"`
}

type Report struct {
	Issues []Issue `json:"issues"`
}

// Errors returns the error-severity issues.
func (r *Report) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns the warning-severity issues.
func (r *Report) Warnings() []Issue { return r.filter(SeverityWarn) }

func (r *Report) filter(s Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}

type checker struct {
	users  map[string]bool
	issues []Issue
}

func (c *checker) add(severity Severity, code, collection, id, format string, args ...any) {
	c.issues = append(c.issues, Issue{
		Severity:   severity,
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		Collection: collection,
		ID:         id,
	})
}

// user checks a required user reference.
func (c *checker) user(collection, id, field, ref string) {
	if ref == "" {
		c.add(SeverityError, codeMissingRequired, collection, id, "missing %s", field)
		return
	}
	c.optionalUser(collection, id, field, ref)
}

func (c *checker) optionalUser(collection, id, field, ref string) {
	if ref != "" && !c.users[ref] {
		c.add(SeverityError, codeDanglingUser, collection, id, "%s refers to unknown user %q", field, ref)
	}
}

func (c *checker) ids(collection string, ids []string) {
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			c.add(SeverityWarn, codeMissingID, collection, "", "entry %d has no id", i)
			continue
		}
		if seen[id] {
			c.add(SeverityError, codeDuplicateID, collection, id, "duplicate id %q", id)
		}
		seen[id] = true
	}
}

func enum[T ~string](c *checker, collection, id, field string, value T, allowed ...T) {
	if !slices.Contains(allowed, value) {
		c.add(SeverityError, codeEnumInvalid, collection, id, "invalid %s: %q", field, value)
	}
}

func idsOf[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}

// Run checks data and returns every issue found.
func Run(data *model.AppData) *Report {
	if data == nil {
		return &Report{Issues: []Issue{}}
	}
	c := &checker{users: make(map[string]bool, len(data.Users)), issues: []Issue{}}
	for _, u := range data.Users {
		c.users[u.ID] = true
	}

	if data.Version != 0 && data.Version != model.CurrentVersion {
		c.add(SeverityWarn, codeUnknownVersion, "version", "", "data version %d is newer than %d", data.Version, model.CurrentVersion)
	}

	c.ids("users", idsOf(data.Users, func(u model.User) string { return u.ID }))

	c.ids("calendarEvents", idsOf(data.CalendarEvents, func(e model.CalendarEvent) string { return e.ID }))
	for _, e := range data.CalendarEvents {
		enum(c, "calendarEvents", e.ID, "type", e.Type, model.EventShift, model.EventBirthday)
		c.optionalUser("calendarEvents", e.ID, "assigneeId", e.AssigneeID)
	}

	c.ids("wellnessLogs", idsOf(data.WellnessLogs, func(l model.WellnessLog) string { return l.ID }))
	for _, l := range data.WellnessLogs {
		enum(c, "wellnessLogs", l.ID, "category", l.Category, model.LogUpdate, model.LogEvent, model.LogObservation)
		c.user("wellnessLogs", l.ID, "authorId", l.AuthorID)
	}

	c.ids("medications", idsOf(data.Medications, func(m model.Medication) string { return m.ID }))
	for _, m := range data.Medications {
		c.optionalUser("medications", m.ID, "lastAdministeredById", m.LastAdministeredByID)
	}

	c.ids("contacts", idsOf(data.Contacts, func(ct model.Contact) string { return ct.ID }))
	for _, ct := range data.Contacts {
		enum(c, "contacts", ct.ID, "type", ct.Type, model.ContactDoctor, model.ContactPharmacy, model.ContactFamily, model.ContactService)
	}

	c.ids("chatMessages", idsOf(data.ChatMessages, func(m model.ChatMessage) string { return m.ID }))
	for _, m := range data.ChatMessages {
		c.user("chatMessages", m.ID, "authorId", m.AuthorID)
	}

	p := data.RenovationProject
	c.optionalUser("renovationProject", p.ID, "leadId", p.LeadID)
	c.ids("renovationProject.tasks", idsOf(p.Tasks, func(t model.Task) string { return t.ID }))
	for _, t := range p.Tasks {
		enum(c, "renovationProject.tasks", t.ID, "status", t.Status, model.TaskToDo, model.TaskInProgress, model.TaskDone)
		c.optionalUser("renovationProject.tasks", t.ID, "assigneeId", t.AssigneeID)
	}

	c.ids("chores", idsOf(data.Chores, func(ch model.Chore) string { return ch.ID }))
	for _, ch := range data.Chores {
		c.user("chores", ch.ID, "assigneeId", ch.AssigneeID)
	}

	c.ids("shoppingList", idsOf(data.ShoppingList, func(s model.ShoppingItem) string { return s.ID }))
	for _, s := range data.ShoppingList {
		c.user("shoppingList", s.ID, "addedById", s.AddedByID)
	}

	c.ids("petLogs", idsOf(data.PetLogs, func(l model.PetLog) string { return l.ID }))
	for _, l := range data.PetLogs {
		enum(c, "petLogs", l.ID, "activity", l.Activity, model.PetFed, model.PetWalked, model.PetMeds)
		c.user("petLogs", l.ID, "loggedById", l.LoggedByID)
	}

	c.ids("babyPrepTasks", idsOf(data.BabyPrepTasks, func(b model.BabyPrepTask) string { return b.ID }))
	c.ids("vaultLogins", idsOf(data.VaultLogins, func(v model.VaultLogin) string { return v.ID }))

	c.ids("documents", idsOf(data.Documents, func(d model.Document) string { return d.ID }))
	for _, d := range data.Documents {
		enum(c, "documents", d.ID, "type", d.Type, model.DocumentPDF, model.DocumentImage, model.DocumentText)
	}

	c.ids("memories", idsOf(data.Memories, func(m model.MemoryItem) string { return m.ID }))
	for _, m := range data.Memories {
		c.user("memories", m.ID, "uploadedById", m.UploadedByID)
	}

	c.ids("hockeySchedule", idsOf(data.HockeySchedule, func(g model.HockeyGame) string { return g.ID }))
	for _, g := range data.HockeySchedule {
		enum(c, "hockeySchedule", g.ID, "location", g.Location, model.GameHome, model.GameAway)
		if _, err := time.Parse(time.RFC3339, g.Date); err != nil {
			c.add(SeverityWarn, codeBadDate, "hockeySchedule", g.ID, "date %q is not RFC3339", g.Date)
		}
	}

	return &Report{Issues: c.issues}
}
