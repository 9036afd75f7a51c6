package screens

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Render writes v as aligned plain text.
func Render(w io.Writer, v View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	p := &printer{w: tw}
	p.heading(string(v.Screen()))

	switch view := v.(type) {
	case DashboardView:
		renderDashboard(p, view)
	case CareCircleView:
		renderCareCircle(p, view)
	case ProjectsView:
		renderProjects(p, view)
	case PetBabyLogView:
		renderPetBabyLog(p, view)
	case VaultView:
		renderVault(p, view)
	case MemoriesView:
		renderMemories(p, view)
	default:
		return fmt.Errorf("rendering %T: unsupported view", v)
	}

	if p.err != nil {
		return fmt.Errorf("rendering %s: %w", v.Screen(), p.err)
	}
	return tw.Flush()
}

// printer keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) heading(title string) {
	p.line("== %s ==", title)
}

func (p *printer) section(title string, empty bool) bool {
	p.line("")
	p.line("%s", strings.ToUpper(title))
	if empty {
		p.line("  (none)")
		return false
	}
	return true
}

func renderDashboard(p *printer, v DashboardView) {
	if v.User != nil {
		p.line("Welcome back, %s.", v.User.Name)
	}
	if p.section("Schedule", len(v.CalendarEvents) == 0) {
		for _, e := range v.CalendarEvents {
			p.line("  %s\t%s\t%s\t%s\t%s", e.Day, e.Time, e.Type, e.Title, e.AssigneeName)
		}
	}
	if p.section("Wellness", len(v.WellnessLogs) == 0) {
		for _, l := range v.WellnessLogs {
			p.line("  %s\t%s\t%s\t%s", l.Timestamp, l.Category, l.AuthorName, l.Content)
		}
	}
	renderProject(p, v.Project)
	renderShopping(p, v.ShoppingList)
	if p.section("Hockey", len(v.HockeySchedule) == 0) {
		for _, g := range v.HockeySchedule {
			p.line("  %s\tvs %s\t%s", g.Date, g.Opponent, g.Location)
		}
	}
}

func renderCareCircle(p *printer, v CareCircleView) {
	if p.section("Medications", len(v.Medications) == 0) {
		for _, m := range v.Medications {
			given := "not yet given"
			if m.LastAdministeredByName != "" {
				given = fmt.Sprintf("given by %s %s", m.LastAdministeredByName, m.LastAdministeredAt)
			}
			p.line("  %s\t%s\t%s\t%s", m.Name, m.Dosage, m.Time, strings.TrimSpace(given))
		}
	}
	if p.section("Wellness", len(v.WellnessLogs) == 0) {
		for _, l := range v.WellnessLogs {
			p.line("  %s\t%s\t%s\t%s", l.Timestamp, l.Category, l.AuthorName, l.Content)
		}
	}
	if p.section("Contacts", len(v.Contacts) == 0) {
		for _, c := range v.Contacts {
			p.line("  %s\t%s\t%s", c.Name, c.Type, c.Number)
		}
	}
	if p.section("Family chat", len(v.ChatMessages) == 0) {
		for _, m := range v.ChatMessages {
			p.line("  %s\t%s\t%s", m.Timestamp, m.AuthorName, m.Content)
		}
	}
}

func renderProjects(p *printer, v ProjectsView) {
	renderProject(p, v.Project)
	if p.section("Chores", len(v.Chores) == 0) {
		for _, c := range v.Chores {
			p.line("  %s\t%s\t%s", c.Title, c.AssigneeName, c.Recurring)
		}
	}
	renderShopping(p, v.ShoppingList)
}

func renderPetBabyLog(p *printer, v PetBabyLogView) {
	if p.section("Pet log", len(v.PetLogs) == 0) {
		for _, l := range v.PetLogs {
			p.line("  %s\t%s\t%s\t%s", l.Timestamp, l.Activity, l.LoggedByName, l.Notes)
		}
	}
	title := fmt.Sprintf("Baby prep (%d/%d)", v.BabyPrepDone, len(v.BabyPrepTasks))
	if p.section(title, len(v.BabyPrepTasks) == 0) {
		for _, t := range v.BabyPrepTasks {
			p.line("  %s\t%s", checkbox(t.Completed), t.Task)
		}
	}
}

func renderVault(p *printer, v VaultView) {
	if v.Locked {
		p.line("Locked. Unlock with the family passphrase.")
		return
	}
	if p.section("Logins", len(v.Logins) == 0) {
		for _, l := range v.Logins {
			p.line("  %s\t%s", l.Service, l.Username)
		}
	}
	if p.section("Documents", len(v.Documents) == 0) {
		for _, d := range v.Documents {
			p.line("  %s\t%s", d.Name, d.Type)
		}
	}
}

func renderMemories(p *printer, v MemoriesView) {
	if !p.section(fmt.Sprintf("Memories (%s first)", v.Order), len(v.Memories) == 0) {
		return
	}
	for _, m := range v.Memories {
		p.line("  %s\t%s\t%s", m.Date, m.Prompt, m.UploadedByName)
		if m.Story != "" {
			p.line("    %s", m.Story)
		}
	}
}

func renderProject(p *printer, v ProjectRow) {
	title := fmt.Sprintf("%s (%d/%d done, lead %s)", v.Title, v.Done, len(v.Tasks), v.LeadName)
	if p.section(title, len(v.Tasks) == 0) {
		for _, t := range v.Tasks {
			p.line("  %s\t%s\t%s\t%s", t.Status, t.Title, t.AssigneeName, t.DueDate)
		}
	}
}

func renderShopping(p *printer, items []ShoppingRow) {
	if p.section("Shopping list", len(items) == 0) {
		for _, s := range items {
			p.line("  %s\t%s\t%s", s.Name, s.Category, s.AddedByName)
		}
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
