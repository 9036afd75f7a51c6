package screens

import (
	"slices"

	"hearth/internal/model"
)

func Dashboard(user *model.User, d *model.AppData) DashboardView {
	return DashboardView{
		User:           user,
		CalendarEvents: eventRows(d),
		WellnessLogs:   logRows(d),
		Project:        projectRow(d),
		ShoppingList:   shoppingRows(d),
		HockeySchedule: slices.Clone(d.HockeySchedule),
	}
}

func CareCircle(d *model.AppData) CareCircleView {
	meds := make([]MedicationRow, 0, len(d.Medications))
	for _, m := range d.Medications {
		meds = append(meds, MedicationRow{Medication: m, LastAdministeredByName: d.UserName(m.LastAdministeredByID)})
	}
	chat := make([]ChatRow, 0, len(d.ChatMessages))
	for _, m := range d.ChatMessages {
		chat = append(chat, ChatRow{ChatMessage: m, AuthorName: d.UserName(m.AuthorID)})
	}
	return CareCircleView{
		Medications:  meds,
		WellnessLogs: logRows(d),
		Contacts:     slices.Clone(d.Contacts),
		ChatMessages: chat,
		Users:        slices.Clone(d.Users),
	}
}

func Projects(d *model.AppData) ProjectsView {
	chores := make([]ChoreRow, 0, len(d.Chores))
	for _, c := range d.Chores {
		chores = append(chores, ChoreRow{Chore: c, AssigneeName: d.UserName(c.AssigneeID)})
	}
	return ProjectsView{
		Project:      projectRow(d),
		Chores:       chores,
		ShoppingList: shoppingRows(d),
	}
}

func PetBabyLog(d *model.AppData) PetBabyLogView {
	logs := make([]PetLogRow, 0, len(d.PetLogs))
	for _, l := range d.PetLogs {
		logs = append(logs, PetLogRow{PetLog: l, LoggedByName: d.UserName(l.LoggedByID)})
	}
	done := 0
	for _, t := range d.BabyPrepTasks {
		if t.Completed {
			done++
		}
	}
	return PetBabyLogView{
		PetLogs:       logs,
		BabyPrepTasks: slices.Clone(d.BabyPrepTasks),
		BabyPrepDone:  done,
	}
}

func Vault(unlocked bool, d *model.AppData) VaultView {
	if !unlocked {
		return VaultView{Locked: true}
	}
	return VaultView{
		Logins:    slices.Clone(d.VaultLogins),
		Documents: slices.Clone(d.Documents),
	}
}

func Memories(order model.MemoryOrder, d *model.AppData) MemoriesView {
	if order == "" {
		order = model.NewestFirst
	}
	items := model.OrderMemories(d.Memories, order)
	rows := make([]MemoryRow, 0, len(items))
	for _, m := range items {
		rows = append(rows, MemoryRow{MemoryItem: m, UploadedByName: d.UserName(m.UploadedByID)})
	}
	return MemoriesView{Order: order, Memories: rows}
}

func eventRows(d *model.AppData) []EventRow {
	rows := make([]EventRow, 0, len(d.CalendarEvents))
	for _, e := range d.CalendarEvents {
		rows = append(rows, EventRow{CalendarEvent: e, AssigneeName: d.UserName(e.AssigneeID)})
	}
	return rows
}

func logRows(d *model.AppData) []LogRow {
	rows := make([]LogRow, 0, len(d.WellnessLogs))
	for _, l := range d.WellnessLogs {
		rows = append(rows, LogRow{WellnessLog: l, AuthorName: d.UserName(l.AuthorID)})
	}
	return rows
}

func shoppingRows(d *model.AppData) []ShoppingRow {
	rows := make([]ShoppingRow, 0, len(d.ShoppingList))
	for _, s := range d.ShoppingList {
		rows = append(rows, ShoppingRow{ShoppingItem: s, AddedByName: d.UserName(s.AddedByID)})
	}
	return rows
}

func projectRow(d *model.AppData) ProjectRow {
	p := d.RenovationProject
	row := ProjectRow{
		ID:       p.ID,
		Title:    p.Title,
		LeadName: d.UserName(p.LeadID),
		Tasks:    make([]TaskRow, 0, len(p.Tasks)),
	}
	for _, t := range p.Tasks {
		row.Tasks = append(row.Tasks, TaskRow{Task: t, AssigneeName: d.UserName(t.AssigneeID)})
		if t.Status == model.TaskDone {
			row.Done++
		}
	}
	return row
}
