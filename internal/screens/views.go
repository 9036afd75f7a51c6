// Package screens defines the read-only data slice each screen receives and
// renders it as text. User references are resolved to display names here;
// a reference to a missing user shows model.UnknownUserName.
package screens

import "hearth/internal/model"

// View is the data handed to one screen.
type View interface {
	Screen() model.Screen
}

type EventRow struct {
	model.CalendarEvent
	AssigneeName string `json:"assigneeName,omitempty"`
}

type LogRow struct {
	model.WellnessLog
	AuthorName string `json:"authorName"`
}

type MedicationRow struct {
	model.Medication
	LastAdministeredByName string `json:"lastAdministeredByName,omitempty"`
}

type ChatRow struct {
	model.ChatMessage
	AuthorName string `json:"authorName"`
}

type TaskRow struct {
	model.Task
	AssigneeName string `json:"assigneeName,omitempty"`
}

type ProjectRow struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	LeadName string    `json:"leadName"`
	Tasks    []TaskRow `json:"tasks"`
	Done     int       `json:"done"`
}

type ChoreRow struct {
	model.Chore
	AssigneeName string `json:"assigneeName"`
}

type ShoppingRow struct {
	model.ShoppingItem
	AddedByName string `json:"addedByName"`
}

type PetLogRow struct {
	model.PetLog
	LoggedByName string `json:"loggedByName"`
}

type MemoryRow struct {
	model.MemoryItem
	UploadedByName string `json:"uploadedByName"`
}

type DashboardView struct {
	User           *model.User        `json:"user,omitempty"`
	CalendarEvents []EventRow         `json:"calendarEvents"`
	WellnessLogs   []LogRow           `json:"wellnessLogs"`
	Project        ProjectRow         `json:"project"`
	ShoppingList   []ShoppingRow      `json:"shoppingList"`
	HockeySchedule []model.HockeyGame `json:"hockeySchedule"`
}

type CareCircleView struct {
	Medications  []MedicationRow `json:"medications"`
	WellnessLogs []LogRow        `json:"wellnessLogs"`
	Contacts     []model.Contact `json:"contacts"`
	ChatMessages []ChatRow       `json:"chatMessages"`
	Users        []model.User    `json:"users"`
}

type ProjectsView struct {
	Project      ProjectRow    `json:"project"`
	Chores       []ChoreRow    `json:"chores"`
	ShoppingList []ShoppingRow `json:"shoppingList"`
}

type PetBabyLogView struct {
	PetLogs       []PetLogRow          `json:"petLogs"`
	BabyPrepTasks []model.BabyPrepTask `json:"babyPrepTasks"`
	BabyPrepDone  int                  `json:"babyPrepDone"`
}

// VaultView holds no entries while locked.
type VaultView struct {
	Locked    bool               `json:"locked"`
	Logins    []model.VaultLogin `json:"logins,omitempty"`
	Documents []model.Document   `json:"documents,omitempty"`
}

type MemoriesView struct {
	Order    model.MemoryOrder `json:"order"`
	Memories []MemoryRow       `json:"memories"`
}

func (DashboardView) Screen() model.Screen  { return model.ScreenDashboard }
func (CareCircleView) Screen() model.Screen { return model.ScreenCareCircle }
func (ProjectsView) Screen() model.Screen   { return model.ScreenProjects }
func (PetBabyLogView) Screen() model.Screen { return model.ScreenPetBabyLog }
func (VaultView) Screen() model.Screen      { return model.ScreenVault }
func (MemoriesView) Screen() model.Screen   { return model.ScreenMemories }
