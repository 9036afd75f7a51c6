// Package model holds the household data graph persisted as one blob.
//
// AppData is the aggregate root. Entities refer to users by id only; the
// user collection is never owned by another entity.
package model

import "slices"

// CurrentVersion is written into every persisted aggregate. Loading does not
// inspect it.
const CurrentVersion = 1

// UnknownUserName is shown for references that do not resolve.
const UnknownUserName = "Unknown"

type AppData struct {
	Version           int             `json:"version,omitempty"`
	Users             []User          `json:"users"`
	CalendarEvents    []CalendarEvent `json:"calendarEvents"`
	WellnessLogs      []WellnessLog   `json:"wellnessLogs"`
	Medications       []Medication    `json:"medications"`
	Contacts          []Contact       `json:"contacts"`
	ChatMessages      []ChatMessage   `json:"chatMessages"`
	RenovationProject Project         `json:"renovationProject"`
	Chores            []Chore         `json:"chores"`
	ShoppingList      []ShoppingItem  `json:"shoppingList"`
	PetLogs           []PetLog        `json:"petLogs"`
	BabyPrepTasks     []BabyPrepTask  `json:"babyPrepTasks"`
	VaultLogins       []VaultLogin    `json:"vaultLogins"`
	Documents         []Document      `json:"documents"`
	Memories          []MemoryItem    `json:"memories"`
	HockeySchedule    []HockeyGame    `json:"hockeySchedule"`
}

// Clone returns a deep copy. Every collection of the copy is backed by its
// own array, so appending to or editing the copy never reaches d.
func (d *AppData) Clone() *AppData {
	if d == nil {
		return nil
	}
	out := *d
	out.Users = slices.Clone(d.Users)
	out.CalendarEvents = slices.Clone(d.CalendarEvents)
	out.WellnessLogs = slices.Clone(d.WellnessLogs)
	out.Medications = slices.Clone(d.Medications)
	out.Contacts = slices.Clone(d.Contacts)
	out.ChatMessages = slices.Clone(d.ChatMessages)
	out.RenovationProject.Tasks = slices.Clone(d.RenovationProject.Tasks)
	out.Chores = slices.Clone(d.Chores)
	out.ShoppingList = slices.Clone(d.ShoppingList)
	out.PetLogs = slices.Clone(d.PetLogs)
	out.BabyPrepTasks = slices.Clone(d.BabyPrepTasks)
	out.VaultLogins = slices.Clone(d.VaultLogins)
	out.Documents = slices.Clone(d.Documents)
	out.Memories = slices.Clone(d.Memories)
	out.HockeySchedule = slices.Clone(d.HockeySchedule)
	return &out
}

// User looks up a user by id.
func (d *AppData) User(id string) (User, bool) {
	if d == nil || id == "" {
		return User{}, false
	}
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// UserName resolves id to a display name. Dangling references render as
// UnknownUserName; an empty id renders as "".
func (d *AppData) UserName(id string) string {
	if id == "" {
		return ""
	}
	if u, ok := d.User(id); ok {
		return u.Name
	}
	return UnknownUserName
}

// WithChatMessage returns a copy of d with msg appended to the chat.
func (d *AppData) WithChatMessage(msg ChatMessage) *AppData {
	out := d.Clone()
	out.ChatMessages = append(out.ChatMessages, msg)
	return out
}

// WithMemory returns a copy of d with memory placed first.
func (d *AppData) WithMemory(memory MemoryItem) *AppData {
	out := d.Clone()
	out.Memories = append([]MemoryItem{memory}, out.Memories...)
	return out
}
