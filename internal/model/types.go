package model

type EventType string

const (
	EventShift    EventType = "Shift"
	EventBirthday EventType = "Birthday"
)

type LogCategory string

const (
	LogUpdate      LogCategory = "Update"
	LogEvent       LogCategory = "Event"
	LogObservation LogCategory = "Observation"
)

type ContactType string

const (
	ContactDoctor   ContactType = "Doctor"
	ContactPharmacy ContactType = "Pharmacy"
	ContactFamily   ContactType = "Family"
	ContactService  ContactType = "Service"
)

// TaskStatus is a plain classification; any status may follow any other.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

type PetActivity string

const (
	PetFed    PetActivity = "Fed"
	PetWalked PetActivity = "Walked"
	PetMeds   PetActivity = "Meds"
)

type DocumentType string

const (
	DocumentPDF   DocumentType = "PDF"
	DocumentImage DocumentType = "Image"
	DocumentText  DocumentType = "Document"
)

type GameLocation string

const (
	GameHome GameLocation = "Home"
	GameAway GameLocation = "Away"
)

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type CalendarEvent struct {
	ID         string    `json:"id"`
	Day        string    `json:"day"`
	Time       string    `json:"time,omitempty"`
	Title      string    `json:"title"`
	Type       EventType `json:"type"`
	AssigneeID string    `json:"assigneeId,omitempty"`
}

type WellnessLog struct {
	ID        string      `json:"id"`
	AuthorID  string      `json:"authorId"`
	Timestamp string      `json:"timestamp"`
	Category  LogCategory `json:"category"`
	Content   string      `json:"content"`
	ImageURL  string      `json:"imageUrl,omitempty"`
}

type Medication struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Dosage               string `json:"dosage"`
	Time                 string `json:"time"`
	LastAdministeredByID string `json:"lastAdministeredById,omitempty"`
	LastAdministeredAt   string `json:"lastAdministeredAt,omitempty"`
}

type Contact struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Number string      `json:"number"`
	Type   ContactType `json:"type"`
}

type ChatMessage struct {
	ID        string `json:"id"`
	AuthorID  string `json:"authorId"`
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssigneeID  string     `json:"assigneeId,omitempty"`
	Status      TaskStatus `json:"status"`
	DueDate     string     `json:"dueDate,omitempty"`
}

type Project struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	LeadID string `json:"leadId"`
	Tasks  []Task `json:"tasks"`
}

type Chore struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AssigneeID string `json:"assigneeId"`
	Recurring  string `json:"recurring"`
}

type ShoppingItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AddedByID string `json:"addedById"`
	Category  string `json:"category"`
}

type PetLog struct {
	ID         string      `json:"id"`
	Activity   PetActivity `json:"activity"`
	Timestamp  string      `json:"timestamp"`
	Notes      string      `json:"notes"`
	LoggedByID string      `json:"loggedById"`
}

type BabyPrepTask struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

type VaultLogin struct {
	ID       string `json:"id"`
	Service  string `json:"service"`
	Username string `json:"username"`
}

type Document struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type DocumentType `json:"type"`
}

// HockeyGame.Date is an RFC3339 timestamp.
type HockeyGame struct {
	ID       string       `json:"id"`
	Opponent string       `json:"opponent"`
	Date     string       `json:"date"`
	Location GameLocation `json:"location"`
}

type MemoryItem struct {
	ID           string `json:"id"`
	ImageURL     string `json:"imageUrl"`
	Prompt       string `json:"prompt"`
	Story        string `json:"story"`
	Date         string `json:"date"`
	UploadedByID string `json:"uploadedById"`
}
