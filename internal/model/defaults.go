package model

import "time"

// Default returns the built-in household dataset. Hockey game dates are
// relative to now: one game started 1h38m earlier and is still in progress.
func Default(now time.Time) *AppData {
	at := func(d time.Duration) string {
		return now.Add(d).UTC().Format(time.RFC3339)
	}
	day := 24 * time.Hour

	return &AppData{
		Version: CurrentVersion,
		Users: []User{
			{ID: "gram", Name: "Gram", Avatar: avatar("gram")},
			{ID: "dale", Name: "Dale", Avatar: avatar("dale")},
			{ID: "stacey", Name: "Stacey", Avatar: avatar("stacey")},
			{ID: "john", Name: "John", Avatar: avatar("john")},
			{ID: "craig", Name: "Craig", Avatar: avatar("craig")},
			{ID: "amber", Name: "Amber", Avatar: avatar("amber")},
			{ID: "marissa", Name: "Marissa", Avatar: avatar("marissa")},
			{ID: "lisa", Name: "Lisa", Avatar: avatar("lisa")},
			{ID: "amy", Name: "Amy", Avatar: avatar("amy")},
			{ID: "shawn", Name: "Shawn", Avatar: avatar("shawn")},
			{ID: "trevor", Name: "Trevor", Avatar: avatar("trevor")},
			{ID: "kayla", Name: "Kayla", Avatar: avatar("kayla")},
			{ID: "christa", Name: "Christa", Avatar: avatar("christa")},
			{ID: "pat", Name: "Pat", Avatar: avatar("pat")},
			{ID: "joanne", Name: "Joanne", Avatar: avatar("joanne")},
		},
		CalendarEvents: []CalendarEvent{
			{ID: "1", Title: "Morning Meds", Day: "Monday", Time: "8 AM", AssigneeID: "stacey", Type: EventShift},
			{ID: "2", Title: "Lunch & Walk", Day: "Tuesday", Time: "12 PM", AssigneeID: "craig", Type: EventShift},
			{ID: "3", Title: "Dale's Birthday", Day: "Wednesday", Type: EventBirthday},
			{ID: "4", Title: "Dinner", Day: "Thursday", Time: "6 PM", AssigneeID: "john", Type: EventShift},
			{ID: "5", Title: "Breakfast", Day: "Friday", Time: "8 AM", AssigneeID: "craig", Type: EventShift},
			{ID: "6", Title: "Dr. Appointment", Day: "Wednesday", Time: "10 AM", AssigneeID: "john", Type: EventShift},
			{ID: "7", Title: "Pick up Rx", Day: "Friday", Time: "Afternoon", AssigneeID: "stacey", Type: EventShift},
			{ID: "8", Title: "Family Dinner", Day: "Sunday", Time: "6 PM", Type: EventShift},
		},
		WellnessLogs: []WellnessLog{
			{ID: "3", AuthorID: "craig", Timestamp: "Today", Category: LogObservation, Content: "Seems a little tired this afternoon."},
			{ID: "2", AuthorID: "stacey", Timestamp: "Yesterday", Category: LogUpdate, Content: "Ate well, mood is excellent. We spent some time in the garden.", ImageURL: "https://picsum.photos/seed/garden/400/200"},
			{ID: "1", AuthorID: "john", Timestamp: "2 days ago", Category: LogEvent, Content: "Gram finished her Physical Therapy today. All good!"},
		},
		Medications: []Medication{
			{ID: "1", Name: "Lisinopril", Dosage: "10mg", Time: "8:00 AM", LastAdministeredByID: "stacey", LastAdministeredAt: "Today 8:02 AM"},
			{ID: "2", Name: "Metformin", Dosage: "500mg", Time: "8:00 AM & 8:00 PM", LastAdministeredByID: "stacey", LastAdministeredAt: "Today 8:03 AM"},
			{ID: "3", Name: "Vitamin D", Dosage: "2000 IU", Time: "8:00 AM"},
		},
		Contacts: []Contact{
			{ID: "p1", Name: "Dr. Evans (GP)", Number: "555-123-4567", Type: ContactDoctor},
			{ID: "p2", Name: "Main St Pharmacy", Number: "555-987-6543", Type: ContactPharmacy},
			{ID: "p3", Name: "Stacey (Primary)", Number: "555-222-3333", Type: ContactFamily},
			{ID: "p4", Name: "John", Number: "555-444-5555", Type: ContactFamily},
			{ID: "p5", Name: "Handyman Hank", Number: "555-REP-AIRS", Type: ContactService},
		},
		ChatMessages: []ChatMessage{
			{ID: "c1", AuthorID: "stacey", Timestamp: "9:05 AM", Content: "Just a reminder, John is taking Gram to her appointment at 2 PM."},
			{ID: "c2", AuthorID: "john", Timestamp: "9:06 AM", Content: "Confirmed! I'll be there."},
			{ID: "c3", AuthorID: "craig", Timestamp: "9:10 AM", Content: "Great, thanks both. I'll make sure she has her lunch before you go."},
		},
		RenovationProject: Project{
			ID:     "reno1",
			Title:  "Bathroom Redo",
			LeadID: "stacey",
			Tasks: []Task{
				{ID: "t1", Title: "Pick up paint swatches", Description: `Get samples for "calm blue" and "sea green"`, AssigneeID: "craig", Status: TaskToDo, DueDate: "Saturday"},
				{ID: "t2", Title: "Finalize new vanity", Description: "Decide between the two options from Home Depot", AssigneeID: "stacey", Status: TaskToDo},
				{ID: "t3", Title: "Demolish old tile", Description: "Be careful with the plumbing", AssigneeID: "dale", Status: TaskInProgress},
				{ID: "t4", Title: "Purchase toilet", Description: "Model #1234 from Lowes", AssigneeID: "stacey", Status: TaskDone},
			},
		},
		Chores: []Chore{
			{ID: "c1", Title: "Take out trash & recycling", AssigneeID: "craig", Recurring: "Weekly"},
			{ID: "c2", Title: "Clean shared bathroom", AssigneeID: "stacey", Recurring: "Weekly"},
			{ID: "c3", Title: "Manage mail", AssigneeID: "dale", Recurring: "Daily"},
		},
		ShoppingList: []ShoppingItem{
			{ID: "s1", Name: "Milk", AddedByID: "craig", Category: "Groceries"},
			{ID: "s2", Name: "Paper Towels", AddedByID: "stacey", Category: "Supplies"},
			{ID: "s3", Name: "Dog food", AddedByID: "dale", Category: "Pet"},
			{ID: "s4", Name: "Ensure", AddedByID: "stacey", Category: "Gram's"},
		},
		PetLogs: []PetLog{
			{ID: "l1", Activity: PetWalked, Timestamp: "Today, 7:30 AM", Notes: "Good long walk in the park.", LoggedByID: "craig"},
			{ID: "l2", Activity: PetFed, Timestamp: "Today, 8:00 AM", Notes: "Ate all her food.", LoggedByID: "craig"},
			{ID: "l3", Activity: PetWalked, Timestamp: "Yesterday, 6:00 PM", Notes: "Short walk around the block.", LoggedByID: "dale"},
		},
		BabyPrepTasks: []BabyPrepTask{
			{ID: "h1", Task: "Assemble Crib", Completed: true},
			{ID: "h2", Task: "Baby Proof Outlets", Completed: false},
			{ID: "h3", Task: "Wash baby clothes", Completed: true},
			{ID: "h4", Task: "Install car seat", Completed: false},
		},
		VaultLogins: []VaultLogin{
			{ID: "v1", Service: "House Wi-Fi", Username: "GrammaHouse"},
			{ID: "v2", Service: "Netflix", Username: "family@email.com"},
			{ID: "v3", Service: "Electric Bill", Username: "stacey@email.com"},
			{ID: "v4", Service: "Gas Company", Username: "stacey@email.com"},
		},
		Documents: []Document{
			{ID: "d1", Name: "Gram's Insurance Card.pdf", Type: DocumentPDF},
			{ID: "d2", Name: "Stove Warranty.pdf", Type: DocumentPDF},
			{ID: "d3", Name: "Gram's Advanced Directive.docx", Type: DocumentText},
		},
		Memories: []MemoryItem{
			{
				ID:           "mem1",
				ImageURL:     "https://picsum.photos/seed/cottage/500/700",
				Prompt:       "Gram and Dale at the cottage, laughing",
				Story:        "Here's that unforgettable summer day at the cottage. Gram's laughter was so infectious as she and Dale shared stories on the porch, a perfect moment of simple joy.",
				Date:         "Summer 1998",
				UploadedByID: "stacey",
			},
			{
				ID:           "mem2",
				ImageURL:     "https://picsum.photos/seed/wedding/600/400",
				Prompt:       "Mom and Dad's wedding day",
				Story:        "A beautiful snapshot from the wedding day. The look of pure happiness on their faces says it all, the start of a wonderful journey together.",
				Date:         "June 1985",
				UploadedByID: "craig",
			},
			{
				ID:           "mem3",
				ImageURL:     "https://picsum.photos/seed/fishing/500/300",
				Prompt:       "First fishing trip",
				Story:        "Look at that concentration! This was the very first fishing trip, an early morning filled with excitement and a little bit of beginner's luck. A core memory for sure.",
				Date:         "July 2002",
				UploadedByID: "stacey",
			},
		},
		HockeySchedule: []HockeyGame{
			{ID: "g0", Opponent: "Ottawa Senators", Date: at(-(time.Hour + 38*time.Minute)), Location: GameHome},
			{ID: "g1", Opponent: "Toronto Maple Leafs", Date: at(day + 4*time.Hour + 30*time.Minute), Location: GameHome},
			{ID: "g2", Opponent: "Boston Bruins", Date: at(5*day + 2*time.Hour), Location: GameAway},
			{ID: "g3", Opponent: "Florida Panthers", Date: at(10 * day), Location: GameAway},
		},
	}
}

func avatar(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/200/200"
}
