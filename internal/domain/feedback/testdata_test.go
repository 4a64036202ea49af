package feedback

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleOptions() Options {
	return Options{
		Team: []TeamMember{
			{ID: "1", Name: "Michael Chen", Position: "Software Engineer"},
			{ID: "2", Name: "Sarah Williams", Position: "Product Designer"},
			{ID: "3", Name: "David Kim", Position: "Marketing Specialist"},
			{ID: "4", Name: "Jessica Rodriguez", Position: "Customer Success"},
		},
		TimeSlots: []string{
			"9:00 AM - 10:00 AM",
			"10:30 AM - 11:30 AM",
			"1:00 PM - 2:00 PM",
		},
		Locations: []string{"Meeting Room 1", "Meeting Room 3", "Virtual (Zoom)"},
	}
}

func sampleSessions() []Session {
	return []Session{
		{
			ID: 1, EmployeeID: "1", Employee: Employee{Name: "Michael Chen", Position: "Software Engineer"},
			Date: day(2023, time.November, 15), TimeSlot: "10:30 AM - 11:30 AM", Location: "Meeting Room 1",
			Topics: []string{"Performance review", "Current projects"}, Status: StatusScheduled,
			Actions: []ActionItem{{ID: 1, Text: "Complete React certification", Status: ActionInProgress, Due: day(2023, time.July, 30)}},
		},
		{
			ID: 2, EmployeeID: "2", Employee: Employee{Name: "Sarah Williams", Position: "Product Designer"},
			Date: day(2023, time.November, 18), TimeSlot: "2:30 PM - 3:30 PM", Location: "Virtual (Zoom)",
			Topics: []string{"Design systems"}, Status: StatusScheduled,
		},
		{
			ID: 3, EmployeeID: "3", Employee: Employee{Name: "David Kim", Position: "Marketing Specialist"},
			Date: day(2023, time.November, 10), TimeSlot: "9:00 AM - 10:00 AM", Location: "Coffee Shop",
			Topics: []string{"Campaign performance"}, Status: StatusCompleted,
		},
		{
			ID: 4, EmployeeID: "4", Employee: Employee{Name: "Jessica Rodriguez", Position: "Customer Success"},
			Date: day(2023, time.November, 22), TimeSlot: "1:00 PM - 2:00 PM", Location: "Meeting Room 3",
			Topics: []string{"Client relationships"}, Status: StatusScheduled,
		},
	}
}
