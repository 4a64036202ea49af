package pdi

import "time"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func tasks(done ...bool) []Task {
	out := make([]Task, 0, len(done))
	for i, d := range done {
		out = append(out, Task{ID: i + 1, Description: "task description", Completed: d})
	}
	return out
}

func sampleOptions() Options {
	return Options{Team: []TeamMember{
		{ID: "1", Name: "Michael Chen", Position: "Software Engineer"},
		{ID: "2", Name: "Sarah Williams", Position: "Product Designer"},
		{ID: "3", Name: "David Kim", Position: "Marketing Specialist"},
		{ID: "4", Name: "Jessica Rodriguez", Position: "Customer Success"},
	}}
}

func samplePlans() []Plan {
	return []Plan{
		{
			ID: 1, EmployeeID: "1",
			Employee:  Employee{Name: "Michael Chen", Position: "Software Engineer"},
			Title:     "Technical Leadership Development",
			StartDate: day(2023, time.June, 1), EndDate: day(2023, time.December, 31),
			Status: StatusActive,
			Goals: []Goal{
				{ID: 1, Title: "Improve system design skills", Tasks: tasks(true, true, true)},
				{ID: 2, Title: "Mentor junior developers", Tasks: tasks(true, false, false)},
				{ID: 3, Title: "Lead a cross-team initiative", Tasks: tasks(false, false, false)},
			},
		},
		{
			ID: 2, EmployeeID: "2",
			Employee:  Employee{Name: "Sarah Williams", Position: "Product Designer"},
			Title:     "UX Specialization and Leadership",
			StartDate: day(2023, time.July, 1), EndDate: day(2024, time.January, 31),
			Status: StatusActive,
			Goals:  []Goal{{ID: 1, Title: "Run usability studies", Tasks: tasks(true, false)}},
		},
		{
			ID: 5, EmployeeID: "5",
			Employee:  Employee{Name: "Alex Johnson", Position: "UX Researcher"},
			Title:     "Research Methodologies Mastery",
			StartDate: day(2023, time.September, 1), EndDate: day(2024, time.March, 31),
			Status: StatusDraft,
			Goals:  []Goal{{ID: 1, Title: "Learn mixed methods", Tasks: tasks(false)}},
		},
	}
}

// validValues fills every required plan field for employee 2.
func validValues() PlanValues {
	start, end := day(2026, time.November, 1), day(2027, time.May, 1)
	return PlanValues{
		Employee:  "2",
		Title:     "Design Systems Leadership",
		StartDate: &start,
		EndDate:   &end,
		Goals: []GoalValues{{
			ID:    "goal-a",
			Title: "Own the component library",
			Tasks: []TaskValues{{ID: "task-a", Description: "Audit existing components"}},
		}},
	}
}
