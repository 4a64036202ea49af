package feedback

import "time"

type Employee struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// TeamMember is a selectable employee on the scheduling form.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

func (m TeamMember) Employee() Employee {
	return Employee{Name: m.Name, Position: m.Position, Email: m.Email, Avatar: m.Avatar}
}

type PreviousFeedback struct {
	Date    time.Time `json:"date"`
	Summary string    `json:"summary"`
}

type ActionItem struct {
	ID     int          `json:"id"`
	Text   string       `json:"text"`
	Status ActionStatus `json:"status"`
	Due    time.Time    `json:"due"`
}

type Session struct {
	ID               int               `json:"id"`
	EmployeeID       string            `json:"employeeId"`
	Employee         Employee          `json:"employee"`
	Date             time.Time         `json:"date"`
	TimeSlot         string            `json:"timeSlot"`
	Location         string            `json:"location"`
	Topics           []string          `json:"topics"`
	Notes            string            `json:"notes,omitempty"`
	Status           Status            `json:"status"`
	PreviousFeedback *PreviousFeedback `json:"previousFeedback,omitempty"`
	Actions          []ActionItem      `json:"actions,omitempty"`
}

func (s Session) clone() Session {
	out := s
	out.Topics = append([]string{}, s.Topics...)
	out.Actions = append([]ActionItem(nil), s.Actions...)
	if s.PreviousFeedback != nil {
		prev := *s.PreviousFeedback
		out.PreviousFeedback = &prev
	}
	return out
}

// Options are the fixed choices offered by the scheduling form.
type Options struct {
	Team      []TeamMember `json:"team"`
	TimeSlots []string     `json:"timeSlots"`
	Locations []string     `json:"locations"`
}

func (o Options) Member(id string) (TeamMember, bool) {
	for _, m := range o.Team {
		if m.ID == id {
			return m, true
		}
	}
	return TeamMember{}, false
}

func (o Options) hasTimeSlot(slot string) bool {
	for _, candidate := range o.TimeSlots {
		if candidate == slot {
			return true
		}
	}
	return false
}
