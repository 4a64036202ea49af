package profile

import "time"

// PersonRef points at another employee shown on the profile.
type PersonRef struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// SessionNote is a feedback session summary listed on the profile.
type SessionNote struct {
	Date    time.Time `json:"date"`
	With    string    `json:"with"`
	Summary string    `json:"summary"`
}

type Profile struct {
	Name             string        `json:"name"`
	Position         string        `json:"position"`
	Department       string        `json:"department"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Location         string        `json:"location"`
	Avatar           string        `json:"avatar,omitempty"`
	JoinDate         time.Time     `json:"joinDate"`
	Bio              string        `json:"bio"`
	Skills           []string      `json:"skills"`
	Manager          *PersonRef    `json:"manager,omitempty"`
	DirectReports    []PersonRef   `json:"directReports"`
	RecentFeedback   []SessionNote `json:"recentFeedback"`
	UpcomingFeedback []SessionNote `json:"upcomingFeedback"`
}

func (p Profile) clone() Profile {
	out := p
	out.Skills = append([]string{}, p.Skills...)
	out.DirectReports = append([]PersonRef{}, p.DirectReports...)
	out.RecentFeedback = append([]SessionNote{}, p.RecentFeedback...)
	out.UpcomingFeedback = append([]SessionNote{}, p.UpcomingFeedback...)
	if p.Manager != nil {
		manager := *p.Manager
		out.Manager = &manager
	}
	return out
}

// Option is one entry of a select control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Options struct {
	Departments []Option `json:"departments"`
	Managers    []Option `json:"managers"`
}

// DefaultOptions mirrors the values accepted by the form validation tags.
func DefaultOptions() Options {
	return Options{
		Departments: []Option{
			{Value: "engineering", Label: "Engineering"},
			{Value: "design", Label: "Design"},
			{Value: "marketing", Label: "Marketing"},
			{Value: "product", Label: "Product"},
			{Value: "sales", Label: "Sales"},
			{Value: "support", Label: "Support"},
			{Value: "hr", Label: "HR"},
		},
		Managers: []Option{
			{Value: "robert-chen", Label: "Robert Chen"},
			{Value: "sarah-johnson", Label: "Sarah Johnson"},
			{Value: "david-kim", Label: "David Kim"},
		},
	}
}
