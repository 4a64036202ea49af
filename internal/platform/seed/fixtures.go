package seed

import (
	"fmt"

	"hrpulse/internal/domain/dashboard"
	"hrpulse/internal/domain/feedback"
	"hrpulse/internal/domain/notifications"
	"hrpulse/internal/domain/pdi"
	"hrpulse/internal/domain/profile"
)

type file struct {
	People        []person       `yaml:"people"`
	Team          []string       `yaml:"team"`
	TimeSlots     []string       `yaml:"timeSlots"`
	Locations     []string       `yaml:"locations"`
	Feedback      []session      `yaml:"feedback"`
	Plans         []plan         `yaml:"plans"`
	Profile       *profileDoc    `yaml:"profile"`
	Notifications []notification `yaml:"notifications"`
	Dashboard     dashboardDoc   `yaml:"dashboard"`
}

type person struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Email    string `yaml:"email"`
	Avatar   string `yaml:"avatar"`
}

type session struct {
	ID       int      `yaml:"id"`
	Employee string   `yaml:"employee"`
	Date     string   `yaml:"date"`
	TimeSlot string   `yaml:"timeSlot"`
	Location string   `yaml:"location"`
	Topics   []string `yaml:"topics"`
	Notes    string   `yaml:"notes"`
	Status   string   `yaml:"status"`
	Previous *struct {
		Date    string `yaml:"date"`
		Summary string `yaml:"summary"`
	} `yaml:"previousFeedback"`
	Actions []struct {
		ID     int    `yaml:"id"`
		Text   string `yaml:"text"`
		Status string `yaml:"status"`
		Due    string `yaml:"due"`
	} `yaml:"actions"`
}

type plan struct {
	ID          int    `yaml:"id"`
	Employee    string `yaml:"employee"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	StartDate   string `yaml:"startDate"`
	EndDate     string `yaml:"endDate"`
	Status      string `yaml:"status"`
	NextReview  string `yaml:"nextReview"`
	Goals       []struct {
		ID          int        `yaml:"id"`
		Title       string     `yaml:"title"`
		Description string     `yaml:"description"`
		Tasks       []pdi.Task `yaml:"tasks"`
	} `yaml:"goals"`
	Reviews []struct {
		ID      int    `yaml:"id"`
		Date    string `yaml:"date"`
		Content string `yaml:"content"`
		Author  string `yaml:"author"`
	} `yaml:"reviews"`
}

type note struct {
	Date    string `yaml:"date"`
	With    string `yaml:"with"`
	Summary string `yaml:"summary"`
}

type profileDoc struct {
	Name          string   `yaml:"name"`
	Position      string   `yaml:"position"`
	Department    string   `yaml:"department"`
	Email         string   `yaml:"email"`
	Phone         string   `yaml:"phone"`
	Location      string   `yaml:"location"`
	Avatar        string   `yaml:"avatar"`
	JoinDate      string   `yaml:"joinDate"`
	Bio           string   `yaml:"bio"`
	Skills        []string `yaml:"skills"`
	Manager       *person  `yaml:"manager"`
	DirectReports []person `yaml:"directReports"`
	Recent        []note   `yaml:"recentFeedback"`
	Upcoming      []note   `yaml:"upcomingFeedback"`
}

type notification struct {
	ID    int    `yaml:"id"`
	Type  string `yaml:"type"`
	Text  string `yaml:"text"`
	IsNew bool   `yaml:"isNew"`
}

type dashboardDoc struct {
	Stats []struct {
		Title    string `yaml:"title"`
		Value    string `yaml:"value"`
		Icon     string `yaml:"icon"`
		Change   string `yaml:"change"`
		Positive *bool  `yaml:"positive"`
	} `yaml:"stats"`
	Activities   []dashboard.Activity `yaml:"activities"`
	PlanEmployee string               `yaml:"planEmployee"`
}

func (f file) build() (*Data, error) {
	people := make(map[string]person, len(f.People))
	for _, p := range f.People {
		if _, dup := people[p.ID]; dup {
			return nil, fmt.Errorf("duplicate person id %q", p.ID)
		}
		people[p.ID] = p
	}

	feedbackStore, err := f.feedbackStore(people)
	if err != nil {
		return nil, err
	}
	planStore, err := f.planStore(people)
	if err != nil {
		return nil, err
	}
	profileStore, err := f.profileStore()
	if err != nil {
		return nil, err
	}
	items := make([]notifications.Notification, 0, len(f.Notifications))
	for _, n := range f.Notifications {
		items = append(items, notifications.Notification{ID: n.ID, Type: n.Type, Text: n.Text, IsNew: n.IsNew})
	}
	notificationStore, err := notifications.NewStore(items)
	if err != nil {
		return nil, err
	}
	dash, err := f.dashboardData(people)
	if err != nil {
		return nil, err
	}
	return &Data{
		Feedback:      feedbackStore,
		Plans:         planStore,
		Profile:       profileStore,
		Notifications: notificationStore,
		Dashboard:     dash,
	}, nil
}

func (f file) lookup(people map[string]person, id, owner string) (person, error) {
	p, ok := people[id]
	if !ok {
		return person{}, fmt.Errorf("%s: unknown employee %q", owner, id)
	}
	return p, nil
}

func (f file) feedbackStore(people map[string]person) (*feedback.Store, error) {
	opts := feedback.Options{
		TimeSlots: append([]string(nil), f.TimeSlots...),
		Locations: append([]string(nil), f.Locations...),
	}
	for _, id := range f.Team {
		p, err := f.lookup(people, id, "team")
		if err != nil {
			return nil, err
		}
		opts.Team = append(opts.Team, feedback.TeamMember{ID: p.ID, Name: p.Name, Position: p.Position})
	}

	sessions := make([]feedback.Session, 0, len(f.Feedback))
	for _, s := range f.Feedback {
		owner := fmt.Sprintf("feedback %d", s.ID)
		p, err := f.lookup(people, s.Employee, owner)
		if err != nil {
			return nil, err
		}
		date, err := parseDate(owner+" date", s.Date)
		if err != nil {
			return nil, err
		}
		session := feedback.Session{
			ID:         s.ID,
			EmployeeID: s.Employee,
			Employee:   feedback.Employee{Name: p.Name, Position: p.Position, Email: p.Email, Avatar: p.Avatar},
			Date:       date,
			TimeSlot:   s.TimeSlot,
			Location:   s.Location,
			Topics:     append([]string{}, s.Topics...),
			Notes:      s.Notes,
			Status:     feedback.Status(s.Status),
		}
		if s.Previous != nil {
			prevDate, err := parseDate(owner+" previousFeedback", s.Previous.Date)
			if err != nil {
				return nil, err
			}
			session.PreviousFeedback = &feedback.PreviousFeedback{Date: prevDate, Summary: s.Previous.Summary}
		}
		for _, a := range s.Actions {
			due, err := parseDate(owner+" action due", a.Due)
			if err != nil {
				return nil, err
			}
			session.Actions = append(session.Actions, feedback.ActionItem{
				ID: a.ID, Text: a.Text, Status: feedback.ActionStatus(a.Status), Due: due,
			})
		}
		sessions = append(sessions, session)
	}
	return feedback.NewStore(sessions, opts)
}

func (f file) planStore(people map[string]person) (*pdi.Store, error) {
	var opts pdi.Options
	for _, id := range f.Team {
		p, err := f.lookup(people, id, "team")
		if err != nil {
			return nil, err
		}
		opts.Team = append(opts.Team, pdi.TeamMember{ID: p.ID, Name: p.Name, Position: p.Position})
	}

	plans := make([]pdi.Plan, 0, len(f.Plans))
	for _, pl := range f.Plans {
		owner := fmt.Sprintf("plan %d", pl.ID)
		p, err := f.lookup(people, pl.Employee, owner)
		if err != nil {
			return nil, err
		}
		start, err := parseDate(owner+" startDate", pl.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(owner+" endDate", pl.EndDate)
		if err != nil {
			return nil, err
		}
		next, err := parseOptionalDate(owner+" nextReview", pl.NextReview)
		if err != nil {
			return nil, err
		}
		out := pdi.Plan{
			ID:          pl.ID,
			EmployeeID:  pl.Employee,
			Employee:    pdi.Employee{Name: p.Name, Position: p.Position, Email: p.Email, Avatar: p.Avatar},
			Title:       pl.Title,
			Description: pl.Description,
			StartDate:   start,
			EndDate:     end,
			Status:      pdi.Status(pl.Status),
			NextReview:  next,
		}
		for _, g := range pl.Goals {
			out.Goals = append(out.Goals, pdi.Goal{
				ID: g.ID, Title: g.Title, Description: g.Description, Tasks: append([]pdi.Task{}, g.Tasks...),
			})
		}
		for _, r := range pl.Reviews {
			date, err := parseDate(owner+" review", r.Date)
			if err != nil {
				return nil, err
			}
			out.Reviews = append(out.Reviews, pdi.ReviewNote{ID: r.ID, Date: date, Content: r.Content, Author: r.Author})
		}
		plans = append(plans, out)
	}
	return pdi.NewStore(plans, opts)
}

func (f file) profileStore() (*profile.Store, error) {
	if f.Profile == nil {
		return profile.NewStore(nil, profile.DefaultOptions()), nil
	}
	doc := f.Profile
	p := &profile.Profile{
		Name:       doc.Name,
		Position:   doc.Position,
		Department: doc.Department,
		Email:      doc.Email,
		Phone:      doc.Phone,
		Location:   doc.Location,
		Avatar:     doc.Avatar,
		Bio:        doc.Bio,
		Skills:     append([]string{}, doc.Skills...),
	}
	if doc.JoinDate != "" {
		joined, err := parseDate("profile joinDate", doc.JoinDate)
		if err != nil {
			return nil, err
		}
		p.JoinDate = joined
	}
	if doc.Manager != nil {
		p.Manager = &profile.PersonRef{Name: doc.Manager.Name, Position: doc.Manager.Position, Email: doc.Manager.Email, Avatar: doc.Manager.Avatar}
	}
	for _, r := range doc.DirectReports {
		p.DirectReports = append(p.DirectReports, profile.PersonRef{Name: r.Name, Position: r.Position, Email: r.Email, Avatar: r.Avatar})
	}
	var err error
	if p.RecentFeedback, err = notes("profile recentFeedback", doc.Recent); err != nil {
		return nil, err
	}
	if p.UpcomingFeedback, err = notes("profile upcomingFeedback", doc.Upcoming); err != nil {
		return nil, err
	}
	return profile.NewStore(p, profile.DefaultOptions()), nil
}

func notes(field string, in []note) ([]profile.SessionNote, error) {
	out := make([]profile.SessionNote, 0, len(in))
	for _, n := range in {
		date, err := parseDate(field, n.Date)
		if err != nil {
			return nil, err
		}
		out = append(out, profile.SessionNote{Date: date, With: n.With, Summary: n.Summary})
	}
	return out, nil
}

func (f file) dashboardData(people map[string]person) (dashboard.Data, error) {
	d := dashboard.Data{
		Activities:   append([]dashboard.Activity{}, f.Dashboard.Activities...),
		PlanEmployee: f.Dashboard.PlanEmployee,
	}
	for _, s := range f.Dashboard.Stats {
		d.Stats = append(d.Stats, dashboard.StatCard{Title: s.Title, Value: s.Value, Icon: s.Icon, Change: s.Change, Positive: s.Positive})
	}
	if d.PlanEmployee != "" {
		if _, err := f.lookup(people, d.PlanEmployee, "dashboard"); err != nil {
			return dashboard.Data{}, err
		}
	}
	return d, nil
}
