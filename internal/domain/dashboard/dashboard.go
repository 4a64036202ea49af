// Package dashboard assembles the landing page overview.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hrpulse/internal/domain/feedback"
	"hrpulse/internal/domain/pdi"
	"hrpulse/internal/domain/progress"
)

// StatCard is one headline number. Positive colors the change line: true
// green, false red, nil neutral.
type StatCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Icon     string `json:"icon"`
	Change   string `json:"change"`
	Positive *bool  `json:"positive"`
}

func (c StatCard) ChangeClass() string {
	switch {
	case c.Positive == nil:
		return ""
	case *c.Positive:
		return "text-emerald-500"
	}
	return "text-rose-500"
}

type Activity struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

// PlanProgress is the viewer's own development plan summary.
type PlanProgress struct {
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
	Due       time.Time `json:"due"`
	Href      string    `json:"href"`
}

// NewPlanProgress summarises a plan by its tasks, the same way the plan
// detail page does.
func NewPlanProgress(p pdi.Plan) PlanProgress {
	completed, total := p.TaskCounts()
	return PlanProgress{
		Completed: completed,
		Total:     total,
		Due:       p.EndDate,
		Href:      pdi.NewCard(p).DetailHref,
	}
}

func (p PlanProgress) Percent() int {
	return progress.Percent(p.Completed, p.Total)
}

func (p PlanProgress) Label() string {
	return fmt.Sprintf("%d/%d completed", p.Completed, p.Total)
}

// Data is the static part of the overview loaded from fixtures.
// PlanEmployee names the employee whose active plan is summarised.
type Data struct {
	Stats        []StatCard `json:"stats"`
	Activities   []Activity `json:"activities"`
	PlanEmployee string     `json:"planEmployee"`
}

// Overview is the landing page model. Plan is nil when the employee has no
// active plan.
type Overview struct {
	Stats      []StatCard      `json:"stats"`
	Upcoming   []feedback.Card `json:"upcoming"`
	Plan       *PlanProgress   `json:"plan"`
	PlanPct    int             `json:"planPercent"`
	Activities []Activity      `json:"activities"`
}

type UpcomingSource interface {
	Upcoming(ctx context.Context, limit int) ([]feedback.Session, error)
}

type PlanSource interface {
	ForEmployee(ctx context.Context, employeeID string) (pdi.Plan, error)
}

const UpcomingLimit = 2

type Service struct {
	data     Data
	upcoming UpcomingSource
	plans    PlanSource
}

func NewService(data Data, upcoming UpcomingSource, plans PlanSource) *Service {
	return &Service{data: data, upcoming: upcoming, plans: plans}
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	sessions, err := s.upcoming.Upcoming(ctx, UpcomingLimit)
	if err != nil {
		return Overview{}, fmt.Errorf("upcoming sessions: %w", err)
	}
	cards := make([]feedback.Card, 0, len(sessions))
	for _, session := range sessions {
		cards = append(cards, feedback.NewCard(session))
	}
	out := Overview{
		Stats:      append([]StatCard{}, s.data.Stats...),
		Upcoming:   cards,
		Activities: append([]Activity{}, s.data.Activities...),
	}

	plan, err := s.plans.ForEmployee(ctx, s.data.PlanEmployee)
	switch {
	case errors.Is(err, pdi.ErrPlanNotFound):
	case err != nil:
		return Overview{}, fmt.Errorf("development plan: %w", err)
	default:
		summary := NewPlanProgress(plan)
		out.Plan = &summary
		out.PlanPct = summary.Percent()
	}
	return out, nil
}
