package pdi

import (
	"time"

	"hrpulse/internal/domain/progress"
)

type Employee struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type Goal struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Tasks       []Task `json:"tasks"`
}

func (g Goal) CompletedTasks() int {
	done := 0
	for _, t := range g.Tasks {
		if t.Completed {
			done++
		}
	}
	return done
}

// Status derives the goal state from its tasks.
func (g Goal) Status() GoalStatus {
	done := g.CompletedTasks()
	switch {
	case len(g.Tasks) > 0 && done == len(g.Tasks):
		return GoalCompleted
	case done > 0:
		return GoalInProgress
	}
	return GoalNotStarted
}

func (g Goal) Progress() int {
	return progress.Percent(g.CompletedTasks(), len(g.Tasks))
}

type ReviewNote struct {
	ID      int       `json:"id"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
}

type Plan struct {
	ID          int          `json:"id"`
	EmployeeID  string       `json:"employeeId"`
	Employee    Employee     `json:"employee"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	StartDate   time.Time    `json:"startDate"`
	EndDate     time.Time    `json:"endDate"`
	Status      Status       `json:"status"`
	Goals       []Goal       `json:"goals"`
	Reviews     []ReviewNote `json:"reviews,omitempty"`
	NextReview  *time.Time   `json:"nextReview,omitempty"`
}

func (p Plan) TaskCounts() (completed, total int) {
	for _, g := range p.Goals {
		completed += g.CompletedTasks()
		total += len(g.Tasks)
	}
	return completed, total
}

// Progress is the share of completed tasks across every goal.
func (p Plan) Progress() int {
	completed, total := p.TaskCounts()
	return progress.Percent(completed, total)
}

func (p Plan) CompletedGoals() int {
	done := 0
	for _, g := range p.Goals {
		if g.Status() == GoalCompleted {
			done++
		}
	}
	return done
}

func (p Plan) clone() Plan {
	out := p
	out.Goals = make([]Goal, len(p.Goals))
	for i, g := range p.Goals {
		g.Tasks = append([]Task{}, g.Tasks...)
		out.Goals[i] = g
	}
	out.Reviews = append([]ReviewNote(nil), p.Reviews...)
	if p.NextReview != nil {
		next := *p.NextReview
		out.NextReview = &next
	}
	return out
}
