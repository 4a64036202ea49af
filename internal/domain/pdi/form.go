package pdi

import (
	"time"

	"github.com/google/uuid"

	"hrpulse/internal/domain/forms"
)

type TaskValues struct {
	ID          string `json:"id"`
	Description string `json:"description" validate:"min=3"`
	Completed   bool   `json:"completed"`
}

type GoalValues struct {
	ID          string       `json:"id"`
	Title       string       `json:"title" validate:"min=3"`
	Description string       `json:"description"`
	Tasks       []TaskValues `json:"tasks" validate:"min=1,dive"`
}

// PlanValues is the single source of truth for the plan form, goals and
// tasks included.
type PlanValues struct {
	Employee    string       `json:"employee" validate:"required"`
	Title       string       `json:"title" validate:"min=3,max=100"`
	Description string       `json:"description" validate:"max=500"`
	StartDate   *time.Time   `json:"startDate" validate:"required"`
	EndDate     *time.Time   `json:"endDate" validate:"required"`
	Goals       []GoalValues `json:"goals" validate:"min=1,dive"`
}

var planMessages = forms.Messages{
	"employee.required":           "Please select an employee",
	"title.min":                   "Title must be at least 3 characters",
	"title.max":                   "Title must be less than 100 characters",
	"description.max":             "Description should be less than 500 characters",
	"startDate.required":          "Start date is required",
	"endDate.required":            "End date is required",
	"goals.min":                   "At least one goal is required",
	"goals.title.min":             "Goal title is required",
	"goals.tasks.min":             "At least one task is required",
	"goals.tasks.description.min": "Task description is required",
}

var newID = func(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func NewTask() TaskValues {
	return TaskValues{ID: newID("task")}
}

func NewGoal() GoalValues {
	return GoalValues{ID: newID("goal"), Tasks: []TaskValues{NewTask()}}
}

func (v PlanValues) clone() PlanValues {
	out := v
	out.Goals = make([]GoalValues, len(v.Goals))
	for i, g := range v.Goals {
		g.Tasks = append([]TaskValues{}, g.Tasks...)
		out.Goals[i] = g
	}
	return out
}

// AddGoal appends an empty goal holding one empty task.
func AddGoal(v PlanValues) PlanValues {
	out := v.clone()
	out.Goals = append(out.Goals, NewGoal())
	return out
}

// RemoveGoal drops the goal at index. The last remaining goal is never
// removed.
func RemoveGoal(v PlanValues, index int) (PlanValues, bool) {
	if len(v.Goals) <= 1 || index < 0 || index >= len(v.Goals) {
		return v, false
	}
	out := v.clone()
	out.Goals = append(out.Goals[:index], out.Goals[index+1:]...)
	return out, true
}

func AddTask(v PlanValues, goal int) (PlanValues, bool) {
	if goal < 0 || goal >= len(v.Goals) {
		return v, false
	}
	out := v.clone()
	out.Goals[goal].Tasks = append(out.Goals[goal].Tasks, NewTask())
	return out, true
}

// RemoveTask drops one task of a goal. A goal always keeps at least one task.
func RemoveTask(v PlanValues, goal, task int) (PlanValues, bool) {
	if goal < 0 || goal >= len(v.Goals) {
		return v, false
	}
	tasks := v.Goals[goal].Tasks
	if len(tasks) <= 1 || task < 0 || task >= len(tasks) {
		return v, false
	}
	out := v.clone()
	t := out.Goals[goal].Tasks
	out.Goals[goal].Tasks = append(t[:task], t[task+1:]...)
	return out, true
}

// MoveGoal moves the goal at from so that it ends up at index to.
func MoveGoal(v PlanValues, from, to int) (PlanValues, bool) {
	n := len(v.Goals)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return v, false
	}
	out := v.clone()
	moved := out.Goals[from]
	out.Goals = append(out.Goals[:from], out.Goals[from+1:]...)
	out.Goals = append(out.Goals[:to], append([]GoalValues{moved}, out.Goals[to:]...)...)
	return out, true
}

// CanRemoveGoal reports whether the remove control is shown for goals.
func (v PlanValues) CanRemoveGoal() bool { return len(v.Goals) > 1 }

func (v PlanValues) CanRemoveTask(goal int) bool {
	return goal >= 0 && goal < len(v.Goals) && len(v.Goals[goal].Tasks) > 1
}

// PlanForm is the plan form state. PlanID is zero when the form creates a
// new plan.
type PlanForm struct {
	PlanID int
	Values PlanValues
}

func NewPlanForm() *PlanForm {
	return &PlanForm{Values: PlanValues{Goals: []GoalValues{NewGoal()}}}
}

// EditPlanForm prefills the form from an existing plan.
func EditPlanForm(p Plan) *PlanForm {
	start, end := p.StartDate, p.EndDate
	values := PlanValues{
		Employee:    p.EmployeeID,
		Title:       p.Title,
		Description: p.Description,
		StartDate:   &start,
		EndDate:     &end,
		Goals:       make([]GoalValues, 0, len(p.Goals)),
	}
	for _, g := range p.Goals {
		goal := GoalValues{ID: newID("goal"), Title: g.Title, Description: g.Description}
		for _, t := range g.Tasks {
			goal.Tasks = append(goal.Tasks, TaskValues{ID: newID("task"), Description: t.Description, Completed: t.Completed})
		}
		if len(goal.Tasks) == 0 {
			goal.Tasks = []TaskValues{NewTask()}
		}
		values.Goals = append(values.Goals, goal)
	}
	if len(values.Goals) == 0 {
		values.Goals = []GoalValues{NewGoal()}
	}
	return &PlanForm{PlanID: p.ID, Values: values}
}

func (f *PlanForm) IsEdit() bool { return f.PlanID > 0 }

func (f *PlanForm) AddGoal() { f.Values = AddGoal(f.Values) }

func (f *PlanForm) RemoveGoal(index int) bool {
	var ok bool
	f.Values, ok = RemoveGoal(f.Values, index)
	return ok
}

func (f *PlanForm) AddTask(goal int) bool {
	var ok bool
	f.Values, ok = AddTask(f.Values, goal)
	return ok
}

func (f *PlanForm) RemoveTask(goal, task int) bool {
	var ok bool
	f.Values, ok = RemoveTask(f.Values, goal, task)
	return ok
}

func (f *PlanForm) MoveGoal(from, to int) bool {
	var ok bool
	f.Values, ok = MoveGoal(f.Values, from, to)
	return ok
}

// Validate checks the whole form, goals and tasks included.
func (f *PlanForm) Validate(opts Options) error {
	var extra forms.Issues
	if f.Values.Employee != "" && !opts.HasMember(f.Values.Employee) {
		extra = append(extra, forms.Issue{Field: "employee", Reason: "Please select an employee"})
	}
	if f.Values.StartDate != nil && f.Values.EndDate != nil && f.Values.EndDate.Before(*f.Values.StartDate) {
		extra = append(extra, forms.Issue{Field: "endDate", Reason: "End date must be after the start date"})
	}
	var extraErr error
	if len(extra) > 0 {
		extraErr = extra
	}
	return forms.Merge(forms.Validate(f.Values, planMessages), extraErr)
}
