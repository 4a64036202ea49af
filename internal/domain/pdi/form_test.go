package pdi

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrpulse/internal/domain/forms"
)

func TestRemovingLastTaskIsRefused(t *testing.T) {
	v := validValues()
	got, ok := RemoveTask(v, 0, 0)
	assert.False(t, ok)
	assert.Len(t, got.Goals[0].Tasks, 1)
	assert.False(t, v.CanRemoveTask(0))
}

func TestRemovingLastGoalIsRefused(t *testing.T) {
	v := validValues()
	got, ok := RemoveGoal(v, 0)
	assert.False(t, ok)
	assert.Len(t, got.Goals, 1)
	assert.False(t, v.CanRemoveGoal())
}

func TestAddAndRemoveTask(t *testing.T) {
	v := validValues()
	added, ok := AddTask(v, 0)
	require.True(t, ok)
	require.Len(t, added.Goals[0].Tasks, 2)
	assert.Len(t, v.Goals[0].Tasks, 1, "input is not modified")
	assert.True(t, strings.HasPrefix(added.Goals[0].Tasks[1].ID, "task-"))
	assert.True(t, added.CanRemoveTask(0))

	removed, ok := RemoveTask(added, 0, 0)
	require.True(t, ok)
	require.Len(t, removed.Goals[0].Tasks, 1)
	assert.Equal(t, added.Goals[0].Tasks[1].ID, removed.Goals[0].Tasks[0].ID)

	_, ok = AddTask(v, 3)
	assert.False(t, ok)
}

func TestAddGoalUsesFreshIDs(t *testing.T) {
	v := AddGoal(AddGoal(validValues()))
	require.Len(t, v.Goals, 3)
	seen := map[string]bool{}
	for _, g := range v.Goals {
		assert.False(t, seen[g.ID], "duplicate goal id %s", g.ID)
		seen[g.ID] = true
		require.Len(t, g.Tasks, 1)
	}
	assert.True(t, strings.HasPrefix(v.Goals[1].ID, "goal-"))
}

func TestMoveGoal(t *testing.T) {
	v := AddGoal(AddGoal(validValues()))
	ids := []string{v.Goals[0].ID, v.Goals[1].ID, v.Goals[2].ID}

	moved, ok := MoveGoal(v, 0, 2)
	require.True(t, ok)
	assert.Equal(t, []string{ids[1], ids[2], ids[0]}, []string{moved.Goals[0].ID, moved.Goals[1].ID, moved.Goals[2].ID})
	assert.Equal(t, ids[0], v.Goals[0].ID, "input is not modified")

	back, ok := MoveGoal(moved, 2, 0)
	require.True(t, ok)
	assert.Equal(t, ids, []string{back.Goals[0].ID, back.Goals[1].ID, back.Goals[2].ID})

	_, ok = MoveGoal(v, 1, 1)
	assert.False(t, ok)
	_, ok = MoveGoal(v, 0, 5)
	assert.False(t, ok)
}

func TestFormMethodsUpdateValues(t *testing.T) {
	f := NewPlanForm()
	require.Len(t, f.Values.Goals, 1)
	assert.False(t, f.RemoveGoal(0))
	f.AddGoal()
	assert.True(t, f.AddTask(1))
	assert.True(t, f.RemoveTask(1, 0))
	assert.True(t, f.MoveGoal(1, 0))
	assert.True(t, f.RemoveGoal(1))
	assert.Len(t, f.Values.Goals, 1)
}

func TestValidatePlanForm(t *testing.T) {
	f := &PlanForm{Values: validValues()}
	require.NoError(t, f.Validate(sampleOptions()))
}

func TestValidateEmptyPlanForm(t *testing.T) {
	f := NewPlanForm()
	err := f.Validate(sampleOptions())
	issues, ok := forms.AsIssues(err)
	require.True(t, ok, "got %v", err)

	assert.Equal(t, []string{"Please select an employee"}, issues.For("employee"))
	assert.Equal(t, []string{"Title must be at least 3 characters"}, issues.For("title"))
	assert.Equal(t, []string{"Start date is required"}, issues.For("startDate"))
	assert.Equal(t, []string{"End date is required"}, issues.For("endDate"))
	assert.Equal(t, []string{"Goal title is required"}, issues.For("goals[0].title"))
	assert.Equal(t, []string{"Task description is required"}, issues.For("goals[0].tasks[0].description"))
}

func TestValidateNestedCollections(t *testing.T) {
	v := validValues()
	v.Goals = nil
	issues, ok := forms.AsIssues((&PlanForm{Values: v}).Validate(sampleOptions()))
	require.True(t, ok)
	assert.Equal(t, []string{"At least one goal is required"}, issues.For("goals"))

	v = validValues()
	v.Goals[0].Tasks = nil
	issues, ok = forms.AsIssues((&PlanForm{Values: v}).Validate(sampleOptions()))
	require.True(t, ok)
	assert.Equal(t, []string{"At least one task is required"}, issues.For("goals[0].tasks"))
}

func TestValidateLengthsAndDates(t *testing.T) {
	v := validValues()
	v.Title = strings.Repeat("t", 101)
	v.Description = strings.Repeat("d", 501)
	end := v.StartDate.AddDate(0, 0, -1)
	v.EndDate = &end
	v.Employee = "9"

	issues, ok := forms.AsIssues((&PlanForm{Values: v}).Validate(sampleOptions()))
	require.True(t, ok)
	assert.Equal(t, []string{"Title must be less than 100 characters"}, issues.For("title"))
	assert.Equal(t, []string{"Description should be less than 500 characters"}, issues.For("description"))
	assert.Equal(t, []string{"End date must be after the start date"}, issues.For("endDate"))
	assert.Equal(t, []string{"Please select an employee"}, issues.For("employee"))
}

func TestEditPlanFormPrefills(t *testing.T) {
	plan := samplePlans()[0]
	f := EditPlanForm(plan)
	assert.True(t, f.IsEdit())
	assert.Equal(t, "1", f.Values.Employee)
	assert.Equal(t, plan.Title, f.Values.Title)
	require.Len(t, f.Values.Goals, 3)
	assert.Len(t, f.Values.Goals[1].Tasks, 3)
	assert.True(t, f.Values.Goals[0].Tasks[0].Completed)
	assert.True(t, f.Values.StartDate.Equal(time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.Validate(sampleOptions()))
}
