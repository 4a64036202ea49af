package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	Label string `json:"label" validate:"min=3"`
}

type sample struct {
	Name  string   `json:"name" validate:"required"`
	Email string   `json:"email" validate:"omitempty,email"`
	Tags  []string `json:"tags" validate:"min=1,dive,required"`
	Steps []step   `json:"steps" validate:"min=1,dive"`
	Notes string   `json:"notes" validate:"max=5"`
}

var sampleMessages = Messages{
	"name.required":   "Name please",
	"steps.label.min": "Step label too short",
}

func TestValidateValid(t *testing.T) {
	err := Validate(&sample{Name: "a", Tags: []string{"x"}, Steps: []step{{Label: "abc"}}}, sampleMessages)
	require.NoError(t, err)
}

func TestValidateReportsFieldPaths(t *testing.T) {
	err := Validate(&sample{
		Email: "not-an-email",
		Steps: []step{{Label: "abc"}, {Label: "x"}},
		Notes: "too long by far",
	}, sampleMessages)
	issues, ok := AsIssues(err)
	require.True(t, ok)

	assert.Equal(t, []string{"Name please"}, issues.For("name"))
	assert.Equal(t, []string{"must be a valid email address"}, issues.For("email"))
	assert.Equal(t, []string{"must contain at least 1 item(s)"}, issues.For("tags"))
	assert.Equal(t, []string{"Step label too short"}, issues.For("steps[1].label"))
	assert.Equal(t, []string{"must be at most 5 characters"}, issues.For("notes"))
	assert.False(t, issues.Has("steps[0].label"))
	assert.Contains(t, err.Error(), "name: Name please")
}

func TestMerge(t *testing.T) {
	a := Issues{{Field: "b", Reason: "x"}}
	b := Issues{{Field: "a", Reason: "y"}}

	err := Merge(nil, a, b)
	issues, ok := AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, Issues{{Field: "a", Reason: "y"}, {Field: "b", Reason: "x"}}, issues)

	assert.NoError(t, Merge(nil, nil))

	boom := errors.New("boom")
	assert.Equal(t, boom, Merge(a, boom))
}
