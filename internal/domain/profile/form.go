package profile

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"hrpulse/internal/domain/forms"
)

const BioMaxLength = 500

type Values struct {
	Name       string     `json:"name" validate:"required"`
	Position   string     `json:"position" validate:"max=100"`
	Email      string     `json:"email" validate:"omitempty,email"`
	Phone      string     `json:"phone" validate:"max=30"`
	Department string     `json:"department" validate:"omitempty,oneof=engineering design marketing product sales support hr"`
	Location   string     `json:"location" validate:"max=100"`
	Bio        string     `json:"bio" validate:"max=500"`
	Skills     []string   `json:"skills" validate:"dive,max=50"`
	Manager    string     `json:"manager" validate:"omitempty,oneof=robert-chen sarah-johnson david-kim"`
	StartDate  *time.Time `json:"startDate"`
}

var messages = forms.Messages{
	"name.required":    "Name is required",
	"email.email":      "Please enter a valid email address",
	"department.oneof": "Please select a department",
	"manager.oneof":    "Please select your manager",
	"bio.max":          "Bio should be less than 500 characters",
	"skills.max":       "Skills must be less than 50 characters each",
}

// ParseSkills splits a comma separated list into an ordered set. Blank
// entries are dropped and later case-insensitive duplicates are ignored.
func ParseSkills(raw string) []string {
	fold := cases.Fold()
	seen := make(map[string]bool)
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		key := fold.String(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skill)
	}
	return out
}

// FormatSkills is the inverse of ParseSkills for prefilling the form.
func FormatSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

type Form struct {
	Values Values
}

// EditForm prefills the form from the current profile. Department and
// manager are matched against the option labels.
func EditForm(p Profile, opts Options) *Form {
	values := Values{
		Name:     p.Name,
		Position: p.Position,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
		Bio:      p.Bio,
		Skills:   append([]string{}, p.Skills...),
	}
	values.Department = matchOption(opts.Departments, p.Department)
	if p.Manager != nil {
		values.Manager = matchOption(opts.Managers, p.Manager.Name)
	}
	if !p.JoinDate.IsZero() {
		start := p.JoinDate
		values.StartDate = &start
	}
	return &Form{Values: values}
}

func matchOption(options []Option, label string) string {
	for _, o := range options {
		if strings.EqualFold(o.Label, label) || strings.EqualFold(o.Value, label) {
			return o.Value
		}
	}
	return ""
}

func (f *Form) Validate() error {
	return forms.Validate(f.Values, messages)
}
