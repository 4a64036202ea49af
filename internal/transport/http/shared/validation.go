package shared

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"hrpulse/internal/domain/forms"
	"hrpulse/internal/transport/http/api"
)

type ValidationIssue = forms.Issue

// Validator collects issues found while decoding a request, before the
// domain form validation runs.
type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{
		Field:  field,
		Reason: reason,
	})
}

// Date parses an optional date. Blank values yield nil without an issue.
func (v *Validator) Date(field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil || parsed.IsZero() {
		v.Add(field, "must be a valid date in YYYY-MM-DD format")
		return nil
	}
	return &parsed
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Err returns the collected issues as a forms.Issues error, or nil.
func (v *Validator) Err() error {
	if !v.HasIssues() {
		return nil
	}
	return forms.Issues(v.Issues())
}

func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	FailValidation(w, requestID, v.Issues())
	return true
}

func FailValidation(w http.ResponseWriter, requestID string, issues []ValidationIssue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}

// FailError writes err as a validation failure when it carries field issues
// and reports whether it did.
func FailError(w http.ResponseWriter, requestID string, err error) bool {
	var issues forms.Issues
	if !errors.As(err, &issues) {
		return false
	}
	FailValidation(w, requestID, issues)
	return true
}
