// Package forms validates form value structs declared with validator tags and
// reports failures as per-field issues with human readable reasons.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Issue is one field-level validation failure. Field is the path of the
// offending value, e.g. "goals[1].tasks[0].description".
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Issues is returned as an error when a form fails validation.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, 0, len(is))
	for _, issue := range is {
		parts = append(parts, issue.Field+": "+issue.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// For returns the reasons reported for field.
func (is Issues) For(field string) []string {
	var out []string
	for _, issue := range is {
		if issue.Field == field {
			out = append(out, issue.Reason)
		}
	}
	return out
}

func (is Issues) Has(field string) bool {
	return len(is.For(field)) > 0
}

// Messages maps "<field path without indexes>.<tag>" to a reason, e.g.
// "goals.tasks.description.min".
type Messages map[string]string

var (
	validateOnce sync.Once
	validate     *validator.Validate
	indexPattern = regexp.MustCompile(`\[\d+\]`)
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks values against its struct tags. It returns nil when the
// values are valid and Issues otherwise.
func Validate(values any, messages Messages) error {
	err := engine().Struct(values)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	issues := make(Issues, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := trimRoot(fe.Namespace())
		issues = append(issues, Issue{Field: field, Reason: reason(fe, field, messages)})
	}
	return issues
}

// Merge combines validation results. Non-validation errors win.
func Merge(errs ...error) error {
	var all Issues
	for _, err := range errs {
		if err == nil {
			continue
		}
		var issues Issues
		if !errors.As(err, &issues) {
			return err
		}
		all = append(all, issues...)
	}
	if len(all) == 0 {
		return nil
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Field < all[j].Field })
	return all
}

// AsIssues extracts the issues from err, reporting false for any other error.
func AsIssues(err error) (Issues, bool) {
	var issues Issues
	if errors.As(err, &issues) {
		return issues, true
	}
	return nil, false
}

func trimRoot(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func reason(fe validator.FieldError, field string, messages Messages) string {
	key := indexPattern.ReplaceAllString(field, "") + "." + fe.Tag()
	if msg, ok := messages[key]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}
