package shared

import (
	"errors"
	"strconv"
	"strings"

	"hrpulse/internal/domain/forms"
)

// OpDefault is sent by the hidden first button of a form, which browsers
// press when the user hits Enter in a text field.
const OpDefault = "default"

// Op is the operation requested by the submit button of a server-rendered
// form, e.g. "remove-task:1:0" is Op{Name: "remove-task", Args: ["1", "0"]}.
type Op struct {
	Name string
	Args []string
}

// ParseOp splits the raw "op" form value. An empty value means submit.
func ParseOp(raw string) Op {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Op{Name: "submit"}
	}
	parts := strings.Split(raw, ":")
	return Op{Name: parts[0], Args: parts[1:]}
}

func (o Op) IsDefault() bool {
	return o.Name == OpDefault
}

// Int returns the i-th argument as an integer, or -1 when it is missing or
// malformed.
func (o Op) Int(i int) int {
	if i < 0 || i >= len(o.Args) {
		return -1
	}
	n, err := strconv.Atoi(o.Args[i])
	if err != nil {
		return -1
	}
	return n
}

// Arg returns the i-th argument verbatim.
func (o Op) Arg(i int) string {
	if i < 0 || i >= len(o.Args) {
		return ""
	}
	return o.Args[i]
}

// SubmissionCounter counts accepted and rejected form submissions.
type SubmissionCounter interface {
	RecordSubmission(form string, accepted bool)
}

// CountSubmission records the outcome of one submission on c. Errors that
// are not validation failures are not counted.
func CountSubmission(c SubmissionCounter, form string, err error) {
	if c == nil {
		return
	}
	if err == nil {
		c.RecordSubmission(form, true)
		return
	}
	var issues forms.Issues
	if errors.As(err, &issues) {
		c.RecordSubmission(form, false)
	}
}
