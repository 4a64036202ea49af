// Package seed loads the demonstration data from YAML fixtures into the
// in-memory stores. Fixtures are checked against a JSON Schema first.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"hrpulse/internal/domain/dashboard"
	"hrpulse/internal/domain/feedback"
	"hrpulse/internal/domain/notifications"
	"hrpulse/internal/domain/pdi"
	"hrpulse/internal/domain/profile"
)

//go:embed fixtures.yaml
var embeddedFixtures []byte

//go:embed schema.json
var schema []byte

const dateLayout = "2006-01-02"

// Data holds the stores built from one fixture document.
type Data struct {
	Feedback      *feedback.Store
	Plans         *pdi.Store
	Profile       *profile.Store
	Notifications *notifications.Store
	Dashboard     dashboard.Data
}

// FieldError is one schema violation.
type FieldError struct {
	Field   string
	Message string
}

// SchemaError lists every schema violation found in a fixture document.
type SchemaError struct {
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("fixtures do not match schema:")
	for _, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %s: %s", fe.Field, fe.Message)
	}
	return sb.String()
}

// Embedded returns the fixture document compiled into the binary.
func Embedded() []byte {
	return append([]byte(nil), embeddedFixtures...)
}

// Read returns the fixture document at path, or the embedded one when path
// is empty.
func Read(path string) ([]byte, error) {
	if path == "" {
		return Embedded(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return raw, nil
}

// Load reads, checks and parses the fixtures at path.
func Load(path string) (*Data, error) {
	raw, err := Read(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Check validates a fixture document against the schema without building
// any store.
func Check(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validate fixtures: %w", err)
	}
	if result.Valid() {
		return nil
	}
	schemaErr := &SchemaError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return schemaErr
}

// Parse checks raw against the schema and builds the stores.
func Parse(raw []byte) (*Data, error) {
	if err := Check(raw); err != nil {
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return f.build()
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
