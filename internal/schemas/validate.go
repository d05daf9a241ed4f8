// Package schemas provides JSON Schema validation for structured payloads
// returned by the AI adapter.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed ai_report.schema.json
var aiReportSchema string

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %s", strings.Join(e.Errors, "; "))
}

// ValidateAIReport checks a raw AI report payload against the embedded
// schema. A non-nil error means the payload must not be trusted and the
// caller should fall back to heuristics.
func ValidateAIReport(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(aiReportSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}
		for _, desc := range result.Errors() {
			verr.Errors = append(verr.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return verr
	}
	return nil
}
