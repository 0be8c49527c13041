package propconfig

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationFormatter renders a ValidationResult without mutating it.
type ValidationFormatter interface {
	Format(result ValidationResult) string
}

// HumanFormatter renders a one-line header followed by per-error blocks
// with indented fields, numbered 1..N.
type HumanFormatter struct{}

// Format implements ValidationFormatter.
func (HumanFormatter) Format(result ValidationResult) string {
	errs := result.Errors()
	var b strings.Builder
	if len(errs) == 0 {
		b.WriteString("Validation passed: 0 errors")
		return b.String()
	}

	fmt.Fprintf(&b, "Validation failed with %d error(s):", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&b, "\n%d. %s", i+1, e.PropertyName)
		fmt.Fprintf(&b, "\n   Message: %s", e.Message)
		if e.HasActual() {
			fmt.Fprintf(&b, "\n   Actual: %s", e.ActualValue)
		}
		if e.HasExpected() {
			fmt.Fprintf(&b, "\n   Expected: %s", e.ExpectedValue)
		}
		if e.HasCode() {
			fmt.Fprintf(&b, "\n   Code: %s", e.Code)
		}
		if e.HasSuggestion() {
			fmt.Fprintf(&b, "\n   Suggestion: %s", e.Suggestion)
		}
	}
	return b.String()
}

// StructuredFormatter renders a ValidationResult as JSON: valid, error_count,
// and an errors array whose entries omit unset optional fields.
type StructuredFormatter struct{}

type structuredError struct {
	PropertyName  string `json:"property_name"`
	ErrorMessage  string `json:"error_message"`
	ActualValue   string `json:"actual_value,omitempty"`
	ExpectedValue string `json:"expected_value,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
	Suggestion    string `json:"suggestion,omitempty"`
}

type structuredResult struct {
	Valid      bool              `json:"valid"`
	ErrorCount int               `json:"error_count"`
	Errors     []structuredError `json:"errors"`
}

// Format implements ValidationFormatter. The result is always valid JSON:
// encoding/json escapes quotes, backslashes, and control characters.
func (StructuredFormatter) Format(result ValidationResult) string {
	errs := result.Errors()
	out := structuredResult{
		Valid:      result.Valid(),
		ErrorCount: len(errs),
		Errors:     make([]structuredError, len(errs)),
	}
	for i, e := range errs {
		out.Errors[i] = structuredError{
			PropertyName: e.PropertyName,
			ErrorMessage: e.Message,
		}
		if e.HasActual() {
			out.Errors[i].ActualValue = e.ActualValue
		}
		if e.HasExpected() {
			out.Errors[i].ExpectedValue = e.ExpectedValue
		}
		if e.HasCode() {
			out.Errors[i].ErrorCode = e.Code
		}
		if e.HasSuggestion() {
			out.Errors[i].Suggestion = e.Suggestion
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		// structuredResult contains only strings, bools, and ints, so
		// Marshal cannot fail; this branch exists only to satisfy the
		// "never propagate as an unhandled failure" error-handling policy.
		return `{"valid":false,"error_count":0,"errors":[]}`
	}
	return string(data)
}
