package schema

import (
	"bytes"
	"fmt"
)

// Error is a structural problem in the input document: a missing or mistyped
// key, identified by its YAML path and, when available, its line number.
type Error struct {
	Path       string
	Message    string
	Suggestion string
	Line       int
}

func (e *Error) Error() string {
	var msg string
	if e.Line > 0 {
		msg = fmt.Sprintf("malformed input at %s (line %d): %s", e.Path, e.Line, e.Message)
	} else {
		msg = fmt.Sprintf("malformed input at %s: %s", e.Path, e.Message)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// Errors is the accumulated set of structural problems found in one parse.
type Errors []Error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "malformed input"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "found %d input errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&buf, "  %d. %s\n", i+1, err.Error())
	}
	return buf.String()
}
