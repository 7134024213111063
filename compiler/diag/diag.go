// Package diag carries positioned diagnostics from the compilers to the
// CLI and other consumers, with JSON and terminal renderings.
package diag

import (
	"encoding/json"
	"fmt"

	"github.com/chisel-web/chisel/compiler/span"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Fatal
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for Severity
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Severity
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	switch str {
	case "info":
		*s = Info
	case "warning":
		*s = Warning
	case "error":
		*s = Error
	case "fatal":
		*s = Fatal
	default:
		*s = Error
	}
	return nil
}

// Diagnostic is a single positioned report. Code is the stable
// machine-readable name (for HTML lexing, the specification's parse error
// name); Message is the human-readable form.
type Diagnostic struct {
	Severity Severity  `json:"severity"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	File     string    `json:"file,omitempty"`
	Span     span.Span `json:"span"`
}

// Error implements the error interface
func (d Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d-%d: %s: %s", d.File, d.Span.Lo, d.Span.Hi, d.Severity, d.Message)
	}
	return fmt.Sprintf("%d-%d: %s: %s", d.Span.Lo, d.Span.Hi, d.Severity, d.Message)
}

// Line computes the 1-based line and column of the diagnostic's start
// within source.
func (d Diagnostic) Line(source string) (line, column int) {
	line, column = 1, 1
	limit := d.Span.Lo
	if limit > len(source) {
		limit = len(source)
	}
	for _, c := range source[:limit] {
		if c == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
