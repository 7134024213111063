// Package ui renders compiler output for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/chisel-web/chisel/compiler/diag"
)

// DiagnosticOptions configures diagnostic rendering
type DiagnosticOptions struct {
	// Source is the original input, used to derive line/column positions.
	Source  string
	File    string
	NoColor bool
}

// FormatDiagnostic creates a standardized single-line diagnostic report
//
// Example output:
//
//	error index.html:3:17 UnexpectedNullCharacter
func FormatDiagnostic(d diag.Diagnostic, opts DiagnosticOptions) string {
	var levelColor *color.Color

	switch d.Severity {
	case diag.Error, diag.Fatal:
		levelColor = color.New(color.FgRed, color.Bold)
	case diag.Warning:
		levelColor = color.New(color.FgYellow, color.Bold)
	default:
		levelColor = color.New(color.FgCyan, color.Bold)
	}

	if opts.NoColor {
		levelColor.DisableColor()
	}

	var b strings.Builder
	b.WriteString(levelColor.Sprint(d.Severity.String()))
	b.WriteByte(' ')

	line, column := d.Line(opts.Source)
	if opts.File != "" {
		fmt.Fprintf(&b, "%s:%d:%d ", opts.File, line, column)
	} else {
		fmt.Fprintf(&b, "%d:%d ", line, column)
	}

	b.WriteString(d.Code)
	if d.Message != "" && d.Message != d.Code {
		b.WriteString(": ")
		b.WriteString(d.Message)
	}

	return b.String()
}

// WriteDiagnostics renders a batch of diagnostics followed by a summary
// line.
func WriteDiagnostics(w io.Writer, diags []diag.Diagnostic, opts DiagnosticOptions) {
	for _, d := range diags {
		fmt.Fprintln(w, FormatDiagnostic(d, opts))
	}

	if len(diags) > 0 {
		summary := color.New(color.Bold)
		if opts.NoColor {
			summary.DisableColor()
		}
		fmt.Fprintln(w, summary.Sprintf("%d problem(s) found", len(diags)))
	}
}
