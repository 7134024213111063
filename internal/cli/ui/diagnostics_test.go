package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chisel-web/chisel/compiler/diag"
	"github.com/chisel-web/chisel/compiler/span"
)

func TestFormatDiagnostic(t *testing.T) {
	d := diag.Diagnostic{
		Severity: diag.Warning,
		Code:     "UnexpectedNullCharacter",
		Message:  "UnexpectedNullCharacter",
		Span:     span.New(4, 5),
	}

	out := FormatDiagnostic(d, DiagnosticOptions{
		Source:  "ab\ncd",
		File:    "index.html",
		NoColor: true,
	})

	assert.Equal(t, "warning index.html:2:2 UnexpectedNullCharacter", out)
}

func TestWriteDiagnosticsSummary(t *testing.T) {
	diags := []diag.Diagnostic{
		{Severity: diag.Error, Code: "EofInTag", Message: "EofInTag", Span: span.New(0, 1)},
		{Severity: diag.Warning, Code: "DuplicateAttribute", Message: "DuplicateAttribute", Span: span.New(2, 3)},
	}

	var b strings.Builder
	WriteDiagnostics(&b, diags, DiagnosticOptions{Source: "abcd", NoColor: true})

	out := b.String()
	assert.Contains(t, out, "EofInTag")
	assert.Contains(t, out, "DuplicateAttribute")
	assert.Contains(t, out, "2 problem(s) found")
}

func TestWriteDiagnosticsEmpty(t *testing.T) {
	var b strings.Builder
	WriteDiagnostics(&b, nil, DiagnosticOptions{NoColor: true})

	assert.Empty(t, b.String())
}
