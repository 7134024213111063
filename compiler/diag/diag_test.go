package diag

import (
	"encoding/json"
	"testing"

	"github.com/chisel-web/chisel/compiler/span"
)

// TestSeverityRoundTrip tests JSON encoding of severities
func TestSeverityRoundTrip(t *testing.T) {
	for _, s := range []Severity{Info, Warning, Error, Fatal} {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}

		var back Severity
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if back != s {
			t.Errorf("Round trip changed %v to %v", s, back)
		}
	}

	var unknown Severity
	if err := json.Unmarshal([]byte(`"bogus"`), &unknown); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if unknown != Error {
		t.Errorf("Expected unknown severity to default to error")
	}
}

// TestDiagnosticError tests the error string
func TestDiagnosticError(t *testing.T) {
	d := Diagnostic{
		Severity: Warning,
		Code:     "UnexpectedNullCharacter",
		Message:  "UnexpectedNullCharacter",
		File:     "index.html",
		Span:     span.New(5, 6),
	}

	expected := "index.html:5-6: warning: UnexpectedNullCharacter"
	if d.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, d.Error())
	}
}

// TestLineColumn tests position derivation from source
func TestLineColumn(t *testing.T) {
	source := "ab\ncd\nef"

	tests := []struct {
		offset, line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{7, 3, 2},
		{100, 3, 3},
	}

	for _, tt := range tests {
		d := Diagnostic{Span: span.New(tt.offset, tt.offset+1)}
		line, column := d.Line(source)
		if line != tt.line || column != tt.column {
			t.Errorf("Offset %d: expected %d:%d, got %d:%d", tt.offset, tt.line, tt.column, line, column)
		}
	}
}
