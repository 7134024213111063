package entities

import "testing"

// TestLookup tests well-known references
func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"amp;", "&"},
		{"amp", "&"},
		{"AMP", "&"},
		{"lt;", "<"},
		{"gt;", ">"},
		{"nbsp;", " "},
		{"euro;", "€"},
		{"CounterClockwiseContourIntegral;", "∳"},
		{"fjlig;", "fj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Expected %q to resolve", tt.name)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// TestLookupMiss tests that unknown names do not resolve
func TestLookupMiss(t *testing.T) {
	if _, ok := Lookup("definitelynotanentity;"); ok {
		t.Errorf("Expected miss")
	}
	if _, ok := Lookup(""); ok {
		t.Errorf("Expected miss for empty name")
	}
}

// TestTableShape tests the structural guarantees the lexer relies on
func TestTableShape(t *testing.T) {
	maxLen := 0
	for name, chars := range table {
		if len(name) == 0 {
			t.Errorf("Empty entity name")
		}
		if len(chars) == 0 {
			t.Errorf("Entity %q has empty replacement", name)
		}
		if len(name) > maxLen {
			maxLen = len(name)
		}
		if len(name)+1 > MaxReferenceLength {
			t.Errorf("Entity %q exceeds the lookup buffer bound", name)
		}
	}

	// The longest name plus the ampersand must exactly fill the bound.
	if maxLen+1 != MaxReferenceLength {
		t.Errorf("Expected longest name of %d characters, got %d", MaxReferenceLength-1, maxLen)
	}
}

// TestSemicolonVariants tests that every bare legacy name also has the
// semicolon form
func TestSemicolonVariants(t *testing.T) {
	for name := range table {
		if name[len(name)-1] == ';' {
			continue
		}
		if _, ok := table[name+";"]; !ok {
			t.Errorf("Legacy entity %q lacks the %q form", name, name+";")
		}
	}
}
