package prefixer

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/chisel-web/chisel/compiler/compat"
)

var (
	shouldPrefixCallRe   = regexp.MustCompile(`shouldPrefix\("([^"]+)"`)
	addDeclarationCallRe = regexp.MustCompile(`addDeclaration\(Prefix\w+, "([^"]+)"`)
)

// TestEveryFeatureKeyHasData walks this package's sources, extracts every
// feature key the transformer queries, and asserts the compatibility
// table carries it. A key missing from the data would silently fall back
// to the call-site default and never fire for real targets.
func TestEveryFeatureKeyHasData(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}

	keys := map[string]bool{}
	for _, file := range files {
		if filepath.Ext(file) != ".go" || isTestFile(file) {
			continue
		}
		source, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range shouldPrefixCallRe.FindAllStringSubmatch(string(source), -1) {
			keys[m[1]] = true
		}
		for _, m := range addDeclarationCallRe.FindAllStringSubmatch(string(source), -1) {
			keys[m[1]] = true
		}
	}

	if len(keys) < 100 {
		t.Fatalf("Suspiciously few feature keys extracted: %d", len(keys))
	}

	table := compat.Table()
	for key := range keys {
		if _, ok := table[key]; !ok {
			t.Errorf("Feature key %q used in logic but missing from data", key)
		}
	}
}

func isTestFile(name string) bool {
	return len(name) > 8 && name[len(name)-8:] == "_test.go"
}
