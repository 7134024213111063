package cssast

import (
	"testing"

	"github.com/chisel-web/chisel/compiler/span"
)

func sampleDeclaration() *Declaration {
	return &Declaration{
		Span: span.New(10, 40),
		Name: "background",
		Value: []ComponentValue{
			&Function{
				Span: span.New(22, 40),
				Name: "linear-gradient",
				Value: []ComponentValue{
					&Ident{Span: span.New(38, 40), Value: "to"},
					&Ident{Span: span.New(41, 44), Value: "top"},
					&Delimiter{Span: span.New(44, 45), Value: DelimComma},
					&Ident{Span: span.New(46, 49), Value: "red"},
				},
			},
		},
	}
}

// TestCloneIsDeep tests that mutating a clone leaves the original alone
func TestCloneIsDeep(t *testing.T) {
	original := sampleDeclaration()
	clone := CloneDeclaration(original)

	if !EqualDeclarations(original, clone) {
		t.Fatalf("Expected clone to equal original")
	}

	fn := clone.Value[0].(*Function)
	fn.Name = "-webkit-linear-gradient"
	fn.Value[0].(*Ident).Value = "bottom"

	if original.Value[0].(*Function).Name != "linear-gradient" {
		t.Errorf("Mutating clone changed the original function name")
	}
	if original.Value[0].(*Function).Value[0].(*Ident).Value != "to" {
		t.Errorf("Mutating clone changed the original ident")
	}
}

// TestEqualIgnoresSpans tests that spans never affect equality
func TestEqualIgnoresSpans(t *testing.T) {
	a := sampleDeclaration()
	b := sampleDeclaration()
	b.Span = span.Dummy
	b.Value[0].(*Function).Span = span.New(999, 1000)

	if !EqualDeclarations(a, b) {
		t.Errorf("Expected equality to ignore spans")
	}
}

// TestEqualDetectsDifferences tests structural mismatches
func TestEqualDetectsDifferences(t *testing.T) {
	a := sampleDeclaration()

	b := sampleDeclaration()
	b.Name = "mask"
	if EqualDeclarations(a, b) {
		t.Errorf("Expected name difference to be detected")
	}

	c := sampleDeclaration()
	c.Important = true
	if EqualDeclarations(a, c) {
		t.Errorf("Expected important difference to be detected")
	}

	d := sampleDeclaration()
	d.Value[0].(*Function).Value = d.Value[0].(*Function).Value[:3]
	if EqualDeclarations(a, d) {
		t.Errorf("Expected value length difference to be detected")
	}
}

// TestEqualAcrossKinds tests that different node kinds never compare equal
func TestEqualAcrossKinds(t *testing.T) {
	if EqualIgnoringSpan(&Ident{Value: "5"}, &Number{Value: 5}) {
		t.Errorf("Ident and Number must differ")
	}
	if EqualIgnoringSpan(&Integer{Value: 5}, &Number{Value: 5}) {
		t.Errorf("Integer and Number must differ")
	}
	if EqualIgnoringSpan(
		&PseudoClassSelector{Name: "placeholder"},
		&PseudoElementSelector{Name: "placeholder"},
	) {
		t.Errorf("Pseudo-class and pseudo-element must differ")
	}
}

// TestEqualRules tests rule-level comparison
func TestEqualRules(t *testing.T) {
	mkRule := func(name string) *AtRule {
		return &AtRule{
			Span: span.New(0, 10),
			Name: name,
			Prelude: &ListOfComponentValues{
				Span:   span.New(5, 9),
				Values: []ComponentValue{&Ident{Value: "spin"}},
			},
			Block: &SimpleBlock{Name: '{', Values: []ComponentValue{
				&KeyframeBlock{
					Prelude: []ComponentValue{&Ident{Value: "from"}},
					Block: &SimpleBlock{Name: '{', Values: []ComponentValue{
						sampleDeclaration(),
					}},
				},
			}},
		}
	}

	if !EqualRules(mkRule("keyframes"), mkRule("keyframes")) {
		t.Errorf("Expected identical at-rules to be equal")
	}
	if EqualRules(mkRule("keyframes"), mkRule("-webkit-keyframes")) {
		t.Errorf("Expected renamed at-rules to differ")
	}
}
