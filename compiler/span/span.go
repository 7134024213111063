// Package span provides source positions shared by the HTML lexer and the
// CSS transformer. Positions are opaque byte offsets produced by the input.
package span

// Span is a half-open source range [Lo, Hi).
type Span struct {
	Lo int
	Hi int
}

// Dummy marks a node as generated rather than read from source. Downstream
// serializers recognize it and synthesize output text instead of slicing
// the original source.
var Dummy = Span{Lo: -1, Hi: -1}

// New creates a span covering [lo, hi).
func New(lo, hi int) Span {
	return Span{Lo: lo, Hi: hi}
}

// IsDummy reports whether the span marks generated content.
func (s Span) IsDummy() bool {
	return s.Lo < 0
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	if s.IsDummy() || s.Hi < s.Lo {
		return 0
	}
	return s.Hi - s.Lo
}
