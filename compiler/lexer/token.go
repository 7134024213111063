package lexer

import (
	"fmt"
	"strings"

	"github.com/chisel-web/chisel/compiler/span"
)

// TokenType represents the type of token produced by the HTML lexer
type TokenType int

const (
	TOKEN_EOF TokenType = iota
	TOKEN_CHARACTER
	TOKEN_START_TAG
	TOKEN_END_TAG
	TOKEN_COMMENT
	TOKEN_DOCTYPE
)

// Attribute is a single attribute collected on a tag token. Value is nil
// for boolean attributes; an empty non-nil Value means `attr=""`.
type Attribute struct {
	Span     span.Span
	Name     string
	RawName  string
	Value    *string
	RawValue *string
}

// Token is a single lexical token. Fields are populated according to Type;
// Raw carries the exact source bytes when they differ from the logical
// content (entity references, CR/LF pairs, NUL substitution).
type Token struct {
	Type TokenType
	Span span.Span

	// TOKEN_CHARACTER
	Char rune
	Raw  string

	// TOKEN_START_TAG / TOKEN_END_TAG
	TagName     string
	RawTagName  string
	SelfClosing bool
	Attributes  []Attribute

	// TOKEN_COMMENT. Raw holds the full `<!-- ... -->` source.
	Data string

	// TOKEN_DOCTYPE. Name/PublicID/SystemID are nil when missing, which is
	// distinct from present-but-empty.
	Name        *string
	ForceQuirks bool
	PublicID    *string
	SystemID    *string
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_CHARACTER:
		return "CHARACTER"
	case TOKEN_START_TAG:
		return "START_TAG"
	case TOKEN_END_TAG:
		return "END_TAG"
	case TOKEN_COMMENT:
		return "COMMENT"
	case TOKEN_DOCTYPE:
		return "DOCTYPE"
	default:
		return "UNKNOWN"
	}
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TOKEN_CHARACTER:
		return fmt.Sprintf("%s(%q) [%d:%d]", t.Type, t.Char, t.Span.Lo, t.Span.Hi)
	case TOKEN_START_TAG, TOKEN_END_TAG:
		var b strings.Builder
		for _, a := range t.Attributes {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			if a.Value != nil {
				fmt.Fprintf(&b, "=%q", *a.Value)
			}
		}
		return fmt.Sprintf("%s(%s%s) [%d:%d]", t.Type, t.TagName, b.String(), t.Span.Lo, t.Span.Hi)
	case TOKEN_COMMENT:
		return fmt.Sprintf("%s(%q) [%d:%d]", t.Type, t.Data, t.Span.Lo, t.Span.Hi)
	case TOKEN_DOCTYPE:
		name := "<missing>"
		if t.Name != nil {
			name = *t.Name
		}
		return fmt.Sprintf("%s(%s) [%d:%d]", t.Type, name, t.Span.Lo, t.Span.Hi)
	default:
		return fmt.Sprintf("%s [%d:%d]", t.Type, t.Span.Lo, t.Span.Hi)
	}
}

// partialDoctype accumulates a DOCTYPE token while its states run.
type partialDoctype struct {
	name        *string
	forceQuirks bool
	publicID    *string
	systemID    *string
}

type tagKind int

const (
	tagKindStart tagKind = iota
	tagKindEnd
)

// partialTag accumulates a start or end tag token while its states run.
type partialTag struct {
	kind        tagKind
	tagName     strings.Builder
	rawTagName  strings.Builder
	selfClosing bool
	attributes  []Attribute
}

// partialComment accumulates a comment token while its states run.
type partialComment struct {
	data strings.Builder
	raw  strings.Builder
}
