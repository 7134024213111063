package lexer

import (
	"strings"

	"github.com/chisel-web/chisel/compiler/span"
)

// Partial-token buffering. At most one partial doctype, one partial tag,
// and one partial comment exist at any time; each is moved into its
// emitted token and cleared at the transitions the state machine defines.

func (l *Lexer) createDoctype(nameC rune, hasName bool) {
	d := &partialDoctype{}
	if hasName {
		name := string(nameC)
		d.name = &name
	}
	l.doctype = d
}

// appendDoctypeRaw records a consumed character into the doctype's raw
// text. A CR LF pair is preserved verbatim; the logical fields never see
// the CR.
func (l *Lexer) appendDoctypeRaw(c rune) {
	if l.doctypeRaw == nil {
		return
	}
	l.doctypeRaw.WriteRune(c)
	if c == '\r' {
		if next, ok := l.input.Cur(); ok && next == '\n' {
			l.input.Bump()
			l.doctypeRaw.WriteRune('\n')
		}
	}
}

func (l *Lexer) appendDoctypeName(c rune) {
	if l.doctype != nil && l.doctype.name != nil {
		*l.doctype.name += string(c)
	}
}

func (l *Lexer) appendDoctypePublicID(c rune) {
	if l.doctype != nil && l.doctype.publicID != nil {
		*l.doctype.publicID += string(c)
	}
}

func (l *Lexer) appendDoctypeSystemID(c rune) {
	if l.doctype != nil && l.doctype.systemID != nil {
		*l.doctype.systemID += string(c)
	}
}

func (l *Lexer) setForceQuirks() {
	if l.doctype != nil {
		l.doctype.forceQuirks = true
	}
}

func (l *Lexer) setDoctypePublicID() {
	if l.doctype != nil {
		s := ""
		l.doctype.publicID = &s
	}
}

func (l *Lexer) setDoctypeSystemID() {
	if l.doctype != nil {
		s := ""
		l.doctype.systemID = &s
	}
}

func (l *Lexer) emitDoctypeToken() {
	d := l.doctype
	if d == nil {
		return
	}
	l.doctype = nil

	raw := ""
	if l.doctypeRaw != nil {
		raw = l.doctypeRaw.String()
		l.doctypeRaw = nil
	}

	l.emitToken(Token{
		Type:        TOKEN_DOCTYPE,
		Name:        d.name,
		ForceQuirks: d.forceQuirks,
		PublicID:    d.publicID,
		SystemID:    d.systemID,
		Raw:         raw,
	})
}

func (l *Lexer) createStartTag() {
	t := &partialTag{kind: tagKindStart}
	// feComponentTransfer is the longest known tag name (SVG)
	t.tagName.Grow(19)
	t.rawTagName.Grow(19)
	l.tag = t
}

func (l *Lexer) createEndTag() {
	t := &partialTag{kind: tagKindEnd}
	t.tagName.Grow(19)
	t.rawTagName.Grow(19)
	l.tag = t
}

func (l *Lexer) appendTagName(c, rawC rune) {
	if l.tag != nil {
		l.tag.tagName.WriteRune(c)
		l.tag.rawTagName.WriteRune(rawC)
	}
}

func (l *Lexer) startNewAttribute() {
	if l.tag == nil {
		return
	}
	l.tag.attributes = append(l.tag.attributes, Attribute{})
	l.attrStartPos = l.curPos
}

func (l *Lexer) currentAttribute() *Attribute {
	if l.tag == nil || len(l.tag.attributes) == 0 {
		return nil
	}
	return &l.tag.attributes[len(l.tag.attributes)-1]
}

func (l *Lexer) appendAttributeName(c rune, rawC rune) {
	if attr := l.currentAttribute(); attr != nil {
		attr.Name += string(c)
		attr.RawName += string(rawC)
	}
}

// appendAttributeValue appends a decoded character, a raw character, or
// both to the current attribute. quoted marks the opening quote, which
// materializes an empty value so `attr=""` is distinct from `attr`.
func (l *Lexer) appendAttributeValue(quoted bool, c *rune, rawC *rune) {
	attr := l.currentAttribute()
	if attr == nil {
		return
	}

	if quoted && attr.Value == nil {
		s := ""
		attr.Value = &s
	}

	if c != nil {
		if attr.Value == nil {
			s := string(*c)
			attr.Value = &s
		} else {
			*attr.Value += string(*c)
		}
	}

	// The quote characters delimit the value; only interior characters
	// land in the raw value.
	if rawC != nil && !quoted {
		if attr.RawValue == nil {
			s := string(*rawC)
			attr.RawValue = &s
		} else {
			*attr.RawValue += string(*rawC)
		}
	}
}

func (l *Lexer) updateAttributeSpan() {
	if l.attrStartPos < 0 {
		return
	}
	if attr := l.currentAttribute(); attr != nil {
		attr.Span = span.New(l.attrStartPos, l.curPos)
	}
}

// emitTagToken finalizes the current tag. Duplicate attribute names are
// reported here but the attributes stay on the token; dropping them is the
// tree-construction stage's job. lastStartTagName updates only when a
// start tag is emitted.
func (l *Lexer) emitTagToken() {
	t := l.tag
	if t == nil {
		return
	}
	l.tag = nil

	seen := make(map[string]struct{}, len(t.attributes))
	for _, attr := range t.attributes {
		if _, dup := seen[attr.Name]; dup {
			l.errors = append(l.errors, Error{Span: attr.Span, Kind: ErrDuplicateAttribute})
		}
		seen[attr.Name] = struct{}{}
	}

	switch t.kind {
	case tagKindStart:
		l.lastStartTagName = t.tagName.String()

		l.emitToken(Token{
			Type:        TOKEN_START_TAG,
			TagName:     t.tagName.String(),
			RawTagName:  t.rawTagName.String(),
			SelfClosing: t.selfClosing,
			Attributes:  t.attributes,
		})
	case tagKindEnd:
		if len(t.attributes) > 0 {
			l.emitError(ErrEndTagWithAttributes)
		}
		if t.selfClosing {
			l.emitError(ErrEndTagWithTrailingSolidus)
		}

		l.emitToken(Token{
			Type:        TOKEN_END_TAG,
			TagName:     t.tagName.String(),
			RawTagName:  t.rawTagName.String(),
			SelfClosing: t.selfClosing,
			Attributes:  t.attributes,
		})
	}
}

func (l *Lexer) createComment(data string, rawStart string) {
	c := &partialComment{}
	c.data.Grow(64)
	c.raw.Grow(71)
	c.raw.WriteString(rawStart)
	if data != "" {
		c.data.WriteString(data)
		c.raw.WriteString(data)
	}
	l.comment = c
}

func (l *Lexer) appendComment(c, rawC rune) {
	if l.comment != nil {
		l.comment.data.WriteRune(c)
		l.comment.raw.WriteRune(rawC)
	}
}

// appendCommentRaw appends c to the comment, normalizing CR and CR LF to a
// logical LF while the raw text keeps both bytes.
func (l *Lexer) appendCommentRaw(c rune) {
	if l.comment == nil {
		return
	}
	if c == '\r' {
		l.comment.raw.WriteRune('\r')
		if next, ok := l.input.Cur(); ok && next == '\n' {
			l.input.Bump()
			l.comment.raw.WriteRune('\n')
		}
		l.comment.data.WriteRune('\n')
		return
	}
	l.comment.data.WriteRune(c)
	l.comment.raw.WriteRune(c)
}

func (l *Lexer) emitCommentToken(rawEnd string) {
	c := l.comment
	if c == nil {
		return
	}
	l.comment = nil

	c.raw.WriteString(rawEnd)

	l.emitToken(Token{
		Type: TOKEN_COMMENT,
		Data: c.data.String(),
		Raw:  c.raw.String(),
	})
}

// Temporary buffer operations shared by the character-reference sub-machine
// and the script-data escape dance.

func (l *Lexer) clearTmpBuf() {
	l.tmpBuf = l.tmpBuf[:0]
}

func (l *Lexer) tmpBufString() string {
	return string(l.tmpBuf)
}

func (l *Lexer) emitTmpBufAsCharacters() {
	for _, c := range l.tmpBuf {
		l.emitCharacter(c)
	}
	l.clearTmpBuf()
}

// flushCharacterReference writes the temporary buffer's code points either
// into the current attribute value or out as character tokens. raw, when
// non-empty, is the original `&...` source and is attached once: to the
// attribute's raw value in full, or to the first emitted character token.
func (l *Lexer) flushCharacterReference(raw string) {
	buf := l.tmpBuf
	l.tmpBuf = l.tmpBuf[:0:cap(l.tmpBuf)]
	if len(buf) == 0 {
		return
	}

	if l.isConsumedAsPartOfAnAttribute() {
		attr := l.currentAttribute()
		if attr == nil {
			return
		}

		var value strings.Builder
		if attr.Value != nil {
			value.WriteString(*attr.Value)
		}
		var rawValue strings.Builder
		if attr.RawValue != nil {
			rawValue.WriteString(*attr.RawValue)
		}

		for i, c := range buf {
			value.WriteRune(c)
			if raw != "" {
				if i == 0 {
					rawValue.WriteString(raw)
				}
			} else {
				rawValue.WriteRune(c)
			}
		}

		v := value.String()
		rv := rawValue.String()
		attr.Value = &v
		attr.RawValue = &rv
		return
	}

	sameAsRaw := raw == "" || raw == string(buf)

	for i, c := range buf {
		switch {
		case sameAsRaw:
			l.emitCharacter(c)
		case i == 0:
			l.emitCharacterWithRaw(c, raw)
		default:
			l.emitCharacterWithRaw(c, "")
		}
	}
}
