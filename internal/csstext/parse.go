// Package csstext is the thin text front-end the CLI uses to drive the
// prefixer: a best-effort CSS reader producing the transformer's tree and
// a canonical printer for the result. It is demo plumbing, not a
// conforming CSS parser; unrecognized constructs are preserved as raw
// tokens and survive a parse/print round trip.
package csstext

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/chisel-web/chisel/compiler/cssast"
	"github.com/chisel-web/chisel/compiler/span"
)

type scanner struct {
	src []rune
	pos int
	// byte offset per rune index, for spans
	offsets []int
}

func newScanner(src string) *scanner {
	runes := []rune(src)
	offsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offsets[i] = off
		off += len(string(r))
	}
	offsets[len(runes)] = off
	return &scanner{src: runes, offsets: offsets}
}

func (s *scanner) byteAt(i int) int {
	if i > len(s.src) {
		i = len(s.src)
	}
	return s.offsets[i]
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(n int) rune {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func (s *scanner) next() rune {
	r := s.peek()
	s.pos++
	return r
}

func (s *scanner) skipSpaceAndComments() {
	for !s.eof() {
		switch {
		case unicode.IsSpace(s.peek()):
			s.pos++
		case s.peek() == '/' && s.peekAt(1) == '*':
			s.pos += 2
			for !s.eof() && !(s.peek() == '*' && s.peekAt(1) == '/') {
				s.pos++
			}
			s.pos += 2
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '-' || r >= 0x80
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func (s *scanner) scanIdent() string {
	start := s.pos
	for !s.eof() && isIdentChar(s.peek()) {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

func (s *scanner) scanString(quote rune) string {
	var b strings.Builder
	for !s.eof() && s.peek() != quote {
		c := s.next()
		if c == '\\' && !s.eof() {
			c = s.next()
		}
		b.WriteRune(c)
	}
	if !s.eof() {
		s.pos++
	}
	return b.String()
}

// Parse reads a stylesheet. It never fails: input that does not form a
// complete rule becomes a block-less qualified rule of its own, with the
// leftover tokens as its prelude.
func Parse(src string) *cssast.Stylesheet {
	s := newScanner(src)
	sheet := &cssast.Stylesheet{Span: span.New(0, s.byteAt(len(s.src)))}

	for {
		s.skipSpaceAndComments()
		if s.eof() {
			break
		}
		before := s.pos
		if rule := s.parseRule(); rule != nil {
			sheet.Rules = append(sheet.Rules, rule)
		}
		// Malformed input that parses to nothing must still advance.
		if s.pos == before {
			s.pos++
		}
	}

	return sheet
}

func (s *scanner) parseRule() cssast.Rule {
	if s.peek() == '@' {
		return s.parseAtRule()
	}
	return s.parseQualifiedRule()
}

func (s *scanner) parseAtRule() *cssast.AtRule {
	start := s.pos
	s.pos++ // consume '@'
	name := s.scanIdent()

	preludeValues, _ := s.parseComponentValues(func(r rune) bool {
		return r == '{' || r == ';'
	})

	rule := &cssast.AtRule{Name: name}

	switch strings.ToLower(name) {
	case "media":
		rule.Prelude = groupMediaQueries(preludeValues)
	case "import":
		rule.Prelude = groupImportPrelude(preludeValues)
	case "supports":
		rule.Prelude = &cssast.SupportsCondition{
			Span:  span.Dummy,
			Terms: groupSupportsTerms(preludeValues),
		}
	default:
		rule.Prelude = &cssast.ListOfComponentValues{Span: span.Dummy, Values: preludeValues}
	}

	switch s.peek() {
	case ';':
		s.pos++
	case '{':
		if strings.HasSuffix(strings.ToLower(name), "keyframes") {
			rule.Block = s.parseKeyframesBlock()
		} else {
			rule.Block = s.parseRuleBlock()
		}
	}

	rule.Span = span.New(s.byteAt(start), s.byteAt(s.pos))
	return rule
}

func (s *scanner) parseQualifiedRule() *cssast.QualifiedRule {
	start := s.pos
	prelude, _ := s.parseComponentValues(func(r rune) bool { return r == '{' || r == '}' })

	rule := &cssast.QualifiedRule{Prelude: prelude}
	if s.peek() == '{' {
		rule.Block = s.parseRuleBlock()
	}
	rule.Span = span.New(s.byteAt(start), s.byteAt(s.pos))
	return rule
}

// parseRuleBlock reads `{ ... }` containing declarations and nested rules.
func (s *scanner) parseRuleBlock() *cssast.SimpleBlock {
	start := s.pos
	s.pos++ // consume '{'

	block := &cssast.SimpleBlock{Name: '{'}

	for {
		s.skipSpaceAndComments()
		if s.eof() || s.peek() == '}' {
			break
		}

		before := s.pos
		switch {
		case s.peek() == '@':
			block.Values = append(block.Values, s.parseAtRule())
		case s.startsDeclaration():
			if decl := s.parseDeclaration(); decl != nil {
				block.Values = append(block.Values, decl)
			}
		default:
			block.Values = append(block.Values, s.parseQualifiedRule())
		}
		if s.pos == before {
			s.pos++
		}
	}

	if !s.eof() {
		s.pos++ // consume '}'
	}
	block.Span = span.New(s.byteAt(start), s.byteAt(s.pos))
	return block
}

// parseKeyframesBlock reads the body of @keyframes as keyframe blocks.
func (s *scanner) parseKeyframesBlock() *cssast.SimpleBlock {
	start := s.pos
	s.pos++ // consume '{'

	block := &cssast.SimpleBlock{Name: '{'}

	for {
		s.skipSpaceAndComments()
		if s.eof() || s.peek() == '}' {
			break
		}

		frameStart := s.pos
		prelude, _ := s.parseComponentValues(func(r rune) bool { return r == '{' || r == '}' })
		frame := &cssast.KeyframeBlock{Prelude: prelude}
		if s.peek() == '{' {
			frame.Block = s.parseRuleBlock()
		}
		frame.Span = span.New(s.byteAt(frameStart), s.byteAt(s.pos))
		block.Values = append(block.Values, frame)
	}

	if !s.eof() {
		s.pos++
	}
	block.Span = span.New(s.byteAt(start), s.byteAt(s.pos))
	return block
}

// startsDeclaration looks ahead for `ident :` without consuming. A `{`
// before the declaration terminator means the colon belonged to a pseudo
// selector (`a:hover { ... }`), not a declaration.
func (s *scanner) startsDeclaration() bool {
	save := s.pos
	defer func() { s.pos = save }()

	if !isIdentStart(s.peek()) {
		return false
	}
	s.scanIdent()
	s.skipSpaceAndComments()
	if s.peek() != ':' {
		return false
	}
	s.pos++

	depth := 0
	for !s.eof() {
		c := s.next()
		switch c {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case '"', '\'':
			s.scanString(c)
		case '{':
			if depth == 0 {
				return false
			}
			depth++
		case ';', '}':
			if depth <= 0 {
				return true
			}
			if c == '}' {
				depth--
			}
		}
	}
	return true
}

func (s *scanner) parseDeclaration() *cssast.Declaration {
	start := s.pos
	name := s.scanIdent()
	s.skipSpaceAndComments()
	if s.peek() != ':' {
		return nil
	}
	s.pos++ // consume ':'

	value, important := s.parseComponentValues(func(r rune) bool {
		return r == ';' || r == '}'
	})
	if s.peek() == ';' {
		s.pos++
	}

	return &cssast.Declaration{
		Span:        span.New(s.byteAt(start), s.byteAt(s.pos)),
		Name:        name,
		Value:       value,
		Important:   important,
		DashedIdent: strings.HasPrefix(name, "--"),
	}
}

// parseComponentValues reads values until stop matches at nesting depth
// zero. A trailing `!important` is stripped and reported separately.
func (s *scanner) parseComponentValues(stop func(rune) bool) ([]cssast.ComponentValue, bool) {
	var values []cssast.ComponentValue
	important := false

	for {
		s.skipSpaceAndComments()
		if s.eof() || stop(s.peek()) {
			break
		}

		if s.peek() == '!' {
			save := s.pos
			s.pos++
			s.skipSpaceAndComments()
			word := s.scanIdent()
			if strings.EqualFold(word, "important") {
				important = true
				continue
			}
			s.pos = save
			start := s.pos
			s.pos++
			values = append(values, &cssast.PreservedToken{
				Span:  span.New(s.byteAt(start), s.byteAt(s.pos)),
				Value: "!",
			})
			continue
		}

		if v := s.parseComponentValue(); v != nil {
			values = append(values, v)
		}
	}

	return values, important
}

func (s *scanner) parseComponentValue() cssast.ComponentValue {
	start := s.pos
	c := s.peek()

	switch {
	case c == ',':
		s.pos++
		return &cssast.Delimiter{Span: s.spanFrom(start), Value: cssast.DelimComma}
	case c == '/':
		s.pos++
		return &cssast.Delimiter{Span: s.spanFrom(start), Value: cssast.DelimSolidus}
	case c == '"' || c == '\'':
		s.pos++
		value := s.scanString(c)
		return &cssast.Str{Span: s.spanFrom(start), Value: value}
	case c == '(':
		return s.parseParenBlock()
	case c == '[' || c == '{':
		return s.parseAnyBlock(c)
	case c == ':':
		return s.parsePseudoSelector()
	case unicode.IsDigit(c) || ((c == '-' || c == '+' || c == '.') && unicode.IsDigit(s.numericLookahead())):
		return s.parseNumeric()
	case isIdentStart(c):
		return s.parseIdentLike()
	default:
		s.pos++
		return &cssast.PreservedToken{Span: s.spanFrom(start), Value: string(c)}
	}
}

func (s *scanner) numericLookahead() rune {
	n := 1
	if s.peekAt(n) == '.' {
		n++
	}
	return s.peekAt(n)
}

func (s *scanner) spanFrom(start int) span.Span {
	return span.New(s.byteAt(start), s.byteAt(s.pos))
}

func (s *scanner) parseParenBlock() cssast.ComponentValue {
	start := s.pos
	s.pos++ // consume '('

	// `(ident : value)` is a plain media feature.
	save := s.pos
	s.skipSpaceAndComments()
	if isIdentStart(s.peek()) {
		name := s.scanIdent()
		s.skipSpaceAndComments()
		if s.peek() == ':' {
			s.pos++
			values, _ := s.parseComponentValues(func(r rune) bool { return r == ')' })
			if s.peek() == ')' {
				s.pos++
			}
			var value cssast.ComponentValue
			if len(values) == 1 {
				value = values[0]
			} else if len(values) > 0 {
				value = &cssast.SimpleBlock{Span: span.Dummy, Name: '(', Values: values}
			}
			return &cssast.MediaFeaturePlain{Span: s.spanFrom(start), Name: name, Value: value}
		}
	}
	s.pos = save

	values, _ := s.parseComponentValues(func(r rune) bool { return r == ')' })
	if s.peek() == ')' {
		s.pos++
	}
	return &cssast.SimpleBlock{Span: s.spanFrom(start), Name: '(', Values: values}
}

func (s *scanner) parseAnyBlock(open rune) cssast.ComponentValue {
	var closer rune
	if open == '[' {
		closer = ']'
	} else {
		closer = '}'
	}

	start := s.pos
	s.pos++
	values, _ := s.parseComponentValues(func(r rune) bool { return r == closer })
	if s.peek() == closer {
		s.pos++
	}
	return &cssast.SimpleBlock{Span: s.spanFrom(start), Name: open, Values: values}
}

func (s *scanner) parsePseudoSelector() cssast.ComponentValue {
	start := s.pos
	s.pos++ // consume ':'

	element := false
	if s.peek() == ':' {
		element = true
		s.pos++
	}

	name := s.scanIdent()
	if name == "" {
		text := ":"
		if element {
			text = "::"
		}
		return &cssast.PreservedToken{Span: s.spanFrom(start), Value: text}
	}

	var children []cssast.ComponentValue
	if s.peek() == '(' {
		s.pos++
		children, _ = s.parseComponentValues(func(r rune) bool { return r == ')' })
		if s.peek() == ')' {
			s.pos++
		}
	}

	if element {
		return &cssast.PseudoElementSelector{Span: s.spanFrom(start), Name: name, Children: children}
	}
	return &cssast.PseudoClassSelector{Span: s.spanFrom(start), Name: name, Children: children}
}

func (s *scanner) parseNumeric() cssast.ComponentValue {
	start := s.pos

	if s.peek() == '+' || s.peek() == '-' {
		s.pos++
	}
	isFloat := false
	for !s.eof() && (unicode.IsDigit(s.peek()) || s.peek() == '.') {
		if s.peek() == '.' {
			isFloat = true
		}
		s.pos++
	}
	if s.peek() == 'e' || s.peek() == 'E' {
		if unicode.IsDigit(s.peekAt(1)) ||
			((s.peekAt(1) == '+' || s.peekAt(1) == '-') && unicode.IsDigit(s.peekAt(2))) {
			isFloat = true
			s.pos++
			if s.peek() == '+' || s.peek() == '-' {
				s.pos++
			}
			for !s.eof() && unicode.IsDigit(s.peek()) {
				s.pos++
			}
		}
	}

	text := string(s.src[start:s.pos])

	if s.peek() == '%' {
		s.pos++
		value, _ := strconv.ParseFloat(text, 64)
		return &cssast.Percentage{Span: s.spanFrom(start), Value: value}
	}

	if isIdentStart(s.peek()) {
		unit := s.scanIdent()
		value, _ := strconv.ParseFloat(text, 64)
		return &cssast.Dimension{
			Span:  s.spanFrom(start),
			Value: value,
			Unit:  unit,
			Kind:  classifyUnit(unit),
		}
	}

	if !isFloat {
		if value, err := strconv.ParseInt(text, 10, 64); err == nil {
			return &cssast.Integer{Span: s.spanFrom(start), Value: value}
		}
	}
	value, _ := strconv.ParseFloat(text, 64)
	return &cssast.Number{Span: s.spanFrom(start), Value: value}
}

func classifyUnit(unit string) cssast.DimensionKind {
	switch strings.ToLower(unit) {
	case "px", "em", "rem", "ex", "ch", "vw", "vh", "vmin", "vmax", "cm",
		"mm", "q", "in", "pt", "pc":
		return cssast.DimensionLength
	case "deg", "grad", "rad", "turn":
		return cssast.DimensionAngle
	case "s", "ms":
		return cssast.DimensionTime
	case "hz", "khz":
		return cssast.DimensionFrequency
	case "dpi", "dpcm", "dppx", "x":
		return cssast.DimensionResolution
	case "fr":
		return cssast.DimensionFlex
	default:
		return cssast.DimensionUnknown
	}
}

func (s *scanner) parseIdentLike() cssast.ComponentValue {
	start := s.pos
	name := s.scanIdent()

	if s.peek() == '(' {
		if strings.EqualFold(name, "supports") {
			s.pos++
			s.skipSpaceAndComments()
			if s.startsDeclaration() {
				declStart := s.pos
				declName := s.scanIdent()
				s.skipSpaceAndComments()
				s.pos++ // consume ':'
				values, important := s.parseComponentValues(func(r rune) bool { return r == ')' })
				if s.peek() == ')' {
					s.pos++
				}
				decl := &cssast.Declaration{
					Span:        s.spanFrom(declStart),
					Name:        declName,
					Value:       values,
					Important:   important,
					DashedIdent: strings.HasPrefix(declName, "--"),
				}
				return &cssast.Function{
					Span:  s.spanFrom(start),
					Name:  name,
					Value: []cssast.ComponentValue{decl},
				}
			}
			values, _ := s.parseComponentValues(func(r rune) bool { return r == ')' })
			if s.peek() == ')' {
				s.pos++
			}
			return &cssast.Function{Span: s.spanFrom(start), Name: name, Value: values}
		}

		if strings.EqualFold(name, "url") {
			s.pos++
			var b strings.Builder
			for !s.eof() && s.peek() != ')' {
				b.WriteRune(s.next())
			}
			if !s.eof() {
				s.pos++
			}
			return &cssast.URL{
				Span:  s.spanFrom(start),
				Name:  name,
				Value: strings.Trim(strings.TrimSpace(b.String()), `"'`),
			}
		}

		s.pos++
		values, _ := s.parseComponentValues(func(r rune) bool { return r == ')' })
		if s.peek() == ')' {
			s.pos++
		}
		return &cssast.Function{Span: s.spanFrom(start), Name: name, Value: values}
	}

	return &cssast.Ident{Span: s.spanFrom(start), Value: name}
}
