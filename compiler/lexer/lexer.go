package lexer

import (
	"strings"

	"github.com/chisel-web/chisel/compiler/span"
)

// State is a tokenizer state. The consumer (the tree-construction stage)
// may force content-model-sensitive states through SetInputState.
type State int

const (
	StateData State = iota
	StateRcdata
	StateRawtext
	StateScriptData
	StatePlainText
	StateTagOpen
	StateEndTagOpen
	StateTagName
	StateRcdataLessThanSign
	StateRcdataEndTagOpen
	StateRcdataEndTagName
	StateRawtextLessThanSign
	StateRawtextEndTagOpen
	StateRawtextEndTagName
	StateScriptDataLessThanSign
	StateScriptDataEndTagOpen
	StateScriptDataEndTagName
	StateScriptDataEscapeStart
	StateScriptDataEscapeStartDash
	StateScriptDataEscaped
	StateScriptDataEscapedDash
	StateScriptDataEscapedDashDash
	StateScriptDataEscapedLessThanSign
	StateScriptDataEscapedEndTagOpen
	StateScriptDataEscapedEndTagName
	StateScriptDataDoubleEscapeStart
	StateScriptDataDoubleEscaped
	StateScriptDataDoubleEscapedDash
	StateScriptDataDoubleEscapedDashDash
	StateScriptDataDoubleEscapedLessThanSign
	StateScriptDataDoubleEscapeEnd
	StateBeforeAttributeName
	StateAttributeName
	StateAfterAttributeName
	StateBeforeAttributeValue
	StateAttributeValueDoubleQuoted
	StateAttributeValueSingleQuoted
	StateAttributeValueUnquoted
	StateAfterAttributeValueQuoted
	StateSelfClosingStartTag
	StateBogusComment
	StateMarkupDeclarationOpen
	StateCommentStart
	StateCommentStartDash
	StateComment
	StateCommentLessThanSign
	StateCommentLessThanSignBang
	StateCommentLessThanSignBangDash
	StateCommentLessThanSignBangDashDash
	StateCommentEndDash
	StateCommentEnd
	StateCommentEndBang
	StateDoctype
	StateBeforeDoctypeName
	StateDoctypeName
	StateAfterDoctypeName
	StateAfterDoctypePublicKeyword
	StateBeforeDoctypePublicIdentifier
	StateDoctypePublicIdentifierDoubleQuoted
	StateDoctypePublicIdentifierSingleQuoted
	StateAfterDoctypePublicIdentifier
	StateBetweenDoctypePublicAndSystemIdentifiers
	StateAfterDoctypeSystemKeyword
	StateBeforeDoctypeSystemIdentifier
	StateDoctypeSystemIdentifierDoubleQuoted
	StateDoctypeSystemIdentifierSingleQuoted
	StateAfterDoctypeSystemIdentifier
	StateBogusDoctype
	StateCdataSection
	StateCdataSectionBracket
	StateCdataSectionEnd
	StateCharacterReference
	StateNamedCharacterReference
	StateAmbiguousAmpersand
	StateNumericCharacterReference
	StateHexCharacterReferenceStart
	StateDecimalCharacterReferenceStart
	StateHexCharacterReference
	StateDecimalCharacterReference
	StateNumericCharacterReferenceEnd
)

const replacementCharacter = '�'

// charRefDigit is one lazily-accumulated digit of a numeric character
// reference. The raw character is kept so the original source can be
// reconstructed after the final value is computed.
type charRefDigit struct {
	base  uint32
	value uint32
	raw   rune
	// first marker entry carries no raw character
	hasRaw bool
}

// Lexer drives the HTML tokenization state machine over an Input and
// produces tokens one at a time through Next. A Lexer is single-use and
// must be driven by one goroutine at a time.
type Lexer struct {
	input        Input
	cur          rune
	curOK        bool
	curPos       int
	lastTokenPos int
	finished     bool

	state       State
	returnState State
	errors      []Error

	lastStartTagName string
	pending          []Token

	doctype      *partialDoctype
	doctypeRaw   *strings.Builder
	comment      *partialComment
	tag          *partialTag
	attrStartPos int

	charRefCode []charRefDigit
	// temporary buffer shared by the character-reference sub-machine and
	// the script-data escape dance
	tmpBuf []rune

	// nil means the consumer never told us; CDATA is then a parse error
	adjustedCurrentNodeIsHTML *bool
}

// New creates a Lexer over input starting in the data state. A leading
// byte-order mark is skipped.
func New(input Input) *Lexer {
	l := &Lexer{
		input:        input,
		curPos:       input.CurPos(),
		lastTokenPos: input.CurPos(),
		state:        StateData,
		returnState:  StateData,
		errors:       make([]Error, 0),
		attrStartPos: -1,
		tmpBuf:       make([]rune, 0, 33),
	}

	if l.input.IsAtStart() {
		if c, ok := l.input.Cur(); ok && c == '\uFEFF' {
			l.input.Bump()
			l.lastTokenPos = l.input.CurPos()
		}
	}

	return l
}

// SetLastStartTagName seeds the appropriate-end-tag check. The tree
// construction stage calls this when it creates a fragment parsing context.
func (l *Lexer) SetLastStartTagName(name string) {
	l.lastStartTagName = name
}

// SetAdjustedCurrentNodeToHTMLNamespace tells the lexer whether the
// adjusted current node is in the HTML namespace, which controls CDATA
// section handling.
func (l *Lexer) SetAdjustedCurrentNodeToHTMLNamespace(v bool) {
	l.adjustedCurrentNodeIsHTML = &v
}

// SetInputState forces the tokenizer into a content-model-sensitive state
// (RCDATA, RAWTEXT, script data, PLAINTEXT).
func (l *Lexer) SetInputState(state State) {
	l.state = state
}

// TakeErrors drains the accumulated parse errors.
func (l *Lexer) TakeErrors() []Error {
	errs := l.errors
	l.errors = make([]Error, 0)
	return errs
}

// Next runs the state machine until a token is ready and returns it. After
// the EOF token has been returned once, ok is false forever.
func (l *Lexer) Next() (Token, bool) {
	if l.finished {
		return Token{}, false
	}

	for len(l.pending) == 0 {
		l.step()
	}

	tok := l.pending[0]
	l.pending = l.pending[1:]

	if tok.Type == TOKEN_EOF {
		l.finished = true
	}

	return tok, true
}

// All returns the remaining tokens including the trailing EOF token.
func (l *Lexer) All() []Token {
	var tokens []Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// consume makes the next input character current and advances past it.
// curOK is false at end of input.
func (l *Lexer) consume() {
	l.cur, l.curOK = l.input.Cur()
	l.curPos = l.input.CurPos()
	if l.curOK {
		l.input.Bump()
	}
}

// reconsume rewinds the input so the current character is seen again by
// the next state. Every consumed character is either emitted, appended to
// a partial token or buffer, or reconsumed exactly once.
func (l *Lexer) reconsume() {
	l.input.ResetTo(l.curPos)
}

func (l *Lexer) reconsumeIn(state State) {
	l.state = state
	l.reconsume()
}

// skipNextLF consumes the LF of a CR LF pair so whitespace is not
// processed twice.
func (l *Lexer) skipNextLF(c rune) {
	if c == '\r' {
		if next, ok := l.input.Cur(); ok && next == '\n' {
			l.input.Bump()
		}
	}
}

func (l *Lexer) emitError(kind ErrorKind) {
	l.errors = append(l.errors, Error{
		Span: span.New(l.curPos, l.input.CurPos()),
		Kind: kind,
	})
}

func (l *Lexer) emitToken(tok Token) {
	curPos := l.input.CurPos()
	tok.Span = span.New(l.lastTokenPos, curPos)
	l.lastTokenPos = curPos
	l.pending = append(l.pending, tok)
}

func (l *Lexer) emitEOF() {
	l.emitToken(Token{Type: TOKEN_EOF})
}

func (l *Lexer) emitCharacter(c rune) {
	l.emitToken(Token{Type: TOKEN_CHARACTER, Char: c})
}

func (l *Lexer) emitCharacterWithRaw(c rune, raw string) {
	l.emitToken(Token{Type: TOKEN_CHARACTER, Char: c, Raw: raw})
}

// emitCharacterRaw emits c, normalizing a CR or CR LF pair to a single LF
// character token whose raw preserves the original bytes.
func (l *Lexer) emitCharacterRaw(c rune) {
	if c == '\r' {
		raw := "\r"
		if next, ok := l.input.Cur(); ok && next == '\n' {
			l.input.Bump()
			raw = "\r\n"
		}
		l.emitCharacterWithRaw('\n', raw)
		return
	}
	l.emitCharacter(c)
}

// validateInputStreamCharacter reports surrogate, noncharacter, and
// control code points. Validation runs only on the anything-else arms for
// throughput; the character is still processed.
func (l *Lexer) validateInputStreamCharacter(c rune) {
	code := uint32(c)

	switch {
	case code >= 0xD800 && code <= 0xDFFF:
		l.emitError(ErrSurrogateInInputStream)
	case code != 0x00 && isControl(code):
		l.emitError(ErrControlCharacterInInputStream)
	case isNoncharacter(code):
		l.emitError(ErrNoncharacterInInputStream)
	}
}

func (l *Lexer) isConsumedAsPartOfAnAttribute() bool {
	switch l.returnState {
	case StateAttributeValueDoubleQuoted, StateAttributeValueSingleQuoted, StateAttributeValueUnquoted:
		return true
	}
	return false
}

// appropriateEndTag reports whether the current end tag token's name
// matches the last emitted start tag's name.
func (l *Lexer) appropriateEndTag() bool {
	if l.lastStartTagName == "" || l.tag == nil || l.tag.kind != tagKindEnd {
		return false
	}
	return l.tag.tagName.String() == l.lastStartTagName
}

// Character classification helpers. The whitespace set is the one the
// tokenization specification uses: tab, LF, FF, CR, space.

func isSpacy(c rune) bool {
	switch c {
	case '\t', '\n', '\r', '\f', ' ':
		return true
	}
	return false
}

func isControl(c uint32) bool {
	switch c {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return false
	}
	return c <= 0x1F || (c >= 0x7F && c <= 0x9F)
}

func isSurrogate(c uint32) bool {
	return c >= 0xD800 && c <= 0xDFFF
}

func isNoncharacter(c uint32) bool {
	if c >= 0xFDD0 && c <= 0xFDEF {
		return true
	}
	low := c & 0xFFFF
	return (low == 0xFFFE || low == 0xFFFF) && c <= 0x10FFFF
}

func isASCIIUpperAlpha(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func isASCIILowerAlpha(c rune) bool {
	return c >= 'a' && c <= 'z'
}

func isASCIIAlpha(c rune) bool {
	return isASCIIUpperAlpha(c) || isASCIILowerAlpha(c)
}

func isASCIIDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isASCIIAlphanumeric(c rune) bool {
	return isASCIIAlpha(c) || isASCIIDigit(c)
}

func isUpperHexDigit(c rune) bool {
	return isASCIIDigit(c) || (c >= 'A' && c <= 'F')
}

func isLowerHexDigit(c rune) bool {
	return isASCIIDigit(c) || (c >= 'a' && c <= 'f')
}

func isHexDigit(c rune) bool {
	return isUpperHexDigit(c) || isLowerHexDigit(c)
}
