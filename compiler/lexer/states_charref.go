package lexer

import (
	"strings"

	"github.com/chisel-web/chisel/compiler/entities"
)

// Character-reference sub-machine. The return state set before entering
// is restored on every exit path.

func (l *Lexer) stateCharacterReference() {
	l.clearTmpBuf()
	l.tmpBuf = append(l.tmpBuf, '&')

	l.consume()
	switch {
	case l.curOK && isASCIIAlphanumeric(l.cur):
		l.reconsumeIn(StateNamedCharacterReference)
	case l.curOK && l.cur == '#':
		l.tmpBuf = append(l.tmpBuf, l.cur)
		l.state = StateNumericCharacterReference
	default:
		l.flushCharacterReference("")
		l.reconsumeIn(l.returnState)
	}
}

// stateNamedCharacterReference consumes the longest possible entity name,
// remembering the last position at which the buffer matched the table.
// The buffer is bounded by the longest table entry.
func (l *Lexer) stateNamedCharacterReference() {
	initialPos := l.input.CurPos()

	var (
		matched    string
		matchedPos = -1
	)

	candidate := make([]rune, len(l.tmpBuf), entities.MaxReferenceLength)
	copy(candidate, l.tmpBuf)

	for {
		l.consume()
		if !l.curOK {
			break
		}
		candidate = append(candidate, l.cur)

		if chars, ok := entities.Lookup(string(candidate[1:])); ok {
			matched = chars
			matchedPos = l.input.CurPos()
			l.tmpBuf = append(l.tmpBuf[:1], candidate[1:]...)
		} else if !isASCIIAlphanumeric(l.cur) || len(candidate) > entities.MaxReferenceLength-1 {
			break
		}
	}

	if matchedPos >= 0 {
		l.curPos = matchedPos
		l.input.ResetTo(matchedPos)
	} else {
		l.curPos = initialPos
		l.input.ResetTo(initialPos)
	}

	if matchedPos < 0 {
		l.flushCharacterReference("")
		l.state = StateAmbiguousAmpersand
		return
	}

	lastIsSemicolon := len(l.tmpBuf) > 0 && l.tmpBuf[len(l.tmpBuf)-1] == ';'

	nextIsEqualsOrAlnum := false
	if next, ok := l.input.Cur(); ok {
		nextIsEqualsOrAlnum = next == '=' || isASCIIAlphanumeric(next)
	}

	// Historical quirk: inside an attribute, a reference without a
	// trailing semicolon followed by `=` or an alphanumeric is left
	// undecoded.
	if l.isConsumedAsPartOfAnAttribute() && !lastIsSemicolon && nextIsEqualsOrAlnum {
		l.flushCharacterReference("")
		l.state = l.returnState
		return
	}

	if !lastIsSemicolon {
		l.emitError(ErrMissingSemicolonAfterCharacterReference)
	}

	raw := l.tmpBufString()
	l.clearTmpBuf()
	l.tmpBuf = append(l.tmpBuf, []rune(matched)...)
	l.flushCharacterReference(raw)
	l.state = l.returnState
}

func (l *Lexer) stateAmbiguousAmpersand() {
	l.consume()
	switch {
	case l.curOK && isASCIIAlphanumeric(l.cur):
		if l.isConsumedAsPartOfAnAttribute() {
			l.appendAttributeValue(false, &l.cur, &l.cur)
		} else {
			l.emitCharacter(l.cur)
		}
	case l.curOK && l.cur == ';':
		l.emitError(ErrUnknownNamedCharacterReference)
		l.reconsumeIn(l.returnState)
	default:
		l.reconsumeIn(l.returnState)
	}
}

func (l *Lexer) stateNumericCharacterReference() {
	l.charRefCode = append(l.charRefCode[:0], charRefDigit{})

	l.consume()
	switch {
	case l.curOK && (l.cur == 'x' || l.cur == 'X'):
		l.tmpBuf = append(l.tmpBuf, l.cur)
		l.state = StateHexCharacterReferenceStart
	default:
		l.reconsumeIn(StateDecimalCharacterReferenceStart)
	}
}

func (l *Lexer) stateHexCharacterReferenceStart() {
	l.consume()
	switch {
	case l.curOK && isHexDigit(l.cur):
		l.reconsumeIn(StateHexCharacterReference)
	default:
		l.emitError(ErrAbsenceOfDigitsInNumericCharacterReference)
		l.flushCharacterReference("")
		l.reconsumeIn(l.returnState)
	}
}

func (l *Lexer) stateDecimalCharacterReferenceStart() {
	l.consume()
	switch {
	case l.curOK && isASCIIDigit(l.cur):
		l.reconsumeIn(StateDecimalCharacterReference)
	default:
		l.emitError(ErrAbsenceOfDigitsInNumericCharacterReference)
		l.flushCharacterReference("")
		l.reconsumeIn(l.returnState)
	}
}

func (l *Lexer) stateHexCharacterReference() {
	l.consume()
	switch {
	case l.curOK && isASCIIDigit(l.cur):
		l.charRefCode = append(l.charRefCode, charRefDigit{base: 16, value: uint32(l.cur) - 0x30, raw: l.cur, hasRaw: true})
	case l.curOK && isUpperHexDigit(l.cur):
		l.charRefCode = append(l.charRefCode, charRefDigit{base: 16, value: uint32(l.cur) - 0x37, raw: l.cur, hasRaw: true})
	case l.curOK && isLowerHexDigit(l.cur):
		l.charRefCode = append(l.charRefCode, charRefDigit{base: 16, value: uint32(l.cur) - 0x57, raw: l.cur, hasRaw: true})
	case l.curOK && l.cur == ';':
		l.state = StateNumericCharacterReferenceEnd
	default:
		l.emitError(ErrMissingSemicolonAfterCharacterReference)
		l.reconsumeIn(StateNumericCharacterReferenceEnd)
	}
}

func (l *Lexer) stateDecimalCharacterReference() {
	l.consume()
	switch {
	case l.curOK && isASCIIDigit(l.cur):
		l.charRefCode = append(l.charRefCode, charRefDigit{base: 10, value: uint32(l.cur) - 0x30, raw: l.cur, hasRaw: true})
	case l.curOK && l.cur == ';':
		l.state = StateNumericCharacterReferenceEnd
	default:
		l.emitError(ErrMissingSemicolonAfterCharacterReference)
		l.reconsumeIn(StateNumericCharacterReferenceEnd)
	}
}

// stateNumericCharacterReferenceEnd converts the accumulated digits with
// checked arithmetic, saturating past the Unicode range, then applies the
// specification's corrections before flushing.
func (l *Lexer) stateNumericCharacterReferenceEnd() {
	var (
		value      uint32
		overflowed bool
		rawDigits  strings.Builder
	)

	for _, d := range l.charRefCode {
		if d.hasRaw {
			rawDigits.WriteRune(d.raw)
		}
		if overflowed {
			continue
		}

		wide := uint64(value)*uint64(d.base) + uint64(d.value)
		if wide > 0x10FFFF {
			value = 0x110000
			overflowed = true
			continue
		}
		value = uint32(wide)
	}
	l.charRefCode = l.charRefCode[:0]

	cr := value
	switch {
	case value == 0:
		l.emitError(ErrNullCharacterReference)
		cr = 0xFFFD
	case value > 0x10FFFF:
		l.emitError(ErrCharacterReferenceOutsideUnicodeRange)
		cr = 0xFFFD
	case isSurrogate(value):
		l.emitError(ErrSurrogateCharacterReference)
		cr = 0xFFFD
	case isNoncharacter(value):
		l.emitError(ErrNoncharacterCharacterReference)
	case value == 0x0D || isControl(value):
		l.emitError(ErrControlCharacterReference)
		if mapped, ok := windows1252Remap[value]; ok {
			cr = uint32(mapped)
		}
	}

	var raw strings.Builder
	raw.WriteString(l.tmpBufString())
	raw.WriteString(rawDigits.String())
	if l.curOK && l.cur == ';' {
		raw.WriteRune(';')
	}

	l.clearTmpBuf()
	l.tmpBuf = append(l.tmpBuf, rune(cr))
	l.flushCharacterReference(raw.String())
	l.state = l.returnState
}

// windows1252Remap maps the C1 control range of numeric references to the
// characters legacy documents meant.
var windows1252Remap = map[uint32]rune{
	0x80: '€',
	0x82: '‚',
	0x83: 'ƒ',
	0x84: '„',
	0x85: '…',
	0x86: '†',
	0x87: '‡',
	0x88: 'ˆ',
	0x89: '‰',
	0x8A: 'Š',
	0x8B: '‹',
	0x8C: 'Œ',
	0x8E: 'Ž',
	0x91: '‘',
	0x92: '’',
	0x93: '“',
	0x94: '”',
	0x95: '•',
	0x96: '–',
	0x97: '—',
	0x98: '˜',
	0x99: '™',
	0x9A: 'š',
	0x9B: '›',
	0x9C: 'œ',
	0x9E: 'ž',
	0x9F: 'Ÿ',
}
