package lexer

import "strings"

// Tag states: tag open, tag name, the attribute group, self-closing, and
// the markup declaration lookahead.

func (l *Lexer) stateTagOpen() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofBeforeTagName)
		l.emitCharacter('<')
		l.emitEOF()
	case l.cur == '!':
		l.state = StateMarkupDeclarationOpen
	case l.cur == '/':
		l.state = StateEndTagOpen
	case isASCIIAlpha(l.cur):
		l.createStartTag()
		l.reconsumeIn(StateTagName)
	case l.cur == '?':
		l.emitError(ErrUnexpectedQuestionMarkInsteadOfTagName)
		l.createComment("", "<")
		l.reconsumeIn(StateBogusComment)
	default:
		l.emitError(ErrInvalidFirstCharacterOfTagName)
		l.emitCharacter('<')
		l.reconsumeIn(StateData)
	}
}

func (l *Lexer) stateEndTagOpen() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofBeforeTagName)
		l.emitCharacter('<')
		l.emitCharacter('/')
		l.emitEOF()
	case isASCIIAlpha(l.cur):
		l.createEndTag()
		l.reconsumeIn(StateTagName)
	case l.cur == '>':
		l.emitError(ErrMissingEndTagName)
		l.state = StateData
	default:
		l.emitError(ErrInvalidFirstCharacterOfTagName)
		l.createComment("", "</")
		l.reconsumeIn(StateBogusComment)
	}
}

func (l *Lexer) stateTagName() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInTag)
		l.emitEOF()
	case isSpacy(l.cur):
		l.skipNextLF(l.cur)
		l.state = StateBeforeAttributeName
	case l.cur == '/':
		l.state = StateSelfClosingStartTag
	case l.cur == '>':
		l.state = StateData
		l.emitTagToken()
	case isASCIIUpperAlpha(l.cur):
		l.appendTagName(l.cur+0x20, l.cur)
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.appendTagName(replacementCharacter, l.cur)
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendTagName(l.cur, l.cur)
	}
}

func (l *Lexer) stateBeforeAttributeName() {
	l.consume()
	switch {
	case !l.curOK:
		l.reconsumeIn(StateAfterAttributeName)
	case isSpacy(l.cur):
		l.skipNextLF(l.cur)
	case l.cur == '/' || l.cur == '>':
		l.reconsumeIn(StateAfterAttributeName)
	case l.cur == '=':
		l.emitError(ErrUnexpectedEqualsSignBeforeAttributeName)
		l.startNewAttribute()
		l.appendAttributeName(l.cur, l.cur)
		l.state = StateAttributeName
	default:
		l.startNewAttribute()
		l.reconsumeIn(StateAttributeName)
	}
}

func (l *Lexer) stateAttributeName() {
	l.consume()
	switch {
	case !l.curOK:
		l.updateAttributeSpan()
		l.reconsumeIn(StateAfterAttributeName)
	case isSpacy(l.cur):
		l.updateAttributeSpan()
		l.skipNextLF(l.cur)
		l.reconsumeIn(StateAfterAttributeName)
	case l.cur == '/' || l.cur == '>':
		l.updateAttributeSpan()
		l.reconsumeIn(StateAfterAttributeName)
	case l.cur == '=':
		l.state = StateBeforeAttributeValue
	case isASCIIUpperAlpha(l.cur):
		l.appendAttributeName(l.cur+0x20, l.cur)
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.appendAttributeName(replacementCharacter, l.cur)
	case l.cur == '"' || l.cur == '\'' || l.cur == '<':
		l.emitError(ErrUnexpectedCharacterInAttributeName)
		l.appendAttributeName(l.cur, l.cur)
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendAttributeName(l.cur, l.cur)
	}
	// Duplicate names are reported when the tag token is emitted, not
	// here; the attribute vector keeps every occurrence.
}

func (l *Lexer) stateAfterAttributeName() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInTag)
		l.emitEOF()
	case isSpacy(l.cur):
		l.skipNextLF(l.cur)
	case l.cur == '/':
		l.state = StateSelfClosingStartTag
	case l.cur == '=':
		l.state = StateBeforeAttributeValue
	case l.cur == '>':
		l.state = StateData
		l.emitTagToken()
	default:
		l.startNewAttribute()
		l.reconsumeIn(StateAttributeName)
	}
}

func (l *Lexer) stateBeforeAttributeValue() {
	l.consume()
	switch {
	case !l.curOK:
		l.reconsumeIn(StateAttributeValueUnquoted)
	case isSpacy(l.cur):
		l.skipNextLF(l.cur)
	case l.cur == '"':
		l.appendAttributeValue(true, nil, &l.cur)
		l.state = StateAttributeValueDoubleQuoted
	case l.cur == '\'':
		l.appendAttributeValue(true, nil, &l.cur)
		l.state = StateAttributeValueSingleQuoted
	case l.cur == '>':
		l.emitError(ErrMissingAttributeValue)
		l.state = StateData
		l.emitTagToken()
	default:
		l.reconsumeIn(StateAttributeValueUnquoted)
	}
}

func (l *Lexer) stateAttributeValueDoubleQuoted() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInTag)
		l.emitEOF()
	case l.cur == '"':
		l.appendAttributeValue(true, nil, &l.cur)
		l.state = StateAfterAttributeValueQuoted
	case l.cur == '&':
		l.returnState = StateAttributeValueDoubleQuoted
		l.state = StateCharacterReference
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		r := rune(replacementCharacter)
		l.appendAttributeValue(false, &r, &l.cur)
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendAttributeValue(false, &l.cur, &l.cur)
	}
}

func (l *Lexer) stateAttributeValueSingleQuoted() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInTag)
		l.emitEOF()
	case l.cur == '\'':
		l.appendAttributeValue(true, nil, &l.cur)
		l.state = StateAfterAttributeValueQuoted
	case l.cur == '&':
		l.returnState = StateAttributeValueSingleQuoted
		l.state = StateCharacterReference
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		r := rune(replacementCharacter)
		l.appendAttributeValue(false, &r, &l.cur)
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendAttributeValue(false, &l.cur, &l.cur)
	}
}

func (l *Lexer) stateAttributeValueUnquoted() {
	l.consume()
	switch {
	case !l.curOK:
		l.updateAttributeSpan()
		l.emitError(ErrEofInTag)
		l.emitEOF()
	case isSpacy(l.cur):
		l.updateAttributeSpan()
		l.skipNextLF(l.cur)
		l.state = StateBeforeAttributeName
	case l.cur == '&':
		l.returnState = StateAttributeValueUnquoted
		l.state = StateCharacterReference
	case l.cur == '>':
		l.updateAttributeSpan()
		l.state = StateData
		l.emitTagToken()
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		r := rune(replacementCharacter)
		l.appendAttributeValue(false, &r, &l.cur)
	case l.cur == '"' || l.cur == '\'' || l.cur == '<' || l.cur == '=' || l.cur == '`':
		l.emitError(ErrUnexpectedCharacterInUnquotedAttributeValue)
		l.appendAttributeValue(false, &l.cur, &l.cur)
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendAttributeValue(false, &l.cur, &l.cur)
	}
}

func (l *Lexer) stateAfterAttributeValueQuoted() {
	l.consume()
	switch {
	case !l.curOK:
		l.updateAttributeSpan()
		l.emitError(ErrEofInTag)
		l.emitEOF()
	case isSpacy(l.cur):
		l.updateAttributeSpan()
		l.skipNextLF(l.cur)
		l.state = StateBeforeAttributeName
	case l.cur == '/':
		l.updateAttributeSpan()
		l.state = StateSelfClosingStartTag
	case l.cur == '>':
		l.updateAttributeSpan()
		l.state = StateData
		l.emitTagToken()
	default:
		l.updateAttributeSpan()
		l.emitError(ErrMissingWhitespaceBetweenAttributes)
		l.reconsumeIn(StateBeforeAttributeName)
	}
}

func (l *Lexer) stateSelfClosingStartTag() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInTag)
		l.emitEOF()
	case l.cur == '>':
		if l.tag != nil {
			l.tag.selfClosing = true
		}
		l.state = StateData
		l.emitTagToken()
	default:
		l.emitError(ErrUnexpectedSolidusInTag)
		l.reconsumeIn(StateBeforeAttributeName)
	}
}

func (l *Lexer) stateBogusComment() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitCommentToken("")
		l.emitEOF()
	case l.cur == '>':
		l.state = StateData
		l.emitCommentToken(">")
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.appendComment(replacementCharacter, l.cur)
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendCommentRaw(l.cur)
	}
}

// stateMarkupDeclarationOpen performs the multi-character lookahead after
// `<!`. On a mismatch the input rewinds to just past `<!` and tokenization
// continues as a bogus comment; no validation runs on rewound characters.
func (l *Lexer) stateMarkupDeclarationOpen() {
	rewindPos := l.input.CurPos()

	anythingElse := func() {
		l.emitError(ErrIncorrectlyOpenedComment)
		l.createComment("", "<!")
		l.state = StateBogusComment
		l.curPos = rewindPos
		l.input.ResetTo(rewindPos)
	}

	l.consume()
	if !l.curOK {
		anythingElse()
		return
	}

	switch l.cur {
	case '-':
		l.consume()
		if l.curOK && l.cur == '-' {
			l.createComment("", "<!--")
			l.state = StateCommentStart
			return
		}
		anythingElse()
	case 'd', 'D':
		raw := make([]rune, 0, 9)
		raw = append(raw, '<', '!', l.cur)

		rest := "octype"
		for i := 0; i < len(rest); i++ {
			l.consume()
			if !l.curOK || asciiLower(l.cur) != rune(rest[i]) {
				anythingElse()
				return
			}
			raw = append(raw, l.cur)
		}

		l.state = StateDoctype
		sb := &strings.Builder{}
		sb.WriteString(string(raw))
		l.doctypeRaw = sb
	case '[':
		rest := "CDATA"
		data := make([]rune, 0, 7)
		data = append(data, '[')

		for i := 0; i < len(rest); i++ {
			l.consume()
			if !l.curOK || asciiUpper(l.cur) != rune(rest[i]) {
				anythingElse()
				return
			}
			data = append(data, l.cur)
		}

		l.consume()
		if !l.curOK || l.cur != '[' {
			anythingElse()
			return
		}
		data = append(data, '[')

		if l.adjustedCurrentNodeIsHTML != nil && !*l.adjustedCurrentNodeIsHTML {
			l.state = StateCdataSection
			return
		}

		l.emitError(ErrCdataInHtmlContent)
		l.createComment(string(data), "<!")
		l.state = StateBogusComment
	default:
		anythingElse()
	}
}

func asciiLower(c rune) rune {
	if isASCIIUpperAlpha(c) {
		return c + 0x20
	}
	return c
}

func asciiUpper(c rune) rune {
	if isASCIILowerAlpha(c) {
		return c - 0x20
	}
	return c
}
