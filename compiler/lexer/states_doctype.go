package lexer

// DOCTYPE states. Every consumed character lands in the doctype's raw
// text, including the `<!DOCTYPE` keyword captured by the markup
// declaration lookahead and the PUBLIC/SYSTEM keywords below.

func (l *Lexer) stateDoctype() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.createDoctype(0, false)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
		l.state = StateBeforeDoctypeName
	case l.cur == '>':
		l.reconsumeIn(StateBeforeDoctypeName)
	default:
		l.emitError(ErrMissingWhitespaceBeforeDoctypeName)
		l.reconsumeIn(StateBeforeDoctypeName)
	}
}

func (l *Lexer) stateBeforeDoctypeName() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.createDoctype(0, false)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
	case isASCIIUpperAlpha(l.cur):
		l.appendDoctypeRaw(l.cur)
		l.createDoctype(l.cur+0x20, true)
		l.state = StateDoctypeName
	case l.cur == 0:
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrUnexpectedNullCharacter)
		l.createDoctype(replacementCharacter, true)
		l.state = StateDoctypeName
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingDoctypeName)
		l.createDoctype(0, false)
		l.setForceQuirks()
		l.state = StateData
		l.emitDoctypeToken()
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendDoctypeRaw(l.cur)
		l.createDoctype(l.cur, true)
		l.state = StateDoctypeName
	}
}

func (l *Lexer) stateDoctypeName() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
		l.state = StateAfterDoctypeName
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.state = StateData
		l.emitDoctypeToken()
	case isASCIIUpperAlpha(l.cur):
		l.appendDoctypeRaw(l.cur)
		l.appendDoctypeName(l.cur + 0x20)
	case l.cur == 0:
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrUnexpectedNullCharacter)
		l.appendDoctypeName(replacementCharacter)
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendDoctypeRaw(l.cur)
		l.appendDoctypeName(l.cur)
	}
}

// stateAfterDoctypeName looks ahead six characters for the PUBLIC or
// SYSTEM keyword, rewinding on a mismatch.
func (l *Lexer) stateAfterDoctypeName() {
	rewindPos := l.input.CurPos()

	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.state = StateData
		l.emitDoctypeToken()
	default:
		keyword := make([]rune, 0, 6)
		keyword = append(keyword, l.cur)
		for i := 0; i < 5; i++ {
			l.consume()
			if !l.curOK {
				break
			}
			keyword = append(keyword, l.cur)
		}

		lowered := make([]rune, len(keyword))
		for i, c := range keyword {
			lowered[i] = asciiLower(c)
		}

		switch string(lowered) {
		case "public":
			l.state = StateAfterDoctypePublicKeyword
			if l.doctypeRaw != nil {
				l.doctypeRaw.WriteString(string(keyword))
			}
		case "system":
			l.state = StateAfterDoctypeSystemKeyword
			if l.doctypeRaw != nil {
				l.doctypeRaw.WriteString(string(keyword))
			}
		default:
			l.curPos = rewindPos
			l.input.ResetTo(rewindPos)
			l.emitError(ErrInvalidCharacterSequenceAfterDoctypeName)
			l.setForceQuirks()
			l.reconsumeIn(StateBogusDoctype)
		}
	}
}

func (l *Lexer) stateAfterDoctypePublicKeyword() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
		l.state = StateBeforeDoctypePublicIdentifier
	case l.cur == '"':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		l.setDoctypePublicID()
		l.state = StateDoctypePublicIdentifierDoubleQuoted
	case l.cur == '\'':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		l.setDoctypePublicID()
		l.state = StateDoctypePublicIdentifierSingleQuoted
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingDoctypePublicIdentifier)
		l.setForceQuirks()
		l.state = StateData
		l.emitDoctypeToken()
	default:
		l.emitError(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		l.setForceQuirks()
		l.reconsumeIn(StateBogusDoctype)
	}
}

func (l *Lexer) stateBeforeDoctypePublicIdentifier() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
	case l.cur == '"':
		l.appendDoctypeRaw(l.cur)
		l.setDoctypePublicID()
		l.state = StateDoctypePublicIdentifierDoubleQuoted
	case l.cur == '\'':
		l.appendDoctypeRaw(l.cur)
		l.setDoctypePublicID()
		l.state = StateDoctypePublicIdentifierSingleQuoted
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingDoctypePublicIdentifier)
		l.setForceQuirks()
		l.state = StateData
		l.emitDoctypeToken()
	default:
		l.emitError(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		l.setForceQuirks()
		l.reconsumeIn(StateBogusDoctype)
	}
}

func (l *Lexer) stateDoctypePublicIdentifierQuoted(quote rune) {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case l.cur == quote:
		l.appendDoctypeRaw(l.cur)
		l.state = StateAfterDoctypePublicIdentifier
	case l.cur == 0:
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrUnexpectedNullCharacter)
		l.appendDoctypePublicID(replacementCharacter)
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrAbruptDoctypePublicIdentifier)
		l.setForceQuirks()
		l.state = StateData
		l.emitDoctypeToken()
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendDoctypeRaw(l.cur)
		l.appendDoctypePublicID(l.cur)
	}
}

func (l *Lexer) stateAfterDoctypePublicIdentifier() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
		l.state = StateBetweenDoctypePublicAndSystemIdentifiers
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.state = StateData
		l.emitDoctypeToken()
	case l.cur == '"':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		l.setDoctypeSystemID()
		l.state = StateDoctypeSystemIdentifierDoubleQuoted
	case l.cur == '\'':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		l.setDoctypeSystemID()
		l.state = StateDoctypeSystemIdentifierSingleQuoted
	default:
		l.emitError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		l.setForceQuirks()
		l.reconsumeIn(StateBogusDoctype)
	}
}

func (l *Lexer) stateBetweenDoctypePublicAndSystemIdentifiers() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.state = StateData
		l.emitDoctypeToken()
	case l.cur == '"':
		l.appendDoctypeRaw(l.cur)
		l.setDoctypeSystemID()
		l.state = StateDoctypeSystemIdentifierDoubleQuoted
	case l.cur == '\'':
		l.appendDoctypeRaw(l.cur)
		l.setDoctypeSystemID()
		l.state = StateDoctypeSystemIdentifierSingleQuoted
	default:
		l.emitError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		l.setForceQuirks()
		l.reconsumeIn(StateBogusDoctype)
	}
}

func (l *Lexer) stateAfterDoctypeSystemKeyword() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
		l.state = StateBeforeDoctypeSystemIdentifier
	case l.cur == '"':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		l.setDoctypeSystemID()
		l.state = StateDoctypeSystemIdentifierDoubleQuoted
	case l.cur == '\'':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		l.setDoctypeSystemID()
		l.state = StateDoctypeSystemIdentifierSingleQuoted
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingDoctypeSystemIdentifier)
		l.setForceQuirks()
		l.state = StateData
		l.emitDoctypeToken()
	default:
		l.emitError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		l.setForceQuirks()
		l.reconsumeIn(StateBogusDoctype)
	}
}

func (l *Lexer) stateBeforeDoctypeSystemIdentifier() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
	case l.cur == '"':
		l.appendDoctypeRaw(l.cur)
		l.setDoctypeSystemID()
		l.state = StateDoctypeSystemIdentifierDoubleQuoted
	case l.cur == '\'':
		l.appendDoctypeRaw(l.cur)
		l.setDoctypeSystemID()
		l.state = StateDoctypeSystemIdentifierSingleQuoted
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrMissingDoctypeSystemIdentifier)
		l.setForceQuirks()
		l.state = StateData
		l.emitDoctypeToken()
	default:
		l.emitError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		l.setForceQuirks()
		l.reconsumeIn(StateBogusDoctype)
	}
}

func (l *Lexer) stateDoctypeSystemIdentifierQuoted(quote rune) {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case l.cur == quote:
		l.appendDoctypeRaw(l.cur)
		l.state = StateAfterDoctypeSystemIdentifier
	case l.cur == 0:
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrUnexpectedNullCharacter)
		l.appendDoctypeSystemID(replacementCharacter)
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrAbruptDoctypeSystemIdentifier)
		l.setForceQuirks()
		l.state = StateData
		l.emitDoctypeToken()
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendDoctypeRaw(l.cur)
		l.appendDoctypeSystemID(l.cur)
	}
}

func (l *Lexer) stateAfterDoctypeSystemIdentifier() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInDoctype)
		l.setForceQuirks()
		l.emitDoctypeToken()
		l.emitEOF()
	case isSpacy(l.cur):
		l.appendDoctypeRaw(l.cur)
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.state = StateData
		l.emitDoctypeToken()
	default:
		l.emitError(ErrUnexpectedCharacterAfterDoctypeSystemIdentifier)
		l.reconsumeIn(StateBogusDoctype)
	}
}

func (l *Lexer) stateBogusDoctype() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitDoctypeToken()
		l.emitEOF()
	case l.cur == '>':
		l.appendDoctypeRaw(l.cur)
		l.state = StateData
		l.emitDoctypeToken()
	case l.cur == 0:
		l.appendDoctypeRaw(l.cur)
		l.emitError(ErrUnexpectedNullCharacter)
	default:
		l.validateInputStreamCharacter(l.cur)
		l.appendDoctypeRaw(l.cur)
	}
}
