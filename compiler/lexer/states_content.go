package lexer

// Content states: data, RCDATA, RAWTEXT, script data, PLAINTEXT, their
// less-than-sign and end-tag groups, the script-data escape dances, and
// CDATA sections.

func (l *Lexer) stateData() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitEOF()
	case l.cur == '&':
		l.returnState = StateData
		l.state = StateCharacterReference
	case l.cur == '<':
		l.state = StateTagOpen
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.emitCharacter(l.cur)
	default:
		l.validateInputStreamCharacter(l.cur)
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateRcdata() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitEOF()
	case l.cur == '&':
		l.returnState = StateRcdata
		l.state = StateCharacterReference
	case l.cur == '<':
		l.state = StateRcdataLessThanSign
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.emitCharacterWithRaw(replacementCharacter, "\x00")
	default:
		l.validateInputStreamCharacter(l.cur)
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateRawtext() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitEOF()
	case l.cur == '<':
		l.state = StateRawtextLessThanSign
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.emitCharacterWithRaw(replacementCharacter, "\x00")
	default:
		l.validateInputStreamCharacter(l.cur)
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateScriptData() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitEOF()
	case l.cur == '<':
		l.state = StateScriptDataLessThanSign
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.emitCharacterWithRaw(replacementCharacter, "\x00")
	default:
		l.validateInputStreamCharacter(l.cur)
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) statePlainText() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitEOF()
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.emitCharacterWithRaw(replacementCharacter, "\x00")
	default:
		l.validateInputStreamCharacter(l.cur)
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateRcdataLessThanSign() {
	l.consume()
	switch {
	case l.curOK && l.cur == '/':
		l.clearTmpBuf()
		l.state = StateRcdataEndTagOpen
	default:
		l.emitCharacter('<')
		l.reconsumeIn(StateRcdata)
	}
}

func (l *Lexer) stateRcdataEndTagOpen() {
	l.consume()
	switch {
	case l.curOK && isASCIIAlpha(l.cur):
		l.createEndTag()
		l.reconsumeIn(StateRcdataEndTagName)
	default:
		l.emitCharacter('<')
		l.emitCharacter('/')
		l.reconsumeIn(StateRcdata)
	}
}

// endTagNameAnythingElse flushes the speculative `</name` text back out as
// characters when the end tag turns out not to be appropriate.
func (l *Lexer) endTagNameAnythingElse(returnTo State) {
	l.emitCharacter('<')
	l.emitCharacter('/')
	l.emitTmpBufAsCharacters()
	l.tag = nil
	l.reconsumeIn(returnTo)
}

func (l *Lexer) stateRcdataEndTagName() {
	l.rawTextEndTagName(StateRcdata)
}

func (l *Lexer) stateRawtextEndTagName() {
	l.rawTextEndTagName(StateRawtext)
}

func (l *Lexer) stateScriptDataEndTagName() {
	l.rawTextEndTagName(StateScriptData)
}

// rawTextEndTagName implements the shared RCDATA / RAWTEXT / script data
// end tag name state. Only an appropriate end tag leaves the content
// state; anything else re-emits the buffered text as characters.
func (l *Lexer) rawTextEndTagName(returnTo State) {
	l.consume()
	switch {
	case l.curOK && isSpacy(l.cur):
		if l.appropriateEndTag() {
			l.skipNextLF(l.cur)
			l.state = StateBeforeAttributeName
			return
		}
		l.endTagNameAnythingElse(returnTo)
	case l.curOK && l.cur == '/':
		if l.appropriateEndTag() {
			l.state = StateSelfClosingStartTag
			return
		}
		l.endTagNameAnythingElse(returnTo)
	case l.curOK && l.cur == '>':
		if l.appropriateEndTag() {
			l.state = StateData
			l.emitTagToken()
			return
		}
		l.endTagNameAnythingElse(returnTo)
	case l.curOK && isASCIIUpperAlpha(l.cur):
		l.appendTagName(l.cur+0x20, l.cur)
		l.tmpBuf = append(l.tmpBuf, l.cur)
	case l.curOK && isASCIILowerAlpha(l.cur):
		l.appendTagName(l.cur, l.cur)
		l.tmpBuf = append(l.tmpBuf, l.cur)
	default:
		l.endTagNameAnythingElse(returnTo)
	}
}

func (l *Lexer) stateRawtextLessThanSign() {
	l.consume()
	switch {
	case l.curOK && l.cur == '/':
		l.clearTmpBuf()
		l.state = StateRawtextEndTagOpen
	default:
		l.emitCharacter('<')
		l.reconsumeIn(StateRawtext)
	}
}

func (l *Lexer) stateRawtextEndTagOpen() {
	l.consume()
	switch {
	case l.curOK && isASCIIAlpha(l.cur):
		l.createEndTag()
		l.reconsumeIn(StateRawtextEndTagName)
	default:
		l.emitCharacter('<')
		l.emitCharacter('/')
		l.reconsumeIn(StateRawtext)
	}
}

func (l *Lexer) stateScriptDataLessThanSign() {
	l.consume()
	switch {
	case l.curOK && l.cur == '/':
		l.clearTmpBuf()
		l.state = StateScriptDataEndTagOpen
	case l.curOK && l.cur == '!':
		l.state = StateScriptDataEscapeStart
		l.emitCharacter('<')
		l.emitCharacter('!')
	default:
		l.emitCharacter('<')
		l.reconsumeIn(StateScriptData)
	}
}

func (l *Lexer) stateScriptDataEndTagOpen() {
	l.consume()
	switch {
	case l.curOK && isASCIIAlpha(l.cur):
		l.createEndTag()
		l.reconsumeIn(StateScriptDataEndTagName)
	default:
		l.emitCharacter('<')
		l.emitCharacter('/')
		l.reconsumeIn(StateScriptData)
	}
}

func (l *Lexer) stateScriptDataEscapeStart() {
	l.consume()
	switch {
	case l.curOK && l.cur == '-':
		l.state = StateScriptDataEscapeStartDash
		l.emitCharacter('-')
	default:
		l.reconsumeIn(StateScriptData)
	}
}

func (l *Lexer) stateScriptDataEscapeStartDash() {
	l.consume()
	switch {
	case l.curOK && l.cur == '-':
		l.state = StateScriptDataEscapedDashDash
		l.emitCharacter('-')
	default:
		l.reconsumeIn(StateScriptData)
	}
}

func (l *Lexer) stateScriptDataEscaped() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInScriptHtmlCommentLikeText)
		l.emitEOF()
	case l.cur == '-':
		l.state = StateScriptDataEscapedDash
		l.emitCharacter('-')
	case l.cur == '<':
		l.state = StateScriptDataEscapedLessThanSign
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.emitCharacterWithRaw(replacementCharacter, "\x00")
	default:
		l.validateInputStreamCharacter(l.cur)
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateScriptDataEscapedDash() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInScriptHtmlCommentLikeText)
		l.emitEOF()
	case l.cur == '-':
		l.state = StateScriptDataEscapedDashDash
		l.emitCharacter('-')
	case l.cur == '<':
		l.state = StateScriptDataEscapedLessThanSign
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.state = StateScriptDataEscaped
		l.emitCharacterWithRaw(replacementCharacter, "\x00")
	default:
		l.validateInputStreamCharacter(l.cur)
		l.state = StateScriptDataEscaped
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateScriptDataEscapedDashDash() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInScriptHtmlCommentLikeText)
		l.emitEOF()
	case l.cur == '-':
		l.emitCharacter('-')
	case l.cur == '<':
		l.state = StateScriptDataEscapedLessThanSign
	case l.cur == '>':
		l.state = StateScriptData
		l.emitCharacter('>')
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.state = StateScriptDataEscaped
		l.emitCharacterWithRaw(replacementCharacter, "\x00")
	default:
		l.validateInputStreamCharacter(l.cur)
		l.state = StateScriptDataEscaped
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateScriptDataEscapedLessThanSign() {
	l.consume()
	switch {
	case l.curOK && l.cur == '/':
		l.clearTmpBuf()
		l.state = StateScriptDataEscapedEndTagOpen
	case l.curOK && isASCIIAlpha(l.cur):
		l.clearTmpBuf()
		l.emitCharacter('<')
		l.reconsumeIn(StateScriptDataDoubleEscapeStart)
	default:
		l.emitCharacter('<')
		l.reconsumeIn(StateScriptDataEscaped)
	}
}

func (l *Lexer) stateScriptDataEscapedEndTagOpen() {
	l.consume()
	switch {
	case l.curOK && isASCIIAlpha(l.cur):
		l.createEndTag()
		l.reconsumeIn(StateScriptDataEscapedEndTagName)
	default:
		l.emitCharacter('<')
		l.emitCharacter('/')
		l.reconsumeIn(StateScriptDataEscaped)
	}
}

func (l *Lexer) stateScriptDataEscapedEndTagName() {
	l.rawTextEndTagName(StateScriptDataEscaped)
}

func (l *Lexer) stateScriptDataDoubleEscapeStart() {
	l.consume()
	switch {
	case l.curOK && (isSpacy(l.cur) || l.cur == '/' || l.cur == '>'):
		if l.tmpBufString() == "script" {
			l.state = StateScriptDataDoubleEscaped
		} else {
			l.state = StateScriptDataEscaped
		}
		l.skipNextLF(l.cur)
		l.emitCharacter(l.cur)
	case l.curOK && isASCIIUpperAlpha(l.cur):
		l.tmpBuf = append(l.tmpBuf, l.cur+0x20)
		l.emitCharacter(l.cur)
	case l.curOK && isASCIILowerAlpha(l.cur):
		l.tmpBuf = append(l.tmpBuf, l.cur)
		l.emitCharacter(l.cur)
	default:
		l.reconsumeIn(StateScriptDataEscaped)
	}
}

func (l *Lexer) stateScriptDataDoubleEscaped() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInScriptHtmlCommentLikeText)
		l.emitEOF()
	case l.cur == '-':
		l.state = StateScriptDataDoubleEscapedDash
		l.emitCharacter('-')
	case l.cur == '<':
		l.state = StateScriptDataDoubleEscapedLessThanSign
		l.emitCharacter('<')
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.emitCharacterWithRaw(replacementCharacter, "\x00")
	default:
		l.validateInputStreamCharacter(l.cur)
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateScriptDataDoubleEscapedDash() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInScriptHtmlCommentLikeText)
		l.emitEOF()
	case l.cur == '-':
		l.state = StateScriptDataDoubleEscapedDashDash
		l.emitCharacter('-')
	case l.cur == '<':
		l.state = StateScriptDataDoubleEscapedLessThanSign
		l.emitCharacter('<')
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.state = StateScriptDataDoubleEscaped
		l.emitCharacterWithRaw(replacementCharacter, "\x00")
	default:
		l.validateInputStreamCharacter(l.cur)
		l.state = StateScriptDataDoubleEscaped
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateScriptDataDoubleEscapedDashDash() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInScriptHtmlCommentLikeText)
		l.emitEOF()
	case l.cur == '-':
		l.emitCharacter('-')
	case l.cur == '<':
		l.state = StateScriptDataDoubleEscapedLessThanSign
		l.emitCharacter('<')
	case l.cur == '>':
		l.state = StateScriptData
		l.emitCharacter('>')
	case l.cur == 0:
		l.emitError(ErrUnexpectedNullCharacter)
		l.state = StateScriptDataDoubleEscaped
		l.emitCharacterWithRaw(replacementCharacter, "\x00")
	default:
		l.validateInputStreamCharacter(l.cur)
		l.state = StateScriptDataDoubleEscaped
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateScriptDataDoubleEscapedLessThanSign() {
	l.consume()
	switch {
	case l.curOK && l.cur == '/':
		l.clearTmpBuf()
		l.state = StateScriptDataDoubleEscapeEnd
		l.emitCharacter('/')
	default:
		l.reconsumeIn(StateScriptDataDoubleEscaped)
	}
}

func (l *Lexer) stateScriptDataDoubleEscapeEnd() {
	l.consume()
	switch {
	case l.curOK && (isSpacy(l.cur) || l.cur == '/' || l.cur == '>'):
		if l.tmpBufString() == "script" {
			l.state = StateScriptDataEscaped
		} else {
			l.state = StateScriptDataDoubleEscaped
		}
		l.skipNextLF(l.cur)
		l.emitCharacter(l.cur)
	case l.curOK && isASCIIUpperAlpha(l.cur):
		l.tmpBuf = append(l.tmpBuf, l.cur+0x20)
		l.emitCharacter(l.cur)
	case l.curOK && isASCIILowerAlpha(l.cur):
		l.tmpBuf = append(l.tmpBuf, l.cur)
		l.emitCharacter(l.cur)
	default:
		l.reconsumeIn(StateScriptDataDoubleEscaped)
	}
}

func (l *Lexer) stateCdataSection() {
	l.consume()
	switch {
	case !l.curOK:
		l.emitError(ErrEofInCdata)
		l.emitEOF()
	case l.cur == ']':
		l.state = StateCdataSectionBracket
	default:
		l.validateInputStreamCharacter(l.cur)
		l.emitCharacterRaw(l.cur)
	}
}

func (l *Lexer) stateCdataSectionBracket() {
	l.consume()
	switch {
	case l.curOK && l.cur == ']':
		l.state = StateCdataSectionEnd
	default:
		l.emitCharacter(']')
		l.reconsumeIn(StateCdataSection)
	}
}

func (l *Lexer) stateCdataSectionEnd() {
	l.consume()
	switch {
	case l.curOK && l.cur == ']':
		l.emitCharacter(']')
	case l.curOK && l.cur == '>':
		l.state = StateData
	default:
		l.emitCharacter(']')
		l.emitCharacter(']')
		l.reconsumeIn(StateCdataSection)
	}
}
