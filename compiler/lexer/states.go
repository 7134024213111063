package lexer

// step runs one state of the tokenization machine. Each call consumes at
// least one character or switches state; tokens accumulate on the pending
// queue and step never blocks.
func (l *Lexer) step() {
	switch l.state {
	case StateData:
		l.stateData()
	case StateRcdata:
		l.stateRcdata()
	case StateRawtext:
		l.stateRawtext()
	case StateScriptData:
		l.stateScriptData()
	case StatePlainText:
		l.statePlainText()
	case StateTagOpen:
		l.stateTagOpen()
	case StateEndTagOpen:
		l.stateEndTagOpen()
	case StateTagName:
		l.stateTagName()
	case StateRcdataLessThanSign:
		l.stateRcdataLessThanSign()
	case StateRcdataEndTagOpen:
		l.stateRcdataEndTagOpen()
	case StateRcdataEndTagName:
		l.stateRcdataEndTagName()
	case StateRawtextLessThanSign:
		l.stateRawtextLessThanSign()
	case StateRawtextEndTagOpen:
		l.stateRawtextEndTagOpen()
	case StateRawtextEndTagName:
		l.stateRawtextEndTagName()
	case StateScriptDataLessThanSign:
		l.stateScriptDataLessThanSign()
	case StateScriptDataEndTagOpen:
		l.stateScriptDataEndTagOpen()
	case StateScriptDataEndTagName:
		l.stateScriptDataEndTagName()
	case StateScriptDataEscapeStart:
		l.stateScriptDataEscapeStart()
	case StateScriptDataEscapeStartDash:
		l.stateScriptDataEscapeStartDash()
	case StateScriptDataEscaped:
		l.stateScriptDataEscaped()
	case StateScriptDataEscapedDash:
		l.stateScriptDataEscapedDash()
	case StateScriptDataEscapedDashDash:
		l.stateScriptDataEscapedDashDash()
	case StateScriptDataEscapedLessThanSign:
		l.stateScriptDataEscapedLessThanSign()
	case StateScriptDataEscapedEndTagOpen:
		l.stateScriptDataEscapedEndTagOpen()
	case StateScriptDataEscapedEndTagName:
		l.stateScriptDataEscapedEndTagName()
	case StateScriptDataDoubleEscapeStart:
		l.stateScriptDataDoubleEscapeStart()
	case StateScriptDataDoubleEscaped:
		l.stateScriptDataDoubleEscaped()
	case StateScriptDataDoubleEscapedDash:
		l.stateScriptDataDoubleEscapedDash()
	case StateScriptDataDoubleEscapedDashDash:
		l.stateScriptDataDoubleEscapedDashDash()
	case StateScriptDataDoubleEscapedLessThanSign:
		l.stateScriptDataDoubleEscapedLessThanSign()
	case StateScriptDataDoubleEscapeEnd:
		l.stateScriptDataDoubleEscapeEnd()
	case StateBeforeAttributeName:
		l.stateBeforeAttributeName()
	case StateAttributeName:
		l.stateAttributeName()
	case StateAfterAttributeName:
		l.stateAfterAttributeName()
	case StateBeforeAttributeValue:
		l.stateBeforeAttributeValue()
	case StateAttributeValueDoubleQuoted:
		l.stateAttributeValueDoubleQuoted()
	case StateAttributeValueSingleQuoted:
		l.stateAttributeValueSingleQuoted()
	case StateAttributeValueUnquoted:
		l.stateAttributeValueUnquoted()
	case StateAfterAttributeValueQuoted:
		l.stateAfterAttributeValueQuoted()
	case StateSelfClosingStartTag:
		l.stateSelfClosingStartTag()
	case StateBogusComment:
		l.stateBogusComment()
	case StateMarkupDeclarationOpen:
		l.stateMarkupDeclarationOpen()
	case StateCommentStart:
		l.stateCommentStart()
	case StateCommentStartDash:
		l.stateCommentStartDash()
	case StateComment:
		l.stateComment()
	case StateCommentLessThanSign:
		l.stateCommentLessThanSign()
	case StateCommentLessThanSignBang:
		l.stateCommentLessThanSignBang()
	case StateCommentLessThanSignBangDash:
		l.stateCommentLessThanSignBangDash()
	case StateCommentLessThanSignBangDashDash:
		l.stateCommentLessThanSignBangDashDash()
	case StateCommentEndDash:
		l.stateCommentEndDash()
	case StateCommentEnd:
		l.stateCommentEnd()
	case StateCommentEndBang:
		l.stateCommentEndBang()
	case StateDoctype:
		l.stateDoctype()
	case StateBeforeDoctypeName:
		l.stateBeforeDoctypeName()
	case StateDoctypeName:
		l.stateDoctypeName()
	case StateAfterDoctypeName:
		l.stateAfterDoctypeName()
	case StateAfterDoctypePublicKeyword:
		l.stateAfterDoctypePublicKeyword()
	case StateBeforeDoctypePublicIdentifier:
		l.stateBeforeDoctypePublicIdentifier()
	case StateDoctypePublicIdentifierDoubleQuoted:
		l.stateDoctypePublicIdentifierQuoted('"')
	case StateDoctypePublicIdentifierSingleQuoted:
		l.stateDoctypePublicIdentifierQuoted('\'')
	case StateAfterDoctypePublicIdentifier:
		l.stateAfterDoctypePublicIdentifier()
	case StateBetweenDoctypePublicAndSystemIdentifiers:
		l.stateBetweenDoctypePublicAndSystemIdentifiers()
	case StateAfterDoctypeSystemKeyword:
		l.stateAfterDoctypeSystemKeyword()
	case StateBeforeDoctypeSystemIdentifier:
		l.stateBeforeDoctypeSystemIdentifier()
	case StateDoctypeSystemIdentifierDoubleQuoted:
		l.stateDoctypeSystemIdentifierQuoted('"')
	case StateDoctypeSystemIdentifierSingleQuoted:
		l.stateDoctypeSystemIdentifierQuoted('\'')
	case StateAfterDoctypeSystemIdentifier:
		l.stateAfterDoctypeSystemIdentifier()
	case StateBogusDoctype:
		l.stateBogusDoctype()
	case StateCdataSection:
		l.stateCdataSection()
	case StateCdataSectionBracket:
		l.stateCdataSectionBracket()
	case StateCdataSectionEnd:
		l.stateCdataSectionEnd()
	case StateCharacterReference:
		l.stateCharacterReference()
	case StateNamedCharacterReference:
		l.stateNamedCharacterReference()
	case StateAmbiguousAmpersand:
		l.stateAmbiguousAmpersand()
	case StateNumericCharacterReference:
		l.stateNumericCharacterReference()
	case StateHexCharacterReferenceStart:
		l.stateHexCharacterReferenceStart()
	case StateDecimalCharacterReferenceStart:
		l.stateDecimalCharacterReferenceStart()
	case StateHexCharacterReference:
		l.stateHexCharacterReference()
	case StateDecimalCharacterReference:
		l.stateDecimalCharacterReference()
	case StateNumericCharacterReferenceEnd:
		l.stateNumericCharacterReferenceEnd()
	}
}
