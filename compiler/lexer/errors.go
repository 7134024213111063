package lexer

import (
	"fmt"

	"github.com/chisel-web/chisel/compiler/span"
)

// ErrorKind identifies a parse error defined by the HTML tokenization
// specification. The String form of each kind is its specification name.
type ErrorKind int

const (
	ErrUnexpectedNullCharacter ErrorKind = iota
	ErrEofBeforeTagName
	ErrMissingEndTagName
	ErrInvalidFirstCharacterOfTagName
	ErrUnexpectedQuestionMarkInsteadOfTagName
	ErrDuplicateAttribute
	ErrEndTagWithAttributes
	ErrEndTagWithTrailingSolidus
	ErrEofInTag
	ErrEofInComment
	ErrEofInDoctype
	ErrEofInScriptHtmlCommentLikeText
	ErrEofInCdata
	ErrCdataInHtmlContent
	ErrIncorrectlyOpenedComment
	ErrIncorrectlyClosedComment
	ErrAbruptClosingOfEmptyComment
	ErrNestedComment
	ErrMissingWhitespaceBeforeDoctypeName
	ErrMissingDoctypeName
	ErrInvalidCharacterSequenceAfterDoctypeName
	ErrMissingWhitespaceAfterDoctypePublicKeyword
	ErrMissingWhitespaceAfterDoctypeSystemKeyword
	ErrMissingDoctypePublicIdentifier
	ErrMissingDoctypeSystemIdentifier
	ErrMissingQuoteBeforeDoctypePublicIdentifier
	ErrMissingQuoteBeforeDoctypeSystemIdentifier
	ErrAbruptDoctypePublicIdentifier
	ErrAbruptDoctypeSystemIdentifier
	ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers
	ErrUnexpectedCharacterAfterDoctypeSystemIdentifier
	ErrUnexpectedCharacterInAttributeName
	ErrUnexpectedEqualsSignBeforeAttributeName
	ErrMissingAttributeValue
	ErrUnexpectedCharacterInUnquotedAttributeValue
	ErrMissingWhitespaceBetweenAttributes
	ErrUnexpectedSolidusInTag
	ErrAbsenceOfDigitsInNumericCharacterReference
	ErrMissingSemicolonAfterCharacterReference
	ErrUnknownNamedCharacterReference
	ErrNullCharacterReference
	ErrCharacterReferenceOutsideUnicodeRange
	ErrSurrogateCharacterReference
	ErrNoncharacterCharacterReference
	ErrControlCharacterReference
	ErrSurrogateInInputStream
	ErrNoncharacterInInputStream
	ErrControlCharacterInInputStream
)

var errorKindNames = map[ErrorKind]string{
	ErrUnexpectedNullCharacter:                                   "UnexpectedNullCharacter",
	ErrEofBeforeTagName:                                          "EofBeforeTagName",
	ErrMissingEndTagName:                                         "MissingEndTagName",
	ErrInvalidFirstCharacterOfTagName:                            "InvalidFirstCharacterOfTagName",
	ErrUnexpectedQuestionMarkInsteadOfTagName:                    "UnexpectedQuestionMarkInsteadOfTagName",
	ErrDuplicateAttribute:                                        "DuplicateAttribute",
	ErrEndTagWithAttributes:                                      "EndTagWithAttributes",
	ErrEndTagWithTrailingSolidus:                                 "EndTagWithTrailingSolidus",
	ErrEofInTag:                                                  "EofInTag",
	ErrEofInComment:                                              "EofInComment",
	ErrEofInDoctype:                                              "EofInDoctype",
	ErrEofInScriptHtmlCommentLikeText:                            "EofInScriptHtmlCommentLikeText",
	ErrEofInCdata:                                                "EofInCdata",
	ErrCdataInHtmlContent:                                        "CdataInHtmlContent",
	ErrIncorrectlyOpenedComment:                                  "IncorrectlyOpenedComment",
	ErrIncorrectlyClosedComment:                                  "IncorrectlyClosedComment",
	ErrAbruptClosingOfEmptyComment:                               "AbruptClosingOfEmptyComment",
	ErrNestedComment:                                             "NestedComment",
	ErrMissingWhitespaceBeforeDoctypeName:                        "MissingWhitespaceBeforeDoctypeName",
	ErrMissingDoctypeName:                                        "MissingDoctypeName",
	ErrInvalidCharacterSequenceAfterDoctypeName:                  "InvalidCharacterSequenceAfterDoctypeName",
	ErrMissingWhitespaceAfterDoctypePublicKeyword:                "MissingWhitespaceAfterDoctypePublicKeyword",
	ErrMissingWhitespaceAfterDoctypeSystemKeyword:                "MissingWhitespaceAfterDoctypeSystemKeyword",
	ErrMissingDoctypePublicIdentifier:                            "MissingDoctypePublicIdentifier",
	ErrMissingDoctypeSystemIdentifier:                            "MissingDoctypeSystemIdentifier",
	ErrMissingQuoteBeforeDoctypePublicIdentifier:                 "MissingQuoteBeforeDoctypePublicIdentifier",
	ErrMissingQuoteBeforeDoctypeSystemIdentifier:                 "MissingQuoteBeforeDoctypeSystemIdentifier",
	ErrAbruptDoctypePublicIdentifier:                             "AbruptDoctypePublicIdentifier",
	ErrAbruptDoctypeSystemIdentifier:                             "AbruptDoctypeSystemIdentifier",
	ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers: "MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers",
	ErrUnexpectedCharacterAfterDoctypeSystemIdentifier:           "UnexpectedCharacterAfterDoctypeSystemIdentifier",
	ErrUnexpectedCharacterInAttributeName:                        "UnexpectedCharacterInAttributeName",
	ErrUnexpectedEqualsSignBeforeAttributeName:                   "UnexpectedEqualsSignBeforeAttributeName",
	ErrMissingAttributeValue:                                     "MissingAttributeValue",
	ErrUnexpectedCharacterInUnquotedAttributeValue:               "UnexpectedCharacterInUnquotedAttributeValue",
	ErrMissingWhitespaceBetweenAttributes:                        "MissingWhitespaceBetweenAttributes",
	ErrUnexpectedSolidusInTag:                                    "UnexpectedSolidusInTag",
	ErrAbsenceOfDigitsInNumericCharacterReference:                "AbsenceOfDigitsInNumericCharacterReference",
	ErrMissingSemicolonAfterCharacterReference:                   "MissingSemicolonAfterCharacterReference",
	ErrUnknownNamedCharacterReference:                            "UnknownNamedCharacterReference",
	ErrNullCharacterReference:                                    "NullCharacterReference",
	ErrCharacterReferenceOutsideUnicodeRange:                     "CharacterReferenceOutsideUnicodeRange",
	ErrSurrogateCharacterReference:                               "SurrogateCharacterReference",
	ErrNoncharacterCharacterReference:                            "NoncharacterCharacterReference",
	ErrControlCharacterReference:                                 "ControlCharacterReference",
	ErrSurrogateInInputStream:                                    "SurrogateInInputStream",
	ErrNoncharacterInInputStream:                                 "NoncharacterInInputStream",
	ErrControlCharacterInInputStream:                             "ControlCharacterInInputStream",
}

// String returns the specification name of the error kind
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// MarshalJSON implements json.Marshaler for ErrorKind
func (k ErrorKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Error is a recoverable parse error reported by the lexer. Errors
// accumulate out of band; tokenization always progresses.
type Error struct {
	Span span.Span
	Kind ErrorKind
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Lo, e.Span.Hi, e.Kind)
}
