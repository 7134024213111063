package lexer

import (
	"strings"
	"testing"
)

func lex(input string) ([]Token, []Error) {
	l := New(NewStringInput(input))
	tokens := l.All()
	return tokens, l.TakeErrors()
}

func collectText(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Type == TOKEN_CHARACTER {
			b.WriteRune(tok.Char)
		}
	}
	return b.String()
}

func hasError(errors []Error, kind ErrorKind) bool {
	for _, e := range errors {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// TestPlainText tests that ordinary text becomes character tokens
func TestPlainText(t *testing.T) {
	tokens, errors := lex("hello")

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	if len(tokens) != 6 { // 5 characters + EOF
		t.Fatalf("Expected 6 tokens, got %d", len(tokens))
	}
	if collectText(tokens) != "hello" {
		t.Errorf("Expected text %q, got %q", "hello", collectText(tokens))
	}
	if tokens[len(tokens)-1].Type != TOKEN_EOF {
		t.Errorf("Expected trailing EOF token")
	}
}

// TestStartTag tests basic start tag tokenization with case normalization
func TestStartTag(t *testing.T) {
	tests := []struct {
		input       string
		name        string
		rawName     string
		selfClosing bool
	}{
		{"<div>", "div", "div", false},
		{"<DIV>", "div", "DIV", false},
		{"<Br/>", "br", "Br", true},
		{"<feComponentTransfer>", "fecomponenttransfer", "feComponentTransfer", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, _ := lex(tt.input)

			if len(tokens) != 2 { // tag + EOF
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}
			tag := tokens[0]
			if tag.Type != TOKEN_START_TAG {
				t.Fatalf("Expected START_TAG, got %v", tag.Type)
			}
			if tag.TagName != tt.name {
				t.Errorf("Expected tag name %q, got %q", tt.name, tag.TagName)
			}
			if tag.RawTagName != tt.rawName {
				t.Errorf("Expected raw tag name %q, got %q", tt.rawName, tag.RawTagName)
			}
			if tag.SelfClosing != tt.selfClosing {
				t.Errorf("Expected selfClosing=%v", tt.selfClosing)
			}
		})
	}
}

// TestAttributeWithEntity tests that entity references decode inside
// attribute values while the raw value keeps the source bytes
func TestAttributeWithEntity(t *testing.T) {
	tokens, errors := lex(`<A HREF="a&amp;b">`)

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}

	tag := tokens[0]
	if tag.TagName != "a" || tag.RawTagName != "A" {
		t.Errorf("Expected tag a/A, got %q/%q", tag.TagName, tag.RawTagName)
	}
	if len(tag.Attributes) != 1 {
		t.Fatalf("Expected 1 attribute, got %d", len(tag.Attributes))
	}

	attr := tag.Attributes[0]
	if attr.Name != "href" {
		t.Errorf("Expected attribute name href, got %q", attr.Name)
	}
	if attr.RawName != "HREF" {
		t.Errorf("Expected raw attribute name HREF, got %q", attr.RawName)
	}
	if attr.Value == nil || *attr.Value != "a&b" {
		t.Errorf("Expected value a&b, got %v", attr.Value)
	}
	if attr.RawValue == nil || *attr.RawValue != "a&amp;b" {
		t.Errorf("Expected raw value a&amp;b, got %v", attr.RawValue)
	}
}

// TestBooleanAttribute tests that valueless attributes stay nil
func TestBooleanAttribute(t *testing.T) {
	tokens, _ := lex(`<input disabled empty="">`)

	tag := tokens[0]
	if len(tag.Attributes) != 2 {
		t.Fatalf("Expected 2 attributes, got %d", len(tag.Attributes))
	}
	if tag.Attributes[0].Value != nil {
		t.Errorf("Expected boolean attribute to have nil value")
	}
	if tag.Attributes[1].Value == nil || *tag.Attributes[1].Value != "" {
		t.Errorf("Expected empty-string value for empty=\"\"")
	}
}

// TestDuplicateAttribute tests that duplicates are reported but kept
func TestDuplicateAttribute(t *testing.T) {
	tokens, errors := lex(`<a b="1" b="2">`)

	if !hasError(errors, ErrDuplicateAttribute) {
		t.Errorf("Expected DuplicateAttribute error")
	}
	if len(tokens[0].Attributes) != 2 {
		t.Errorf("Expected both attributes kept, got %d", len(tokens[0].Attributes))
	}
}

// TestDoctype tests doctype tokenization and raw preservation
func TestDoctype(t *testing.T) {
	tokens, errors := lex("<!DOCTYPE html>")

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	doctype := tokens[0]
	if doctype.Type != TOKEN_DOCTYPE {
		t.Fatalf("Expected DOCTYPE, got %v", doctype.Type)
	}
	if doctype.Name == nil || *doctype.Name != "html" {
		t.Errorf("Expected doctype name html, got %v", doctype.Name)
	}
	if doctype.ForceQuirks {
		t.Errorf("Expected forceQuirks=false")
	}
	if doctype.PublicID != nil || doctype.SystemID != nil {
		t.Errorf("Expected no public/system id")
	}
	if doctype.Raw != "<!DOCTYPE html>" {
		t.Errorf("Expected raw %q, got %q", "<!DOCTYPE html>", doctype.Raw)
	}
}

// TestDoctypePublicSystem tests the PUBLIC keyword lookahead
func TestDoctypePublicSystem(t *testing.T) {
	input := `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`
	tokens, errors := lex(input)

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	doctype := tokens[0]
	if doctype.PublicID == nil || *doctype.PublicID != "-//W3C//DTD XHTML 1.0 Strict//EN" {
		t.Errorf("Wrong public id: %v", doctype.PublicID)
	}
	if doctype.SystemID == nil || *doctype.SystemID != "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd" {
		t.Errorf("Wrong system id: %v", doctype.SystemID)
	}
	if doctype.Raw != input {
		t.Errorf("Raw did not cover full doctype: %q", doctype.Raw)
	}
}

// TestDoctypeBogus tests rewind on an unknown keyword after the name
func TestDoctypeBogus(t *testing.T) {
	tokens, errors := lex("<!DOCTYPE html bogus>")

	if !hasError(errors, ErrInvalidCharacterSequenceAfterDoctypeName) {
		t.Errorf("Expected InvalidCharacterSequenceAfterDoctypeName")
	}
	if !tokens[0].ForceQuirks {
		t.Errorf("Expected forceQuirks after bogus doctype")
	}
}

// TestComment tests comment data and raw preservation
func TestComment(t *testing.T) {
	tokens, errors := lex("<!-- a < b -->")

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	comment := tokens[0]
	if comment.Type != TOKEN_COMMENT {
		t.Fatalf("Expected COMMENT, got %v", comment.Type)
	}
	if comment.Data != " a < b " {
		t.Errorf("Expected data %q, got %q", " a < b ", comment.Data)
	}
	if comment.Raw != "<!-- a < b -->" {
		t.Errorf("Expected raw %q, got %q", "<!-- a < b -->", comment.Raw)
	}
}

// TestCommentEdgeCases tests abrupt and nested comment errors
func TestCommentEdgeCases(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
		data  string
	}{
		{"<!-->", ErrAbruptClosingOfEmptyComment, ""},
		{"<!--->", ErrAbruptClosingOfEmptyComment, ""},
		{"<!-- a <!-- b -->", ErrNestedComment, " a <!-- b "},
		{"<!-- a --!>", ErrIncorrectlyClosedComment, " a "},
		{"<!doc>", ErrIncorrectlyOpenedComment, "doc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errors := lex(tt.input)

			if !hasError(errors, tt.kind) {
				t.Fatalf("Expected error %v, got %v", tt.kind, errors)
			}
			if tokens[0].Type != TOKEN_COMMENT {
				t.Fatalf("Expected COMMENT, got %v", tokens[0].Type)
			}
			if tokens[0].Data != tt.data {
				t.Errorf("Expected data %q, got %q", tt.data, tokens[0].Data)
			}
		})
	}
}

// TestBogusCommentFromQuestionMark tests `<?` handling
func TestBogusCommentFromQuestionMark(t *testing.T) {
	tokens, errors := lex("<?xml version=\"1.0\"?>")

	if !hasError(errors, ErrUnexpectedQuestionMarkInsteadOfTagName) {
		t.Errorf("Expected UnexpectedQuestionMarkInsteadOfTagName")
	}
	if tokens[0].Type != TOKEN_COMMENT {
		t.Fatalf("Expected COMMENT, got %v", tokens[0].Type)
	}
	if !strings.HasPrefix(tokens[0].Data, "?xml") {
		t.Errorf("Expected data to start with ?xml, got %q", tokens[0].Data)
	}
}

// TestCRLFNormalization tests that CR LF collapses to one LF character
// token whose raw keeps both bytes
func TestCRLFNormalization(t *testing.T) {
	tokens, errors := lex("a\r\nb")

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	if len(tokens) != 4 { // a, LF, b, EOF
		t.Fatalf("Expected 4 tokens, got %d: %v", len(tokens), tokens)
	}
	lf := tokens[1]
	if lf.Char != '\n' {
		t.Errorf("Expected LF character, got %q", lf.Char)
	}
	if lf.Raw != "\r\n" {
		t.Errorf("Expected raw CRLF, got %q", lf.Raw)
	}
}

// TestNullCharacter tests NUL handling in data vs RCDATA
func TestNullCharacter(t *testing.T) {
	// In the data state the NUL itself is emitted.
	tokens, errors := lex("\x00")
	if !hasError(errors, ErrUnexpectedNullCharacter) {
		t.Errorf("Expected UnexpectedNullCharacter in data state")
	}
	if tokens[0].Char != 0 {
		t.Errorf("Expected raw NUL character token in data state, got %q", tokens[0].Char)
	}

	// In RCDATA the replacement character is substituted and the raw
	// preserves the NUL.
	l := New(NewStringInput("\x00"))
	l.SetInputState(StateRcdata)
	rcTokens := l.All()
	rcErrors := l.TakeErrors()

	if !hasError(rcErrors, ErrUnexpectedNullCharacter) {
		t.Errorf("Expected UnexpectedNullCharacter in RCDATA")
	}
	if rcTokens[0].Char != '�' {
		t.Errorf("Expected replacement character, got %q", rcTokens[0].Char)
	}
	if rcTokens[0].Raw != "\x00" {
		t.Errorf("Expected raw NUL, got %q", rcTokens[0].Raw)
	}
}

// TestWindows1252Remap tests the control-range numeric reference remap
func TestWindows1252Remap(t *testing.T) {
	tokens, errors := lex("&#128;")

	if !hasError(errors, ErrControlCharacterReference) {
		t.Fatalf("Expected ControlCharacterReference, got %v", errors)
	}
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Char != '€' {
		t.Errorf("Expected euro sign, got %q", tokens[0].Char)
	}
	if tokens[0].Raw != "&#128;" {
		t.Errorf("Expected raw &#128;, got %q", tokens[0].Raw)
	}
}

// TestNumericReferenceCorrections tests the terminal corrections of the
// numeric character reference machine
func TestNumericReferenceCorrections(t *testing.T) {
	tests := []struct {
		input string
		char  rune
		kind  ErrorKind
	}{
		{"&#0;", '�', ErrNullCharacterReference},
		{"&#xD800;", '�', ErrSurrogateCharacterReference},
		{"&#x110000;", '�', ErrCharacterReferenceOutsideUnicodeRange},
		{"&#xFFFFFFFFFF;", '�', ErrCharacterReferenceOutsideUnicodeRange},
		{"&#xFDD0;", '﷐', ErrNoncharacterCharacterReference},
		{"&#13;", '\r', ErrControlCharacterReference},
		{"&#65;", 'A', ErrorKind(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errors := lex(tt.input)

			if tt.kind >= 0 && !hasError(errors, tt.kind) {
				t.Errorf("Expected error %v, got %v", tt.kind, errors)
			}
			if tt.kind < 0 && len(errors) > 0 {
				t.Errorf("Unexpected errors: %v", errors)
			}
			if tokens[0].Char != tt.char {
				t.Errorf("Expected %q, got %q", tt.char, tokens[0].Char)
			}
		})
	}
}

// TestNamedReferences tests longest-match resolution and the
// missing-semicolon path
func TestNamedReferences(t *testing.T) {
	t.Run("with semicolon", func(t *testing.T) {
		tokens, errors := lex("&notin;")
		if len(errors) > 0 {
			t.Fatalf("Unexpected errors: %v", errors)
		}
		if collectText(tokens) != "∉" {
			t.Errorf("Expected ∉, got %q", collectText(tokens))
		}
	})

	t.Run("longest match backtracks", func(t *testing.T) {
		// `&not` matches; `i`,`t` extend toward `&notin;` but the final
		// `x` kills it, so the lexer rewinds to the `&not` match.
		tokens, errors := lex("&notitx")
		if !hasError(errors, ErrMissingSemicolonAfterCharacterReference) {
			t.Errorf("Expected MissingSemicolonAfterCharacterReference")
		}
		if collectText(tokens) != "¬itx" {
			t.Errorf("Expected ¬itx, got %q", collectText(tokens))
		}
	})

	t.Run("unknown reference", func(t *testing.T) {
		tokens, errors := lex("&qqxyz;")
		if !hasError(errors, ErrUnknownNamedCharacterReference) {
			t.Errorf("Expected UnknownNamedCharacterReference")
		}
		if collectText(tokens) != "&qqxyz;" {
			t.Errorf("Expected literal text back, got %q", collectText(tokens))
		}
	})

	t.Run("attribute quirk", func(t *testing.T) {
		// Inside an attribute, `&not` followed by an alphanumeric stays
		// undecoded for historical reasons.
		tokens, errors := lex(`<a b="&notx">`)
		if len(errors) > 0 {
			t.Fatalf("Unexpected errors: %v", errors)
		}
		attr := tokens[0].Attributes[0]
		if attr.Value == nil || *attr.Value != "&notx" {
			t.Errorf("Expected undecoded &notx, got %v", attr.Value)
		}
	})

	t.Run("longest entity resolves", func(t *testing.T) {
		tokens, errors := lex("&CounterClockwiseContourIntegral;")
		if len(errors) > 0 {
			t.Fatalf("Unexpected errors: %v", errors)
		}
		if collectText(tokens) != "∳" {
			t.Errorf("Expected ∳, got %q", collectText(tokens))
		}
	})
}

// TestEntityRawPreservation tests the raw field of decoded references
func TestEntityRawPreservation(t *testing.T) {
	tokens, _ := lex("&amp;")

	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Char != '&' {
		t.Errorf("Expected decoded ampersand, got %q", tokens[0].Char)
	}
	if tokens[0].Raw != "&amp;" {
		t.Errorf("Expected raw &amp;, got %q", tokens[0].Raw)
	}
}

// TestAppropriateEndTag tests script data end-tag matching
func TestAppropriateEndTag(t *testing.T) {
	l := New(NewStringInput("<script>a</scrip></script>"))

	tok, ok := l.Next()
	if !ok || tok.Type != TOKEN_START_TAG || tok.TagName != "script" {
		t.Fatalf("Expected script start tag, got %v", tok)
	}

	// The tree construction stage switches the tokenizer for raw text
	// elements.
	l.SetInputState(StateScriptData)

	var text strings.Builder
	for {
		tok, ok = l.Next()
		if !ok {
			t.Fatalf("Unexpected end of tokens")
		}
		if tok.Type != TOKEN_CHARACTER {
			break
		}
		text.WriteRune(tok.Char)
	}

	if text.String() != "a</scrip>" {
		t.Errorf("Expected text a</scrip>, got %q", text.String())
	}
	if tok.Type != TOKEN_END_TAG || tok.TagName != "script" {
		t.Errorf("Expected script end tag, got %v", tok)
	}
}

// TestScriptDataEscapeDance tests the <!-- --> escape states inside
// script data
func TestScriptDataEscapeDance(t *testing.T) {
	l := New(NewStringInput("<script>x<!--<script>y</script>--></script>"))

	tok, _ := l.Next()
	if tok.TagName != "script" {
		t.Fatalf("Expected script start tag")
	}
	l.SetInputState(StateScriptData)

	var text strings.Builder
	for {
		tok, _ = l.Next()
		if tok.Type != TOKEN_CHARACTER {
			break
		}
		text.WriteRune(tok.Char)
	}

	if text.String() != "x<!--<script>y</script>-->" {
		t.Errorf("Unexpected script text %q", text.String())
	}
	if tok.Type != TOKEN_END_TAG || tok.TagName != "script" {
		t.Errorf("Expected final script end tag, got %v", tok)
	}
}

// TestCdata tests CDATA section handling in both namespaces
func TestCdata(t *testing.T) {
	t.Run("foreign content", func(t *testing.T) {
		l := New(NewStringInput("<![CDATA[x]]>"))
		l.SetAdjustedCurrentNodeToHTMLNamespace(false)
		tokens := l.All()
		errors := l.TakeErrors()

		if len(errors) > 0 {
			t.Fatalf("Unexpected errors: %v", errors)
		}
		if collectText(tokens) != "x" {
			t.Errorf("Expected x, got %q", collectText(tokens))
		}
	})

	t.Run("html content", func(t *testing.T) {
		l := New(NewStringInput("<![CDATA[x]]>"))
		l.SetAdjustedCurrentNodeToHTMLNamespace(true)
		tokens := l.All()
		errors := l.TakeErrors()

		if !hasError(errors, ErrCdataInHtmlContent) {
			t.Errorf("Expected CdataInHtmlContent")
		}
		if tokens[0].Type != TOKEN_COMMENT || tokens[0].Data != "[CDATA[x]]" {
			t.Errorf("Expected bogus comment [CDATA[x]], got %v", tokens[0])
		}
	})
}

// TestEofErrors tests EOF error reporting per state group
func TestEofErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"<", ErrEofBeforeTagName},
		{"</", ErrEofBeforeTagName},
		{"<div", ErrEofInTag},
		{"<div class=\"x", ErrEofInTag},
		{"<!-- x", ErrEofInComment},
		{"<!DOCTYPE html", ErrEofInDoctype},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errors := lex(tt.input)

			if !hasError(errors, tt.kind) {
				t.Errorf("Expected %v, got %v", tt.kind, errors)
			}
			last := tokens[len(tokens)-1]
			if last.Type != TOKEN_EOF {
				t.Errorf("Expected trailing EOF token")
			}
		})
	}
}

// TestEofInScriptComment tests EOF inside script html-comment-like text
func TestEofInScriptComment(t *testing.T) {
	l := New(NewStringInput("<script>x<!--"))
	l.Next() // start tag
	l.SetInputState(StateScriptData)
	l.All()

	if !hasError(l.TakeErrors(), ErrEofInScriptHtmlCommentLikeText) {
		t.Errorf("Expected EofInScriptHtmlCommentLikeText")
	}
}

// TestMissingEndTagName tests the `</>` case
func TestMissingEndTagName(t *testing.T) {
	tokens, errors := lex("</>x")

	if !hasError(errors, ErrMissingEndTagName) {
		t.Errorf("Expected MissingEndTagName")
	}
	if collectText(tokens) != "x" {
		t.Errorf("Expected x, got %q", collectText(tokens))
	}
}

// TestEndTagWithAttributes tests the end-tag error cases
func TestEndTagWithAttributes(t *testing.T) {
	_, errors := lex(`</div class="x">`)
	if !hasError(errors, ErrEndTagWithAttributes) {
		t.Errorf("Expected EndTagWithAttributes")
	}

	_, errors = lex("</div/>")
	if !hasError(errors, ErrEndTagWithTrailingSolidus) {
		t.Errorf("Expected EndTagWithTrailingSolidus")
	}
}

// TestSpanTotality tests that token spans tile the input
func TestSpanTotality(t *testing.T) {
	inputs := []string{
		"<!DOCTYPE html><html><body class=\"a\">text &amp; more</body></html>",
		"<!-- c --><p>x</p>",
		"plain text",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens, _ := lex(input)

			prev := 0
			for _, tok := range tokens {
				if tok.Span.Lo != prev {
					t.Fatalf("Span gap: expected %d, got %d (token %v)", prev, tok.Span.Lo, tok)
				}
				prev = tok.Span.Hi
			}
			if prev != len(input) {
				t.Errorf("Spans cover %d bytes of %d", prev, len(input))
			}
		})
	}
}

// TestBOMSkip tests that a leading byte-order mark is skipped silently
func TestBOMSkip(t *testing.T) {
	tokens, errors := lex("\ufeffa")

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	if collectText(tokens) != "a" {
		t.Errorf("Expected a, got %q", collectText(tokens))
	}
}

// TestUnquotedAttributeValue tests unquoted values and their error cases
func TestUnquotedAttributeValue(t *testing.T) {
	tokens, errors := lex("<a href=x'y>")

	if !hasError(errors, ErrUnexpectedCharacterInUnquotedAttributeValue) {
		t.Errorf("Expected UnexpectedCharacterInUnquotedAttributeValue")
	}
	attr := tokens[0].Attributes[0]
	if attr.Value == nil || *attr.Value != "x'y" {
		t.Errorf("Expected value x'y, got %v", attr.Value)
	}
}

// TestRcdataEndTag tests RCDATA behaves like script data for end tags
func TestRcdataEndTag(t *testing.T) {
	l := New(NewStringInput("<title>a < b</title>"))
	tok, _ := l.Next()
	if tok.TagName != "title" {
		t.Fatalf("Expected title start tag")
	}
	l.SetInputState(StateRcdata)

	var text strings.Builder
	for {
		tok, _ = l.Next()
		if tok.Type != TOKEN_CHARACTER {
			break
		}
		text.WriteRune(tok.Char)
	}

	if text.String() != "a < b" {
		t.Errorf("Expected a < b, got %q", text.String())
	}
	if tok.Type != TOKEN_END_TAG || tok.TagName != "title" {
		t.Errorf("Expected title end tag, got %v", tok)
	}
}

// TestFinishedAfterEOF tests that the lexer stays finished
func TestFinishedAfterEOF(t *testing.T) {
	l := New(NewStringInput("x"))
	l.All()

	if _, ok := l.Next(); ok {
		t.Errorf("Expected no more tokens after EOF")
	}
}

// BenchmarkLexer measures tokenization of a small document
func BenchmarkLexer(b *testing.B) {
	input := strings.Repeat(`<div class="row" data-id="7">text &amp; entity</div>`, 64)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := New(NewStringInput(input))
		l.All()
	}
}
