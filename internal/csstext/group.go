package csstext

import (
	"strings"

	"github.com/chisel-web/chisel/compiler/cssast"
	"github.com/chisel-web/chisel/compiler/span"
)

// Prelude shaping: the scanner produces flat component values; these
// helpers regroup them into the typed preludes the transformer matches
// on.

func groupMediaQueries(values []cssast.ComponentValue) *cssast.MediaQueryList {
	list := &cssast.MediaQueryList{Span: span.Dummy}
	current := &cssast.MediaQuery{Span: span.Dummy}

	flush := func() {
		if len(current.Values) > 0 {
			list.Queries = append(list.Queries, current)
		}
		current = &cssast.MediaQuery{Span: span.Dummy}
	}

	for _, v := range values {
		if d, ok := v.(*cssast.Delimiter); ok && d.Value == cssast.DelimComma {
			flush()
			continue
		}
		current.Values = append(current.Values, v)
	}
	flush()

	return list
}

func groupImportPrelude(values []cssast.ComponentValue) *cssast.ImportPrelude {
	prelude := &cssast.ImportPrelude{Span: span.Dummy}

	for _, v := range values {
		if prelude.Href == nil {
			switch v.(type) {
			case *cssast.Str, *cssast.URL:
				prelude.Href = v
				continue
			}
		}

		if f, ok := v.(*cssast.Function); ok && strings.EqualFold(f.Name, "supports") && prelude.Supports == nil {
			prelude.Supports = groupImportSupports(f.Value)
			continue
		}

		prelude.Rest = append(prelude.Rest, v)
	}

	return prelude
}

func groupImportSupports(values []cssast.ComponentValue) *cssast.ImportSupports {
	if len(values) == 1 {
		if decl, ok := values[0].(*cssast.Declaration); ok {
			return &cssast.ImportSupports{Span: span.Dummy, Declaration: decl}
		}
		if feature, ok := values[0].(*cssast.MediaFeaturePlain); ok {
			return &cssast.ImportSupports{Span: span.Dummy, Declaration: featureDeclaration(feature)}
		}
	}

	return &cssast.ImportSupports{
		Span: span.Dummy,
		Condition: &cssast.SupportsCondition{
			Span:  span.Dummy,
			Terms: groupSupportsTerms(values),
		},
	}
}

// groupSupportsTerms shapes `(feature) and (feature) or ...` into terms.
func groupSupportsTerms(values []cssast.ComponentValue) []cssast.SupportsTerm {
	var terms []cssast.SupportsTerm
	keyword := ""

	for _, v := range values {
		switch n := v.(type) {
		case *cssast.Ident:
			switch strings.ToLower(n.Value) {
			case "and", "or", "not":
				keyword = strings.ToLower(n.Value)
				continue
			}
		case *cssast.MediaFeaturePlain:
			terms = append(terms, cssast.SupportsTerm{
				Span:     span.Dummy,
				Keyword:  keyword,
				InParens: &cssast.SupportsInParens{Span: span.Dummy, Feature: featureDeclaration(n)},
			})
			keyword = ""
			continue
		case *cssast.SimpleBlock:
			if n.Name == '(' {
				terms = append(terms, cssast.SupportsTerm{
					Span:    span.Dummy,
					Keyword: keyword,
					InParens: &cssast.SupportsInParens{
						Span:      span.Dummy,
						Condition: &cssast.SupportsCondition{Span: span.Dummy, Terms: groupSupportsTerms(n.Values)},
					},
				})
				keyword = ""
				continue
			}
		}

		terms = append(terms, cssast.SupportsTerm{
			Span:     span.Dummy,
			Keyword:  keyword,
			InParens: &cssast.SupportsInParens{Span: span.Dummy, Values: []cssast.ComponentValue{v}},
		})
		keyword = ""
	}

	return terms
}

// featureDeclaration converts a `(name: value)` group into the
// declaration form the prefixer expands.
func featureDeclaration(f *cssast.MediaFeaturePlain) *cssast.Declaration {
	decl := &cssast.Declaration{
		Span:        f.Span,
		Name:        f.Name,
		DashedIdent: strings.HasPrefix(f.Name, "--"),
	}

	switch v := f.Value.(type) {
	case *cssast.SimpleBlock:
		if v.Name == '(' {
			decl.Value = v.Values
		} else if v != nil {
			decl.Value = []cssast.ComponentValue{v}
		}
	case nil:
	default:
		decl.Value = []cssast.ComponentValue{v}
	}

	return decl
}
