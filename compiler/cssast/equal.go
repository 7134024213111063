package cssast

// Span-ignoring structural equality. The transformer de-duplicates staged
// additions against existing siblings with these, so they must agree
// exactly with the clone helpers about what constitutes a node.

// EqualIgnoringSpan reports structural equality of two component values,
// disregarding source spans.
func EqualIgnoringSpan(a, b ComponentValue) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *Ident:
		y, ok := b.(*Ident)
		return ok && x.Value == y.Value
	case *Function:
		y, ok := b.(*Function)
		return ok && x.Name == y.Name && EqualComponentValues(x.Value, y.Value)
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value
	case *Integer:
		y, ok := b.(*Integer)
		return ok && x.Value == y.Value
	case *Percentage:
		y, ok := b.(*Percentage)
		return ok && x.Value == y.Value
	case *Dimension:
		y, ok := b.(*Dimension)
		return ok && x.Value == y.Value && x.Unit == y.Unit && x.Kind == y.Kind
	case *Str:
		y, ok := b.(*Str)
		return ok && x.Value == y.Value
	case *URL:
		y, ok := b.(*URL)
		return ok && x.Name == y.Name && x.Value == y.Value
	case *Delimiter:
		y, ok := b.(*Delimiter)
		return ok && x.Value == y.Value
	case *PreservedToken:
		y, ok := b.(*PreservedToken)
		return ok && x.Value == y.Value
	case *SimpleBlock:
		y, ok := b.(*SimpleBlock)
		return ok && EqualSimpleBlocks(x, y)
	case *Declaration:
		y, ok := b.(*Declaration)
		return ok && EqualDeclarations(x, y)
	case *QualifiedRule:
		y, ok := b.(*QualifiedRule)
		return ok && EqualQualifiedRules(x, y)
	case *AtRule:
		y, ok := b.(*AtRule)
		return ok && EqualAtRules(x, y)
	case *KeyframeBlock:
		y, ok := b.(*KeyframeBlock)
		return ok && EqualComponentValues(x.Prelude, y.Prelude) && EqualSimpleBlocks(x.Block, y.Block)
	case *PseudoClassSelector:
		y, ok := b.(*PseudoClassSelector)
		return ok && x.Name == y.Name && EqualComponentValues(x.Children, y.Children)
	case *PseudoElementSelector:
		y, ok := b.(*PseudoElementSelector)
		return ok && x.Name == y.Name && EqualComponentValues(x.Children, y.Children)
	case *MediaFeaturePlain:
		y, ok := b.(*MediaFeaturePlain)
		return ok && x.Name == y.Name && EqualIgnoringSpan(x.Value, y.Value)
	default:
		return false
	}
}

// EqualComponentValues reports span-ignoring equality of two value slices.
func EqualComponentValues(a, b []ComponentValue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualIgnoringSpan(a[i], b[i]) {
			return false
		}
	}
	return true
}

// EqualSimpleBlocks reports span-ignoring equality of two blocks.
func EqualSimpleBlocks(a, b *SimpleBlock) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name == b.Name && EqualComponentValues(a.Values, b.Values)
}

// EqualDeclarations reports span-ignoring equality of two declarations.
func EqualDeclarations(a, b *Declaration) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name == b.Name &&
		a.Important == b.Important &&
		a.DashedIdent == b.DashedIdent &&
		EqualComponentValues(a.Value, b.Value)
}

// EqualQualifiedRules reports span-ignoring equality of two qualified
// rules.
func EqualQualifiedRules(a, b *QualifiedRule) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return EqualComponentValues(a.Prelude, b.Prelude) && EqualSimpleBlocks(a.Block, b.Block)
}

// EqualAtRules reports span-ignoring equality of two at-rules.
func EqualAtRules(a, b *AtRule) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name == b.Name &&
		EqualAtRulePreludes(a.Prelude, b.Prelude) &&
		EqualSimpleBlocks(a.Block, b.Block)
}

// EqualAtRulePreludes reports span-ignoring equality of two preludes.
func EqualAtRulePreludes(a, b AtRulePrelude) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *ListOfComponentValues:
		y, ok := b.(*ListOfComponentValues)
		return ok && EqualComponentValues(x.Values, y.Values)
	case *MediaQueryList:
		y, ok := b.(*MediaQueryList)
		if !ok || len(x.Queries) != len(y.Queries) {
			return false
		}
		for i := range x.Queries {
			if !EqualMediaQueries(x.Queries[i], y.Queries[i]) {
				return false
			}
		}
		return true
	case *ImportPrelude:
		y, ok := b.(*ImportPrelude)
		if !ok || !EqualIgnoringSpan(x.Href, y.Href) || !EqualComponentValues(x.Rest, y.Rest) {
			return false
		}
		if (x.Supports == nil) != (y.Supports == nil) {
			return false
		}
		if x.Supports == nil {
			return true
		}
		return EqualDeclarations(x.Supports.Declaration, y.Supports.Declaration) &&
			EqualSupportsConditions(x.Supports.Condition, y.Supports.Condition)
	case *SupportsCondition:
		y, ok := b.(*SupportsCondition)
		return ok && EqualSupportsConditions(x, y)
	default:
		return false
	}
}

// EqualMediaQueries reports span-ignoring equality of two media queries.
func EqualMediaQueries(a, b *MediaQuery) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return EqualComponentValues(a.Values, b.Values)
}

// EqualSupportsConditions reports span-ignoring equality of two supports
// conditions.
func EqualSupportsConditions(a, b *SupportsCondition) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(a.Terms) != len(b.Terms) {
		return false
	}
	for i := range a.Terms {
		if a.Terms[i].Keyword != b.Terms[i].Keyword {
			return false
		}
		if !EqualSupportsInParens(a.Terms[i].InParens, b.Terms[i].InParens) {
			return false
		}
	}
	return true
}

// EqualSupportsInParens reports span-ignoring equality of two
// parenthesized supports operands.
func EqualSupportsInParens(a, b *SupportsInParens) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return EqualSupportsConditions(a.Condition, b.Condition) &&
		EqualDeclarations(a.Feature, b.Feature) &&
		EqualComponentValues(a.Values, b.Values)
}

// EqualRules reports span-ignoring equality of two rules.
func EqualRules(a, b Rule) bool {
	switch x := a.(type) {
	case *AtRule:
		y, ok := b.(*AtRule)
		return ok && EqualAtRules(x, y)
	case *QualifiedRule:
		y, ok := b.(*QualifiedRule)
		return ok && EqualQualifiedRules(x, y)
	default:
		return false
	}
}
