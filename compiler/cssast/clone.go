package cssast

// Deep-clone helpers. The transformer stages cloned subtrees before
// rewriting them, so clones must share no mutable state with their
// originals.

// CloneComponentValue returns a deep copy of v.
func CloneComponentValue(v ComponentValue) ComponentValue {
	switch n := v.(type) {
	case *Ident:
		c := *n
		return &c
	case *Function:
		return &Function{Span: n.Span, Name: n.Name, Value: CloneComponentValues(n.Value)}
	case *Number:
		c := *n
		return &c
	case *Integer:
		c := *n
		return &c
	case *Percentage:
		c := *n
		return &c
	case *Dimension:
		c := *n
		return &c
	case *Str:
		c := *n
		return &c
	case *URL:
		c := *n
		return &c
	case *Delimiter:
		c := *n
		return &c
	case *PreservedToken:
		c := *n
		return &c
	case *SimpleBlock:
		return CloneSimpleBlock(n)
	case *Declaration:
		return CloneDeclaration(n)
	case *QualifiedRule:
		return CloneQualifiedRule(n)
	case *AtRule:
		return CloneAtRule(n)
	case *KeyframeBlock:
		return &KeyframeBlock{Span: n.Span, Prelude: CloneComponentValues(n.Prelude), Block: CloneSimpleBlock(n.Block)}
	case *PseudoClassSelector:
		return &PseudoClassSelector{Span: n.Span, Name: n.Name, Children: CloneComponentValues(n.Children)}
	case *PseudoElementSelector:
		return &PseudoElementSelector{Span: n.Span, Name: n.Name, Children: CloneComponentValues(n.Children)}
	case *MediaFeaturePlain:
		var val ComponentValue
		if n.Value != nil {
			val = CloneComponentValue(n.Value)
		}
		return &MediaFeaturePlain{Span: n.Span, Name: n.Name, Value: val}
	case nil:
		return nil
	default:
		return v
	}
}

// CloneComponentValues deep-copies a slice of component values.
func CloneComponentValues(vs []ComponentValue) []ComponentValue {
	if vs == nil {
		return nil
	}
	out := make([]ComponentValue, len(vs))
	for i, v := range vs {
		out[i] = CloneComponentValue(v)
	}
	return out
}

// CloneSimpleBlock deep-copies a simple block.
func CloneSimpleBlock(b *SimpleBlock) *SimpleBlock {
	if b == nil {
		return nil
	}
	return &SimpleBlock{Span: b.Span, Name: b.Name, Values: CloneComponentValues(b.Values)}
}

// CloneDeclaration deep-copies a declaration.
func CloneDeclaration(d *Declaration) *Declaration {
	if d == nil {
		return nil
	}
	return &Declaration{
		Span:        d.Span,
		Name:        d.Name,
		Value:       CloneComponentValues(d.Value),
		Important:   d.Important,
		DashedIdent: d.DashedIdent,
	}
}

// CloneQualifiedRule deep-copies a qualified rule.
func CloneQualifiedRule(r *QualifiedRule) *QualifiedRule {
	if r == nil {
		return nil
	}
	return &QualifiedRule{
		Span:    r.Span,
		Prelude: CloneComponentValues(r.Prelude),
		Block:   CloneSimpleBlock(r.Block),
	}
}

// CloneAtRule deep-copies an at-rule.
func CloneAtRule(r *AtRule) *AtRule {
	if r == nil {
		return nil
	}
	return &AtRule{
		Span:    r.Span,
		Name:    r.Name,
		Prelude: CloneAtRulePrelude(r.Prelude),
		Block:   CloneSimpleBlock(r.Block),
	}
}

// CloneAtRulePrelude deep-copies an at-rule prelude.
func CloneAtRulePrelude(p AtRulePrelude) AtRulePrelude {
	switch n := p.(type) {
	case *ListOfComponentValues:
		return &ListOfComponentValues{Span: n.Span, Values: CloneComponentValues(n.Values)}
	case *MediaQueryList:
		queries := make([]*MediaQuery, len(n.Queries))
		for i, q := range n.Queries {
			queries[i] = CloneMediaQuery(q)
		}
		return &MediaQueryList{Span: n.Span, Queries: queries}
	case *ImportPrelude:
		out := &ImportPrelude{Span: n.Span, Rest: CloneComponentValues(n.Rest)}
		if n.Href != nil {
			out.Href = CloneComponentValue(n.Href)
		}
		if n.Supports != nil {
			out.Supports = &ImportSupports{
				Span:        n.Supports.Span,
				Declaration: CloneDeclaration(n.Supports.Declaration),
				Condition:   CloneSupportsCondition(n.Supports.Condition),
			}
		}
		return out
	case *SupportsCondition:
		return CloneSupportsCondition(n)
	case nil:
		return nil
	default:
		return p
	}
}

// CloneMediaQuery deep-copies a media query.
func CloneMediaQuery(q *MediaQuery) *MediaQuery {
	if q == nil {
		return nil
	}
	return &MediaQuery{Span: q.Span, Values: CloneComponentValues(q.Values)}
}

// CloneSupportsCondition deep-copies a supports condition.
func CloneSupportsCondition(c *SupportsCondition) *SupportsCondition {
	if c == nil {
		return nil
	}
	terms := make([]SupportsTerm, len(c.Terms))
	for i, t := range c.Terms {
		terms[i] = SupportsTerm{Span: t.Span, Keyword: t.Keyword, InParens: CloneSupportsInParens(t.InParens)}
	}
	return &SupportsCondition{Span: c.Span, Terms: terms}
}

// CloneSupportsInParens deep-copies a parenthesized supports operand.
func CloneSupportsInParens(p *SupportsInParens) *SupportsInParens {
	if p == nil {
		return nil
	}
	return &SupportsInParens{
		Span:      p.Span,
		Condition: CloneSupportsCondition(p.Condition),
		Feature:   CloneDeclaration(p.Feature),
		Values:    CloneComponentValues(p.Values),
	}
}

// CloneRule deep-copies a rule.
func CloneRule(r Rule) Rule {
	switch n := r.(type) {
	case *AtRule:
		return CloneAtRule(n)
	case *QualifiedRule:
		return CloneQualifiedRule(n)
	default:
		return r
	}
}
