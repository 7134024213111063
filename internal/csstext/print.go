package csstext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chisel-web/chisel/compiler/cssast"
)

// Print serializes a stylesheet in a canonical layout. It does not try to
// reproduce the original whitespace; raw-faithful output is the
// serializer's job, not this demo front-end's.
func Print(sheet *cssast.Stylesheet) string {
	var p printer
	for i, rule := range sheet.Rules {
		if i > 0 {
			p.b.WriteString("\n")
		}
		p.printRule(rule, 0)
	}
	return p.b.String()
}

type printer struct {
	b strings.Builder
}

func (p *printer) indent(depth int) {
	for i := 0; i < depth; i++ {
		p.b.WriteString("  ")
	}
}

func (p *printer) printRule(rule cssast.Rule, depth int) {
	switch n := rule.(type) {
	case *cssast.AtRule:
		p.printAtRule(n, depth)
	case *cssast.QualifiedRule:
		p.printQualifiedRule(n, depth)
	}
}

func (p *printer) printAtRule(rule *cssast.AtRule, depth int) {
	p.indent(depth)
	p.b.WriteString("@")
	p.b.WriteString(rule.Name)

	prelude := p.preludeText(rule.Prelude)
	if prelude != "" {
		p.b.WriteString(" ")
		p.b.WriteString(prelude)
	}

	if rule.Block == nil {
		p.b.WriteString(";\n")
		return
	}

	p.b.WriteString(" {\n")
	p.printBlockValues(rule.Block.Values, depth+1)
	p.indent(depth)
	p.b.WriteString("}\n")
}

func (p *printer) printQualifiedRule(rule *cssast.QualifiedRule, depth int) {
	p.indent(depth)
	p.b.WriteString(valuesText(rule.Prelude))
	p.b.WriteString(" {\n")
	if rule.Block != nil {
		p.printBlockValues(rule.Block.Values, depth+1)
	}
	p.indent(depth)
	p.b.WriteString("}\n")
}

func (p *printer) printBlockValues(values []cssast.ComponentValue, depth int) {
	for _, v := range values {
		switch n := v.(type) {
		case *cssast.Declaration:
			p.indent(depth)
			p.b.WriteString(n.Name)
			p.b.WriteString(": ")
			p.b.WriteString(valuesText(n.Value))
			if n.Important {
				p.b.WriteString(" !important")
			}
			p.b.WriteString(";\n")
		case *cssast.QualifiedRule:
			p.printQualifiedRule(n, depth)
		case *cssast.AtRule:
			p.printAtRule(n, depth)
		case *cssast.KeyframeBlock:
			p.indent(depth)
			p.b.WriteString(valuesText(n.Prelude))
			p.b.WriteString(" {\n")
			if n.Block != nil {
				p.printBlockValues(n.Block.Values, depth+1)
			}
			p.indent(depth)
			p.b.WriteString("}\n")
		default:
			p.indent(depth)
			p.b.WriteString(componentText(v))
			p.b.WriteString("\n")
		}
	}
}

func (p *printer) preludeText(prelude cssast.AtRulePrelude) string {
	switch n := prelude.(type) {
	case *cssast.ListOfComponentValues:
		return valuesText(n.Values)
	case *cssast.MediaQueryList:
		parts := make([]string, 0, len(n.Queries))
		for _, q := range n.Queries {
			parts = append(parts, valuesText(q.Values))
		}
		return strings.Join(parts, ", ")
	case *cssast.ImportPrelude:
		parts := []string{}
		if n.Href != nil {
			parts = append(parts, componentText(n.Href))
		}
		if n.Supports != nil {
			if n.Supports.Declaration != nil {
				d := n.Supports.Declaration
				parts = append(parts, "supports("+d.Name+": "+valuesText(d.Value)+")")
			} else if n.Supports.Condition != nil {
				parts = append(parts, "supports("+supportsConditionText(n.Supports.Condition)+")")
			}
		}
		if len(n.Rest) > 0 {
			parts = append(parts, valuesText(n.Rest))
		}
		return strings.Join(parts, " ")
	case *cssast.SupportsCondition:
		return supportsConditionText(n)
	default:
		return ""
	}
}

func supportsConditionText(cond *cssast.SupportsCondition) string {
	parts := make([]string, 0, len(cond.Terms))
	for _, t := range cond.Terms {
		text := supportsInParensText(t.InParens)
		if t.Keyword != "" {
			text = t.Keyword + " " + text
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

func supportsInParensText(parens *cssast.SupportsInParens) string {
	switch {
	case parens == nil:
		return ""
	case parens.Condition != nil:
		return "(" + supportsConditionText(parens.Condition) + ")"
	case parens.Feature != nil:
		return "(" + parens.Feature.Name + ": " + valuesText(parens.Feature.Value) + ")"
	default:
		return valuesText(parens.Values)
	}
}

// valuesText joins component values with spaces, omitting the space
// before commas and before pseudo selectors, which attach to the
// preceding compound selector.
func valuesText(values []cssast.ComponentValue) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 && wantsSpaceBefore(v) {
			b.WriteString(" ")
		}
		b.WriteString(componentText(v))
	}
	return b.String()
}

func wantsSpaceBefore(v cssast.ComponentValue) bool {
	switch n := v.(type) {
	case *cssast.Delimiter:
		return n.Value != cssast.DelimComma
	case *cssast.PseudoClassSelector, *cssast.PseudoElementSelector:
		return false
	default:
		return true
	}
}

func componentText(v cssast.ComponentValue) string {
	switch n := v.(type) {
	case *cssast.Ident:
		return n.Value
	case *cssast.Function:
		return n.Name + "(" + valuesText(n.Value) + ")"
	case *cssast.Number:
		return formatNumber(n.Value)
	case *cssast.Integer:
		return strconv.FormatInt(n.Value, 10)
	case *cssast.Percentage:
		return formatNumber(n.Value) + "%"
	case *cssast.Dimension:
		return formatNumber(n.Value) + n.Unit
	case *cssast.Str:
		return strconv.Quote(n.Value)
	case *cssast.URL:
		return n.Name + "(" + strconv.Quote(n.Value) + ")"
	case *cssast.Delimiter:
		switch n.Value {
		case cssast.DelimComma:
			return ","
		case cssast.DelimSolidus:
			return "/"
		default:
			return ";"
		}
	case *cssast.PreservedToken:
		return n.Value
	case *cssast.SimpleBlock:
		switch n.Name {
		case '(':
			return "(" + valuesText(n.Values) + ")"
		case '[':
			return "[" + valuesText(n.Values) + "]"
		default:
			return "{" + valuesText(n.Values) + "}"
		}
	case *cssast.PseudoClassSelector:
		if len(n.Children) > 0 {
			return ":" + n.Name + "(" + valuesText(n.Children) + ")"
		}
		return ":" + n.Name
	case *cssast.PseudoElementSelector:
		if len(n.Children) > 0 {
			return "::" + n.Name + "(" + valuesText(n.Children) + ")"
		}
		return "::" + n.Name
	case *cssast.MediaFeaturePlain:
		if n.Value == nil {
			return "(" + n.Name + ")"
		}
		return "(" + n.Name + ": " + componentText(n.Value) + ")"
	case *cssast.Declaration:
		text := n.Name + ": " + valuesText(n.Value)
		if n.Important {
			text += " !important"
		}
		return text
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
