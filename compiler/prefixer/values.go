package prefixer

import (
	"math"
	"strings"

	"github.com/chisel-web/chisel/compiler/cssast"
	"github.com/chisel-web/chisel/compiler/span"
)

// Value-level rewriters. Each walks a component-value list bottom-up and
// rewrites matching nodes in place; a rewriter that cannot apply leaves
// the value untouched.

func lowerEq(s, target string) bool {
	return strings.EqualFold(s, target)
}

// walkFunctions visits every function node in values, deepest first.
func walkFunctions(values []cssast.ComponentValue, fn func(*cssast.Function)) {
	for _, v := range values {
		switch n := v.(type) {
		case *cssast.Function:
			walkFunctions(n.Value, fn)
			fn(n)
		case *cssast.SimpleBlock:
			walkFunctions(n.Values, fn)
		case *cssast.PseudoClassSelector:
			walkFunctions(n.Children, fn)
		case *cssast.PseudoElementSelector:
			walkFunctions(n.Children, fn)
		}
	}
}

// replaceFunctionName renames every `from(...)` function to `to(...)`.
func replaceFunctionName(values []cssast.ComponentValue, from, to string) {
	walkFunctions(values, func(f *cssast.Function) {
		if lowerEq(f.Name, from) {
			f.Name = to
		}
	})
}

// replaceIdent swaps every ident token equal to from (case-insensitive)
// for to, recursing into functions and blocks.
func replaceIdent(values []cssast.ComponentValue, from, to string) {
	for _, v := range values {
		switch n := v.(type) {
		case *cssast.Ident:
			if lowerEq(n.Value, from) {
				n.Value = to
			}
		case *cssast.Function:
			replaceIdent(n.Value, from, to)
		case *cssast.SimpleBlock:
			replaceIdent(n.Values, from, to)
		}
	}
}

// replaceCrossFade rewrites `cross-fade(a p?, b q?)` into the legacy form
// with a single numeric transparency operand. Two images may carry at
// most two transparency components; a third argument or an ambiguous
// combination abandons the rewrite.
func replaceCrossFade(values []cssast.ComponentValue, from, to string) {
	walkFunctions(values, func(f *cssast.Function) {
		if !lowerEq(f.Name, from) {
			return
		}

		var transparency []*float64
		groupValue := (*float64)(nil)
		flushGroup := func() bool {
			if len(transparency) >= 2 {
				return false
			}
			transparency = append(transparency, groupValue)
			groupValue = nil
			return true
		}

		for _, v := range f.Value {
			if d, ok := v.(*cssast.Delimiter); ok && d.Value == cssast.DelimComma {
				if !flushGroup() {
					return
				}
				continue
			}

			var num *float64
			switch n := v.(type) {
			case *cssast.Percentage:
				x := n.Value / 100.0
				num = &x
			case *cssast.Number:
				x := n.Value
				num = &x
			case *cssast.Integer:
				x := float64(n.Value)
				num = &x
			}
			if num != nil {
				if groupValue != nil {
					return
				}
				groupValue = num
			}
		}
		if !flushGroup() {
			return
		}

		if len(transparency) != 2 {
			return
		}

		var value float64
		first, second := transparency[0], transparency[1]
		switch {
		case first == nil && second == nil:
			value = 0.5
		case first != nil && second == nil:
			value = *first
		case first == nil && second != nil:
			value = 1.0 - *second
		case *first+*second == 1.0:
			value = *first
		default:
			return
		}

		newValue := make([]cssast.ComponentValue, 0, len(f.Value)+2)
		for _, v := range f.Value {
			switch v.(type) {
			case *cssast.Percentage, *cssast.Number, *cssast.Integer:
				continue
			}
			newValue = append(newValue, v)
		}
		newValue = append(newValue,
			&cssast.Delimiter{Span: span.Dummy, Value: cssast.DelimComma},
			&cssast.Number{Span: span.Dummy, Value: value},
		)

		f.Value = newValue
		f.Name = to
	})
}

// replaceImageSet rewrites `image-set("u" 1x, ...)` to the legacy variant,
// wrapping bare string arguments in url() before renaming the function.
func replaceImageSet(values []cssast.ComponentValue, from, to string) {
	walkFunctions(values, func(f *cssast.Function) {
		if !lowerEq(f.Name, from) {
			return
		}
		for i, v := range f.Value {
			if s, ok := v.(*cssast.Str); ok {
				f.Value[i] = &cssast.URL{Span: s.Span, Name: "url", Value: s.Value}
			}
		}
		f.Name = to
	})
}

// oldGradientDirection maps a modern `to <side>` keyword to the old-spec
// starting side.
func oldGradientDirection(direction string) (string, bool) {
	switch strings.ToLower(direction) {
	case "top":
		return "bottom", true
	case "left":
		return "right", true
	case "bottom":
		return "top", true
	case "right":
		return "left", true
	}
	return "", false
}

// replaceGradient rewrites a modern gradient function into its legacy
// prefixed form: the function is renamed, a `to X` direction is inverted,
// an angle is normalized to degrees and inverted, and for radial
// gradients the `at <position>` clause moves to the front.
func replaceGradient(values []cssast.ComponentValue, from, to string) {
	walkFunctions(values, func(f *cssast.Function) {
		if !lowerEq(f.Name, from) {
			return
		}
		f.Name = to

		if len(f.Value) > 0 {
			switch first := f.Value[0].(type) {
			case *cssast.Ident:
				if lowerEq(first.Value, "to") {
					rewriteGradientToDirection(f)
				}
			case *cssast.Dimension:
				if first.Kind == cssast.DimensionAngle {
					rewriteGradientAngle(f, first)
				}
			}
		}

		if lowerEq(from, "radial-gradient") || lowerEq(from, "repeating-radial-gradient") {
			relocateRadialPosition(f)
		}
	})
}

func rewriteGradientToDirection(f *cssast.Function) {
	firstIdent, _ := componentIdent(f.Value, 1)
	secondIdent, _ := componentIdent(f.Value, 2)

	if firstIdent != nil && secondIdent != nil {
		newFirst, ok1 := oldGradientDirection(firstIdent.Value)
		newSecond, ok2 := oldGradientDirection(secondIdent.Value)
		if ok1 && ok2 {
			replacement := []cssast.ComponentValue{
				&cssast.Ident{Span: firstIdent.Span, Value: newFirst},
				&cssast.Ident{Span: secondIdent.Span, Value: newSecond},
			}
			f.Value = append(replacement, f.Value[3:]...)
		}
		return
	}

	if firstIdent != nil && len(f.Value) > 2 {
		if newDirection, ok := oldGradientDirection(firstIdent.Value); ok {
			replacement := []cssast.ComponentValue{
				&cssast.Ident{Span: firstIdent.Span, Value: newDirection},
			}
			f.Value = append(replacement, f.Value[2:]...)
		}
	}
}

func componentIdent(values []cssast.ComponentValue, i int) (*cssast.Ident, bool) {
	if i >= len(values) {
		return nil, false
	}
	ident, ok := values[i].(*cssast.Ident)
	return ident, ok
}

func rewriteGradientAngle(f *cssast.Function, dim *cssast.Dimension) {
	var angle float64
	switch strings.ToLower(dim.Unit) {
	case "deg":
		angle = math.Mod(math.Mod(dim.Value, 360.0)+360.0, 360.0)
	case "grad":
		angle = dim.Value * 180.0 / 200.0
	case "rad":
		angle = dim.Value * 180.0 / math.Pi
	case "turn":
		angle = dim.Value * 360.0
	default:
		return
	}

	switch angle {
	case 0.0:
		f.Value[0] = &cssast.Ident{Span: dim.Span, Value: "bottom"}
	case 90.0:
		f.Value[0] = &cssast.Ident{Span: dim.Span, Value: "left"}
	case 180.0:
		f.Value[0] = &cssast.Ident{Span: dim.Span, Value: "top"}
	case 270.0:
		f.Value[0] = &cssast.Ident{Span: dim.Span, Value: "right"}
	default:
		inverted := math.Round(math.Mod(math.Abs(450.0-angle), 360.0)*1000.0) / 1000.0
		f.Value[0] = &cssast.Dimension{
			Span:  dim.Span,
			Value: inverted,
			Unit:  "deg",
			Kind:  cssast.DimensionAngle,
		}
	}
}

// relocateRadialPosition moves the tokens after `at` in front of the
// color stops: `radial-gradient(shape at x y, stops)` becomes
// `-prefix-radial-gradient(x y, shape, stops)` in old syntax terms.
func relocateRadialPosition(f *cssast.Function) {
	atIndex := -1
	commaIndex := -1
	for i, v := range f.Value {
		if ident, ok := v.(*cssast.Ident); ok && lowerEq(ident.Value, "at") && atIndex < 0 {
			atIndex = i
		}
		if d, ok := v.(*cssast.Delimiter); ok && d.Value == cssast.DelimComma && commaIndex < 0 {
			commaIndex = i
		}
	}

	if atIndex < 0 || commaIndex < 0 || atIndex >= commaIndex {
		return
	}

	newValue := make([]cssast.ComponentValue, 0, len(f.Value)+1)
	newValue = append(newValue, f.Value[atIndex+1:commaIndex]...)
	newValue = append(newValue, &cssast.Delimiter{Span: span.Dummy, Value: cssast.DelimComma})
	newValue = append(newValue, f.Value[0:atIndex]...)
	newValue = append(newValue, f.Value[commaIndex:]...)

	f.Value = newValue
}

// replaceMediaResolution converts a `min/max-resolution` feature into the
// legacy device-pixel-ratio form, converting dpi and dpcm to a unitless
// ratio rounded to two decimals; dppx passes through.
func replaceMediaResolution(q *cssast.MediaQuery, from, to string) {
	var walk func(values []cssast.ComponentValue)
	walk = func(values []cssast.ComponentValue) {
		for _, v := range values {
			switch n := v.(type) {
			case *cssast.MediaFeaturePlain:
				dim, ok := n.Value.(*cssast.Dimension)
				if !ok || dim.Kind != cssast.DimensionResolution {
					continue
				}
				if !lowerEq(n.Name, from) {
					continue
				}

				n.Name = to

				value := dim.Value
				switch strings.ToLower(dim.Unit) {
				case "dpi":
					value = math.Round(dim.Value/96.0*100.0) / 100.0
				case "dpcm":
					value = math.Round((dim.Value*2.54)/96.0*100.0) / 100.0
				}

				n.Value = &cssast.Number{Span: dim.Span, Value: value}
			case *cssast.SimpleBlock:
				walk(n.Values)
			case *cssast.Function:
				walk(n.Value)
			}
		}
	}
	walk(q.Values)
}

// replacePseudoClass renames `:from` selectors to `:to` in a rule prelude.
func replacePseudoClass(prelude []cssast.ComponentValue, from, to string) {
	for _, v := range prelude {
		switch n := v.(type) {
		case *cssast.PseudoClassSelector:
			if lowerEq(n.Name, from) {
				n.Name = to
			}
		case *cssast.SimpleBlock:
			replacePseudoClass(n.Values, from, to)
		}
	}
}

// replacePseudoElement renames `::from` selectors to `::to`.
func replacePseudoElement(prelude []cssast.ComponentValue, from, to string) {
	for _, v := range prelude {
		switch n := v.(type) {
		case *cssast.PseudoElementSelector:
			if lowerEq(n.Name, from) {
				n.Name = to
			}
		case *cssast.SimpleBlock:
			replacePseudoElement(n.Values, from, to)
		}
	}
}

// replacePseudoClassOnPseudoElement demotes a `::from` pseudo-element to
// the single-colon `:to` pseudo-class some engines used historically.
func replacePseudoClassOnPseudoElement(prelude []cssast.ComponentValue, from, to string) {
	for i, v := range prelude {
		switch n := v.(type) {
		case *cssast.PseudoElementSelector:
			if lowerEq(n.Name, from) {
				prelude[i] = &cssast.PseudoClassSelector{
					Span:     n.Span,
					Name:     to,
					Children: n.Children,
				}
			}
		case *cssast.SimpleBlock:
			replacePseudoClassOnPseudoElement(n.Values, from, to)
		}
	}
}
