package prefixer

import (
	"strings"

	"github.com/chisel-web/chisel/compiler/cssast"
	"github.com/chisel-web/chisel/compiler/span"
)

func ident(value string) cssast.ComponentValue {
	return &cssast.Ident{Span: span.Dummy, Value: value}
}

func integer(value int64) cssast.ComponentValue {
	return &cssast.Integer{Span: span.Dummy, Value: value}
}

func firstIdentValue(value []cssast.ComponentValue) (string, bool) {
	if len(value) == 0 {
		return "", false
	}
	id, ok := value[0].(*cssast.Ident)
	if !ok {
		return "", false
	}
	return strings.ToLower(id.Value), true
}

// visitDeclaration runs the property catalogue over one declaration. Four
// per-vendor copies of the value accumulate function and ident rewrites;
// a copy that ends up different from the original is staged as a
// same-name fallback declaration, and the catalogue stages renamed
// declarations on top.
func (p *Prefixer) visitDeclaration(n *cssast.Declaration) {
	if len(n.Value) == 0 || n.DashedIdent {
		return
	}

	webkitValue := cssast.CloneComponentValues(n.Value)
	if p.activeFor(PrefixWebkit) {
		if p.shouldPrefix("-webkit-filter()", false) {
			replaceFunctionName(webkitValue, "filter", "-webkit-filter")
		}
		if p.shouldPrefix("-webkit-image-set()", false) {
			replaceImageSet(webkitValue, "image-set", "-webkit-image-set")
		}
		if p.shouldPrefix("-webkit-calc()", false) {
			replaceFunctionName(webkitValue, "calc", "-webkit-calc")
		}
		if p.shouldPrefix("-webkit-cross-fade()", false) {
			replaceCrossFade(webkitValue, "cross-fade", "-webkit-cross-fade")
		}
		if p.shouldPrefix("-webkit-linear-gradient()", false) {
			replaceGradient(webkitValue, "linear-gradient", "-webkit-linear-gradient")
		}
		if p.shouldPrefix("-webkit-repeating-linear-gradient()", false) {
			replaceGradient(webkitValue, "repeating-linear-gradient", "-webkit-repeating-linear-gradient")
		}
		if p.shouldPrefix("-webkit-radial-gradient()", false) {
			replaceGradient(webkitValue, "radial-gradient", "-webkit-radial-gradient")
		}
		if p.shouldPrefix("-webkit-repeating-radial-gradient()", false) {
			replaceGradient(webkitValue, "repeating-radial-gradient", "-webkit-repeating-radial-gradient")
		}
	}

	mozValue := cssast.CloneComponentValues(n.Value)
	if p.activeFor(PrefixMoz) {
		if p.shouldPrefix("-moz-element()", false) {
			replaceFunctionName(mozValue, "element", "-moz-element")
		}
		if p.shouldPrefix("-moz-calc()", false) {
			replaceFunctionName(mozValue, "calc", "-moz-calc")
		}
		if p.shouldPrefix("-moz-linear-gradient()", false) {
			replaceGradient(mozValue, "linear-gradient", "-moz-linear-gradient")
		}
		if p.shouldPrefix("-moz-repeating-linear-gradient()", false) {
			replaceGradient(mozValue, "repeating-linear-gradient", "-moz-repeating-linear-gradient")
		}
		if p.shouldPrefix("-moz-radial-gradient()", false) {
			replaceGradient(mozValue, "radial-gradient", "-moz-radial-gradient")
		}
		if p.shouldPrefix("-moz-repeating-radial-gradient()", false) {
			replaceGradient(mozValue, "repeating-radial-gradient", "-moz-repeating-radial-gradient")
		}
	}

	oValue := cssast.CloneComponentValues(n.Value)
	if p.activeFor(PrefixO) {
		if p.shouldPrefix("-o-linear-gradient()", false) {
			replaceGradient(oValue, "linear-gradient", "-o-linear-gradient")
		}
		if p.shouldPrefix("-o-repeating-linear-gradient()", false) {
			replaceGradient(oValue, "repeating-linear-gradient", "-o-repeating-linear-gradient")
		}
		if p.shouldPrefix("-o-radial-gradient()", false) {
			replaceGradient(oValue, "radial-gradient", "-o-radial-gradient")
		}
		if p.shouldPrefix("-o-repeating-radial-gradient()", false) {
			replaceGradient(oValue, "repeating-radial-gradient", "-o-repeating-radial-gradient")
		}
	}

	msValue := cssast.CloneComponentValues(n.Value)

	valueFor := func(prefix Prefix) []cssast.ComponentValue {
		switch prefix {
		case PrefixWebkit:
			return webkitValue
		case PrefixMoz:
			return mozValue
		case PrefixO:
			return oValue
		default:
			return msValue
		}
	}

	var siblingProps map[string]bool
	hasSibling := func(property string) bool {
		if siblingProps == nil {
			siblingProps = map[string]bool{}
			for name := range p.siblingProperties() {
				siblingProps[strings.ToLower(name)] = true
			}
		}
		return siblingProps[strings.ToLower(property)]
	}

	addDeclaration := func(prefix Prefix, property string, value func() []cssast.ComponentValue) {
		if !p.shouldPrefix(property, true) {
			return
		}
		// Inside a prefixed rule only the matching vendor is expanded:
		// no -moz- declarations inside @-webkit-keyframes.
		if !p.activeFor(prefix) {
			return
		}
		if hasSibling(property) {
			return
		}

		var newValue []cssast.ComponentValue
		if value != nil {
			newValue = value()
		} else {
			newValue = cssast.CloneComponentValues(valueFor(prefix))
		}

		p.addedDeclarations = append(p.addedDeclarations, &cssast.Declaration{
			Span:      n.Span,
			Name:      property,
			Value:     newValue,
			Important: n.Important,
		})
	}

	propertyName := strings.ToLower(n.Name)

	switch propertyName {
	case "appearance":
		addDeclaration(PrefixWebkit, "-webkit-appearance", nil)
		addDeclaration(PrefixMoz, "-moz-appearance", nil)
		addDeclaration(PrefixMs, "-ms-appearance", nil)

	case "animation":
		needPrefix := true
		for _, v := range n.Value {
			if id, ok := v.(*cssast.Ident); ok {
				switch strings.ToLower(id.Value) {
				case "reverse", "alternate-reverse":
					needPrefix = false
				}
			}
		}
		if needPrefix {
			addDeclaration(PrefixWebkit, "-webkit-animation", nil)
			addDeclaration(PrefixMoz, "-moz-animation", nil)
			addDeclaration(PrefixO, "-o-animation", nil)
		}

	case "animation-name":
		addDeclaration(PrefixWebkit, "-webkit-animation-name", nil)
		addDeclaration(PrefixMoz, "-moz-animation-name", nil)
		addDeclaration(PrefixO, "-o-animation-name", nil)

	case "animation-duration":
		addDeclaration(PrefixWebkit, "-webkit-animation-duration", nil)
		addDeclaration(PrefixMoz, "-moz-animation-duration", nil)
		addDeclaration(PrefixO, "-o-animation-duration", nil)

	case "animation-delay":
		addDeclaration(PrefixWebkit, "-webkit-animation-delay", nil)
		addDeclaration(PrefixMoz, "-moz-animation-delay", nil)
		addDeclaration(PrefixO, "-o-animation-delay", nil)

	case "animation-direction":
		if first, ok := firstIdentValue(n.Value); ok {
			switch first {
			case "alternate-reverse", "reverse":
			default:
				addDeclaration(PrefixWebkit, "-webkit-animation-direction", nil)
				addDeclaration(PrefixMoz, "-moz-animation-direction", nil)
				addDeclaration(PrefixO, "-o-animation-direction", nil)
			}
		}

	case "animation-fill-mode":
		addDeclaration(PrefixWebkit, "-webkit-animation-fill-mode", nil)
		addDeclaration(PrefixMoz, "-moz-animation-fill-mode", nil)
		addDeclaration(PrefixO, "-o-animation-fill-mode", nil)

	case "animation-iteration-count":
		addDeclaration(PrefixWebkit, "-webkit-animation-iteration-count", nil)
		addDeclaration(PrefixMoz, "-moz-animation-iteration-count", nil)
		addDeclaration(PrefixO, "-o-animation-iteration-count", nil)

	case "animation-play-state":
		addDeclaration(PrefixWebkit, "-webkit-animation-play-state", nil)
		addDeclaration(PrefixMoz, "-moz-animation-play-state", nil)
		addDeclaration(PrefixO, "-o-animation-play-state", nil)

	case "animation-timing-function":
		addDeclaration(PrefixWebkit, "-webkit-animation-timing-function", nil)
		addDeclaration(PrefixMoz, "-moz-animation-timing-function", nil)
		addDeclaration(PrefixO, "-o-animation-timing-function", nil)

	case "background-clip":
		if first, ok := firstIdentValue(n.Value); ok && first == "text" {
			addDeclaration(PrefixWebkit, "-webkit-background-clip", nil)
		}

	case "box-decoration-break":
		addDeclaration(PrefixWebkit, "-webkit-box-decoration-break", nil)

	case "box-sizing":
		addDeclaration(PrefixWebkit, "-webkit-box-sizing", nil)
		addDeclaration(PrefixMoz, "-moz-box-sizing", nil)

	case "color-adjust":
		addDeclaration(PrefixWebkit, "-webkit-print-color-adjust", nil)

	case "print-color-adjust":
		addDeclaration(PrefixMoz, "color-adjust", nil)
		addDeclaration(PrefixWebkit, "-webkit-print-color-adjust", nil)

	case "columns":
		addDeclaration(PrefixWebkit, "-webkit-columns", nil)
		addDeclaration(PrefixMoz, "-moz-columns", nil)

	case "column-width":
		addDeclaration(PrefixWebkit, "-webkit-column-width", nil)
		addDeclaration(PrefixMoz, "-moz-column-width", nil)

	case "column-gap":
		addDeclaration(PrefixWebkit, "-webkit-column-gap", nil)
		addDeclaration(PrefixMoz, "-moz-column-gap", nil)

	case "column-rule":
		addDeclaration(PrefixWebkit, "-webkit-column-rule", nil)
		addDeclaration(PrefixMoz, "-moz-column-rule", nil)

	case "column-rule-color":
		addDeclaration(PrefixWebkit, "-webkit-column-rule-color", nil)
		addDeclaration(PrefixMoz, "-moz-column-rule-color", nil)

	case "column-rule-width":
		addDeclaration(PrefixWebkit, "-webkit-column-rule-width", nil)
		addDeclaration(PrefixMoz, "-moz-column-rule-width", nil)

	case "column-count":
		addDeclaration(PrefixWebkit, "-webkit-column-count", nil)
		addDeclaration(PrefixMoz, "-moz-column-count", nil)

	case "column-rule-style":
		addDeclaration(PrefixWebkit, "-webkit-column-rule-style", nil)
		addDeclaration(PrefixMoz, "-moz-column-rule-style", nil)

	case "column-span":
		addDeclaration(PrefixWebkit, "-webkit-column-span", nil)
		addDeclaration(PrefixMoz, "-moz-column-span", nil)

	case "column-fill":
		addDeclaration(PrefixWebkit, "-webkit-column-fill", nil)
		addDeclaration(PrefixMoz, "-moz-column-fill", nil)

	case "cursor":
		if p.activeFor(PrefixWebkit) {
			if p.shouldPrefix("-webkit-zoom-in", false) {
				replaceIdent(webkitValue, "zoom-in", "-webkit-zoom-in")
			}
			if p.shouldPrefix("-webkit-zoom-out", false) {
				replaceIdent(webkitValue, "zoom-out", "-webkit-zoom-out")
			}
			if p.shouldPrefix("-webkit-grab", false) {
				replaceIdent(webkitValue, "grab", "-webkit-grab")
			}
			if p.shouldPrefix("-webkit-grabbing", false) {
				replaceIdent(webkitValue, "grabbing", "-webkit-grabbing")
			}
		}
		if p.activeFor(PrefixMoz) {
			if p.shouldPrefix("-moz-zoom-in", false) {
				replaceIdent(mozValue, "zoom-in", "-moz-zoom-in")
			}
			if p.shouldPrefix("-moz-zoom-out", false) {
				replaceIdent(mozValue, "zoom-out", "-moz-zoom-out")
			}
			if p.shouldPrefix("-moz-grab", false) {
				replaceIdent(mozValue, "grab", "-moz-grab")
			}
			if p.shouldPrefix("-moz-grabbing", false) {
				replaceIdent(mozValue, "grabbing", "-moz-grabbing")
			}
		}

	case "display":
		if len(n.Value) != 1 {
			break
		}
		if p.activeFor(PrefixWebkit) {
			oldSpecValue := cssast.CloneComponentValues(webkitValue)
			if p.shouldPrefix("-webkit-box", false) {
				replaceIdent(oldSpecValue, "flex", "-webkit-box")
			}
			if p.shouldPrefix("-webkit-inline-box", false) {
				replaceIdent(oldSpecValue, "inline-flex", "-webkit-inline-box")
			}
			if !cssast.EqualComponentValues(n.Value, oldSpecValue) {
				p.addedDeclarations = append(p.addedDeclarations, &cssast.Declaration{
					Span:      n.Span,
					Name:      n.Name,
					Value:     oldSpecValue,
					Important: n.Important,
				})
			}

			if p.shouldPrefix("-webkit-flex:display", false) {
				replaceIdent(webkitValue, "flex", "-webkit-flex")
			}
			if p.shouldPrefix("-webkit-inline-flex", false) {
				replaceIdent(webkitValue, "inline-flex", "-webkit-inline-flex")
			}
		}
		if p.activeFor(PrefixMoz) {
			if p.shouldPrefix("-moz-box", false) {
				replaceIdent(mozValue, "flex", "-moz-box")
			}
			if p.shouldPrefix("-moz-inline-box", false) {
				replaceIdent(mozValue, "inline-flex", "-moz-inline-box")
			}
		}
		if p.activeFor(PrefixMs) {
			if p.shouldPrefix("-ms-flexbox", false) {
				replaceIdent(msValue, "flex", "-ms-flexbox")
			}
			if p.shouldPrefix("-ms-inline-flexbox", false) {
				replaceIdent(msValue, "inline-flex", "-ms-inline-flexbox")
			}
		}

	case "flex":
		var spec2009 cssast.ComponentValue
		if len(n.Value) > 0 {
			switch first := n.Value[0].(type) {
			case *cssast.Ident:
				switch strings.ToLower(first.Value) {
				case "none":
					spec2009 = &cssast.Integer{Span: first.Span, Value: 0}
				case "auto":
					spec2009 = &cssast.Integer{Span: first.Span, Value: 1}
				default:
					spec2009 = cssast.CloneComponentValue(n.Value[0])
				}
			default:
				spec2009 = cssast.CloneComponentValue(n.Value[0])
			}
		}

		if spec2009 != nil {
			addDeclaration(PrefixWebkit, "-webkit-box-flex", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{cssast.CloneComponentValue(spec2009)}
			})
		} else {
			addDeclaration(PrefixWebkit, "-webkit-box-flex", nil)
		}

		addDeclaration(PrefixWebkit, "-webkit-flex", nil)

		if spec2009 != nil {
			addDeclaration(PrefixMoz, "-moz-box-flex", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{cssast.CloneComponentValue(spec2009)}
			})
		} else {
			addDeclaration(PrefixMoz, "-moz-box-flex", nil)
		}

		if len(n.Value) == 3 {
			addDeclaration(PrefixMs, "-ms-flex", func() []cssast.ComponentValue {
				value := cssast.CloneComponentValues(msValue)
				// A unitless zero third operand confuses the 2012 MS
				// implementation; force a length.
				if i, ok := value[2].(*cssast.Integer); ok && i.Value == 0 {
					value[2] = &cssast.Dimension{
						Span: i.Span,
						Unit: "px",
						Kind: cssast.DimensionLength,
					}
				}
				return value
			})
		} else {
			addDeclaration(PrefixMs, "-ms-flex", nil)
		}

	case "flex-grow":
		addDeclaration(PrefixWebkit, "-webkit-box-flex", nil)
		addDeclaration(PrefixWebkit, "-webkit-flex-grow", nil)
		addDeclaration(PrefixMoz, "-moz-box-flex", nil)
		addDeclaration(PrefixMs, "-ms-flex-positive", nil)

	case "flex-shrink":
		addDeclaration(PrefixWebkit, "-webkit-flex-shrink", nil)
		addDeclaration(PrefixMs, "-ms-flex-negative", nil)

	case "flex-basis":
		addDeclaration(PrefixWebkit, "-webkit-flex-basis", nil)
		addDeclaration(PrefixMs, "-ms-flex-preferred-size", nil)

	case "flex-direction":
		orient, direction, hasOld := oldBoxOrientation(n.Value, 0)

		if hasOld {
			addDeclaration(PrefixWebkit, "-webkit-box-orient", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{ident(orient)}
			})
			addDeclaration(PrefixWebkit, "-webkit-box-direction", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{ident(direction)}
			})
		}

		addDeclaration(PrefixWebkit, "-webkit-flex-direction", nil)

		if hasOld {
			addDeclaration(PrefixMoz, "-moz-box-orient", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{ident(orient)}
			})
			addDeclaration(PrefixMoz, "-moz-box-direction", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{ident(direction)}
			})
		}

		addDeclaration(PrefixMs, "-ms-flex-direction", nil)

	case "flex-wrap":
		addDeclaration(PrefixWebkit, "-webkit-flex-wrap", nil)
		addDeclaration(PrefixMs, "-ms-flex-wrap", nil)

	case "flex-flow":
		singleWrap := false
		if first, ok := firstIdentValue(n.Value); ok && len(n.Value) == 1 {
			switch first {
			case "wrap", "nowrap", "wrap-reverse":
				singleWrap = true
			}
		}

		var orient, direction string
		hasOld := false
		if !singleWrap {
			orient, direction, hasOld = oldBoxOrientation(n.Value, 0)
			if !hasOld {
				orient, direction, hasOld = oldBoxOrientation(n.Value, 1)
			}
		}

		if hasOld {
			addDeclaration(PrefixWebkit, "-webkit-box-orient", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{ident(orient)}
			})
			addDeclaration(PrefixWebkit, "-webkit-box-direction", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{ident(direction)}
			})
		}

		addDeclaration(PrefixWebkit, "-webkit-flex-flow", nil)

		if hasOld {
			addDeclaration(PrefixMoz, "-moz-box-orient", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{ident(orient)}
			})
			addDeclaration(PrefixMoz, "-moz-box-direction", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{ident(direction)}
			})
		}

		addDeclaration(PrefixMs, "-ms-flex-flow", nil)

	case "justify-content":
		first, _ := firstIdentValue(n.Value)
		needOldSpec := first != "space-around"

		if needOldSpec {
			addDeclaration(PrefixWebkit, "-webkit-box-pack", func() []cssast.ComponentValue {
				value := cssast.CloneComponentValues(webkitValue)
				replaceIdent(value, "flex-start", "start")
				replaceIdent(value, "flex-end", "end")
				replaceIdent(value, "space-between", "justify")
				return value
			})
		}

		addDeclaration(PrefixWebkit, "-webkit-justify-content", nil)

		if needOldSpec {
			addDeclaration(PrefixMoz, "-moz-box-pack", func() []cssast.ComponentValue {
				value := cssast.CloneComponentValues(mozValue)
				replaceIdent(value, "flex-start", "start")
				replaceIdent(value, "flex-end", "end")
				replaceIdent(value, "space-between", "justify")
				return value
			})
		}

		addDeclaration(PrefixMs, "-ms-flex-pack", func() []cssast.ComponentValue {
			value := cssast.CloneComponentValues(msValue)
			replaceIdent(value, "flex-start", "start")
			replaceIdent(value, "flex-end", "end")
			replaceIdent(value, "space-between", "justify")
			replaceIdent(value, "space-around", "distribute")
			return value
		})

	case "order":
		var oldSpecNum *int64
		if len(n.Value) == 1 {
			if i, ok := n.Value[0].(*cssast.Integer); ok {
				v := i.Value + 1
				oldSpecNum = &v
			}
		}

		if oldSpecNum != nil {
			addDeclaration(PrefixWebkit, "-webkit-box-ordinal-group", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{integer(*oldSpecNum)}
			})
		} else {
			addDeclaration(PrefixWebkit, "-webkit-box-ordinal-group", nil)
		}

		addDeclaration(PrefixWebkit, "-webkit-order", nil)

		if oldSpecNum != nil {
			addDeclaration(PrefixMoz, "-moz-box-ordinal-group", func() []cssast.ComponentValue {
				return []cssast.ComponentValue{integer(*oldSpecNum)}
			})
		} else {
			addDeclaration(PrefixMoz, "-moz-box-ordinal-group", nil)
		}

		addDeclaration(PrefixMs, "-ms-flex-order", nil)

	case "align-items":
		addDeclaration(PrefixWebkit, "-webkit-box-align", func() []cssast.ComponentValue {
			value := cssast.CloneComponentValues(webkitValue)
			replaceIdent(value, "flex-end", "end")
			replaceIdent(value, "flex-start", "start")
			return value
		})
		addDeclaration(PrefixWebkit, "-webkit-align-items", nil)
		addDeclaration(PrefixMoz, "-moz-box-align", func() []cssast.ComponentValue {
			value := cssast.CloneComponentValues(mozValue)
			replaceIdent(value, "flex-end", "end")
			replaceIdent(value, "flex-start", "start")
			return value
		})
		addDeclaration(PrefixMs, "-ms-flex-align", func() []cssast.ComponentValue {
			value := cssast.CloneComponentValues(msValue)
			replaceIdent(value, "flex-end", "end")
			replaceIdent(value, "flex-start", "start")
			return value
		})

	case "align-self":
		addDeclaration(PrefixWebkit, "-webkit-align-self", nil)
		addDeclaration(PrefixMs, "-ms-flex-item-align", func() []cssast.ComponentValue {
			value := cssast.CloneComponentValues(msValue)
			replaceIdent(value, "flex-end", "end")
			replaceIdent(value, "flex-start", "start")
			return value
		})

	case "align-content":
		addDeclaration(PrefixWebkit, "-webkit-align-content", nil)
		addDeclaration(PrefixMs, "-ms-flex-line-pack", func() []cssast.ComponentValue {
			value := cssast.CloneComponentValues(msValue)
			replaceIdent(value, "flex-end", "end")
			replaceIdent(value, "flex-start", "start")
			replaceIdent(value, "space-between", "justify")
			replaceIdent(value, "space-around", "distribute")
			return value
		})

	case "image-rendering":
		if p.activeFor(PrefixWebkit) {
			if p.shouldPrefix("-webkit-optimize-contrast:fallback", false) {
				// Old WebKit had no pixelated; optimize-contrast picks the
				// nearest-neighbor algorithm there.
				replaceIdent(webkitValue, "pixelated", "-webkit-optimize-contrast")
			}
			if p.shouldPrefix("-webkit-optimize-contrast", false) {
				replaceIdent(webkitValue, "crisp-edges", "-webkit-optimize-contrast")
			}
		}
		if p.activeFor(PrefixMoz) && p.shouldPrefix("-moz-crisp-edges", false) {
			replaceIdent(mozValue, "pixelated", "-moz-crisp-edges")
			replaceIdent(mozValue, "crisp-edges", "-moz-crisp-edges")
		}
		if p.activeFor(PrefixO) && p.shouldPrefix("-o-pixelated", false) {
			replaceIdent(oValue, "pixelated", "-o-pixelated")
		}
		if p.activeFor(PrefixMs) && p.shouldPrefix("nearest-neighbor", false) {
			oldSpecValue := cssast.CloneComponentValues(msValue)
			replaceIdent(oldSpecValue, "pixelated", "nearest-neighbor")
			if !cssast.EqualComponentValues(msValue, oldSpecValue) {
				addDeclaration(PrefixMs, "-ms-interpolation-mode", func() []cssast.ComponentValue {
					return oldSpecValue
				})
			}
		}

	case "filter":
		switch first := n.Value[0].(type) {
		case *cssast.PreservedToken:
		case *cssast.Function:
			if !lowerEq(first.Name, "alpha") {
				addDeclaration(PrefixWebkit, "-webkit-filter", nil)
			}
		default:
			addDeclaration(PrefixWebkit, "-webkit-filter", nil)
		}

	case "backdrop-filter":
		addDeclaration(PrefixWebkit, "-webkit-backdrop-filter", nil)

	case "mask":
		addDeclaration(PrefixWebkit, "-webkit-mask", nil)

	case "mask-clip":
		addDeclaration(PrefixWebkit, "-webkit-mask-clip", nil)

	case "mask-composite":
		addDeclaration(PrefixWebkit, "-webkit-mask-composite", nil)

	case "mask-image":
		addDeclaration(PrefixWebkit, "-webkit-mask-image", nil)

	case "mask-origin":
		addDeclaration(PrefixWebkit, "-webkit-mask-origin", nil)

	case "mask-repeat":
		addDeclaration(PrefixWebkit, "-webkit-mask-repeat", nil)

	case "mask-position":
		addDeclaration(PrefixWebkit, "-webkit-mask-position", nil)

	case "mask-size":
		addDeclaration(PrefixWebkit, "-webkit-mask-size", nil)

	case "mask-border":
		addDeclaration(PrefixWebkit, "-webkit-mask-box-image", nil)

	case "mask-border-repeat":
		addDeclaration(PrefixWebkit, "-webkit-mask-border-repeat", nil)

	case "mask-border-source":
		addDeclaration(PrefixWebkit, "-webkit-mask-border-source", nil)

	case "mask-border-outset":
		addDeclaration(PrefixWebkit, "-webkit-mask-box-image-outset", nil)

	case "mask-border-width":
		addDeclaration(PrefixWebkit, "-webkit-mask-box-image-width", nil)

	case "mask-border-slice":
		addDeclaration(PrefixWebkit, "-webkit-mask-box-image-slice", nil)

	case "border-inline-start":
		addDeclaration(PrefixWebkit, "-webkit-border-start", nil)
		addDeclaration(PrefixMoz, "-moz-border-start", nil)

	case "border-inline-end":
		addDeclaration(PrefixWebkit, "-webkit-border-end", nil)
		addDeclaration(PrefixMoz, "-moz-border-end", nil)

	case "margin-inline-start":
		addDeclaration(PrefixWebkit, "-webkit-margin-start", nil)
		addDeclaration(PrefixMoz, "-moz-margin-start", nil)

	case "margin-inline-end":
		addDeclaration(PrefixWebkit, "-webkit-margin-end", nil)
		addDeclaration(PrefixMoz, "-moz-margin-end", nil)

	case "padding-inline-start":
		addDeclaration(PrefixWebkit, "-webkit-padding-start", nil)
		addDeclaration(PrefixMoz, "-moz-padding-start", nil)

	case "padding-inline-end":
		addDeclaration(PrefixWebkit, "-webkit-padding-end", nil)
		addDeclaration(PrefixMoz, "-moz-padding-end", nil)

	case "border-block-start":
		addDeclaration(PrefixWebkit, "-webkit-border-before", nil)

	case "border-block-end":
		addDeclaration(PrefixWebkit, "-webkit-border-after", nil)

	case "margin-block-start":
		addDeclaration(PrefixWebkit, "-webkit-margin-before", nil)

	case "margin-block-end":
		addDeclaration(PrefixWebkit, "-webkit-margin-after", nil)

	case "padding-block-start":
		addDeclaration(PrefixWebkit, "-webkit-padding-before", nil)

	case "padding-block-end":
		addDeclaration(PrefixWebkit, "-webkit-padding-after", nil)

	case "backface-visibility":
		addDeclaration(PrefixWebkit, "-webkit-backface-visibility", nil)
		addDeclaration(PrefixMoz, "-moz-backface-visibility", nil)

	case "clip-path":
		addDeclaration(PrefixWebkit, "-webkit-clip-path", nil)

	case "position":
		if len(n.Value) == 1 && p.activeFor(PrefixWebkit) && p.shouldPrefix("-webkit-sticky", false) {
			replaceIdent(webkitValue, "sticky", "-webkit-sticky")
		}

	case "user-select":
		addDeclaration(PrefixWebkit, "-webkit-user-select", nil)
		addDeclaration(PrefixMoz, "-moz-user-select", nil)
		if first, ok := firstIdentValue(n.Value); ok {
			switch first {
			case "contain":
				addDeclaration(PrefixMs, "-ms-user-select", func() []cssast.ComponentValue {
					return []cssast.ComponentValue{ident("element")}
				})
			case "all":
			default:
				addDeclaration(PrefixMs, "-ms-user-select", nil)
			}
		}

	case "transform":
		addDeclaration(PrefixWebkit, "-webkit-transform", nil)
		addDeclaration(PrefixMoz, "-moz-transform", nil)

		has3D := false
		for _, v := range n.Value {
			if f, ok := v.(*cssast.Function); ok {
				switch strings.ToLower(f.Name) {
				case "matrix3d", "translate3d", "translatez", "scale3d", "scalez",
					"rotate3d", "rotatex", "rotatey", "rotatez", "perspective":
					has3D = true
				}
			}
		}

		if !has3D {
			if !p.inKeyframeBlock {
				addDeclaration(PrefixMs, "-ms-transform", nil)
			}
			addDeclaration(PrefixO, "-o-transform", nil)
		}

	case "transform-origin":
		addDeclaration(PrefixWebkit, "-webkit-transform-origin", nil)
		addDeclaration(PrefixMoz, "-moz-transform-origin", nil)
		if !p.inKeyframeBlock {
			addDeclaration(PrefixMs, "-ms-transform-origin", nil)
		}
		addDeclaration(PrefixO, "-o-transform-origin", nil)

	case "transform-style":
		addDeclaration(PrefixWebkit, "-webkit-transform-style", nil)
		addDeclaration(PrefixMoz, "-moz-transform-style", nil)

	case "perspective":
		addDeclaration(PrefixWebkit, "-webkit-perspective", nil)
		addDeclaration(PrefixMoz, "-moz-perspective", nil)

	case "perspective-origin":
		addDeclaration(PrefixWebkit, "-webkit-perspective-origin", nil)
		addDeclaration(PrefixMoz, "-moz-perspective-origin", nil)

	case "text-decoration":
		simpleLine := false
		if len(n.Value) == 1 {
			if first, ok := firstIdentValue(n.Value); ok {
				switch first {
				case "none", "underline", "overline", "line-through", "blink",
					"inherit", "initial", "revert", "unset":
					simpleLine = true
				}
			}
		}
		if !simpleLine {
			addDeclaration(PrefixWebkit, "-webkit-text-decoration", nil)
			addDeclaration(PrefixMoz, "-moz-text-decoration", nil)
		}

	case "text-decoration-style":
		addDeclaration(PrefixWebkit, "-webkit-text-decoration-style", nil)
		addDeclaration(PrefixMoz, "-moz-text-decoration-style", nil)

	case "text-decoration-color":
		addDeclaration(PrefixWebkit, "-webkit-text-decoration-color", nil)
		addDeclaration(PrefixMoz, "-moz-text-decoration-color", nil)

	case "text-decoration-line":
		addDeclaration(PrefixWebkit, "-webkit-text-decoration-line", nil)
		addDeclaration(PrefixMoz, "-moz-text-decoration-line", nil)

	case "text-decoration-skip":
		addDeclaration(PrefixWebkit, "-webkit-text-decoration-skip", nil)

	case "text-decoration-skip-ink":
		if first, ok := firstIdentValue(n.Value); ok {
			if first == "auto" {
				addDeclaration(PrefixWebkit, "-webkit-text-decoration-skip", func() []cssast.ComponentValue {
					return []cssast.ComponentValue{ident("ink")}
				})
			} else {
				addDeclaration(PrefixWebkit, "-webkit-text-decoration-skip-ink", nil)
			}
		}

	case "text-size-adjust":
		if first, ok := firstIdentValue(n.Value); ok && len(n.Value) == 1 && first == "none" {
			addDeclaration(PrefixWebkit, "-webkit-text-size-adjust", nil)
			addDeclaration(PrefixMoz, "-moz-text-size-adjust", nil)
			addDeclaration(PrefixMs, "-ms-text-size-adjust", nil)
		}

	case "transition":
		if p.activeFor(PrefixWebkit) {
			if p.shouldPrefix("-webkit-transform", false) {
				replaceIdent(webkitValue, "transform", "-webkit-transform")
			}
			if p.shouldPrefix("-webkit-filter", false) {
				replaceIdent(webkitValue, "filter", "-webkit-filter")
			}
		}
		addDeclaration(PrefixWebkit, "-webkit-transition", nil)

		if p.activeFor(PrefixMoz) && p.shouldPrefix("-moz-transform", false) {
			replaceIdent(mozValue, "transform", "-moz-transform")
		}
		addDeclaration(PrefixMoz, "-moz-transition", nil)

		if p.activeFor(PrefixO) && p.shouldPrefix("-o-transform", false) {
			replaceIdent(oValue, "transform", "-o-transform")
		}
		addDeclaration(PrefixO, "-o-transition", nil)

	case "transition-property":
		if p.activeFor(PrefixWebkit) {
			if p.shouldPrefix("-webkit-transform", false) {
				replaceIdent(webkitValue, "transform", "-webkit-transform")
			}
			if p.shouldPrefix("-webkit-filter", false) {
				replaceIdent(webkitValue, "filter", "-webkit-filter")
			}
		}
		if p.activeFor(PrefixMoz) && p.shouldPrefix("-moz-transform", false) {
			replaceIdent(mozValue, "transform", "-moz-transform")
		}
		if p.activeFor(PrefixO) && p.shouldPrefix("-o-transform", false) {
			replaceIdent(oValue, "transform", "-o-transform")
		}

		addDeclaration(PrefixWebkit, "-webkit-transition-property", nil)
		addDeclaration(PrefixMoz, "-moz-transition-property", nil)
		addDeclaration(PrefixO, "-o-transition-property", nil)

	case "transition-duration":
		addDeclaration(PrefixWebkit, "-webkit-transition-duration", nil)
		addDeclaration(PrefixMoz, "-moz-transition-duration", nil)
		addDeclaration(PrefixO, "-o-transition-duration", nil)

	case "transition-delay":
		addDeclaration(PrefixWebkit, "-webkit-transition-delay", nil)
		addDeclaration(PrefixMoz, "-moz-transition-delay", nil)
		addDeclaration(PrefixO, "-o-transition-delay", nil)

	case "transition-timing-function":
		addDeclaration(PrefixWebkit, "-webkit-transition-timing-function", nil)
		addDeclaration(PrefixMoz, "-moz-transition-timing-function", nil)
		addDeclaration(PrefixO, "-o-transition-timing-function", nil)

	case "writing-mode":
		if len(n.Value) != 1 {
			break
		}

		direction := p.siblingDirection()

		if first, ok := firstIdentValue(n.Value); ok {
			switch first {
			case "vertical-lr":
				addDeclaration(PrefixWebkit, "-webkit-writing-mode", nil)
				switch direction {
				case "ltr":
					addDeclaration(PrefixMs, "-ms-writing-mode", func() []cssast.ComponentValue {
						return []cssast.ComponentValue{ident("tb-lr")}
					})
				case "rtl":
					addDeclaration(PrefixMs, "-ms-writing-mode", func() []cssast.ComponentValue {
						return []cssast.ComponentValue{ident("bt-lr")}
					})
				}
			case "vertical-rl":
				addDeclaration(PrefixWebkit, "-webkit-writing-mode", nil)
				switch direction {
				case "ltr":
					addDeclaration(PrefixMs, "-ms-writing-mode", func() []cssast.ComponentValue {
						return []cssast.ComponentValue{ident("tb-rl")}
					})
				case "rtl":
					addDeclaration(PrefixMs, "-ms-writing-mode", func() []cssast.ComponentValue {
						return []cssast.ComponentValue{ident("bt-rl")}
					})
				}
			case "horizontal-tb":
				addDeclaration(PrefixWebkit, "-webkit-writing-mode", nil)
				switch direction {
				case "ltr":
					addDeclaration(PrefixMs, "-ms-writing-mode", func() []cssast.ComponentValue {
						return []cssast.ComponentValue{ident("lr-tb")}
					})
				case "rtl":
					addDeclaration(PrefixMs, "-ms-writing-mode", func() []cssast.ComponentValue {
						return []cssast.ComponentValue{ident("rl-tb")}
					})
				}
			case "sideways-rl", "sideways-lr":
				addDeclaration(PrefixWebkit, "-webkit-writing-mode", nil)
			default:
				addDeclaration(PrefixWebkit, "-webkit-writing-mode", nil)
				addDeclaration(PrefixMs, "-ms-writing-mode", nil)
			}
		}

	case "width", "min-width", "max-width",
		"height", "min-height", "max-height",
		"inline-size", "min-inline-size", "max-inline-size",
		"block-size", "min-block-size", "max-block-size",
		"grid", "grid-template", "grid-template-rows", "grid-template-columns",
		"grid-auto-columns", "grid-auto-rows":
		isGridProperty := strings.HasPrefix(propertyName, "grid")

		if p.activeFor(PrefixWebkit) {
			if p.shouldPrefix("-webkit-fit-content", false) {
				replaceIdent(webkitValue, "fit-content", "-webkit-fit-content")
			}
			if p.shouldPrefix("-webkit-max-content", false) {
				replaceIdent(webkitValue, "max-content", "-webkit-max-content")
			}
			if p.shouldPrefix("-webkit-min-content", false) {
				replaceIdent(webkitValue, "min-content", "-webkit-min-content")
			}
			if p.shouldPrefix("-webkit-fill-available", false) {
				replaceIdent(webkitValue, "fill-available", "-webkit-fill-available")
				replaceIdent(webkitValue, "fill", "-webkit-fill-available")
				replaceIdent(webkitValue, "stretch", "-webkit-fill-available")
			}
		}

		if !isGridProperty && p.activeFor(PrefixMoz) {
			if p.shouldPrefix("-moz-fit-content", false) {
				replaceIdent(mozValue, "fit-content", "-moz-fit-content")
			}
			if p.shouldPrefix("-moz-max-content", false) {
				replaceIdent(mozValue, "max-content", "-moz-max-content")
			}
			if p.shouldPrefix("-moz-min-content", false) {
				replaceIdent(mozValue, "min-content", "-moz-min-content")
			}
			if p.shouldPrefix("-moz-available", false) {
				replaceIdent(mozValue, "fill-available", "-moz-available")
				replaceIdent(mozValue, "fill", "-moz-available")
				replaceIdent(mozValue, "stretch", "-moz-available")
			}
		}

	case "touch-action":
		addDeclaration(PrefixMs, "-ms-touch-action", func() []cssast.ComponentValue {
			value := cssast.CloneComponentValues(msValue)
			if p.shouldPrefix("-ms-pan-x", false) {
				replaceIdent(value, "pan-x", "-ms-pan-x")
			}
			if p.shouldPrefix("-ms-pan-y", false) {
				replaceIdent(value, "pan-y", "-ms-pan-y")
			}
			if p.shouldPrefix("-ms-double-tap-zoom", false) {
				replaceIdent(value, "double-tap-zoom", "-ms-double-tap-zoom")
			}
			if p.shouldPrefix("-ms-manipulation", false) {
				replaceIdent(value, "manipulation", "-ms-manipulation")
			}
			if p.shouldPrefix("-ms-none", false) {
				replaceIdent(value, "none", "-ms-none")
			}
			if p.shouldPrefix("-ms-pinch-zoom", false) {
				replaceIdent(value, "pinch-zoom", "-ms-pinch-zoom")
			}
			return value
		})

	case "text-orientation":
		addDeclaration(PrefixWebkit, "-webkit-text-orientation", nil)

	case "unicode-bidi":
		if p.activeFor(PrefixMoz) {
			if p.shouldPrefix("-moz-isolate", false) {
				replaceIdent(mozValue, "isolate", "-moz-isolate")
			}
			if p.shouldPrefix("-moz-isolate-override", false) {
				replaceIdent(mozValue, "isolate-override", "-moz-isolate-override")
			}
			if p.shouldPrefix("-moz-plaintext", false) {
				replaceIdent(mozValue, "plaintext", "-moz-plaintext")
			}
		}
		if p.activeFor(PrefixWebkit) {
			if p.shouldPrefix("-webkit-isolate", false) {
				replaceIdent(webkitValue, "isolate", "-webkit-isolate")
			}
			if p.shouldPrefix("-webkit-isolate-override", false) {
				replaceIdent(webkitValue, "isolate-override", "-webkit-isolate-override")
			}
			if p.shouldPrefix("-webkit-plaintext", false) {
				replaceIdent(webkitValue, "plaintext", "-webkit-plaintext")
			}
		}

	case "text-spacing":
		addDeclaration(PrefixMs, "-ms-text-spacing", nil)

	case "text-emphasis":
		addDeclaration(PrefixWebkit, "-webkit-text-emphasis", nil)

	case "text-emphasis-position":
		addDeclaration(PrefixWebkit, "-webkit-text-emphasis-position", nil)

	case "text-emphasis-style":
		addDeclaration(PrefixWebkit, "-webkit-text-emphasis-style", nil)

	case "text-emphasis-color":
		addDeclaration(PrefixWebkit, "-webkit-text-emphasis-color", nil)

	case "flow-into":
		addDeclaration(PrefixWebkit, "-webkit-flow-into", nil)
		addDeclaration(PrefixMs, "-ms-flow-into", nil)

	case "flow-from":
		addDeclaration(PrefixWebkit, "-webkit-flow-from", nil)
		addDeclaration(PrefixMs, "-ms-flow-from", nil)

	case "region-fragment":
		addDeclaration(PrefixWebkit, "-webkit-region-fragment", nil)
		addDeclaration(PrefixMs, "-ms-region-fragment", nil)

	case "scroll-snap-type":
		addDeclaration(PrefixWebkit, "-webkit-scroll-snap-type", nil)
		addDeclaration(PrefixMs, "-ms-scroll-snap-type", nil)

	case "scroll-snap-coordinate":
		addDeclaration(PrefixWebkit, "-webkit-scroll-snap-coordinate", nil)
		addDeclaration(PrefixMs, "-ms-scroll-snap-coordinate", nil)

	case "scroll-snap-destination":
		addDeclaration(PrefixWebkit, "-webkit-scroll-snap-destination", nil)
		addDeclaration(PrefixMs, "-ms-scroll-snap-destination", nil)

	case "scroll-snap-points-x":
		addDeclaration(PrefixWebkit, "-webkit-scroll-snap-points-x", nil)
		addDeclaration(PrefixMs, "-ms-scroll-snap-points-x", nil)

	case "scroll-snap-points-y":
		addDeclaration(PrefixWebkit, "-webkit-scroll-snap-points-y", nil)
		addDeclaration(PrefixMs, "-ms-scroll-snap-points-y", nil)

	case "text-align-last":
		addDeclaration(PrefixMoz, "-moz-text-align-last", nil)

	case "text-overflow":
		addDeclaration(PrefixO, "-o-text-overflow", nil)

	case "shape-margin":
		addDeclaration(PrefixWebkit, "-webkit-shape-margin", nil)

	case "shape-outside":
		addDeclaration(PrefixWebkit, "-webkit-shape-outside", nil)

	case "shape-image-threshold":
		addDeclaration(PrefixWebkit, "-webkit-shape-image-threshold", nil)

	case "object-fit":
		addDeclaration(PrefixO, "-o-object-fit", nil)

	case "object-position":
		addDeclaration(PrefixO, "-o-object-position", nil)

	case "tab-size":
		addDeclaration(PrefixMoz, "-moz-tab-size", nil)
		addDeclaration(PrefixO, "-o-tab-size", nil)

	case "hyphens":
		addDeclaration(PrefixWebkit, "-webkit-hyphens", nil)
		addDeclaration(PrefixMoz, "-moz-hyphens", nil)
		addDeclaration(PrefixMs, "-ms-hyphens", nil)

	case "border-image":
		addDeclaration(PrefixWebkit, "-webkit-border-image", nil)
		addDeclaration(PrefixMoz, "-moz-border-image", nil)
		addDeclaration(PrefixO, "-o-border-image", nil)

	case "font-kerning":
		addDeclaration(PrefixWebkit, "-webkit-font-kerning", nil)

	case "font-feature-settings":
		addDeclaration(PrefixWebkit, "-webkit-font-feature-settings", nil)
		addDeclaration(PrefixMoz, "-moz-font-feature-settings", nil)

	case "font-variant-ligatures":
		addDeclaration(PrefixWebkit, "-webkit-font-variant-ligatures", nil)
		addDeclaration(PrefixMoz, "-moz-font-variant-ligatures", nil)

	case "font-language-override":
		addDeclaration(PrefixWebkit, "-webkit-font-language-override", nil)
		addDeclaration(PrefixMoz, "-moz-font-language-override", nil)

	case "background-origin":
		addDeclaration(PrefixWebkit, "-webkit-background-origin", nil)
		addDeclaration(PrefixMoz, "-moz-background-origin", nil)
		addDeclaration(PrefixO, "-o-background-origin", nil)

	case "background-size":
		addDeclaration(PrefixWebkit, "-webkit-background-size", nil)
		addDeclaration(PrefixMoz, "-moz-background-size", nil)
		addDeclaration(PrefixO, "-o-background-size", nil)

	case "overscroll-behavior":
		if first, ok := firstIdentValue(n.Value); ok {
			switch first {
			case "auto":
				addDeclaration(PrefixMs, "-ms-scroll-chaining", func() []cssast.ComponentValue {
					return []cssast.ComponentValue{ident("chained")}
				})
			case "none", "contain":
				addDeclaration(PrefixMs, "-ms-scroll-chaining", func() []cssast.ComponentValue {
					return []cssast.ComponentValue{ident("none")}
				})
			default:
				addDeclaration(PrefixMs, "-ms-scroll-chaining", nil)
			}
		} else {
			addDeclaration(PrefixMs, "-ms-scroll-chaining", nil)
		}

	case "box-shadow":
		addDeclaration(PrefixWebkit, "-webkit-box-shadow", nil)
		addDeclaration(PrefixMoz, "-moz-box-shadow", nil)

	case "forced-color-adjust":
		addDeclaration(PrefixMs, "-ms-high-contrast-adjust", nil)

	case "break-inside":
		if first, ok := firstIdentValue(n.Value); ok {
			switch first {
			case "auto", "avoid":
				addDeclaration(PrefixWebkit, "-webkit-column-break-inside", nil)
			}
		}

	case "break-before":
		if first, ok := firstIdentValue(n.Value); ok {
			switch first {
			case "auto", "avoid":
				addDeclaration(PrefixWebkit, "-webkit-column-break-before", nil)
			case "column":
				addDeclaration(PrefixWebkit, "-webkit-column-break-before", func() []cssast.ComponentValue {
					return []cssast.ComponentValue{ident("always")}
				})
			}
		}

	case "break-after":
		if first, ok := firstIdentValue(n.Value); ok {
			switch first {
			case "auto", "avoid":
				addDeclaration(PrefixWebkit, "-webkit-column-break-after", nil)
			case "column":
				addDeclaration(PrefixWebkit, "-webkit-column-break-after", func() []cssast.ComponentValue {
					return []cssast.ComponentValue{ident("always")}
				})
			}
		}

	case "border-radius":
		addDeclaration(PrefixWebkit, "-webkit-border-radius", nil)
		addDeclaration(PrefixMoz, "-moz-border-radius", nil)

	case "border-top-left-radius":
		addDeclaration(PrefixWebkit, "-webkit-border-top-left-radius", nil)
		addDeclaration(PrefixMoz, "-moz-border-radius-topleft", nil)

	case "border-top-right-radius":
		addDeclaration(PrefixWebkit, "-webkit-border-top-right-radius", nil)
		addDeclaration(PrefixMoz, "-moz-border-radius-topright", nil)

	case "border-bottom-right-radius":
		addDeclaration(PrefixWebkit, "-webkit-border-bottom-right-radius", nil)
		addDeclaration(PrefixMoz, "-moz-border-radius-bottomright", nil)

	case "border-bottom-left-radius":
		addDeclaration(PrefixWebkit, "-webkit-border-bottom-left-radius", nil)
		addDeclaration(PrefixMoz, "-moz-border-radius-bottomleft", nil)
	}

	if !cssast.EqualComponentValues(n.Value, webkitValue) {
		p.addedDeclarations = append(p.addedDeclarations, &cssast.Declaration{
			Span: n.Span, Name: n.Name, Value: webkitValue, Important: n.Important,
		})
	}
	if !cssast.EqualComponentValues(n.Value, mozValue) {
		p.addedDeclarations = append(p.addedDeclarations, &cssast.Declaration{
			Span: n.Span, Name: n.Name, Value: mozValue, Important: n.Important,
		})
	}
	if !cssast.EqualComponentValues(n.Value, oValue) {
		p.addedDeclarations = append(p.addedDeclarations, &cssast.Declaration{
			Span: n.Span, Name: n.Name, Value: oValue, Important: n.Important,
		})
	}
	if !cssast.EqualComponentValues(n.Value, msValue) {
		p.addedDeclarations = append(p.addedDeclarations, &cssast.Declaration{
			Span: n.Span, Name: n.Name, Value: msValue, Important: n.Important,
		})
	}
}

// oldBoxOrientation maps a flex-direction keyword at value index i to the
// 2009 box-orient/box-direction pair.
func oldBoxOrientation(value []cssast.ComponentValue, i int) (orient, direction string, ok bool) {
	if i >= len(value) {
		return "", "", false
	}
	id, isIdent := value[i].(*cssast.Ident)
	if !isIdent {
		return "", "", false
	}

	switch strings.ToLower(id.Value) {
	case "row":
		return "horizontal", "normal", true
	case "column":
		return "vertical", "normal", true
	case "row-reverse":
		return "horizontal", "reverse", true
	case "column-reverse":
		return "vertical", "reverse", true
	}
	return "", "", false
}

// siblingDirection finds the effective `direction` declared in the
// current block; writing-mode's -ms- synthesis depends on it.
func (p *Prefixer) siblingDirection() string {
	if p.simpleBlock == nil {
		return "ltr"
	}

	for i := len(p.simpleBlock.Values) - 1; i >= 0; i-- {
		decl, ok := p.simpleBlock.Values[i].(*cssast.Declaration)
		if !ok || !lowerEq(decl.Name, "direction") {
			continue
		}
		if first, hasIdent := firstIdentValue(decl.Value); hasIdent && first == "rtl" {
			return "rtl"
		}
		return "ltr"
	}
	return "ltr"
}
