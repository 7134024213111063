package csstext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chisel-web/chisel/compiler/cssast"
)

func TestParseDeclaration(t *testing.T) {
	sheet := Parse("a { color: red; margin: 0 auto !important; }")

	require.Len(t, sheet.Rules, 1)
	rule := sheet.Rules[0].(*cssast.QualifiedRule)
	require.NotNil(t, rule.Block)
	require.Len(t, rule.Block.Values, 2)

	color := rule.Block.Values[0].(*cssast.Declaration)
	assert.Equal(t, "color", color.Name)
	assert.False(t, color.Important)

	margin := rule.Block.Values[1].(*cssast.Declaration)
	assert.Equal(t, "margin", margin.Name)
	assert.True(t, margin.Important)
	require.Len(t, margin.Value, 2)
	assert.Equal(t, int64(0), margin.Value[0].(*cssast.Integer).Value)
	assert.Equal(t, "auto", margin.Value[1].(*cssast.Ident).Value)
}

func TestParseDimensionKinds(t *testing.T) {
	sheet := Parse("a { x: 45deg 2s 96dpi 10px 1fr; }")

	decl := sheet.Rules[0].(*cssast.QualifiedRule).Block.Values[0].(*cssast.Declaration)
	kinds := []cssast.DimensionKind{
		cssast.DimensionAngle,
		cssast.DimensionTime,
		cssast.DimensionResolution,
		cssast.DimensionLength,
		cssast.DimensionFlex,
	}
	require.Len(t, decl.Value, len(kinds))
	for i, kind := range kinds {
		assert.Equal(t, kind, decl.Value[i].(*cssast.Dimension).Kind, "value %d", i)
	}
}

func TestParseSelectors(t *testing.T) {
	sheet := Parse("input::placeholder, a:any-link { color: gray; }")

	rule := sheet.Rules[0].(*cssast.QualifiedRule)

	var pseudoElements, pseudoClasses int
	for _, v := range rule.Prelude {
		switch v.(type) {
		case *cssast.PseudoElementSelector:
			pseudoElements++
		case *cssast.PseudoClassSelector:
			pseudoClasses++
		}
	}
	assert.Equal(t, 1, pseudoElements)
	assert.Equal(t, 1, pseudoClasses)
}

func TestParseMediaQuery(t *testing.T) {
	sheet := Parse("@media screen and (min-resolution: 2dppx) { a { color: red; } }")

	atRule := sheet.Rules[0].(*cssast.AtRule)
	list := atRule.Prelude.(*cssast.MediaQueryList)
	require.Len(t, list.Queries, 1)

	var feature *cssast.MediaFeaturePlain
	for _, v := range list.Queries[0].Values {
		if f, ok := v.(*cssast.MediaFeaturePlain); ok {
			feature = f
		}
	}
	require.NotNil(t, feature)
	assert.Equal(t, "min-resolution", feature.Name)
	dim := feature.Value.(*cssast.Dimension)
	assert.Equal(t, cssast.DimensionResolution, dim.Kind)
}

func TestParseImportSupports(t *testing.T) {
	sheet := Parse(`@import url("grid.css") supports(display: grid);`)

	atRule := sheet.Rules[0].(*cssast.AtRule)
	prelude := atRule.Prelude.(*cssast.ImportPrelude)
	require.NotNil(t, prelude.Href)
	require.NotNil(t, prelude.Supports)
	require.NotNil(t, prelude.Supports.Declaration)
	assert.Equal(t, "display", prelude.Supports.Declaration.Name)
}

func TestParseKeyframes(t *testing.T) {
	sheet := Parse("@keyframes spin { from { transform: rotate(0deg); } 50% { opacity: 1; } }")

	atRule := sheet.Rules[0].(*cssast.AtRule)
	require.NotNil(t, atRule.Block)
	require.Len(t, atRule.Block.Values, 2)

	frame := atRule.Block.Values[0].(*cssast.KeyframeBlock)
	assert.Equal(t, "from", frame.Prelude[0].(*cssast.Ident).Value)
}

func TestParseNestedAtRule(t *testing.T) {
	sheet := Parse("@media screen { a { color: red; } @supports (display: flex) { b { color: blue; } } }")

	media := sheet.Rules[0].(*cssast.AtRule)
	require.Len(t, media.Block.Values, 2)
	_, isRule := media.Block.Values[0].(*cssast.QualifiedRule)
	assert.True(t, isRule)
	_, isAt := media.Block.Values[1].(*cssast.AtRule)
	assert.True(t, isAt)
}

func TestPrintRoundTrip(t *testing.T) {
	// Print and re-parse: the trees must agree even though formatting is
	// canonicalized.
	css := `a, b:hover { margin: 0 auto; background: url("x.png"); }
@media (min-width: 600px) { c { color: red !important; } }`

	first := Parse(css)
	printed := Print(first)
	second := Parse(printed)

	require.Len(t, second.Rules, len(first.Rules))
	assert.Equal(t, Print(second), printed)
}

func TestCommentsIgnored(t *testing.T) {
	sheet := Parse("/* lead */ a { /* in */ color: red; }")

	rule := sheet.Rules[0].(*cssast.QualifiedRule)
	require.Len(t, rule.Block.Values, 1)
}
