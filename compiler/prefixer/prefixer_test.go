package prefixer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chisel-web/chisel/compiler/compat"
	"github.com/chisel-web/chisel/compiler/cssast"
	"github.com/chisel-web/chisel/internal/csstext"
)

// run parses, prefixes for every browser (empty target set), and prints.
func run(t *testing.T, css string) string {
	t.Helper()
	return runFor(t, css, compat.Versions{})
}

func runFor(t *testing.T, css string, env compat.Versions) string {
	t.Helper()
	sheet := csstext.Parse(css)
	New(Options{Env: env}).Process(sheet)
	return csstext.Print(sheet)
}

// indexOf fails the test when needle is absent.
func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	i := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, i, 0, "expected output to contain %q:\n%s", needle, haystack)
	return i
}

// assertOrder asserts each needle occurs, in the given order.
func assertOrder(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	prev := -1
	for _, needle := range needles {
		i := indexOf(t, haystack, needle)
		assert.Greater(t, i, prev, "expected %q after the previous needle:\n%s", needle, haystack)
		prev = i
	}
}

func TestDisplayFlex(t *testing.T) {
	out := run(t, "a { display: flex; }")

	assertOrder(t, out,
		"display: -webkit-box;",
		"display: -webkit-flex;",
		"display: -moz-box;",
		"display: -ms-flexbox;",
		"display: flex;",
	)
}

func TestDisplayInlineFlex(t *testing.T) {
	out := run(t, "a { display: inline-flex; }")

	assertOrder(t, out,
		"display: -webkit-inline-box;",
		"display: -webkit-inline-flex;",
		"display: -moz-inline-box;",
		"display: -ms-inline-flexbox;",
		"display: inline-flex;",
	)
}

func TestLinearGradientDirectionInversion(t *testing.T) {
	out := run(t, "a { background: linear-gradient(to top, red, blue); }")

	assertOrder(t, out,
		"background: -webkit-linear-gradient(bottom, red, blue);",
		"background: linear-gradient(to top, red, blue);",
	)
	indexOf(t, out, "-moz-linear-gradient(bottom,")
	indexOf(t, out, "-o-linear-gradient(bottom,")
}

func TestLinearGradientDiagonal(t *testing.T) {
	out := run(t, "a { background: linear-gradient(to top right, red, blue); }")

	indexOf(t, out, "-webkit-linear-gradient(bottom left,")
}

func TestLinearGradientAngles(t *testing.T) {
	tests := []struct {
		angle    string
		expected string
	}{
		{"0deg", "bottom"},
		{"90deg", "left"},
		{"180deg", "top"},
		{"270deg", "right"},
		{"30deg", "60deg"},
		{"0.5turn", "top"},
		{"200grad", "top"},
	}

	for _, tt := range tests {
		t.Run(tt.angle, func(t *testing.T) {
			out := run(t, "a { background: linear-gradient("+tt.angle+", red, blue); }")
			indexOf(t, out, "-webkit-linear-gradient("+tt.expected+",")
		})
	}
}

func TestRadialGradientPositionRelocation(t *testing.T) {
	out := run(t, "a { background: radial-gradient(circle at top left, red, blue); }")

	indexOf(t, out, "-webkit-radial-gradient(top left, circle,")
}

func TestCrossFade(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		expected string
	}{
		{
			"no transparency defaults to half",
			`a { background: cross-fade(url("a.png"), url("b.png")); }`,
			`-webkit-cross-fade(url("a.png"),url("b.png"),0.5)`,
		},
		{
			"one percentage",
			`a { background: cross-fade(url("a.png") 25%, url("b.png")); }`,
			`-webkit-cross-fade(url("a.png"),url("b.png"),0.25)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, tt.css)
			cleaned := strings.ReplaceAll(strings.ReplaceAll(out, " ", ""), "\n", "")
			needle := strings.ReplaceAll(tt.expected, " ", "")
			assert.Contains(t, cleaned, needle, "output:\n%s", out)
		})
	}
}

func TestImageSet(t *testing.T) {
	out := run(t, `a { background: image-set("img.png" 1x); }`)

	indexOf(t, out, `-webkit-image-set(url("img.png") 1x)`)
}

func TestCursorZoom(t *testing.T) {
	out := run(t, "a { cursor: zoom-in; }")

	assertOrder(t, out,
		"cursor: -webkit-zoom-in;",
		"cursor: -moz-zoom-in;",
		"cursor: zoom-in;",
	)
}

func TestFlexShorthand(t *testing.T) {
	out := run(t, "a { flex: 1 1 0; }")

	assertOrder(t, out,
		"-webkit-box-flex: 1;",
		"-webkit-flex: 1 1 0;",
		"-moz-box-flex: 1;",
		"-ms-flex: 1 1 0px;",
		"flex: 1 1 0;",
	)
}

func TestFlexNone(t *testing.T) {
	out := run(t, "a { flex: none; }")

	indexOf(t, out, "-webkit-box-flex: 0;")
	indexOf(t, out, "-ms-flex: none;")
}

func TestFlexDirection(t *testing.T) {
	out := run(t, "a { flex-direction: column-reverse; }")

	assertOrder(t, out,
		"-webkit-box-orient: vertical;",
		"-webkit-box-direction: reverse;",
		"-webkit-flex-direction: column-reverse;",
		"-moz-box-orient: vertical;",
		"-moz-box-direction: reverse;",
		"-ms-flex-direction: column-reverse;",
		"flex-direction: column-reverse;",
	)
}

func TestJustifyContent(t *testing.T) {
	out := run(t, "a { justify-content: space-between; }")

	assertOrder(t, out,
		"-webkit-box-pack: justify;",
		"-webkit-justify-content: space-between;",
		"-moz-box-pack: justify;",
		"-ms-flex-pack: justify;",
		"justify-content: space-between;",
	)
}

func TestJustifyContentSpaceAround(t *testing.T) {
	out := run(t, "a { justify-content: space-around; }")

	assert.NotContains(t, out, "-webkit-box-pack")
	indexOf(t, out, "-ms-flex-pack: distribute;")
}

func TestOrder(t *testing.T) {
	out := run(t, "a { order: 2; }")

	assertOrder(t, out,
		"-webkit-box-ordinal-group: 3;",
		"-webkit-order: 2;",
		"-moz-box-ordinal-group: 3;",
		"-ms-flex-order: 2;",
		"order: 2;",
	)
}

func TestAlignItems(t *testing.T) {
	out := run(t, "a { align-items: flex-end; }")

	assertOrder(t, out,
		"-webkit-box-align: end;",
		"-webkit-align-items: flex-end;",
		"-moz-box-align: end;",
		"-ms-flex-align: end;",
		"align-items: flex-end;",
	)
}

func TestTransform3DSkipsMsAndO(t *testing.T) {
	out := run(t, "a { transform: translate3d(0, 0, 0); }")

	indexOf(t, out, "-webkit-transform: translate3d(0, 0, 0);")
	indexOf(t, out, "-moz-transform: translate3d(")
	assert.NotContains(t, out, "-ms-transform")
	assert.NotContains(t, out, "-o-transform:")
}

func TestTransform2D(t *testing.T) {
	out := run(t, "a { transform: rotate(45deg); }")

	assertOrder(t, out,
		"-webkit-transform: rotate(45deg);",
		"-moz-transform: rotate(45deg);",
		"-ms-transform: rotate(45deg);",
		"-o-transform: rotate(45deg);",
		"transform: rotate(45deg);",
	)
}

func TestTransitionRewritesTransform(t *testing.T) {
	out := run(t, "a { transition: transform 1s; }")

	indexOf(t, out, "-webkit-transition: -webkit-transform 1s;")
	indexOf(t, out, "-moz-transition: -moz-transform 1s;")
	indexOf(t, out, "-o-transition: -o-transform 1s;")
	indexOf(t, out, "transition: transform 1s;")
}

func TestUserSelect(t *testing.T) {
	out := run(t, "a { user-select: contain; }")

	indexOf(t, out, "-webkit-user-select: contain;")
	indexOf(t, out, "-moz-user-select: contain;")
	indexOf(t, out, "-ms-user-select: element;")
}

func TestOverscrollBehavior(t *testing.T) {
	out := run(t, "a { overscroll-behavior: auto; }")
	indexOf(t, out, "-ms-scroll-chaining: chained;")

	out = run(t, "a { overscroll-behavior: contain; }")
	indexOf(t, out, "-ms-scroll-chaining: none;")
}

func TestBreakBeforeColumn(t *testing.T) {
	out := run(t, "a { break-before: column; }")

	indexOf(t, out, "-webkit-column-break-before: always;")
}

func TestBorderRadiusCorners(t *testing.T) {
	out := run(t, "a { border-top-left-radius: 4px; }")

	assertOrder(t, out,
		"-webkit-border-top-left-radius: 4px;",
		"-moz-border-radius-topleft: 4px;",
		"border-top-left-radius: 4px;",
	)
}

func TestSizeKeywords(t *testing.T) {
	out := run(t, "a { width: fit-content; }")

	assertOrder(t, out,
		"width: -webkit-fit-content;",
		"width: -moz-fit-content;",
		"width: fit-content;",
	)
}

func TestStretchKeyword(t *testing.T) {
	out := run(t, "a { width: stretch; }")

	indexOf(t, out, "width: -webkit-fill-available;")
	indexOf(t, out, "width: -moz-available;")
}

func TestPositionSticky(t *testing.T) {
	out := run(t, "a { position: sticky; }")

	assertOrder(t, out,
		"position: -webkit-sticky;",
		"position: sticky;",
	)
}

func TestWritingModeDirectionAware(t *testing.T) {
	out := run(t, "a { direction: rtl; writing-mode: vertical-rl; }")
	indexOf(t, out, "-ms-writing-mode: bt-rl;")

	out = run(t, "a { writing-mode: vertical-lr; }")
	indexOf(t, out, "-ms-writing-mode: tb-lr;")
}

func TestImageRendering(t *testing.T) {
	out := run(t, "a { image-rendering: pixelated; }")

	indexOf(t, out, "image-rendering: -webkit-optimize-contrast;")
	indexOf(t, out, "image-rendering: -moz-crisp-edges;")
	indexOf(t, out, "image-rendering: -o-pixelated;")
	indexOf(t, out, "-ms-interpolation-mode: nearest-neighbor;")
}

func TestAnimationReverseNotPrefixed(t *testing.T) {
	out := run(t, "a { animation: spin 1s reverse; }")

	assert.NotContains(t, out, "-webkit-animation")
}

func TestKeyframesExpansion(t *testing.T) {
	out := run(t, "@keyframes spin { from { transform: rotate(0deg); } }")

	assertOrder(t, out,
		"@-webkit-keyframes spin",
		"@-moz-keyframes spin",
		"@-o-keyframes spin",
		"@keyframes spin",
	)
}

// TestKeyframePrefixLocality tests that a prefixed keyframes copy never
// gains declarations of a different vendor
func TestKeyframePrefixLocality(t *testing.T) {
	out := run(t, "@keyframes spin { from { transform: rotate(0deg); } }")

	webkitStart := indexOf(t, out, "@-webkit-keyframes")
	mozStart := indexOf(t, out, "@-moz-keyframes")
	webkitBody := out[webkitStart:mozStart]

	assert.Contains(t, webkitBody, "-webkit-transform")
	assert.NotContains(t, webkitBody, "-moz-transform")
	assert.NotContains(t, webkitBody, "-ms-transform")

	// transform in a keyframe block never gets the -ms- form.
	assert.NotContains(t, out, "-ms-transform")
}

func TestViewportExpansion(t *testing.T) {
	out := run(t, "@viewport { width: device-width; }")

	assertOrder(t, out,
		"@-ms-viewport",
		"@-o-viewport",
		"@viewport",
	)
}

func TestSelectorPlaceholder(t *testing.T) {
	out := run(t, "input::placeholder { color: gray; }")

	assertOrder(t, out,
		"input::-webkit-input-placeholder",
		"input:-moz-placeholder",
		"input::-moz-placeholder",
		"input:-ms-input-placeholder",
		"input::-ms-input-placeholder",
		"input::placeholder",
	)
}

func TestSelectorFullscreen(t *testing.T) {
	out := run(t, ":fullscreen a { color: red; }")

	assertOrder(t, out,
		":-webkit-full-screen a",
		":-moz-full-screen a",
		":-ms-fullscreen a",
		":fullscreen a",
	)
}

func TestMediaResolution(t *testing.T) {
	out := run(t, "@media (min-resolution: 192dpi) { a { color: red; } }")

	indexOf(t, out, "(-webkit-min-device-pixel-ratio: 2)")
	indexOf(t, out, "(min--moz-device-pixel-ratio: 2)")
	indexOf(t, out, "(-o-min-device-pixel-ratio: 2)")
	indexOf(t, out, "(min-resolution: 192dpi)")
}

func TestMediaResolutionDpcm(t *testing.T) {
	out := run(t, "@media (max-resolution: 37.8dpcm) { a { color: red; } }")

	indexOf(t, out, "(-webkit-max-device-pixel-ratio: 1)")
}

func TestImportSupportsWidening(t *testing.T) {
	out := run(t, `@import url("grid.css") supports(display: flex);`)

	indexOf(t, out, "(display: flex)")
	indexOf(t, out, "or (display: -webkit-flex)")
	indexOf(t, out, "or (display: -ms-flexbox)")
}

func TestAdditivity(t *testing.T) {
	css := `
a { display: flex; transition: transform 1s; }
@keyframes spin { from { transform: rotate(0deg); } }
b { width: fit-content; }
`
	sheet := csstext.Parse(css)
	original := csstext.Parse(css)

	New(Options{Env: compat.Versions{}}).Process(sheet)
	out := csstext.Print(sheet)

	// Every original declaration and rule still appears.
	for _, needle := range []string{
		"display: flex;",
		"transition: transform 1s;",
		"@keyframes spin",
		"transform: rotate(0deg);",
		"width: fit-content;",
	} {
		indexOf(t, out, needle)
	}

	// And the untouched original parses to the same tree as before.
	assert.True(t, equalSheets(original, csstext.Parse(css)))
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"a { display: flex; }",
		"a { background: linear-gradient(to top, red, blue); }",
		"@keyframes spin { from { transform: rotate(0deg); } to { transform: rotate(360deg); } }",
		"input::placeholder { color: gray; }",
		"@media (min-resolution: 2dppx) { a { color: red; } }",
		`@import url("grid.css") supports(display: flex);`,
		"@viewport { width: device-width; }",
		"a { width: stretch; transition: transform 1s; }",
	}

	for _, css := range inputs {
		t.Run(css, func(t *testing.T) {
			once := csstext.Parse(css)
			New(Options{Env: compat.Versions{}}).Process(once)

			twice := csstext.Parse(css)
			New(Options{Env: compat.Versions{}}).Process(twice)
			New(Options{Env: compat.Versions{}}).Process(twice)

			if diff := cmp.Diff(csstext.Print(once), csstext.Print(twice)); diff != "" {
				t.Errorf("Second run changed the tree (-once +twice):\n%s", diff)
			}
		})
	}
}

// TestDeDuplication tests that siblings stay unique under span-ignoring
// equality
func TestDeDuplication(t *testing.T) {
	out := run(t, "a { display: flex; }")

	count := strings.Count(out, "display: -webkit-flex;")
	assert.Equal(t, 1, count, "output:\n%s", out)
}

// TestExistingPrefixedSiblingSkipsAddition tests the author-wins rule
func TestExistingPrefixedSiblingSkipsAddition(t *testing.T) {
	out := run(t, "a { -webkit-appearance: button; appearance: none; }")

	// The author's -webkit-appearance survives and no second copy is
	// staged next to `appearance`.
	assert.Equal(t, 1, strings.Count(out, "-webkit-appearance"), "output:\n%s", out)
	indexOf(t, out, "-moz-appearance: none;")
}

func TestTargetedPrefixing(t *testing.T) {
	// Modern Chrome needs no flexbox fallbacks.
	modern := compat.MustParseVersions(map[string]string{"chrome": "120"})
	out := runFor(t, "a { display: flex; }", modern)
	assert.NotContains(t, out, "-webkit-box")
	assert.NotContains(t, out, "-ms-flexbox")

	// Chrome 20 still used the old box model.
	legacy := compat.MustParseVersions(map[string]string{"chrome": "20"})
	out = runFor(t, "a { display: flex; }", legacy)
	indexOf(t, out, "display: -webkit-box;")

	// IE 10 needs the 2012 syntax.
	ie := compat.MustParseVersions(map[string]string{"ie": "10"})
	out = runFor(t, "a { display: flex; }", ie)
	indexOf(t, out, "display: -ms-flexbox;")
	assert.NotContains(t, out, "-moz-box")
}

func TestUnknownPropertyPassesThrough(t *testing.T) {
	css := "a { -x-made-up: 1; }"
	out := run(t, css)

	indexOf(t, out, "-x-made-up: 1;")
	assert.Equal(t, 1, strings.Count(out, "-x-made-up"))
}

func TestCustomPropertyUntouched(t *testing.T) {
	out := run(t, "a { --transform: none; }")

	assert.NotContains(t, out, "-webkit")
}

func TestImportantPropagates(t *testing.T) {
	out := run(t, "a { box-sizing: border-box !important; }")

	indexOf(t, out, "-webkit-box-sizing: border-box !important;")
	indexOf(t, out, "box-sizing: border-box !important;")
}

func equalSheets(a, b *cssast.Stylesheet) bool {
	if len(a.Rules) != len(b.Rules) {
		return false
	}
	for i := range a.Rules {
		if !cssast.EqualRules(a.Rules[i], b.Rules[i]) {
			return false
		}
	}
	return true
}
