package css

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrintRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	inputs := []struct {
		id   PropertyID
		text string
		want string // canonical form, if different from text
	}{
		{PropertyColor, "rgb(255,0,0)", ""},
		{PropertyColor, "rgba(0,0,255,0.5)", ""},
		{PropertyColor, "#ff0000", "rgb(255,0,0)"},
		{PropertyColor, "#0f0f", "rgb(0,255,0)"},
		{PropertyColor, "red", "rgb(255,0,0)"},
		{PropertyColor, "@theme_bg", ""},
		{PropertyColor, "mix(@a, rgb(0,0,0), 0.5)", ""},
		{PropertyColor, "shade(@a, 1.2)", ""},
		{PropertyColor, "alpha(currentColor, 0.3)", ""},
		{PropertyColor, "lighter(darker(@x))", ""},
		{PropertyMarginTop, "-5px", ""},
		{PropertyMarginTop, "1.5em", ""},
		{PropertyMarginTop, "0", "0px"},
		{PropertyBorderTopWidth, "thick", "5px"},
		{PropertyFontSize, "large", "18px"},
		{PropertyFontWeight, "bold", "700"},
		{PropertyOpacity, "0.25", ""},
		{PropertyBackgroundImage, `url("a.png"), none`, ""},
		{PropertyBackgroundImage, `url(b.png)`, `url("b.png")`},
		{PropertyBackgroundImage, `cross-fade(25%, url("a"), none)`, ""},
		{PropertyIconSource, `-ctk-icontheme("edit-copy")`, ""},
		{PropertyBoxShadow, "inset 1px 2px 3px 4px rgb(0,0,0)", ""},
		{PropertyTextShadow, "1px 1px red", "1px 1px 0px 0px rgb(255,0,0)"},
		{PropertyTextShadow, "none", ""},
		{PropertyTransitionDuration, "1s, 200ms", ""},
		{PropertyTransitionTimingFunction, "ease-in, cubic-bezier(0.1, 0.2, 0.3, 0.4), steps(3, start)", ""},
		{PropertyTransitionTimingFunction, "steps(1, end)", "step-end"},
		{PropertyKeyBindings, "emacs, vi", ""},
		{PropertyKeyBindings, "none", ""},
		{PropertyFontFamily, `"Open Sans", Deja Vu Sans`, `"Open Sans", "Deja Vu Sans"`},
		{PropertyBackgroundPosition, "left, 10px, center", "0%, 10px, 50%"},
		{PropertyBackgroundPosition, "left top", "0% 0%"},
		{PropertyBackgroundPosition, "top right", "100% 0%"},
		{PropertyBackgroundPosition, "bottom", "50% 100%"},
		{PropertyBackgroundPosition, "10px 20px, center", "10px 20px, 50%"},
		{PropertyBackgroundSize, "10px 20px", ""},
		{PropertyBackgroundSize, "auto 5px, cover", ""},
		{PropertyBackgroundSize, "50%", ""},
		{PropertyFontSize, "150%", ""},
		{PropertyBorderTopLeftRadius, "5px 3px", "5px, 3px"},
		{PropertyBorderTopLeftRadius, "5px", "5px, 5px"},
		{PropertyAnimationIterationCount, "infinite, 2", ""},
		{PropertyBackgroundRepeat, "no-repeat, repeat-x", ""},
		{PropertyMarginTop, "inherit", ""},
		{PropertyColor, "unset", ""},
	}
	for _, in := range inputs {
		v, err := ParseValue(in.id, in.text)
		if err != nil {
			t.Errorf("%s: cannot parse %q: %v", LookupProperty(in.id).Name, in.text, err)
			continue
		}
		want := in.want
		if want == "" {
			want = in.text
		}
		printed := Print(v)
		assert.Equal(t, want, printed)
		again, err := ParseValue(in.id, printed)
		if err != nil {
			t.Errorf("%s: cannot re-parse %q: %v", LookupProperty(in.id).Name, printed, err)
			continue
		}
		assert.True(t, Equal(v, again), "round trip of %q: %s != %s", in.text, v, again)
		Unref(v)
		Unref(again)
	}
}

func TestParseStringEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	fam := NewArray(NewString("a \"quoted\"\nname\\"))
	printed := fam.String()
	v, err := ParseValue(PropertyFontFamily, printed)
	require.NoError(t, err, "printed form %s", printed)
	assert.True(t, Equal(fam, v), "expected %s, have %s", fam, v)
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	bad := []struct {
		id   PropertyID
		text string
	}{
		{PropertyMarginTop, "10"},
		{PropertyMarginTop, "10px 20px"},
		{PropertyMarginTop, "10s"},
		{PropertyPaddingTop, "-1px"},
		{PropertyColor, "nocolor"},
		{PropertyColor, "rgb(1,2)"},
		{PropertyColor, "#12"},
		{PropertyOpacity, "red"},
		{PropertyBackgroundImage, "url(a),"},
		{PropertyTextShadow, "1px red"},
		{PropertyTransitionTimingFunction, "cubic-bezier(2, 0, 0, 1)"},
		{PropertyTransitionTimingFunction, "steps(0)"},
		{PropertyBorderTopStyle, "wavy"},
		{PropertyKeyBindings, "a,"},
		{PropertyMarginTop, ""},
		{PropertyBorderTopLeftRadius, "-3px"},
		{PropertyBorderTopLeftRadius, "3px -1px"},
		{PropertyBackgroundPosition, "left right"},
		{PropertyBackgroundPosition, "10px 20px 30px"},
		{PropertyBackgroundSize, "cover 10px"},
		{PropertyBackgroundSize, "-2px"},
	}
	for _, b := range bad {
		v, err := ParseValue(b.id, b.text)
		if err == nil {
			t.Errorf("%s: expected %q to be rejected, have %s", LookupProperty(b.id).Name, b.text, v)
			continue
		}
		var perr *ParseError
		assert.True(t, errors.As(err, &perr), "expected a ParseError, have %T", err)
	}
}

func TestParseDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	id, v, err := ParseDeclaration("Margin-Top", "3px")
	require.NoError(t, err)
	assert.Equal(t, PropertyMarginTop, id)
	assert.Equal(t, "3px", v.String())
	id, _, err = ParseDeclaration("ctk-key-bindings", "none")
	require.NoError(t, err)
	assert.Equal(t, PropertyKeyBindings, id)
	_, _, err = ParseDeclaration("no-such-property", "1px")
	assert.True(t, errors.Is(err, ErrUnknownProperty))
}

func TestParseGeneric(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	kinds := map[string]Kind{
		"3":            KindInteger,
		"0.5":          KindNumber,
		"-2px":         KindLength,
		"#fff":         KindColor,
		"@accent":      KindColor,
		`"text"`:       KindString,
		"wobbly":       KindIdentifier,
		"1px, 2px":     KindArray,
		"blue":         KindColor,
		"shade(@a, 2)": KindColor,
	}
	for text, kind := range kinds {
		v, err := ParseGeneric(NewParser(text))
		if !assert.NoError(t, err, "parsing %q", text) {
			continue
		}
		assert.Equal(t, kind, v.Kind(), "kind of %q", text)
	}
}

func TestPropertyRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	assert.Equal(t, "color", LookupProperty(PropertyColor).Name)
	assert.Equal(t, int(PropertySecondaryCaretColor)+1, NumProperties())
	p, ok := PropertyByName("CTK-KEY-BINDINGS")
	require.True(t, ok)
	assert.Equal(t, PropertyKeyBindings, p.ID)
	_, ok = PropertyByName("float")
	assert.False(t, ok)
	assert.Panics(t, func() { LookupProperty(PropertyID(NumProperties())) })
	assert.Panics(t, func() { LookupProperty(-1) })
	for i, prop := range Properties() {
		assert.Equal(t, PropertyID(i), prop.ID)
	}
}

func TestInitialValuesAreImmortalAndParseable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	for _, prop := range Properties() {
		require.NotNil(t, prop.Initial, "%s has no initial value", prop.Name)
		assert.Equal(t, int32(-1), RefCount(prop.Initial), "initial value of %s", prop.Name)
		v, err := ParseValue(prop.ID, Print(prop.Initial))
		if err != nil {
			t.Errorf("%s: initial value %q does not parse: %v", prop.Name, Print(prop.Initial), err)
			continue
		}
		assert.True(t, Equal(v, prop.Initial), "%s: %s != %s", prop.Name, v, prop.Initial)
	}
}

func TestPropertyRegistryConcurrentAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	done := make(chan string)
	for i := 0; i < 8; i++ {
		go func(i int) {
			p := LookupProperty(PropertyID(i))
			done <- p.Name
		}(i)
	}
	for i := 0; i < 8; i++ {
		assert.NotEmpty(t, <-done)
	}
}
