package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/csscascade/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var sheet = `
@define-color bg_color #ffffff;
button, .flat { color: red; margin: 3px !important; }
@keyframes spin {
	from { opacity: 0; }
	50% { opacity: 0.5; }
	to { opacity: 1; }
}
`

func TestParseRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	styles, err := Parse(sheet)
	require.NoError(t, err)
	require.False(t, styles.Empty())
	rules := styles.Rules()
	require.Len(t, rules, 3)
	//
	assert.Equal(t, cssom.AtRule, rules[0].Kind())
	assert.Equal(t, "define-color", rules[0].Name())
	assert.Equal(t, "bg_color #ffffff", rules[0].Prelude())
	//
	r := rules[1]
	assert.Equal(t, cssom.QualifiedRule, r.Kind())
	assert.Equal(t, "", r.Name())
	assert.Equal(t, []string{"button", ".flat"}, r.Selectors())
	decls := r.Declarations()
	require.Len(t, decls, 2)
	assert.Equal(t, cssom.Declaration{Property: "color", Value: "red"}, decls[0])
	assert.Equal(t, "margin", decls[1].Property)
	assert.Equal(t, "3px", decls[1].Value)
	assert.True(t, decls[1].Important)
	//
	kf := rules[2]
	assert.Equal(t, "keyframes", kf.Name())
	assert.Equal(t, "spin", kf.Prelude())
	frames := kf.Rules()
	require.Len(t, frames, 3)
	assert.Equal(t, "50%", frames[1].Prelude())
	assert.Equal(t, "0.5", frames[1].Declarations()[0].Value)
}

func TestAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	a, err := Parse("a { color: red; }")
	require.NoError(t, err)
	b, err := Parse("b { color: blue; } @define-color x red;")
	require.NoError(t, err)
	a.AppendRules(b)
	rules := a.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "b", rules[1].Prelude())
	assert.Equal(t, "define-color", rules[2].Name())
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head>
<style>p { color: red; }</style>
<style></style>
</head><body><style>p { margin-top: 1px; }</style><p>Hello</p></body></html>`))
	require.NoError(t, err)
	sheets := ExtractStyleElements(doc)
	require.Len(t, sheets, 2)
	assert.Equal(t, "color", sheets[0].Rules()[0].Declarations()[0].Property)
	assert.Equal(t, "margin-top", sheets[1].Rules()[0].Declarations()[0].Property)
}

func TestRuleWrapsDouceurRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	styles, err := Parse("@keyframes spin { from { opacity: 0; } } p { color: red; }")
	require.NoError(t, err)
	rules := styles.Rules()
	require.Len(t, rules, 2)
	for i, r := range rules {
		dr, ok := r.(*Rule)
		require.True(t, ok, "rule #%d is a %T", i, r)
		assert.Same(t, styles.css.Rules[i], dr.Rule())
	}
	assert.Equal(t, cssom.AtRule, rules[0].Kind())
	assert.Equal(t, "keyframes", rules[0].Name())
	nested := rules[0].Rules()
	require.Len(t, nested, 1)
	assert.Same(t, styles.css.Rules[0].Rules[0], nested[0].(*Rule).Rule())
	assert.Equal(t, []string{"p"}, rules[1].Selectors())
	assert.Equal(t, "p", rules[1].Prelude())
}
