package cssprovider

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/csscascade/cascade"
	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const testSheet = `
@define-color accent #ff0000;
@define-color accent_bg mix(@accent, #0000ff, 0.5);
@define-color broken ;
@media print { p { color: blue; } }

p { color: @accent; margin: 1px 2px; }
p.lead { color: #00ff00; }
#intro { color: #0000ff; }
p { margin-top: 7px; }
button:hover { opacity: 0.5; }
button { opacity: 1; -CtkButton-focus-padding: 3; }
button:hover { -CtkButton-focus-padding: 5; }
div { color: #ffffff !important; }
div#main { color: #000000; }
span { margin-top: 10; font-weight: bold; }
@keyframes pulse {
	from { opacity: 0; }
	50% { opacity: 1; }
	to { opacity: 0; }
}
`

const testDoc = `<html><body>
<p id="intro" class="lead">Intro</p>
<p class="lead">Lead</p>
<p>Text</p>
<button>Click</button>
<div id="main">Main</div>
<span>x</span>
</body></html>`

func load(t *testing.T) (*Provider, *html.Node) {
	t.Helper()
	p := New()
	require.NoError(t, p.LoadFromData(testSheet))
	doc, err := html.Parse(strings.NewReader(testDoc))
	require.NoError(t, err)
	return p, doc
}

func elements(doc *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = append(found, n)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(doc)
	return found
}

func lookup(p *Provider, n *html.Node, state cascade.StateFlags) *cascade.Lookup {
	l := cascade.NewLookup()
	l.WithPriority(cascade.PriorityApplication, func(l *cascade.Lookup) {
		p.Lookup(NewNodeMatcher(n, state), l)
	})
	return l
}

func TestSpecificityAndSourceOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	p, doc := load(t)
	ps := elements(doc, atom.P)
	require.Len(t, ps, 3)
	expected := []string{"rgb(0,0,255)", "rgb(0,255,0)", "@accent"} // id, class, type
	for i, n := range ps {
		l := lookup(p, n, cascade.StateNormal)
		assert.Equal(t, expected[i], l.Value(css.PropertyColor).String(), "color of p #%d", i)
		assert.Equal(t, "7px", l.Value(css.PropertyMarginTop).String(), "later rule wins")
		assert.Equal(t, "2px", l.Value(css.PropertyMarginRight).String(), "shorthand expanded")
		l.Release()
	}
}

func TestImportantWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	p, doc := load(t)
	div := elements(doc, atom.Div)[0]
	l := lookup(p, div, cascade.StateNormal)
	defer l.Release()
	assert.Equal(t, "rgb(255,255,255)", l.Value(css.PropertyColor).String())
}

func TestStatePseudoClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	p, doc := load(t)
	button := elements(doc, atom.Button)[0]
	l := lookup(p, button, cascade.StateNormal)
	assert.Equal(t, "1", l.Value(css.PropertyOpacity).String())
	l.Release()
	l = lookup(p, button, cascade.StatePrelight|cascade.StateFocused)
	assert.Equal(t, "0.5", l.Value(css.PropertyOpacity).String())
	l.Release()
	//
	spec := &cascade.PropertySpec{Owner: "CtkButton", Name: "focus-padding"}
	v, ok := p.GetStyleProperty(NewNodeMatcher(button, 0), cascade.StateNormal, spec)
	require.True(t, ok)
	assert.Equal(t, "3", v.String())
	css.Unref(v)
	v, ok = p.GetStyleProperty(NewNodeMatcher(button, 0), cascade.StatePrelight, spec)
	require.True(t, ok)
	assert.Equal(t, "5", v.String())
	css.Unref(v)
	_, ok = p.GetStyleProperty(NewNodeMatcher(button, 0), cascade.StateNormal,
		&cascade.PropertySpec{Owner: "CtkButton", Name: "other"})
	assert.False(t, ok)
}

func TestStripStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	inputs := []struct {
		sel, stripped string
		state         cascade.StateFlags
	}{
		{"button:hover", "button", cascade.StatePrelight},
		{":focus", "*", cascade.StateFocused},
		{"a > :active:checked.x", "a > *.x", cascade.StateActive | cascade.StateChecked},
		{"p:first-child", "p:first-child", 0},
		{`a[title="x:hover"]`, `a[title="x:hover"]`, 0},
		{"p::before", "p::before", 0},
	}
	for _, in := range inputs {
		s, state, _ := stripStates(in.sel)
		assert.Equal(t, in.stripped, s, "stripped form of %q", in.sel)
		assert.Equal(t, in.state, state, "state of %q", in.sel)
	}
}

func TestColorsAndKeyframes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	p, _ := load(t)
	assert.Equal(t, "rgb(255,0,0)", p.GetColor("accent").String())
	assert.Equal(t, "mix(@accent, rgb(0,0,255), 0.5)", p.GetColor("accent_bg").String())
	assert.Nil(t, p.GetColor("broken"))
	assert.Nil(t, p.GetColor("nope"))
	//
	kf := p.GetKeyframes("pulse")
	require.NotNil(t, kf)
	assert.Equal(t, 3, kf.Len())
	start, end, local := kf.Segment(css.PropertyOpacity, 0.75, nil)
	assert.Equal(t, "1", start.String())
	assert.Equal(t, "0", end.String())
	assert.InDelta(t, 0.5, local, 1e-9)
	assert.Nil(t, p.GetKeyframes("spin"))
}

func TestDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	p, doc := load(t)
	diags := p.Diagnostics()
	var unsupported, badColor, badValue int
	for _, d := range diags {
		switch {
		case errors.Is(d, ErrUnsupportedRule):
			unsupported++
		case errors.Is(d, ErrBadColorDefinition):
			badColor++
		default:
			var perr *css.ParseError
			if errors.As(d, &perr) {
				badValue++
			}
		}
	}
	assert.Equal(t, 1, unsupported, "@media is not supported")
	assert.Equal(t, 1, badColor)
	assert.Equal(t, 1, badValue, "margin-top: 10 has no unit")
	// the rest of the rule still applies
	span := elements(doc, atom.Span)[0]
	l := lookup(p, span, cascade.StateNormal)
	defer l.Release()
	assert.True(t, l.IsMissing(css.PropertyMarginTop))
	assert.Equal(t, "700", l.Value(css.PropertyFontWeight).String())
}

func TestLoadEmitsChangedAndReplaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	p, doc := load(t)
	fired := 0
	p.Changed().Connect(func() { fired++ })
	path := filepath.Join(t.TempDir(), "small.css")
	require.NoError(t, os.WriteFile(path, []byte("p { opacity: 0.3; }"), 0o600))
	require.NoError(t, p.LoadFromFile(path))
	assert.Equal(t, 1, fired)
	assert.Empty(t, p.Diagnostics())
	assert.Nil(t, p.GetColor("accent"), "loading replaces previous contents")
	l := lookup(p, elements(doc, atom.P)[2], cascade.StateNormal)
	defer l.Release()
	assert.Equal(t, "0.3", l.Value(css.PropertyOpacity).String())
	assert.True(t, l.IsMissing(css.PropertyColor))
	//
	assert.Error(t, p.LoadFromFile(filepath.Join(t.TempDir(), "missing.css")))
	assert.Equal(t, 1, fired)
}

func TestInCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	p, doc := load(t)
	user := New()
	require.NoError(t, user.LoadFromData("p { color: @accent; } @define-color accent #123456;"))
	c := cascade.New()
	c.AddProvider(p, cascade.PriorityApplication)
	c.AddProvider(user, cascade.PriorityUser)
	n := elements(doc, atom.P)[2]
	l := cascade.NewLookup()
	defer l.Release()
	c.Lookup(NewNodeMatcher(n, 0), l)
	prio, ok := l.Priority(css.PropertyColor)
	require.True(t, ok)
	assert.Equal(t, cascade.PriorityUser, prio)
	color := css.Compute(l.Value(css.PropertyColor), css.PropertyColor, c, nil, nil)
	assert.Equal(t, "rgb(18,52,86)", color.String(), "user colors take precedence")
	//
	assert.Equal(t, "html > body > p", NewNodeMatcher(n, 0).String())
	assert.Equal(t, css.AffectsMask(0), p.Lookup(plainMatcher("x"), cascade.NewLookup()))
}

type plainMatcher string

func (m plainMatcher) String() string { return string(m) }
