package cssprovider

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/csscascade/cascade"
	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/csscascade/cssom"
	"github.com/npillmayer/csscascade/cssom/douceuradapter"
	"github.com/npillmayer/csscascade/signal"
	"golang.org/x/net/html"
)

// ErrUnsupportedRule is reported for at-rules the provider does not know.
var ErrUnsupportedRule = errors.New("unsupported at-rule")

// ErrBadColorDefinition is reported for malformed @define-color rules.
var ErrBadColorDefinition = errors.New("malformed color definition")

// declaration is a compiled declaration of a rule set. Widget style
// properties keep their text, as their parse function is only known when
// they are queried.
type declaration struct {
	id        css.PropertyID
	value     css.Value
	widgetKey string // lower-case -owner-name
	text      string
	important bool
	order     int // position in the style sheet
}

type ruleset struct {
	selectors []*selector
	decls     []declaration
}

// Provider is a style provider loaded from CSS. A provider is safe for
// concurrent queries; loading replaces its contents and emits Changed.
type Provider struct {
	mu          sync.RWMutex
	rulesets    []*ruleset
	colors      map[string]css.Value
	keyframes   map[string]*css.Keyframes
	diagnostics []error
	changed     *signal.Signal
}

// New creates an empty provider.
func New() *Provider {
	return &Provider{
		colors:    make(map[string]css.Value),
		keyframes: make(map[string]*css.Keyframes),
		changed:   signal.New("css-provider-changed"),
	}
}

var _ cascade.LookupProvider = (*Provider)(nil)
var _ cascade.ColorProvider = (*Provider)(nil)
var _ cascade.KeyframesProvider = (*Provider)(nil)
var _ cascade.StylePropertyProvider = (*Provider)(nil)

// Changed is emitted after every load.
func (p *Provider) Changed() *signal.Signal {
	return p.changed
}

// LoadFromData replaces the contents of p with the style sheet in text.
// Errors in single declarations or rules do not fail the load; they are
// available from Diagnostics. An error is returned only if the text could
// not be parsed as a style sheet at all, in which case p is unchanged.
func (p *Provider) LoadFromData(text string) error {
	sheet, err := douceuradapter.Parse(text)
	if err != nil {
		return err
	}
	p.LoadStyleSheet(sheet)
	return nil
}

// LoadFromFile replaces the contents of p with the style sheet in file path.
func (p *Provider) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading style sheet: %w", err)
	}
	if err := p.LoadFromData(string(data)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadStyleSheet replaces the contents of p with the rules of sheet.
func (p *Provider) LoadStyleSheet(sheet cssom.StyleSheet) {
	c := &compiler{
		colors:    make(map[string]css.Value),
		keyframes: make(map[string]*css.Keyframes),
	}
	for _, r := range sheet.Rules() {
		c.rule(r)
	}
	p.mu.Lock()
	oldRules, oldColors, oldKeyframes := p.rulesets, p.colors, p.keyframes
	p.rulesets, p.colors, p.keyframes = c.rulesets, c.colors, c.keyframes
	p.diagnostics = c.diagnostics
	p.mu.Unlock()
	release(oldRules, oldColors, oldKeyframes)
	tracer().Infof("loaded style sheet: %d rule sets, %d colors, %d keyframes, %d diagnostics",
		len(c.rulesets), len(c.colors), len(c.keyframes), len(c.diagnostics))
	p.changed.Emit()
}

// Diagnostics returns the problems found by the last load.
func (p *Provider) Diagnostics() []error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]error(nil), p.diagnostics...)
}

func release(rulesets []*ruleset, colors map[string]css.Value, keyframes map[string]*css.Keyframes) {
	for _, rs := range rulesets {
		for _, d := range rs.decls {
			if d.value != nil {
				css.Unref(d.value)
			}
		}
	}
	for _, c := range colors {
		css.Unref(c)
	}
	for _, kf := range keyframes {
		kf.Release()
	}
}

// --- Queries ---------------------------------------------------------------

// GetColor returns the color defined with @define-color name, or nil.
func (p *Provider) GetColor(name string) css.Value {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.colors[name]
}

// GetKeyframes returns the keyframes defined with @keyframes name, or nil.
func (p *Provider) GetKeyframes(name string) *css.Keyframes {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.keyframes[name]
}

type candidate struct {
	decl        *declaration
	specificity cascadia.Specificity
}

// matching returns the declarations which apply to node n in the given
// state, most significant first: important declarations before normal
// ones, then by descending specificity, then latest in source order.
// Must be called with the read lock held.
func (p *Provider) matching(n *html.Node, state cascade.StateFlags, widget bool) []candidate {
	var cands []candidate
	for _, rs := range p.rulesets {
		var best *selector
		for _, sel := range rs.selectors {
			if sel.match(n, state) && (best == nil || best.specificity.Less(sel.specificity)) {
				best = sel
			}
		}
		if best == nil {
			continue
		}
		for i := range rs.decls {
			if (rs.decls[i].widgetKey != "") == widget {
				cands = append(cands, candidate{decl: &rs.decls[i], specificity: best.specificity})
			}
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.decl.important != b.decl.important {
			return a.decl.important
		}
		if a.specificity != b.specificity {
			return b.specificity.Less(a.specificity)
		}
		return a.decl.order > b.decl.order
	})
	return cands
}

// Lookup records the declarations matching m. Matchers which do not
// implement HTMLMatcher match nothing.
func (p *Provider) Lookup(m cascade.Matcher, l *cascade.Lookup) css.AffectsMask {
	hm, ok := m.(HTMLMatcher)
	if !ok || hm.Node() == nil {
		return 0
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	var mask css.AffectsMask
	for _, c := range p.matching(hm.Node(), hm.State(), false) {
		if l.Set(c.decl.id, c.decl.value) {
			mask |= css.LookupProperty(c.decl.id).Affects
		}
	}
	tracer().Debugf("lookup for %s affects %#x", m, mask)
	return mask
}

// GetStyleProperty returns the value of widget style property spec for
// path in the given state. The value is parsed with spec.Parse and owned by
// the caller.
func (p *Provider) GetStyleProperty(path cascade.Matcher, state cascade.StateFlags,
	spec *cascade.PropertySpec) (css.Value, bool) {
	//
	hm, ok := path.(HTMLMatcher)
	if !ok || hm.Node() == nil {
		return nil, false
	}
	key := strings.ToLower(spec.Key())
	p.mu.RLock()
	var text string
	found := false
	for _, c := range p.matching(hm.Node(), state, true) {
		if c.decl.widgetKey == key {
			text, found = c.decl.text, true
			break
		}
	}
	p.mu.RUnlock()
	if !found {
		return nil, false
	}
	parse := spec.Parse
	if parse == nil {
		parse = css.ParseGeneric
	}
	parser := css.NewParser(text)
	v, err := parse(parser)
	if err == nil && !parser.AtEOF() {
		css.Unref(v)
		err = parser.Errorf("junk at end of value")
	}
	if err != nil {
		tracer().Errorf("style property %s: %v", spec.Key(), err)
		return nil, false
	}
	return v, true
}

// --- Compiling style sheets ------------------------------------------------

type compiler struct {
	rulesets    []*ruleset
	colors      map[string]css.Value
	keyframes   map[string]*css.Keyframes
	diagnostics []error
	order       int
}

func (c *compiler) report(err error) {
	tracer().Infof("style sheet: %v", err)
	c.diagnostics = append(c.diagnostics, err)
}

func (c *compiler) rule(r cssom.Rule) {
	if r.Kind() == cssom.QualifiedRule {
		c.qualifiedRule(r)
		return
	}
	switch strings.ToLower(r.Name()) {
	case "define-color":
		c.defineColor(r.Prelude())
	case "keyframes":
		c.defineKeyframes(r)
	default:
		c.report(fmt.Errorf("@%s: %w", r.Name(), ErrUnsupportedRule))
	}
}

func (c *compiler) qualifiedRule(r cssom.Rule) {
	rs := &ruleset{}
	for _, text := range r.Selectors() {
		sel, err := compileSelector(text)
		if err != nil {
			c.report(fmt.Errorf("selector %q: %w", text, err))
			continue
		}
		rs.selectors = append(rs.selectors, sel)
	}
	if len(rs.selectors) == 0 {
		return
	}
	for _, d := range r.Declarations() {
		rs.decls = append(rs.decls, c.declarations(r.Prelude(), d)...)
	}
	if len(rs.decls) > 0 {
		c.rulesets = append(c.rulesets, rs)
	}
}

// declarations compiles a declaration, expanding shorthands.
func (c *compiler) declarations(context string, d cssom.Declaration) []declaration {
	c.order++
	name := strings.TrimSpace(d.Property)
	if css.IsShorthand(name) {
		longhands, err := css.ExpandShorthand(name, d.Value)
		if err != nil {
			c.report(fmt.Errorf("%s: %w", context, err))
			return nil
		}
		var decls []declaration
		for _, lh := range longhands {
			decls = append(decls, c.declarations(context, cssom.Declaration{
				Property: lh.Name, Value: lh.Value, Important: d.Important,
			})...)
		}
		return decls
	}
	id, v, err := css.ParseDeclaration(name, d.Value)
	if err == nil {
		return []declaration{{id: id, value: v, important: d.Important, order: c.order}}
	}
	if errors.Is(err, css.ErrUnknownProperty) && isWidgetProperty(name) {
		return []declaration{{
			id:        -1,
			widgetKey: strings.ToLower(name),
			text:      d.Value,
			important: d.Important,
			order:     c.order,
		}}
	}
	c.report(fmt.Errorf("%s: %w", context, err))
	return nil
}

// isWidgetProperty checks for the form -Owner-name.
func isWidgetProperty(name string) bool {
	if !strings.HasPrefix(name, "-") {
		return false
	}
	i := strings.IndexByte(name[1:], '-')
	return i > 0 && i+2 < len(name)
}

// defineColor handles "@define-color name value".
func (c *compiler) defineColor(prelude string) {
	fields := strings.Fields(prelude)
	if len(fields) < 2 {
		c.report(fmt.Errorf("@define-color %s: %w", prelude, ErrBadColorDefinition))
		return
	}
	name := fields[0]
	text := strings.TrimSpace(strings.TrimPrefix(prelude, name))
	parser := css.NewParser(text)
	color, err := css.ParseColor(parser)
	if err == nil && !parser.AtEOF() {
		css.Unref(color)
		err = parser.Errorf("junk at end of color")
	}
	if err != nil {
		c.report(fmt.Errorf("@define-color %s: %w", name, err))
		return
	}
	if old, ok := c.colors[name]; ok {
		css.Unref(old)
	}
	c.colors[name] = color
}

// defineKeyframes handles "@keyframes name { offsets { declarations } … }".
func (c *compiler) defineKeyframes(r cssom.Rule) {
	name := strings.TrimSpace(r.Prelude())
	if name == "" {
		c.report(fmt.Errorf("@keyframes without name: %w", ErrUnsupportedRule))
		return
	}
	kf := css.NewKeyframes(name)
	for _, frame := range r.Rules() {
		var offsets []float64
		for _, sel := range frame.Selectors() {
			off, err := keyframeOffset(sel)
			if err != nil {
				c.report(fmt.Errorf("@keyframes %s: %w", name, err))
				continue
			}
			offsets = append(offsets, off)
		}
		for _, d := range frame.Declarations() {
			for _, decl := range c.declarations("@keyframes "+name, d) {
				if decl.value == nil {
					continue
				}
				for _, off := range offsets {
					kf.Set(off, decl.id, css.Ref(decl.value))
				}
				css.Unref(decl.value)
			}
		}
	}
	if old, ok := c.keyframes[name]; ok {
		old.Release()
	}
	c.keyframes[name] = kf
}

func keyframeOffset(sel string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(sel)) {
	case "from":
		return 0, nil
	case "to":
		return 1, nil
	}
	s := strings.TrimSpace(sel)
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("invalid keyframe offset %q", sel)
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || pct < 0 || pct > 100 {
		return 0, fmt.Errorf("invalid keyframe offset %q", sel)
	}
	return pct / 100, nil
}
