package cascade

import (
	"errors"
	"sort"

	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/csscascade/signal"
	"github.com/npillmayer/schuko"
)

// ErrCyclicParent is returned by SetParent if the new parent would make a
// cascade its own ancestor.
var ErrCyclicParent = errors.New("cascade would become its own ancestor")

type entry struct {
	provider Provider
	priority int
	handler  signal.HandlerID
}

// Cascade is an ordered collection of style providers with an optional
// parent cascade.
type Cascade struct {
	providers     []entry // ascending by priority
	parent        *Cascade
	parentHandler signal.HandlerID
	scale         int
	changed       *signal.Signal
}

// New creates an empty cascade with scale 1 and without parent.
func New() *Cascade {
	return &Cascade{scale: 1, changed: signal.New("cascade-changed")}
}

// Changed is emitted whenever a provider, the parent or the scale of the
// cascade changes.
func (c *Cascade) Changed() *signal.Signal {
	return c.changed
}

func (c *Cascade) emit() {
	c.changed.Emit()
}

// Parent returns the parent cascade or nil.
func (c *Cascade) Parent() *Cascade {
	return c.parent
}

// SetParent makes p the parent of c. Changes of p are re-emitted by c.
// Setting the current parent again does nothing.
func (c *Cascade) SetParent(p *Cascade) error {
	if p == c.parent {
		return nil
	}
	for a := p; a != nil; a = a.parent {
		if a == c {
			tracer().Errorf("refusing to make cascade its own ancestor")
			return ErrCyclicParent
		}
	}
	if c.parent != nil {
		c.parent.changed.Disconnect(c.parentHandler)
		c.parentHandler = 0
	}
	c.parent = p
	if p != nil {
		c.parentHandler = p.changed.Connect(c.emit)
	}
	c.emit()
	return nil
}

// AddProvider adds provider p with the given priority. If p is already
// part of c it is removed first. p is inserted after all providers of
// equal priority, i.e. it takes precedence over them.
func (c *Cascade) AddProvider(p Provider, priority int) {
	if p == nil {
		return
	}
	c.remove(p)
	e := entry{provider: p, priority: priority}
	if sig := p.Changed(); sig != nil {
		e.handler = sig.Connect(c.emit)
	}
	i := sort.Search(len(c.providers), func(i int) bool {
		return c.providers[i].priority > priority
	})
	c.providers = append(c.providers, entry{})
	copy(c.providers[i+1:], c.providers[i:])
	c.providers[i] = e
	tracer().Debugf("added provider %T with priority %d", p, priority)
	c.emit()
}

// RemoveProvider removes p from c. Unknown providers are ignored.
func (c *Cascade) RemoveProvider(p Provider) {
	if c.remove(p) {
		c.emit()
	}
}

func (c *Cascade) remove(p Provider) bool {
	for i, e := range c.providers {
		if e.provider == p {
			if sig := p.Changed(); sig != nil && e.handler != 0 {
				sig.Disconnect(e.handler)
			}
			c.providers = append(c.providers[:i], c.providers[i+1:]...)
			return true
		}
	}
	return false
}

// Release detaches c from its providers and its parent. Afterwards c is
// empty and no longer re-emits their changes.
func (c *Cascade) Release() {
	for _, e := range c.providers {
		if sig := e.provider.Changed(); sig != nil && e.handler != 0 {
			sig.Disconnect(e.handler)
		}
	}
	c.providers = nil
	if c.parent != nil {
		c.parent.changed.Disconnect(c.parentHandler)
		c.parent, c.parentHandler = nil, 0
	}
	tracer().Debugf("cascade released")
}

// Priorities returns the priorities of the providers of c, ascending.
func (c *Cascade) Priorities() []int {
	prios := make([]int, len(c.providers))
	for i, e := range c.providers {
		prios[i] = e.priority
	}
	return prios
}

// Priority returns the priority p has been added with.
func (c *Cascade) Priority(p Provider) (int, bool) {
	for _, e := range c.providers {
		if e.provider == p {
			return e.priority, true
		}
	}
	return 0, false
}

// SetScale sets the scale factor of c.
func (c *Cascade) SetScale(scale int) {
	if scale == c.scale {
		return
	}
	c.scale = scale
	c.emit()
}

// GetScale returns the scale factor of c. Parent scales are not
// considered.
func (c *Cascade) GetScale() int {
	return c.scale
}

// --- Merge iteration -------------------------------------------------------

type cursor struct {
	c *Cascade
	i int
}

// each calls fn for the providers of c and its ancestors in descending
// priority, stopping early if fn returns false. For equal priorities the
// cascade closest to c comes first.
func (c *Cascade) each(fn func(p Provider, priority int) bool) {
	var cursors []cursor
	for a := c; a != nil; a = a.parent {
		cursors = append(cursors, cursor{c: a, i: len(a.providers) - 1})
	}
	for {
		best := -1
		for k, cur := range cursors {
			if cur.i < 0 {
				continue
			}
			if best < 0 || cur.c.providers[cur.i].priority > cursors[best].c.providers[cursors[best].i].priority {
				best = k
			}
		}
		if best < 0 {
			return
		}
		e := cursors[best].c.providers[cursors[best].i]
		cursors[best].i--
		if !fn(e.provider, e.priority) {
			return
		}
	}
}

// --- Provider capabilities -------------------------------------------------

// GetStyleProperty asks providers for a widget style property. The first
// provider answering wins.
func (c *Cascade) GetStyleProperty(path Matcher, state StateFlags, spec *PropertySpec) (v css.Value, found bool) {
	c.each(func(p Provider, _ int) bool {
		if sp, ok := p.(StylePropertyProvider); ok {
			v, found = sp.GetStyleProperty(path, state, spec)
		}
		return !found
	})
	return
}

// GetColor resolves a named color. Together with Lookup this makes a
// cascade a css.Resolver.
func (c *Cascade) GetColor(name string) (color css.Value) {
	c.each(func(p Provider, _ int) bool {
		if cp, ok := p.(ColorProvider); ok {
			color = cp.GetColor(name)
		}
		return color == nil
	})
	return
}

// GetSettings returns the settings of the first settings provider.
func (c *Cascade) GetSettings() (settings schuko.Configuration) {
	c.each(func(p Provider, _ int) bool {
		if sp, ok := p.(SettingsProvider); ok {
			settings = sp.GetSettings()
		}
		return settings == nil
	})
	return
}

// GetKeyframes finds a keyframe animation by name.
func (c *Cascade) GetKeyframes(name string) (kf *css.Keyframes) {
	c.each(func(p Provider, _ int) bool {
		if kp, ok := p.(KeyframesProvider); ok {
			kf = kp.GetKeyframes(name)
		}
		return kf == nil
	})
	return
}

// Lookup lets every provider populate l with the declarations matching m
// and returns the union of the affected masks.
//
// If c is itself a provider of an enclosing cascade, its declarations are
// recorded with the priority c has been added with in the enclosing
// cascade. The priorities of c's own providers only order them among
// each other.
func (c *Cascade) Lookup(m Matcher, l *Lookup) css.AffectsMask {
	var mask css.AffectsMask
	nested := l.nesting > 0
	saved := l.current
	l.nesting++
	defer func() {
		l.current = saved
		l.nesting--
	}()
	c.each(func(p Provider, priority int) bool {
		if lp, ok := p.(LookupProvider); ok {
			if !nested {
				l.current = priority
			}
			mask |= lp.Lookup(m, l)
		}
		return true
	})
	return mask
}

var _ StylePropertyProvider = (*Cascade)(nil)
var _ ColorProvider = (*Cascade)(nil)
var _ SettingsProvider = (*Cascade)(nil)
var _ ScaleProvider = (*Cascade)(nil)
var _ KeyframesProvider = (*Cascade)(nil)
var _ LookupProvider = (*Cascade)(nil)
var _ css.Resolver = (*Cascade)(nil)
