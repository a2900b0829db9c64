package cascade

import (
	"github.com/npillmayer/csscascade/css"
)

type lookupEntry struct {
	value    css.Value
	priority int
}

// Lookup collects the declared values for one query. Providers are asked
// in descending priority and a declaration is only taken if no declaration
// of the same or higher priority has been recorded before.
type Lookup struct {
	entries []lookupEntry
	current int // priority of the provider currently populating
	nesting int // depth of cascades populating l
}

// NewLookup creates an empty lookup.
func NewLookup() *Lookup {
	return &Lookup{entries: make([]lookupEntry, css.NumProperties())}
}

// Set records v for property id, unless a declaration of the same or
// higher priority is already present. Set takes its own reference to v.
// It returns true if v has been recorded.
func (l *Lookup) Set(id css.PropertyID, v css.Value) bool {
	e := &l.entries[id]
	if e.value != nil && e.priority >= l.current {
		return false
	}
	if e.value != nil {
		css.Unref(e.value)
	}
	e.value, e.priority = css.Ref(v), l.current
	return true
}

// Value returns the recorded value for id or nil. The value is borrowed.
func (l *Lookup) Value(id css.PropertyID) css.Value {
	return l.entries[id].value
}

// IsMissing is true if no provider declared property id.
func (l *Lookup) IsMissing(id css.PropertyID) bool {
	return l.entries[id].value == nil
}

// Priority returns the priority of the provider which declared id.
func (l *Lookup) Priority(id css.PropertyID) (int, bool) {
	e := l.entries[id]
	return e.priority, e.value != nil
}

// WithPriority runs populate with p as the current priority, for
// providers populating a lookup outside of a cascade.
func (l *Lookup) WithPriority(p int, populate func(*Lookup)) {
	saved := l.current
	l.current = p
	defer func() { l.current = saved }()
	populate(l)
}

// Release drops all recorded values.
func (l *Lookup) Release() {
	for i := range l.entries {
		if l.entries[i].value != nil {
			css.Unref(l.entries[i].value)
		}
		l.entries[i] = lookupEntry{}
	}
}
