package cascade

import (
	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/csscascade/signal"
	"github.com/npillmayer/schuko"
)

// Standard provider priorities.
const (
	PriorityFallback    = 1
	PriorityTheme       = 200
	PrioritySettings    = 400
	PriorityApplication = 600
	PriorityUser        = 800
)

// Matcher identifies the widget (or document node) a query is made for.
// The cascade treats it as opaque; providers which are able to match
// selectors against it type-assert to a richer interface.
type Matcher interface {
	String() string
}

// StateFlags describe the interaction state of a widget.
type StateFlags uint32

// State flags, to be OR-ed.
const (
	StateNormal   StateFlags = 0
	StateActive   StateFlags = 1 << (iota - 1)
	StatePrelight            // hovered
	StateSelected
	StateInsensitive
	StateInconsistent
	StateFocused
	StateBackdrop
	StateChecked
)

// PropertySpec describes a widget style property, a property private to
// a widget class, written as -Owner-name in style sheets.
type PropertySpec struct {
	Owner string
	Name  string
	Parse func(*css.Parser) (css.Value, error) // nil: css.ParseGeneric
}

// Key returns the property name as used in declarations: -Owner-name.
func (spec *PropertySpec) Key() string {
	return "-" + spec.Owner + "-" + spec.Name
}

// Provider is the base interface of style providers. Changed returns the
// signal emitted whenever the provider's answers change, or nil for
// providers which never change.
type Provider interface {
	Changed() *signal.Signal
}

// StylePropertyProvider answers queries for widget style properties.
// The value is a new reference owned by the caller.
type StylePropertyProvider interface {
	Provider
	GetStyleProperty(path Matcher, state StateFlags, spec *PropertySpec) (css.Value, bool)
}

// ColorProvider resolves named colors. The result is borrowed and nil for
// unknown names.
type ColorProvider interface {
	Provider
	GetColor(name string) css.Value
}

// SettingsProvider provides runtime settings.
type SettingsProvider interface {
	Provider
	GetSettings() schuko.Configuration
}

// ScaleProvider provides the scale factor for rendering.
type ScaleProvider interface {
	Provider
	GetScale() int
}

// KeyframesProvider provides named keyframe animations. The result is
// borrowed and nil for unknown names.
type KeyframesProvider interface {
	Provider
	GetKeyframes(name string) *css.Keyframes
}

// LookupProvider populates a Lookup with the declarations matching m and
// returns the mask of rendering aspects these declarations affect.
type LookupProvider interface {
	Provider
	Lookup(m Matcher, l *Lookup) css.AffectsMask
}
