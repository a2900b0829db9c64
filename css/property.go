package css

import (
	"fmt"
	"strings"
	"sync"
)

// PropertyID identifies a style property. IDs are dense small integers;
// computing a style visits properties in ID order, so properties other
// properties depend on (color, -ctk-dpi, font-size) come first.
type PropertyID int

// TransitionCategory selects how list-valued properties animate.
type TransitionCategory uint8

// Transition categories.
const (
	TransitionNone     TransitionCategory = iota // never animated
	TransitionRepeat                             // cycle both lists up to lcm of their lengths
	TransitionExtend                             // pad the shorter list with the default element
	TransitionDiscrete                           // switch without intermediate values
)

func (tc TransitionCategory) String() string {
	switch tc {
	case TransitionRepeat:
		return "repeat"
	case TransitionExtend:
		return "extend"
	case TransitionDiscrete:
		return "discrete"
	}
	return "none"
}

// AffectsMask tells which rendering aspects depend on a property.
type AffectsMask uint32

// Aspects affected by property changes.
const (
	AffectsForeground AffectsMask = 1 << iota
	AffectsBackground
	AffectsBorder
	AffectsOutline
	AffectsClip
	AffectsText
	AffectsTextAttrs
	AffectsFont
	AffectsSize
	AffectsIcon
	AffectsSymbolicIcon
	AffectsIconTexture
	AffectsPostEffect
)

// Property is the registry entry of a style property.
type Property struct {
	ID         PropertyID
	Name       string
	Inherited  bool
	Animated   bool
	Transition TransitionCategory
	Affects    AffectsMask
	Initial    Value // static
	parse      func(*Parser) (Value, error)
	aliases    []string
}

func (p *Property) String() string {
	return p.Name
}

// Parse parses a value for p, not including the CSS-wide keywords.
func (p *Property) Parse(parser *Parser) (Value, error) {
	return p.parse(parser)
}

// --- Registry --------------------------------------------------------------

type registry struct {
	byID   []*Property
	byName map[string]*Property
}

var (
	registryOnce sync.Once
	theRegistry  *registry
)

func reg() *registry {
	registryOnce.Do(func() {
		theRegistry = buildRegistry(propertyTable())
	})
	return theRegistry
}

func buildRegistry(table []*Property) *registry {
	r := &registry{
		byID:   make([]*Property, len(table)),
		byName: make(map[string]*Property, len(table)*2),
	}
	for i, p := range table {
		if p.ID != PropertyID(i) {
			panic(fmt.Sprintf("css: property %s registered with id %d at position %d", p.Name, p.ID, i))
		}
		makeImmortal(p.Initial)
		r.byID[i] = p
		r.byName[p.Name] = p
		for _, alias := range p.aliases {
			r.byName[alias] = p
		}
	}
	return r
}

// LookupProperty returns the registry entry for id. Unknown ids are a
// programming error.
func LookupProperty(id PropertyID) *Property {
	r := reg()
	assertThat(id >= 0 && int(id) < len(r.byID), "unknown property id %d", id)
	return r.byID[id]
}

// PropertyByName finds a property by its name or an alias, ignoring case.
func PropertyByName(name string) (*Property, bool) {
	p, ok := reg().byName[strings.ToLower(name)]
	return p, ok
}

// NumProperties is the number of registered properties. Valid ids are
// 0 ≤ id < NumProperties().
func NumProperties() int {
	return len(reg().byID)
}

// Properties returns all registered properties in id order.
func Properties() []*Property {
	r := reg()
	return append([]*Property(nil), r.byID...)
}
