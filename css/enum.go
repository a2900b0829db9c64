package css

import "strings"

// EnumType is a closed set of keywords. Members are static singletons,
// so two enum values are equal exactly if they are identical.
type EnumType struct {
	name    string
	members []*Enum
}

// Enum is a member of an EnumType.
type Enum struct {
	refcount
	typ   *EnumType
	index int
	name  string
}

func newEnumType(name string, keywords ...string) *EnumType {
	et := &EnumType{name: name}
	for i, kw := range keywords {
		et.members = append(et.members, &Enum{refcount: static(), typ: et, index: i, name: kw})
	}
	return et
}

// Name returns the name of the enum type.
func (et *EnumType) Name() string { return et.name }

// Len returns the number of members.
func (et *EnumType) Len() int { return len(et.members) }

// Value returns the i-th member.
func (et *EnumType) Value(i int) *Enum {
	assertThat(i >= 0 && i < len(et.members), "enum %s has no member #%d", et.name, i)
	return et.members[i]
}

// Lookup finds a member by keyword, ignoring case.
func (et *EnumType) Lookup(keyword string) (*Enum, bool) {
	for _, m := range et.members {
		if strings.EqualFold(m.name, keyword) {
			return m, true
		}
	}
	return nil, false
}

// Enum types used by the property registry.
var (
	BorderStyles = newEnumType("border-style", "none", "solid", "inset", "outset", "hidden", "dotted", "dashed", "double", "groove", "ridge")
	BlendModes   = newEnumType("blend-mode", "normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn", "hard-light", "soft-light", "difference", "exclusion", "color", "hue", "saturation", "luminosity")
	FontStyles   = newEnumType("font-style", "normal", "oblique", "italic")
	Areas        = newEnumType("area", "border-box", "padding-box", "content-box")
	RepeatStyles = newEnumType("repeat-style", "repeat", "space", "round", "no-repeat", "repeat-x", "repeat-y")
	IconStyles   = newEnumType("icon-style", "requested", "regular", "symbolic")
	Directions   = newEnumType("direction", "normal", "reverse", "alternate", "alternate-reverse")
	PlayStates   = newEnumType("play-state", "running", "paused")
	FillModes    = newEnumType("fill-mode", "none", "forwards", "backwards", "both")
)

// Kind is part of interface Value.
func (e *Enum) Kind() Kind { return KindEnum }

// Type returns the enum type of e.
func (e *Enum) Type() *EnumType { return e.typ }

// Index returns the ordinal of e within its type.
func (e *Enum) Index() int { return e.index }

func (e *Enum) String() string { return e.name }

func (e *Enum) release() {}

func (e *Enum) equal(other Value) bool { return e == other }

func (e *Enum) compute(PropertyID, *computeContext) Value { return e }

func (e *Enum) transition(Value, PropertyID, float64) Value { return nil }
