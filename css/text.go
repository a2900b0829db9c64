package css

import (
	"strings"
)

// String is a quoted string value.
type String struct {
	refcount
	s string
}

// NewString creates a string value.
func NewString(s string) *String {
	return &String{refcount: alive(), s: s}
}

// Kind is part of interface Value.
func (s *String) Kind() Kind { return KindString }

// Value returns the unquoted string.
func (s *String) Value() string { return s.s }

// String prints the string in double quotes.
func (s *String) String() string { return quoteString(s.s) }

// quoteString escapes quotes, backslashes and newlines.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString("\\A ")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (s *String) release() {}

func (s *String) equal(other Value) bool { return s.s == other.(*String).s }

func (s *String) compute(PropertyID, *computeContext) Value { return Ref(s) }

func (s *String) transition(Value, PropertyID, float64) Value { return nil }

// Identifier is an unquoted CSS identifier, such as a property name in
// transition-property or an animation name.
type Identifier struct {
	refcount
	name string
}

// NewIdent creates an identifier value.
func NewIdent(name string) *Identifier {
	assertThat(name != "", "empty identifier")
	return &Identifier{refcount: alive(), name: name}
}

// Kind is part of interface Value.
func (id *Identifier) Kind() Kind { return KindIdentifier }

// Name returns the identifier.
func (id *Identifier) Name() string { return id.name }

func (id *Identifier) String() string { return id.name }

func (id *Identifier) release() {}

func (id *Identifier) equal(other Value) bool { return id.name == other.(*Identifier).name }

func (id *Identifier) compute(PropertyID, *computeContext) Value { return Ref(id) }

func (id *Identifier) transition(Value, PropertyID, float64) Value { return nil }

// KeyBindings is a list of key binding set names.
type KeyBindings struct {
	refcount
	sets []string
}

// NewKeyBindings creates a key bindings value. No names denote 'none'.
func NewKeyBindings(sets ...string) *KeyBindings {
	kb := &KeyBindings{refcount: alive()}
	kb.sets = append(kb.sets, sets...)
	return kb
}

// Kind is part of interface Value.
func (kb *KeyBindings) Kind() Kind { return KindKeyBindings }

// Sets returns the binding set names.
func (kb *KeyBindings) Sets() []string {
	return append([]string(nil), kb.sets...)
}

func (kb *KeyBindings) String() string {
	if len(kb.sets) == 0 {
		return "none"
	}
	return strings.Join(kb.sets, ", ")
}

func (kb *KeyBindings) release() {}

func (kb *KeyBindings) equal(other Value) bool {
	o := other.(*KeyBindings)
	if len(kb.sets) != len(o.sets) {
		return false
	}
	for i := range kb.sets {
		if kb.sets[i] != o.sets[i] {
			return false
		}
	}
	return true
}

func (kb *KeyBindings) compute(PropertyID, *computeContext) Value { return Ref(kb) }

func (kb *KeyBindings) transition(Value, PropertyID, float64) Value { return nil }
