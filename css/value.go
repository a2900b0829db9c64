package css

import "strconv"

// Kind tags the variant of a Value.
type Kind uint8

// Value kinds.
const (
	KindColor Kind = iota
	KindLength
	KindNumber
	KindInteger
	KindEnum
	KindString
	KindImage
	KindShadow
	KindArray
	KindKeyBindings
	KindTimingFunction
	KindIdentifier
	KindInherit
	KindInitial
	KindUnset
	KindPair
)

var kindNames = [...]string{
	"color", "length", "number", "integer", "enum", "string", "image",
	"shadow", "array", "key-bindings", "timing-function", "identifier",
	"inherit", "initial", "unset", "pair",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a computed or specified CSS value. The set of implementations
// is closed; all of them live in this package.
//
// Values must be treated as immutable. Their only mutable state is the
// reference count, which clients manipulate with Ref and Unref.
type Value interface {
	Kind() Kind
	String() string
	refs() *refcount
	release()
	equal(other Value) bool
	compute(id PropertyID, ctx *computeContext) Value
	transition(end Value, id PropertyID, progress float64) Value
}

// Style gives access to computed values of a style during computation.
// Values returned are borrowed; callers which keep them must Ref them.
type Style interface {
	Value(id PropertyID) Value
}

// Resolver resolves symbolic color names. The returned value is borrowed
// and may itself be symbolic. Nil signals an unknown name.
type Resolver interface {
	GetColor(name string) Value
}

type computeContext struct {
	resolver Resolver
	style    Style
	parent   Style
}

// --- Reference counting ----------------------------------------------------

type refcount struct {
	n        int32
	immortal bool
}

func (rc *refcount) refs() *refcount {
	return rc
}

func alive() refcount {
	return refcount{n: 1}
}

func static() refcount {
	return refcount{n: 1, immortal: true}
}

// Ref adds a reference to v and returns v. Ref(nil) returns nil.
func Ref(v Value) Value {
	if v == nil {
		return nil
	}
	rc := v.refs()
	if rc.immortal {
		return v
	}
	assertThat(rc.n > 0, "reference to released %s value", v.Kind())
	rc.n++
	return v
}

// Unref drops a reference to v. When the last reference is gone, v releases
// the values it owns. Unref on a value which has already been released
// is a programming error and panics.
func Unref(v Value) {
	if v == nil {
		return
	}
	rc := v.refs()
	if rc.immortal {
		return
	}
	assertThat(rc.n > 0, "unref of released %s value", v.Kind())
	rc.n--
	if rc.n == 0 {
		v.release()
	}
}

// RefCount returns the current reference count of v. Immortal values
// report -1.
func RefCount(v Value) int32 {
	if v == nil {
		return 0
	}
	if rc := v.refs(); rc.immortal {
		return -1
	} else {
		return rc.n
	}
}

// makeImmortal turns v and everything it owns into static values.
func makeImmortal(v Value) Value {
	if v == nil {
		return nil
	}
	v.refs().immortal = true
	switch x := v.(type) {
	case *Array:
		for _, ch := range x.children {
			makeImmortal(ch)
		}
	case *Shadow:
		for _, l := range x.layers {
			makeImmortal(l.X)
			makeImmortal(l.Y)
			makeImmortal(l.Blur)
			makeImmortal(l.Spread)
			makeImmortal(l.Color)
		}
	case *Color:
		makeImmortal(x.a)
		makeImmortal(x.b)
	case *Pair:
		makeImmortal(x.x)
		makeImmortal(x.y)
	case *Image:
		makeImmortal(x.start)
		makeImmortal(x.end)
	}
	return v
}

// --- Operations ------------------------------------------------------------

// Equal is true if a and b are structurally equal. Values of different
// kinds are never equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return a.equal(b)
}

// Compute resolves a specified value v for property id into a computed
// value. resolver is used for symbolic colors, style holds the values
// already computed for the style under construction (properties with a
// lower id than the one being computed) and parent is the computed parent
// style. Any of the three may be nil.
//
// The returned value carries a new reference. If computation does not
// change anything, v itself is returned with its reference count bumped.
func Compute(v Value, id PropertyID, resolver Resolver, style, parent Style) Value {
	if v == nil {
		return nil
	}
	ctx := &computeContext{resolver: resolver, style: style, parent: parent}
	return v.compute(id, ctx)
}

// Transition computes an intermediate value between start and end at
// progress. Both values are expected to be computed values. The result is
// nil if the pair is not animatable; callers are expected to fall back to
// a discrete switch.
func Transition(start, end Value, id PropertyID, progress float64) Value {
	if start == nil || end == nil || start.Kind() != end.Kind() {
		return nil
	}
	return start.transition(end, id, progress)
}

// Print returns the canonical textual form of v.
func Print(v Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// lerp is exact at both ends.
func lerp(a, b, p float64) float64 {
	return a*(1-p) + b*p
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// --- Keyword values --------------------------------------------------------

type keyword struct {
	refcount
	kind Kind
}

var (
	inheritValue = &keyword{refcount: static(), kind: KindInherit}
	initialValue = &keyword{refcount: static(), kind: KindInitial}
	unsetValue   = &keyword{refcount: static(), kind: KindUnset}
)

// Inherit returns the singleton 'inherit' value.
func Inherit() Value { return inheritValue }

// Initial returns the singleton 'initial' value.
func Initial() Value { return initialValue }

// Unset returns the singleton 'unset' value.
func Unset() Value { return unsetValue }

func (k *keyword) Kind() Kind { return k.kind }

func (k *keyword) String() string { return k.kind.String() }

func (k *keyword) release() {}

func (k *keyword) equal(other Value) bool { return true }

func (k *keyword) transition(Value, PropertyID, float64) Value { return nil }

func (k *keyword) compute(id PropertyID, ctx *computeContext) Value {
	switch k.kind {
	case KindInherit:
		return inheritFrom(id, ctx)
	case KindUnset:
		if LookupProperty(id).Inherited {
			return inheritFrom(id, ctx)
		}
	}
	return LookupProperty(id).Initial.compute(id, ctx)
}

func inheritFrom(id PropertyID, ctx *computeContext) Value {
	if ctx.parent != nil {
		if v := ctx.parent.Value(id); v != nil {
			return Ref(v)
		}
	}
	return LookupProperty(id).Initial.compute(id, ctx)
}
