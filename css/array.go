package css

import "strings"

// Array is a non-empty list of values, used for comma separated property
// values such as background layers. The empty array is a static singleton
// printing as 'none'.
type Array struct {
	refcount
	children []Value
}

var noneArray = &Array{refcount: static()}

// NoneArray returns the singleton empty array.
func NoneArray() *Array { return noneArray }

// NewArray creates an array from at least one child. It takes over the
// references to the children.
func NewArray(children ...Value) *Array {
	assertThat(len(children) > 0, "array must not be empty")
	a := &Array{refcount: alive(), children: make([]Value, len(children))}
	for i, ch := range children {
		assertThat(ch != nil, "array child #%d is nil", i)
		a.children[i] = ch
	}
	return a
}

// Kind is part of interface Value.
func (a *Array) Kind() Kind { return KindArray }

// Len returns the number of children.
func (a *Array) Len() int { return len(a.children) }

// Nth returns child i modulo the array length. The child is borrowed.
// Nth of the empty array is nil.
func (a *Array) Nth(i int) Value {
	assertThat(i >= 0, "negative array index %d", i)
	if len(a.children) == 0 {
		return nil
	}
	return a.children[i%len(a.children)]
}

// Nth returns element i of an array value, cycling through the children.
// Non-array values behave like single-element arrays.
func Nth(v Value, i int) Value {
	if a, ok := v.(*Array); ok {
		return a.Nth(i)
	}
	return v
}

// Len returns the number of elements of an array value, 1 for non-array
// values and 0 for nil.
func Len(v Value) int {
	if v == nil {
		return 0
	}
	if a, ok := v.(*Array); ok {
		return a.Len()
	}
	return 1
}

func (a *Array) String() string {
	if len(a.children) == 0 {
		return "none"
	}
	var b strings.Builder
	for i, ch := range a.children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ch.String())
	}
	return b.String()
}

func (a *Array) release() {
	for _, ch := range a.children {
		Unref(ch)
	}
	a.children = nil
}

func (a *Array) equal(other Value) bool {
	o := other.(*Array)
	if len(a.children) != len(o.children) {
		return false
	}
	for i, ch := range a.children {
		if !Equal(ch, o.children[i]) {
			return false
		}
	}
	return true
}

// compute computes element-wise. Unchanged children are shared.
func (a *Array) compute(id PropertyID, ctx *computeContext) Value {
	if len(a.children) == 0 {
		return a
	}
	var computed []Value
	for i, ch := range a.children {
		c := ch.compute(id, ctx)
		if computed == nil && c != ch {
			computed = make([]Value, len(a.children))
			for j := 0; j < i; j++ {
				computed[j] = Ref(a.children[j])
			}
		}
		if computed != nil {
			computed[i] = c
		} else {
			Unref(c)
		}
	}
	if computed == nil {
		return Ref(a)
	}
	return NewArray(computed...)
}

// transition follows the transition category of property id.
func (a *Array) transition(end Value, id PropertyID, progress float64) Value {
	e := end.(*Array)
	if len(a.children) == 0 || len(e.children) == 0 {
		if len(a.children) == 0 && len(e.children) == 0 {
			return Ref(a)
		}
		return nil
	}
	switch LookupProperty(id).Transition {
	case TransitionRepeat:
		return a.transitionRepeat(e, id, progress)
	case TransitionExtend:
		return a.transitionExtend(e, id, progress)
	}
	return nil
}

func (a *Array) transitionRepeat(e *Array, id PropertyID, progress float64) Value {
	n := lcm(len(a.children), len(e.children))
	children := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		t := Transition(a.Nth(i), e.Nth(i), id, progress)
		if t == nil {
			releaseAll(children)
			return nil
		}
		children = append(children, t)
	}
	return NewArray(children...)
}

func (a *Array) transitionExtend(e *Array, id PropertyID, progress float64) Value {
	n := len(a.children)
	if len(e.children) > n {
		n = len(e.children)
	}
	pad := Nth(LookupProperty(id).Initial, 0)
	children := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		s, t := pad, pad
		if i < len(a.children) {
			s = a.children[i]
		}
		if i < len(e.children) {
			t = e.children[i]
		}
		v := Transition(s, t, id, progress)
		if v == nil {
			releaseAll(children)
			return nil
		}
		children = append(children, v)
	}
	return NewArray(children...)
}

func releaseAll(vs []Value) {
	for _, v := range vs {
		Unref(v)
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// ParseArray parses a comma separated, non-empty list, calling parseOne
// for every element. On failure all elements parsed so far are released.
func ParseArray(p *Parser, parseOne func(*Parser) (Value, error)) (Value, error) {
	var children []Value
	for {
		v, err := parseOne(p)
		if err != nil {
			releaseAll(children)
			return nil, err
		}
		children = append(children, v)
		if !p.TryChar(',') {
			break
		}
	}
	return NewArray(children...), nil
}
