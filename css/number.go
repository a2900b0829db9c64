package css

import (
	"math"
	"strconv"
)

// Number is a unitless real number.
type Number struct {
	refcount
	v float64
}

// NewNumber creates a number value.
func NewNumber(v float64) *Number {
	assertThat(!math.IsNaN(v) && !math.IsInf(v, 0), "number must be finite")
	return &Number{refcount: alive(), v: v}
}

// Kind is part of interface Value.
func (n *Number) Kind() Kind { return KindNumber }

// Value returns the scalar.
func (n *Number) Value() float64 { return n.v }

func (n *Number) String() string { return formatFloat(n.v) }

func (n *Number) release() {}

func (n *Number) equal(other Value) bool { return n.v == other.(*Number).v }

func (n *Number) compute(PropertyID, *computeContext) Value { return Ref(n) }

func (n *Number) transition(end Value, id PropertyID, progress float64) Value {
	e := end.(*Number)
	if n.v == e.v {
		return Ref(n)
	}
	return NewNumber(lerp(n.v, e.v, progress))
}

// Integer is a whole number.
type Integer struct {
	refcount
	v int
}

// NewInteger creates an integer value.
func NewInteger(v int) *Integer {
	return &Integer{refcount: alive(), v: v}
}

// Kind is part of interface Value.
func (n *Integer) Kind() Kind { return KindInteger }

// Value returns the integer.
func (n *Integer) Value() int { return n.v }

func (n *Integer) String() string { return strconv.Itoa(n.v) }

func (n *Integer) release() {}

func (n *Integer) equal(other Value) bool { return n.v == other.(*Integer).v }

func (n *Integer) compute(PropertyID, *computeContext) Value { return Ref(n) }

func (n *Integer) transition(end Value, id PropertyID, progress float64) Value {
	e := end.(*Integer)
	if n.v == e.v {
		return Ref(n)
	}
	return NewInteger(int(math.Round(lerp(float64(n.v), float64(e.v), progress))))
}
