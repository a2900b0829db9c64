package css

// Pair is a two-component value with a horizontal and a vertical part,
// as used for background positions and sizes.
type Pair struct {
	refcount
	x, y Value
}

// NewPair creates a pair, taking over the references to x and y.
func NewPair(x, y Value) *Pair {
	assertThat(x != nil && y != nil, "pair components must not be nil")
	return &Pair{refcount: alive(), x: x, y: y}
}

// Kind is part of interface Value.
func (pr *Pair) Kind() Kind { return KindPair }

// X returns the horizontal component, borrowed.
func (pr *Pair) X() Value { return pr.x }

// Y returns the vertical component, borrowed.
func (pr *Pair) Y() Value { return pr.y }

func (pr *Pair) String() string {
	return pr.x.String() + " " + pr.y.String()
}

func (pr *Pair) release() {
	Unref(pr.x)
	Unref(pr.y)
	pr.x, pr.y = nil, nil
}

func (pr *Pair) equal(other Value) bool {
	o := other.(*Pair)
	return Equal(pr.x, o.x) && Equal(pr.y, o.y)
}

func (pr *Pair) compute(id PropertyID, ctx *computeContext) Value {
	x := pr.x.compute(id, ctx)
	y := pr.y.compute(id, ctx)
	if x == pr.x && y == pr.y {
		Unref(x)
		Unref(y)
		return Ref(pr)
	}
	return NewPair(x, y)
}

func (pr *Pair) transition(end Value, id PropertyID, progress float64) Value {
	e := end.(*Pair)
	x := transitionComponent(pr.x, e.x, id, progress)
	if x == nil {
		return nil
	}
	y := transitionComponent(pr.y, e.y, id, progress)
	if y == nil {
		Unref(x)
		return nil
	}
	return NewPair(x, y)
}

func transitionComponent(a, b Value, id PropertyID, progress float64) Value {
	if Equal(a, b) {
		return Ref(a)
	}
	return Transition(a, b, id, progress)
}
