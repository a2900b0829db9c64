package css

import (
	"math"
	"strconv"
)

// TimingFunction is an easing function, either a cubic Bézier curve or a
// step function.
type TimingFunction struct {
	refcount
	steps          int // > 0 for step functions
	jumpStart      bool
	x1, y1, x2, y2 float64
}

// NewCubicBezier creates cubic-bezier(x1, y1, x2, y2). x1 and x2 must be
// within [0…1].
func NewCubicBezier(x1, y1, x2, y2 float64) *TimingFunction {
	assertThat(x1 >= 0 && x1 <= 1 && x2 >= 0 && x2 <= 1, "cubic-bezier x values must be in [0,1]")
	return &TimingFunction{refcount: alive(), x1: x1, y1: y1, x2: x2, y2: y2}
}

// NewSteps creates steps(n, start|end).
func NewSteps(n int, start bool) *TimingFunction {
	assertThat(n > 0, "steps() needs a positive number of intervals")
	return &TimingFunction{refcount: alive(), steps: n, jumpStart: start}
}

type namedTiming struct {
	name string
	tf   *TimingFunction
}

var timingKeywords = []namedTiming{
	{"linear", &TimingFunction{refcount: static(), x1: 0, y1: 0, x2: 1, y2: 1}},
	{"ease", &TimingFunction{refcount: static(), x1: 0.25, y1: 0.1, x2: 0.25, y2: 1}},
	{"ease-in", &TimingFunction{refcount: static(), x1: 0.42, y1: 0, x2: 1, y2: 1}},
	{"ease-out", &TimingFunction{refcount: static(), x1: 0, y1: 0, x2: 0.58, y2: 1}},
	{"ease-in-out", &TimingFunction{refcount: static(), x1: 0.42, y1: 0, x2: 0.58, y2: 1}},
	{"step-start", &TimingFunction{refcount: static(), steps: 1, jumpStart: true}},
	{"step-end", &TimingFunction{refcount: static(), steps: 1}},
}

// TimingKeyword returns one of the predefined timing functions
// (linear, ease, ease-in, ease-out, ease-in-out, step-start, step-end).
func TimingKeyword(name string) (*TimingFunction, bool) {
	for _, kw := range timingKeywords {
		if kw.name == name {
			return kw.tf, true
		}
	}
	return nil, false
}

// EaseOutCubic is the easing used for animated range value changes.
var EaseOutCubic = &TimingFunction{refcount: static(), x1: 0.215, y1: 0.61, x2: 0.355, y2: 1}

// Kind is part of interface Value.
func (tf *TimingFunction) Kind() Kind { return KindTimingFunction }

func (tf *TimingFunction) String() string {
	for _, kw := range timingKeywords {
		if tf.equal(kw.tf) {
			return kw.name
		}
	}
	if tf.steps > 0 {
		pos := "end"
		if tf.jumpStart {
			pos = "start"
		}
		return "steps(" + strconv.Itoa(tf.steps) + ", " + pos + ")"
	}
	return "cubic-bezier(" + formatFloat(tf.x1) + ", " + formatFloat(tf.y1) + ", " +
		formatFloat(tf.x2) + ", " + formatFloat(tf.y2) + ")"
}

func (tf *TimingFunction) release() {}

func (tf *TimingFunction) equal(other Value) bool {
	o := other.(*TimingFunction)
	if tf.steps != o.steps {
		return false
	}
	if tf.steps > 0 {
		return tf.jumpStart == o.jumpStart
	}
	return tf.x1 == o.x1 && tf.y1 == o.y1 && tf.x2 == o.x2 && tf.y2 == o.y2
}

func (tf *TimingFunction) compute(PropertyID, *computeContext) Value { return Ref(tf) }

func (tf *TimingFunction) transition(Value, PropertyID, float64) Value { return nil }

// Apply maps linear progress t ∈ [0…1] to eased progress.
func (tf *TimingFunction) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	} else if t >= 1 {
		return 1
	}
	if tf.steps > 0 {
		n := float64(tf.steps)
		if tf.jumpStart {
			return math.Min(1, math.Floor(t*n+1)/n)
		}
		return math.Floor(t*n) / n
	}
	if tf.x1 == tf.y1 && tf.x2 == tf.y2 { // the curve is the identity
		return t
	}
	return bezierY(tf.solveX(t), tf.y1, tf.y2)
}

// solveX finds the curve parameter for x with Newton's method, falling back
// to bisection.
func (tf *TimingFunction) solveX(x float64) float64 {
	u := x
	for i := 0; i < 8; i++ {
		dx := bezierY(u, tf.x1, tf.x2) - x
		if math.Abs(dx) < 1e-7 {
			return u
		}
		d := bezierSlope(u, tf.x1, tf.x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		u -= dx / d
	}
	lo, hi := 0.0, 1.0
	u = x
	for lo < hi {
		v := bezierY(u, tf.x1, tf.x2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if x > v {
			lo = u
		} else {
			hi = u
		}
		u = (hi-lo)/2 + lo
		if hi-lo < 1e-9 {
			break
		}
	}
	return u
}

// bezierY evaluates a cubic Bézier with end points 0 and 1 and inner
// control values p1, p2.
func bezierY(u, p1, p2 float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(u, p1, p2 float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}
