package css

import (
	"math"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Unit is the unit of a Length value.
type Unit uint8

// Units for lengths, times and angles.
const (
	PX Unit = iota
	PT
	PC
	IN
	CM
	MM
	EM
	EX
	REM
	Percent
	S
	MS
	Deg
)

var unitNames = [...]string{"px", "pt", "pc", "in", "cm", "mm", "em", "ex", "rem", "%", "s", "ms", "deg"}

func (u Unit) String() string {
	return unitNames[u]
}

// UnitFromString finds a unit by its CSS name.
func UnitFromString(s string) (Unit, bool) {
	s = strings.ToLower(s)
	for i, n := range unitNames {
		if n == s {
			return Unit(i), true
		}
	}
	return PX, false
}

// IsAbsolute is true for units which compute to px.
func (u Unit) IsAbsolute() bool {
	return u <= MM
}

// IsFontRelative is true for em, ex and rem.
func (u Unit) IsFontRelative() bool {
	return u == EM || u == EX || u == REM
}

const (
	defaultDPI      = 96.0
	defaultFontSize = 16.0 // px
)

// Length is a number with a unit. Besides lengths proper it covers times
// (s, ms), angles (deg) and percentages.
type Length struct {
	refcount
	v    float64
	unit Unit
}

// NewLength creates a length value.
func NewLength(v float64, unit Unit) *Length {
	assertThat(!math.IsNaN(v) && !math.IsInf(v, 0), "length must be finite")
	return &Length{refcount: alive(), v: v, unit: unit}
}

// Kind is part of interface Value.
func (l *Length) Kind() Kind { return KindLength }

// Value returns the scalar of a length.
func (l *Length) Value() float64 { return l.v }

// Unit returns the unit of a length.
func (l *Length) Unit() Unit { return l.unit }

func (l *Length) String() string {
	return formatFloat(l.v) + l.unit.String()
}

func (l *Length) release() {}

func (l *Length) equal(other Value) bool {
	o := other.(*Length)
	return l.v == o.v && l.unit == o.unit
}

// compute converts absolute units to px and resolves font relative units
// against font-size.
func (l *Length) compute(id PropertyID, ctx *computeContext) Value {
	switch l.unit {
	case PT, PC, IN, CM, MM:
		return NewLength(l.v*pxPerUnit(l.unit, dpiOf(ctx)), PX)
	case EM:
		return NewLength(l.v*fontSizeOf(id, ctx), PX)
	case EX:
		return NewLength(l.v*fontSizeOf(id, ctx)*0.5, PX)
	case REM:
		return NewLength(l.v*defaultFontSize, PX)
	case Percent:
		if id == PropertyFontSize {
			return NewLength(l.v/100*fontSizeOf(id, ctx), PX)
		}
	}
	return Ref(l)
}

func pxPerUnit(u Unit, dpi float64) float64 {
	switch u {
	case PT:
		return dpi / 72
	case PC:
		return dpi / 6
	case IN:
		return dpi
	case CM:
		return dpi / 2.54
	case MM:
		return dpi / 25.4
	}
	return 1
}

func dpiOf(ctx *computeContext) float64 {
	if ctx.style != nil {
		if n, ok := ctx.style.Value(PropertyDPI).(*Number); ok && n.v > 0 {
			return n.v
		}
	}
	return defaultDPI
}

// fontSizeOf returns the font size em units refer to. For font-size
// itself this is the parent's font size.
func fontSizeOf(id PropertyID, ctx *computeContext) float64 {
	s := ctx.style
	if id == PropertyFontSize {
		s = ctx.parent
	}
	if s != nil {
		if l, ok := s.Value(PropertyFontSize).(*Length); ok && l.unit == PX {
			return l.v
		}
	}
	return defaultFontSize
}

func (l *Length) transition(end Value, id PropertyID, progress float64) Value {
	e := end.(*Length)
	if l.unit != e.unit {
		return nil
	}
	if l.v == e.v {
		return Ref(l)
	}
	return NewLength(lerp(l.v, e.v, progress), l.unit)
}

// DU converts an absolute length to design units. Lengths in px are
// converted at 96 dpi.
func (l *Length) DU() (dimen.DU, bool) {
	if !l.unit.IsAbsolute() {
		return 0, false
	}
	pt := l.v * pxPerUnit(l.unit, defaultDPI) * 0.75
	return dimen.DU(math.Round(pt * float64(dimen.PT))), true
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for l, to be used in switch statements:
//
//	var du dimen.DU
//	switch m := l.Match(); m {
//	case m.Just(&du):
//		…
//	case m.Percentage(&p):
//		…
//	}
func (l *Length) Match() *LengthMatcher {
	return &LengthMatcher{length: l}
}

// LengthMatcher helps to switch over the different flavours of lengths.
type LengthMatcher struct {
	length *Length
}

// Just matches absolute lengths and extracts them as design units.
func (m *LengthMatcher) Just(du *dimen.DU) *LengthMatcher {
	if d, ok := m.length.DU(); ok {
		if du != nil {
			*du = d
		}
		return m
	}
	return nil
}

// Percentage matches percentages.
func (m *LengthMatcher) Percentage(p *percent.Percent) *LengthMatcher {
	if m.length.unit == Percent {
		if p != nil {
			*p = percent.FromInt(int(math.Round(m.length.v)))
		}
		return m
	}
	return nil
}

// FontRelative matches em, ex and rem lengths.
func (m *LengthMatcher) FontRelative(v *float64, unit *Unit) *LengthMatcher {
	if m.length.unit.IsFontRelative() {
		if v != nil {
			*v = m.length.v
		}
		if unit != nil {
			*unit = m.length.unit
		}
		return m
	}
	return nil
}

// Duration matches times and extracts them in milliseconds.
func (m *LengthMatcher) Duration(msec *float64) *LengthMatcher {
	switch m.length.unit {
	case S:
		if msec != nil {
			*msec = m.length.v * 1000
		}
		return m
	case MS:
		if msec != nil {
			*msec = m.length.v
		}
		return m
	}
	return nil
}
