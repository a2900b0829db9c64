package css

import "strings"

// ShadowLayer is one layer of a box or text shadow. X, Y, Blur and Spread
// are lengths, Color is a color.
type ShadowLayer struct {
	Inset  bool
	X, Y   Value
	Blur   Value
	Spread Value
	Color  Value
}

// Shadow is a list of shadow layers. The empty list prints as 'none'.
type Shadow struct {
	refcount
	layers []ShadowLayer
}

var noneShadow = &Shadow{refcount: static()}

// NoneShadow returns the singleton empty shadow.
func NoneShadow() *Shadow { return noneShadow }

// NewShadow creates a shadow from layers. It takes over the references held
// by the layers. Nil blur and spread default to 0px, a nil color to
// currentColor.
func NewShadow(layers ...ShadowLayer) *Shadow {
	if len(layers) == 0 {
		return noneShadow
	}
	sh := &Shadow{refcount: alive(), layers: make([]ShadowLayer, len(layers))}
	for i, l := range layers {
		assertThat(l.X != nil && l.Y != nil, "shadow layer needs offsets")
		if l.Blur == nil {
			l.Blur = NewLength(0, PX)
		}
		if l.Spread == nil {
			l.Spread = NewLength(0, PX)
		}
		if l.Color == nil {
			l.Color = NewCurrentColor()
		}
		sh.layers[i] = l
	}
	return sh
}

// Kind is part of interface Value.
func (sh *Shadow) Kind() Kind { return KindShadow }

// Len returns the number of layers.
func (sh *Shadow) Len() int { return len(sh.layers) }

// Layer returns the i-th layer. Values are borrowed.
func (sh *Shadow) Layer(i int) ShadowLayer {
	assertThat(i >= 0 && i < len(sh.layers), "shadow has no layer #%d", i)
	return sh.layers[i]
}

func (sh *Shadow) String() string {
	if len(sh.layers) == 0 {
		return "none"
	}
	var b strings.Builder
	for i, l := range sh.layers {
		if i > 0 {
			b.WriteString(", ")
		}
		if l.Inset {
			b.WriteString("inset ")
		}
		b.WriteString(l.X.String())
		b.WriteByte(' ')
		b.WriteString(l.Y.String())
		b.WriteByte(' ')
		b.WriteString(l.Blur.String())
		b.WriteByte(' ')
		b.WriteString(l.Spread.String())
		b.WriteByte(' ')
		b.WriteString(l.Color.String())
	}
	return b.String()
}

func (l ShadowLayer) values() []Value {
	return []Value{l.X, l.Y, l.Blur, l.Spread, l.Color}
}

func layerFrom(inset bool, vs []Value) ShadowLayer {
	return ShadowLayer{Inset: inset, X: vs[0], Y: vs[1], Blur: vs[2], Spread: vs[3], Color: vs[4]}
}

func (sh *Shadow) release() {
	for _, l := range sh.layers {
		for _, v := range l.values() {
			Unref(v)
		}
	}
	sh.layers = nil
}

func (sh *Shadow) equal(other Value) bool {
	o := other.(*Shadow)
	if len(sh.layers) != len(o.layers) {
		return false
	}
	for i, l := range sh.layers {
		if l.Inset != o.layers[i].Inset {
			return false
		}
		ov := o.layers[i].values()
		for j, v := range l.values() {
			if !Equal(v, ov[j]) {
				return false
			}
		}
	}
	return true
}

func (sh *Shadow) compute(id PropertyID, ctx *computeContext) Value {
	if len(sh.layers) == 0 {
		return sh
	}
	changed := false
	layers := make([]ShadowLayer, len(sh.layers))
	for i, l := range sh.layers {
		vs := l.values()
		cs := make([]Value, len(vs))
		for j, v := range vs {
			cs[j] = v.compute(id, ctx)
			changed = changed || cs[j] != v
		}
		layers[i] = layerFrom(l.Inset, cs)
	}
	if !changed {
		for _, l := range layers {
			for _, v := range l.values() {
				Unref(v)
			}
		}
		return Ref(sh)
	}
	return &Shadow{refcount: alive(), layers: layers}
}

// transition interpolates layer by layer. The shorter list is padded with
// transparent layers without offset. Layers differing in inset-ness do not
// animate.
func (sh *Shadow) transition(end Value, id PropertyID, progress float64) Value {
	e := end.(*Shadow)
	n := len(sh.layers)
	if len(e.layers) > n {
		n = len(e.layers)
	}
	if n == 0 {
		return Ref(sh)
	}
	layers := make([]ShadowLayer, 0, n)
	abort := func() Value {
		for _, l := range layers {
			for _, v := range l.values() {
				Unref(v)
			}
		}
		return nil
	}
	for i := 0; i < n; i++ {
		var s, t ShadowLayer
		switch {
		case i >= len(sh.layers):
			t = e.layers[i]
			s = transparentLayer(t.Inset)
			defer releaseLayer(s)
		case i >= len(e.layers):
			s = sh.layers[i]
			t = transparentLayer(s.Inset)
			defer releaseLayer(t)
		default:
			s, t = sh.layers[i], e.layers[i]
		}
		if s.Inset != t.Inset {
			return abort()
		}
		sv, tv := s.values(), t.values()
		vs := make([]Value, len(sv))
		for j := range sv {
			if vs[j] = Transition(sv[j], tv[j], id, progress); vs[j] == nil {
				for _, v := range vs[:j] {
					Unref(v)
				}
				return abort()
			}
		}
		layers = append(layers, layerFrom(s.Inset, vs))
	}
	return &Shadow{refcount: alive(), layers: layers}
}

func transparentLayer(inset bool) ShadowLayer {
	return ShadowLayer{
		Inset:  inset,
		X:      NewLength(0, PX),
		Y:      NewLength(0, PX),
		Blur:   NewLength(0, PX),
		Spread: NewLength(0, PX),
		Color:  NewRGBA(Transparent),
	}
}

func releaseLayer(l ShadowLayer) {
	for _, v := range l.values() {
		Unref(v)
	}
}
