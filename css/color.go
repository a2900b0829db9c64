package css

import (
	"math"
	"strconv"
	"strings"
)

// RGBA is a color with components in [0…1], not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Transparent is fully transparent black.
var Transparent = RGBA{}

type colorForm uint8

const (
	colorLiteral colorForm = iota
	colorNamed
	colorCurrent
	colorMix
	colorShade
	colorAlpha
	colorLighter
	colorDarker
)

// Color is a color value. Besides literal colors it may be a symbolic
// color (a named color, currentColor or an expression over other colors),
// which compute resolves to a literal.
type Color struct {
	refcount
	form   colorForm
	rgba   RGBA
	name   string
	a, b   Value
	factor float64
}

var currentColorValue = &Color{refcount: static(), form: colorCurrent}

// NewRGBA creates a literal color. Components are clamped to [0…1].
func NewRGBA(c RGBA) *Color {
	return &Color{refcount: alive(), rgba: c.clamp()}
}

// NewColor creates a literal color from 8-bit components and an alpha.
func NewColor(r, g, b uint8, alpha float64) *Color {
	return NewRGBA(RGBA{float64(r) / 255, float64(g) / 255, float64(b) / 255, alpha})
}

// NewNamedColor creates a reference to a color defined elsewhere
// (for example by @define-color). The name is given without '@'.
func NewNamedColor(name string) *Color {
	assertThat(name != "", "empty color name")
	return &Color{refcount: alive(), form: colorNamed, name: name}
}

// NewCurrentColor returns the singleton 'currentColor' value.
func NewCurrentColor() Value {
	return currentColorValue
}

// NewMix creates mix(a, b, f). It takes over the references to a and b.
func NewMix(a, b Value, f float64) *Color {
	assertColor(a)
	assertColor(b)
	return &Color{refcount: alive(), form: colorMix, a: a, b: b, factor: f}
}

// NewShade creates shade(a, f). It takes over the reference to a.
func NewShade(a Value, f float64) *Color {
	assertColor(a)
	return &Color{refcount: alive(), form: colorShade, a: a, factor: f}
}

// NewAlpha creates alpha(a, f). It takes over the reference to a.
func NewAlpha(a Value, f float64) *Color {
	assertColor(a)
	return &Color{refcount: alive(), form: colorAlpha, a: a, factor: f}
}

// NewLighter creates lighter(a). It takes over the reference to a.
func NewLighter(a Value) *Color {
	assertColor(a)
	return &Color{refcount: alive(), form: colorLighter, a: a}
}

// NewDarker creates darker(a). It takes over the reference to a.
func NewDarker(a Value) *Color {
	assertColor(a)
	return &Color{refcount: alive(), form: colorDarker, a: a}
}

func assertColor(v Value) {
	assertThat(v != nil && v.Kind() == KindColor, "color expression operand must be a color")
}

// RGBA returns the components of a literal color. ok is false for
// symbolic colors.
func (c *Color) RGBA() (rgba RGBA, ok bool) {
	if c.form != colorLiteral {
		return Transparent, false
	}
	return c.rgba, true
}

// IsSymbolic is true for colors which need to be resolved by compute.
func (c *Color) IsSymbolic() bool {
	return c.form != colorLiteral
}

// Kind is part of interface Value.
func (c *Color) Kind() Kind { return KindColor }

func (c *Color) release() {
	Unref(c.a)
	Unref(c.b)
	c.a, c.b = nil, nil
}

func (c *Color) equal(other Value) bool {
	o := other.(*Color)
	if c.form != o.form {
		return false
	}
	switch c.form {
	case colorLiteral:
		return c.rgba == o.rgba
	case colorNamed:
		return c.name == o.name
	case colorCurrent:
		return true
	}
	return c.factor == o.factor && Equal(c.a, o.a) && Equal(c.b, o.b)
}

func (c *Color) String() string {
	switch c.form {
	case colorNamed:
		return "@" + c.name
	case colorCurrent:
		return "currentColor"
	case colorMix:
		return "mix(" + c.a.String() + ", " + c.b.String() + ", " + formatFloat(c.factor) + ")"
	case colorShade:
		return "shade(" + c.a.String() + ", " + formatFloat(c.factor) + ")"
	case colorAlpha:
		return "alpha(" + c.a.String() + ", " + formatFloat(c.factor) + ")"
	case colorLighter:
		return "lighter(" + c.a.String() + ")"
	case colorDarker:
		return "darker(" + c.a.String() + ")"
	}
	return c.rgba.String()
}

// String prints rgb() for opaque colors and rgba() otherwise.
func (c RGBA) String() string {
	var b strings.Builder
	if c.A >= 1 {
		b.WriteString("rgb(")
	} else {
		b.WriteString("rgba(")
	}
	b.WriteString(strconv.Itoa(to8bit(c.R)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(to8bit(c.G)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(to8bit(c.B)))
	if c.A < 1 {
		b.WriteByte(',')
		b.WriteString(formatFloat(c.A))
	}
	b.WriteByte(')')
	return b.String()
}

func to8bit(x float64) int {
	return int(math.Round(x * 255))
}

func (c RGBA) clamp() RGBA {
	return RGBA{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}

// --- Compute ---------------------------------------------------------------

func (c *Color) compute(id PropertyID, ctx *computeContext) Value {
	switch c.form {
	case colorLiteral:
		return Ref(c)
	case colorCurrent:
		return currentColor(id, ctx)
	}
	rgba, ok := c.resolve(id, ctx, map[string]bool{})
	if !ok {
		tracer().Infof("cannot resolve color %s for property %s, using initial value",
			c, LookupProperty(id).Name)
		return LookupProperty(id).Initial.compute(id, ctx)
	}
	return NewRGBA(rgba)
}

// currentColor yields the computed 'color' of the style. For property
// 'color' itself it refers to the parent's color.
func currentColor(id PropertyID, ctx *computeContext) Value {
	if id == PropertyColor {
		if ctx.parent != nil {
			if v := ctx.parent.Value(PropertyColor); v != nil {
				return Ref(v)
			}
		}
		return Ref(LookupProperty(PropertyColor).Initial)
	}
	if ctx.style != nil {
		if v := ctx.style.Value(PropertyColor); v != nil {
			return Ref(v)
		}
	}
	return Ref(LookupProperty(PropertyColor).Initial)
}

func (c *Color) resolve(id PropertyID, ctx *computeContext, seen map[string]bool) (RGBA, bool) {
	switch c.form {
	case colorLiteral:
		return c.rgba, true
	case colorCurrent:
		cc := currentColor(id, ctx)
		defer Unref(cc)
		return cc.(*Color).resolve(id, ctx, seen)
	case colorNamed:
		if seen[c.name] || ctx.resolver == nil {
			return Transparent, false
		}
		named := ctx.resolver.GetColor(c.name)
		if named == nil || named.Kind() != KindColor {
			return Transparent, false
		}
		seen[c.name] = true
		rgba, ok := named.(*Color).resolve(id, ctx, seen)
		delete(seen, c.name)
		return rgba, ok
	}
	a, ok := c.a.(*Color).resolve(id, ctx, seen)
	if !ok {
		return Transparent, false
	}
	switch c.form {
	case colorMix:
		b, ok := c.b.(*Color).resolve(id, ctx, seen)
		if !ok {
			return Transparent, false
		}
		f := clamp01(c.factor)
		return RGBA{
			R: lerp(a.R, b.R, f),
			G: lerp(a.G, b.G, f),
			B: lerp(a.B, b.B, f),
			A: lerp(a.A, b.A, f),
		}.clamp(), true
	case colorShade:
		return shade(a, c.factor), true
	case colorAlpha:
		a.A = clamp01(a.A * c.factor)
		return a, true
	case colorLighter:
		return shade(a, 1.3), true
	case colorDarker:
		return shade(a, 0.7), true
	}
	return Transparent, false
}

// shade scales lightness and saturation of a color in HLS space.
func shade(c RGBA, f float64) RGBA {
	h, l, s := rgbToHLS(c.R, c.G, c.B)
	l = clamp01(l * f)
	s = clamp01(s * f)
	r, g, b := hlsToRGB(h, l, s)
	return RGBA{r, g, b, c.A}
}

func rgbToHLS(r, g, b float64) (h, l, s float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, l, 0
	}
	delta := max - min
	if l <= 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}
	switch max {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return
}

func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hueComponent(m1, m2, h+120), hueComponent(m1, m2, h), hueComponent(m1, m2, h-120)
}

func hueComponent(m1, m2, hue float64) float64 {
	for hue > 360 {
		hue -= 360
	}
	for hue < 0 {
		hue += 360
	}
	switch {
	case hue < 60:
		return m1 + (m2-m1)*hue/60
	case hue < 180:
		return m2
	case hue < 240:
		return m1 + (m2-m1)*(240-hue)/60
	}
	return m1
}

// --- Transition ------------------------------------------------------------

// transition mixes premultiplied colors. Only literal colors animate.
func (c *Color) transition(end Value, id PropertyID, progress float64) Value {
	e := end.(*Color)
	if c.form != colorLiteral || e.form != colorLiteral {
		return nil
	}
	if progress <= 0 {
		return Ref(c)
	} else if progress >= 1 {
		return Ref(e)
	}
	s, t := c.rgba, e.rgba
	alpha := lerp(s.A, t.A, progress)
	if alpha <= 0 {
		return NewRGBA(Transparent)
	}
	return NewRGBA(RGBA{
		R: lerp(s.R*s.A, t.R*t.A, progress) / alpha,
		G: lerp(s.G*s.A, t.G*t.A, progress) / alpha,
		B: lerp(s.B*s.A, t.B*t.A, progress) / alpha,
		A: alpha,
	})
}

// --- Named colors ----------------------------------------------------------

var namedColors = map[string]RGBA{
	"transparent": {0, 0, 0, 0},
	"black":       {0, 0, 0, 1},
	"white":       {1, 1, 1, 1},
	"red":         {1, 0, 0, 1},
	"green":       {0, 128.0 / 255, 0, 1},
	"lime":        {0, 1, 0, 1},
	"blue":        {0, 0, 1, 1},
	"yellow":      {1, 1, 0, 1},
	"cyan":        {0, 1, 1, 1},
	"aqua":        {0, 1, 1, 1},
	"magenta":     {1, 0, 1, 1},
	"fuchsia":     {1, 0, 1, 1},
	"gray":        {128.0 / 255, 128.0 / 255, 128.0 / 255, 1},
	"grey":        {128.0 / 255, 128.0 / 255, 128.0 / 255, 1},
	"silver":      {192.0 / 255, 192.0 / 255, 192.0 / 255, 1},
	"maroon":      {128.0 / 255, 0, 0, 1},
	"olive":       {128.0 / 255, 128.0 / 255, 0, 1},
	"navy":        {0, 0, 128.0 / 255, 1},
	"purple":      {128.0 / 255, 0, 128.0 / 255, 1},
	"teal":        {0, 128.0 / 255, 128.0 / 255, 1},
	"orange":      {1, 165.0 / 255, 0, 1},
}

// ColorByName returns a CSS named color.
func ColorByName(name string) (RGBA, bool) {
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}
