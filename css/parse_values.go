package css

import (
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

func arrayOf(parseOne func(*Parser) (Value, error)) func(*Parser) (Value, error) {
	return func(p *Parser) (Value, error) {
		return ParseArray(p, parseOne)
	}
}

func enumParser(et *EnumType) func(*Parser) (Value, error) {
	return func(p *Parser) (Value, error) {
		name, err := p.Ident()
		if err != nil {
			return nil, err
		}
		if e, ok := et.Lookup(name); ok {
			return e, nil
		}
		return nil, p.Errorf("unknown %s '%s'", et.name, name)
	}
}

// --- Colors ----------------------------------------------------------------

// ParseColor parses a color: a hex or rgb()/rgba() literal, a color name,
// currentColor, a reference @name or a color expression.
func ParseColor(p *Parser) (Value, error) {
	t := p.Peek()
	switch t.Type {
	case scanner.TokenHash:
		p.Next()
		c, ok := parseHexColor(t.Value[1:])
		if !ok {
			return nil, p.Errorf("malformed hex color %s", t.Value)
		}
		return NewRGBA(c), nil
	case scanner.TokenAtKeyword:
		p.Next()
		return NewNamedColor(t.Value[1:]), nil
	case scanner.TokenIdent:
		if strings.EqualFold(t.Value, "currentColor") {
			p.Next()
			return NewCurrentColor(), nil
		}
		if c, ok := ColorByName(t.Value); ok {
			p.Next()
			return NewRGBA(c), nil
		}
		return nil, p.Errorf("unknown color name '%s'", t.Value)
	case scanner.TokenFunction:
		return parseColorFunction(p)
	}
	return nil, p.Errorf("expected color, found %s", describe(t))
}

func parseColorValue(p *Parser) (Value, error) {
	return ParseColor(p)
}

func parseHexColor(hex string) (RGBA, bool) {
	digits := make([]float64, 0, 8)
	for i := 0; i < len(hex); i++ {
		d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
		if err != nil {
			return Transparent, false
		}
		digits = append(digits, float64(d))
	}
	switch len(digits) {
	case 3, 4:
		c := RGBA{digits[0] * 17 / 255, digits[1] * 17 / 255, digits[2] * 17 / 255, 1}
		if len(digits) == 4 {
			c.A = digits[3] * 17 / 255
		}
		return c, true
	case 6, 8:
		c := RGBA{
			(digits[0]*16 + digits[1]) / 255,
			(digits[2]*16 + digits[3]) / 255,
			(digits[4]*16 + digits[5]) / 255,
			1,
		}
		if len(digits) == 8 {
			c.A = (digits[6]*16 + digits[7]) / 255
		}
		return c, true
	}
	return Transparent, false
}

func parseColorFunction(p *Parser) (Value, error) {
	name, _ := p.Function()
	switch name {
	case "rgb", "rgba":
		return parseRGBArgs(p)
	case "lighter", "darker":
		c, err := ParseColor(p)
		if err != nil {
			return nil, err
		}
		if err = p.ExpectChar(')'); err != nil {
			Unref(c)
			return nil, err
		}
		if name == "lighter" {
			return NewLighter(c), nil
		}
		return NewDarker(c), nil
	case "shade", "alpha":
		c, err := ParseColor(p)
		if err != nil {
			return nil, err
		}
		f, err := parseFactorArg(p)
		if err != nil {
			Unref(c)
			return nil, err
		}
		if name == "shade" {
			return NewShade(c, f), nil
		}
		return NewAlpha(c, f), nil
	case "mix":
		a, err := ParseColor(p)
		if err != nil {
			return nil, err
		}
		if err = p.ExpectChar(','); err != nil {
			Unref(a)
			return nil, err
		}
		b, err := ParseColor(p)
		if err != nil {
			Unref(a)
			return nil, err
		}
		f, err := parseFactorArg(p)
		if err != nil {
			Unref(a)
			Unref(b)
			return nil, err
		}
		return NewMix(a, b, f), nil
	}
	return nil, p.Errorf("unknown color function %s()", name)
}

// parseFactorArg reads ", number)".
func parseFactorArg(p *Parser) (float64, error) {
	if err := p.ExpectChar(','); err != nil {
		return 0, err
	}
	f, err := p.Number()
	if err != nil {
		return 0, err
	}
	return f, p.ExpectChar(')')
}

func parseRGBArgs(p *Parser) (Value, error) {
	var comps [4]float64
	comps[3] = 1
	n := 0
	for {
		num, ok, err := p.tryNumber()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.Errorf("expected color component")
		}
		if n == 4 {
			return nil, p.Errorf("too many color components")
		}
		switch {
		case num.unit == "%":
			comps[n] = num.v / 100
		case num.unit != "":
			return nil, p.Errorf("unexpected unit %s in color", num.unit)
		case n == 3:
			comps[n] = num.v
		default:
			comps[n] = num.v / 255
		}
		n++
		if !p.TryChar(',') {
			break
		}
	}
	if n < 3 {
		return nil, p.Errorf("expected at least 3 color components")
	}
	if err := p.ExpectChar(')'); err != nil {
		return nil, err
	}
	return NewRGBA(RGBA{comps[0], comps[1], comps[2], comps[3]}), nil
}

// --- Numbers and lengths ---------------------------------------------------

// ParseLength reads a length. A unitless zero is taken as 0px.
// Percentages are accepted if allowPercent is set.
func ParseLength(p *Parser, allowPercent bool) (*Length, error) {
	n, ok, err := p.tryNumber()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.Errorf("expected length, found %s", describe(p.Peek()))
	}
	if n.unit == "" {
		if n.v == 0 {
			return NewLength(0, PX), nil
		}
		return nil, p.Errorf("length %s needs a unit", formatFloat(n.v))
	}
	unit, ok := UnitFromString(n.unit)
	if !ok || unit == S || unit == MS || unit == Deg {
		return nil, p.Errorf("'%s' is not a length unit", n.unit)
	}
	if unit == Percent && !allowPercent {
		return nil, p.Errorf("percentage not allowed here")
	}
	return NewLength(n.v, unit), nil
}

func parseLengthValue(p *Parser) (Value, error) {
	l, err := ParseLength(p, false)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func parseNonNegativeLength(p *Parser) (Value, error) {
	l, err := ParseLength(p, false)
	if err != nil {
		return nil, err
	}
	if l.v < 0 {
		Unref(l)
		return nil, p.Errorf("negative length not allowed")
	}
	return l, nil
}

var borderWidthKeywords = map[string]float64{"thin": 1, "medium": 3, "thick": 5}

func parseBorderWidth(p *Parser) (Value, error) {
	for kw, w := range borderWidthKeywords {
		if p.TryIdent(kw) {
			return NewLength(w, PX), nil
		}
	}
	return parseNonNegativeLength(p)
}

var fontSizeKeywords = map[string]float64{
	"xx-small": 9, "x-small": 10, "small": 13, "medium": 16,
	"large": 18, "x-large": 24, "xx-large": 32,
}

func parseFontSize(p *Parser) (Value, error) {
	for kw, size := range fontSizeKeywords {
		if p.TryIdent(kw) {
			return NewLength(size, PX), nil
		}
	}
	if p.TryIdent("smaller") {
		return NewLength(1/1.2, EM), nil
	}
	if p.TryIdent("larger") {
		return NewLength(1.2, EM), nil
	}
	l, err := ParseLength(p, true)
	if err != nil {
		return nil, err
	}
	if l.v < 0 {
		Unref(l)
		return nil, p.Errorf("font size must not be negative")
	}
	return l, nil
}

// ParseNumber reads a unitless number.
func ParseNumber(p *Parser) (Value, error) {
	f, err := p.Number()
	if err != nil {
		return nil, err
	}
	return NewNumber(f), nil
}

func parsePositiveNumber(p *Parser) (Value, error) {
	f, err := p.Number()
	if err != nil {
		return nil, err
	}
	if f <= 0 {
		return nil, p.Errorf("number must be positive")
	}
	return NewNumber(f), nil
}

func parseOpacity(p *Parser) (Value, error) {
	f, err := p.Number()
	if err != nil {
		return nil, err
	}
	return NewNumber(clamp01(f)), nil
}

func parseFontWeight(p *Parser) (Value, error) {
	switch {
	case p.TryIdent("normal"):
		return NewNumber(400), nil
	case p.TryIdent("bold"):
		return NewNumber(700), nil
	}
	f, err := p.Number()
	if err != nil {
		return nil, err
	}
	if f < 1 || f > 1000 {
		return nil, p.Errorf("font weight out of range")
	}
	return NewNumber(f), nil
}

func parseTime(p *Parser) (Value, error) {
	n, ok, err := p.tryNumber()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.Errorf("expected time, found %s", describe(p.Peek()))
	}
	switch n.unit {
	case "s":
		return NewLength(n.v, S), nil
	case "ms":
		return NewLength(n.v, MS), nil
	}
	return nil, p.Errorf("expected time unit s or ms")
}

func parseIterationCount(p *Parser) (Value, error) {
	if p.TryIdent("infinite") {
		return NewIdent("infinite"), nil
	}
	f, err := p.Number()
	if err != nil {
		return nil, err
	}
	if f < 0 {
		return nil, p.Errorf("iteration count must not be negative")
	}
	return NewNumber(f), nil
}

func parseCornerRadius(p *Parser) (Value, error) {
	x, err := ParseLength(p, true)
	if err != nil {
		return nil, err
	}
	if x.v < 0 {
		Unref(x)
		return nil, p.Errorf("negative radius")
	}
	p.TryChar(',')
	if k := p.Peek().Type; k == scanner.TokenEOF || (k == scanner.TokenChar && p.Peek().Value != "-") {
		return NewArray(x, Ref(x)), nil
	}
	y, err := ParseLength(p, true)
	if err != nil {
		Unref(x)
		return nil, err
	}
	if y.v < 0 {
		Unref(x)
		Unref(y)
		return nil, p.Errorf("negative radius")
	}
	return NewArray(x, y), nil
}

// --- Text ------------------------------------------------------------------

// ParseString reads a quoted string.
func ParseString(p *Parser) (Value, error) {
	s, err := p.String()
	if err != nil {
		return nil, err
	}
	return NewString(s), nil
}

func parseIdentValue(p *Parser) (Value, error) {
	name, err := p.Ident()
	if err != nil {
		return nil, err
	}
	return NewIdent(name), nil
}

func parseFontFamily(p *Parser) (Value, error) {
	return ParseArray(p, func(p *Parser) (Value, error) {
		if p.Peek().Type == scanner.TokenString {
			s, err := p.String()
			if err != nil {
				return nil, err
			}
			return NewString(s), nil
		}
		var names []string
		for p.Peek().Type == scanner.TokenIdent {
			names = append(names, p.Next().Value)
		}
		if len(names) == 0 {
			return nil, p.Errorf("expected font family name")
		}
		return NewString(strings.Join(names, " ")), nil
	})
}

func parseKeyBindings(p *Parser) (Value, error) {
	if p.TryIdent("none") {
		return NewKeyBindings(), nil
	}
	var sets []string
	for {
		name, err := p.Ident()
		if err != nil {
			return nil, err
		}
		sets = append(sets, name)
		if !p.TryChar(',') {
			break
		}
	}
	return NewKeyBindings(sets...), nil
}

// --- Timing functions ------------------------------------------------------

// ParseTimingFunction reads a timing keyword, cubic-bezier() or steps().
func ParseTimingFunction(p *Parser) (*TimingFunction, error) {
	if t := p.Peek(); t.Type == scanner.TokenIdent {
		if tf, ok := TimingKeyword(strings.ToLower(t.Value)); ok {
			p.Next()
			return tf, nil
		}
		return nil, p.Errorf("unknown timing function '%s'", t.Value)
	}
	name, ok := p.Function()
	if !ok {
		return nil, p.Errorf("expected timing function, found %s", describe(p.Peek()))
	}
	switch name {
	case "cubic-bezier":
		var args [4]float64
		for i := range args {
			if i > 0 {
				if err := p.ExpectChar(','); err != nil {
					return nil, err
				}
			}
			f, err := p.Number()
			if err != nil {
				return nil, err
			}
			args[i] = f
		}
		if err := p.ExpectChar(')'); err != nil {
			return nil, err
		}
		if args[0] < 0 || args[0] > 1 || args[2] < 0 || args[2] > 1 {
			return nil, p.Errorf("cubic-bezier x values must be in [0,1]")
		}
		return NewCubicBezier(args[0], args[1], args[2], args[3]), nil
	case "steps":
		n, err := p.Number()
		if err != nil {
			return nil, err
		}
		if n < 1 || n != float64(int(n)) {
			return nil, p.Errorf("steps() needs a positive integer")
		}
		start := false
		if p.TryChar(',') {
			switch {
			case p.TryIdent("start"):
				start = true
			case p.TryIdent("end"):
			default:
				return nil, p.Errorf("expected start or end")
			}
		}
		if err := p.ExpectChar(')'); err != nil {
			return nil, err
		}
		return NewSteps(int(n), start), nil
	}
	return nil, p.Errorf("unknown timing function %s()", name)
}

func parseTimingValue(p *Parser) (Value, error) {
	tf, err := ParseTimingFunction(p)
	if err != nil {
		return nil, err
	}
	return tf, nil
}

// --- Images ----------------------------------------------------------------

// ParseImage reads none, url(…), -ctk-icontheme(…) or cross-fade(…).
func ParseImage(p *Parser) (Value, error) {
	if p.TryIdent("none") {
		return NoneImage(), nil
	}
	t := p.Peek()
	if t.Type == scanner.TokenURI {
		p.Next()
		u := strings.TrimSpace(t.Value[4 : len(t.Value)-1])
		if len(u) >= 2 && (u[0] == '"' || u[0] == '\'') {
			u = unquote(u)
		}
		return NewImageURL(u), nil
	}
	name, ok := p.Function()
	if !ok {
		return nil, p.Errorf("expected image, found %s", describe(t))
	}
	switch name {
	case "-ctk-icontheme":
		s, err := p.String()
		if err != nil {
			return nil, err
		}
		if err = p.ExpectChar(')'); err != nil {
			return nil, err
		}
		return NewIconThemeImage(s), nil
	case "cross-fade":
		progress := 0.5
		n, ok, err := p.tryNumber()
		if err != nil {
			return nil, err
		}
		if ok {
			if n.unit != "%" || n.v < 0 || n.v > 100 {
				return nil, p.Errorf("cross-fade progress must be a percentage")
			}
			progress = n.v / 100
			if err = p.ExpectChar(','); err != nil {
				return nil, err
			}
		}
		start, err := ParseImage(p)
		if err != nil {
			return nil, err
		}
		if err = p.ExpectChar(','); err != nil {
			Unref(start)
			return nil, err
		}
		end, err := ParseImage(p)
		if err != nil {
			Unref(start)
			return nil, err
		}
		if err = p.ExpectChar(')'); err != nil {
			Unref(start)
			Unref(end)
			return nil, err
		}
		return NewCrossFade(progress, start, end), nil
	}
	return nil, p.Errorf("unknown image function %s()", name)
}

func parseImageValue(p *Parser) (Value, error) {
	return ParseImage(p)
}

func parseBackgroundSize(p *Parser) (Value, error) {
	for _, kw := range []string{"cover", "contain"} {
		if p.TryIdent(kw) {
			return NewIdent(kw), nil
		}
	}
	x, err := parseSizeComponent(p)
	if err != nil {
		return nil, err
	}
	if !hasComponent(p) {
		return x, nil
	}
	y, err := parseSizeComponent(p)
	if err != nil {
		Unref(x)
		return nil, err
	}
	return NewPair(x, y), nil
}

func parseSizeComponent(p *Parser) (Value, error) {
	if p.TryIdent("auto") {
		return NewIdent("auto"), nil
	}
	l, err := ParseLength(p, true)
	if err != nil {
		return nil, err
	}
	if l.v < 0 {
		Unref(l)
		return nil, p.Errorf("negative background size")
	}
	return l, nil
}

// hasComponent is true if another space separated component follows
// within the current list element.
func hasComponent(p *Parser) bool {
	t := p.Peek()
	return t.Type != scanner.TokenEOF && !(t.Type == scanner.TokenChar && t.Value == ",")
}

var positionKeywords = map[string]float64{
	"left": 0, "top": 0, "center": 50, "right": 100, "bottom": 100,
}

type positionAxis int

const (
	eitherAxis positionAxis = iota
	horizontalAxis
	verticalAxis
)

func parsePositionComponent(p *Parser) (*Length, positionAxis, error) {
	if t := p.Peek(); t.Type == scanner.TokenIdent {
		name := strings.ToLower(t.Value)
		if pc, ok := positionKeywords[name]; ok {
			p.Next()
			axis := eitherAxis
			switch name {
			case "left", "right":
				axis = horizontalAxis
			case "top", "bottom":
				axis = verticalAxis
			}
			return NewLength(pc, Percent), axis, nil
		}
	}
	l, err := ParseLength(p, true)
	return l, eitherAxis, err
}

// parseBackgroundPosition reads one or two position components. A single
// horizontal component stays a plain length; everything else becomes a
// pair of horizontal and vertical position.
func parseBackgroundPosition(p *Parser) (Value, error) {
	a, axisA, err := parsePositionComponent(p)
	if err != nil {
		return nil, err
	}
	if !hasComponent(p) {
		if axisA == verticalAxis {
			return NewPair(NewLength(50, Percent), a), nil
		}
		return a, nil
	}
	b, axisB, err := parsePositionComponent(p)
	if err != nil {
		Unref(a)
		return nil, err
	}
	if axisA == axisB && axisA != eitherAxis {
		Unref(a)
		Unref(b)
		return nil, p.Errorf("both position components on the same axis")
	}
	if axisA == verticalAxis || axisB == horizontalAxis {
		a, b = b, a
	}
	return NewPair(a, b), nil
}

// --- Shadows ---------------------------------------------------------------

// ParseShadows reads 'none' or a comma separated list of shadow layers.
func ParseShadows(p *Parser) (Value, error) {
	if p.TryIdent("none") {
		return NoneShadow(), nil
	}
	var layers []ShadowLayer
	release := func() {
		for _, l := range layers {
			releaseLayer(l)
		}
	}
	for {
		l, err := parseShadowLayer(p)
		if err != nil {
			release()
			return nil, err
		}
		layers = append(layers, l)
		if !p.TryChar(',') {
			break
		}
	}
	return NewShadow(layers...), nil
}

func parseShadowValue(p *Parser) (Value, error) {
	return ParseShadows(p)
}

func parseShadowLayer(p *Parser) (ShadowLayer, error) {
	var l ShadowLayer
	var lengths []Value
	fail := func(err error) (ShadowLayer, error) {
		releaseAll(lengths)
		Unref(l.Color)
		return ShadowLayer{}, err
	}
	for {
		t := p.Peek()
		switch {
		case t.Type == scanner.TokenIdent && strings.EqualFold(t.Value, "inset"):
			if l.Inset {
				return fail(p.Errorf("duplicate inset"))
			}
			p.Next()
			l.Inset = true
			continue
		case t.Type == scanner.TokenNumber || t.Type == scanner.TokenDimension ||
			(t.Type == scanner.TokenChar && (t.Value == "-" || t.Value == "+")):
			if len(lengths) == 4 {
				return fail(p.Errorf("too many lengths in shadow"))
			}
			length, err := ParseLength(p, false)
			if err != nil {
				return fail(err)
			}
			lengths = append(lengths, length)
			continue
		case t.Type == scanner.TokenEOF || (t.Type == scanner.TokenChar && t.Value == ","):
		default:
			if l.Color != nil {
				return fail(p.Errorf("unexpected %s in shadow", describe(t)))
			}
			c, err := ParseColor(p)
			if err != nil {
				return fail(err)
			}
			l.Color = c
			continue
		}
		break
	}
	if len(lengths) < 2 {
		return fail(p.Errorf("shadow needs horizontal and vertical offsets"))
	}
	for len(lengths) < 4 {
		lengths = append(lengths, NewLength(0, PX))
	}
	if l.Color == nil {
		l.Color = NewCurrentColor()
	}
	l.X, l.Y, l.Blur, l.Spread = lengths[0], lengths[1], lengths[2], lengths[3]
	return l, nil
}

// --- Generic values --------------------------------------------------------

// ParseGeneric reads a value without knowing its property: a number or
// length, a color, a string or an identifier. Comma separated lists
// become arrays.
func ParseGeneric(p *Parser) (Value, error) {
	v, err := ParseArray(p, parseGenericOne)
	if err != nil {
		return nil, err
	}
	if a := v.(*Array); a.Len() == 1 {
		single := Ref(a.Nth(0))
		Unref(a)
		return single, nil
	}
	return v, nil
}

func parseGenericOne(p *Parser) (Value, error) {
	t := p.Peek()
	switch t.Type {
	case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension, scanner.TokenChar:
		n, ok, err := p.tryNumber()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.Errorf("unexpected %s", describe(t))
		}
		if n.unit == "" {
			if n.v == float64(int(n.v)) {
				return NewInteger(int(n.v)), nil
			}
			return NewNumber(n.v), nil
		}
		unit, ok := UnitFromString(n.unit)
		if !ok {
			return nil, p.Errorf("unknown unit '%s'", n.unit)
		}
		return NewLength(n.v, unit), nil
	case scanner.TokenString:
		return ParseString(p)
	case scanner.TokenHash, scanner.TokenAtKeyword, scanner.TokenFunction:
		return ParseColor(p)
	case scanner.TokenIdent:
		if _, ok := ColorByName(t.Value); ok || strings.EqualFold(t.Value, "currentColor") {
			return ParseColor(p)
		}
		p.Next()
		return NewIdent(t.Value), nil
	}
	return nil, p.Errorf("unexpected %s", describe(t))
}
