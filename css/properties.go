package css

// Registered properties, in computation order.
const (
	PropertyColor PropertyID = iota
	PropertyDPI
	PropertyFontSize
	PropertyBackgroundColor
	PropertyFontFamily
	PropertyFontStyle
	PropertyFontWeight
	PropertyLetterSpacing
	PropertyTextShadow
	PropertyBoxShadow
	PropertyMarginTop
	PropertyMarginLeft
	PropertyMarginBottom
	PropertyMarginRight
	PropertyPaddingTop
	PropertyPaddingLeft
	PropertyPaddingBottom
	PropertyPaddingRight
	PropertyBorderTopStyle
	PropertyBorderTopWidth
	PropertyBorderLeftStyle
	PropertyBorderLeftWidth
	PropertyBorderBottomStyle
	PropertyBorderBottomWidth
	PropertyBorderRightStyle
	PropertyBorderRightWidth
	PropertyBorderTopLeftRadius
	PropertyBorderTopRightRadius
	PropertyBorderBottomRightRadius
	PropertyBorderBottomLeftRadius
	PropertyOutlineStyle
	PropertyOutlineWidth
	PropertyOutlineOffset
	PropertyOutlineTopLeftRadius
	PropertyOutlineTopRightRadius
	PropertyOutlineBottomRightRadius
	PropertyOutlineBottomLeftRadius
	PropertyBackgroundClip
	PropertyBackgroundOrigin
	PropertyBackgroundSize
	PropertyBackgroundPosition
	PropertyBorderTopColor
	PropertyBorderRightColor
	PropertyBorderBottomColor
	PropertyBorderLeftColor
	PropertyOutlineColor
	PropertyBackgroundRepeat
	PropertyBackgroundImage
	PropertyBackgroundBlendMode
	PropertyBorderImageSource
	PropertyIconSource
	PropertyIconShadow
	PropertyIconStyle
	PropertyMinWidth
	PropertyMinHeight
	PropertyTransitionProperty
	PropertyTransitionDuration
	PropertyTransitionTimingFunction
	PropertyTransitionDelay
	PropertyAnimationName
	PropertyAnimationDuration
	PropertyAnimationTimingFunction
	PropertyAnimationIterationCount
	PropertyAnimationDirection
	PropertyAnimationPlayState
	PropertyAnimationDelay
	PropertyAnimationFillMode
	PropertyOpacity
	PropertyKeyBindings
	PropertyCaretColor
	PropertySecondaryCaretColor
)

type propFlags uint8

const (
	inherited propFlags = 1 << iota
	animated
)

func prop(id PropertyID, name string, flags propFlags, tc TransitionCategory, affects AffectsMask,
	parse func(*Parser) (Value, error), initial Value, aliases ...string) *Property {
	return &Property{
		ID:         id,
		Name:       name,
		Inherited:  flags&inherited != 0,
		Animated:   flags&animated != 0,
		Transition: tc,
		Affects:    affects,
		Initial:    initial,
		parse:      parse,
		aliases:    aliases,
	}
}

func px(v float64) Value { return NewLength(v, PX) }

func zeroRadius() Value { return NewArray(px(0), px(0)) }

func propertyTable() []*Property {
	const (
		size   = AffectsSize
		border = AffectsBorder
		bg     = AffectsBackground
		ol     = AffectsOutline | AffectsClip
		none   = TransitionNone
	)
	icon := AffectsIcon | AffectsSymbolicIcon
	text := AffectsText | AffectsTextAttrs
	font := AffectsFont | AffectsText
	return []*Property{
		prop(PropertyColor, "color", inherited|animated, none,
			AffectsForeground|AffectsText|AffectsSymbolicIcon, parseColorValue, NewRGBA(RGBA{1, 1, 1, 1})),
		prop(PropertyDPI, "-ctk-dpi", inherited|animated, none,
			font|AffectsSize, parsePositiveNumber, NewNumber(96)),
		prop(PropertyFontSize, "font-size", inherited|animated, none,
			font|AffectsSize, parseFontSize, px(defaultFontSize)),
		prop(PropertyBackgroundColor, "background-color", animated, none,
			bg, parseColorValue, NewRGBA(Transparent)),
		prop(PropertyFontFamily, "font-family", inherited, TransitionDiscrete,
			font, parseFontFamily, NewArray(NewString("Sans"))),
		prop(PropertyFontStyle, "font-style", inherited, none,
			font, enumParser(FontStyles), FontStyles.Value(0)),
		prop(PropertyFontWeight, "font-weight", inherited|animated, none,
			font, parseFontWeight, NewNumber(400)),
		prop(PropertyLetterSpacing, "letter-spacing", inherited|animated, none,
			text, parseLengthValue, px(0)),
		prop(PropertyTextShadow, "text-shadow", inherited|animated, none,
			AffectsText|AffectsClip, parseShadowValue, NoneShadow()),
		prop(PropertyBoxShadow, "box-shadow", animated, none,
			bg|AffectsClip, parseShadowValue, NoneShadow()),
		prop(PropertyMarginTop, "margin-top", animated, none, size, parseLengthValue, px(0)),
		prop(PropertyMarginLeft, "margin-left", animated, none, size, parseLengthValue, px(0)),
		prop(PropertyMarginBottom, "margin-bottom", animated, none, size, parseLengthValue, px(0)),
		prop(PropertyMarginRight, "margin-right", animated, none, size, parseLengthValue, px(0)),
		prop(PropertyPaddingTop, "padding-top", animated, none, size, parseNonNegativeLength, px(0)),
		prop(PropertyPaddingLeft, "padding-left", animated, none, size, parseNonNegativeLength, px(0)),
		prop(PropertyPaddingBottom, "padding-bottom", animated, none, size, parseNonNegativeLength, px(0)),
		prop(PropertyPaddingRight, "padding-right", animated, none, size, parseNonNegativeLength, px(0)),
		prop(PropertyBorderTopStyle, "border-top-style", 0, none, border, enumParser(BorderStyles), BorderStyles.Value(0)),
		prop(PropertyBorderTopWidth, "border-top-width", animated, none, border|size, parseBorderWidth, px(0)),
		prop(PropertyBorderLeftStyle, "border-left-style", 0, none, border, enumParser(BorderStyles), BorderStyles.Value(0)),
		prop(PropertyBorderLeftWidth, "border-left-width", animated, none, border|size, parseBorderWidth, px(0)),
		prop(PropertyBorderBottomStyle, "border-bottom-style", 0, none, border, enumParser(BorderStyles), BorderStyles.Value(0)),
		prop(PropertyBorderBottomWidth, "border-bottom-width", animated, none, border|size, parseBorderWidth, px(0)),
		prop(PropertyBorderRightStyle, "border-right-style", 0, none, border, enumParser(BorderStyles), BorderStyles.Value(0)),
		prop(PropertyBorderRightWidth, "border-right-width", animated, none, border|size, parseBorderWidth, px(0)),
		prop(PropertyBorderTopLeftRadius, "border-top-left-radius", animated, TransitionRepeat,
			bg|border, parseCornerRadius, zeroRadius()),
		prop(PropertyBorderTopRightRadius, "border-top-right-radius", animated, TransitionRepeat,
			bg|border, parseCornerRadius, zeroRadius()),
		prop(PropertyBorderBottomRightRadius, "border-bottom-right-radius", animated, TransitionRepeat,
			bg|border, parseCornerRadius, zeroRadius()),
		prop(PropertyBorderBottomLeftRadius, "border-bottom-left-radius", animated, TransitionRepeat,
			bg|border, parseCornerRadius, zeroRadius()),
		prop(PropertyOutlineStyle, "outline-style", 0, none, ol, enumParser(BorderStyles), BorderStyles.Value(0)),
		prop(PropertyOutlineWidth, "outline-width", animated, none, ol, parseBorderWidth, px(0)),
		prop(PropertyOutlineOffset, "outline-offset", animated, none, ol, parseLengthValue, px(0)),
		prop(PropertyOutlineTopLeftRadius, "-ctk-outline-top-left-radius", animated, TransitionRepeat,
			AffectsOutline, parseCornerRadius, zeroRadius(), "outline-top-left-radius"),
		prop(PropertyOutlineTopRightRadius, "-ctk-outline-top-right-radius", animated, TransitionRepeat,
			AffectsOutline, parseCornerRadius, zeroRadius(), "outline-top-right-radius"),
		prop(PropertyOutlineBottomRightRadius, "-ctk-outline-bottom-right-radius", animated, TransitionRepeat,
			AffectsOutline, parseCornerRadius, zeroRadius(), "outline-bottom-right-radius"),
		prop(PropertyOutlineBottomLeftRadius, "-ctk-outline-bottom-left-radius", animated, TransitionRepeat,
			AffectsOutline, parseCornerRadius, zeroRadius(), "outline-bottom-left-radius"),
		prop(PropertyBackgroundClip, "background-clip", 0, TransitionRepeat,
			bg, arrayOf(enumParser(Areas)), NewArray(Areas.Value(0))),
		prop(PropertyBackgroundOrigin, "background-origin", 0, TransitionRepeat,
			bg, arrayOf(enumParser(Areas)), NewArray(Areas.Value(1))),
		prop(PropertyBackgroundSize, "background-size", animated, TransitionRepeat,
			bg, arrayOf(parseBackgroundSize), NewArray(NewIdent("auto"))),
		prop(PropertyBackgroundPosition, "background-position", animated, TransitionRepeat,
			bg, arrayOf(parseBackgroundPosition), NewArray(NewLength(0, Percent))),
		prop(PropertyBorderTopColor, "border-top-color", animated, none, border, parseColorValue, NewCurrentColor()),
		prop(PropertyBorderRightColor, "border-right-color", animated, none, border, parseColorValue, NewCurrentColor()),
		prop(PropertyBorderBottomColor, "border-bottom-color", animated, none, border, parseColorValue, NewCurrentColor()),
		prop(PropertyBorderLeftColor, "border-left-color", animated, none, border, parseColorValue, NewCurrentColor()),
		prop(PropertyOutlineColor, "outline-color", animated, none, AffectsOutline, parseColorValue, NewCurrentColor()),
		prop(PropertyBackgroundRepeat, "background-repeat", 0, TransitionRepeat,
			bg, arrayOf(enumParser(RepeatStyles)), NewArray(RepeatStyles.Value(0))),
		prop(PropertyBackgroundImage, "background-image", animated, TransitionExtend,
			bg, arrayOf(parseImageValue), NewArray(NoneImage())),
		prop(PropertyBackgroundBlendMode, "background-blend-mode", 0, TransitionRepeat,
			bg, arrayOf(enumParser(BlendModes)), NewArray(BlendModes.Value(0))),
		prop(PropertyBorderImageSource, "border-image-source", animated, none,
			border, parseImageValue, NoneImage()),
		prop(PropertyIconSource, "-ctk-icon-source", animated, none,
			icon, parseImageValue, NewIconThemeImage("image-missing")),
		prop(PropertyIconShadow, "-ctk-icon-shadow", inherited|animated, none,
			icon|AffectsClip, parseShadowValue, NoneShadow()),
		prop(PropertyIconStyle, "-ctk-icon-style", inherited, none,
			icon, enumParser(IconStyles), IconStyles.Value(0)),
		prop(PropertyMinWidth, "min-width", animated, none, size, parseNonNegativeLength, px(0)),
		prop(PropertyMinHeight, "min-height", animated, none, size, parseNonNegativeLength, px(0)),
		prop(PropertyTransitionProperty, "transition-property", 0, TransitionDiscrete,
			0, arrayOf(parseIdentValue), NewArray(NewIdent("all"))),
		prop(PropertyTransitionDuration, "transition-duration", 0, TransitionDiscrete,
			0, arrayOf(parseTime), NewArray(NewLength(0, S))),
		prop(PropertyTransitionTimingFunction, "transition-timing-function", 0, TransitionDiscrete,
			0, arrayOf(parseTimingValue), NewArray(timingKeywords[1].tf)),
		prop(PropertyTransitionDelay, "transition-delay", 0, TransitionDiscrete,
			0, arrayOf(parseTime), NewArray(NewLength(0, S))),
		prop(PropertyAnimationName, "animation-name", 0, TransitionDiscrete,
			0, arrayOf(parseIdentValue), NewArray(NewIdent("none"))),
		prop(PropertyAnimationDuration, "animation-duration", 0, TransitionDiscrete,
			0, arrayOf(parseTime), NewArray(NewLength(0, S))),
		prop(PropertyAnimationTimingFunction, "animation-timing-function", 0, TransitionDiscrete,
			0, arrayOf(parseTimingValue), NewArray(timingKeywords[1].tf)),
		prop(PropertyAnimationIterationCount, "animation-iteration-count", 0, TransitionDiscrete,
			0, arrayOf(parseIterationCount), NewArray(NewNumber(1))),
		prop(PropertyAnimationDirection, "animation-direction", 0, TransitionDiscrete,
			0, arrayOf(enumParser(Directions)), NewArray(Directions.Value(0))),
		prop(PropertyAnimationPlayState, "animation-play-state", 0, TransitionDiscrete,
			0, arrayOf(enumParser(PlayStates)), NewArray(PlayStates.Value(0))),
		prop(PropertyAnimationDelay, "animation-delay", 0, TransitionDiscrete,
			0, arrayOf(parseTime), NewArray(NewLength(0, S))),
		prop(PropertyAnimationFillMode, "animation-fill-mode", 0, TransitionDiscrete,
			0, arrayOf(enumParser(FillModes)), NewArray(FillModes.Value(0))),
		prop(PropertyOpacity, "opacity", animated, none,
			AffectsPostEffect, parseOpacity, NewNumber(1)),
		prop(PropertyKeyBindings, "-ctk-key-bindings", 0, TransitionDiscrete,
			0, parseKeyBindings, NewKeyBindings(), "ctk-key-bindings"),
		prop(PropertyCaretColor, "caret-color", inherited|animated, none,
			AffectsText, parseColorValue, NewCurrentColor()),
		prop(PropertySecondaryCaretColor, "-ctk-secondary-caret-color", inherited|animated, none,
			AffectsText, parseColorValue, NewCurrentColor()),
	}
}
