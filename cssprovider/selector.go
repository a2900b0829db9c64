package cssprovider

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/csscascade/cascade"
	"golang.org/x/net/html"
)

// statePseudoClasses maps pseudo-classes to widget state flags. cascadia
// would treat most of them as never matching, so they are removed from a
// selector before compiling and checked against the matcher's state.
var statePseudoClasses = map[string]cascade.StateFlags{
	"active":        cascade.StateActive,
	"hover":         cascade.StatePrelight,
	"selected":      cascade.StateSelected,
	"disabled":      cascade.StateInsensitive,
	"indeterminate": cascade.StateInconsistent,
	"focus":         cascade.StateFocused,
	"backdrop":      cascade.StateBackdrop,
	"checked":       cascade.StateChecked,
}

type selector struct {
	text        string
	sel         cascadia.Sel
	state       cascade.StateFlags
	specificity cascadia.Specificity
}

// compileSelector compiles a single (non-group) selector.
func compileSelector(text string) (*selector, error) {
	stripped, state, n := stripStates(text)
	sel, err := cascadia.Parse(stripped)
	if err != nil {
		return nil, err
	}
	spec := sel.Specificity().Add(cascadia.Specificity{0, n, 0})
	return &selector{text: text, sel: sel, state: state, specificity: spec}, nil
}

func (s *selector) match(n *html.Node, state cascade.StateFlags) bool {
	return state&s.state == s.state && s.sel.Match(n)
}

// stripStates removes state pseudo-classes from a selector. It returns the
// remaining selector, the required state flags and the number of removed
// pseudo-classes. A compound selector left empty becomes '*'.
func stripStates(text string) (string, cascade.StateFlags, int) {
	var b strings.Builder
	var state cascade.StateFlags
	count := 0
	for i := 0; i < len(text); {
		c := text[i]
		if c == '[' { // attribute values may contain colons
			j := strings.IndexByte(text[i:], ']')
			if j < 0 {
				j = len(text) - i - 1
			}
			b.WriteString(text[i : i+j+1])
			i += j + 1
			continue
		}
		if c != ':' || (i+1 < len(text) && text[i+1] == ':') {
			if c == ':' { // pseudo-element, copy both colons
				b.WriteString("::")
				i += 2
				continue
			}
			b.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(text) && isNameChar(text[j]) {
			j++
		}
		flag, ok := statePseudoClasses[strings.ToLower(text[i+1:j])]
		if !ok || (j < len(text) && text[j] == '(') {
			b.WriteString(text[i:j])
			i = j
			continue
		}
		state |= flag
		count++
		if atCompoundStart(b.String()) {
			b.WriteByte('*')
		}
		i = j
	}
	return b.String(), state, count
}

func atCompoundStart(s string) bool {
	if s == "" {
		return true
	}
	return strings.IndexByte(" \t\n>+~,", s[len(s)-1]) >= 0
}

func isNameChar(c byte) bool {
	return c == '-' || c == '_' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
