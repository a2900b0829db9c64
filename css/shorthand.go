package css

import (
	"fmt"
	"strings"
)

// Declaration is a property name with its textual value.
type Declaration struct {
	Name  string
	Value string
}

// IsShorthand is true for property names which ExpandShorthand accepts.
func IsShorthand(name string) bool {
	_, ok := shorthands[strings.ToLower(name)]
	return ok
}

type shorthand struct {
	prefix, suffix string
	dirs           [4]string
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

var shorthands = map[string]shorthand{
	"margin":              {"margin", "", fourDirs},
	"padding":             {"padding", "", fourDirs},
	"border-color":        {"border", "color", fourDirs},
	"border-width":        {"border", "width", fourDirs},
	"border-style":        {"border", "style", fourDirs},
	"border-radius":       {"border", "radius", fourCorners},
	"outline-radius":      {"-ctk-outline", "radius", fourCorners},
	"-ctk-outline-radius": {"-ctk-outline", "radius", fourCorners},
}

// ExpandShorthand splits up a shorthand property into its longhands.
// Example:
//
//	ExpandShorthand("padding", "3px 5px")
//
// will return
//
//	padding-top    3px
//	padding-right  5px
//	padding-bottom 3px
//	padding-left   5px
//
// The CSS-wide keywords are copied to every longhand.
func ExpandShorthand(name, value string) ([]Declaration, error) {
	sh, ok := shorthands[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("not recognized as shorthand property: %s", name)
	}
	fields := splitFields(value)
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, &ParseError{Property: name, Msg: fmt.Sprintf("expecting 1-4 values, have %d", l)}
	}
	// top, right, bottom, left ← 1: a a a a, 2: a b a b, 3: a b c b, 4: a b c d
	pick := [4]int{0, 0, 0, 0}
	switch l {
	case 2:
		pick = [4]int{0, 1, 0, 1}
	case 3:
		pick = [4]int{0, 1, 2, 1}
	case 4:
		pick = [4]int{0, 1, 2, 3}
	}
	decls := make([]Declaration, 4)
	for i, dir := range sh.dirs {
		decls[i] = Declaration{Name: longhand(sh.prefix, sh.suffix, dir), Value: fields[pick[i]]}
	}
	return decls, nil
}

func longhand(pre, suf, dir string) string {
	if suf == "" {
		return pre + "-" + dir
	}
	return pre + "-" + dir + "-" + suf
}

// splitFields splits at whitespace outside of parentheses and quotes.
func splitFields(s string) []string {
	var fields []string
	depth, start := 0, -1
	var quote rune
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}
