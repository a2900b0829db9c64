package css

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ErrUnknownProperty is returned when parsing a declaration for a property
// name which is not registered.
var ErrUnknownProperty = errors.New("unknown property")

// ParseError describes a failure to parse a property value.
type ParseError struct {
	Property string
	Line     int
	Column   int
	Msg      string
	Err      error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Property != "" {
		b.WriteString(e.Property)
		b.WriteString(": ")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "%d:%d: ", e.Line, e.Column)
	}
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser reads CSS values from a token stream. Whitespace and comments are
// skipped.
type Parser struct {
	s        *scanner.Scanner
	tok      *scanner.Token
	property string
}

// NewParser creates a parser for text.
func NewParser(text string) *Parser {
	p := &Parser{s: scanner.New(text)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	for {
		p.tok = p.s.Next()
		if p.tok.Type != scanner.TokenS && p.tok.Type != scanner.TokenComment {
			return
		}
	}
}

// Peek returns the next token without consuming it.
func (p *Parser) Peek() *scanner.Token {
	return p.tok
}

// Next consumes and returns the next token. At the end of input it keeps
// returning the EOF token.
func (p *Parser) Next() *scanner.Token {
	t := p.tok
	if t.Type != scanner.TokenEOF && t.Type != scanner.TokenError {
		p.advance()
	}
	return t
}

// AtEOF is true if all input has been consumed.
func (p *Parser) AtEOF() bool {
	return p.tok.Type == scanner.TokenEOF
}

// Errorf creates a ParseError at the current position.
func (p *Parser) Errorf(format string, args ...interface{}) error {
	return &ParseError{
		Property: p.property,
		Line:     p.tok.Line,
		Column:   p.tok.Column,
		Msg:      fmt.Sprintf(format, args...),
	}
}

// TryChar consumes a delimiter character if it is next.
func (p *Parser) TryChar(c byte) bool {
	if p.tok.Type == scanner.TokenChar && p.tok.Value == string(c) {
		p.Next()
		return true
	}
	return false
}

// ExpectChar consumes a delimiter character or fails.
func (p *Parser) ExpectChar(c byte) error {
	if !p.TryChar(c) {
		return p.Errorf("expected '%c', found %s", c, describe(p.tok))
	}
	return nil
}

// TryIdent consumes an identifier matching name, ignoring case.
func (p *Parser) TryIdent(name string) bool {
	if p.tok.Type == scanner.TokenIdent && strings.EqualFold(p.tok.Value, name) {
		p.Next()
		return true
	}
	return false
}

// Ident consumes an identifier.
func (p *Parser) Ident() (string, error) {
	if p.tok.Type != scanner.TokenIdent {
		return "", p.Errorf("expected identifier, found %s", describe(p.tok))
	}
	return p.Next().Value, nil
}

// Function consumes a function token 'name(' and returns the lowercased
// name.
func (p *Parser) Function() (string, bool) {
	if p.tok.Type != scanner.TokenFunction {
		return "", false
	}
	v := p.Next().Value
	return strings.ToLower(strings.TrimSuffix(v, "(")), true
}

// number is a numeric token with an optional unit. Percentages carry the
// unit "%".
type number struct {
	v    float64
	unit string
}

// tryNumber reads an optionally signed number, percentage or dimension.
func (p *Parser) tryNumber() (number, bool, error) {
	sign := 1.0
	if p.tok.Type == scanner.TokenChar && (p.tok.Value == "-" || p.tok.Value == "+") {
		if p.tok.Value == "-" {
			sign = -1
		}
		p.Next()
		switch p.tok.Type {
		case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
		default:
			return number{}, false, p.Errorf("expected number after sign, found %s", describe(p.tok))
		}
	}
	var num, unit string
	switch p.tok.Type {
	case scanner.TokenNumber:
		num = p.tok.Value
	case scanner.TokenPercentage:
		num, unit = strings.TrimSuffix(p.tok.Value, "%"), "%"
	case scanner.TokenDimension:
		i := strings.IndexFunc(p.tok.Value, func(r rune) bool {
			return (r < '0' || r > '9') && r != '.'
		})
		num, unit = p.tok.Value[:i], strings.ToLower(p.tok.Value[i:])
	default:
		return number{}, false, nil
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return number{}, false, &ParseError{Property: p.property, Line: p.tok.Line,
			Column: p.tok.Column, Msg: "malformed number", Err: err}
	}
	p.Next()
	return number{v: sign * f, unit: unit}, true, nil
}

// Number reads a unitless number.
func (p *Parser) Number() (float64, error) {
	n, ok, err := p.tryNumber()
	if err != nil {
		return 0, err
	}
	if !ok || n.unit != "" {
		return 0, p.Errorf("expected number")
	}
	return n.v, nil
}

// String reads a quoted string.
func (p *Parser) String() (string, error) {
	if p.tok.Type != scanner.TokenString {
		return "", p.Errorf("expected string, found %s", describe(p.tok))
	}
	return unquote(p.Next().Value), nil
}

func describe(t *scanner.Token) string {
	switch t.Type {
	case scanner.TokenEOF:
		return "end of input"
	case scanner.TokenError:
		return "invalid input"
	}
	return strconv.Quote(t.Value)
}

// unquote strips the quotes of a string token and resolves escapes.
func unquote(s string) string {
	if len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		j := i
		for j < len(s) && j-i < 6 && isHex(s[j]) {
			j++
		}
		if j > i {
			r, _ := strconv.ParseUint(s[i:j], 16, 32)
			b.WriteRune(rune(r))
			if j < len(s) && s[j] == ' ' {
				j++
			}
			i = j - 1
			continue
		}
		if s[i] != '\n' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// --- Entry points ----------------------------------------------------------

// ParseValue parses text as a value of property id, including the CSS-wide
// keywords inherit, initial and unset. The complete input must be consumed.
func ParseValue(id PropertyID, text string) (Value, error) {
	prop := LookupProperty(id)
	p := NewParser(text)
	p.property = prop.Name
	var v Value
	switch {
	case p.TryIdent("inherit"):
		v = Inherit()
	case p.TryIdent("initial"):
		v = Initial()
	case p.TryIdent("unset"):
		v = Unset()
	default:
		var err error
		if v, err = prop.parse(p); err != nil {
			return nil, err
		}
	}
	if !p.AtEOF() {
		err := p.Errorf("junk at end of value: %s", describe(p.tok))
		Unref(v)
		return nil, err
	}
	return v, nil
}

// ParseDeclaration parses text as the value of the property named name.
func ParseDeclaration(name, text string) (PropertyID, Value, error) {
	prop, ok := PropertyByName(name)
	if !ok {
		return -1, nil, &ParseError{Property: name, Msg: "cannot parse declaration", Err: ErrUnknownProperty}
	}
	v, err := ParseValue(prop.ID, text)
	if err != nil {
		return -1, nil, err
	}
	return prop.ID, v, nil
}
