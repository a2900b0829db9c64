/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/csscascade/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cascade.provider'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.provider")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("style sheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() { // foreign implementation: copy rule by rule
		sheet.css.Rules = append(sheet.css.Rules, unwrap(r))
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return wrapRules(sheet.css.Rules)
}

func wrapRules(rs []*css.Rule) []cssom.Rule {
	rules := make([]cssom.Rule, len(rs))
	for i := range rs {
		rules[i] = &Rule{r: rs[i]}
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	r *css.Rule
}

// Kind tells qualified rules from at-rules.
func (r *Rule) Kind() cssom.RuleKind {
	if r.Rule().Kind == css.AtRule {
		return cssom.AtRule
	}
	return cssom.QualifiedRule
}

// Name returns the name of an at-rule without the leading '@'.
func (r *Rule) Name() string {
	return strings.TrimPrefix(r.Rule().Name, "@")
}

// Prelude returns the prelude / selectors of the rule.
func (r *Rule) Prelude() string {
	return r.Rule().Prelude
}

// Selectors returns the comma-separated selectors of a qualified rule.
func (r *Rule) Selectors() []string {
	return r.Rule().Selectors
}

// Declarations returns the declarations of the rule in source order.
func (r *Rule) Declarations() []cssom.Declaration {
	decl := r.Rule().Declarations
	decls := make([]cssom.Declaration, 0, len(decl))
	for _, d := range decl {
		decls = append(decls, cssom.Declaration{
			Property:  d.Property,
			Value:     d.Value,
			Important: d.Important,
		})
	}
	return decls
}

// Rules returns the rules nested in an at-rule's block.
func (r *Rule) Rules() []cssom.Rule {
	return wrapRules(r.Rule().Rules)
}

// Rule returns the wrapped douceur rule.
func (r *Rule) Rule() *css.Rule {
	return r.r
}

var _ cssom.Rule = &Rule{}

func unwrap(r cssom.Rule) *css.Rule {
	if dr, ok := r.(*Rule); ok {
		return dr.Rule()
	}
	kind := css.QualifiedRule
	name := ""
	if r.Kind() == cssom.AtRule {
		kind, name = css.AtRule, "@"+r.Name()
	}
	rule := css.NewRule(kind)
	rule.Name = name
	rule.Prelude = r.Prelude()
	rule.Selectors = r.Selectors()
	for _, d := range r.Declarations() {
		rule.Declarations = append(rule.Declarations, &css.Declaration{
			Property:  d.Property,
			Value:     d.Value,
			Important: d.Important,
		})
	}
	for _, nested := range r.Rules() {
		rule.Rules = append(rule.Rules, unwrap(nested))
	}
	return rule
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which fail to parse are
// skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Errorf("skipping <style> element: %v", err)
			continue
		}
		css = append(css, c)
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
