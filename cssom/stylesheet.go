package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// style providers, we introduce an interface for CSS stylesheets.
// Clients will have to provide a concrete implementation of this
// interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, in source order
}

// RuleKind discriminates qualified rules from at-rules.
type RuleKind int

// Kinds of rules.
const (
	QualifiedRule RuleKind = iota // selectors { declarations }
	AtRule                        // @name prelude ; or @name prelude { … }
)

func (k RuleKind) String() string {
	if k == AtRule {
		return "at-rule"
	}
	return "qualified-rule"
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Kind() RuleKind
	Name() string                // at-rule name without '@', empty for qualified rules
	Prelude() string             // the prelude / selectors of the rule
	Selectors() []string         // comma-separated parts of the prelude
	Declarations() []Declaration // declarations in source order
	Rules() []Rule               // nested rules, e.g. the frames of @keyframes
}

// Declaration is a single property declaration of a rule.
type Declaration struct {
	Property  string // property key, e.g. "margin-top"
	Value     string // property value, e.g. "15px"
	Important bool   // is property key marked as important?
}

func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important"
	}
	return d.Property + ": " + d.Value
}
