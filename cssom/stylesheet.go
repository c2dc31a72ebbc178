package cssom

import "github.com/npillmayer/scss/selector"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients which convert rule trees to CSS will have to provide a concrete
// implementation of this interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, at-rule bodies flattened
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}

// RulesFor returns the rules of sheet whose selector list contains a selector
// equal to sel. Selectors are compared by their canonical text, so
// whitespace differences do not matter.
func RulesFor(sheet StyleSheet, sel string) []Rule {
	target, err := selector.Parse(sel)
	if err != nil || len(target) != 1 {
		return nil
	}
	var rules []Rule
	for _, r := range sheet.Rules() {
		list, err := selector.Parse(r.Selector())
		if err != nil {
			continue
		}
		if list.Contains(target[0]) {
			rules = append(rules, r)
		}
	}
	return rules
}
