/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It converts between rule trees (package ast) and the stylesheets of
github.com/aymerick/douceur: FromStylesheet imports an already parsed douceur
stylesheet into a rule tree, FromTree exports a resolved rule tree as a douceur
stylesheet, which is wrapped as a cssom.StyleSheet and may be printed as CSS.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/scss/ast"
	"github.com/npillmayer/scss/cssom"
	"github.com/npillmayer/scss/selector"
)

// tracer traces with key 'scss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("scss.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Stylesheet returns the wrapped douceur stylesheet.
func (sheet *CSSStyles) Stylesheet() *css.Stylesheet {
	return &sheet.css
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
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet, including the ones
// nested in at-rules like "@media".
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	var rules []cssom.Rule
	var collect func([]*css.Rule)
	collect = func(rs []*css.Rule) {
		for _, r := range rs {
			if r.Kind == css.QualifiedRule {
				rules = append(rules, Rule(*r))
			}
			collect(r.Rules)
		}
	}
	collect(sheet.css.Rules)
	return rules
}

// String returns the stylesheet as CSS text.
func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// --- Import ----------------------------------------------------------------

// FromStylesheet creates a rule tree from a douceur stylesheet. Qualified rules
// become rule blocks, at-rules become at-rule nodes. As douceur has no notion
// of SCSS, extend directives are recognized only in the form of at-rules named
// "@extend", which clients may insert into a parsed stylesheet.
func FromStylesheet(sheet *css.Stylesheet) (*ast.StyleNode, error) {
	root := ast.NewStylesheet()
	if sheet == nil {
		return root, nil
	}
	for _, r := range sheet.Rules {
		n, err := fromRule(r)
		if err != nil {
			return nil, err
		}
		root.Add(n)
	}
	tracer().Debugf("imported %d top-level rule(s)", root.ChildCount())
	return root, nil
}

func fromRule(r *css.Rule) (*ast.StyleNode, error) {
	var node *ast.StyleNode
	switch {
	case r.Kind == css.QualifiedRule:
		text := r.Prelude
		if len(r.Selectors) > 0 {
			text = strings.Join(r.Selectors, ", ")
		}
		sel, err := selector.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("importing rule %q: %w", text, err)
		}
		node = ast.NewRuleBlock(sel)
	case r.Name == "@extend":
		prelude := strings.TrimSpace(r.Prelude)
		optional := strings.HasSuffix(prelude, "!optional")
		prelude = strings.TrimSpace(strings.TrimSuffix(prelude, "!optional"))
		sel, err := selector.Parse(prelude)
		if err != nil {
			return nil, fmt.Errorf("importing @extend %q: %w", prelude, err)
		}
		return ast.NewExtend(sel, optional), nil
	default:
		node = ast.NewAtRule(r.Name, r.Prelude)
	}
	for _, d := range r.Declarations {
		node.Add(ast.NewDeclaration(d.Property, d.Value, d.Important))
	}
	for _, sub := range r.Rules {
		n, err := fromRule(sub)
		if err != nil {
			return nil, err
		}
		node.Add(n)
	}
	return node, nil
}

// --- Export ----------------------------------------------------------------

// FromTree creates a douceur stylesheet from a rule tree, usually after
// extend directives have been resolved.
//
// Rule blocks are exported as qualified rules. Selectors containing
// placeholders ("%name") are omitted, as are rule blocks left without
// selectors or declarations. Rule blocks nested in other rule blocks are
// exported as rules following their parent, with their own selectors.
// Remaining extend directives and comments are dropped.
func FromTree(root *ast.StyleNode) *CSSStyles {
	sheet := css.NewStylesheet()
	if root != nil {
		sheet.Rules = toRules(root.ChildNodes(), 0)
	}
	return Wrap(sheet)
}

func toRules(nodes []*ast.StyleNode, level int) []*css.Rule {
	var rules []*css.Rule
	for _, sn := range nodes {
		switch sn.Kind() {
		case ast.RuleBlockKind:
			rules = append(rules, qualifiedRules(sn, level)...)
		case ast.AtRuleKind:
			r := css.NewRule(css.AtRule)
			r.Name = "@" + sn.Keyword
			r.Prelude = sn.Prelude
			r.EmbedLevel = level
			r.Declarations = declarations(sn)
			r.Rules = toRules(sn.ChildNodes(), level+1)
			rules = append(rules, r)
		default:
			tracer().Debugf("not exporting %s", sn)
		}
	}
	return rules
}

func qualifiedRules(block *ast.StyleNode, level int) []*css.Rule {
	var rules []*css.Rule
	var visible []string
	for _, sel := range block.Selectors {
		if !sel.IsPlaceholder() {
			visible = append(visible, sel.String())
		}
	}
	decls := declarations(block)
	if len(visible) > 0 && len(decls) > 0 {
		r := css.NewRule(css.QualifiedRule)
		r.Selectors = visible
		r.Prelude = strings.Join(visible, ", ")
		r.Declarations = decls
		r.EmbedLevel = level
		rules = append(rules, r)
	}
	for _, ch := range block.ChildNodes() {
		if ch.IsRuleBlock() || ch.Kind() == ast.AtRuleKind {
			rules = append(rules, toRules([]*ast.StyleNode{ch}, level)...)
		}
	}
	return rules
}

func declarations(sn *ast.StyleNode) []*css.Declaration {
	var decls []*css.Declaration
	for _, ch := range sn.ChildNodes() {
		if ch.Kind() == ast.DeclarationKind {
			decls = append(decls, &css.Declaration{
				Property:  ch.Property,
				Value:     ch.Value,
				Important: ch.Important,
			})
		}
	}
	return decls
}
