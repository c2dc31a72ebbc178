package selector

import (
	"strings"
)

// Kind is the kind of a simple selector.
type Kind uint8

// Kinds of simple selectors.
const (
	Type          Kind = iota // element type, e.g. "div"
	Universal                 // "*"
	Class                     // ".name"
	ID                        // "#name"
	Placeholder               // "%name", only exists to be extended
	Parent                    // "&", optionally with a suffix, e.g. "&-item"
	Attribute                 // "[name=value]"
	PseudoClass               // ":hover", ":not(.a)"
	PseudoElement             // "::before"
)

var kindNames = [...]string{"type", "universal", "class", "id", "placeholder",
	"parent", "attribute", "pseudo-class", "pseudo-element"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Simple is a simple selector. Name holds the identifier without its sigil;
// Arg holds the inside of brackets for attribute selectors and the argument of
// functional pseudo selectors.
type Simple struct {
	Kind Kind
	Name string
	Arg  string
}

// String returns the canonical text of a simple selector.
func (s Simple) String() string {
	switch s.Kind {
	case Type:
		return s.Name
	case Universal:
		return "*"
	case Class:
		return "." + s.Name
	case ID:
		return "#" + s.Name
	case Placeholder:
		return "%" + s.Name
	case Parent:
		return "&" + s.Name
	case Attribute:
		return "[" + s.Arg + "]"
	case PseudoClass, PseudoElement:
		var b strings.Builder
		b.WriteString(":")
		if s.Kind == PseudoElement {
			b.WriteString(":")
		}
		b.WriteString(s.Name)
		if s.Arg != "" {
			b.WriteString("(")
			b.WriteString(s.Arg)
			b.WriteString(")")
		}
		return b.String()
	}
	return ""
}

func (s Simple) isElement() bool {
	return s.Kind == Type || s.Kind == Universal
}

// Compound is a sequence of simple selectors not separated by a combinator,
// e.g. "a.link:hover".
type Compound []Simple

func (c Compound) String() string {
	var b strings.Builder
	for _, s := range c {
		b.WriteString(s.String())
	}
	return b.String()
}

func (c Compound) contains(s Simple) bool {
	for _, x := range c {
		if x == s {
			return true
		}
	}
	return false
}

// Contains is true if every simple selector of other is part of c as well.
func (c Compound) Contains(other Compound) bool {
	for _, s := range other {
		if !c.contains(s) {
			return false
		}
	}
	return true
}

// Equal is true if c and other consist of the same simple selectors,
// regardless of order.
func (c Compound) Equal(other Compound) bool {
	return len(c) == len(other) && c.Contains(other) && other.Contains(c)
}

func (c Compound) clone() Compound {
	if c == nil {
		return nil
	}
	cc := make(Compound, len(c))
	copy(cc, c)
	return cc
}

// Combinator relates a compound selector to the one before it.
type Combinator uint8

// Combinators. The first step of a selector always has combinator None.
const (
	None              Combinator = iota
	Descendant                   // "a b"
	Child                        // "a > b"
	NextSibling                  // "a + b"
	SubsequentSibling            // "a ~ b"
)

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return " > "
	case NextSibling:
		return " + "
	case SubsequentSibling:
		return " ~ "
	}
	return ""
}

// Step is a compound selector together with the combinator linking it to
// the preceding step.
type Step struct {
	Combinator Combinator
	Compound   Compound
}

// Selector is a complex selector, i.e. a chain of compound selectors, e.g.
// "nav > ul li.active".
type Selector []Step

// String returns the canonical text of a selector. Equal selectors always
// produce equal strings.
func (sel Selector) String() string {
	var b strings.Builder
	for i, step := range sel {
		if i > 0 {
			b.WriteString(step.Combinator.String())
		}
		b.WriteString(step.Compound.String())
	}
	return b.String()
}

// IsPlaceholder is true if sel contains a placeholder selector. Selectors
// with placeholders are never emitted to CSS.
func (sel Selector) IsPlaceholder() bool {
	for _, step := range sel {
		for _, s := range step.Compound {
			if s.Kind == Placeholder {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of sel.
func (sel Selector) Clone() Selector {
	if sel == nil {
		return nil
	}
	c := make(Selector, len(sel))
	for i, step := range sel {
		c[i] = Step{Combinator: step.Combinator, Compound: step.Compound.clone()}
	}
	return c
}

// List is a comma separated list of selectors, e.g. ".btn, .button".
type List []Selector

// Text returns the canonical serialization of a selector list. It is used
// as a key to match selector lists against each other.
func (l List) Text() string {
	texts := make([]string, len(l))
	for i, sel := range l {
		texts[i] = sel.String()
	}
	return strings.Join(texts, ", ")
}

func (l List) String() string {
	return l.Text()
}

// Contains is true if a selector with the same text as sel is part of l.
func (l List) Contains(sel Selector) bool {
	t := sel.String()
	for _, x := range l {
		if x.String() == t {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of l.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	c := make(List, len(l))
	for i, sel := range l {
		c[i] = sel.Clone()
	}
	return c
}
