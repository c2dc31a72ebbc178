package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/scss/selector"
	"github.com/npillmayer/scss/tree"
)

// Kind is the kind of a StyleNode.
type Kind uint8

// Kinds of style nodes.
const (
	StylesheetKind Kind = iota
	RuleBlockKind
	ExtendKind
	AtRuleKind
	DeclarationKind
	CommentKind
)

var kindNames = [...]string{"stylesheet", "rule", "extend", "at-rule", "declaration", "comment"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// StyleNode is a node of a rule tree.
// Which of the fields are in use depends on the kind of node.
type StyleNode struct {
	tree.Node[*StyleNode] // we build on top of general purpose tree
	kind                  Kind          // kind of node, fixed at creation
	Selectors             selector.List // rule blocks and extend directives
	Optional              bool          // extend directive marked "!optional"
	Keyword               string        // at-rule keyword without "@", e.g. "media"
	Prelude               string        // at-rule prelude, e.g. "print"
	Property              string        // declaration property, e.g. "color"
	Value                 string        // declaration value, e.g. "red"
	Important             bool          // declaration is marked "!important"
	Text                  string        // comment text
}

func newStyleNode(kind Kind) *StyleNode {
	sn := &StyleNode{kind: kind}
	sn.Payload = sn // Payload will always reference the node itself
	return sn
}

// NewStylesheet creates a root node for a rule tree.
func NewStylesheet() *StyleNode {
	return newStyleNode(StylesheetKind)
}

// NewRuleBlock creates a rule block for a selector list.
func NewRuleBlock(sel selector.List) *StyleNode {
	sn := newStyleNode(RuleBlockKind)
	sn.Selectors = sel
	return sn
}

// NewExtend creates an extend directive, extending the selectors of sel.
func NewExtend(sel selector.List, optional bool) *StyleNode {
	sn := newStyleNode(ExtendKind)
	sn.Selectors = sel
	sn.Optional = optional
	return sn
}

// NewAtRule creates an at-rule node. keyword is given without the leading "@".
func NewAtRule(keyword, prelude string) *StyleNode {
	sn := newStyleNode(AtRuleKind)
	sn.Keyword = strings.TrimPrefix(keyword, "@")
	sn.Prelude = prelude
	return sn
}

// NewDeclaration creates a property declaration.
func NewDeclaration(property, value string, important bool) *StyleNode {
	sn := newStyleNode(DeclarationKind)
	sn.Property = property
	sn.Value = value
	sn.Important = important
	return sn
}

// NewComment creates a comment node.
func NewComment(text string) *StyleNode {
	sn := newStyleNode(CommentKind)
	sn.Text = text
	return sn
}

// Node gets the style node from a generic tree node.
func Node(n *tree.Node[*StyleNode]) *StyleNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TreeNode returns the generic tree node of sn.
func (sn *StyleNode) TreeNode() *tree.Node[*StyleNode] {
	if sn == nil {
		return nil
	}
	return &sn.Node
}

// Kind returns the kind of the node.
func (sn *StyleNode) Kind() Kind {
	return sn.kind
}

// IsRuleBlock is true for rule blocks.
func (sn *StyleNode) IsRuleBlock() bool {
	return sn != nil && sn.kind == RuleBlockKind
}

// IsExtend is true for extend directives.
func (sn *StyleNode) IsExtend() bool {
	return sn != nil && sn.kind == ExtendKind
}

// Add appends children to sn and returns sn, to allow for chaining.
func (sn *StyleNode) Add(children ...*StyleNode) *StyleNode {
	for _, ch := range children {
		if ch != nil {
			sn.AddChild(&ch.Node)
		}
	}
	return sn
}

// Remove removes child ch from sn.
func (sn *StyleNode) Remove(ch *StyleNode) bool {
	if ch == nil {
		return false
	}
	return sn.RemoveChild(&ch.Node)
}

// ParentNode returns the parent style node, or nil for the root.
func (sn *StyleNode) ParentNode() *StyleNode {
	return Node(sn.Parent())
}

// ChildNodes returns a snapshot of the children of sn.
func (sn *StyleNode) ChildNodes() []*StyleNode {
	children := sn.Children()
	nodes := make([]*StyleNode, len(children))
	for i, ch := range children {
		nodes[i] = Node(ch)
	}
	return nodes
}

// AddSelectors appends selectors to the selector list of sn.
// The existing selectors are left untouched.
func (sn *StyleNode) AddSelectors(sels ...selector.Selector) {
	sn.Selectors = append(sn.Selectors, sels...)
}

// Clone creates a deep copy of the subtree rooted at sn. The copy is not
// connected to a parent.
func (sn *StyleNode) Clone() *StyleNode {
	clones := make(map[*StyleNode]*StyleNode)
	var root *StyleNode
	_ = tree.TopDown(&sn.Node, func(n, parent *tree.Node[*StyleNode]) error {
		c := Node(n).shallowCopy()
		clones[Node(n)] = c
		if parent == nil {
			root = c
		} else {
			clones[Node(parent)].Add(c)
		}
		return nil
	})
	return root
}

func (sn *StyleNode) shallowCopy() *StyleNode {
	c := newStyleNode(sn.kind)
	c.Selectors = sn.Selectors.Clone()
	c.Optional = sn.Optional
	c.Keyword, c.Prelude = sn.Keyword, sn.Prelude
	c.Property, c.Value, c.Important = sn.Property, sn.Value, sn.Important
	c.Text = sn.Text
	return c
}

func (sn *StyleNode) String() string {
	if sn == nil {
		return "<nil>"
	}
	switch sn.kind {
	case StylesheetKind:
		return "stylesheet"
	case RuleBlockKind:
		return sn.Selectors.Text() + " {}"
	case ExtendKind:
		s := "@extend " + sn.Selectors.Text()
		if sn.Optional {
			s += " !optional"
		}
		return s
	case AtRuleKind:
		if sn.Prelude == "" {
			return "@" + sn.Keyword
		}
		return "@" + sn.Keyword + " " + sn.Prelude
	case DeclarationKind:
		s := sn.Property + ": " + sn.Value
		if sn.Important {
			s += " !important"
		}
		return s
	case CommentKind:
		return "/* " + sn.Text + " */"
	}
	return sn.kind.String()
}
