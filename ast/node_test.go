package ast

import (
	"testing"

	"github.com/npillmayer/scss/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadReferencesNode(t *testing.T) {
	rule := NewRuleBlock(selector.MustParse(".a"))
	assert.Same(t, rule, rule.Payload)
	assert.Same(t, rule, Node(rule.TreeNode()))
	assert.Nil(t, Node(nil))
}

func TestBuildAndNavigate(t *testing.T) {
	sheet := NewStylesheet()
	rule := NewRuleBlock(selector.MustParse(".error"))
	ext := NewExtend(selector.MustParse(".btn"), false)
	decl := NewDeclaration("color", "red", true)
	sheet.Add(rule.Add(ext, decl))

	require.Equal(t, 1, sheet.ChildCount())
	assert.Same(t, sheet, rule.ParentNode())
	assert.Equal(t, []*StyleNode{ext, decl}, rule.ChildNodes())
	assert.True(t, rule.IsRuleBlock())
	assert.True(t, ext.IsExtend())
	assert.False(t, decl.IsRuleBlock())

	assert.True(t, rule.Remove(ext))
	assert.Equal(t, []*StyleNode{decl}, rule.ChildNodes())
	assert.Nil(t, ext.ParentNode())
	assert.False(t, rule.Remove(ext))
}

func TestAddSelectorsKeepsPrefix(t *testing.T) {
	rule := NewRuleBlock(selector.MustParse(".btn"))
	rule.AddSelectors(selector.MustParse(".error, .warning")...)
	assert.Equal(t, ".btn, .error, .warning", rule.Selectors.Text())
}

func TestStringForms(t *testing.T) {
	var tests = []struct {
		node *StyleNode
		s    string
	}{
		{NewStylesheet(), "stylesheet"},
		{NewRuleBlock(selector.MustParse("a,b")), "a, b {}"},
		{NewExtend(selector.MustParse("%x"), true), "@extend %x !optional"},
		{NewAtRule("@media", "print"), "@media print"},
		{NewAtRule("font-face", ""), "@font-face"},
		{NewDeclaration("margin", "0", false), "margin: 0"},
		{NewComment("note"), "/* note */"},
	}
	for _, test := range tests {
		assert.Equal(t, test.s, test.node.String())
	}
	assert.Equal(t, "extend", ExtendKind.String())
}

func TestCloneIsDeep(t *testing.T) {
	media := NewAtRule("media", "print")
	rule := NewRuleBlock(selector.MustParse(".a"))
	sheet := NewStylesheet().Add(media.Add(rule.Add(NewDeclaration("color", "red", false))))

	c := sheet.Clone()
	require.NotSame(t, sheet, c)
	require.Nil(t, c.ParentNode())
	cmedia := c.ChildNodes()[0]
	crule := cmedia.ChildNodes()[0]
	assert.Equal(t, "@media print", cmedia.String())
	assert.Equal(t, ".a {}", crule.String())
	assert.Equal(t, "color: red", crule.ChildNodes()[0].String())

	crule.AddSelectors(selector.MustParse(".b")...)
	assert.Equal(t, ".a", rule.Selectors.Text(), "original must not change with clone")
}
