package astdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/scss/ast"
	"github.com/npillmayer/scss/selector"
)

func TestPrint(t *testing.T) {
	sheet := ast.NewStylesheet().Add(
		ast.NewRuleBlock(selector.MustParse(".btn")).Add(
			ast.NewDeclaration("color", "red", false),
		),
		ast.NewAtRule("media", "print").Add(
			ast.NewRuleBlock(selector.MustParse(".x")),
		),
	)
	out := Print(sheet)
	Log(t, "rule tree", sheet)
	for _, line := range []string{"stylesheet", ".btn {}", "color: red", "@media print", ".x {}"} {
		if !strings.Contains(out, line) {
			t.Errorf("expected diagram to contain %q, is\n%s", line, out)
		}
	}
	if strings.Index(out, ".btn {}") > strings.Index(out, "@media print") {
		t.Errorf("expected children to be printed in order")
	}
}

func TestPrintEmpty(t *testing.T) {
	if Print(nil) != "<empty tree>\n" {
		t.Errorf("expected placeholder text for nil tree")
	}
}
