/*
Package astdbg implements helpers to debug a rule tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package astdbg

import (
	"testing"

	"github.com/npillmayer/scss/ast"
	"github.com/npillmayer/scss/tree"
	tp "github.com/xlab/treeprint"
)

// Print renders the rule tree under root as an indented tree diagram,
// one node per line, e.g.
//
//    .
//    └── stylesheet
//        └── .btn, .error {}
//            └── color: red
//
func Print(root *ast.StyleNode) string {
	if root == nil {
		return "<empty tree>\n"
	}
	printer := tp.New()
	branches := make(map[*ast.StyleNode]tp.Tree)
	_ = tree.TopDown(root.TreeNode(), func(n, parent *tree.Node[*ast.StyleNode]) error {
		sn := ast.Node(n)
		var at tp.Tree = printer
		if parent != nil {
			at = branches[ast.Node(parent)]
		}
		if n.ChildCount() == 0 {
			at.AddNode(sn.String())
			return nil
		}
		branches[sn] = at.AddBranch(sn.String())
		return nil
	})
	return printer.String()
}

// Log is a helper for testing. It writes the diagram of the rule tree
// under root to the test log, headed by a title.
func Log(t *testing.T, title string, root *ast.StyleNode) {
	t.Helper()
	t.Logf("%s\n%s", title, Print(root))
}
