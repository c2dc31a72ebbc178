/*
Package ast defines the nodes of a SCSS rule tree.

Overview

A rule tree is built of StyleNodes, which sit on top of the general purpose
tree type of package tree. As in other node types built on tree.Node, the
payload of the generic node references the StyleNode itself, so clients may
switch between both views with ast.Node() and StyleNode.TreeNode().

StyleNodes come in several kinds:

   Stylesheet       the root container
   RuleBlock        a selector list with a body, e.g. ".a { … }"
   Extend           an "@extend .b;" directive inside a rule block
   AtRule           an at-rule with an optional body, e.g. "@media print { … }"
   Declaration      a property declaration; opaque to this module
   Comment          a comment; opaque to this module

Creating the tree from SCSS source text is the job of an upstream parser.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast
