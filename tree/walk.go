package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrEmptyTree is returned if a walk is started on an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by an Action to prevent the walk from
// descending into the children of the current node. It is not reported as
// an error by TopDown.
var SkipChildren = errors.New("skip children of node")

// Action is a function type to operate on tree nodes during a walk.
// parent is nil for the start node of a walk.
type Action[T comparable] func(n *Node[T], parent *Node[T]) error

// TopDown traverses a tree starting at (and including) node root, depth first
// and in pre-order: parents are always processed before their children, and
// siblings left to right.
//
// The children of a node are collected after the action for the node has
// returned, so an action may remove or add children of the node it is
// called for. Removal of nodes which have already been queued for a visit
// does not prevent the visit.
//
// The walk uses an explicit stack instead of recursion, so the nesting depth
// of a tree is not limited by the goroutine stack. If action returns an error
// other than SkipChildren, the walk is aborted and the error is returned.
func TopDown[T comparable](root *Node[T], action Action[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	type visit struct {
		node, parent *Node[T]
	}
	stack := []visit{{node: root}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := action(v.node, v.parent); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}
		children := v.node.Children()
		for i := len(children) - 1; i >= 0; i-- { // reverse, to pop leftmost first
			stack = append(stack, visit{node: children[i], parent: v.node})
		}
	}
	return nil
}

// Depth returns the number of ancestors of node.
func Depth[T comparable](node *Node[T]) int {
	d := 0
	for n := node.Parent(); n != nil; n = n.Parent() {
		d++
	}
	return d
}
