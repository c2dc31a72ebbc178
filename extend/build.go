package extend

import (
	"fmt"

	"github.com/npillmayer/scss/ast"
	"github.com/npillmayer/scss/tree"
)

// BuildIndex walks the tree under root depth first, registers every extend
// directive with the selector list of its rule block and removes the
// directive from the tree. The returned index is frozen.
//
// Directives which are not placed directly inside a rule block (e.g., inside
// an at-rule nested in a block) are registered with the closest enclosing
// rule block. Directives without any enclosing rule block are dropped
// without effect.
func (r *Resolver) BuildIndex(root *ast.StyleNode) (*Index, error) {
	if root == nil {
		return nil, ErrNilTree
	}
	idx := NewIndex()
	err := tree.TopDown(root.TreeNode(), func(n, parent *tree.Node[*ast.StyleNode]) error {
		sn := ast.Node(n)
		if sn == nil {
			return fmt.Errorf("building extension index below %v: %w", ast.Node(parent), ErrNilPayload)
		}
		switch {
		case sn.IsRuleBlock():
			if len(sn.Selectors) == 0 {
				return fmt.Errorf("building extension index: rule block: %w", ErrEmptySelectorList)
			}
			for _, ch := range sn.ChildNodes() { // snapshot, we remove children
				if ch == nil || !ch.IsExtend() {
					continue
				}
				if err := r.register(idx, ch, sn); err != nil {
					return err
				}
				sn.Remove(ch)
			}
		case sn.IsExtend(): // not a direct child of a rule block
			if block := enclosingBlock(sn); block != nil {
				if err := r.register(idx, sn, block); err != nil {
					return err
				}
			} else {
				r.tracer().Debugf("ignoring %s outside of rule blocks", sn)
			}
			if p := sn.ParentNode(); p != nil {
				p.Remove(sn)
			}
			return tree.SkipChildren
		}
		return nil
	})
	idx.Freeze()
	if err != nil {
		r.tracer().Errorf("%v", err)
		return idx, err
	}
	r.tracer().Debugf("collected %d extended selector(s)", idx.Len())
	return idx, nil
}

// register adds the selectors of block to idx, under the text of the
// selectors extended by directive.
func (r *Resolver) register(idx *Index, directive, block *ast.StyleNode) error {
	if len(directive.Selectors) == 0 {
		return fmt.Errorf("building extension index: %s in %s: %w", directive, block, ErrEmptySelectorList)
	}
	key := directive.Selectors.Text()
	r.tracer().Debugf("%s extends %q", block.Selectors.Text(), key)
	// the block's list grows during rewriting; register what it is now
	return idx.Add(key, block.Selectors.Clone())
}

func enclosingBlock(sn *ast.StyleNode) *ast.StyleNode {
	for p := sn.ParentNode(); p != nil; p = p.ParentNode() {
		if p.IsRuleBlock() {
			return p
		}
	}
	return nil
}
