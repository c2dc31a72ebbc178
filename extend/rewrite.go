package extend

import (
	"fmt"
	"strings"

	"github.com/npillmayer/scss/ast"
	"github.com/npillmayer/scss/selector"
	"github.com/npillmayer/scss/tree"
)

// Rewrite walks the tree under root depth first and extends every rule block
// by the selector lists registered in idx:
//
// If the selector text of a block is a key of idx, every registered list is
// merged into the block's selectors. Otherwise every key of idx which occurs
// within the block's selector text is treated as a partial match and its
// lists are merged. Keys are tried in registration order.
//
// Merging a list replaces the matched part of the block's selectors by each
// selector of the list (see selector.ReplacePart) and appends the results.
// Pairs without a structural substitution point add nothing.
//
// idx is not modified. Rewrite freezes idx if it has not been frozen yet.
func (r *Resolver) Rewrite(root *ast.StyleNode, idx *Index) error {
	if root == nil {
		return ErrNilTree
	}
	if idx == nil || idx.Len() == 0 {
		r.tracer().Debugf("no extended selectors, nothing to rewrite")
		return nil
	}
	idx.Freeze()
	blocks, added := 0, 0
	err := tree.TopDown(root.TreeNode(), func(n, parent *tree.Node[*ast.StyleNode]) error {
		sn := ast.Node(n)
		if sn == nil {
			return fmt.Errorf("rewriting rule tree below %v: %w", ast.Node(parent), ErrNilPayload)
		}
		if !sn.IsRuleBlock() {
			return nil
		}
		if len(sn.Selectors) == 0 {
			return fmt.Errorf("rewriting rule tree: rule block: %w", ErrEmptySelectorList)
		}
		if k := r.extendBlock(sn, idx); k > 0 {
			blocks++
			added += k
		}
		return nil
	})
	if err != nil {
		r.tracer().Errorf("%v", err)
		return err
	}
	r.tracer().Infof("extended %d rule block(s) by %d selector(s)", blocks, added)
	return nil
}

// extendBlock applies the index to a single rule block and returns the
// number of selectors added.
func (r *Resolver) extendBlock(block *ast.StyleNode, idx *Index) int {
	key := block.Selectors.Text()
	original := block.Selectors.Clone()
	if lists, ok := idx.Lookup(key); ok {
		return r.merge(block, original, key, lists)
	}
	added := 0
	for _, entryKey := range idx.Keys() {
		if !r.matchesPartially(key, entryKey) {
			continue
		}
		lists, _ := idx.Lookup(entryKey)
		added += r.merge(block, original, entryKey, lists)
	}
	return added
}

func (r *Resolver) merge(block *ast.StyleNode, original selector.List, matched string,
	lists []selector.List) int {
	//
	added := 0
	for _, ext := range lists {
		newList, ok := selector.ReplacePart(original, matched, ext)
		if !ok {
			r.tracer().Debugf("%q in %q cannot be replaced by %q", matched, original.Text(), ext.Text())
			continue
		}
		for _, sel := range newList {
			if r.dedup && block.Selectors.Contains(sel) {
				continue
			}
			block.AddSelectors(sel)
			added++
		}
		r.tracer().Debugf("%q extended by %q, now %q", original.Text(), ext.Text(), block.Selectors.Text())
	}
	return added
}

func (r *Resolver) matchesPartially(text, key string) bool {
	if !r.boundaries {
		return strings.Contains(text, key)
	}
	return containsAtBoundaries(text, key)
}

// containsAtBoundaries is true if part occurs in text without being glued to
// a longer identifier, e.g. ".btn" in ".x .btn:hover" but not in ".btn-large",
// and "a" in "nav > a" but not in ".a".
func containsAtBoundaries(text, part string) bool {
	if part == "" {
		return false
	}
	for start := 0; start < len(text); {
		i := strings.Index(text[start:], part)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(part)
		if boundaryBefore(text, i, part) && (end == len(text) || !isNameChar(text[end])) {
			return true
		}
		start = i + 1
	}
	return false
}

func boundaryBefore(text string, i int, part string) bool {
	if i == 0 {
		return true
	}
	if !isNameChar(part[0]) { // starts with a sigil, e.g. ".", "#", ":"
		return true
	}
	return strings.IndexByte(" ,>+~(", text[i-1]) >= 0
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c >= 0x80
}
