package extend

import (
	"fmt"
	"strings"

	"github.com/npillmayer/scss/selector"
)

// Index maps the text of extended selector lists to the selector lists of
// the rule blocks which requested the extension. Keys are kept in the order
// of their first registration, values in the order of registration.
//
// An Index is built once per resolution and frozen afterwards.
type Index struct {
	keys    []string
	entries map[string][]selector.List
	frozen  bool
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string][]selector.List)}
}

// Add registers ext as extending the selector list with text key.
func (idx *Index) Add(key string, ext selector.List) error {
	if idx.frozen {
		return fmt.Errorf("cannot register %q for %q: %w", ext.Text(), key, ErrIndexFrozen)
	}
	if _, ok := idx.entries[key]; !ok {
		idx.keys = append(idx.keys, key)
	}
	idx.entries[key] = append(idx.entries[key], ext)
	return nil
}

// Lookup returns the extending selector lists registered for key.
func (idx *Index) Lookup(key string) ([]selector.List, bool) {
	lists, ok := idx.entries[key]
	return lists[:len(lists):len(lists)], ok
}

// Keys returns the keys of the index in registration order.
func (idx *Index) Keys() []string {
	keys := make([]string, len(idx.keys))
	copy(keys, idx.keys)
	return keys
}

// Len returns the number of keys.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Freeze prevents further additions to the index.
func (idx *Index) Freeze() {
	idx.frozen = true
}

// Frozen is true after Freeze has been called.
func (idx *Index) Frozen() bool {
	return idx.frozen
}

func (idx *Index) String() string {
	var b strings.Builder
	b.WriteString("Index{")
	for i, key := range idx.keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(key)
		b.WriteString(" <- ")
		for j, l := range idx.entries[key] {
			if j > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(l.Text())
		}
	}
	b.WriteString("}")
	return b.String()
}
