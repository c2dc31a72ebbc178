/*
Package extend resolves "@extend" directives of a SCSS rule tree.

Overview

A rule block may request to be styled like another one:

   .error {
       @extend .btn;
       color: red;
   }

Resolving the directive adds the selectors of the requesting block to every
rule block matching the extended selector, i.e. ".btn { … }" becomes
".btn, .error { … }", and ".panel.btn { … }" becomes ".panel.btn, .panel.error { … }".

Resolution is done in two passes over the tree. The first pass collects an
Index from the text of extended selector lists to the selector lists of the
requesting blocks, removing the directives from the tree. The second pass
looks up the selector text of every rule block in the index. An exact match
wins; otherwise every index key occurring as a substring of the block's
selector text is applied. Selectors are only ever appended to a block.

Each call to Resolve works with an index of its own, so concurrent
resolutions of different trees do not interfere. A single tree must not be
resolved concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package extend

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// DefaultTraceKey is the tracing key used by resolvers if not configured
// otherwise.
const DefaultTraceKey = "scss.extend"

// tracer traces with key 'scss.extend'.
func tracer() tracing.Trace {
	return tracing.Select(DefaultTraceKey)
}

// ErrNilTree is returned if resolution is called for an empty tree.
var ErrNilTree = errors.New("rule tree is nil")

// ErrNilPayload is returned for generic tree nodes not carrying a style node.
var ErrNilPayload = errors.New("tree node does not carry a style node")

// ErrEmptySelectorList is returned for rule blocks and extend directives
// without selectors.
var ErrEmptySelectorList = errors.New("empty selector list")

// ErrIndexFrozen is returned when adding to an index after the build pass.
var ErrIndexFrozen = errors.New("extension index is frozen")
