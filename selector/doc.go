/*
Package selector implements structured CSS/SCSS selectors.

Overview

Selectors are represented in three layers: simple selectors (".btn",
"#main", ":hover"), compound selectors (".panel.btn") and complex
selectors, which chain compounds with combinators ("nav > ul li").
A List groups complex selectors separated by commas.

Every list has a canonical textual form (see List.Text). Two lists with the
same structure always serialize to the same string, which makes the text
usable as a map key. The extend machinery in package extend relies on this.

Parsing uses the CSS tokenizer of github.com/tdewolff/parse. Placeholder
selectors ("%name") and parent references ("&") of SCSS are understood.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'scss.selector'.
func tracer() tracing.Trace {
	return tracing.Select("scss.selector")
}
