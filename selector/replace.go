package selector

// ReplacePart creates new selectors from the selectors of original by
// substituting the part which matches matchedText with each selector of
// extending in turn. The context surrounding the matched part is kept.
//
// matchedText is the canonical text of a selector list (usually the target of
// an extend directive). A compound selector matches if all its simple
// selectors are part of a compound of the original, e.g. ".btn" matches in
// ".panel.btn" and replacing it with ".error" yields ".panel.error".
// A complex selector with combinators matches a run of consecutive compounds
// of the original.
//
// ReplacePart returns false if no substitution point could be found, or if
// every substitution would produce an impossible selector (e.g., two
// different element types in one compound). Original and extending are not
// modified.
func ReplacePart(original List, matchedText string, extending List) (List, bool) {
	matched, err := Parse(matchedText)
	if err != nil {
		return nil, false
	}
	var result List
	seen := make(map[string]bool)
	for _, sel := range original {
		for _, m := range matched {
			for _, ext := range extending {
				s, ok := substitute(sel, m, ext)
				if !ok {
					continue
				}
				if t := s.String(); !seen[t] {
					seen[t] = true
					result = append(result, s)
				}
			}
		}
	}
	if len(result) == 0 {
		tracer().Debugf("no part of %q matches %q", original.Text(), matchedText)
		return nil, false
	}
	return result, true
}

// substitute finds the leftmost run of steps in sel matching m and replaces
// it with ext. The last compound of ext is merged with whatever remains of the
// last matched compound of sel.
func substitute(sel, m, ext Selector) (Selector, bool) {
	n := len(m)
	if n == 0 || len(ext) == 0 || n > len(sel) {
		return nil, false
	}
	for i := 0; i+n <= len(sel); i++ {
		if !matchRun(sel[i:i+n], m) {
			continue
		}
		rest, at := sel[i+n-1].Compound.without(m[n-1].Compound)
		merged, ok := mergeCompounds(ext[len(ext)-1].Compound, rest, at)
		if !ok {
			continue
		}
		out := make(Selector, 0, len(sel)-n+len(ext))
		out = append(out, sel[:i].Clone()...)
		for j, step := range ext {
			st := Step{Combinator: step.Combinator, Compound: step.Compound.clone()}
			if j == 0 {
				st.Combinator = sel[i].Combinator
			}
			if j == len(ext)-1 {
				st.Compound = merged
			}
			out = append(out, st)
		}
		out = append(out, sel[i+n:].Clone()...)
		return out, true
	}
	return nil, false
}

// matchRun checks if run matches m step by step. Inner compounds have to be
// equal, the last compound of run has to contain the last compound of m.
func matchRun(run, m Selector) bool {
	last := len(m) - 1
	for k := range m {
		if k > 0 && run[k].Combinator != m[k].Combinator {
			return false
		}
		if k < last && !run[k].Compound.Equal(m[k].Compound) {
			return false
		}
	}
	return run[last].Compound.Contains(m[last].Compound)
}

// without returns c minus the simple selectors of m, together with the
// position in the result where the first removed selector had been.
func (c Compound) without(m Compound) (Compound, int) {
	var rest Compound
	at := -1
	for _, s := range c {
		if m.contains(s) {
			if at < 0 {
				at = len(rest)
			}
			continue
		}
		rest = append(rest, s)
	}
	if at < 0 {
		at = len(rest)
	}
	return rest, at
}

// mergeCompounds inserts the simple selectors of ext into rest at position at.
// Element selectors are moved to the front. The merge fails for conflicting
// element types or IDs.
func mergeCompounds(ext, rest Compound, at int) (Compound, bool) {
	elem, ok := mergeElements(ext, rest)
	if !ok {
		return nil, false
	}
	out := make(Compound, 0, len(ext)+len(rest)+1)
	if elem != nil {
		out = append(out, *elem)
	}
	emit := func(c Compound) {
		for _, s := range c {
			if !s.isElement() && !out.contains(s) {
				out = append(out, s)
			}
		}
	}
	for i, s := range rest {
		if i == at {
			emit(ext)
		}
		emit(Compound{s})
	}
	if at >= len(rest) {
		emit(ext)
	}
	var id *Simple
	for i, s := range out {
		if s.Kind != ID {
			continue
		}
		if id != nil && id.Name != s.Name {
			return nil, false
		}
		id = &out[i]
	}
	return out, len(out) > 0
}

func mergeElements(ext, rest Compound) (*Simple, bool) {
	var e, r *Simple
	for i := range ext {
		if ext[i].isElement() {
			e = &ext[i]
		}
	}
	for i := range rest {
		if rest[i].isElement() {
			r = &rest[i]
		}
	}
	switch {
	case e == nil:
		return r, true
	case r == nil || r.Kind == Universal:
		return e, true
	case e.Kind == Universal:
		return r, true
	case e.Name == r.Name:
		return e, true
	}
	return nil, false
}
