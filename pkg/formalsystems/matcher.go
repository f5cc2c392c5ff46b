package formalsystems

import "strings"

// matchSeg is one piece of a compiled matcher: either a literal run of
// characters that must appear verbatim, or a wildcard occurrence (tagged
// with its alias, not its original name — see [AliasMap]).
type matchSeg struct {
	literal string // non-empty for a literal segment
	alias   string // non-empty for a wildcard segment
	base    byte
	kind    RepKind
}

// Matcher is the compiled form of a schema or rule-antecedent pattern. It
// is safe to invoke many times against different input strings — compiling
// is the expensive, one-time step; matching is cheap and repeatable.
type Matcher struct {
	segs []matchSeg
}

// Match enumerates every distinct alias-binding map under which m accepts
// s in full (a trailing end-of-string anchor is implicit — a pattern only
// matches if it consumes the entire string). On total failure the
// returned MatchIter yields nothing; this is the ordinary, expected outcome
// of a mismatch, not an error.
func (m *Matcher) Match(s string) *MatchIter {
	var results []AliasBinding
	var walk func(segIdx, pos int, binding AliasBinding)
	walk = func(segIdx, pos int, binding AliasBinding) {
		if segIdx == len(m.segs) {
			if pos == len(s) {
				results = append(results, cloneBinding(binding))
			}
			return
		}

		seg := m.segs[segIdx]
		if seg.literal != "" {
			if strings.HasPrefix(s[pos:], seg.literal) {
				walk(segIdx+1, pos+len(seg.literal), binding)
			}
			return
		}

		minLen := 0
		if seg.kind == RepPlus {
			minLen = 1
		}
		maxLen := len(s) - pos
		for n := minLen; n <= maxLen; n++ {
			candidate := s[pos : pos+n]
			if seg.base != anySymbol && !allBytesEqual(candidate, seg.base) {
				continue
			}
			binding[seg.alias] = candidate
			walk(segIdx+1, pos+n, binding)
			delete(binding, seg.alias)
		}
	}

	walk(0, 0, AliasBinding{})
	return &MatchIter{bindings: results}
}

func allBytesEqual(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != b {
			return false
		}
	}
	return true
}

func cloneBinding(b AliasBinding) AliasBinding {
	out := make(AliasBinding, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// MatchIter is a pull stream over the alias-binding maps a [Matcher.Match]
// call produced. Results are computed eagerly (a matcher's input string is
// always finite, so there is no fairness concern here the way there is for
// the infinite schema enumerator), but callers still consume it one
// binding at a time through Next, matching the external-iterator style
// used throughout this package.
type MatchIter struct {
	bindings []AliasBinding
	pos      int
}

// Next returns the next binding and true, or a nil binding and false once
// the iterator is exhausted.
func (it *MatchIter) Next() (AliasBinding, bool) {
	if it.pos >= len(it.bindings) {
		return nil, false
	}
	b := it.bindings[it.pos]
	it.pos++
	return b, true
}

// All drains the iterator into a slice. Used where a whole batch of
// bindings is needed at once, e.g. to form a cartesian product across
// several antecedent positions in the rule engine.
func (it *MatchIter) All() []AliasBinding {
	out := it.bindings[it.pos:]
	it.pos = len(it.bindings)
	return out
}

// Len reports how many bindings matched, without consuming the iterator.
func (it *MatchIter) Len() int { return len(it.bindings) }
