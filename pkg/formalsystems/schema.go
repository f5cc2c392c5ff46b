package formalsystems

import (
	"fmt"
	"strings"
)

// AxiomSchema denotes a (possibly infinite) set of ground axioms: a pattern
// with zero or more wildcards, compiled into a matcher (to check whether a
// candidate string is an instance of the schema) and a template (to
// instantiate ground instances).
type AxiomSchema struct {
	Name      string
	Raw       string
	Wildcards map[string]WildcardSpec

	order   []string // wildcard declaration order == enumeration dimension order
	aliases *AliasMap

	Matcher  *Matcher
	Template *Template
}

// Dim reports the enumeration dimension: the number of distinct wildcards
// this schema declares.
func (s *AxiomSchema) Dim() int { return len(s.order) }

// IsAxiom checks whether target is a ground instance of this schema and,
// if so, returns the binding that witnesses it. A repeated wildcard name
// can yield several parses of target, most of them inconsistent (e.g. a
// zero-repetition parse of one occurrence that disagrees with another) —
// every parse is tried in turn, and the first one whose Join succeeds wins.
// This is the `-a` CLI surface's underlying primitive.
func (s *AxiomSchema) IsAxiom(target string) (Binding, bool) {
	it := s.Matcher.Match(target)
	for bindings, ok := it.Next(); ok; bindings, ok = it.Next() {
		if b, ok := s.aliases.Join(bindings); ok {
			return b, true
		}
	}
	return nil, false
}

// Enumerate returns a fresh, lazy iterator over this schema's ground
// theorems, fairly ordered.
func (s *AxiomSchema) Enumerate() *AxiomIter {
	if s.Dim() == 0 {
		return &AxiomIter{schema: s}
	}
	return &AxiomIter{schema: s, enum: newTupleEnumerator(s.Dim())}
}

// AxiomIter is the pull stream of ground theorems a schema denotes. A
// schema with no wildcards yields its single ground instance once and then
// stops; a schema with wildcards never stops on its own — callers bound it
// externally (max_iter, or the round-robin merge's own termination).
type AxiomIter struct {
	schema *AxiomSchema
	enum   *tupleEnumerator
	done   bool
}

// Next produces the next ground theorem in fair enumeration order, or
// false once a wildcard-free schema's single instance has been consumed.
func (it *AxiomIter) Next() (*Theorem, bool) {
	if it.enum == nil {
		if it.done {
			return nil, false
		}
		it.done = true
		return &Theorem{str: it.schema.Template.Instantiate(nil), Producer: AxiomProducer}, true
	}

	tuple := it.enum.next()
	binding := make(Binding, len(it.schema.order))
	for i, name := range it.schema.order {
		spec := it.schema.Wildcards[name]
		k := tuple[i]
		reps := k
		if spec.Kind == RepStar {
			reps = k - 1
		}
		if reps < 0 {
			reps = 0
		}
		binding[name] = strings.Repeat(string(spec.Base), reps)
	}
	s := it.schema.Template.Instantiate(binding)
	return &Theorem{str: s, Producer: AxiomProducer}, true
}

// tupleEnumerator performs a triangle enumeration of ℕ^d: start at
// (1,...,1); the frontier at each step is every coordinate increment of the
// previous frontier's points, deduplicated against everything already
// emitted. Every tuple has a finite "shell index" (the number of increments
// from the start), so every tuple is reached in finite time. This avoids
// the unbounded skew nested loops over each dimension would produce, where
// one dimension races arbitrarily far ahead of the others.
type tupleEnumerator struct {
	d        int
	visited  map[string]bool
	frontier [][]int
	queue    [][]int
	started  bool
}

func newTupleEnumerator(d int) *tupleEnumerator {
	return &tupleEnumerator{d: d, visited: make(map[string]bool)}
}

func tupleKey(t []int) string {
	var sb strings.Builder
	for i, v := range t {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	return sb.String()
}

func (e *tupleEnumerator) next() []int {
	if !e.started {
		e.started = true
		start := make([]int, e.d)
		for i := range start {
			start[i] = 1
		}
		e.visited[tupleKey(start)] = true
		e.frontier = [][]int{start}
		e.queue = [][]int{start}
	}

	if len(e.queue) == 0 {
		var next [][]int
		seenThisShell := make(map[string]bool)
		for _, t := range e.frontier {
			for j := 0; j < e.d; j++ {
				nt := make([]int, e.d)
				copy(nt, t)
				nt[j]++
				k := tupleKey(nt)
				if e.visited[k] || seenThisShell[k] {
					continue
				}
				seenThisShell[k] = true
				next = append(next, nt)
			}
		}
		for _, t := range next {
			e.visited[tupleKey(t)] = true
		}
		e.frontier = next
		e.queue = next
	}

	t := e.queue[0]
	e.queue = e.queue[1:]
	return t
}

// RoundRobin fairly merges several schema enumerators: it advances one
// step per source per round, and drops a source the moment it runs dry,
// so a single infinite schema never starves its siblings and an exhausted
// finite schema never blocks the merge.
type RoundRobin struct {
	iters     []*AxiomIter
	exhausted []bool
	next      int
	remaining int
}

// NewRoundRobin builds a round-robin merge over the given schemas'
// enumerators, in declaration order.
func NewRoundRobin(schemas []*AxiomSchema) *RoundRobin {
	iters := make([]*AxiomIter, len(schemas))
	for i, s := range schemas {
		iters[i] = s.Enumerate()
	}
	return &RoundRobin{iters: iters, exhausted: make([]bool, len(iters)), remaining: len(iters)}
}

// Next returns the next axiom in round-robin order, or false once every
// source schema is exhausted.
func (r *RoundRobin) Next() (*Theorem, bool) {
	n := len(r.iters)
	if n == 0 {
		return nil, false
	}
	for tries := 0; tries < n && r.remaining > 0; tries++ {
		i := r.next
		r.next = (r.next + 1) % n
		if r.exhausted[i] {
			continue
		}
		t, ok := r.iters[i].Next()
		if ok {
			return t, true
		}
		r.exhausted[i] = true
		r.remaining--
	}
	return nil, false
}
