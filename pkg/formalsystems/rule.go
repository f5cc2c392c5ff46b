package formalsystems

// Rule is an n-ary inference step: n antecedent matchers whose bindings
// are unified across positions, feeding one or more consequent templates.
type Rule struct {
	Name string
	Raw  string
	// Body is raw with its wildcard conditions stripped — just the
	// "lhs => rhs" antecedent/consequent expression — used for display in
	// trace and derivation lines where the condition clauses would
	// only add noise.
	Body string

	aliases *AliasMap

	Antecedents []*Matcher
	Consequents []*Template
}

// Arity is the number of antecedents this rule requires.
func (r *Rule) Arity() int { return len(r.Antecedents) }

// Production is the outcome of trying one antecedent tuple against a rule:
// Tuple is the parent theorems that were tried, in antecedent order, and
// New holds the theorems produced from it — empty if any antecedent failed
// to match or every consistency join failed, which the search drivers report
// as a failed attempt (the "." trace line) rather than an error.
type Production struct {
	Tuple []*Theorem
	New   []*Theorem
}

// Produce matches rule's antecedents against corpus ∪ oldCorpus and
// instantiates its consequents for every unifiable combination.
// Tuples entirely contained in oldCorpus are skipped — that work was
// already done on a previous turn the caller invoked Produce for — by
// generating only tuples with at least one position drawn from
// corpus \ oldCorpus, rather than materializing the full C^n and
// subtracting old_corpus^n from it. A nil oldCorpus is treated as empty.
func Produce(rule *Rule, corpus, oldCorpus *TheoremSet) []Production {
	n := rule.Arity()
	if n == 0 {
		return nil
	}
	if oldCorpus == nil {
		oldCorpus = NewTheoremSet()
	}

	oldSlice := oldCorpus.Slice()
	fullSlice := Union(oldCorpus, corpus).Slice()
	newSlice := newMembers(oldCorpus, corpus)

	var productions []Production
	for _, tuple := range generateTuples(n, oldSlice, fullSlice, newSlice) {
		productions = append(productions, tryTuple(rule, tuple))
	}
	return productions
}

func tryTuple(rule *Rule, tuple []*Theorem) Production {
	prod := Production{Tuple: tuple}

	bindingLists := make([][]AliasBinding, len(tuple))
	for i, th := range tuple {
		bl := rule.Antecedents[i].Match(th.String()).All()
		if len(bl) == 0 {
			return prod
		}
		bindingLists[i] = bl
	}

	for _, combo := range cartesian(bindingLists) {
		joined, ok := rule.aliases.Join(combo...)
		if !ok {
			continue
		}
		for _, cons := range rule.Consequents {
			prod.New = append(prod.New, NewTheorem(cons.Instantiate(joined), rule.Body, tuple...))
		}
	}
	return prod
}

// ApplyAll chains Produce over every rule in declaration order and flattens
// the results.
func ApplyAll(rules []*Rule, corpus, oldCorpus *TheoremSet) []Production {
	var all []Production
	for _, r := range rules {
		all = append(all, Produce(r, corpus, oldCorpus)...)
	}
	return all
}

func newMembers(oldSet *TheoremSet, corpus *TheoremSet) []*Theorem {
	var out []*Theorem
	for _, t := range corpus.Slice() {
		if !oldSet.Contains(t.String()) {
			out = append(out, t)
		}
	}
	return out
}

// generateTuples enumerates every n-tuple over fullSlice with at least one
// position drawn from newSlice, each exactly once: for position k (the
// leftmost new position), positions before k are constrained to oldSlice
// (so they cannot themselves be new — otherwise the tuple would already
// have been counted at a smaller k), position k ranges over newSlice, and
// positions after k range freely over fullSlice.
func generateTuples(n int, oldSlice, fullSlice, newSlice []*Theorem) [][]*Theorem {
	var tuples [][]*Theorem
	for k := 0; k < n; k++ {
		options := make([][]*Theorem, n)
		for i := 0; i < k; i++ {
			options[i] = oldSlice
		}
		options[k] = newSlice
		for i := k + 1; i < n; i++ {
			options[i] = fullSlice
		}
		tuples = append(tuples, cartesian(options)...)
	}
	return tuples
}

// cartesian computes the cartesian product of options, preserving the
// order of each factor and of the factors themselves.
func cartesian[T any](options [][]T) [][]T {
	if len(options) == 0 {
		return [][]T{{}}
	}
	rest := cartesian(options[1:])
	var result [][]T
	for _, v := range options[0] {
		for _, r := range rest {
			combo := make([]T, 0, len(r)+1)
			combo = append(combo, v)
			combo = append(combo, r...)
			result = append(result, combo)
		}
	}
	return result
}
