package formalsystems

import (
	"math"

	"github.com/hashicorp/go-hclog"
)

// Mode selects which search driver a definition calls for.
type Mode int

const (
	// ModeStep drives a definition whose every axiom schema is finite
	// (Dim() == 0): the whole axiom base is enumerated once, up front.
	ModeStep Mode = iota
	// ModeBucket drives a definition with at least one infinite schema:
	// axioms are drip-fed a bucket at a time, interleaved with rule
	// application.
	ModeBucket
)

func (m Mode) String() string {
	if m == ModeBucket {
		return "bucket"
	}
	return "step"
}

// Classify decides which driver a definition requires and, for the bucket
// driver, whether it must retain a "full" old_bucket across turns. Retention
// is required the moment any rule has more than one antecedent — a single
// antecedent rule only ever needs to try the newest bucket.
func Classify(schemas []*AxiomSchema, rules []*Rule) (mode Mode, full bool) {
	for _, s := range schemas {
		if s.Dim() > 0 {
			mode = ModeBucket
			break
		}
	}
	for _, r := range rules {
		if r.Arity() > 1 {
			full = true
			break
		}
	}
	return mode, full
}

// Trace receives the driver's turn-by-turn narration: the step/bucket
// boundary, every production attempt (successful or not), and is the
// extension point the CLI printer implements. A driver given a nil Trace
// uses NopTrace in its place.
type Trace interface {
	// Turn announces the start of step i or bucket t, with the theorems
	// the corpus or bucket holds as of that turn.
	Turn(index int, corpus []*Theorem)
	// Production reports one successful rule application.
	Production(rule *Rule, tuple []*Theorem, produced []*Theorem)
	// FailedAttempt reports one tuple that matched no antecedent, or
	// whose bindings were inconsistent.
	FailedAttempt(rule *Rule, tuple []*Theorem)
}

// NopTrace discards every event; it is the zero-value Trace.
type NopTrace struct{}

func (NopTrace) Turn(int, []*Theorem)                     {}
func (NopTrace) Production(*Rule, []*Theorem, []*Theorem) {}
func (NopTrace) FailedAttempt(*Rule, []*Theorem)          {}

// RunResult is a completed search's full state: every theorem ever derived,
// and how many turns it took to get there.
type RunResult struct {
	Registry *TheoremSet
	Turns    int
}

func traceOrNop(t Trace) Trace {
	if t == nil {
		return NopTrace{}
	}
	return t
}

func loggerOrNull(l hclog.Logger) hclog.Logger {
	if l == nil {
		return hclog.NewNullLogger()
	}
	return l
}

// applyTurn runs every rule against corpus/oldCorpus, narrates each attempt
// through trace, and returns the newly produced theorems (a fresh set —
// this is Cᵢ = apply_all(rules, Cᵢ₋₁), not a union with corpus).
func applyTurn(rules []*Rule, corpus, oldCorpus *TheoremSet, trace Trace) *TheoremSet {
	produced := NewTheoremSet()
	for _, r := range rules {
		for _, prod := range Produce(r, corpus, oldCorpus) {
			if len(prod.New) == 0 {
				trace.FailedAttempt(r, prod.Tuple)
				continue
			}
			trace.Production(r, prod.Tuple, prod.New)
			for _, th := range prod.New {
				produced.Add(th)
			}
		}
	}
	return produced
}

// RunStep drives the finite-axiom-base search: C₁ is the first
// steps ground axioms from the round-robin enumerator; for i ≥ 2,
// Cᵢ = apply_all(rules, Cᵢ₋₁) — each turn's corpus is exactly the previous
// turn's output, not an accumulation of every theorem ever derived
// (old_corpus is always empty in step mode). Every theorem ever produced is
// still recorded in the returned registry, for Derive and axiom-membership
// lookups.
func RunStep(schemas []*AxiomSchema, rules []*Rule, steps int, trace Trace, logger hclog.Logger) *RunResult {
	trace = traceOrNop(trace)
	logger = loggerOrNull(logger)

	registry := NewTheoremSet()
	rr := NewRoundRobin(schemas)
	corpus := NewTheoremSet()
	for i := 0; i < steps; i++ {
		th, ok := rr.Next()
		if !ok {
			break
		}
		registry.Add(th)
		corpus.Add(th)
	}
	trace.Turn(1, corpus.Slice())
	logger.Debug("axiom corpus drawn", "count", corpus.Len())

	turn := 1
	for turn < steps {
		turn++
		corpus = applyTurn(rules, corpus, nil, trace)
		for _, th := range corpus.Slice() {
			registry.Add(th)
		}
		trace.Turn(turn, corpus.Slice())
		logger.Trace("step complete", "turn", turn, "corpus size", corpus.Len())
	}

	return &RunResult{Registry: registry, Turns: turn}
}

// RunBucket drives the infinite-axiom-base search. Each turn draws
// one fresh axiom into bucket, computes new_bucket = apply_all(rules,
// bucket, old_bucket), retains old_bucket ∪ bucket for the next turn only
// when full is set (required for multi-antecedent rules to find
// combinations spanning several turns), then replaces bucket with
// new_bucket. Termination is on minLen (every member of the post-turn
// bucket has length ≥ minLen — vacuously true, and so terminating
// immediately, the turn a ruleless or exhausted system empties the bucket)
// or maxTurns, whichever is reached first; a non-positive bound is treated
// as disabled, and at least one must be positive for guaranteed
// termination. Every theorem ever added to bucket or produced into it is
// recorded in the returned registry.
func RunBucket(schemas []*AxiomSchema, rules []*Rule, full bool, minLen int, maxTurns int, trace Trace, logger hclog.Logger) *RunResult {
	trace = traceOrNop(trace)
	logger = loggerOrNull(logger)

	registry := NewTheoremSet()
	bucket := NewTheoremSet()
	oldBucket := NewTheoremSet()
	rr := NewRoundRobin(schemas)

	turn := 0
	for maxTurns <= 0 || turn < maxTurns {
		turn++

		axiom, ok := rr.Next()
		if !ok {
			break
		}
		bucket.Add(axiom)
		registry.Add(axiom)
		trace.Turn(turn, bucket.Slice())

		newBucket := applyTurn(rules, bucket, oldBucket, trace)
		for _, th := range newBucket.Slice() {
			registry.Add(th)
		}
		logger.Trace("bucket turn complete", "turn", turn, "bucket size", bucket.Len(), "new", newBucket.Len())

		if full {
			oldBucket = Union(oldBucket, bucket)
		} else {
			oldBucket = NewTheoremSet()
		}
		bucket = newBucket

		if minLen > 0 && bucketMinLen(bucket) >= minLen {
			break
		}
	}

	return &RunResult{Registry: registry, Turns: turn}
}

// bucketMinLen returns the shortest member's length, or math.MaxInt for an
// empty bucket: "every member has length >= minLen" is vacuously true of
// an empty bucket, so the caller's >= comparison must hold no matter how
// large minLen is.
func bucketMinLen(bucket *TheoremSet) int {
	min := math.MaxInt
	for _, t := range bucket.Slice() {
		if t.Len() < min {
			min = t.Len()
		}
	}
	return min
}
