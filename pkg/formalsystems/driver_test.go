package formalsystems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileMIU(t *testing.T) *System {
	t.Helper()
	def := Definition{
		Axioms: []string{"MI"},
		Rules: []string{
			"x is .*, xI => xIU",
			"x is .*, Mx => Mxx",
			"x is .*, y is .*, xIIIy => xUy",
			"x is .*, y is .*, xUUy => xy",
		},
	}
	sys, err := Compile(def, nil)
	require.NoError(t, err)
	return sys
}

func TestClassifyStepForFiniteAxiomBase(t *testing.T) {
	sys := compileMIU(t)
	mode, full := Classify(sys.Schemas, sys.Rules)
	assert.Equal(t, ModeStep, mode)
	assert.False(t, full, "every MIU rule has a single antecedent")
}

func TestClassifyBucketForInfiniteAxiomBase(t *testing.T) {
	s, err := CompileSchema("a", "x is I+, Mx")
	require.NoError(t, err)
	mode, _ := Classify([]*AxiomSchema{s}, nil)
	assert.Equal(t, ModeBucket, mode)
}

func TestClassifyFullWhenAnyRuleHasMultipleAntecedents(t *testing.T) {
	r, err := CompileRule("concat", "x is .*, y is .*, Mx and My => Mxy")
	require.NoError(t, err)
	_, full := Classify(nil, []*Rule{r})
	assert.True(t, full)
}

func TestRunStepDerivesMIUScenario(t *testing.T) {
	sys := compileMIU(t)
	result := RunStep(sys.Schemas, sys.Rules, 3, nil, nil)

	assert.True(t, result.Registry.Contains("MI"))
	assert.True(t, result.Registry.Contains("MIU"))
	assert.True(t, result.Registry.Contains("MII"))
	assert.True(t, result.Registry.Contains("MIIII"))
	assert.True(t, result.Registry.Contains("MIUIU"))
}

func TestRunStepTraceReceivesEveryTurn(t *testing.T) {
	sys := compileMIU(t)
	rec := &recordingTrace{}
	RunStep(sys.Schemas, sys.Rules, 2, rec, nil)
	assert.Equal(t, 2, len(rec.turns)) // the axiom turn (1) and one rule turn (2)
}

func TestRunStepCorpusDoesNotAccumulate(t *testing.T) {
	// C_i = apply_all(rules, C_{i-1}) — each turn's corpus is the
	// previous turn's output alone, not a running union. With a doubling
	// rule applied twice, MI must not survive into the final corpus even
	// though it is still present in the registry.
	s, err := CompileSchema("a", "MI")
	require.NoError(t, err)
	r, err := CompileRule("double", "x is .*, Mx => Mxx")
	require.NoError(t, err)

	rec := &recordingTrace{}
	result := RunStep([]*AxiomSchema{s}, []*Rule{r}, 3, rec, nil)
	assert.True(t, result.Registry.Contains("MI"))
	assert.True(t, result.Registry.Contains("MII"))
	assert.True(t, result.Registry.Contains("MIIII"))
	require.Len(t, rec.turns, 3)
	assert.Equal(t, []string{"MIIII"}, stringsOf(rec.turns[2]))
}

func TestRunBucketTerminatesOnMinLen(t *testing.T) {
	s, err := CompileSchema("a", "x is I+, Mx")
	require.NoError(t, err)
	r, err := CompileRule("double", "x is .*, Mx => Mxx")
	require.NoError(t, err)

	result := RunBucket([]*AxiomSchema{s}, []*Rule{r}, false, 5, 0, nil, nil)
	assert.LessOrEqual(t, result.Turns, 10)
	assert.True(t, result.Registry.Contains("MIIII"))
}

func TestRunBucketTerminatesOnMaxTurns(t *testing.T) {
	s, err := CompileSchema("a", "x is I+, Mx")
	require.NoError(t, err)
	result := RunBucket([]*AxiomSchema{s}, nil, false, 0, 5, nil, nil)
	assert.Equal(t, 5, result.Turns)
}

type recordingTrace struct {
	turns [][]*Theorem
}

func (r *recordingTrace) Turn(_ int, introduced []*Theorem) { r.turns = append(r.turns, introduced) }
func (r *recordingTrace) Production(*Rule, []*Theorem, []*Theorem) {}
func (r *recordingTrace) FailedAttempt(*Rule, []*Theorem)          {}
