package formalsystems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveNotFound(t *testing.T) {
	registry := NewTheoremSet()
	registry.Add(NewTheorem("MI", AxiomProducer))

	_, found := Derive("MIU", registry)
	assert.False(t, found)
}

func TestDeriveAxiomAlone(t *testing.T) {
	registry := NewTheoremSet()
	registry.Add(NewTheorem("MI", AxiomProducer))

	lines, found := Derive("MI", registry)
	require.True(t, found)
	require.Len(t, lines, 1)
	assert.Equal(t, 0, lines[0].Gen)
	assert.Equal(t, "MI", lines[0].Theorem.String())
	assert.True(t, lines[0].Theorem.IsAxiom())
}

func TestDeriveWalksParentsBackToAxiomsReversed(t *testing.T) {
	mi := NewTheorem("MI", AxiomProducer)
	mii := NewTheorem("MII", "Mx => Mxx", mi)
	miiii := NewTheorem("MIIII", "Mx => Mxx", mii)

	registry := NewTheoremSet()
	registry.Add(mi)
	registry.Add(mii)
	registry.Add(miiii)

	lines, found := Derive("MIIII", registry)
	require.True(t, found)
	require.Len(t, lines, 3)

	// axioms first, target last — generation numbers count backward from
	// the target (gen 0) regardless of print order.
	assert.Equal(t, "MI", lines[0].Theorem.String())
	assert.Equal(t, 2, lines[0].Gen)
	assert.Equal(t, "MII", lines[1].Theorem.String())
	assert.Equal(t, 1, lines[1].Gen)
	assert.Equal(t, "MIIII", lines[2].Theorem.String())
	assert.Equal(t, 0, lines[2].Gen)
}

func TestDeriveWithTwoParents(t *testing.T) {
	a := NewTheorem("MI", AxiomProducer)
	b := NewTheorem("MII", AxiomProducer)
	c := NewTheorem("MIII", "Mx and My => Mxy", a, b)

	registry := NewTheoremSet()
	registry.Add(a)
	registry.Add(b)
	registry.Add(c)

	lines, found := Derive("MIII", registry)
	require.True(t, found)
	require.Len(t, lines, 3)
	last := lines[len(lines)-1]
	assert.Equal(t, "MIII", last.Theorem.String())
	assert.Len(t, last.Parents, 2)
}
