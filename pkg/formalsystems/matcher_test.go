package formalsystems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherLiteralOnly(t *testing.T) {
	m := &Matcher{segs: []matchSeg{{literal: "MI"}}}
	all := m.Match("MI").All()
	require.Len(t, all, 1)
	assert.Empty(t, all[0])

	assert.Empty(t, m.Match("MIU").All())
	assert.Empty(t, m.Match("M").All())
}

func TestMatcherSingleWildcardPlus(t *testing.T) {
	m := &Matcher{segs: []matchSeg{
		{literal: "M"},
		{alias: "x_0", base: 'I', kind: RepPlus},
	}}
	all := m.Match("MIII").All()
	require.Len(t, all, 1)
	assert.Equal(t, "III", all[0]["x_0"])

	assert.Empty(t, m.Match("M").All(), "plus requires at least one")
}

func TestMatcherWildcardStarAllowsEmpty(t *testing.T) {
	m := &Matcher{segs: []matchSeg{
		{literal: "M"},
		{alias: "x_0", base: 'I', kind: RepStar},
		{literal: "U"},
	}}
	all := m.Match("MU").All()
	require.Len(t, all, 1)
	assert.Equal(t, "", all[0]["x_0"])
}

func TestMatcherAnySymbolWildcard(t *testing.T) {
	m := &Matcher{segs: []matchSeg{
		{alias: "x_0", base: anySymbol, kind: RepStar},
	}}
	all := m.Match("MIUIU").All()
	require.Len(t, all, 1)
	assert.Equal(t, "MIUIU", all[0]["x_0"])
}

func TestMatcherTwoWildcardsEnumeratesEverySplit(t *testing.T) {
	m := &Matcher{segs: []matchSeg{
		{alias: "x_0", base: anySymbol, kind: RepPlus},
		{literal: "I"},
		{literal: "I"},
		{literal: "I"},
		{alias: "y_0", base: anySymbol, kind: RepStar},
	}}
	all := m.Match("MIIII").All()
	require.NotEmpty(t, all)
	for _, b := range all {
		assert.Equal(t, "MIIII", b["x_0"]+"III"+b["y_0"])
	}
}

func TestMatchIterLenAndAllConsume(t *testing.T) {
	m := &Matcher{segs: []matchSeg{{alias: "x_0", base: 'I', kind: RepStar}}}
	it := m.Match("III")
	assert.Equal(t, 1, it.Len()) // only "III" consumes the whole input
	all := it.All()
	assert.Len(t, all, 1)
	_, ok := it.Next()
	assert.False(t, ok)
}
