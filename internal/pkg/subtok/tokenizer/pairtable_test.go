package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairTableEvictsNonPositive(t *testing.T) {
	table := make(pairTable)
	p := symbolPair{"a", "b"}

	table.add(p, 2)
	require.Equal(t, 2, table[p])

	table.add(p, -2)
	_, present := table[p]
	require.False(t, present, "zero-count entry must be evicted")

	// decrementing a missing entry must not resurrect it
	table.add(p, -1)
	_, present = table[p]
	require.False(t, present)

	_, _, found := table.max()
	require.False(t, found)
}

func TestPairTableMax(t *testing.T) {
	table := make(pairTable)
	table.add(symbolPair{"a", "b"}, 3)
	table.add(symbolPair{"b", "c"}, 5)
	table.add(symbolPair{"c", "d"}, 1)

	best, count, found := table.max()
	require.True(t, found)
	require.Equal(t, symbolPair{"b", "c"}, best)
	require.Equal(t, 5, count)
}

func TestPairTableMaxTieBreak(t *testing.T) {
	// equal counts resolve to the lexicographically smallest pair,
	// regardless of insertion order
	table := make(pairTable)
	table.add(symbolPair{"b", "a"}, 4)
	table.add(symbolPair{"a", "b"}, 4)
	table.add(symbolPair{"a", "a"}, 4)

	best, count, found := table.max()
	require.True(t, found)
	require.Equal(t, symbolPair{"a", "a"}, best)
	require.Equal(t, 4, count)
}

func TestPairTableMerge(t *testing.T) {
	a := pairTable{symbolPair{"a", "b"}: 2, symbolPair{"b", "c"}: 1}
	b := pairTable{symbolPair{"a", "b"}: 3}
	a.merge(b)
	require.Equal(t, 5, a[symbolPair{"a", "b"}])
	require.Equal(t, 1, a[symbolPair{"b", "c"}])
}
