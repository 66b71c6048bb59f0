package alias

import (
	"testing"

	"github.com/pavlosg/whirl"
	"github.com/stretchr/testify/require"
)

func TestMarginalFrequencies(t *testing.T) {
	table, err := NewTable(whirl.NewDistinct(987654321), []Entry[string]{
		{Item: "A", Weight: 1.0},
		{Item: "B", Weight: 3.0},
	})
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	const n = 100000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		item, err := table.Next()
		require.NoError(t, err)
		counts[item]++
	}
	require.Equal(t, n, counts["A"]+counts["B"])
	require.InDelta(t, 0.75, float64(counts["B"])/n, 0.01)
}

func TestUniformWeights(t *testing.T) {
	table, err := NewTable(whirl.NewLaser(11), []Entry[int]{
		{Item: 0, Weight: 2}, {Item: 1, Weight: 2},
		{Item: 2, Weight: 2}, {Item: 3, Weight: 2},
	})
	require.NoError(t, err)

	const n = 40000
	counts := make([]int, 4)
	for i := 0; i < n; i++ {
		item, err := table.Next()
		require.NoError(t, err)
		counts[item]++
	}
	for _, c := range counts {
		require.InDelta(t, 0.25, float64(c)/n, 0.02)
	}
}

func TestZeroWeightOccupiesSlot(t *testing.T) {
	table, err := NewTable(whirl.NewDistinct(8), []Entry[string]{
		{Item: "never", Weight: 0},
		{Item: "always", Weight: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	for i := 0; i < 1000; i++ {
		item, err := table.Next()
		require.NoError(t, err)
		require.Equal(t, "always", item)
	}
}

func TestNegativeWeightTreatedAsZero(t *testing.T) {
	table, err := NewTable(whirl.NewDistinct(9), []Entry[string]{
		{Item: "neg", Weight: -4},
		{Item: "pos", Weight: 2},
	})
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		item, err := table.Next()
		require.NoError(t, err)
		require.Equal(t, "pos", item)
	}
}

func TestSingleEntry(t *testing.T) {
	table, err := NewTable(whirl.NewRomuTrio(3), []Entry[string]{{Item: "only", Weight: 5}})
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		item, err := table.Next()
		require.NoError(t, err)
		require.Equal(t, "only", item)
	}
}

func TestEmptyTableErrors(t *testing.T) {
	table := New[string](whirl.NewDistinct(1))
	require.Equal(t, 0, table.Len())
	_, err := table.Next()
	require.ErrorIs(t, err, ErrEmpty)

	require.ErrorIs(t, table.Reset(nil), ErrNoEntries)
	require.ErrorIs(t, table.Reset([]Entry[string]{}), ErrNoEntries)

	err = table.Reset([]Entry[string]{{Item: "x", Weight: 0}, {Item: "y", Weight: -1}})
	require.ErrorIs(t, err, ErrNoWeight)

	_, err = NewTable(whirl.NewDistinct(1), []Entry[string]{})
	require.ErrorIs(t, err, ErrNoEntries)
}

func TestResetReplacesTable(t *testing.T) {
	table, err := NewTable(whirl.NewDistinct(2), []Entry[string]{
		{Item: "old", Weight: 1},
	})
	require.NoError(t, err)

	require.NoError(t, table.Reset([]Entry[string]{{Item: "new", Weight: 1}}))
	require.Equal(t, 1, table.Len())
	item, err := table.Next()
	require.NoError(t, err)
	require.Equal(t, "new", item)

	// A failed rebuild leaves the previous table intact.
	require.Error(t, table.Reset(nil))
	item, err = table.Next()
	require.NoError(t, err)
	require.Equal(t, "new", item)
}

func TestDeterministicSampling(t *testing.T) {
	entries := []Entry[int]{{Item: 1, Weight: 1}, {Item: 2, Weight: 2}, {Item: 3, Weight: 3}}
	a, err := NewTable(whirl.NewLaser(77), entries)
	require.NoError(t, err)
	b, err := NewTable(whirl.NewLaser(77), entries)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		av, err := a.Next()
		require.NoError(t, err)
		bv, err := b.Next()
		require.NoError(t, err)
		require.Equal(t, av, bv)
	}
}
