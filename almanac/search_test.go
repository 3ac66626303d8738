package almanac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMinByRange_ProbeBound checks the band walk probes each band at most
// once, independent of how many values the seed ranges hold.
func TestMinByRange_ProbeBound(t *testing.T) {
	m, err := FromTriples("seed", "location", [][3]int64{
		{5, 1_000_000_000, 2_000_000_000},
		{3_000_000_000, 0, 1_000_000_000},
	})
	require.NoError(t, err)

	bands := m.Bands()
	seeds := mergeSpans([]Span{{Start: 0, Stop: 4_000_000_000}, {Start: 1 << 40, Stop: 1<<40 + 1}})
	best, probes, ok := minByRange(bands, seeds)
	require.True(t, ok)
	require.Equal(t, int64(5), best)
	require.LessOrEqual(t, probes, len(bands))
	require.Len(t, bands, 4)
}

// TestMinByRange_StopsEarly verifies bands starting above the best candidate
// are never probed.
func TestMinByRange_StopsEarly(t *testing.T) {
	m, err := FromTriples("seed", "location", [][3]int64{
		{0, 500, 10},
		{1000, 0, 10},
		{2000, 10, 10},
	})
	require.NoError(t, err)

	bands := m.Bands()
	best, probes, ok := minByRange(bands, []Span{{Start: 500, Stop: 501}})
	require.True(t, ok)
	require.Zero(t, best)
	require.Equal(t, 2, probes) // leading identity gap, then the hit
}

func TestMergeSpans(t *testing.T) {
	got := mergeSpans([]Span{{5, 10}, {0, 3}, {3, 4}, {8, 12}, {20, 20}, {15, 16}})
	require.Equal(t, []Span{{0, 4}, {5, 12}, {15, 16}}, got)
	require.Empty(t, mergeSpans(nil))
}

func TestSplitBlocks(t *testing.T) {
	blocks := splitBlocks("a\n  \nb\nc\n\n\nd")
	require.Len(t, blocks, 3)
	require.Equal(t, block{line: 1, lines: []string{"a"}}, blocks[0])
	require.Equal(t, block{line: 3, lines: []string{"b", "c"}}, blocks[1])
	require.Equal(t, block{line: 7, lines: []string{"d"}}, blocks[2])
}
