package almanac_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/almanac"
)

// TestReduce_SeedSoilFertilizer checks the documented composition of the
// first two sample stages.
func TestReduce_SeedSoilFertilizer(t *testing.T) {
	a := mustParseMap(t, seedToSoil)
	b := mustParseMap(t, soilToFertilizer)

	got, err := a.Reduce(b)
	require.NoError(t, err)
	require.Equal(t, "seed", got.Source)
	require.Equal(t, "fertilizer", got.Dest)

	want := []almanac.Entry{
		entry(0, 15, 39),
		entry(15, 50, -15),
		entry(50, 52, -13),
		entry(52, 98, 2),
		entry(98, 100, -63),
	}
	if diff := cmp.Diff(want, got.Entries()); diff != "" {
		t.Errorf("Reduce entries mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_DomainMismatch(t *testing.T) {
	a := mustParseMap(t, seedToSoil)
	_, err := a.Reduce(a)
	require.ErrorIs(t, err, almanac.ErrDomainMismatch)

	_, err = a.Reduce(nil)
	require.ErrorIs(t, err, almanac.ErrNilMap)
}

// TestReduce_IdentityGapThroughOther checks that values m leaves untouched
// still pick up other's offsets, and values m moves away do not.
func TestReduce_IdentityGapThroughOther(t *testing.T) {
	// m sends [0,10) to [100,110); 0..9 in the intermediate domain are
	// reached only from nothing, 10..19 from themselves.
	m, err := almanac.NewRangeMap("a", "b", []almanac.Entry{entry(0, 10, 100)})
	require.NoError(t, err)
	other, err := almanac.NewRangeMap("b", "c", []almanac.Entry{entry(0, 20, 1000)})
	require.NoError(t, err)

	got, err := m.Reduce(other)
	require.NoError(t, err)
	for x := int64(-5); x < 130; x++ {
		require.Equal(t, other.Transform(m.Transform(x)), got.Transform(x), "x=%d", x)
	}
	require.Equal(t, int64(100), got.Transform(0))
	require.Equal(t, int64(1015), got.Transform(15))
}

func TestReduce_EmptyMaps(t *testing.T) {
	m, err := almanac.NewRangeMap("a", "b", nil)
	require.NoError(t, err)
	other, err := almanac.NewRangeMap("b", "c", nil)
	require.NoError(t, err)

	got, err := m.Reduce(other)
	require.NoError(t, err)
	require.Zero(t, got.Len())
	require.Equal(t, "a", got.Source)
	require.Equal(t, "c", got.Dest)
}

func TestReduceChain_Errors(t *testing.T) {
	_, err := almanac.ReduceChain()
	require.ErrorIs(t, err, almanac.ErrEmptyChain)

	a := mustParseMap(t, seedToSoil)
	_, err = almanac.ReduceChain(a, mustParseMap(t, seedToSoil))
	require.ErrorIs(t, err, almanac.ErrDomainMismatch)
}

// randomChain builds k chained stages with random disjoint entries.
func randomChain(t testing.TB, rng *rand.Rand, k int) []*almanac.RangeMap {
	names := []string{"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8"}
	maps := make([]*almanac.RangeMap, 0, k)
	for i := 0; i < k; i++ {
		var entries []almanac.Entry
		pos := int64(rng.Intn(20))
		for j := 0; j < 1+rng.Intn(6); j++ {
			n := int64(1 + rng.Intn(30))
			entries = append(entries, entry(pos, pos+n, int64(rng.Intn(101)-50)))
			pos += n + int64(rng.Intn(10))
		}
		m, err := almanac.NewRangeMap(names[i], names[i+1], entries)
		require.NoError(t, err)
		maps = append(maps, m)
	}
	return maps
}

// TestReduce_TransformEquivalence checks composed.Transform(x) equals the
// stage-by-stage application on random chains.
func TestReduce_TransformEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 50; round++ {
		chain := randomChain(t, rng, 2+rng.Intn(6))
		composed, err := almanac.ReduceChain(chain...)
		require.NoError(t, err)

		for x := int64(-60); x < 300; x++ {
			want := x
			for _, st := range chain {
				want = st.Transform(want)
			}
			require.Equal(t, want, composed.Transform(x), "round %d, x=%d", round, x)
		}
	}
}

// TestReduce_Associativity compares ((A·B)·C) with (A·(B·C)).
func TestReduce_Associativity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 50; round++ {
		chain := randomChain(t, rng, 3)
		a, b, c := chain[0], chain[1], chain[2]

		ab, err := a.Reduce(b)
		require.NoError(t, err)
		left, err := ab.Reduce(c)
		require.NoError(t, err)

		bc, err := b.Reduce(c)
		require.NoError(t, err)
		right, err := a.Reduce(bc)
		require.NoError(t, err)

		for x := int64(-60); x < 300; x++ {
			require.Equal(t, left.Transform(x), right.Transform(x), "round %d, x=%d", round, x)
		}
	}
}

// TestReduce_NormalizedOutput checks the composed entries keep the RangeMap
// invariants: sorted, disjoint, no mergeable neighbours.
func TestReduce_NormalizedOutput(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for round := 0; round < 50; round++ {
		composed, err := almanac.ReduceChain(randomChain(t, rng, 4)...)
		require.NoError(t, err)
		es := composed.Entries()
		for i := 1; i < len(es); i++ {
			prev, cur := es[i-1], es[i]
			require.LessOrEqual(t, prev.Source.Stop, cur.Source.Start)
			require.False(t, prev.Source.Stop == cur.Source.Start && prev.Offset == cur.Offset,
				"mergeable neighbours %v %v", prev, cur)
		}
	}
}
