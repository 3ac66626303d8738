package boatrace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/boatrace"
)

const sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestDistance(t *testing.T) {
	r := boatrace.Race{Time: 7}
	want := []int64{0, 6, 10, 12, 12, 10, 6, 0}
	for hold, d := range want {
		require.Equal(t, d, r.Distance(int64(hold)), "hold %d", hold)
	}
}

func TestWays(t *testing.T) {
	cases := []struct {
		race boatrace.Race
		want int64
	}{
		{boatrace.Race{Time: 7, Record: 9}, 4},
		{boatrace.Race{Time: 15, Record: 40}, 8},
		{boatrace.Race{Time: 30, Record: 200}, 9},
		{boatrace.Race{Time: 71530, Record: 940200}, 71503},
		{boatrace.Race{Time: 7, Record: 12}, 0},
		{boatrace.Race{Time: 0, Record: 0}, 0},
		{boatrace.Race{Time: 2, Record: 0}, 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.race.Ways(), "%+v", tc.race)
	}
}

// TestWays_MatchesCount compares the closed form with direct counting.
func TestWays_MatchesCount(t *testing.T) {
	for time := int64(0); time < 60; time++ {
		for rec := int64(0); rec < time*time/4+2; rec++ {
			r := boatrace.Race{Time: time, Record: rec}
			var want int64
			for h := int64(0); h <= time; h++ {
				if r.Distance(h) > rec {
					want++
				}
			}
			require.Equal(t, want, r.Ways(), "%+v", r)
		}
	}
}

func TestSolve(t *testing.T) {
	ans, err := boatrace.Solve(sample)
	require.NoError(t, err)
	require.Equal(t, int64(288), ans.Part1)
	require.Equal(t, int64(71503), ans.Part2)
}

func TestParse_Errors(t *testing.T) {
	for _, text := range []string{
		"",
		"Time: 1 2\n",
		"Time: 1 2\nDistance: 3\n",
		"Tim: 1\nDistance: 3\n",
		"Time: 1\nDist: 3\n",
		"Time: x\nDistance: 3\n",
	} {
		_, err := boatrace.Solve(text)
		require.ErrorIs(t, err, boatrace.ErrParse, text)
	}
}
