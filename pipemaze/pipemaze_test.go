package pipemaze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/pipemaze"
)

const square = `.....
.S-7.
.|.|.
.L-J.
.....
`

const winding = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

const enclosed4 = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

const enclosed8 = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

func TestTrace(t *testing.T) {
	loop, err := pipemaze.Trace(square)
	require.NoError(t, err)
	require.Len(t, loop, 8)
	require.Equal(t, gridgraph.Point{X: 1, Y: 1}, loop[0])
	require.Equal(t, gridgraph.Point{X: 1, Y: 2}, loop[len(loop)-1])
}

func TestFarthest(t *testing.T) {
	for text, want := range map[string]int64{square: 4, winding: 8} {
		loop, err := pipemaze.Trace(text)
		require.NoError(t, err)
		require.Equal(t, want, loop.Farthest())
	}
}

func TestEnclosed(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int64
	}{
		{"Square", square, 1},
		{"Winding", winding, 1},
		{"Four", enclosed4, 4},
		{"Eight", enclosed8, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ans, err := pipemaze.Solve(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.want, ans.Part2)
		})
	}
}

func TestTrace_Errors(t *testing.T) {
	cases := []struct {
		text string
		err  error
	}{
		{"", pipemaze.ErrParse},
		{"...\n..\n", pipemaze.ErrParse},
		{"...\n.|.\n", pipemaze.ErrNoStart},
		{"S-.\n...\n", pipemaze.ErrBrokenLoop},
		{".S.\n...\n", pipemaze.ErrBrokenLoop},
	}
	for _, tc := range cases {
		_, err := pipemaze.Trace(tc.text)
		require.ErrorIs(t, err, tc.err, tc.text)
	}
}
