package wasteland_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/wasteland"
)

const sample1 = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

const sample2 = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const ghosts = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

func TestParse(t *testing.T) {
	m, err := wasteland.Parse(sample1)
	require.NoError(t, err)
	require.Equal(t, "RL", m.Steps)
	require.Equal(t, wasteland.Node{Left: "BBB", Right: "CCC"}, m.Nodes["AAA"])
}

func TestStepsToGoal(t *testing.T) {
	for text, want := range map[string]int64{sample1: 2, sample2: 6} {
		m, err := wasteland.Parse(text)
		require.NoError(t, err)
		got, err := m.StepsToGoal()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestGhostSteps(t *testing.T) {
	m, err := wasteland.Parse(ghosts)
	require.NoError(t, err)
	got, err := m.GhostSteps()
	require.NoError(t, err)
	require.Equal(t, int64(6), got)
}

func TestWalk_NoExit(t *testing.T) {
	m, err := wasteland.Parse("L\n\nAAA = (BBB, BBB)\nBBB = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)\n")
	require.NoError(t, err)
	_, err = m.StepsToGoal()
	require.ErrorIs(t, err, wasteland.ErrNoExit)
}

func TestSolve(t *testing.T) {
	ans, err := wasteland.Solve(sample2)
	require.NoError(t, err)
	require.Equal(t, int64(6), ans.Part1)
	require.Equal(t, int64(6), ans.Part2) // AAA is the only ghost start
}

// TestSolve_GhostOnly checks that a network without AAA still answers part 2.
func TestSolve_GhostOnly(t *testing.T) {
	ans, err := wasteland.Solve(ghosts)
	require.NoError(t, err)
	require.Zero(t, ans.Part1)
	require.Equal(t, int64(6), ans.Part2)

	_, err = wasteland.Solve("L\n\nAAA = (BBB, BBB)\nBBB = (AAA, AAA)\n")
	require.ErrorIs(t, err, wasteland.ErrNoExit)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		text string
		err  error
	}{
		{"RL\n", wasteland.ErrParse},
		{"RX\n\nAAA = (AAA, AAA)\n", wasteland.ErrParse},
		{"R\n\nAAA (AAA, AAA)\n", wasteland.ErrParse},
		{"R\n\nAAA = (AAA AAA)\n", wasteland.ErrParse},
		{"R\n\nAAA = (AAA, BBB)\n", wasteland.ErrUnknownNode},
	}
	for _, tc := range cases {
		_, err := wasteland.Parse(tc.text)
		require.ErrorIs(t, err, tc.err, tc.text)
	}

	m, err := wasteland.Parse("R\n\nBBB = (BBB, BBB)\n")
	require.NoError(t, err)
	_, err = m.StepsToGoal()
	require.ErrorIs(t, err, wasteland.ErrUnknownNode)
}
