package scratchcard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/scratchcard"
)

const sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestParseCard(t *testing.T) {
	c, err := scratchcard.ParseCard("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)
	require.Equal(t, scratchcard.Card{Number: 1, Matches: 4}, c)
	require.Equal(t, int64(8), c.Score())
}

func TestSample(t *testing.T) {
	cards, err := scratchcard.Parse(sample)
	require.NoError(t, err)

	matches := make([]int, 0, len(cards))
	for _, c := range cards {
		matches = append(matches, c.Matches)
	}
	require.Equal(t, []int{4, 2, 2, 1, 0, 0}, matches)
	require.Equal(t, int64(13), scratchcard.TotalScore(cards))
	require.Equal(t, int64(30), scratchcard.Copies(cards))
}

func TestCopies_ClampedAtEnd(t *testing.T) {
	cards := []scratchcard.Card{{Number: 1, Matches: 1}, {Number: 2, Matches: 5}}
	require.Equal(t, int64(3), scratchcard.Copies(cards))
}

func TestSolve(t *testing.T) {
	ans, err := scratchcard.Solve(sample)
	require.NoError(t, err)
	require.Equal(t, int64(13), ans.Part1)
	require.Equal(t, int64(30), ans.Part2)
}

func TestParse_Errors(t *testing.T) {
	for _, line := range []string{
		"Card 1 41 | 41",
		"Ticket 1: 41 | 41",
		"Card x: 41 | 41",
		"Card 1: 41 41",
		"Card 1: 4a | 41",
		"Card 1: 41 | b",
	} {
		_, err := scratchcard.Parse(line)
		require.ErrorIs(t, err, scratchcard.ErrParse, line)
	}
}
