package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func constSolver(a, b int64) puzzle.Solver {
	return func(string) (puzzle.Answer, error) { return puzzle.Answer{Part1: a, Part2: b}, nil }
}

func TestRegistry(t *testing.T) {
	r := puzzle.NewRegistry()
	require.NoError(t, r.Register(5, "five", constSolver(1, 2)))
	require.NoError(t, r.Register(1, "one", constSolver(3, 4)))

	e, err := r.Lookup(5)
	require.NoError(t, err)
	require.Equal(t, "five", e.Title)
	ans, err := e.Solve("")
	require.NoError(t, err)
	require.Equal(t, puzzle.Answer{Part1: 1, Part2: 2}, ans)

	entries := r.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, 1, entries[0].Day)
	require.Equal(t, 5, entries[1].Day)
}

func TestRegistry_Errors(t *testing.T) {
	r := puzzle.NewRegistry()
	require.ErrorIs(t, r.Register(0, "zero", constSolver(0, 0)), puzzle.ErrInvalidDay)
	require.ErrorIs(t, r.Register(26, "late", constSolver(0, 0)), puzzle.ErrInvalidDay)
	require.Error(t, r.Register(3, "nil", nil))

	require.NoError(t, r.Register(3, "three", constSolver(0, 0)))
	require.ErrorIs(t, r.Register(3, "again", constSolver(0, 0)), puzzle.ErrDuplicateDay)

	_, err := r.Lookup(4)
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)
}
