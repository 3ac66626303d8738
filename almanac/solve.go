package almanac

import "github.com/katalvlaran/advent/puzzle"

// Solve answers day 5: the lowest location over the listed seeds and over
// the seed ranges.
func Solve(input string) (puzzle.Answer, error) {
	a, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	byRange, err := a.MinLocationByRange()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: a.MinLocationPerSeed(), Part2: byRange}, nil
}
