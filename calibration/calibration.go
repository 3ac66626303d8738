package calibration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/internal/textutil"
	"github.com/katalvlaran/advent/puzzle"
)

// ErrNoDigit indicates a line without any digit under the chosen rules.
var ErrNoDigit = errors.New("calibration: line has no digit")

var digitNames = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at line[i], if any.
func digitAt(line string, i int, words bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	rest := line[i:]
	for v, name := range digitNames {
		if strings.HasPrefix(rest, name) {
			return v, true
		}
	}
	return 0, false
}

// Value returns first*10 + last for line. When words is set, spelled digit
// names count as digits.
// Returns ErrNoDigit if the line holds no digit.
func Value(line string, words bool) (int, error) {
	first, last, found := 0, 0, false
	for i := range line {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if !found {
			first, found = d, true
		}
		last = d
	}
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrNoDigit, line)
	}
	return first*10 + last, nil
}

// Total sums Value over the non-empty lines of text.
func Total(text string, words bool) (int64, error) {
	var sum int64
	for i, line := range textutil.Lines(text) {
		v, err := Value(line, words)
		if err != nil {
			return 0, fmt.Errorf("calibration: line %d: %w", i+1, err)
		}
		sum += int64(v)
	}
	return sum, nil
}

// Solve answers day 1.
//
// A line without literal digits fails part 1, but puzzle inputs for part 2
// often carry only spelled digits. Such lines contribute 0 to part 1 so the
// same input can answer both parts.
func Solve(input string) (puzzle.Answer, error) {
	var p1 int64
	for _, line := range textutil.Lines(input) {
		if v, err := Value(line, false); err == nil {
			p1 += int64(v)
		}
	}
	p2, err := Total(input, true)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: p1, Part2: p2}, nil
}
