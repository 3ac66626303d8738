package oasis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/advent/internal/mathx"
	"github.com/katalvlaran/advent/internal/textutil"
	"github.com/katalvlaran/advent/puzzle"
)

// ErrParse indicates a history line that is empty or not integers.
var ErrParse = errors.New("oasis: parse error")

// differences returns the difference table of h, h itself first, up to and
// excluding the first all-zero row.
func differences(h []int64) [][]int64 {
	var rows [][]int64
	cur := h
	for len(cur) > 0 && !allZero(cur) {
		rows = append(rows, cur)
		next := make([]int64, len(cur)-1)
		for i := range next {
			next[i] = cur[i+1] - cur[i]
		}
		cur = next
	}
	return rows
}

func allZero(xs []int64) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

// Next predicts the value after h.
// Complexity: O(n²).
func Next(h []int64) int64 {
	var v int64
	for _, row := range differences(h) {
		v += row[len(row)-1]
	}
	return v
}

// Prev predicts the value before h.
// Complexity: O(n²).
func Prev(h []int64) int64 {
	rows := differences(h)
	var v int64
	for i := len(rows) - 1; i >= 0; i-- {
		v = rows[i][0] - v
	}
	return v
}

// Parse reads one history per line.
func Parse(text string) ([][]int64, error) {
	var out [][]int64
	for i, line := range textutil.Lines(text) {
		h, err := textutil.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, i+1, err)
		}
		out = append(out, h)
	}
	return out, nil
}

// Solve answers day 9: the sums of Next and of Prev over all histories.
func Solve(input string) (puzzle.Answer, error) {
	hs, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	next := make([]int64, len(hs))
	prev := make([]int64, len(hs))
	for i, h := range hs {
		next[i], prev[i] = Next(h), Prev(h)
	}
	return puzzle.Answer{Part1: mathx.Sum(next...), Part2: mathx.Sum(prev...)}, nil
}
