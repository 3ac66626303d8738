package schematic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/puzzle"
)

// ErrParse indicates a schematic that is not a rectangular grid.
var ErrParse = errors.New("schematic: parse error")

const (
	blank = '.'
	gear  = '*'
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != blank && !isDigit(b) && b != ' ' }

// Number is a horizontal digit run and the symbols around it.
type Number struct {
	Value int64
	At    gridgraph.Point // leftmost digit
	Width int

	// symbols holds the row-major index of every adjacent symbol cell.
	symbols []int
}

// Part reports whether the number touches any symbol.
func (n Number) Part() bool { return len(n.symbols) > 0 }

// Schematic is a parsed grid with its numbers in reading order.
type Schematic struct {
	grid    *gridgraph.Grid
	numbers []Number
}

// Parse builds a Schematic.
// Returns ErrParse wrapping the grid error for empty or ragged input.
// Complexity: O(W×H).
func Parse(text string) (*Schematic, error) {
	g, err := gridgraph.FromText(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	s := &Schematic{grid: g}
	for _, run := range g.ConnectedComponents(isDigit, gridgraph.ConnRow) {
		s.numbers = append(s.numbers, s.number(run))
	}
	return s, nil
}

// number reads the value of run and collects its distinct adjacent symbols.
func (s *Schematic) number(run []int) Number {
	n := Number{At: s.grid.Coordinate(run[0]), Width: len(run)}
	seen := make(map[gridgraph.Point]bool)
	for _, idx := range run {
		p := s.grid.Coordinate(idx)
		b, _ := s.grid.At(p)
		n.Value = n.Value*10 + int64(b-'0')
		for _, q := range s.grid.Neighbors(p, gridgraph.Conn8) {
			if c, _ := s.grid.At(q); isSymbol(c) && !seen[q] {
				seen[q] = true
				n.symbols = append(n.symbols, q.Y*s.grid.Width+q.X)
			}
		}
	}
	return n
}

// Numbers returns every number in reading order.
func (s *Schematic) Numbers() []Number {
	out := make([]Number, len(s.numbers))
	copy(out, s.numbers)
	return out
}

// PartSum adds up the part numbers.
func (s *Schematic) PartSum() int64 {
	var sum int64
	for _, n := range s.numbers {
		if n.Part() {
			sum += n.Value
		}
	}
	return sum
}

// GearRatios returns the sum over gears of the product of their two numbers.
func (s *Schematic) GearRatios() int64 {
	touching := make(map[int][]int64)
	for _, n := range s.numbers {
		for _, idx := range n.symbols {
			if c, _ := s.grid.At(s.grid.Coordinate(idx)); c == gear {
				touching[idx] = append(touching[idx], n.Value)
			}
		}
	}
	var sum int64
	for _, vals := range touching {
		if len(vals) == 2 {
			sum += vals[0] * vals[1]
		}
	}
	return sum
}

// Solve answers day 3.
func Solve(input string) (puzzle.Answer, error) {
	s, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: s.PartSum(), Part2: s.GearRatios()}, nil
}
