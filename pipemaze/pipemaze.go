package pipemaze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/internal/mathx"
	"github.com/katalvlaran/advent/puzzle"
)

var (
	// ErrParse indicates a sketch that is not a rectangular grid.
	ErrParse = errors.New("pipemaze: parse error")
	// ErrNoStart indicates a sketch without an 'S' tile.
	ErrNoStart = errors.New("pipemaze: no start tile")
	// ErrBrokenLoop indicates the pipe leaving S does not return to it.
	ErrBrokenLoop = errors.New("pipemaze: loop does not close")
)

const start = 'S'

// pipes maps each pipe tile to the two directions it connects.
var pipes = map[byte][2]gridgraph.Point{
	'|': {gridgraph.Up, gridgraph.Down},
	'-': {gridgraph.Left, gridgraph.Right},
	'L': {gridgraph.Up, gridgraph.Right},
	'J': {gridgraph.Up, gridgraph.Left},
	'7': {gridgraph.Down, gridgraph.Left},
	'F': {gridgraph.Down, gridgraph.Right},
}

func connects(tile byte, d gridgraph.Point) bool {
	dirs, ok := pipes[tile]
	return ok && (dirs[0] == d || dirs[1] == d)
}

// Loop is the closed pipe through S, as tile positions in walk order
// starting at S.
type Loop []gridgraph.Point

// Farthest is the step count to the loop tile farthest from S.
func (l Loop) Farthest() int64 {
	return int64(len(l)) / 2
}

// Area is the shoelace area of the polygon through the loop tile centres.
func (l Loop) Area() int64 {
	var twice int64
	for i, p := range l {
		q := l[(i+1)%len(l)]
		twice += int64(p.X)*int64(q.Y) - int64(q.X)*int64(p.Y)
	}
	return mathx.Abs(twice) / 2
}

// Enclosed counts the tiles strictly inside the loop: by Pick's theorem
// A = I + B/2 - 1 with B the loop length.
func (l Loop) Enclosed() int64 {
	return l.Area() - int64(len(l))/2 + 1
}

// Trace parses a sketch and follows the loop from S.
// Returns ErrParse for a malformed grid, ErrNoStart without S and
// ErrBrokenLoop if no pipe out of S leads back to it.
// Complexity: O(W×H).
func Trace(text string) (Loop, error) {
	g, err := gridgraph.FromText(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	s, ok := g.Find(start)
	if !ok {
		return nil, ErrNoStart
	}
	for _, d := range []gridgraph.Point{gridgraph.Up, gridgraph.Right, gridgraph.Down, gridgraph.Left} {
		if loop, ok := follow(g, s, d); ok {
			return loop, nil
		}
	}
	return nil, fmt.Errorf("%w: start at %v", ErrBrokenLoop, s)
}

// follow walks from s leaving in direction d. It reports false on a dead end.
func follow(g *gridgraph.Grid, s, d gridgraph.Point) (Loop, bool) {
	loop := Loop{s}
	limit := g.Width * g.Height
	at := s
	for len(loop) <= limit {
		next := at.Add(d)
		tile, ok := g.At(next)
		if !ok {
			return nil, false
		}
		if tile == start {
			return loop, len(loop) > 1
		}
		if !connects(tile, d.Neg()) {
			return nil, false
		}
		dirs := pipes[tile]
		if dirs[0] == d.Neg() {
			d = dirs[1]
		} else {
			d = dirs[0]
		}
		at = next
		loop = append(loop, at)
	}
	return nil, false
}

// Solve answers day 10.
func Solve(input string) (puzzle.Answer, error) {
	loop, err := Trace(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: loop.Farthest(), Part2: loop.Enclosed()}, nil
}
