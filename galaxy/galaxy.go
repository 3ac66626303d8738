package galaxy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/puzzle"
)

// ErrParse indicates an image that is not a rectangular grid.
var ErrParse = errors.New("galaxy: parse error")

// Expansion factors of the two parts.
const (
	YoungFactor = 2
	OldFactor   = 1_000_000
)

const mark = '#'

// Image holds the galaxy positions of an observation.
type Image struct {
	Width, Height int
	Galaxies      []gridgraph.Point
}

// Parse reads an image of '.' and '#'.
func Parse(text string) (*Image, error) {
	g, err := gridgraph.FromText(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &Image{
		Width:    g.Width,
		Height:   g.Height,
		Galaxies: g.Points(func(b byte) bool { return b == mark }),
	}, nil
}

// expand maps each coordinate to its position after empty lines grow to
// factor lines.
func expand(coords []int, size int, factor int64) []int64 {
	used := make([]bool, size)
	for _, c := range coords {
		used[c] = true
	}
	shift := make([]int64, size)
	var empty int64
	for i := 0; i < size; i++ {
		shift[i] = int64(i) + empty*(factor-1)
		if !used[i] {
			empty++
		}
	}
	out := make([]int64, len(coords))
	for i, c := range coords {
		out[i] = shift[c]
	}
	return out
}

// pairwise returns Σ|a-b| over all unordered pairs.
func pairwise(xs []int64) int64 {
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	var sum, prefix int64
	for i, x := range xs {
		sum += x*int64(i) - prefix
		prefix += x
	}
	return sum
}

// Distances sums the pairwise distances after expanding by factor.
func (im *Image) Distances(factor int64) int64 {
	xs := make([]int, len(im.Galaxies))
	ys := make([]int, len(im.Galaxies))
	for i, p := range im.Galaxies {
		xs[i], ys[i] = p.X, p.Y
	}
	return pairwise(expand(xs, im.Width, factor)) + pairwise(expand(ys, im.Height, factor))
}

// Solve answers day 11.
func Solve(input string) (puzzle.Answer, error) {
	im, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: im.Distances(YoungFactor), Part2: im.Distances(OldFactor)}, nil
}
