package boatrace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/internal/textutil"
	"github.com/katalvlaran/advent/puzzle"
)

// ErrParse indicates input that is not a Time line and a Distance line of
// equal length.
var ErrParse = errors.New("boatrace: parse error")

// Race is one race's duration and record distance.
type Race struct {
	Time, Record int64
}

// Distance is how far the boat moves after holding for hold.
func (r Race) Distance(hold int64) int64 {
	return hold * (r.Time - hold)
}

func (r Race) wins(hold int64) bool {
	return r.Distance(hold) > r.Record
}

// Ways counts the integer hold times in [0, Time] that beat Record.
func (r Race) Ways() int64 {
	if r.Time < 0 {
		return 0
	}
	mid := r.Time / 2
	if !r.wins(mid) {
		return 0
	}
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Record)
	lo := int64((float64(r.Time) - math.Sqrt(max(disc, 0))) / 2)
	lo = min(max(lo, 0), mid)
	for lo > 0 && r.wins(lo-1) {
		lo--
	}
	for !r.wins(lo) {
		lo++
	}
	hi := r.Time - lo
	return hi - lo + 1
}

// Parse reads the races of part 1:
//
//	Time:      7  15   30
//	Distance:  9  40  200
func Parse(text string) ([]Race, error) {
	times, dists, err := split(text)
	if err != nil {
		return nil, err
	}
	t, err := textutil.Ints(times)
	if err != nil {
		return nil, fmt.Errorf("%w: times: %v", ErrParse, err)
	}
	d, err := textutil.Ints(dists)
	if err != nil {
		return nil, fmt.Errorf("%w: distances: %v", ErrParse, err)
	}
	if len(t) != len(d) || len(t) == 0 {
		return nil, fmt.Errorf("%w: %d times, %d distances", ErrParse, len(t), len(d))
	}
	races := make([]Race, len(t))
	for i := range t {
		races[i] = Race{Time: t[i], Record: d[i]}
	}
	return races, nil
}

// ParseKerned reads the input as one race, ignoring the spaces between
// digits.
func ParseKerned(text string) (Race, error) {
	times, dists, err := split(text)
	if err != nil {
		return Race{}, err
	}
	t, err := strconv.ParseInt(strings.Join(strings.Fields(times), ""), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("%w: time %q", ErrParse, times)
	}
	d, err := strconv.ParseInt(strings.Join(strings.Fields(dists), ""), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("%w: distance %q", ErrParse, dists)
	}
	return Race{Time: t, Record: d}, nil
}

func split(text string) (times, dists string, err error) {
	lines := textutil.Lines(text)
	if len(lines) != 2 {
		return "", "", fmt.Errorf("%w: want 2 lines, got %d", ErrParse, len(lines))
	}
	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return "", "", fmt.Errorf("%w: missing \"Time:\"", ErrParse)
	}
	dists, ok = strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return "", "", fmt.Errorf("%w: missing \"Distance:\"", ErrParse)
	}
	return times, dists, nil
}

// Solve answers day 6: the product of Ways over the races, and Ways of the
// kerned race.
func Solve(input string) (puzzle.Answer, error) {
	races, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	product := int64(1)
	for _, r := range races {
		product *= r.Ways()
	}
	kerned, err := ParseKerned(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: product, Part2: kerned.Ways()}, nil
}
