package almanac

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent/internal/logging"
)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sets the logger used for composition diagnostics.
// A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func defaultOptions() options {
	return options{log: logging.Discard()}
}

// Almanac holds the parsed seeds, the stage chain and its precomposed
// seed-to-location map. It is immutable once built.
type Almanac struct {
	seeds  []int64
	stages []*RangeMap
	m      *RangeMap
}

// Parse reads an almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	...
//
// Stages are chained in file order and reduced once into a single map.
// Returns ErrParse for malformed text, a missing seed list or no stages, and
// ErrDomainMismatch if consecutive stage names do not chain.
// Complexity: O(k · B log B) for k stages with B entries each.
func Parse(text string, opts ...Option) (*Almanac, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	blocks := splitBlocks(text)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	seeds, err := parseSeeds(blocks[0])
	if err != nil {
		return nil, err
	}
	if len(blocks) == 1 {
		return nil, fmt.Errorf("%w: no stage maps", ErrParse)
	}

	stages := make([]*RangeMap, 0, len(blocks)-1)
	for _, b := range blocks[1:] {
		st, err := parseStage(b)
		if err != nil {
			return nil, err
		}
		o.log.WithFields(logrus.Fields{"stage": st.Source + nameSep + st.Dest, "entries": st.Len()}).Debug("parsed stage")
		stages = append(stages, st)
	}

	composed, err := ReduceChain(stages...)
	if err != nil {
		return nil, err
	}
	o.log.WithFields(logrus.Fields{
		"stages":  len(stages),
		"entries": composed.Len(),
		"source":  composed.Source,
		"dest":    composed.Dest,
	}).Debug("composed stage chain")

	return &Almanac{seeds: seeds, stages: stages, m: composed}, nil
}

// Seeds returns a copy of the seed values in input order.
func (a *Almanac) Seeds() []int64 {
	out := make([]int64, len(a.seeds))
	copy(out, a.seeds)
	return out
}

// Stages returns the parsed stage maps in chain order.
func (a *Almanac) Stages() []*RangeMap {
	out := make([]*RangeMap, len(a.stages))
	copy(out, a.stages)
	return out
}

// Map returns the composed map from the first stage's source to the last
// stage's destination.
func (a *Almanac) Map() *RangeMap {
	return a.m
}

// SeedRanges pairs the seed list into [start, start+length) spans.
// Returns ErrOddSeeds if the values cannot be paired.
func (a *Almanac) SeedRanges() ([]Span, error) {
	if len(a.seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d values", ErrOddSeeds, len(a.seeds))
	}
	out := make([]Span, 0, len(a.seeds)/2)
	for i := 0; i < len(a.seeds); i += 2 {
		start, n := a.seeds[i], a.seeds[i+1]
		if n < 0 {
			n = 0
		}
		out = append(out, Span{Start: start, Stop: min(start+n, MaxValue)})
	}
	return out, nil
}

// MinLocationPerSeed returns the lowest location any listed seed maps to.
// Complexity: O(s log n).
func (a *Almanac) MinLocationPerSeed() int64 {
	best := int64(math.MaxInt64)
	for _, s := range a.seeds {
		best = min(best, a.m.Transform(s))
	}
	return best
}

// MinLocationByRange returns the lowest location reachable from any value of
// any seed range, without enumerating the ranges.
//
// Every band of the composed map is monotone (+offset), so the minimum of a
// band over a seed range is reached at the lowest source value they share.
// Bands are visited by ascending Dest().Start and the walk stops once a band
// can no longer beat the best candidate.
//
// Returns ErrOddSeeds if seeds cannot be paired, ErrNoSeeds if every range
// is empty.
// Complexity: O(b log s + s log s).
func (a *Almanac) MinLocationByRange() (int64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	best, _, ok := minByRange(a.m.Bands(), mergeSpans(ranges))
	if !ok {
		return 0, ErrNoSeeds
	}
	return best, nil
}

// minByRange returns the minimum location and the number of bands probed.
// bands must be sorted by Dest().Start, seeds sorted and disjoint.
func minByRange(bands []Entry, seeds []Span) (best int64, probes int, ok bool) {
	best = math.MaxInt64
	for _, band := range bands {
		if ok && band.Dest().Start >= best {
			break
		}
		probes++
		src := band.Source
		j := sort.Search(len(seeds), func(j int) bool { return seeds[j].Stop > src.Start })
		if j == len(seeds) {
			continue
		}
		hit, found := src.Intersect(seeds[j])
		if !found {
			continue
		}
		if loc := band.Apply(hit.Start); loc < best {
			best, ok = loc, true
		}
	}
	return best, probes, ok
}

// mergeSpans returns the sorted union of spans without empty members.
func mergeSpans(spans []Span) []Span {
	sorted := make([]Span, 0, len(spans))
	for _, s := range spans {
		if !s.Empty() {
			sorted = append(sorted, s)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := make([]Span, 0, len(sorted))
	for _, s := range sorted {
		if n := len(out); n > 0 && s.Start <= out[n-1].Stop {
			out[n-1].Stop = max(out[n-1].Stop, s.Stop)
			continue
		}
		out = append(out, s)
	}
	return out
}

// MinLocationBySeedScan is the brute-force oracle for MinLocationByRange: it
// transforms every value of every seed range and keeps the minimum.
// It gives up with ErrScanLimit after limit transforms.
// Complexity: O(total seeds · log n).
func (a *Almanac) MinLocationBySeedScan(limit int64) (int64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	var (
		best   int64 = math.MaxInt64
		probes int64
		ok     bool
	)
	for _, r := range mergeSpans(ranges) {
		for x := r.Start; x < r.Stop; x++ {
			if probes++; probes > limit {
				return 0, fmt.Errorf("%w: %d transforms", ErrScanLimit, limit)
			}
			best, ok = min(best, a.m.Transform(x)), true
		}
	}
	if !ok {
		return 0, ErrNoSeeds
	}
	return best, nil
}
