package almanac

import (
	"fmt"
	"sort"
)

// Reduce composes m with other into a single RangeMap from m.Source to
// other.Dest such that out.Transform(x) == other.Transform(m.Transform(x))
// for every x.
//
// Behavior:
//  1. Breakpoints are the Dest bounds of m's entries and the Source bounds of
//     other's entries. Outside their hull both stages are the identity.
//  2. m is completed with identity entries for its gaps inside the hull, so
//     every intermediate value in the hull has exactly one preimage entry.
//  3. The Dest of each such entry is cut at other's breakpoints; on every
//     piece both offsets are constant. A piece [a,b) with offsets offA, offB
//     becomes Entry{[a-offA, b-offA), offA+offB}, identity pieces included.
//  4. The result goes through the same normalization as NewRangeMap.
//
// Returns ErrDomainMismatch if m.Dest != other.Source.
// Complexity: O((n+m) log m) time, O(n+m) memory.
func (m *RangeMap) Reduce(other *RangeMap) (*RangeMap, error) {
	if m == nil || other == nil {
		return nil, ErrNilMap
	}
	if m.Dest != other.Source {
		return nil, fmt.Errorf("%w: %s-to-%s then %s-to-%s", ErrDomainMismatch, m.Source, m.Dest, other.Source, other.Dest)
	}

	hull, ok := breakpointHull(m, other)
	if !ok {
		return newRangeMap(m.Source, other.Dest, nil), nil
	}

	var pieces []Entry
	for _, a := range m.cover(hull) {
		pieces = other.splitThrough(a, pieces)
	}

	norm, err := normalize(pieces)
	if err != nil {
		return nil, fmt.Errorf("almanac: Reduce %s-to-%s: %w", m.Source, other.Dest, err)
	}
	return newRangeMap(m.Source, other.Dest, norm), nil
}

// breakpointHull returns [lowest, highest) over all breakpoints of the pair.
func breakpointHull(m, other *RangeMap) (Span, bool) {
	hull := Span{Start: MaxValue, Stop: MinValue}
	for _, e := range m.entries {
		d := e.Dest()
		hull.Start, hull.Stop = min(hull.Start, d.Start), max(hull.Stop, d.Stop)
	}
	for _, e := range other.entries {
		hull.Start, hull.Stop = min(hull.Start, e.Source.Start), max(hull.Stop, e.Source.Stop)
	}
	return hull, !hull.Empty()
}

// splitThrough cuts the image of a at other's breakpoints and appends one
// composed entry per piece to out.
func (other *RangeMap) splitThrough(a Entry, out []Entry) []Entry {
	dest := a.Dest()
	es := other.entries
	// first entry that ends after dest.Start
	i := sort.Search(len(es), func(i int) bool { return es[i].Source.Stop > dest.Start })

	for pos := dest.Start; pos < dest.Stop; {
		var (
			end  int64
			offB int64
		)
		switch {
		case i < len(es) && es[i].Source.Start <= pos:
			end, offB = min(es[i].Source.Stop, dest.Stop), es[i].Offset
			i++
		case i < len(es):
			end = min(es[i].Source.Start, dest.Stop)
		default:
			end = dest.Stop
		}
		out = append(out, Entry{
			Source: Span{Start: pos - a.Offset, Stop: end - a.Offset},
			Offset: a.Offset + offB,
		})
		pos = end
	}
	return out
}

// ReduceChain left-folds Reduce over maps, yielding one map from
// maps[0].Source to maps[len-1].Dest.
// Returns ErrEmptyChain for no maps, ErrDomainMismatch if the names break.
// Complexity: O(k · B log B), k = stages, B = running entry count.
func ReduceChain(maps ...*RangeMap) (*RangeMap, error) {
	if len(maps) == 0 {
		return nil, ErrEmptyChain
	}
	acc := maps[0]
	if acc == nil {
		return nil, ErrNilMap
	}
	for i, next := range maps[1:] {
		var err error
		acc, err = acc.Reduce(next)
		if err != nil {
			return nil, fmt.Errorf("almanac: ReduceChain stage %d: %w", i+1, err)
		}
	}
	return acc, nil
}
