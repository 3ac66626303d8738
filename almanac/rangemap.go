package almanac

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/btree"
)

// btreeDegree is the fan-out of the entry index.
const btreeDegree = 8

// RangeMap is one stage of the almanac: an integer transform from the Source
// domain to the Dest domain. It is immutable once built.
//
// Entries are sorted by Source.Start, pairwise disjoint, and no two
// neighbours are both contiguous and equal in offset. Any value not covered by
// an entry maps to itself.
type RangeMap struct {
	Source, Dest string
	entries      []Entry
	index        *btree.BTreeG[Entry]
}

// NewRangeMap builds a normalized RangeMap from arbitrary entries.
// The input slice is not modified. Empty spans are dropped; contiguous
// entries with equal offsets are folded into one.
// Returns ErrOverlap if two entries claim the same source value and
// ErrOutOfDomain if a Source or Dest leaves [MinValue, MaxValue).
// Complexity: O(n log n) time, O(n) memory.
func NewRangeMap(source, dest string, entries []Entry) (*RangeMap, error) {
	norm, err := normalize(entries)
	if err != nil {
		return nil, fmt.Errorf("almanac: NewRangeMap %s-to-%s: %w", source, dest, err)
	}
	return newRangeMap(source, dest, norm), nil
}

// FromTriples builds a RangeMap from raw (destStart, sourceStart, length) rows.
// Complexity: O(n log n).
func FromTriples(source, dest string, triples [][3]int64) (*RangeMap, error) {
	entries := make([]Entry, 0, len(triples))
	for _, t := range triples {
		entries = append(entries, entryFromTriple(t[0], t[1], t[2]))
	}
	return NewRangeMap(source, dest, entries)
}

func entryFromTriple(destStart, sourceStart, length int64) Entry {
	return Entry{
		Source: Span{Start: sourceStart, Stop: sourceStart + length},
		Offset: destStart - sourceStart,
	}
}

// newRangeMap wraps already-normalized entries and indexes them.
func newRangeMap(source, dest string, norm []Entry) *RangeMap {
	idx := btree.NewG[Entry](btreeDegree, func(a, b Entry) bool {
		return a.Source.Start < b.Source.Start
	})
	for _, e := range norm {
		idx.ReplaceOrInsert(e)
	}
	return &RangeMap{Source: source, Dest: dest, entries: norm, index: idx}
}

// normalize returns a new sorted, merged entry list.
func normalize(entries []Entry) ([]Entry, error) {
	sorted := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Source.Empty() {
			continue
		}
		if !inDomain(e) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfDomain, e)
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Source.Start < sorted[j].Source.Start
	})

	out := make([]Entry, 0, len(sorted))
	for _, e := range sorted {
		if n := len(out); n > 0 {
			last := out[n-1]
			if e.Source.Start < last.Source.Stop {
				return nil, fmt.Errorf("%w: %v and %v", ErrOverlap, last.Source, e.Source)
			}
			if last.Offset == e.Offset && last.Source.Stop == e.Source.Start {
				out[n-1] = Entry{Source: Span{Start: last.Source.Start, Stop: e.Source.Stop}, Offset: last.Offset}
				continue
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// inDomain reports whether both Source and Dest of a non-empty e lie in
// [MinValue, MaxValue). The offset bounds are computed without forming Dest,
// which could overflow.
func inDomain(e Entry) bool {
	src := e.Source
	if src.Start < MinValue || src.Stop > MaxValue {
		return false
	}
	return e.Offset >= MinValue-src.Start && e.Offset <= MaxValue-src.Stop
}

// Entries returns a copy of the normalized entries.
func (m *RangeMap) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of explicit entries.
func (m *RangeMap) Len() int {
	return len(m.entries)
}

// Lookup returns the explicit entry covering x, if any.
// Complexity: O(log n).
func (m *RangeMap) Lookup(x int64) (Entry, bool) {
	var (
		hit   Entry
		found bool
	)
	m.index.DescendLessOrEqual(Entry{Source: Span{Start: x}}, func(e Entry) bool {
		hit, found = e, true
		return false
	})
	if !found || !hit.Source.Contains(x) {
		return Entry{}, false
	}
	return hit, true
}

// Transform maps x through the stage. Values not covered by any entry are
// returned unchanged.
// Complexity: O(log n).
func (m *RangeMap) Transform(x int64) int64 {
	e, ok := m.Lookup(x)
	if !ok {
		return x
	}
	return e.Apply(x)
}

// cover returns the entries of m together with explicit identity entries for
// the gaps between them, restricted to the source window w. Explicit entries
// are returned whole even when they stick out of w.
// The result is sorted by Source.Start and partitions w.
func (m *RangeMap) cover(w Span) []Entry {
	out := make([]Entry, 0, 2*len(m.entries)+1)
	pos := w.Start
	for _, e := range m.entries {
		if gap, ok := (Span{Start: pos, Stop: e.Source.Start}).Intersect(w); ok {
			out = append(out, Entry{Source: gap})
		}
		out = append(out, e)
		pos = e.Source.Stop
	}
	if gap, ok := (Span{Start: pos, Stop: w.Stop}).Intersect(w); ok {
		out = append(out, Entry{Source: gap})
	}
	return out
}

// Bands returns the output bands of m over the whole value domain: every
// explicit entry plus an identity band for every uncovered gap, sorted by
// Dest().Start.
// Complexity: O(n log n).
func (m *RangeMap) Bands() []Entry {
	bands := m.cover(Span{Start: MinValue, Stop: MaxValue})
	sort.Slice(bands, func(i, j int) bool {
		return bands[i].Dest().Start < bands[j].Dest().Start
	})
	return bands
}

func (m *RangeMap) String() string {
	var sb strings.Builder
	sb.WriteString(m.Source)
	sb.WriteString("-to-")
	sb.WriteString(m.Dest)
	for _, e := range m.entries {
		sb.WriteByte(' ')
		sb.WriteString(e.String())
	}
	return sb.String()
}
