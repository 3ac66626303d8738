package almanac

import "fmt"

// Domain bounds for every value handled by this package. Keeping the domain
// inside ±2^62 leaves headroom so that adding any in-domain offset to an
// in-domain value cannot overflow int64.
const (
	MinValue int64 = -(1 << 62)
	MaxValue int64 = 1 << 62
)

// Span is a half-open integer interval [Start, Stop).
type Span struct {
	Start, Stop int64
}

// Len returns the number of integers in s (0 when empty).
func (s Span) Len() int64 {
	if s.Stop <= s.Start {
		return 0
	}
	return s.Stop - s.Start
}

// Empty reports whether s contains no integer.
func (s Span) Empty() bool {
	return s.Stop <= s.Start
}

// Contains reports whether x lies in [Start, Stop).
func (s Span) Contains(x int64) bool {
	return s.Start <= x && x < s.Stop
}

// Intersect returns the overlap of s and o and whether it is non-empty.
func (s Span) Intersect(o Span) (Span, bool) {
	r := Span{Start: max(s.Start, o.Start), Stop: min(s.Stop, o.Stop)}
	if r.Empty() {
		return Span{}, false
	}
	return r, true
}

// Shift translates s by d.
func (s Span) Shift(d int64) Span {
	return Span{Start: s.Start + d, Stop: s.Stop + d}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.Stop)
}

// Entry maps every value x of Source to x + Offset.
type Entry struct {
	Source Span
	Offset int64
}

// Dest returns the image of Source under the entry.
func (e Entry) Dest() Span {
	return e.Source.Shift(e.Offset)
}

// Apply returns x + Offset. It does not check that x lies in Source.
func (e Entry) Apply(x int64) int64 {
	return x + e.Offset
}

func (e Entry) String() string {
	return fmt.Sprintf("(%d,%d,%+d)", e.Source.Start, e.Source.Stop, e.Offset)
}

// Option configures an Almanac at parse time.
type Option func(*options)
