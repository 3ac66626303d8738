// Package almanac composes chains of piecewise-offset integer maps and answers
// minimum-location queries over seeds and seed ranges.
//
// What:
//
//   - RangeMap is one stage transform ("seed-to-soil", "soil-to-fertilizer", ...):
//     a sorted set of disjoint half-open source spans, each shifted by a constant
//     offset. Values outside every span map to themselves (the identity rule).
//   - Reduce composes two stages into one equivalent RangeMap by splitting the
//     intermediate domain at breakpoints, the points where either stage changes
//     its offset. ReduceChain left-folds a whole chain.
//   - Almanac parses the puzzle text, precomposes its chain once into a single
//     seed-to-location map and answers two queries: the minimum location over the
//     listed seeds and the minimum location over the (start, length) seed ranges.
//
// Why:
//
//   - Per-value walking of a seed range is intractable when ranges span billions
//     of values. After composition a seed range only has to be intersected with
//     each output band of the composed map.
//
// Complexity:
//
//   - NewRangeMap:         O(n log n) (sort + merge), Memory: O(n).
//   - Transform:           O(log n) via the btree index.
//   - Reduce:              O((n + m) log m), n, m = entries of the two stages.
//   - MinLocationByRange:  O(b log s), b = bands of the composed map, s = seed ranges.
//
// Errors:
//
//   - ErrParse: malformed header, malformed triple, missing seeds or stages.
//   - ErrDomainMismatch: Reduce on stages whose names do not chain.
//   - ErrOverlap: two entries of one stage claim the same source value.
//   - ErrOutOfDomain: an entry's Source or Dest leaves [MinValue, MaxValue).
//   - ErrEmptyChain: ReduceChain called without stages.
//   - ErrOddSeeds: seed list cannot be paired into ranges.
//   - ErrNoSeeds: no seed range has a single value.
//   - ErrScanLimit: the brute-force oracle exceeded its probe budget.
package almanac
