// Package galaxy sums the distances between every pair of galaxies in an
// expanding image.
//
// Each row or column with no galaxy counts as factor rows or columns;
// distances are Manhattan distances in the expanded image. Part 1 uses
// YoungFactor, part 2 OldFactor.
//
// Complexity: O(W×H + n log n) for n galaxies. Pairs are never enumerated:
// per axis the coordinates are sorted and summed against a running prefix.
//
// Errors:
//
//   - ErrParse: the image is empty or ragged.
package galaxy
