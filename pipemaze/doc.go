// Package pipemaze traces the pipe loop through a field sketch.
//
// What:
//
//   - The loop starts and ends on the animal's tile 'S'.
//   - Part 1 is the loop position farthest from S, half the loop length.
//   - Part 2 counts tiles enclosed by the loop.
//
// Why:
//
//   - The shoelace formula gives the area of the polygon through the loop
//     tiles, and Pick's theorem turns it into the interior lattice point
//     count; no flood fill or squeezing between pipes is needed.
//
// Complexity:
//
//   - Trace: O(W×H).
//   - Loop.Area, Loop.Enclosed: O(L) for loop length L.
//
// Errors:
//
//   - ErrParse: the sketch is empty or ragged.
//   - ErrNoStart: no 'S' tile.
//   - ErrBrokenLoop: no pipe out of S leads back to it.
package pipemaze
