// Package cubegame scores the cube drawing game: each game reveals handfuls
// of red, green and blue cubes from a bag.
//
// Part 1 sums the ids of games possible with Bag; part 2 sums the power of
// each game's fewest bag.
//
// Errors:
//
//   - ErrParse: malformed game header, draw, count or colour.
package cubegame
