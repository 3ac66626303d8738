// Package boatrace counts the ways to win toy boat races.
//
// What:
//
//   - Holding the button for t of a race's T milliseconds moves the boat
//     t*(T-t) millimetres; a win must beat the record distance.
//   - Parse reads the races of part 1; ParseKerned joins the digits of each
//     line into the single race of part 2.
//
// Why:
//
//   - Winning hold times form one interval symmetric around T/2, so the count
//     comes from the roots of t² - T·t + D = 0, corrected to exact integers.
//     Part 2 races are long enough that counting hold times one by one is slow.
//
// Complexity:
//
//   - Race.Ways: O(1).
//
// Errors:
//
//   - ErrParse: not a "Time:" line and a "Distance:" line of equal length.
package boatrace
