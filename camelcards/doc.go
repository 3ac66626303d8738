// Package camelcards ranks Camel Cards hands and totals the winnings.
//
// What:
//
//   - Hands order by Type first, then card by card from the left.
//   - Rules{Jokers: true} makes J the weakest card, counted as whatever card
//     makes the strongest type.
//   - Winnings sums rank*bid, the weakest hand ranking 1.
//
// Complexity:
//
//   - Rank, Winnings: O(n log n) for n hands.
//
// Errors:
//
//   - ErrParse: a line that is not a five-card hand and an integer bid.
package camelcards
