// Package scratchcard scores scratchcards. A card's matches are the numbers
// it holds that also appear in its winning list.
//
// Part 1 scores 2^(matches-1) per card. In part 2 a card with m matches wins
// one copy of each of the next m cards; Copies counts the cards held once
// every copy has been processed.
package scratchcard
