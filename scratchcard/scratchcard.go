package scratchcard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/internal/textutil"
	"github.com/katalvlaran/advent/puzzle"
)

// ErrParse indicates a malformed card line.
var ErrParse = errors.New("scratchcard: parse error")

// Card is one scratchcard.
type Card struct {
	Number  int
	Matches int
}

// Score is 0 without matches, else 2^(Matches-1).
func (c Card) Score() int64 {
	if c.Matches == 0 {
		return 0
	}
	return 1 << (c.Matches - 1)
}

// ParseCard parses "Card 1: 41 48 83 | 83 86 6".
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing ':' in %q", ErrParse, line)
	}
	numText, ok := strings.CutPrefix(head, "Card")
	if !ok {
		return Card{}, fmt.Errorf("%w: header %q", ErrParse, head)
	}
	n, err := strconv.Atoi(strings.TrimSpace(numText))
	if err != nil {
		return Card{}, fmt.Errorf("%w: card number %q", ErrParse, numText)
	}
	winText, heldText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: card %d: missing '|'", ErrParse, n)
	}
	winning, err := textutil.Ints(winText)
	if err != nil {
		return Card{}, fmt.Errorf("%w: card %d: %v", ErrParse, n, err)
	}
	held, err := textutil.Ints(heldText)
	if err != nil {
		return Card{}, fmt.Errorf("%w: card %d: %v", ErrParse, n, err)
	}

	win := make(map[int64]struct{}, len(winning))
	for _, w := range winning {
		win[w] = struct{}{}
	}
	c := Card{Number: n}
	counted := make(map[int64]struct{}, len(held))
	for _, h := range held {
		if _, dup := counted[h]; dup {
			continue
		}
		counted[h] = struct{}{}
		if _, ok := win[h]; ok {
			c.Matches++
		}
	}
	return c, nil
}

// Parse reads one card per line.
func Parse(text string) ([]Card, error) {
	var cards []Card
	for _, line := range textutil.Lines(text) {
		c, err := ParseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// TotalScore sums Score over cards.
func TotalScore(cards []Card) int64 {
	var s int64
	for _, c := range cards {
		s += c.Score()
	}
	return s
}

// Copies returns the number of cards held after all copies are won.
// Copies never extend past the last card.
// Complexity: O(Σ matches).
func Copies(cards []Card) int64 {
	count := make([]int64, len(cards))
	for i := range count {
		count[i] = 1
	}
	var total int64
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches && j < len(cards); j++ {
			count[j] += count[i]
		}
		total += count[i]
	}
	return total
}

// Solve answers day 4.
func Solve(input string) (puzzle.Answer, error) {
	cards, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: TotalScore(cards), Part2: Copies(cards)}, nil
}
