package camelcards

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/internal/textutil"
	"github.com/katalvlaran/advent/puzzle"
)

// ErrParse indicates a malformed hand line.
var ErrParse = errors.New("camelcards: parse error")

// HandSize is the number of cards in a hand.
const HandSize = 5

// Type is a hand category; higher is stronger.
type Type int

// Hand types, weakest first.
const (
	HighCard Type = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var typeNames = [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
	joker      = 'J'
)

// Rules selects plain or joker scoring.
type Rules struct {
	Jokers bool
}

func (r Rules) strength(c byte) int {
	if r.Jokers {
		return strings.IndexByte(jokerOrder, c)
	}
	return strings.IndexByte(order, c)
}

// Type classifies cards under r.
func (r Rules) Type(cards string) Type {
	var counts [256]int
	jokers := 0
	for i := 0; i < len(cards); i++ {
		if r.Jokers && cards[i] == joker {
			jokers++
			continue
		}
		counts[cards[i]]++
	}
	first, second := 0, 0
	for _, n := range counts {
		switch {
		case n > first:
			first, second = n, first
		case n > second:
			second = n
		}
	}
	first += jokers

	switch {
	case first == 5:
		return FiveOfAKind
	case first == 4:
		return FourOfAKind
	case first == 3 && second == 2:
		return FullHouse
	case first == 3:
		return ThreeOfAKind
	case first == 2 && second == 2:
		return TwoPair
	case first == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Less reports whether hand a ranks below hand b.
func (r Rules) Less(a, b string) bool {
	if ta, tb := r.Type(a), r.Type(b); ta != tb {
		return ta < tb
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if sa, sb := r.strength(a[i]), r.strength(b[i]); sa != sb {
			return sa < sb
		}
	}
	return false
}

// Hand is a hand with its bid.
type Hand struct {
	Cards string
	Bid   int64
}

// Parse reads "32T3K 765" lines.
func Parse(text string) ([]Hand, error) {
	var hands []Hand
	for i, line := range textutil.Lines(text) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want hand and bid", ErrParse, i+1)
		}
		cards := fields[0]
		if len(cards) != HandSize {
			return nil, fmt.Errorf("%w: line %d: hand %q is not %d cards", ErrParse, i+1, cards, HandSize)
		}
		for j := 0; j < len(cards); j++ {
			if strings.IndexByte(order, cards[j]) < 0 {
				return nil, fmt.Errorf("%w: line %d: card %q", ErrParse, i+1, cards[j])
			}
		}
		bid, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bid %q", ErrParse, i+1, fields[1])
		}
		hands = append(hands, Hand{Cards: cards, Bid: bid})
	}
	return hands, nil
}

// Rank returns a copy of hands sorted weakest first under r.
func (r Rules) Rank(hands []Hand) []Hand {
	out := make([]Hand, len(hands))
	copy(out, hands)
	sort.SliceStable(out, func(i, j int) bool { return r.Less(out[i].Cards, out[j].Cards) })
	return out
}

// Winnings sums rank*bid, ranks starting at 1 for the weakest hand.
func (r Rules) Winnings(hands []Hand) int64 {
	var total int64
	for i, h := range r.Rank(hands) {
		total += int64(i+1) * h.Bid
	}
	return total
}

// Solve answers day 7.
func Solve(input string) (puzzle.Answer, error) {
	hands, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: Rules{}.Winnings(hands),
		Part2: Rules{Jokers: true}.Winnings(hands),
	}, nil
}
