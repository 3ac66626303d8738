package cubegame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/internal/textutil"
	"github.com/katalvlaran/advent/puzzle"
)

// ErrParse indicates a malformed game line.
var ErrParse = errors.New("cubegame: parse error")

// Draw counts the cubes of each colour shown in one handful.
type Draw struct {
	Red, Green, Blue int
}

// Within reports whether every colour of d is at most the one of limit.
func (d Draw) Within(limit Draw) bool {
	return d.Red <= limit.Red && d.Green <= limit.Green && d.Blue <= limit.Blue
}

// Max returns the colour-wise maximum of d and o.
func (d Draw) Max(o Draw) Draw {
	return Draw{max(d.Red, o.Red), max(d.Green, o.Green), max(d.Blue, o.Blue)}
}

// Power is Red*Green*Blue.
func (d Draw) Power() int64 {
	return int64(d.Red) * int64(d.Green) * int64(d.Blue)
}

// Game is one numbered game and its draws.
type Game struct {
	ID    int
	Draws []Draw
}

// Bag is the limit used by part 1.
var Bag = Draw{Red: 12, Green: 13, Blue: 14}

// Possible reports whether every draw fits in limit.
func (g Game) Possible(limit Draw) bool {
	for _, d := range g.Draws {
		if !d.Within(limit) {
			return false
		}
	}
	return true
}

// Fewest returns the smallest bag that makes g possible.
func (g Game) Fewest() Draw {
	var m Draw
	for _, d := range g.Draws {
		m = m.Max(d)
	}
	return m
}

// ParseDraw parses "3 blue, 4 red".
func ParseDraw(s string) (Draw, error) {
	var d Draw
	for _, chunk := range strings.Split(s, ",") {
		fields := strings.Fields(chunk)
		if len(fields) != 2 {
			return Draw{}, fmt.Errorf("%w: draw %q", ErrParse, chunk)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return Draw{}, fmt.Errorf("%w: count %q", ErrParse, fields[0])
		}
		switch fields[1] {
		case "red":
			d.Red += n
		case "green":
			d.Green += n
		case "blue":
			d.Blue += n
		default:
			return Draw{}, fmt.Errorf("%w: colour %q", ErrParse, fields[1])
		}
	}
	return d, nil
}

// ParseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrParse, line)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: header %q", ErrParse, head)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("%w: game id %q", ErrParse, idText)
	}
	g := Game{ID: id}
	for _, part := range strings.Split(body, ";") {
		d, err := ParseDraw(part)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

// Parse reads one game per line.
func Parse(text string) ([]Game, error) {
	var games []Game
	for _, line := range textutil.Lines(text) {
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// Solve answers day 2: the id sum of games possible with Bag, and the sum
// of the powers of each game's fewest bag.
func Solve(input string) (puzzle.Answer, error) {
	games, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ans puzzle.Answer
	for _, g := range games {
		if g.Possible(Bag) {
			ans.Part1 += int64(g.ID)
		}
		ans.Part2 += g.Fewest().Power()
	}
	return ans, nil
}
