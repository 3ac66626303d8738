package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownDay indicates no solver is registered for the day.
	ErrUnknownDay = errors.New("puzzle: no solver for day")
	// ErrDuplicateDay indicates a second solver for an already registered day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrInvalidDay indicates a day number outside 1..25.
	ErrInvalidDay = errors.New("puzzle: day out of range")
)

// Answer holds both parts of a day's result.
type Answer struct {
	Part1 int64 `json:"part1" yaml:"part1"`
	Part2 int64 `json:"part2" yaml:"part2"`
}

// Solver computes the Answer of one day from its input text.
type Solver func(input string) (Answer, error)

// Entry is a registered solver with its day and title.
type Entry struct {
	Day   int
	Title string
	Solve Solver
}

// Registry maps days to solvers. The zero value is not usable; use NewRegistry.
type Registry struct {
	byDay map[int]Entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byDay: make(map[int]Entry)}
}

// Register adds a solver for day.
// Returns ErrInvalidDay for days outside 1..25 and ErrDuplicateDay if the
// day already has a solver.
func (r *Registry) Register(day int, title string, s Solver) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if s == nil {
		return fmt.Errorf("puzzle: Register day %d: nil solver", day)
	}
	if _, ok := r.byDay[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.byDay[day] = Entry{Day: day, Title: title, Solve: s}
	return nil
}

// Lookup returns the entry registered for day.
func (r *Registry) Lookup(day int) (Entry, error) {
	e, ok := r.byDay[day]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return e, nil
}

// Entries returns all entries sorted by day.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.byDay))
	for _, e := range r.byDay {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
