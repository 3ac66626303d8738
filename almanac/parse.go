package almanac

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = "map:"
	nameSep     = "-to-"
)

// block is a run of non-blank lines and the 1-based line number of its first line.
type block struct {
	line  int
	lines []string
}

// splitBlocks groups text into blank-line separated blocks.
func splitBlocks(text string) []block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var (
		blocks []block
		cur    *block
	)
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			cur = nil
			continue
		}
		if cur == nil {
			blocks = append(blocks, block{line: i + 1})
			cur = &blocks[len(blocks)-1]
		}
		cur.lines = append(cur.lines, line)
	}
	return blocks
}

// ParseRangeMap parses one stage block:
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Returns ErrParse on a header without "-to-" or on rows that are not three
// integers, and ErrOverlap on overlapping rows.
func ParseRangeMap(text string) (*RangeMap, error) {
	blocks := splitBlocks(text)
	if len(blocks) != 1 {
		return nil, fmt.Errorf("%w: want exactly one stage block, got %d", ErrParse, len(blocks))
	}
	return parseStage(blocks[0])
}

func parseStage(b block) (*RangeMap, error) {
	source, dest, err := parseHeader(b.lines[0])
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrParse, b.line, err)
	}
	entries := make([]Entry, 0, len(b.lines)-1)
	for i, line := range b.lines[1:] {
		e, err := parseTriple(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, b.line+1+i, err)
		}
		entries = append(entries, e)
	}
	return NewRangeMap(source, dest, entries)
}

// parseHeader splits "X-to-Y map:" into X and Y.
func parseHeader(line string) (source, dest string, err error) {
	name := strings.TrimSpace(strings.TrimSuffix(line, mapSuffix))
	source, dest, ok := strings.Cut(name, nameSep)
	if !ok {
		return "", "", fmt.Errorf("header %q: missing %q", line, nameSep)
	}
	if fields := strings.Fields(dest); len(fields) > 0 {
		dest = fields[0]
	}
	if source == "" || dest == "" {
		return "", "", fmt.Errorf("header %q: empty domain name", line)
	}
	return source, dest, nil
}

// parseTriple parses "destStart sourceStart length".
func parseTriple(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Entry{}, fmt.Errorf("%q: want 3 integers, got %d fields", line, len(fields))
	}
	var v [3]int64
	for i, f := range fields {
		n, err := parseValue(f)
		if err != nil {
			return Entry{}, fmt.Errorf("%q: %v", line, err)
		}
		v[i] = n
	}
	if v[2] < 0 {
		return Entry{}, fmt.Errorf("%q: negative length", line)
	}
	if v[1]+v[2] > MaxValue || v[0]+v[2] > MaxValue {
		return Entry{}, fmt.Errorf("%q: span exceeds value domain", line)
	}
	return entryFromTriple(v[0], v[1], v[2]), nil
}

// parseValue parses an integer inside [MinValue, MaxValue).
func parseValue(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	if n < MinValue || n >= MaxValue {
		return 0, fmt.Errorf("integer %d outside value domain", n)
	}
	return n, nil
}

// parseSeeds parses "seeds: 79 14 55 13".
func parseSeeds(b block) ([]int64, error) {
	if len(b.lines) != 1 {
		return nil, fmt.Errorf("%w: line %d: seeds block must be a single line", ErrParse, b.line)
	}
	rest, ok := strings.CutPrefix(b.lines[0], seedsPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: line %d: missing %q", ErrParse, b.line, seedsPrefix)
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: line %d: empty seed list", ErrParse, b.line)
	}
	seeds := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := parseValue(f)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, b.line, err)
		}
		seeds = append(seeds, n)
	}
	return seeds, nil
}
