package wasteland

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/advent/internal/mathx"
	"github.com/katalvlaran/advent/internal/textutil"
	"github.com/katalvlaran/advent/puzzle"
)

var (
	// ErrParse indicates malformed instructions or node lines.
	ErrParse = errors.New("wasteland: parse error")
	// ErrUnknownNode indicates a start node or link that is not defined.
	ErrUnknownNode = errors.New("wasteland: unknown node")
	// ErrNoExit indicates a walk that cannot reach its goal.
	ErrNoExit = errors.New("wasteland: goal unreachable")
)

// Start and Goal name the part 1 endpoints.
const (
	Start = "AAA"
	Goal  = "ZZZ"
)

// Node is a network node and its two links.
type Node struct {
	Left, Right string
}

// Map holds the instructions and the nodes by name.
type Map struct {
	Steps string
	Nodes map[string]Node
}

// Parse reads:
//
//	RL
//
//	AAA = (BBB, CCC)
func Parse(text string) (*Map, error) {
	lines := textutil.Lines(text)
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: want instructions and nodes", ErrParse)
	}
	steps := strings.TrimSpace(lines[0])
	if strings.Trim(steps, "LR") != "" {
		return nil, fmt.Errorf("%w: instructions %q", ErrParse, steps)
	}
	m := &Map{Steps: steps, Nodes: make(map[string]Node, len(lines)-1)}
	for _, line := range lines[1:] {
		name, links, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: node %q", ErrParse, line)
		}
		links = strings.Trim(strings.TrimSpace(links), "()")
		left, right, ok := strings.Cut(links, ",")
		if !ok {
			return nil, fmt.Errorf("%w: links %q", ErrParse, line)
		}
		m.Nodes[strings.TrimSpace(name)] = Node{Left: strings.TrimSpace(left), Right: strings.TrimSpace(right)}
	}
	for name, n := range m.Nodes {
		for _, to := range []string{n.Left, n.Right} {
			if _, ok := m.Nodes[to]; !ok {
				return nil, fmt.Errorf("%w: %s links to %q", ErrUnknownNode, name, to)
			}
		}
	}
	return m, nil
}

// Walk counts the steps from start until done reports true.
// A state (node, instruction position) seen twice without reaching done
// means the goal is unreachable and Walk returns ErrNoExit.
func (m *Map) Walk(start string, done func(string) bool) (int64, error) {
	if _, ok := m.Nodes[start]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, start)
	}
	type state struct {
		node string
		pos  int
	}
	seen := make(map[state]struct{})
	node := start
	for steps := int64(0); ; steps++ {
		if done(node) {
			return steps, nil
		}
		pos := int(steps % int64(len(m.Steps)))
		st := state{node, pos}
		if _, ok := seen[st]; ok {
			return 0, fmt.Errorf("%w: from %s", ErrNoExit, start)
		}
		seen[st] = struct{}{}
		if m.Steps[pos] == 'L' {
			node = m.Nodes[node].Left
		} else {
			node = m.Nodes[node].Right
		}
	}
}

// StepsToGoal counts the part 1 walk from Start to Goal.
func (m *Map) StepsToGoal() (int64, error) {
	return m.Walk(Start, func(n string) bool { return n == Goal })
}

// GhostSteps returns the LCM of the walks from every "..A" node to the
// first "..Z" node.
func (m *Map) GhostSteps() (int64, error) {
	var starts []string
	for name := range m.Nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, fmt.Errorf("%w: no ghost start nodes", ErrUnknownNode)
	}
	sort.Strings(starts)
	lengths := make([]int64, 0, len(starts))
	for _, s := range starts {
		n, err := m.Walk(s, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return 0, err
		}
		lengths = append(lengths, n)
	}
	return mathx.LCMAll(lengths...), nil
}

// Solve answers day 8.
//
// Ghost-only networks have no Start node; part 1 is then reported as 0 and
// part 2 is still computed. Any other failure of either part is returned.
func Solve(input string) (puzzle.Answer, error) {
	m, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ans puzzle.Answer
	if _, ok := m.Nodes[Start]; ok {
		if ans.Part1, err = m.StepsToGoal(); err != nil {
			return puzzle.Answer{}, err
		}
	}
	if ans.Part2, err = m.GhostSteps(); err != nil {
		return puzzle.Answer{}, err
	}
	return ans, nil
}
