package domain

import "slices"

// Level groups every task that shares one depth value.
type Level struct {
	Depth int      // Zero-based depth shared by the tasks
	Tasks []string // Task names in ascending ordinal order
}

// Priority is the 1-based level number used for presentation.
func (l Level) Priority() int { return l.Depth + 1 }

// Plan is a sorted task set ready to be written out.
type Plan struct {
	Levels []Level
	Edges  []Pair // Distinct edges in first-seen order
}

type visitState uint8

const (
	unvisited visitState = iota
	visiting
	resolved
)

// frame is one entry of the explicit depth-resolution stack.
type frame struct {
	id   int
	next int // Next dependency of id to inspect
	max  int // Depth of id implied by the dependencies inspected so far
}

// Sort computes the depth of every task and groups tasks into levels ordered
// by depth. Names inside a level are sorted ascending. An empty set yields an
// empty, non-nil result.
func (s *TaskSet) Sort() ([]Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.names {
		if err := s.resolve(id); err != nil {
			return nil, err
		}
	}

	// A task at depth d > 0 has a dependency at depth d-1, so depths are dense.
	levels := make([]Level, 0)
	for id, name := range s.names {
		d := s.depth[id]
		for len(levels) <= d {
			levels = append(levels, Level{Depth: len(levels)})
		}
		levels[d].Tasks = append(levels[d].Tasks, name)
	}
	for i := range levels {
		slices.Sort(levels[i].Tasks)
	}
	return levels, nil
}

// Plan sorts the set and pairs the levels with the set's distinct edges.
func (s *TaskSet) Plan() (Plan, error) {
	levels, err := s.Sort()
	if err != nil {
		return Plan{}, err
	}
	return Plan{Levels: levels, Edges: s.Edges()}, nil
}

// Flatten concatenates the task names of levels in order.
func Flatten(levels []Level) []string {
	var out []string
	for _, l := range levels {
		out = append(out, l.Tasks...)
	}
	return out
}

// resolve memoizes the depth of id and of everything it depends on. It walks
// the graph with an explicit stack so long chains cannot exhaust the goroutine
// stack. On a cycle it returns a *CycleError and leaves no marks behind.
// The caller must hold s.mu.
func (s *TaskSet) resolve(id int) error {
	s.mustHoldLock()
	if s.state[id] == resolved {
		return nil
	}

	stack := []frame{{id: id}}
	s.state[id] = visiting
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if deps := s.deps[top.id]; top.next < len(deps) {
			d := deps[top.next]
			top.next++
			switch s.state[d] {
			case resolved:
				top.max = max(top.max, s.depth[d]+1)
			case visiting:
				err := s.cycleError(stack, d)
				for _, f := range stack {
					s.state[f.id] = unvisited
				}
				return err
			default:
				s.state[d] = visiting
				stack = append(stack, frame{id: d})
			}
			continue
		}

		done := *top
		stack = stack[:len(stack)-1]
		s.depth[done.id] = done.max
		s.state[done.id] = resolved
		s.dirty = true
		if n := len(stack); n > 0 {
			stack[n-1].max = max(stack[n-1].max, done.max+1)
		}
	}
	return nil
}

// cycleError builds the cycle closed by an edge from the top of stack back to id.
func (s *TaskSet) cycleError(stack []frame, id int) *CycleError {
	start := 0
	for i, f := range stack {
		if f.id == id {
			start = i
			break
		}
	}
	path := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, s.names[f.id])
	}
	path = append(path, s.names[id])
	return &CycleError{Path: path}
}
