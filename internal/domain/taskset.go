package domain

import (
	"fmt"
	"iter"
	"sync"
)

const unresolved = -1

type edge struct {
	from int // dependency
	to   int // dependent
}

// TaskSet is the dependency graph: every task mentioned by the input, keyed by name.
// Nodes are stored in an arena and referenced by index, in first-mention order.
//
// A TaskSet has a single writer while it is being built. Once building is done,
// Sort and Depth may be called from several goroutines.
type TaskSet struct {
	mu sync.Mutex // Guards depth and state

	index map[string]int // Name to arena index
	names []string       // Arena: task names
	deps  [][]int        // Arena: indexes each task depends on, duplicates kept
	depth []int          // Arena: memoized depth, unresolved until computed
	state []visitState   // Arena: scratch marks for depth resolution
	dirty bool           // Some depth is memoized

	edges []edge            // Distinct edges in first-seen order
	seen  map[edge]struct{} // Edge set for edges
}

// NewTaskSet creates an empty TaskSet.
func NewTaskSet() *TaskSet {
	return &TaskSet{
		index: make(map[string]int),
		seen:  make(map[edge]struct{}),
	}
}

// Build consumes pairs in order and returns the resulting TaskSet.
// The first error yielded by the sequence aborts the build.
func Build(pairs iter.Seq2[Pair, error]) (*TaskSet, error) {
	set := NewTaskSet()
	for p, err := range pairs {
		if err != nil {
			return nil, err
		}
		if err := set.AddPair(p); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Pairs adapts a fixed list of pairs to the sequence accepted by Build.
func Pairs(ps ...Pair) iter.Seq2[Pair, error] {
	return func(yield func(Pair, error) bool) {
		for _, p := range ps {
			if !yield(p, nil) {
				return
			}
		}
	}
}

// Add returns the task with the given name, creating it on first mention.
func (s *TaskSet) Add(name string) (Task, error) {
	if name == "" {
		return Task{}, ErrEmptyTaskName
	}
	if id, ok := s.index[name]; ok {
		return Task{set: s, id: id}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := len(s.names)
	s.index[name] = id
	s.names = append(s.names, name)
	s.deps = append(s.deps, nil)
	s.depth = append(s.depth, unresolved)
	s.state = append(s.state, unvisited)
	return Task{set: s, id: id}, nil
}

// AddPair records that p.Task depends on p.Dependency, creating either task
// on first mention. Recording the same pair twice keeps both edges.
func (s *TaskSet) AddPair(p Pair) error {
	dep, err := s.Add(p.Dependency)
	if err != nil {
		return fmt.Errorf("dependency of %q: %w", p.Task, err)
	}
	task, err := s.Add(p.Task)
	if err != nil {
		return fmt.Errorf("dependent of %q: %w", p.Dependency, err)
	}
	task.DependsOn(dep)
	return nil
}

// link records that node `to` depends on node `from`.
// Any depths memoized before the change are dropped.
func (s *TaskSet) link(from, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deps[to] = append(s.deps[to], from)
	e := edge{from: from, to: to}
	if _, ok := s.seen[e]; !ok {
		s.seen[e] = struct{}{}
		s.edges = append(s.edges, e)
	}
	if s.dirty {
		for i := range s.depth {
			s.depth[i] = unresolved
			s.state[i] = unvisited
		}
		s.dirty = false
	}
}

// Len is the number of distinct tasks in the set.
func (s *TaskSet) Len() int { return len(s.names) }

// Task looks up a task by name.
func (s *TaskSet) Task(name string) (Task, bool) {
	id, ok := s.index[name]
	if !ok {
		return Task{}, false
	}
	return Task{set: s, id: id}, true
}

// Tasks returns every task in first-mention order.
func (s *TaskSet) Tasks() []Task {
	out := make([]Task, len(s.names))
	for i := range s.names {
		out[i] = Task{set: s, id: i}
	}
	return out
}

// Edges returns the distinct dependency edges in first-seen order.
func (s *TaskSet) Edges() []Pair {
	out := make([]Pair, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, Pair{Dependency: s.names[e.from], Task: s.names[e.to]})
	}
	return out
}
