package domain

import "context"

// Pair is one raw dependency record. In the text encoding it reads
// "DEPENDENCY->TASK": Task cannot start before Dependency is done.
type Pair struct {
	Dependency string `json:"dependency" yaml:"dependency"` // The task depended upon
	Task       string `json:"task" yaml:"task"`             // The dependent task
}

// Task is a handle onto a node stored in a TaskSet.
// The zero value is not usable; obtain tasks from TaskSet.Add or TaskSet.Task.
type Task struct {
	set *TaskSet
	id  int
}

// Name returns the task's unique name.
func (t Task) Name() string {
	return t.set.names[t.id]
}

// Dependencies returns the names of the tasks this task depends on,
// in the order the edges were recorded. Duplicate edges appear twice.
func (t Task) Dependencies() []string {
	deps := t.set.deps[t.id]
	names := make([]string, 0, len(deps))
	for _, d := range deps {
		names = append(names, t.set.names[d])
	}
	return names
}

// DependsOn records that t depends on other and returns t, so calls can be chained:
//
//	final.DependsOn(t2.DependsOn(t1)).DependsOn(t3)
//
// Both tasks must belong to the same TaskSet.
func (t Task) DependsOn(other Task) Task {
	invariants.Assert(context.Background(), other.set == t.set, "DependsOn across task sets",
		"task", t.Name(), "dependency", other.Name())
	t.set.link(other.id, t.id)
	return t
}

// Depth returns the length of the longest dependency chain below the task:
// 0 when it has no dependencies, otherwise 1 + the maximum depth of its dependencies.
func (t Task) Depth() (int, error) {
	t.set.mu.Lock()
	defer t.set.mu.Unlock()

	if err := t.set.resolve(t.id); err != nil {
		return 0, err
	}
	return t.set.depth[t.id], nil
}

// Priority is the 1-based level number of the task (Depth + 1).
func (t Task) Priority() (int, error) {
	d, err := t.Depth()
	if err != nil {
		return 0, err
	}
	return d + 1, nil
}
