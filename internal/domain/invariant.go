package domain

import (
	"context"
	"errors"

	assert "github.com/ZanzyTHEbar/assert-lib"
)

// ErrInvariant is the panic value raised when an internal invariant of a
// TaskSet is broken. Such a panic is a programming error, not bad input.
var ErrInvariant = errors.New("domain: invariant violated")

// invariants reports a broken invariant on stderr and then panics with
// ErrInvariant instead of exiting the process.
var invariants = newInvariantHandler()

func newInvariantHandler() *assert.AssertHandler {
	h := assert.NewAssertHandler()
	h.SetExitFunc(func(int) {
		panic(ErrInvariant)
	})
	return h
}

// mustHoldLock panics unless the caller holds s.mu.
func (s *TaskSet) mustHoldLock() {
	if s.mu.TryLock() {
		s.mu.Unlock()
		invariants.Never(context.Background(), "TaskSet lock not held", "tasks", len(s.names))
	}
}
