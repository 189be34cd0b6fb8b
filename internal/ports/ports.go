package ports

import (
	"context"
	"iter"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
)

//go:generate go tool mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// PairReader defines the port through which dependency pairs enter the system.
// This decouples the graph builder from where and how the pairs are stored.
type PairReader interface {
	// ReadPairs returns the pairs in input order. The sequence yields a
	// non-nil error at most once, as its last element; a malformed record
	// is reported that way before any later record is read.
	ReadPairs(ctx context.Context) iter.Seq2[domain.Pair, error]
}

// PlanWriter defines the port through which a sorted plan leaves the system.
type PlanWriter interface {
	// WritePlan presents the plan. It is only called with a complete plan.
	WritePlan(plan domain.Plan) error
}

// EventPublisher defines the port through which components announce events.
type EventPublisher interface {
	Publish(event domain.Event)
}
