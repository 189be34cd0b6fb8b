// Package app wires a PairReader and a PlanWriter around the domain sorter.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
	"github.com/ZanzyTHEbar/tasksort/internal/ports"
	"github.com/ZanzyTHEbar/tasksort/internal/utils"
)

// Sorter runs one read, sort and write cycle.
type Sorter struct {
	reader ports.PairReader
	writer ports.PlanWriter
	logger zerolog.Logger
}

// NewSorter creates a Sorter.
func NewSorter(reader ports.PairReader, writer ports.PlanWriter, logger zerolog.Logger) *Sorter {
	return &Sorter{reader: reader, writer: writer, logger: logger}
}

// Run reads every pair, sorts the resulting task set and writes the plan.
// Nothing is written unless the whole input was read and sorted.
func (s *Sorter) Run(ctx context.Context) (domain.Plan, error) {
	logger := s.logger.With().Str("run_id", utils.NewRunID()).Logger()
	ctx = logger.WithContext(ctx)
	start := time.Now()

	set, err := s.build(ctx)
	if err != nil {
		return domain.Plan{}, err
	}

	plan, err := set.Plan()
	if err != nil {
		return domain.Plan{}, fmt.Errorf("sorting tasks: %w", err)
	}
	logger.Debug().
		Int("levels", len(plan.Levels)).
		Str("elapsed", utils.FormatDuration(time.Since(start))).
		Msg("tasks sorted")

	if err := s.writer.WritePlan(plan); err != nil {
		return domain.Plan{}, fmt.Errorf("writing plan: %w", err)
	}
	return plan, nil
}

func (s *Sorter) build(ctx context.Context) (*domain.TaskSet, error) {
	logger := zerolog.Ctx(ctx)

	pairs := 0
	counted := func(yield func(domain.Pair, error) bool) {
		for p, err := range s.reader.ReadPairs(ctx) {
			if err == nil {
				pairs++
			}
			if !yield(p, err) {
				return
			}
		}
	}

	set, err := domain.Build(counted)
	if err != nil {
		logger.Debug().Err(err).Int("pairs", pairs).Msg("reading pairs failed")
		return nil, fmt.Errorf("reading pairs: %w", err)
	}
	logger.Debug().Int("pairs", pairs).Int("tasks", set.Len()).Msg("task graph built")
	return set, nil
}
