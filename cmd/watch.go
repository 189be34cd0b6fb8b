package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ZanzyTHEbar/tasksort/internal/adapters/eventbus"
	"github.com/ZanzyTHEbar/tasksort/internal/adapters/input"
	"github.com/ZanzyTHEbar/tasksort/internal/adapters/watch"
	"github.com/ZanzyTHEbar/tasksort/internal/app"
	"github.com/ZanzyTHEbar/tasksort/internal/domain"
	"github.com/ZanzyTHEbar/tasksort/internal/ports"
)

func newWatchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [flags] <input>",
		Short: "Sort the input file again every time it changes",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == stdinPath {
				return domain.InvalidArgument("cannot watch standard input")
			}
			return c.watch(cmd, args[0])
		},
	}
}

func (c *cli) watch(cmd *cobra.Command, path string) error {
	reader, err := input.NewFileReader(path, c.cfg.Input.Format, c.cfg.Input.Separator)
	if err != nil {
		return err
	}
	sorter, err := c.newSorter(cmd, reader)
	if err != nil {
		return err
	}

	bus := eventbus.NewSimpleEventBus(c.logger)
	defer bus.Stop()
	changes, err := bus.Subscribe(domain.InputChanged, c.cfg.Watch.BufferSize)
	if err != nil {
		return err
	}
	ready, err := bus.Subscribe(domain.PlanReady, c.cfg.Watch.BufferSize)
	if err != nil {
		return err
	}
	failed, err := bus.Subscribe(domain.PlanFailed, c.cfg.Watch.BufferSize)
	if err != nil {
		return err
	}
	fw, err := watch.NewFileWatcher(path, c.cfg.Watch.Debounce, bus, c.logger)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return fw.Run(ctx)
	})
	g.Go(func() error {
		logOutcomes(ctx, c.logger, ready, failed)
		return nil
	})
	g.Go(func() error {
		resort(ctx, sorter, bus)
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-changes:
				if !ok {
					return nil
				}
				resort(ctx, sorter, bus)
			}
		}
	})
	return g.Wait()
}

// resort runs one sort and publishes its outcome; watching goes on either way.
func resort(ctx context.Context, sorter *app.Sorter, bus ports.EventPublisher) {
	plan, err := sorter.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		bus.Publish(domain.NewEvent(domain.PlanFailed, err))
		return
	}
	bus.Publish(domain.NewEvent(domain.PlanReady, plan))
}

// logOutcomes logs every plan outcome received on ready and failed until ctx
// is done or both channels are closed.
func logOutcomes(ctx context.Context, logger zerolog.Logger, ready, failed <-chan domain.Event) {
	for ready != nil || failed != nil {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ready:
			if !ok {
				ready = nil
				continue
			}
			if plan, ok := ev.Data.(domain.Plan); ok {
				logger.Info().Int("levels", len(plan.Levels)).Msg("plan updated")
			}
		case ev, ok := <-failed:
			if !ok {
				failed = nil
				continue
			}
			err, _ := ev.Data.(error)
			logger.Error().Err(err).Msg("sort failed, waiting for the next change")
		}
	}
}
