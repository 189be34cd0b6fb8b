// Package watch turns file system notifications for one input file into
// debounced domain.InputChanged events.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
	"github.com/ZanzyTHEbar/tasksort/internal/ports"
)

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// FileWatcher publishes an InputChanged event, carrying the file path, once
// the watched file has been quiet for the debounce interval.
type FileWatcher struct {
	path     string
	debounce time.Duration
	events   ports.EventPublisher
	logger   zerolog.Logger
	ready    chan struct{}
}

// NewFileWatcher creates a watcher for path. The directory is watched
// rather than the file so that editors replacing the file are noticed.
func NewFileWatcher(path string, debounce time.Duration, events ports.EventPublisher, logger zerolog.Logger) (*FileWatcher, error) {
	if path == "" {
		return nil, domain.InvalidArgument("no file to watch")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	return &FileWatcher{
		path:     abs,
		debounce: debounce,
		events:   events,
		logger:   logger.With().Str("component", "watcher").Str("path", abs).Logger(),
		ready:    make(chan struct{}),
	}, nil
}

// Ready is closed once the watch is registered.
func (fw *FileWatcher) Ready() <-chan struct{} {
	return fw.ready
}

// Run watches until ctx is done.
func (fw *FileWatcher) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(fw.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(fw.path), err)
	}
	close(fw.ready)
	fw.logger.Debug().Dur("debounce", fw.debounce).Msg("watching for changes")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fw.path || ev.Op&relevantOps == 0 {
				continue
			}
			fw.logger.Trace().Stringer("op", ev.Op).Msg("file event")
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			fw.events.Publish(domain.NewEvent(domain.InputChanged, fw.path))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				fw.logger.Warn().Err(err).Msg("event queue overflowed")
				fw.events.Publish(domain.NewEvent(domain.InputChanged, fw.path))
				continue
			}
			fw.logger.Error().Err(err).Msg("watch error")
		}
	}
}
