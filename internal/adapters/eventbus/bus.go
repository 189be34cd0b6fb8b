package eventbus

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
)

// ErrStopped is returned when subscribing to a stopped bus.
var ErrStopped = errors.New("eventbus is stopped")

// Subscriber is a channel that receives events for a specific topic.
type Subscriber chan domain.Event

// DefaultBufferSize is used when Subscribe is given a non-positive size.
const DefaultBufferSize = 10

// SimpleEventBus is an in-memory topic bus. Publish never blocks: an event
// is dropped for any subscriber whose buffer is full.
type SimpleEventBus struct {
	mu          sync.RWMutex
	subscribers map[string]map[Subscriber]struct{}
	stopped     bool
	dropped     atomic.Int64
	logger      zerolog.Logger
}

// NewSimpleEventBus creates a new SimpleEventBus.
func NewSimpleEventBus(logger zerolog.Logger) *SimpleEventBus {
	return &SimpleEventBus{
		subscribers: make(map[string]map[Subscriber]struct{}),
		logger:      logger.With().Str("component", "eventbus").Logger(),
	}
}

// Publish sends an event to all subscribers of the event's topic.
func (b *SimpleEventBus) Publish(event domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.stopped {
		b.logger.Debug().Str("topic", event.Topic).Msg("bus stopped, ignoring publish")
		return
	}

	subs := b.subscribers[event.Topic]
	b.logger.Trace().Str("topic", event.Topic).Int("subscribers", len(subs)).Msg("publishing event")
	for sub := range subs {
		select {
		case sub <- event:
		default:
			b.dropped.Add(1)
			b.logger.Warn().Str("topic", event.Topic).Msg("subscriber buffer full, event dropped")
		}
	}
}

// Subscribe creates a new subscriber channel for a given topic.
func (b *SimpleEventBus) Subscribe(topic string, bufferSize int) (Subscriber, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return nil, ErrStopped
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	sub := make(Subscriber, bufferSize)
	if _, ok := b.subscribers[topic]; !ok {
		b.subscribers[topic] = make(map[Subscriber]struct{})
	}
	b.subscribers[topic][sub] = struct{}{}
	return sub, nil
}

// Unsubscribe removes a subscriber from a topic and closes its channel.
func (b *SimpleEventBus) Unsubscribe(topic string, sub Subscriber) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.subscribers[topic]
	if !ok {
		return fmt.Errorf("topic %s not found", topic)
	}
	if _, ok := subs[sub]; !ok {
		return fmt.Errorf("subscriber not found for topic %s", topic)
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.subscribers, topic)
	}
	close(sub)
	return nil
}

// Stop closes every subscriber channel. Later publishes are ignored.
func (b *SimpleEventBus) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}
	b.stopped = true
	for _, subs := range b.subscribers {
		for sub := range subs {
			close(sub)
		}
	}
	b.subscribers = nil
	b.logger.Debug().Int64("dropped", b.dropped.Load()).Msg("eventbus stopped")
}

// Dropped reports how many deliveries were skipped because of full buffers.
func (b *SimpleEventBus) Dropped() int64 {
	return b.dropped.Load()
}
