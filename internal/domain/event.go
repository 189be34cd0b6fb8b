package domain

import "time"

// Event topics published while watching an input file.
const (
	InputChanged = "input.changed" // Data: path of the changed file
	PlanReady    = "plan.ready"    // Data: Plan
	PlanFailed   = "plan.failed"   // Data: error
)

// Event represents a message passed through the event bus.
type Event struct {
	Topic     string    // One of the topic constants above
	Data      any       // Payload of the event
	Timestamp time.Time // When the event occurred
}

// NewEvent creates a new event.
func NewEvent(topic string, data any) Event {
	return Event{
		Topic:     topic,
		Data:      data,
		Timestamp: time.Now(),
	}
}
