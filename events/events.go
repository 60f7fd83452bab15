package events

import (
	"context"
	"sync"
	"time"

	"crapsim/models"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeSimulationStarted   EventType = "simulation_started"
	EventTypeSimulationCompleted EventType = "simulation_completed"
	EventTypeSimulationFailed    EventType = "simulation_failed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// SimulationStartedEvent is emitted once the tables are built and plays begin
type SimulationStartedEvent struct {
	Plays     int
	Dice      models.DiceConfig
	Weighting models.Weighting
	Seed      int64
	Workers   int
}

func (e SimulationStartedEvent) Type() EventType {
	return EventTypeSimulationStarted
}

// SimulationCompletedEvent carries the final tally of a run
type SimulationCompletedEvent struct {
	Result models.SimulationResult
}

func (e SimulationCompletedEvent) Type() EventType {
	return EventTypeSimulationCompleted
}

// SimulationFailedEvent is emitted when a run stops with an error
type SimulationFailedEvent struct {
	Plays    int
	Err      error
	Duration time.Duration
}

func (e SimulationFailedEvent) Type() EventType {
	return EventTypeSimulationFailed
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
	inflight sync.WaitGroup
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	// Call handlers asynchronously to avoid blocking the simulation
	for i, handler := range handlers {
		b.inflight.Add(1)
		go func(h Handler, handlerIndex int) {
			defer b.inflight.Done()
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// Wait blocks until every handler started by Emit has returned
func (b *Bus) Wait() {
	b.inflight.Wait()
}
