package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"crapsim/models"

	"github.com/stretchr/testify/assert"
)

// TestEventDelivery tests that a completed simulation reaches its subscriber
func TestEventDelivery(t *testing.T) {
	bus := NewBus()

	eventReceived := make(chan SimulationCompletedEvent, 1)
	bus.Subscribe(EventTypeSimulationCompleted, func(ctx context.Context, event Event) {
		if completed, ok := event.(SimulationCompletedEvent); ok {
			eventReceived <- completed
		} else {
			t.Errorf("Expected SimulationCompletedEvent, got %T", event)
		}
	})

	testEvent := SimulationCompletedEvent{
		Result: models.SimulationResult{
			Plays:    1500,
			Wins:     720,
			Losses:   780,
			WinRate:  0.48,
			LossRate: 0.52,
		},
	}
	bus.Emit(context.Background(), testEvent)

	select {
	case received := <-eventReceived:
		assert.Equal(t, testEvent.Result, received.Result)
	case <-time.After(2 * time.Second):
		t.Fatal("Event was not received within timeout")
	}
}

// TestMultipleSubscribers tests that every subscriber of a type is called
func TestMultipleSubscribers(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	calls := 0
	for i := 0; i < 3; i++ {
		bus.Subscribe(EventTypeSimulationStarted, func(ctx context.Context, event Event) {
			mu.Lock()
			defer mu.Unlock()
			calls++
		})
	}

	bus.Emit(context.Background(), SimulationStartedEvent{Plays: 10, Dice: models.StandardDice})
	bus.Wait()

	assert.Equal(t, 3, calls)
}

// TestEventTypeIsolation tests that handlers only see their own event type
func TestEventTypeIsolation(t *testing.T) {
	bus := NewBus()

	received := make(chan Event, 2)
	bus.Subscribe(EventTypeSimulationFailed, func(ctx context.Context, event Event) {
		received <- event
	})

	bus.Emit(context.Background(), SimulationStartedEvent{Plays: 1})
	bus.Emit(context.Background(), SimulationFailedEvent{Plays: 1, Err: errors.New("boom")})
	bus.Wait()

	assert.Len(t, received, 1)
	event := <-received
	assert.Equal(t, EventTypeSimulationFailed, event.Type())
}

// TestHandlerPanicIsRecovered tests that a panicking handler does not take down the others
func TestHandlerPanicIsRecovered(t *testing.T) {
	bus := NewBus()

	delivered := make(chan bool, 1)
	bus.Subscribe(EventTypeSimulationCompleted, func(ctx context.Context, event Event) {
		panic("handler failure")
	})
	bus.Subscribe(EventTypeSimulationCompleted, func(ctx context.Context, event Event) {
		delivered <- true
	})

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), SimulationCompletedEvent{})
		bus.Wait()
	})
	assert.Len(t, delivered, 1)
}
