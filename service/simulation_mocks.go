package service

import (
	"context"

	"crapsim/dice"
	"crapsim/events"
	"crapsim/models"

	"github.com/stretchr/testify/mock"
)

// MockSimulationService is a mock implementation of SimulationService
type MockSimulationService struct {
	mock.Mock
}

func (m *MockSimulationService) Simulate(ctx context.Context, req SimulationRequest) (*models.SimulationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SimulationResult), args.Error(1)
}

func (m *MockSimulationService) Tables(cfg models.DiceConfig, weighting models.Weighting) (*dice.Tables, error) {
	args := m.Called(cfg, weighting)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dice.Tables), args.Error(1)
}

// MockEventEmitter is a mock implementation of EventEmitter
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}
