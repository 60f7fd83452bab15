package service

import (
	"context"

	"crapsim/dice"
	"crapsim/events"
	"crapsim/models"
)

// SimulationRequest describes one Monte Carlo run
type SimulationRequest struct {
	Plays     int
	Dice      models.DiceConfig // zero value means two six-sided dice
	Weighting models.Weighting  // empty means unique
	Seed      int64             // 0 draws a random seed
	Workers   int               // values below 1 run sequentially
}

// SimulationService defines the interface for simulation operations
type SimulationService interface {
	// Simulate builds the probability tables and plays req.Plays games
	Simulate(ctx context.Context, req SimulationRequest) (*models.SimulationResult, error)

	// Tables builds the enumeration, probability, cumulative and interval tables
	Tables(cfg models.DiceConfig, weighting models.Weighting) (*dice.Tables, error)
}

// EventEmitter defines the interface for publishing simulation events
type EventEmitter interface {
	Emit(ctx context.Context, event events.Event)
}
