package simulate

import (
	"crapsim/models"
	"crapsim/service"
)

// Config holds the limits and defaults applied to /craps requests
type Config struct {
	MaxPlays  int
	Dice      models.DiceConfig
	Weighting models.Weighting // used when the weighting option is omitted
	Workers   int
}

// Feature represents the simulation feature
type Feature struct {
	simulationService service.SimulationService
	config            Config
}

// NewFeature creates a new simulation feature instance
func NewFeature(simulationService service.SimulationService, config Config) *Feature {
	return &Feature{
		simulationService: simulationService,
		config:            config,
	}
}
