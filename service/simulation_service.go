package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crapsim/craps"
	"crapsim/dice"
	"crapsim/events"
	"crapsim/models"
	"crapsim/random"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidInput indicates a simulation request that cannot be run
var ErrInvalidInput = errors.New("invalid input")

// cancelCheckInterval is how many plays run between context checks
const cancelCheckInterval = 4096

// RollerFactory builds the roller owned by one worker
type RollerFactory func(worker int) (craps.Roller, error)

type simulationService struct {
	emitter EventEmitter
	newSeed func() (int64, error)
}

// NewSimulationService creates a new simulation service. A nil emitter disables events.
func NewSimulationService(emitter EventEmitter) SimulationService {
	return &simulationService{
		emitter: emitter,
		newSeed: random.NewSeed,
	}
}

func (s *simulationService) Tables(cfg models.DiceConfig, weighting models.Weighting) (*dice.Tables, error) {
	tables, err := dice.Build(cfg, weighting)
	if err != nil {
		return nil, fmt.Errorf("failed to build probability tables: %w", err)
	}

	log.WithFields(log.Fields{
		"dice":         cfg.String(),
		"weighting":    weighting,
		"combinations": len(tables.Enumeration.Unique),
		"sums":         len(tables.Intervals),
	}).Debug("Built probability tables")

	return tables, nil
}

func (s *simulationService) Simulate(ctx context.Context, req SimulationRequest) (*models.SimulationResult, error) {
	// Validate inputs
	if req.Plays <= 0 {
		return nil, fmt.Errorf("%w: play count must be positive, got %d", ErrInvalidInput, req.Plays)
	}
	if req.Dice == (models.DiceConfig{}) {
		req.Dice = models.StandardDice
	}
	if req.Weighting == "" {
		req.Weighting = models.WeightingUnique
	}
	if req.Workers < 1 {
		req.Workers = 1
	}

	tables, err := s.Tables(req.Dice, req.Weighting)
	if err != nil {
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		if seed, err = s.newSeed(); err != nil {
			return nil, fmt.Errorf("failed to seed simulation: %w", err)
		}
	}

	s.emit(ctx, events.SimulationStartedEvent{
		Plays:     req.Plays,
		Dice:      req.Dice,
		Weighting: req.Weighting,
		Seed:      seed,
		Workers:   req.Workers,
	})

	start := time.Now()
	tally, err := Run(ctx, req.Plays, req.Workers, func(worker int) (craps.Roller, error) {
		sampler, err := dice.NewSampler(tables.Intervals, dice.NewSeededSource(seed+int64(worker)))
		if err != nil {
			return nil, err
		}
		return sampler, nil
	})
	elapsed := time.Since(start)
	if err != nil {
		log.WithFields(log.Fields{
			"plays": req.Plays,
			"seed":  seed,
		}).WithError(err).Warn("Simulation stopped")
		s.emit(ctx, events.SimulationFailedEvent{Plays: req.Plays, Err: err, Duration: elapsed})
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	result := &models.SimulationResult{
		Plays:           tally.Plays,
		Wins:            tally.Wins,
		Losses:          tally.Losses,
		WinRate:         float64(tally.Wins) / float64(tally.Plays),
		LossRate:        float64(tally.Losses) / float64(tally.Plays),
		ExpectedWinRate: craps.ExactWinProbability(tables.Probabilities),
		Rolls:           tally.Rolls,
		Dice:            req.Dice,
		Weighting:       req.Weighting,
		Seed:            seed,
		Workers:         req.Workers,
		Duration:        elapsed,
	}

	log.WithFields(log.Fields{
		"plays":    result.Plays,
		"wins":     result.Wins,
		"losses":   result.Losses,
		"winRate":  result.WinRate,
		"duration": elapsed,
	}).Info("Simulation completed")

	s.emit(ctx, events.SimulationCompletedEvent{Result: *result})

	return result, nil
}

func (s *simulationService) emit(ctx context.Context, event events.Event) {
	if s.emitter != nil {
		s.emitter.Emit(ctx, event)
	}
}

// Run plays the given number of games and tallies the outcomes.
//
// With one worker every play runs on the calling goroutine. With more, plays
// are split as evenly as possible and each worker resolves its share with its
// own roller from newRoller; the tallies are summed once all workers finish.
// Run fails with ErrInvalidInput when plays is not positive, and with the
// context's error if ctx is cancelled first.
func Run(ctx context.Context, plays, workers int, newRoller RollerFactory) (models.Tally, error) {
	if plays <= 0 {
		return models.Tally{}, fmt.Errorf("%w: play count must be positive, got %d", ErrInvalidInput, plays)
	}
	if workers < 1 {
		workers = 1
	}
	if workers > plays {
		workers = plays
	}

	if workers == 1 {
		roller, err := newRoller(0)
		if err != nil {
			return models.Tally{}, fmt.Errorf("failed to create roller: %w", err)
		}
		return playBatch(ctx, roller, plays)
	}

	tallies := make([]models.Tally, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := plays / workers
		if w < plays%workers {
			share++
		}
		g.Go(func() error {
			roller, err := newRoller(w)
			if err != nil {
				return fmt.Errorf("failed to create roller for worker %d: %w", w, err)
			}
			tally, err := playBatch(gctx, roller, share)
			tallies[w] = tally
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return models.Tally{}, err
	}

	var total models.Tally
	for _, t := range tallies {
		total.Merge(t)
	}
	return total, nil
}

func playBatch(ctx context.Context, roller craps.Roller, plays int) (models.Tally, error) {
	var tally models.Tally
	for i := 0; i < plays; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return tally, err
			}
		}
		tally.Add(craps.Resolve(roller))
	}
	return tally, nil
}
