package cmd

import (
	"context"
	"fmt"
	"io"

	"crapsim/config"
	"crapsim/events"
	"crapsim/report"
	"crapsim/service"

	log "github.com/sirupsen/logrus"
)

// App runs simulations from the command line
type App struct {
	Config  *config.Config
	Service service.SimulationService
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run loads configuration and runs one command-line simulation.
// Logs go to stderr so stdout only carries the report.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(stderr)
	if err != nil {
		return err
	}

	eventBus := events.NewBus()
	subscribeLogging(eventBus)
	defer eventBus.Wait()

	app := &App{
		Config:  cfg,
		Service: service.NewSimulationService(eventBus),
		Stdout:  stdout,
		Stderr:  stderr,
	}
	return app.Run(ctx, args)
}

// Run parses args, optionally prints the probability tables, then simulates
// and prints the result
func (a *App) Run(ctx context.Context, args []string) error {
	parsed, err := ParseArgs(args)
	if err != nil {
		return err
	}
	if parsed.Warning != "" {
		fmt.Fprintln(a.Stderr, "warning:", parsed.Warning)
		log.WithField("argument", args[1]).Warn("Unrecognized verbose flag, continuing without verbose output")
	}

	dice := a.Config.DiceConfig()
	printer := report.NewPrinter(a.Stdout, a.Config.Output)

	if parsed.Verbose {
		tables, err := a.Service.Tables(dice, a.Config.Weighting)
		if err != nil {
			return err
		}
		if err := printer.Tables(tables); err != nil {
			return fmt.Errorf("failed to write tables: %w", err)
		}
	}

	result, err := a.Service.Simulate(ctx, service.SimulationRequest{
		Plays:     parsed.Plays,
		Dice:      dice,
		Weighting: a.Config.Weighting,
		Seed:      a.Config.Seed,
		Workers:   a.Config.Workers,
	})
	if err != nil {
		return err
	}

	if err := printer.Result(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func loadConfig(logOutput io.Writer) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ConfigureLogging()
	log.SetOutput(logOutput)
	return cfg, nil
}

// subscribeLogging records simulation lifecycle events in the log
func subscribeLogging(bus *events.Bus) {
	bus.Subscribe(events.EventTypeSimulationStarted, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.SimulationStartedEvent); ok {
			log.WithFields(log.Fields{
				"plays":     e.Plays,
				"dice":      e.Dice.String(),
				"weighting": e.Weighting,
				"seed":      e.Seed,
				"workers":   e.Workers,
			}).Debug("Simulation started")
		}
	})
	bus.Subscribe(events.EventTypeSimulationFailed, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.SimulationFailedEvent); ok {
			log.WithFields(log.Fields{
				"plays":    e.Plays,
				"duration": e.Duration,
			}).WithError(e.Err).Error("Simulation failed")
		}
	})
}
