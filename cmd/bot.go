package cmd

import (
	"context"
	"fmt"
	"os"

	"crapsim/bot"
	"crapsim/config"
	"crapsim/events"
	"crapsim/service"

	log "github.com/sirupsen/logrus"
)

// RunBot starts the Discord bot and blocks until ctx is cancelled
func RunBot(ctx context.Context) error {
	log.Info("Starting crapsim bot...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ValidateBot(); err != nil {
		return err
	}
	cfg.ConfigureLogging()
	log.SetOutput(os.Stderr)

	eventBus := events.NewBus()
	subscribeLogging(eventBus)
	simulationService := service.NewSimulationService(eventBus)

	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:     cfg.DiscordToken,
		GuildID:   cfg.DiscordGuildID,
		MaxPlays:  cfg.BotMaxPlays,
		Dice:      cfg.DiceConfig(),
		Workers:   cfg.Workers,
		Weighting: cfg.Weighting,
	}, simulationService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}
	eventBus.Wait()
	log.Info("Shutdown completed")

	return nil
}
