package bot

import (
	"context"
	"fmt"

	"crapsim/bot/common"
	"crapsim/bot/features/simulate"
	"crapsim/events"
	"crapsim/models"
	"crapsim/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token     string
	GuildID   string // empty registers commands globally
	MaxPlays  int
	Dice      models.DiceConfig
	Workers   int
	Weighting models.Weighting
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	simulate *simulate.Feature
}

func New(config Config, simulationService service.SimulationService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:  config,
		session: dg,
		simulate: simulate.NewFeature(simulationService, simulate.Config{
			MaxPlays:  config.MaxPlays,
			Dice:      config.Dice,
			Weighting: config.Weighting,
			Workers:   config.Workers,
		}),
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Show the latest result in the bot's status
	eventBus.Subscribe(events.EventTypeSimulationCompleted, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.SimulationCompletedEvent); ok {
			if err := dg.UpdateCustomStatus(statusText(e.Result)); err != nil {
				log.Errorf("Failed to update bot status: %v", err)
			}
		}
	})

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "craps":
		b.simulate.HandleCommand(s, i)
	}
}

// statusText summarizes a simulation result for the bot's custom status
func statusText(result models.SimulationResult) string {
	return fmt.Sprintf("Last run: %s wins over %s plays",
		common.FormatPercent(result.WinRate), common.FormatCount(result.Plays))
}
