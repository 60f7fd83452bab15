package bot

import (
	"fmt"

	"crapsim/models"

	"github.com/bwmarrin/discordgo"
)

// commands returns the slash command definitions
func (b *Bot) commands() []*discordgo.ApplicationCommand {
	minPlays := 1.0
	return []*discordgo.ApplicationCommand{
		{
			Name:        "craps",
			Description: "Simulate pass line craps and report the win and loss rates",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "plays",
					Description: "Number of games to simulate",
					Required:    true,
					MinValue:    &minPlays,
					MaxValue:    float64(b.config.MaxPlays),
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "weighting",
					Description: "Which outcomes are equally likely",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "unique combinations", Value: string(models.WeightingUnique)},
						{Name: "ordered rolls (physical dice)", Value: string(models.WeightingOrdered)},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "seed",
					Description: "Seed for a reproducible run",
					Required:    false,
				},
			},
		},
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	for _, cmd := range b.commands() {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}
	return nil
}
