package simulate

import (
	"fmt"
	"time"

	"crapsim/bot/common"
	"crapsim/models"

	"github.com/bwmarrin/discordgo"
)

// BuildResultEmbed creates the embed summarizing a simulation
func BuildResultEmbed(result *models.SimulationResult) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🎲 Craps Simulation",
		Description: fmt.Sprintf("Played **%s** games of pass line with %s.",
			common.FormatCount(result.Plays), result.Dice),
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Wins",
				Value:  fmt.Sprintf("%s (%s)", common.FormatCount(result.Wins), common.FormatPercent(result.WinRate)),
				Inline: true,
			},
			{
				Name:   "Losses",
				Value:  fmt.Sprintf("%s (%s)", common.FormatCount(result.Losses), common.FormatPercent(result.LossRate)),
				Inline: true,
			},
			{
				Name:   "Expected Win Rate",
				Value:  common.FormatPercent(result.ExpectedWinRate),
				Inline: true,
			},
			{
				Name:   "Rolls",
				Value:  common.FormatCount(result.Rolls),
				Inline: true,
			},
			{
				Name:   "Weighting",
				Value:  string(result.Weighting),
				Inline: true,
			},
			{
				Name:   "Seed",
				Value:  fmt.Sprintf("`%d`", result.Seed),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Completed in %s", common.FormatDuration(result.Duration)),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// BuildErrorEmbed creates the embed shown when a simulation fails
func BuildErrorEmbed(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ Simulation Failed",
		Description: message,
		Color:       common.ColorDanger,
	}
}
