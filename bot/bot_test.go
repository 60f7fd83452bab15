package bot

import (
	"testing"

	"crapsim/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	b := &Bot{config: Config{MaxPlays: 5000}}

	cmds := b.commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "craps", cmds[0].Name)

	plays := cmds[0].Options[0]
	assert.Equal(t, "plays", plays.Name)
	assert.Equal(t, discordgo.ApplicationCommandOptionInteger, plays.Type)
	assert.True(t, plays.Required)
	assert.Equal(t, 1.0, *plays.MinValue)
	assert.Equal(t, 5000.0, plays.MaxValue)

	weighting := cmds[0].Options[1]
	require.Len(t, weighting.Choices, 2)
	assert.Equal(t, "unique", weighting.Choices[0].Value)
	assert.Equal(t, "ordered", weighting.Choices[1].Value)
}

func TestStatusText(t *testing.T) {
	text := statusText(models.SimulationResult{Plays: 25000, WinRate: 0.4912})

	assert.Equal(t, "Last run: 49.12% wins over 25,000 plays", text)
}
