package simulate

import (
	"context"
	"errors"
	"testing"

	"crapsim/bot/common"
	"crapsim/models"
	"crapsim/service"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testFeature(svc service.SimulationService) *Feature {
	return NewFeature(svc, Config{
		MaxPlays:  1000,
		Dice:      models.StandardDice,
		Weighting: models.WeightingUnique,
		Workers:   2,
	})
}

func intOption(name string, v int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(v),
	}
}

func stringOption(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: v,
	}
}

func TestParseRequest(t *testing.T) {
	f := testFeature(nil)

	req, err := f.parseRequest([]*discordgo.ApplicationCommandInteractionDataOption{
		intOption("plays", 500),
	})
	require.NoError(t, err)
	assert.Equal(t, service.SimulationRequest{
		Plays:     500,
		Dice:      models.StandardDice,
		Weighting: models.WeightingUnique,
		Workers:   2,
	}, req)

	req, err = f.parseRequest([]*discordgo.ApplicationCommandInteractionDataOption{
		intOption("plays", 10),
		stringOption("weighting", "ordered"),
		intOption("seed", 42),
	})
	require.NoError(t, err)
	assert.Equal(t, models.WeightingOrdered, req.Weighting)
	assert.Equal(t, int64(42), req.Seed)
}

func TestParseRequest_Invalid(t *testing.T) {
	f := testFeature(nil)

	tests := []struct {
		name    string
		options []*discordgo.ApplicationCommandInteractionDataOption
		errText string
	}{
		{"missing plays", nil, "at least 1"},
		{"zero plays", []*discordgo.ApplicationCommandInteractionDataOption{intOption("plays", 0)}, "at least 1"},
		{"over the limit", []*discordgo.ApplicationCommandInteractionDataOption{intOption("plays", 1001)}, "at most 1,000"},
		{"unknown weighting", []*discordgo.ApplicationCommandInteractionDataOption{
			intOption("plays", 5), stringOption("weighting", "loaded"),
		}, "unknown weighting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.parseRequest(tt.options)
			assert.ErrorContains(t, err, tt.errText)
		})
	}
}

func TestRun_Success(t *testing.T) {
	svc := new(service.MockSimulationService)
	f := testFeature(svc)
	req := service.SimulationRequest{Plays: 1500, Dice: models.StandardDice, Weighting: models.WeightingUnique}
	svc.On("Simulate", mock.Anything, req).Return(&models.SimulationResult{
		Plays:           1500,
		Wins:            729,
		Losses:          771,
		WinRate:         0.486,
		LossRate:        0.514,
		ExpectedWinRate: 17.0 / 35.0,
		Dice:            models.StandardDice,
		Weighting:       models.WeightingUnique,
	}, nil)

	embed := f.run(context.Background(), req)

	assert.Equal(t, common.ColorPrimary, embed.Color)
	assert.Contains(t, embed.Description, "1,500")
	assert.Equal(t, "729 (48.60%)", embed.Fields[0].Value)
	assert.Equal(t, "771 (51.40%)", embed.Fields[1].Value)
	assert.Equal(t, "48.57%", embed.Fields[2].Value)
	svc.AssertExpectations(t)
}

func TestRun_Failure(t *testing.T) {
	svc := new(service.MockSimulationService)
	f := testFeature(svc)
	svc.On("Simulate", mock.Anything, mock.Anything).Return(nil, errors.New("deadline exceeded"))

	embed := f.run(context.Background(), service.SimulationRequest{Plays: 1})

	assert.Equal(t, common.ColorDanger, embed.Color)
	assert.Contains(t, embed.Title, "Failed")
}

func TestRun_RealService(t *testing.T) {
	f := testFeature(service.NewSimulationService(nil))

	embed := f.run(context.Background(), service.SimulationRequest{Plays: 100, Seed: 9})

	assert.Equal(t, common.ColorPrimary, embed.Color)
	assert.Equal(t, "`9`", embed.Fields[5].Value)
}
