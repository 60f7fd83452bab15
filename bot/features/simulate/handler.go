package simulate

import (
	"context"
	"fmt"
	"time"

	"crapsim/bot/common"
	"crapsim/models"
	"crapsim/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const simulationTimeout = 2 * time.Minute

// HandleCommand handles the /craps command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	req, err := f.parseRequest(i.ApplicationCommandData().Options)
	if err != nil {
		common.RespondWithError(s, i, err.Error())
		return
	}

	// Large runs can outlast the interaction acknowledgement window
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring craps response: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), simulationTimeout)
	defer cancel()

	embed := f.run(ctx, req)
	if err := common.UpdateMessage(s, i, embed); err != nil {
		log.Errorf("Error updating craps response: %v", err)
	}
}

// parseRequest validates the command options and fills in configured defaults
func (f *Feature) parseRequest(options []*discordgo.ApplicationCommandInteractionDataOption) (service.SimulationRequest, error) {
	req := service.SimulationRequest{
		Dice:      f.config.Dice,
		Weighting: f.config.Weighting,
		Workers:   f.config.Workers,
	}

	for _, opt := range options {
		switch opt.Name {
		case "plays":
			req.Plays = int(opt.IntValue())
		case "weighting":
			weighting, err := models.ParseWeighting(opt.StringValue())
			if err != nil {
				return req, err
			}
			req.Weighting = weighting
		case "seed":
			req.Seed = opt.IntValue()
		}
	}

	if req.Plays < 1 {
		return req, fmt.Errorf("plays must be at least 1")
	}
	if req.Plays > f.config.MaxPlays {
		return req, fmt.Errorf("plays must be at most %s", common.FormatCount(f.config.MaxPlays))
	}
	return req, nil
}

// run simulates and renders the outcome, successful or not, as an embed
func (f *Feature) run(ctx context.Context, req service.SimulationRequest) *discordgo.MessageEmbed {
	result, err := f.simulationService.Simulate(ctx, req)
	if err != nil {
		log.WithFields(log.Fields{
			"plays":     req.Plays,
			"weighting": req.Weighting,
		}).WithError(err).Error("Craps simulation failed")
		return BuildErrorEmbed("The simulation could not be completed. Please try again with fewer plays.")
	}
	return BuildResultEmbed(result)
}
