package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/AgriGophers/dr-agro/advisor"
)

func (b *botState) handleSoil(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	resp := api.InteractionResponse{Type: api.DeferredMessageInteractionWithSource}
	if err := b.state.RespondInteraction(e.ID, e.Token, resp); err != nil {
		log.Printf("could not send interaction callback, %v", err)
		return
	}

	report := advisor.SoilReport{
		Crop: option(d, "crop").String(),
	}
	report.PH, _ = option(d, "ph").FloatValue()
	report.Nitrogen, _ = option(d, "nitrogen").FloatValue()
	report.Phosphorus, _ = option(d, "phosphorus").FloatValue()
	report.Potassium, _ = option(d, "potassium").FloatValue()
	report.Moisture, _ = option(d, "moisture").FloatValue()

	log.Printf("%s used soil(%q, pH %.1f)", e.User.Tag(), report.Crop, report.PH)

	if err := report.Validate(); err != nil {
		b.followupFail(e, failEmbed("Error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	advice, err := b.advisor.Soil(ctx, report)
	if err != nil {
		log.Printf("Soil advice for %s(%q) failed: %v", e.User.Tag(), report.Crop, err)
		b.followupFail(e, failEmbed("Error", adviceFailed))
		return
	}

	embed, _ := adviceEmbed(fmt.Sprintf("Soil advice: %s", report.Crop), advice, true)
	embed.Footer = &discord.EmbedFooter{
		Text: fmt.Sprintf("pH %.1f · N %.0f · P %.0f · K %.0f · moisture %.0f%%",
			report.PH, report.Nitrogen, report.Phosphorus, report.Potassium, report.Moisture),
	}

	if _, err := b.state.EditInteractionResponse(e.AppID, e.Token, api.EditInteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}); err != nil {
		log.Printf("could not edit interaction response, %v", err)
	}
}
