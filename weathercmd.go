package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/dustin/go-humanize"
)

func (b *botState) handleWeather(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	resp := api.InteractionResponse{Type: api.DeferredMessageInteractionWithSource}
	if err := b.state.RespondInteraction(e.ID, e.Token, resp); err != nil {
		log.Printf("could not send interaction callback, %v", err)
		return
	}

	place := option(d, "place").String()

	log.Printf("%s used weather(%q)", e.User.Tag(), place)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := b.weather.Lookup(ctx, place)
	if err != nil {
		log.Printf("Weather lookup for %s(%q) failed: %v", e.User.Tag(), place, err)
		b.followupFail(e, failEmbed("Error", fmt.Sprintf("Could not find weather for %q.", place)))
		return
	}

	narration, err := b.advisor.Narrate(ctx, report)
	if err != nil {
		log.Printf("Weather narration for %s(%q) failed: %v", e.User.Tag(), place, err)
		b.followupFail(e, failEmbed("Error", adviceFailed))
		return
	}

	embed, _ := adviceEmbed(fmt.Sprintf("Weather: %s, %s", report.Place, report.Country), narration, true)
	embed.Fields = []discord.EmbedField{
		{
			Name: "Now",
			Value: fmt.Sprintf("%s, %s°C, wind %s km/h, humidity %.0f%%",
				report.Condition,
				humanize.FtoaWithDigits(report.TempC, 1),
				humanize.FtoaWithDigits(report.WindKPH, 1),
				report.Humidity),
		},
	}
	for _, day := range report.Days {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name: day.Date,
			Value: fmt.Sprintf("%s, %.0f to %.0f°C, %s mm rain",
				day.Condition, day.MinC, day.MaxC, humanize.FtoaWithDigits(day.RainMM, 1)),
			Inline: true,
		})
	}

	if _, err := b.state.EditInteractionResponse(e.AppID, e.Token, api.EditInteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}); err != nil {
		log.Printf("could not edit interaction response, %v", err)
	}
}
