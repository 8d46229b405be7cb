package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/AgriGophers/dr-agro/bulletins"
)

// updateBulletins keeps the advisory index warm. Bulletins change a
// few times a week at most.
func (b *botState) updateBulletins() {
	bs, err := bulletins.Fetch(http.DefaultClient)
	if err != nil {
		log.Printf("Error fetching bulletins: %v", err)
	} else {
		b.bulletins = bs
	}

	ticker := time.NewTicker(time.Hour * 72)
	for range ticker.C {
		bs, err := bulletins.Fetch(http.DefaultClient)
		if err != nil {
			log.Printf("Error fetching bulletins: %v", err)
			continue
		}
		b.bulletins = bs
	}
}

func (b *botState) handleBulletins(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	// only arg and required, always present
	query := option(d, "query").String()

	log.Printf("%s used bulletins(%q)", e.User.Tag(), query)

	if len(query) < 3 || len(query) > 30 {
		embed := failEmbed("Error", "Your query must be between 3 and 30 characters.")
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  discord.EphemeralMessage,
				Embeds: &[]discord.Embed{embed},
			},
		})
		return
	}

	fromTitle, fromSummary, total := bulletins.MatchAll(b.bulletins, query)

	// A single hit gets the full bulletin embed rather than a list.
	if total == 1 {
		match := append(fromTitle, fromSummary...)[0]
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Embeds: &[]discord.Embed{match.Display()},
			},
		})
		return
	}

	if total == 0 {
		embed := failEmbed("Error", fmt.Sprintf("No bulletins found for %q", query))
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  discord.EphemeralMessage,
				Embeds: &[]discord.Embed{embed},
			},
		})
		return
	}

	var fields []discord.EmbedField
	for _, match := range append(fromTitle, fromSummary...) {
		fields = append(fields, discord.EmbedField{
			Name:  fmt.Sprintf("%s, %s", match.Title, match.Date),
			Value: fmt.Sprintf("*%s*\n%s\n%s", match.Region, match.Summary, match.URL),
		})
		if len(fields) == 5 {
			break
		}
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds: &[]discord.Embed{
				{
					Title:       fmt.Sprintf("Bulletins: %d Results", total),
					Description: fmt.Sprintf("Search Term: %q", query),
					Fields:      fields,
					Color:       accentColor,
				},
			},
		},
	})
}
