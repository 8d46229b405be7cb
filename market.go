package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/AgriGophers/dr-agro/advisor"
)

// Price basis choices offered in the second wizard step.
var marketScopes = []discord.SelectOption{
	{
		Label:       "Wholesale (mandi)",
		Value:       "wholesale",
		Description: "Prices at the nearest wholesale market.",
		Emoji:       &discord.ComponentEmoji{Name: "🏬"},
	},
	{
		Label:       "Retail",
		Value:       "retail",
		Description: "Prices at local shops and stalls.",
		Emoji:       &discord.ComponentEmoji{Name: "🛒"},
	},
	{
		Label:       "Farm gate",
		Value:       "farm gate",
		Description: "Prices paid to the farmer directly.",
		Emoji:       &discord.ComponentEmoji{Name: "🚜"},
	},
	{
		Label:       "Region-wide average",
		Value:       "",
		Description: "Averaged across the whole region.",
		Emoji:       &discord.ComponentEmoji{Name: "🗺️"},
	},
}

func (b *botState) handleMarket(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	crop := strings.ToLower(option(d, "crop").String())
	region := option(d, "region").String()

	if full, ok := b.cfg.Aliases[crop]; ok {
		crop = full
	}

	log.Printf("%s used market(%q, %q)", e.User.Tag(), crop, region)

	query := advisor.MarketQuery{Crop: crop, Region: region}
	if err := query.Validate(); err != nil {
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  discord.EphemeralMessage,
				Embeds: &[]discord.Embed{failEmbed("Error", err.Error())},
			},
		})
		return
	}

	id := "market." + e.ID.String()
	storeInteraction(&interactionData{
		id:      id,
		created: time.Now(),
		token:   e.Token,
		userID:  e.User.ID,
		crop:    crop,
		region:  region,
	})

	embed := discord.Embed{
		Title:       fmt.Sprintf("Price lookup: %s in %s", crop, region),
		Description: "Pick a price basis below to get an estimate.",
		Color:       accentColor,
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds: &[]discord.Embed{embed},
			Components: discord.ComponentsPtr(&discord.SelectComponent{
				CustomID:    discord.ComponentID(id),
				Placeholder: "Price basis",
				Options:     marketScopes,
			}),
		},
	})
}

func (b *botState) handleMarketComponent(e *gateway.InteractionCreateEvent, data discord.ComponentInteraction, d *interactionData) {
	if e.User.ID != d.userID {
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  discord.EphemeralMessage,
				Embeds: &[]discord.Embed{failEmbed("Error", notOwner)},
			},
		})
		return
	}

	var scope string
	if sel, ok := data.(*discord.SelectInteraction); ok && len(sel.Values) != 0 {
		scope = sel.Values[0]
	}

	log.Printf("%s used market component(%q)", e.User.Tag(), scope)

	if err := b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.DeferredMessageUpdate,
	}); err != nil {
		log.Printf("could not send interaction callback, %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	query := advisor.MarketQuery{Crop: d.crop, Region: d.region, Market: scope}
	estimate, err := b.advisor.Market(ctx, query)
	if err != nil {
		log.Printf("Market estimate for %s(%q, %q) failed: %v", e.User.Tag(), d.crop, d.region, err)
		b.state.EditInteractionResponse(b.appID, e.Token, api.EditInteractionResponseData{
			Embeds:     &[]discord.Embed{failEmbed("Error", adviceFailed)},
			Components: discord.ComponentsPtr(),
		})
		return
	}

	dropInteraction(d.id)

	embed, _ := adviceEmbed(fmt.Sprintf("Market estimate: %s in %s", d.crop, d.region), estimate, true)
	embed.Footer = &discord.EmbedFooter{
		Text: "Model-synthesized estimate, not live market data.",
	}

	if _, err := b.state.EditInteractionResponse(b.appID, e.Token, api.EditInteractionResponseData{
		Embeds:     &[]discord.Embed{embed},
		Components: discord.ComponentsPtr(),
	}); err != nil {
		log.Printf("could not edit interaction response, %v", err)
	}
}
