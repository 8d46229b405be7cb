package main

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

var (
	notOwner     = "Only the person who asked can do this."
	adviceFailed = "The advisor could not answer. Please try again in a moment."
)

type interactionData struct {
	id      string
	created time.Time
	token   string
	userID  discord.UserID

	// query is what the user asked; advice is the full model answer,
	// re-rendered at different limits on expand and minimize.
	query  string
	advice string

	// market wizard state
	crop   string
	region string
}

var (
	interactionMap = map[string]*interactionData{}
	mu             sync.Mutex
)

func storeInteraction(d *interactionData) {
	mu.Lock()
	interactionMap[d.id] = d
	mu.Unlock()
}

func dropInteraction(id string) {
	mu.Lock()
	delete(interactionMap, id)
	mu.Unlock()
}

// gcInteractionData expires stale component state every five minutes
// and removes the now-dead components from their messages.
func (b *botState) gcInteractionData() {
	ticker := time.NewTicker(time.Minute * 5)
	for range ticker.C {
		now := time.Now()
		for _, data := range interactionMap {
			if !now.After(data.created.Add(time.Minute * 5)) {
				continue
			}

			dropInteraction(data.id)

			if data.token == "" {
				continue
			}
			b.state.EditInteractionResponse(b.appID, data.token, api.EditInteractionResponseData{
				Components: discord.ComponentsPtr(),
			})
		}
	}
}

func (b *botState) handleAsk(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	resp := api.InteractionResponse{Type: api.DeferredMessageInteractionWithSource}
	if err := b.state.RespondInteraction(e.ID, e.Token, resp); err != nil {
		log.Printf("could not send interaction callback, %v", err)
		return
	}

	// only arg and required, always present
	question := option(d, "question").String()

	log.Printf("%s used ask(%q)", e.User.Tag(), question)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	advice, err := b.advisor.Chat(ctx, question)
	if err != nil {
		log.Printf("Ask by %s(%q) failed: %v", e.User.Tag(), question, err)
		b.followupFail(e, failEmbed("Error", adviceFailed))
		return
	}

	id := "ask." + e.ID.String()
	storeInteraction(&interactionData{
		id:      id,
		created: time.Now(),
		token:   e.Token,
		userID:  e.User.ID,
		query:   question,
		advice:  advice,
	})

	embed, more := adviceEmbed("Advisor", advice, false)

	// Without omitted content the expand option is redundant and a
	// bare hide button suffices.
	var component discord.InteractiveComponent = buttonComponent(id)
	if more {
		component = selectComponent(id, false)
	}

	if _, err := b.state.EditInteractionResponse(e.AppID, e.Token, api.EditInteractionResponseData{
		Embeds:     &[]discord.Embed{embed},
		Components: discord.ComponentsPtr(component),
	}); err != nil {
		log.Printf("could not edit interaction response, %v", err)
	}
}

func (b *botState) handleAskComponent(e *gateway.InteractionCreateEvent, data discord.ComponentInteraction, d *interactionData) {
	action := "hide"
	if sel, ok := data.(*discord.SelectInteraction); ok && len(sel.Values) != 0 {
		action = sel.Values[0]
	}

	log.Printf("%s used ask component(%q)", e.User.Tag(), action)

	// if e.Member is nil, all operations should be allowed
	hasRole := e.Member == nil
	if !hasRole {
		for _, role := range e.Member.RoleIDs {
			if _, ok := b.cfg.Permissions.Advice[discord.Snowflake(role)]; ok {
				hasRole = true
				break
			}
		}
	}

	hasPerm := func() bool {
		if hasRole {
			return true
		}
		perms, err := b.state.Permissions(e.ChannelID, e.User.ID)
		if err != nil {
			return false
		}
		return perms.Has(discord.PermissionAdministrator)
	}

	var embed discord.Embed
	var components *discord.ContainerComponents

	switch action {
	case "minimize":
		embed, _ = adviceEmbed("Advisor", d.advice, false)
		components = discord.ComponentsPtr(selectComponent(d.id, false))

	case "expand.all":
		embed, _ = adviceEmbed("Advisor", d.advice, true)
		components = discord.ComponentsPtr(selectComponent(d.id, true))

	case "expand":
		// Private copy for the requester; the original stays as is.
		embed, _ = adviceEmbed("Advisor", d.advice, true)
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  discord.EphemeralMessage,
				Embeds: &[]discord.Embed{embed},
			},
		})
		return

	case "hide":
		embed, _ = adviceEmbed("Advisor", d.advice, false)
		embed.Description = ""
		components = discord.ComponentsPtr()

		if hasPerm() {
			dropInteraction(d.id)
		}
	}

	if e.GuildID != discord.NullGuildID {
		if e.User.ID != d.userID && !hasPerm() {
			embed = failEmbed("Error", notOwner)
		}
	}

	var resp api.InteractionResponse
	if embed.Title == "Error" {
		resp = api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  discord.EphemeralMessage,
				Embeds: &[]discord.Embed{embed},
			},
		}
	} else {
		resp = api.InteractionResponse{
			Type: api.UpdateMessage,
			Data: &api.InteractionResponseData{
				Embeds:     &[]discord.Embed{embed},
				Components: components,
			},
		}
	}
	b.state.RespondInteraction(e.ID, e.Token, resp)
}

// followupFail deletes the deferred response and sends an ephemeral
// error embed instead.
func (b *botState) followupFail(e *gateway.InteractionCreateEvent, embed discord.Embed) {
	if err := b.state.DeleteInteractionResponse(e.AppID, e.Token); err != nil {
		log.Printf("failed to delete message: %v", err)
		return
	}
	_, _ = b.state.CreateInteractionFollowup(e.AppID, e.Token, api.InteractionResponseData{
		Flags:  discord.EphemeralMessage,
		Embeds: &[]discord.Embed{embed},
	})
}

func selectComponent(id string, full bool) *discord.SelectComponent {
	expand := discord.SelectOption{
		Label:       "Expand",
		Value:       "expand",
		Description: "Show the full advice.",
		Emoji:       &discord.ComponentEmoji{Name: "⬇️"},
	}
	if full {
		expand = discord.SelectOption{
			Label:       "Minimize",
			Value:       "minimize",
			Description: "Show less advice.",
			Emoji:       &discord.ComponentEmoji{Name: "⬆️"},
		}
	}

	sel := &discord.SelectComponent{
		CustomID:    discord.ComponentID(id),
		Placeholder: "Actions",
		Options: []discord.SelectOption{
			expand,
			{
				Label:       "Hide",
				Value:       "hide",
				Description: "Hide the message.",
				Emoji:       &discord.ComponentEmoji{Name: "❌"},
			},
		},
	}
	if !full {
		sel.Options = append(sel.Options, discord.SelectOption{
			Label:       "Expand (For everyone)",
			Value:       "expand.all",
			Description: "Show the full advice. (Requires permissions)",
			Emoji:       &discord.ComponentEmoji{Name: "🌏"},
		})
	}

	return sel
}

func buttonComponent(id string) *discord.ButtonComponent {
	return &discord.ButtonComponent{
		CustomID: discord.ComponentID(id),
		Label:    "Hide",
		Emoji:    &discord.ComponentEmoji{Name: "🇽"},
		Style:    discord.SecondaryButtonStyle(),
	}
}
