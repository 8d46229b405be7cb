package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

func (b *botState) handleConfig(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	var embed discord.Embed

block:
	switch grp := d.Options[0]; grp.Name {
	case "user":
		switch cmd := grp.Options[0]; cmd.Name {
		case "ignore":
			user, _ := cmd.Options[0].SnowflakeValue()

			if ok := b.canIgnore(e.GuildID, user); !ok {
				embed = failEmbed("Error", fmt.Sprintf("You cannot ignore <@!%s>.", user))
				break block
			}

			if _, ok := b.cfg.Blacklist[user]; ok {
				embed = failEmbed("Error", fmt.Sprintf("<@!%s> is already being ignored.", user))
				break block
			}

			b.cfg.Blacklist[user] = struct{}{}
			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("<@!%s> is now going to be ignored from all commands on Dr-Agro.", user),
				Color:       accentColor,
			}

		case "unignore":
			user, _ := cmd.Options[0].SnowflakeValue()

			if _, ok := b.cfg.Blacklist[user]; !ok {
				embed = failEmbed("Error", fmt.Sprintf("<@!%s> is not being ignored.", user))
				break block
			}

			delete(b.cfg.Blacklist, user)
			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("<@!%s> is now unignored.", user),
				Color:       accentColor,
			}
		}

	case "alias":
		switch cmd := grp.Options[0]; cmd.Name {
		case "add":
			alias := strings.ToLower(cmd.Options[0].String())
			crop := strings.ToLower(cmd.Options[1].String())

			if strings.ContainsAny(alias, " .@/") {
				embed = failEmbed("Error", "Your alias contains illegal characters.")
				break block
			}

			b.cfg.Aliases[alias] = crop
			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("Asking for **%s** prices will now look up `%s`.", alias, crop),
				Color:       accentColor,
			}
		case "remove":
			alias := strings.ToLower(cmd.Options[0].String())
			delete(b.cfg.Aliases, alias)
			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("The `%s` alias has now been removed.", alias),
				Color:       accentColor,
			}
		case "list":
			embed = aliasList(b.cfg.Aliases)
		}
	}
	if !strings.HasPrefix(embed.Title, "Error") {
		err := saveConfig(b.cfg)
		if err != nil {
			embed = failEmbed("Error", fmt.Sprintf("Could not save config: `%v`", err))
		}
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags:  discord.EphemeralMessage,
			Embeds: &[]discord.Embed{embed},
		},
	})
}

func (b *botState) canIgnore(guild discord.GuildID, user discord.Snowflake) bool {
	m, err := b.state.Member(guild, discord.UserID(user))
	if err != nil {
		return false
	}
	for _, role := range m.RoleIDs {
		if _, ok := b.cfg.Permissions.Config[guild][discord.Snowflake(role)]; ok {
			return false
		}
	}
	return true
}

func aliasList(aliases map[string]string) discord.Embed {
	if len(aliases) == 0 {
		return discord.Embed{
			Title:       "Crop Aliases",
			Description: "No aliases configured.",
			Color:       accentColor,
		}
	}

	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, alias := range names {
		fmt.Fprintf(&b, "**%s** → `%s`\n", alias, aliases[alias])
	}
	return discord.Embed{
		Title:       "Crop Aliases",
		Description: b.String(),
		Color:       accentColor,
	}
}
