package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/httputil"

	"github.com/AgriGophers/dr-agro/advisor"
	"github.com/AgriGophers/dr-agro/bulletins"
	"github.com/AgriGophers/dr-agro/weather"
)

type botState struct {
	cfg     configuration
	appID   discord.AppID
	state   *state.State
	advisor *advisor.Advisor
	weather *weather.Client

	bulletins []bulletins.Bulletin
}

func (b *botState) OnCommand(e *gateway.InteractionCreateEvent) {
	if e.GuildID != 0 {
		e.User = &e.Member.User
	}

	// ignore blacklisted users
	if _, ok := b.cfg.Blacklist[discord.Snowflake(e.User.ID)]; ok {
		log.Printf("Ignoring interaction from %s", e.User.Tag())
		return
	}

	switch data := e.Data.(type) {
	case *discord.CommandInteraction:
		switch data.Name {
		case "ask":
			b.handleAsk(e, data)
		case "soil":
			b.handleSoil(e, data)
		case "pest":
			b.handlePest(e, data)
		case "market":
			b.handleMarket(e, data)
		case "weather":
			b.handleWeather(e, data)
		case "bulletins":
			b.handleBulletins(e, data)
		case "info":
			b.handleInfo(e, data)
		case "config":
			b.handleConfig(e, data)
		}

	case discord.ComponentInteraction:
		id := string(data.ID())
		d, ok := interactionMap[id]
		if !ok {
			return
		}
		switch strings.SplitN(id, ".", 2)[0] {
		case "ask":
			b.handleAskComponent(e, data, d)
		case "market":
			b.handleMarketComponent(e, data, d)
		}
	}
}

// option returns the named top-level command option, or a zero value.
func option(d *discord.CommandInteraction, name string) discord.CommandInteractionOption {
	for _, opt := range d.Options {
		if opt.Name == name {
			return opt
		}
	}
	return discord.CommandInteractionOption{}
}

func loadCommands(s *state.State, me discord.UserID, cfg configuration) error {
	appID := discord.AppID(me)
	registered, err := s.Commands(appID)
	if err != nil {
		return err
	}

	registeredMap := map[string]bool{}
	if !update {
		for _, c := range registered {
			registeredMap[c.Name] = true
			log.Println("Registered command:", c.Name)
		}
	}

	for _, c := range commands {
		if registeredMap[c.Name] {
			continue
		}
		if _, err := s.CreateCommand(appID, c); err != nil {
			var httperr *httputil.HTTPError
			if errors.As(err, &httperr) {
				log.Println(string(httperr.Body))
			}
			return fmt.Errorf("could not register: %s, %w", c.Name, err)
		}
		log.Println("Created command:", c.Name)
	}

	return nil
}

var commands = []api.CreateCommandData{
	{
		Name:        "ask",
		Description: "Ask the crop advisor anything",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "question",
				Description: "Your farming question",
				Required:    true,
			},
		},
	},
	{
		Name:        "soil",
		Description: "Get advice from a soil test report",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "crop",
				Description: "Crop you are growing",
				Required:    true,
			},
			&discord.NumberOption{
				OptionName:  "ph",
				Description: "Soil pH (0-14)",
				Required:    true,
			},
			&discord.NumberOption{
				OptionName:  "nitrogen",
				Description: "Nitrogen in kg/ha",
				Required:    true,
			},
			&discord.NumberOption{
				OptionName:  "phosphorus",
				Description: "Phosphorus in kg/ha",
				Required:    true,
			},
			&discord.NumberOption{
				OptionName:  "potassium",
				Description: "Potassium in kg/ha",
				Required:    true,
			},
			&discord.NumberOption{
				OptionName:  "moisture",
				Description: "Soil moisture percentage",
				Required:    true,
			},
		},
	},
	{
		Name:        "pest",
		Description: "Diagnose a pest or disease from a photo",
		Options: []discord.CommandOption{
			&discord.AttachmentOption{
				OptionName:  "photo",
				Description: "Photo of the affected crop",
				Required:    true,
			},
			&discord.StringOption{
				OptionName:  "note",
				Description: "Anything you noticed (spots, wilting, ...)",
			},
		},
	},
	{
		Name:        "market",
		Description: "Estimate crop prices for your region",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "crop",
				Description: "Crop to price",
				Required:    true,
			},
			&discord.StringOption{
				OptionName:  "region",
				Description: "State or district",
				Required:    true,
			},
		},
	},
	{
		Name:        "weather",
		Description: "Weather outlook with field-work advice",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "place",
				Description: "Village, town or city",
				Required:    true,
			},
		},
	},
	{
		Name:        "bulletins",
		Description: "Search crop advisory bulletins",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "query",
				Description: "Search query",
				Required:    true,
			},
		},
	},
	{
		Name:        "info",
		Description: "Generic Bot Info",
	},
	{
		Name:                "config",
		Description:         "Configure Dr-Agro",
		NoDefaultPermission: true,
		Options: []discord.CommandOption{
			&discord.SubcommandGroupOption{
				OptionName:  "user",
				Description: "Manage user access to Dr-Agro",
				Subcommands: []*discord.SubcommandOption{
					{
						OptionName:  "ignore",
						Description: "Ignore commands and actions from a user",
						Options: []discord.CommandOptionValue{
							&discord.UserOption{
								OptionName:  "user",
								Description: "User to ignore",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "unignore",
						Description: "Stop ignoring commands and actions from a user",
						Options: []discord.CommandOptionValue{
							&discord.UserOption{
								OptionName:  "user",
								Description: "User to unignore",
								Required:    true,
							},
						},
					},
				},
			},
			&discord.SubcommandGroupOption{
				OptionName:  "alias",
				Description: "Configure crop aliases for /market",
				Subcommands: []*discord.SubcommandOption{
					{
						OptionName:  "add",
						Description: "Add an alias",
						Options: []discord.CommandOptionValue{
							&discord.StringOption{
								OptionName:  "alias",
								Description: "Alias name",
								Required:    true,
							},
							&discord.StringOption{
								OptionName:  "crop",
								Description: "Canonical crop name",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "remove",
						Description: "Remove an alias",
						Options: []discord.CommandOptionValue{
							&discord.StringOption{
								OptionName:  "alias",
								Description: "Alias name",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "list",
						Description: "List all aliases",
					},
				},
			},
		},
	},
}
