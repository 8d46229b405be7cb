package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"

	"github.com/AgriGophers/dr-agro/advisor"
	"github.com/AgriGophers/dr-agro/weather"
)

var update bool

func main() {
	updateVar := flag.Bool("update", false, "update all commands, regardless of if they are present or not")
	debugVar := flag.Bool("debug", false, "pretty-print the loaded configuration on startup")
	flag.Parse()
	update = *updateVar

	cfg := config()
	if cfg.Token == "" {
		log.Fatal("no token provided")
	}
	if cfg.Gateway.APIKey == "" {
		log.Fatal("no gateway API key provided")
	}

	if *debugVar {
		redacted := cfg
		redacted.Token = "..."
		redacted.Gateway.APIKey = "..."
		pp.Println(redacted)
	}

	ctx := context.Background()

	adv, err := advisor.New(ctx, cfg.Gateway.APIKey, cfg.Gateway.Model, cfg.Gateway.VisionModel)
	if err != nil {
		log.Fatalln(errors.Wrap(err, "could not create advisor"))
	}

	s := state.New("Bot " + cfg.Token)

	b := botState{
		cfg:     cfg,
		state:   s,
		advisor: adv,
		weather: weather.New(http.DefaultClient),
	}

	s.AddHandler(b.OnCommand)
	s.AddIntents(gateway.IntentGuilds)

	if err := s.Open(ctx); err != nil {
		log.Fatalln("failed to open:", err)
	}
	defer s.Close()

	log.Println("Gateway connection established.")
	me, err := s.Me()
	if err != nil {
		log.Println("Could not get me:", err)
		return
	}
	b.appID = discord.AppID(me.ID)

	log.Println("Logged in as", me.Tag())

	if err := loadCommands(s, me.ID, cfg); err != nil {
		log.Println("Could not load commands:", err)
		return
	}

	go b.gcInteractionData()
	go b.updateBulletins()
	select {}
}
