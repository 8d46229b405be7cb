package main

import (
	"encoding/json"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"
)

const configPath = "config.json"

type configuration struct {
	Token       string             `json:"token"`
	Gateway     gatewayConfig      `json:"gateway"`
	Permissions commandPermissions `json:"permissions"`
	Aliases     map[string]string  `json:"aliases"`
	Blacklist   snowflakeLookup    `json:"blacklist"`
}

type gatewayConfig struct {
	APIKey      string `json:"api_key"`
	Model       string `json:"model"`
	VisionModel string `json:"vision_model"`
}

type commandPermissions struct {
	Advice snowflakeLookup                     `json:"advice"`
	Config map[discord.GuildID]snowflakeLookup `json:"config"`
}

// snowflakeLookup is a set of snowflakes stored as a sorted JSON
// string array.
type snowflakeLookup map[discord.Snowflake]struct{}

func (l snowflakeLookup) MarshalJSON() ([]byte, error) {
	ids := make([]discord.Snowflake, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	return json.Marshal(strs)
}

func (l *snowflakeLookup) UnmarshalJSON(b []byte) error {
	var strs []string
	if err := json.Unmarshal(b, &strs); err != nil {
		return err
	}
	if *l == nil {
		*l = make(snowflakeLookup, len(strs))
	}
	for _, s := range strs {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		(*l)[discord.Snowflake(id)] = struct{}{}
	}
	return nil
}

func config() configuration {
	fileBytes, err := os.ReadFile(configPath)
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not open config"))
	}
	cfg, err := configFromBytes(fileBytes)
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not parse config"))
	}
	return cfg
}

func configFromBytes(b []byte) (configuration, error) {
	cfg := configuration{
		Aliases:   map[string]string{},
		Blacklist: snowflakeLookup{},
		Permissions: commandPermissions{
			Advice: snowflakeLookup{},
		},
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return configuration{}, err
	}
	return cfg, nil
}

func saveConfig(cfg configuration) error {
	b, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, b, 0o644)
}
